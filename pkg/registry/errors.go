package registry

import (
	"fmt"
	"strings"
)

// ModelNotFoundError reports a lookup for a key that is not registered under
// the requested capability. Valid carries the registered keys sorted for
// stable messages.
type ModelNotFoundError struct {
	Capability Capability
	Key        string
	Valid      []string
}

func (e *ModelNotFoundError) Error() string {
	return fmt.Sprintf("unknown %s model %q, available models: %s",
		e.Capability, e.Key, strings.Join(e.Valid, ", "))
}

// ValidationError reports caller-supplied parameters that do not match a
// model's declared parameter set: either unknown names were supplied, or
// required names are missing. Name lists are sorted.
type ValidationError struct {
	Model   string
	Unknown []string
	Missing []string
	Valid   []string
}

func (e *ValidationError) Error() string {
	if len(e.Unknown) > 0 {
		return fmt.Sprintf("unknown parameters for model %q: %s (valid parameters: %s; see registry.Help for details)",
			e.Model, strings.Join(e.Unknown, ", "), strings.Join(e.Valid, ", "))
	}
	return fmt.Sprintf("missing required parameters for model %q: %s (see registry.Help for details)",
		e.Model, strings.Join(e.Missing, ", "))
}
