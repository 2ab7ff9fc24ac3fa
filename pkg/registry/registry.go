package registry

import (
	"fmt"
	"sort"
)

// Registry is the table of model definitions, grouped by capability. It is
// built once at client construction and read-only afterwards, so concurrent
// lookups need no locking.
type Registry struct {
	order map[Capability][]string
	defs  map[Capability]map[string]*ModelDefinition
}

// New returns an empty registry. Definitions are added with Register during
// construction; callers must not register after the registry is shared.
func New() *Registry {
	return &Registry{
		order: make(map[Capability][]string),
		defs:  make(map[Capability]map[string]*ModelDefinition),
	}
}

// Register adds a model definition. Keys are unique within a capability
// group; registration order is preserved for Models.
func (r *Registry) Register(def ModelDefinition) error {
	switch def.Capability {
	case CapabilityTranscription, CapabilitySpeechSynthesis, CapabilityChat:
	default:
		return fmt.Errorf("register %q: unknown capability %q", def.Key, def.Capability)
	}
	if def.Key == "" {
		return fmt.Errorf("register: empty model key")
	}
	seen := make(map[string]struct{}, len(def.Params))
	for _, p := range def.Params {
		if _, dup := seen[p.Name]; dup {
			return fmt.Errorf("register %q: duplicate parameter %q", def.Key, p.Name)
		}
		seen[p.Name] = struct{}{}
	}
	group := r.defs[def.Capability]
	if group == nil {
		group = make(map[string]*ModelDefinition)
		r.defs[def.Capability] = group
	}
	if _, dup := group[def.Key]; dup {
		return fmt.Errorf("register %q: already registered under %s", def.Key, def.Capability)
	}
	d := def
	group[def.Key] = &d
	r.order[def.Capability] = append(r.order[def.Capability], def.Key)
	return nil
}

// Lookup resolves a capability and key to a model definition. Keys are
// matched case-sensitively; an unknown key yields a *ModelNotFoundError
// carrying the sorted list of valid keys.
func (r *Registry) Lookup(capability Capability, key string) (*ModelDefinition, error) {
	if def, ok := r.defs[capability][key]; ok {
		return def, nil
	}
	valid := append([]string(nil), r.order[capability]...)
	sort.Strings(valid)
	return nil, &ModelNotFoundError{Capability: capability, Key: key, Valid: valid}
}

// Models returns the keys registered under a capability, in registration
// order.
func (r *Registry) Models(capability Capability) []string {
	return append([]string(nil), r.order[capability]...)
}
