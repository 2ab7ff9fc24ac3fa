package registry

import "sort"

// Params is the normalized parameter set produced by Validate: caller values
// merged with declared defaults, iterable in declared order so downstream
// serialization (multipart field order) stays stable.
type Params struct {
	names  []string
	values map[string]any
}

// Names returns the normalized parameter names in declared order.
func (p Params) Names() []string {
	return append([]string(nil), p.names...)
}

// Get returns the normalized value for a name.
func (p Params) Get(name string) (any, bool) {
	v, ok := p.values[name]
	return v, ok
}

// Value returns the normalized value for a name, or nil when absent.
func (p Params) Value(name string) any {
	return p.values[name]
}

func (p Params) Len() int {
	return len(p.names)
}

// Map returns a copy of the normalized values keyed by name.
func (p Params) Map() map[string]any {
	out := make(map[string]any, len(p.values))
	for k, v := range p.values {
		out[k] = v
	}
	return out
}

// Validate checks caller-supplied parameters against a model's declared set
// and fills in defaults. It is all-or-nothing: any unknown name rejects the
// whole set before defaults are applied, then any missing required name
// rejects it. Recognized values are copied verbatim, with no coercion or
// range clamping.
func Validate(def *ModelDefinition, supplied map[string]any) (Params, error) {
	var unknown []string
	for name := range supplied {
		if _, ok := def.param(name); !ok {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return Params{}, &ValidationError{Model: def.Key, Unknown: unknown, Valid: def.ParamNames()}
	}

	var missing []string
	for _, p := range def.Params {
		if p.Required {
			if _, ok := supplied[p.Name]; !ok {
				missing = append(missing, p.Name)
			}
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return Params{}, &ValidationError{Model: def.Key, Missing: missing, Valid: def.ParamNames()}
	}

	out := Params{values: make(map[string]any, len(def.Params))}
	for _, p := range def.Params {
		if v, ok := supplied[p.Name]; ok {
			out.names = append(out.names, p.Name)
			out.values[p.Name] = v
			continue
		}
		if p.HasDefault {
			out.names = append(out.names, p.Name)
			out.values[p.Name] = p.Default
		}
		// Optional with no default: absent from the normalized set.
	}
	return out, nil
}
