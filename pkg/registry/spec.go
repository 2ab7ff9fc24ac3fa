// Package registry holds the model parameter registry and dispatcher: the
// static table of backend models, per-model parameter validation, and the
// assembly of transport-ready request descriptors.
package registry

import (
	"fmt"
	"strings"
)

// Capability is a category of backend model.
type Capability string

const (
	CapabilityTranscription   Capability = "transcription"
	CapabilitySpeechSynthesis Capability = "speech-synthesis"
	CapabilityChat            Capability = "chat"
)

// Capabilities lists the declared capability groups in a fixed order.
func Capabilities() []Capability {
	return []Capability{CapabilityTranscription, CapabilitySpeechSynthesis, CapabilityChat}
}

// ParamKind is the semantic kind of a declared parameter.
type ParamKind string

const (
	KindString ParamKind = "string"
	KindNumber ParamKind = "number"
	KindBool   ParamKind = "bool"
	KindAudio  ParamKind = "audio"
)

// ParamSpec declares one named parameter of a model.
//
// HasDefault distinguishes "defaults to nil" (the value appears in the
// normalized set as nil and is dropped from the wire body) from "no default
// at all" (the parameter is simply absent when the caller omits it).
type ParamSpec struct {
	Name        string
	Kind        ParamKind
	Required    bool
	Default     any
	HasDefault  bool
	Description string

	// Min and Max document inclusive numeric bounds. They are rendered in
	// help output but not enforced at validation time: recognized values
	// pass through to the backend unmodified.
	Min *float64
	Max *float64

	// InQuery routes the value into the request query string instead of
	// the body.
	InQuery bool
}

// RequestShape selects how normalized parameters map onto the wire call.
type RequestShape string

const (
	ShapeJSON      RequestShape = "json"
	ShapeMultipart RequestShape = "multipart"
)

// ModelDefinition declares one concrete backend model: its parameters,
// endpoint and wire shape.
type ModelDefinition struct {
	Key         string
	Capability  Capability
	Description string

	// Endpoint is the base URL the request targets. It is populated from
	// built-in defaults and may be overridden at registry construction.
	Endpoint string
	Path     string

	Shape RequestShape

	// PayloadField names the wire field carrying the positional payload
	// (synthesis text, uploaded audio, or the message list).
	PayloadField string

	// Params holds the declared parameters; slice order defines both help
	// output and multipart field order.
	Params []ParamSpec
}

// ParamNames returns the declared parameter names in declaration order.
func (d *ModelDefinition) ParamNames() []string {
	names := make([]string, len(d.Params))
	for i, p := range d.Params {
		names[i] = p.Name
	}
	return names
}

func (d *ModelDefinition) param(name string) (ParamSpec, bool) {
	for _, p := range d.Params {
		if p.Name == name {
			return p, true
		}
	}
	return ParamSpec{}, false
}

// Describe returns the declared parameters in declaration order. The result
// is a copy; mutating it does not touch the definition.
func Describe(d *ModelDefinition) []ParamSpec {
	out := make([]ParamSpec, len(d.Params))
	copy(out, d.Params)
	return out
}

// Help renders human-readable usage text for a model, one line per parameter.
func Help(d *ModelDefinition) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Model: %s (%s)\n", d.Key, d.Capability)
	if d.Description != "" {
		fmt.Fprintf(&b, "%s\n", d.Description)
	}
	b.WriteString("Parameters:\n")
	if len(d.Params) == 0 {
		b.WriteString("  (none)\n")
		return b.String()
	}
	for _, p := range d.Params {
		fmt.Fprintf(&b, "  - %s (%s", p.Name, p.Kind)
		switch {
		case p.Required:
			b.WriteString(", required")
		case p.HasDefault:
			if s, ok := p.Default.(string); ok {
				fmt.Fprintf(&b, ", default=%q", s)
			} else {
				fmt.Fprintf(&b, ", default=%v", p.Default)
			}
		default:
			b.WriteString(", optional")
		}
		if p.Min != nil && p.Max != nil {
			fmt.Fprintf(&b, ", range %v-%v", *p.Min, *p.Max)
		}
		b.WriteString(")")
		if p.Description != "" {
			fmt.Fprintf(&b, ": %s", p.Description)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func bound(v float64) *float64 { return &v }
