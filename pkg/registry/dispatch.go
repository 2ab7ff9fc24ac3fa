package registry

import (
	"fmt"
	"io"
	"net/url"

	"github.com/google/uuid"

	"github.com/hathora/hathora-go/pkg/api"
)

// Payload is the primary content of a call: exactly one field is set,
// matched to the capability being dispatched.
type Payload struct {
	Text     string
	Audio    *api.AudioInput
	Messages []api.ChatMessage
}

// TextPayload wraps text to synthesize.
func TextPayload(text string) Payload { return Payload{Text: text} }

// AudioPayload wraps audio to transcribe.
func AudioPayload(in *api.AudioInput) Payload { return Payload{Audio: in} }

// ChatPayload wraps a chat conversation.
func ChatPayload(messages []api.ChatMessage) Payload { return Payload{Messages: messages} }

// FormPart is one multipart form entry. Reader being nil marks a simple
// string field; otherwise the part is a file upload.
type FormPart struct {
	Field       string
	Value       string
	Filename    string
	ContentType string
	Reader      io.Reader
}

// RequestDescriptor is a fully assembled, transport-ready description of one
// outbound call. No network I/O happens while building it.
type RequestDescriptor struct {
	Method  string
	URL     string
	Query   url.Values
	Headers map[string]string

	Shape    RequestShape
	JSONBody map[string]any
	Parts    []FormPart

	RequestID  string
	Capability Capability
	ModelKey   string
}

// BuildRequest routes a call: it resolves the model, checks the payload is
// present, validates the supplied parameters and assembles the descriptor.
// Failures surface as *ModelNotFoundError or *ValidationError; nothing here
// touches the network.
func (r *Registry) BuildRequest(capability Capability, key string, payload Payload, supplied map[string]any) (*RequestDescriptor, error) {
	def, err := r.Lookup(capability, key)
	if err != nil {
		return nil, err
	}

	if err := checkPayload(def, payload); err != nil {
		return nil, err
	}

	params, err := Validate(def, supplied)
	if err != nil {
		return nil, err
	}

	desc := &RequestDescriptor{
		Method:     "POST",
		URL:        def.Endpoint + def.Path,
		Query:      url.Values{},
		Headers:    map[string]string{},
		Shape:      def.Shape,
		RequestID:  uuid.NewString(),
		Capability: def.Capability,
		ModelKey:   def.Key,
	}

	switch def.Shape {
	case ShapeJSON:
		if err := buildJSON(def, payload, params, desc); err != nil {
			return nil, err
		}
	case ShapeMultipart:
		if err := buildMultipart(def, payload, params, desc); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("model %q: unsupported request shape %q", def.Key, def.Shape)
	}
	return desc, nil
}

func checkPayload(def *ModelDefinition, payload Payload) error {
	empty := false
	switch def.Capability {
	case CapabilityTranscription:
		empty = payload.Audio == nil || payload.Audio.Reader == nil
	case CapabilitySpeechSynthesis:
		empty = payload.Text == ""
	case CapabilityChat:
		empty = len(payload.Messages) == 0
	}
	if empty {
		return &ValidationError{Model: def.Key, Missing: []string{def.PayloadField}, Valid: def.ParamNames()}
	}
	return nil
}

func buildJSON(def *ModelDefinition, payload Payload, params Params, desc *RequestDescriptor) error {
	body := make(map[string]any, params.Len()+1)
	switch def.Capability {
	case CapabilityChat:
		body[def.PayloadField] = payload.Messages
	default:
		body[def.PayloadField] = payload.Text
	}
	for _, name := range params.Names() {
		v := params.Value(name)
		if v == nil {
			continue
		}
		spec, _ := def.param(name)
		if spec.InQuery {
			desc.Query.Set(name, formatParam(v))
			continue
		}
		body[name] = v
	}
	desc.JSONBody = body
	desc.Headers["Content-Type"] = "application/json"
	return nil
}

func buildMultipart(def *ModelDefinition, payload Payload, params Params, desc *RequestDescriptor) error {
	if def.Capability == CapabilityTranscription {
		desc.Parts = append(desc.Parts, audioPart(def.PayloadField, payload.Audio))
	} else {
		desc.Parts = append(desc.Parts, FormPart{Field: def.PayloadField, Value: payload.Text})
	}
	for _, name := range params.Names() {
		v := params.Value(name)
		if v == nil {
			continue
		}
		spec, _ := def.param(name)
		if spec.InQuery {
			desc.Query.Set(name, formatParam(v))
			continue
		}
		if spec.Kind == KindAudio {
			in, ok := audioValue(v)
			if !ok {
				return fmt.Errorf("model %q: parameter %q expects an audio input, got %T", def.Key, name, v)
			}
			desc.Parts = append(desc.Parts, audioPart(name, in))
			continue
		}
		desc.Parts = append(desc.Parts, FormPart{Field: name, Value: formatParam(v)})
	}
	return nil
}

func audioPart(field string, in *api.AudioInput) FormPart {
	filename := in.Filename
	if filename == "" {
		filename = "audio"
	}
	contentType := in.ContentType
	if contentType == "" {
		contentType = "audio/wav"
	}
	return FormPart{Field: field, Filename: filename, ContentType: contentType, Reader: in.Reader}
}

func audioValue(v any) (*api.AudioInput, bool) {
	switch in := v.(type) {
	case *api.AudioInput:
		return in, in != nil
	case api.AudioInput:
		return &in, true
	default:
		return nil, false
	}
}

func formatParam(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}
