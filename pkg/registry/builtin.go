package registry

import "fmt"

// Default endpoints for the built-in models. Overridable per model at
// registry construction, so endpoint rotation needs no code change.
const (
	defaultParakeetEndpoint = "https://app-1c7bebb9-6977-4101-9619-833b251b86d1.app.hathora.dev"
	defaultKokoroEndpoint   = "https://app-01312daf-6e53-4b9d-a4ad-13039f35adc4.app.hathora.dev"
	defaultResembleEndpoint = "https://app-efbc8fe2-df55-4f96-bbe3-74f6ea9d986b.app.hathora.dev"
	defaultChatEndpoint     = "https://models.hathora.dev"
)

func builtinDefinitions() []ModelDefinition {
	return []ModelDefinition{
		{
			Key:          "parakeet",
			Capability:   CapabilityTranscription,
			Description:  "Parakeet speech-to-text model",
			Endpoint:     defaultParakeetEndpoint,
			Path:         "/v1/transcribe",
			Shape:        ShapeMultipart,
			PayloadField: "file",
			Params: []ParamSpec{
				{
					Name:        "start_time",
					Kind:        KindNumber,
					Description: "Start of the transcription window, in seconds",
					InQuery:     true,
				},
				{
					Name:        "end_time",
					Kind:        KindNumber,
					Description: "End of the transcription window, in seconds",
					InQuery:     true,
				},
			},
		},
		{
			Key:          "kokoro",
			Capability:   CapabilitySpeechSynthesis,
			Description:  "Kokoro-82M text-to-speech model",
			Endpoint:     defaultKokoroEndpoint,
			Path:         "/synthesize",
			Shape:        ShapeJSON,
			PayloadField: "text",
			Params: []ParamSpec{
				{
					Name:        "voice",
					Kind:        KindString,
					Default:     "af_bella",
					HasDefault:  true,
					Description: "Voice to use for synthesis",
				},
				{
					Name:        "speed",
					Kind:        KindNumber,
					Default:     1.0,
					HasDefault:  true,
					Min:         bound(0.5),
					Max:         bound(2.0),
					Description: "Speech speed multiplier (0.5 = half speed, 2.0 = double speed)",
				},
			},
		},
		{
			Key:          "resemble",
			Capability:   CapabilitySpeechSynthesis,
			Description:  "ResembleAI Chatterbox text-to-speech model with voice cloning",
			Endpoint:     defaultResembleEndpoint,
			Path:         "/v1/generate",
			Shape:        ShapeMultipart,
			PayloadField: "text",
			Params: []ParamSpec{
				{
					Name:        "audio_prompt",
					Kind:        KindAudio,
					Default:     nil,
					HasDefault:  true,
					Description: "Reference audio file for voice cloning (optional)",
				},
				{
					Name:        "exaggeration",
					Kind:        KindNumber,
					Default:     0.5,
					HasDefault:  true,
					Min:         bound(0.0),
					Max:         bound(1.0),
					Description: "Emotional intensity, range 0.0-1.0",
				},
				{
					Name:        "cfg_weight",
					Kind:        KindNumber,
					Default:     0.5,
					HasDefault:  true,
					Min:         bound(0.0),
					Max:         bound(1.0),
					Description: "Adherence to reference voice, range 0.0-1.0",
				},
			},
		},
		{
			Key:          "qwen",
			Capability:   CapabilityChat,
			Description:  "Qwen3 30B chat model with reasoning and multilingual support",
			Endpoint:     defaultChatEndpoint,
			Path:         "/model/qwen3-30b-a3b/v1/chat/completions",
			Shape:        ShapeJSON,
			PayloadField: "messages",
			Params: []ParamSpec{
				{
					Name:        "max_tokens",
					Kind:        KindNumber,
					Default:     1000,
					HasDefault:  true,
					Description: "Maximum tokens to generate",
				},
				{
					Name:        "temperature",
					Kind:        KindNumber,
					Default:     0.7,
					HasDefault:  true,
					Min:         bound(0.0),
					Max:         bound(1.0),
					Description: "Sampling temperature",
				},
				{
					Name:        "top_p",
					Kind:        KindNumber,
					Default:     nil,
					HasDefault:  true,
					Description: "Nucleus sampling parameter (omitted when unset)",
				},
			},
		},
	}
}

// Builtin constructs a registry holding the built-in model table. Endpoint
// overrides are keyed by model key; an override for an unknown key is an
// error so configuration typos surface at startup rather than at call time.
func Builtin(endpointOverrides map[string]string) (*Registry, error) {
	defs := builtinDefinitions()
	known := make(map[string]int, len(defs))
	for i, d := range defs {
		known[d.Key] = i
	}
	for key, endpoint := range endpointOverrides {
		i, ok := known[key]
		if !ok {
			return nil, fmt.Errorf("endpoint override for unknown model %q", key)
		}
		if endpoint != "" {
			defs[i].Endpoint = endpoint
		}
	}
	r := New()
	for _, d := range defs {
		if err := r.Register(d); err != nil {
			return nil, err
		}
	}
	return r, nil
}
