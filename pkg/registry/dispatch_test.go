package registry_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hathora/hathora-go/pkg/api"
	"github.com/hathora/hathora-go/pkg/registry"
)

func TestBuildRequestKokoroJSON(t *testing.T) {
	reg := builtin(t)

	desc, err := reg.BuildRequest(registry.CapabilitySpeechSynthesis, "kokoro",
		registry.TextPayload("Hello world"), map[string]any{"speed": 1.2})
	require.NoError(t, err)

	assert.Equal(t, "POST", desc.Method)
	assert.True(t, strings.HasSuffix(desc.URL, "/synthesize"))
	assert.Equal(t, registry.ShapeJSON, desc.Shape)
	assert.Equal(t, map[string]any{
		"text":  "Hello world",
		"voice": "af_bella",
		"speed": 1.2,
	}, desc.JSONBody)
	assert.NotEmpty(t, desc.RequestID)
	assert.Equal(t, "kokoro", desc.ModelKey)
}

func TestBuildRequestQwenChat(t *testing.T) {
	reg := builtin(t)

	desc, err := reg.BuildRequest(registry.CapabilityChat, "qwen",
		registry.ChatPayload(api.UserMessage("What is AI?")), nil)
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(desc.URL, "/model/qwen3-30b-a3b/v1/chat/completions"))
	assert.Equal(t, api.UserMessage("What is AI?"), desc.JSONBody["messages"])
	assert.Equal(t, 1000, desc.JSONBody["max_tokens"])
	assert.Equal(t, 0.7, desc.JSONBody["temperature"])
	// top_p defaults to nil and stays off the wire.
	_, present := desc.JSONBody["top_p"]
	assert.False(t, present)
}

func TestBuildRequestResembleMultipart(t *testing.T) {
	reg := builtin(t)

	desc, err := reg.BuildRequest(registry.CapabilitySpeechSynthesis, "resemble",
		registry.TextPayload("Hello"), nil)
	require.NoError(t, err)

	assert.Equal(t, registry.ShapeMultipart, desc.Shape)
	require.Len(t, desc.Parts, 3)
	assert.Equal(t, "text", desc.Parts[0].Field)
	assert.Equal(t, "Hello", desc.Parts[0].Value)
	assert.Equal(t, "exaggeration", desc.Parts[1].Field)
	assert.Equal(t, "0.5", desc.Parts[1].Value)
	assert.Equal(t, "cfg_weight", desc.Parts[2].Field)
	assert.Equal(t, "0.5", desc.Parts[2].Value)
}

func TestBuildRequestResembleVoiceCloning(t *testing.T) {
	reg := builtin(t)

	prompt := &api.AudioInput{
		Reader:      strings.NewReader("RIFFdata"),
		Filename:    "reference.wav",
		ContentType: "audio/wav",
	}
	desc, err := reg.BuildRequest(registry.CapabilitySpeechSynthesis, "resemble",
		registry.TextPayload("Hello"), map[string]any{"audio_prompt": prompt, "cfg_weight": 0.9})
	require.NoError(t, err)

	require.Len(t, desc.Parts, 4)
	assert.Equal(t, "audio_prompt", desc.Parts[1].Field)
	assert.Equal(t, "reference.wav", desc.Parts[1].Filename)
	assert.NotNil(t, desc.Parts[1].Reader)
	assert.Equal(t, "cfg_weight", desc.Parts[3].Field)
	assert.Equal(t, "0.9", desc.Parts[3].Value)
}

func TestBuildRequestParakeetQueryParams(t *testing.T) {
	reg := builtin(t)

	in := &api.AudioInput{Reader: strings.NewReader("RIFFdata"), Filename: "audio.wav", ContentType: "audio/wav"}
	desc, err := reg.BuildRequest(registry.CapabilityTranscription, "parakeet",
		registry.AudioPayload(in), map[string]any{"start_time": 3.0, "end_time": 9.5})
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(desc.URL, "/v1/transcribe"))
	assert.Equal(t, "3", desc.Query.Get("start_time"))
	assert.Equal(t, "9.5", desc.Query.Get("end_time"))
	require.Len(t, desc.Parts, 1)
	assert.Equal(t, "file", desc.Parts[0].Field)
	assert.Equal(t, "audio.wav", desc.Parts[0].Filename)
	assert.NotNil(t, desc.Parts[0].Reader)
}

func TestBuildRequestUnknownModel(t *testing.T) {
	reg := builtin(t)

	_, err := reg.BuildRequest(registry.CapabilitySpeechSynthesis, "nonexistent",
		registry.TextPayload("Hello"), nil)
	var notFound *registry.ModelNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, []string{"kokoro", "resemble"}, notFound.Valid)
}

func TestBuildRequestEmptyPayload(t *testing.T) {
	reg := builtin(t)

	cases := []struct {
		name       string
		capability registry.Capability
		key        string
		payload    registry.Payload
	}{
		{"empty text", registry.CapabilitySpeechSynthesis, "kokoro", registry.TextPayload("")},
		{"nil audio", registry.CapabilityTranscription, "parakeet", registry.Payload{}},
		{"no messages", registry.CapabilityChat, "qwen", registry.ChatPayload(nil)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := reg.BuildRequest(tc.capability, tc.key, tc.payload, nil)
			var verr *registry.ValidationError
			require.ErrorAs(t, err, &verr)
		})
	}
}

func TestBuildRequestValidatesBeforeAssembly(t *testing.T) {
	reg := builtin(t)

	_, err := reg.BuildRequest(registry.CapabilitySpeechSynthesis, "kokoro",
		registry.TextPayload("Hello"), map[string]any{"exaggeration": 0.5})
	var verr *registry.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"exaggeration"}, verr.Unknown)
}

func TestBuildRequestEndpointOverride(t *testing.T) {
	reg, err := registry.Builtin(map[string]string{"kokoro": "http://localhost:9999"})
	require.NoError(t, err)

	desc, err := reg.BuildRequest(registry.CapabilitySpeechSynthesis, "kokoro",
		registry.TextPayload("Hello"), nil)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9999/synthesize", desc.URL)
}

func TestBuiltinRejectsUnknownOverride(t *testing.T) {
	_, err := registry.Builtin(map[string]string{"whisper": "http://localhost:9999"})
	assert.Error(t, err)
}
