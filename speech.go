package hathora

import (
	"context"

	"go.uber.org/zap"

	"github.com/hathora/hathora-go/internal/audio"
	"github.com/hathora/hathora-go/internal/httpclient"
	"github.com/hathora/hathora-go/pkg/api"
	"github.com/hathora/hathora-go/pkg/registry"
)

// TextToSpeech synthesizes speech. Convert routes through the registry to
// the selected model; Kokoro and Resemble are convenience wrappers that
// pre-fill the model key.
type TextToSpeech struct {
	client *Client
}

// Convert synthesizes text with the given model. params carries
// model-specific parameters; see Help for what each model accepts. Audio-kind
// parameters (resemble's audio_prompt) additionally accept a file path,
// []byte or io.Reader and are normalized before dispatch.
func (t *TextToSpeech) Convert(ctx context.Context, model, text string, params map[string]any) (*api.AudioResponse, error) {
	def, err := t.client.registry.Lookup(registry.CapabilitySpeechSynthesis, model)
	if err != nil {
		return nil, err
	}

	params, opened, err := normalizeAudioParams(def, params)
	if err != nil {
		return nil, err
	}
	defer closeAll(opened)

	desc, err := t.client.registry.BuildRequest(registry.CapabilitySpeechSynthesis, model, registry.TextPayload(text), params)
	if err != nil {
		return nil, err
	}

	resp, err := httpclient.Send(ctx, t.client.httpClient, desc, t.client.apiKey, t.client.log)
	if err != nil {
		return nil, err
	}
	if !resp.IsAudio() {
		return nil, &api.APIError{
			StatusCode: resp.StatusCode,
			Message:    "unexpected response format from " + model,
			URL:        desc.URL,
			Body:       resp.Body,
		}
	}

	contentType := resp.ContentType
	if contentType == "" {
		contentType = "audio/wav"
	}
	t.client.log.Debug("speech synthesized",
		zap.String("model", model),
		zap.Int("bytes", len(resp.Body)),
	)
	return &api.AudioResponse{Content: resp.Body, ContentType: contentType}, nil
}

// Kokoro synthesizes with the Kokoro-82M model.
func (t *TextToSpeech) Kokoro(ctx context.Context, text string, params map[string]any) (*api.AudioResponse, error) {
	return t.Convert(ctx, "kokoro", text, params)
}

// Resemble synthesizes with the ResembleAI Chatterbox model. Pass an
// "audio_prompt" parameter (path, bytes, reader or api.AudioInput) to clone
// a reference voice.
func (t *TextToSpeech) Resemble(ctx context.Context, text string, params map[string]any) (*api.AudioResponse, error) {
	return t.Convert(ctx, "resemble", text, params)
}

// Models lists the speech synthesis model keys in registration order.
func (t *TextToSpeech) Models() []string {
	return t.client.registry.Models(registry.CapabilitySpeechSynthesis)
}

// Describe returns the declared parameters of a model in declaration order.
func (t *TextToSpeech) Describe(model string) ([]registry.ParamSpec, error) {
	def, err := t.client.registry.Lookup(registry.CapabilitySpeechSynthesis, model)
	if err != nil {
		return nil, err
	}
	return registry.Describe(def), nil
}

// Help renders human-readable parameter help for a model.
func (t *TextToSpeech) Help(model string) (string, error) {
	def, err := t.client.registry.Lookup(registry.CapabilitySpeechSynthesis, model)
	if err != nil {
		return "", err
	}
	return registry.Help(def), nil
}

// normalizeAudioParams converts declared audio-kind parameter values into
// upload inputs. Unknown names are left untouched so validation still
// rejects the full set. Returns the inputs it opened for later cleanup.
func normalizeAudioParams(def *registry.ModelDefinition, params map[string]any) (map[string]any, []*api.AudioInput, error) {
	var opened []*api.AudioInput
	if len(params) == 0 {
		return params, nil, nil
	}
	out := make(map[string]any, len(params))
	for k, v := range params {
		out[k] = v
	}
	for _, spec := range registry.Describe(def) {
		if spec.Kind != registry.KindAudio {
			continue
		}
		v, ok := out[spec.Name]
		if !ok || v == nil {
			continue
		}
		in, err := audio.Normalize(v)
		if err != nil {
			closeAll(opened)
			return nil, nil, err
		}
		opened = append(opened, in)
		out[spec.Name] = in
	}
	return out, opened, nil
}

func closeAll(inputs []*api.AudioInput) {
	for _, in := range inputs {
		audio.Close(in)
	}
}
