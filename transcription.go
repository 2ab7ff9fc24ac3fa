package hathora

import (
	"context"

	"go.uber.org/zap"

	"github.com/hathora/hathora-go/internal/audio"
	"github.com/hathora/hathora-go/internal/httpclient"
	"github.com/hathora/hathora-go/pkg/api"
	"github.com/hathora/hathora-go/pkg/registry"
)

// SpeechToText transcribes audio.
type SpeechToText struct {
	client *Client
}

// Create transcribes an audio source with the given model. The source may be
// a file path, []byte, io.Reader or api.AudioInput. params carries
// model-specific parameters (parakeet: start_time, end_time).
func (s *SpeechToText) Create(ctx context.Context, model string, source any, params map[string]any) (*api.TranscriptionResponse, error) {
	in, err := audio.Normalize(source)
	if err != nil {
		return nil, err
	}
	defer audio.Close(in)

	desc, err := s.client.registry.BuildRequest(registry.CapabilityTranscription, model, registry.AudioPayload(in), params)
	if err != nil {
		return nil, err
	}

	resp, err := httpclient.Send(ctx, s.client.httpClient, desc, s.client.apiKey, s.client.log)
	if err != nil {
		return nil, err
	}

	out := &api.TranscriptionResponse{Metadata: map[string]any{}}
	if resp.IsJSON() {
		var fields map[string]any
		if err := httpclient.DecodeJSON(resp, &fields); err != nil {
			return nil, err
		}
		if text, ok := fields["text"].(string); ok {
			out.Text = text
		}
		for k, v := range fields {
			if k != "text" {
				out.Metadata[k] = v
			}
		}
	} else {
		out.Text = string(resp.Body)
	}

	s.client.log.Debug("audio transcribed",
		zap.String("model", model),
		zap.Int("chars", len(out.Text)),
	)
	return out, nil
}

// Models lists the transcription model keys in registration order.
func (s *SpeechToText) Models() []string {
	return s.client.registry.Models(registry.CapabilityTranscription)
}

// Describe returns the declared parameters of a model in declaration order.
func (s *SpeechToText) Describe(model string) ([]registry.ParamSpec, error) {
	def, err := s.client.registry.Lookup(registry.CapabilityTranscription, model)
	if err != nil {
		return nil, err
	}
	return registry.Describe(def), nil
}

// Help renders human-readable parameter help for a model.
func (s *SpeechToText) Help(model string) (string, error) {
	def, err := s.client.registry.Lookup(registry.CapabilityTranscription, model)
	if err != nil {
		return "", err
	}
	return registry.Help(def), nil
}
