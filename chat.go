package hathora

import (
	"context"

	"go.uber.org/zap"

	"github.com/hathora/hathora-go/internal/httpclient"
	"github.com/hathora/hathora-go/pkg/api"
	"github.com/hathora/hathora-go/pkg/registry"
)

// LLM creates chat completions.
type LLM struct {
	client *Client
}

// Chat sends a conversation to the given model. params carries
// model-specific parameters (qwen: max_tokens, temperature, top_p).
func (l *LLM) Chat(ctx context.Context, model string, messages []api.ChatMessage, params map[string]any) (*api.ChatResponse, error) {
	desc, err := l.client.registry.BuildRequest(registry.CapabilityChat, model, registry.ChatPayload(messages), params)
	if err != nil {
		return nil, err
	}

	resp, err := httpclient.Send(ctx, l.client.httpClient, desc, l.client.apiKey, l.client.log)
	if err != nil {
		return nil, err
	}

	var out api.ChatResponse
	if err := httpclient.DecodeJSON(resp, &out); err != nil {
		return nil, err
	}

	l.client.log.Debug("chat completed",
		zap.String("model", model),
		zap.Int("choices", len(out.Choices)),
	)
	return &out, nil
}

// ChatText sends a single user prompt, the string shorthand for Chat.
func (l *LLM) ChatText(ctx context.Context, model, prompt string, params map[string]any) (*api.ChatResponse, error) {
	return l.Chat(ctx, model, api.UserMessage(prompt), params)
}

// Models lists the chat model keys in registration order.
func (l *LLM) Models() []string {
	return l.client.registry.Models(registry.CapabilityChat)
}

// Describe returns the declared parameters of a model in declaration order.
func (l *LLM) Describe(model string) ([]registry.ParamSpec, error) {
	def, err := l.client.registry.Lookup(registry.CapabilityChat, model)
	if err != nil {
		return nil, err
	}
	return registry.Describe(def), nil
}

// Help renders human-readable parameter help for a model.
func (l *LLM) Help(model string) (string, error) {
	def, err := l.client.registry.Lookup(registry.CapabilityChat, model)
	if err != nil {
		return "", err
	}
	return registry.Help(def), nil
}
