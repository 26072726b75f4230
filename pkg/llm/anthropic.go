package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// anthropicDefaults applied when the request leaves them unset.
const (
	anthropicDefaultMaxTokens = 4096
)

// AnthropicProvider generates via the Claude Messages API.
type AnthropicProvider struct {
	messages anthropicMessages
	model    string
}

// anthropicMessages is the subset of the SDK client the provider uses;
// satisfied by *sdk.MessageService, mockable in tests.
type anthropicMessages interface {
	New(ctx context.Context, body sdk.MessageNewParams, opts ...option.RequestOption) (*sdk.Message, error)
}

// NewAnthropicProvider builds a provider from an API key and model
// identifier (e.g. one of the sdk.Model constants). Extra request options
// (option.WithBaseURL for proxied deployments) pass through to the SDK.
func NewAnthropicProvider(apiKey, model string, opts ...option.RequestOption) (*AnthropicProvider, error) {
	if apiKey == "" {
		return nil, errors.New("anthropic api key is required")
	}
	if model == "" {
		return nil, errors.New("anthropic model identifier is required")
	}
	client := sdk.NewClient(append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)...)
	return &AnthropicProvider{messages: &client.Messages, model: model}, nil
}

// Name implements Provider.
func (p *AnthropicProvider) Name() string { return "anthropic" }

// Generate implements Provider. The schema is embedded in the system prompt;
// validation happens in StructuredClient.
func (p *AnthropicProvider) Generate(ctx context.Context, req Request) (string, error) {
	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = anthropicDefaultMaxTokens
	}

	params := sdk.MessageNewParams{
		Model:     sdk.Model(p.model),
		MaxTokens: int64(maxTokens),
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(sdk.NewTextBlock(req.Prompt)),
		},
	}
	if system := systemWithSchema(req); system != "" {
		params.System = []sdk.TextBlockParam{{Text: system}}
	}
	if req.Temperature > 0 {
		params.Temperature = sdk.Float(req.Temperature)
	}

	msg, err := p.messages.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("anthropic messages.new: %w", err)
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if text, ok := block.AsAny().(sdk.TextBlock); ok {
			sb.WriteString(text.Text)
		}
	}
	if sb.Len() == 0 {
		return "", errors.New("anthropic returned no text content")
	}
	return sb.String(), nil
}

// systemWithSchema appends the output-contract instruction to the system
// prompt so the model answers with bare schema-conforming JSON.
func systemWithSchema(req Request) string {
	var sb strings.Builder
	if req.System != "" {
		sb.WriteString(req.System)
		sb.WriteString("\n\n")
	}
	if len(req.Schema.Raw) > 0 {
		sb.WriteString("Respond with a single JSON document conforming to this JSON Schema, with no surrounding prose:\n")
		sb.Write(req.Schema.Raw)
	}
	return sb.String()
}
