// Package llm provides provider-abstracted structured generation: prompt in,
// schema-validated JSON out. Providers (Anthropic, OpenAI, noop) implement
// the Provider interface; StructuredClient layers schema enforcement,
// malformed-output retries, and fallback provider chaining on top.
package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Generation failure sentinels. Callers branch with errors.Is.
var (
	// ErrLLMFailure: provider unreachable, or output unparseable after retries.
	ErrLLMFailure = errors.New("llm failure")

	// ErrSchemaViolation: output parsed as JSON but failed schema validation
	// after retries.
	ErrSchemaViolation = errors.New("schema violation")
)

// Schema is a JSON-shaped output constraint. Raw holds the JSON Schema
// document; Name identifies it in provider requests and logs.
type Schema struct {
	Name string
	Raw  json.RawMessage
}

// Request is one structured generation call.
type Request struct {
	System      string
	Prompt      string
	Schema      Schema
	Temperature float64
	MaxTokens   int
}

// Provider generates raw model output for a request. Implementations own
// provider-specific authentication and request shaping; they return the
// model's textual output without validating it.
type Provider interface {
	Name() string
	Generate(ctx context.Context, req Request) (string, error)
}

// Client is the interface workers consume. The production implementation is
// StructuredClient; tests inject canned fakes.
type Client interface {
	// GenerateStructured returns schema-valid JSON or ErrLLMFailure /
	// ErrSchemaViolation.
	GenerateStructured(ctx context.Context, req Request) (json.RawMessage, error)
}

// Retry policy: a malformed response is retried up to twice against the same
// provider before failing over; transport errors are retried with
// exponential backoff from 500ms, capped at 2 attempts.
const (
	malformedRetries       = 2
	transportRetries       = 2
	transportRetryInterval = 500 * time.Millisecond
)

// StructuredClient validates provider output against the request schema and
// chains fallback providers. Providers are tried in order; the first to
// produce schema-valid JSON wins.
type StructuredClient struct {
	providers []Provider
}

var _ Client = (*StructuredClient)(nil)

// NewStructuredClient builds a client over an ordered provider chain.
func NewStructuredClient(providers ...Provider) (*StructuredClient, error) {
	if len(providers) == 0 {
		return nil, errors.New("at least one provider is required")
	}
	return &StructuredClient{providers: providers}, nil
}

// GenerateStructured runs the retry/fallback loop. The last provider's error
// is wrapped in the returned failure.
func (c *StructuredClient) GenerateStructured(ctx context.Context, req Request) (json.RawMessage, error) {
	var lastErr error
	for _, provider := range c.providers {
		result, err := c.generateWithProvider(ctx, provider, req)
		if err == nil {
			return result, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		lastErr = err
		slog.Warn("Provider failed, trying next in chain",
			"provider", provider.Name(), "schema", req.Schema.Name, "error", err)
	}
	return nil, lastErr
}

func (c *StructuredClient) generateWithProvider(ctx context.Context, provider Provider, req Request) (json.RawMessage, error) {
	var schemaErr error
	for attempt := 0; attempt <= malformedRetries; attempt++ {
		raw, err := c.callWithTransportRetry(ctx, provider, req)
		if err != nil {
			return nil, fmt.Errorf("%w: provider %s: %v", ErrLLMFailure, provider.Name(), err)
		}

		payload, err := extractJSON(raw)
		if err != nil {
			schemaErr = fmt.Errorf("%w: provider %s returned unparseable output: %v", ErrLLMFailure, provider.Name(), err)
			slog.Debug("Malformed LLM output, retrying",
				"provider", provider.Name(), "schema", req.Schema.Name, "attempt", attempt+1)
			continue
		}

		if err := ValidateAgainstSchema(payload, req.Schema.Raw); err != nil {
			schemaErr = fmt.Errorf("%w: output for schema %s: %v", ErrSchemaViolation, req.Schema.Name, err)
			slog.Debug("Schema-invalid LLM output, retrying",
				"provider", provider.Name(), "schema", req.Schema.Name, "attempt", attempt+1)
			continue
		}
		return payload, nil
	}
	return nil, schemaErr
}

// callWithTransportRetry retries transient transport failures with
// exponential backoff. Context cancellation aborts immediately.
func (c *StructuredClient) callWithTransportRetry(ctx context.Context, provider Provider, req Request) (string, error) {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = transportRetryInterval

	var out string
	operation := func() error {
		var err error
		out, err = provider.Generate(ctx, req)
		return err
	}
	err := backoff.Retry(operation,
		backoff.WithContext(backoff.WithMaxRetries(bo, transportRetries), ctx))
	return out, err
}

// Decode unmarshals schema-validated output into target. Call after
// GenerateStructured; the JSON is known-valid at this point so failures
// indicate a schema/struct mismatch, which is a programming error.
func Decode(raw json.RawMessage, target any) error {
	if err := json.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decoding structured output: %w", err)
	}
	return nil
}
