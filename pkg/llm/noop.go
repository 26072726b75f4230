package llm

import (
	"context"
	"fmt"
	"sync"
)

// NoopProvider is the non-production fallback: deterministic canned output
// keyed by schema name, no network. It backs local development and tests
// when no provider API key is configured.
type NoopProvider struct {
	mu        sync.RWMutex
	responses map[string]string
}

// NewNoopProvider creates an empty noop provider. Register responses per
// schema name with Respond.
func NewNoopProvider() *NoopProvider {
	return &NoopProvider{responses: make(map[string]string)}
}

// Name implements Provider.
func (p *NoopProvider) Name() string { return "noop" }

// Respond registers the canned output returned for a schema name.
func (p *NoopProvider) Respond(schemaName, output string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.responses[schemaName] = output
}

// Generate implements Provider.
func (p *NoopProvider) Generate(_ context.Context, req Request) (string, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if out, ok := p.responses[req.Schema.Name]; ok {
		return out, nil
	}
	return "", fmt.Errorf("noop provider has no response registered for schema %q", req.Schema.Name)
}
