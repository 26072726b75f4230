package llm

import "context"

// maxTokensProvider overlays a default output budget on requests that don't
// set one. Explicit per-request budgets win.
type maxTokensProvider struct {
	Provider
	max int
}

// WithDefaultMaxTokens decorates a provider so requests without MaxTokens
// use the configured budget. A non-positive budget returns the provider
// unchanged.
func WithDefaultMaxTokens(p Provider, max int) Provider {
	if max <= 0 {
		return p
	}
	return &maxTokensProvider{Provider: p, max: max}
}

func (p *maxTokensProvider) Generate(ctx context.Context, req Request) (string, error) {
	if req.MaxTokens <= 0 {
		req.MaxTokens = p.max
	}
	return p.Provider.Generate(ctx, req)
}
