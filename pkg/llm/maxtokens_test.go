package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingProvider struct {
	lastReq Request
}

func (p *recordingProvider) Name() string { return "recording" }

func (p *recordingProvider) Generate(_ context.Context, req Request) (string, error) {
	p.lastReq = req
	return "{}", nil
}

func TestWithDefaultMaxTokens(t *testing.T) {
	inner := &recordingProvider{}
	p := WithDefaultMaxTokens(inner, 2048)

	_, err := p.Generate(context.Background(), Request{Prompt: "x"})
	require.NoError(t, err)
	assert.Equal(t, 2048, inner.lastReq.MaxTokens)

	// An explicit budget is left alone.
	_, err = p.Generate(context.Background(), Request{Prompt: "x", MaxTokens: 100})
	require.NoError(t, err)
	assert.Equal(t, 100, inner.lastReq.MaxTokens)
}

func TestWithDefaultMaxTokens_NonPositiveIsPassthrough(t *testing.T) {
	inner := &recordingProvider{}
	assert.Same(t, Provider(inner), WithDefaultMaxTokens(inner, 0))
}
