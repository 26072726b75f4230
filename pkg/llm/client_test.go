package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedProvider returns its outputs in sequence, then repeats the last.
type scriptedProvider struct {
	name    string
	outputs []string
	errs    []error
	calls   int
}

func (p *scriptedProvider) Name() string { return p.name }

func (p *scriptedProvider) Generate(context.Context, Request) (string, error) {
	i := p.calls
	p.calls++
	if i >= len(p.outputs) {
		i = len(p.outputs) - 1
	}
	var err error
	if i < len(p.errs) {
		err = p.errs[i]
	}
	return p.outputs[i], err
}

var intentSchema = SchemaFor("intent", `{
	"type": "object",
	"required": ["intent", "confidence"],
	"properties": {
		"intent": {"type": "string", "enum": ["create", "edit", "explain", "book", "unknown"]},
		"confidence": {"type": "number", "minimum": 0, "maximum": 1}
	}
}`)

func TestStructuredClient_ValidFirstTry(t *testing.T) {
	provider := &scriptedProvider{name: "p1", outputs: []string{`{"intent":"edit","confidence":0.9}`}}
	client, err := NewStructuredClient(provider)
	require.NoError(t, err)

	out, err := client.GenerateStructured(t.Context(), Request{Schema: intentSchema, Prompt: "move dinner"})
	require.NoError(t, err)

	var decoded struct {
		Intent     string  `json:"intent"`
		Confidence float64 `json:"confidence"`
	}
	require.NoError(t, Decode(out, &decoded))
	assert.Equal(t, "edit", decoded.Intent)
	assert.Equal(t, 1, provider.calls)
}

func TestStructuredClient_RetriesMalformedThenSucceeds(t *testing.T) {
	provider := &scriptedProvider{name: "p1", outputs: []string{
		"I think you want to edit the dinner", // no JSON
		`{"intent":"fly","confidence":0.9}`,   // schema-invalid
		`{"intent":"edit","confidence":0.8}`,  // valid
	}}
	client, err := NewStructuredClient(provider)
	require.NoError(t, err)

	out, err := client.GenerateStructured(t.Context(), Request{Schema: intentSchema})
	require.NoError(t, err)
	assert.JSONEq(t, `{"intent":"edit","confidence":0.8}`, string(out))
	assert.Equal(t, 3, provider.calls)
}

func TestStructuredClient_SchemaViolationAfterRetries(t *testing.T) {
	provider := &scriptedProvider{name: "p1", outputs: []string{`{"intent":"fly","confidence":2}`}}
	client, err := NewStructuredClient(provider)
	require.NoError(t, err)

	_, err = client.GenerateStructured(t.Context(), Request{Schema: intentSchema})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSchemaViolation), "got %v", err)
	// Initial call + two retries.
	assert.Equal(t, 3, provider.calls)
}

func TestStructuredClient_FallsBackToNextProvider(t *testing.T) {
	primary := &scriptedProvider{
		name:    "down",
		outputs: []string{""},
		errs:    []error{fmt.Errorf("connection refused")},
	}
	secondary := &scriptedProvider{name: "up", outputs: []string{`{"intent":"book","confidence":1}`}}
	client, err := NewStructuredClient(primary, secondary)
	require.NoError(t, err)

	out, err := client.GenerateStructured(t.Context(), Request{Schema: intentSchema})
	require.NoError(t, err)
	assert.JSONEq(t, `{"intent":"book","confidence":1}`, string(out))
	// Transport errors are retried before failover.
	assert.Equal(t, 1+transportRetries, primary.calls)
}

func TestStructuredClient_AllProvidersFail(t *testing.T) {
	p1 := &scriptedProvider{name: "p1", outputs: []string{""}, errs: []error{fmt.Errorf("boom")}}
	client, err := NewStructuredClient(p1)
	require.NoError(t, err)

	_, err = client.GenerateStructured(t.Context(), Request{Schema: intentSchema})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrLLMFailure))
}

func TestStructuredClient_RequiresProvider(t *testing.T) {
	_, err := NewStructuredClient()
	assert.Error(t, err)
}

func TestExtractJSON(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
		ok   bool
	}{
		{"bare object", `{"a":1}`, `{"a":1}`, true},
		{"fenced", "```json\n{\"a\":1}\n```", `{"a":1}`, true},
		{"prose wrapped", `Here you go: {"a":1} — enjoy`, `{"a":1}`, true},
		{"array", `[1,2,3]`, `[1,2,3]`, true},
		{"no json", `sorry, I cannot help`, "", false},
		{"broken json", `{"a":`, "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := extractJSON(tc.in)
			if !tc.ok {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, string(out))
		})
	}
}

func TestValidateAgainstSchema(t *testing.T) {
	t.Run("empty schema accepts anything", func(t *testing.T) {
		assert.NoError(t, ValidateAgainstSchema(json.RawMessage(`{"x":1}`), nil))
	})

	t.Run("valid payload passes", func(t *testing.T) {
		assert.NoError(t, ValidateAgainstSchema(
			json.RawMessage(`{"intent":"edit","confidence":0.5}`), intentSchema.Raw))
	})

	t.Run("missing required field fails", func(t *testing.T) {
		assert.Error(t, ValidateAgainstSchema(
			json.RawMessage(`{"intent":"edit"}`), intentSchema.Raw))
	})
}

func TestNoopProvider(t *testing.T) {
	noop := NewNoopProvider()
	noop.Respond("intent", `{"intent":"explain","confidence":1}`)

	client, err := NewStructuredClient(noop)
	require.NoError(t, err)

	out, err := client.GenerateStructured(t.Context(), Request{Schema: intentSchema})
	require.NoError(t, err)
	assert.JSONEq(t, `{"intent":"explain","confidence":1}`, string(out))

	_, err = client.GenerateStructured(t.Context(), Request{Schema: SchemaFor("other", `{}`)})
	assert.Error(t, err)
}
