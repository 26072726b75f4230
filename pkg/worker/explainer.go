package worker

import (
	"context"
	"fmt"
	"strings"

	"github.com/wanderplan/wanderplan/pkg/identity"
	"github.com/wanderplan/wanderplan/pkg/llm"
)

var explainSchema = llm.SchemaFor("explain", `{
	"type": "object",
	"required": ["answer"],
	"properties": {
		"answer": {"type": "string", "minLength": 1}
	}
}`)

const explainerSystem = `You answer a traveller's questions about their itinerary.
Ground every statement in the itinerary summary you are given; if the answer is not in the itinerary, say so rather than inventing details.
Be concise and concrete: names, times, and day numbers over generalities.`

// ExplainerWorker handles read-only chat questions. It never produces a
// ChangeSet and never mutates the itinerary.
type ExplainerWorker struct {
	client llm.Client
	ident  *identity.Service
}

// NewExplainerWorker wires the explainer.
func NewExplainerWorker(client llm.Client, ident *identity.Service) *ExplainerWorker {
	return &ExplainerWorker{client: client, ident: ident}
}

// Capabilities implements Worker.
func (w *ExplainerWorker) Capabilities() Capabilities {
	return Capabilities{
		TaskType:       TaskExplain,
		Priority:       10,
		ChatEnabled:    true,
		RequiredInputs: []string{"itinerary", "text"},
	}
}

// Execute implements Worker.
func (w *ExplainerWorker) Execute(ctx context.Context, req *Request) (*Result, error) {
	caps := w.Capabilities()
	if err := checkTask(req.TaskType, caps); err != nil {
		return nil, err
	}
	if err := checkItinerary(req); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Text) == "" {
		return nil, Errorf(KindInvalidInput, "question is empty")
	}

	var b strings.Builder
	b.WriteString(tripContext(req.Itinerary))
	b.WriteString("\n")
	b.WriteString(w.ident.SummarizeForWorker(req.Itinerary, "explainer", summaryCharBudget))
	if req.TargetNodeID != "" {
		fmt.Fprintf(&b, "\nThe traveller is asking about node [%s].\n", req.TargetNodeID)
	}
	fmt.Fprintf(&b, "\nQuestion: %s\n", req.Text)

	raw, err := w.client.GenerateStructured(ctx, llm.Request{
		System:      explainerSystem,
		Prompt:      b.String(),
		Schema:      explainSchema,
		Temperature: 0.3,
	})
	if err != nil {
		return nil, WrapLLM(err, "answering itinerary question")
	}

	var out struct {
		Answer string `json:"answer"`
	}
	if err := llm.Decode(raw, &out); err != nil {
		return nil, Errorf(KindSchemaViolation, "decoding explainer output: %v", err)
	}
	return &Result{Message: out.Answer}, nil
}
