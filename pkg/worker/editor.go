package worker

import (
	"context"
	"fmt"
	"strings"

	"github.com/wanderplan/wanderplan/pkg/identity"
	"github.com/wanderplan/wanderplan/pkg/llm"
	"github.com/wanderplan/wanderplan/pkg/models"
)

var changeSetSchema = llm.SchemaFor("changeset", `{
	"type": "object",
	"required": ["ops"],
	"properties": {
		"ops": {
			"type": "array",
			"minItems": 1,
			"items": {
				"type": "object",
				"required": ["op"],
				"properties": {
					"op": {"type": "string", "enum": ["insert", "replace", "update", "delete", "move", "unlock"]},
					"id": {"type": "string"},
					"position": {"type": "integer"},
					"to_day": {"type": "integer", "minimum": 1},
					"to_position": {"type": "integer"},
					"start_time": {"type": "string", "pattern": "^([01][0-9]|2[0-3]):[0-5][0-9]$"},
					"end_time": {"type": "string", "pattern": "^([01][0-9]|2[0-3]):[0-5][0-9]$"},
					"node": {"type": "object"},
					"patch": {"type": "object"}
				}
			}
		},
		"day": {"type": "integer", "minimum": 1},
		"reason": {"type": "string"}
	}
}`)

const editorSystem = `You translate a traveller's natural-language request into structured itinerary operations.
Target nodes only by the exact identifiers shown in the itinerary summary. Never invent identifiers.
Use the smallest set of operations that fulfils the request. Do not touch nodes marked [locked] except with an explicit unlock operation the traveller asked for.
Put replacement content in "node", partial changes in "patch", and time-of-day changes in "start_time"/"end_time".`

// EditorWorker turns a chat request into a ChangeSet for the change engine.
// It never mutates the itinerary itself — the engine owns validation,
// locking, and persistence.
type EditorWorker struct {
	client llm.Client
	ident  *identity.Service
}

// NewEditorWorker wires the edit worker.
func NewEditorWorker(client llm.Client, ident *identity.Service) *EditorWorker {
	return &EditorWorker{client: client, ident: ident}
}

// Capabilities implements Worker.
func (w *EditorWorker) Capabilities() Capabilities {
	return Capabilities{
		TaskType:          TaskEdit,
		Priority:          10,
		ChatEnabled:       true,
		RequiredInputs:    []string{"itinerary", "text"},
		ProducesChangeSet: true,
	}
}

// Execute implements Worker.
func (w *EditorWorker) Execute(ctx context.Context, req *Request) (*Result, error) {
	caps := w.Capabilities()
	if err := checkTask(req.TaskType, caps); err != nil {
		return nil, err
	}
	if err := checkItinerary(req); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Text) == "" {
		return nil, Errorf(KindInvalidInput, "edit request has no text")
	}

	raw, err := w.client.GenerateStructured(ctx, llm.Request{
		System:      editorSystem,
		Prompt:      w.buildPrompt(req),
		Schema:      changeSetSchema,
		Temperature: 0.2,
	})
	if err != nil {
		return nil, WrapLLM(err, "building changeset from edit request")
	}

	var cs models.ChangeSet
	if err := llm.Decode(raw, &cs); err != nil {
		return nil, Errorf(KindSchemaViolation, "decoding changeset output: %v", err)
	}
	if len(cs.Ops) == 0 {
		return nil, Errorf(KindLLMFailure, "edit request produced no operations")
	}

	cs.BaseVersion = req.Itinerary.Version
	cs.Scope = req.Scope
	if cs.Reason == "" {
		cs.Reason = req.Text
	}
	return &Result{
		ChangeSet: &cs,
		Message:   describeChangeSet(&cs),
	}, nil
}

func (w *EditorWorker) buildPrompt(req *Request) string {
	var b strings.Builder
	b.WriteString(w.ident.SummarizeForWorker(req.Itinerary, "editor", summaryCharBudget))
	if req.TargetNodeID != "" {
		fmt.Fprintf(&b, "\nThe traveller is referring to node [%s].\n", req.TargetNodeID)
	}
	fmt.Fprintf(&b, "\nRequest: %s\n", req.Text)
	return b.String()
}

// describeChangeSet renders a short confirmation line for the chat reply.
func describeChangeSet(cs *models.ChangeSet) string {
	counts := map[models.OpType]int{}
	for _, op := range cs.Ops {
		counts[op.Op]++
	}
	parts := make([]string, 0, len(counts))
	for _, t := range []models.OpType{models.OpInsert, models.OpReplace, models.OpUpdate, models.OpDelete, models.OpMove, models.OpUnlock} {
		if n := counts[t]; n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, t))
		}
	}
	return "Proposed changes: " + strings.Join(parts, ", ")
}
