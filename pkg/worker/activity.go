package worker

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/wanderplan/wanderplan/pkg/events"
	"github.com/wanderplan/wanderplan/pkg/identity"
	"github.com/wanderplan/wanderplan/pkg/llm"
	"github.com/wanderplan/wanderplan/pkg/models"
)

var activitySchema = llm.SchemaFor("populate_attractions", `{
	"type": "object",
	"required": ["nodes"],
	"properties": {
		"nodes": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["id", "title"],
				"properties": {
					"id": {"type": "string", "pattern": "^day[0-9]+_node[0-9]+$"},
					"title": {"type": "string", "minLength": 1},
					"description": {"type": "string"},
					"address": {"type": "string"},
					"duration_minutes": {"type": "integer", "minimum": 5},
					"tips": {"type": "array", "items": {"type": "string"}}
				}
			}
		}
	}
}`)

const activitySystem = `You are a local guide filling attraction and activity slots of an itinerary with real, specific places.
For every slot identifier you are given, pick one concrete attraction or activity that fits the slot's time of day, the trip's interests, and the day's geography.
Answer only for the identifiers listed; keep each id exactly as given.`

// ActivityWorker fills attraction and activity placeholders with concrete
// places, one LLM call per day so a bad day fails in isolation.
type ActivityWorker struct {
	client llm.Client
	ident  *identity.Service
	pub    events.Publisher
}

// NewActivityWorker wires the attraction population worker.
func NewActivityWorker(client llm.Client, ident *identity.Service, pub events.Publisher) *ActivityWorker {
	return &ActivityWorker{client: client, ident: ident, pub: pub}
}

// Capabilities implements Worker.
func (w *ActivityWorker) Capabilities() Capabilities {
	return Capabilities{
		TaskType:       TaskPopulateAttraction,
		Priority:       10,
		RequiredInputs: []string{"skeleton"},
	}
}

// Execute implements Worker.
func (w *ActivityWorker) Execute(ctx context.Context, req *Request) (*Result, error) {
	caps := w.Capabilities()
	if err := checkTask(req.TaskType, caps); err != nil {
		return nil, err
	}
	if err := checkItinerary(req); err != nil {
		return nil, err
	}

	days := daysInScope(req)
	var lastErr error
	populatedDays := 0
	for _, day := range days {
		targets := placeholderNodes(day, models.NodeAttraction, models.NodeActivity)
		if len(targets) == 0 {
			continue
		}
		if err := w.populateDay(ctx, req, day, targets); err != nil {
			lastErr = err
			slog.Warn("attraction population failed for day",
				"itinerary_id", req.Itinerary.ID, "day", day.Number, "error", err)
			continue
		}
		populatedDays++
		reportProgress(ctx, w.pub, req, "population", 40, "activity",
			fmt.Sprintf("day %d attractions filled", day.Number))
	}
	if populatedDays == 0 && lastErr != nil {
		return nil, lastErr
	}
	return &Result{}, nil
}

func (w *ActivityWorker) populateDay(ctx context.Context, req *Request, day *models.Day, targets []*models.Node) error {
	raw, err := w.client.GenerateStructured(ctx, llm.Request{
		System:      activitySystem,
		Prompt:      w.buildPrompt(req.Itinerary, day, targets),
		Schema:      activitySchema,
		Temperature: 0.7,
	})
	if err != nil {
		return WrapLLM(err, fmt.Sprintf("populating attractions for day %d", day.Number))
	}

	var out struct {
		Nodes []struct {
			ID              string   `json:"id"`
			Title           string   `json:"title"`
			Description     string   `json:"description"`
			Address         string   `json:"address"`
			DurationMinutes int      `json:"duration_minutes"`
			Tips            []string `json:"tips"`
		} `json:"nodes"`
	}
	if err := llm.Decode(raw, &out); err != nil {
		return Errorf(KindSchemaViolation, "decoding attraction output: %v", err)
	}

	byID := make(map[string]*models.Node, len(targets))
	for _, n := range targets {
		byID[n.ID] = n
	}
	applied := 0
	for _, gen := range out.Nodes {
		node, ok := byID[gen.ID]
		if !ok {
			// Identifier outside the requested set; strict resolution, skip.
			slog.Warn("attraction worker returned unknown node id",
				"itinerary_id", req.Itinerary.ID, "node_id", gen.ID)
			continue
		}
		node.Title = gen.Title
		node.Location = &models.Location{Name: gen.Title, Address: gen.Address}
		if gen.Description != "" {
			if node.Details == nil {
				node.Details = map[string]any{}
			}
			node.Details["description"] = gen.Description
		}
		if len(gen.Tips) > 0 {
			node.Tips = gen.Tips
		}
		if gen.DurationMinutes > 0 && node.Timing != nil {
			node.Timing.DurationMinutes = gen.DurationMinutes
			node.Timing.EndMillis = node.Timing.StartMillis + int64(gen.DurationMinutes)*60_000
		}
		clearPlaceholder(node)
		applied++
	}
	if applied == 0 {
		return Errorf(KindLLMFailure, "no attraction slots filled for day %d", day.Number)
	}
	return nil
}

func (w *ActivityWorker) buildPrompt(it *models.Itinerary, day *models.Day, targets []*models.Node) string {
	var b strings.Builder
	b.WriteString(tripContext(it))
	b.WriteString("\n")
	b.WriteString(w.ident.SummarizeForWorker(it, "activity", summaryCharBudget))
	fmt.Fprintf(&b, "\nFill these slots on day %d (%s):\n", day.Number, day.Date)
	for _, n := range targets {
		fmt.Fprintf(&b, "  [%s] %s", n.ID, n.Title)
		if n.Timing != nil && n.Timing.DurationMinutes > 0 {
			fmt.Fprintf(&b, " (~%d min)", n.Timing.DurationMinutes)
		}
		b.WriteString("\n")
	}
	return b.String()
}
