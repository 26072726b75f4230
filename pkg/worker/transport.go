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

var transportSchema = llm.SchemaFor("populate_transport", `{
	"type": "object",
	"required": ["legs"],
	"properties": {
		"legs": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["id", "mode", "duration_minutes"],
				"properties": {
					"id": {"type": "string", "pattern": "^day[0-9]+_node[0-9]+$"},
					"mode": {"type": "string", "enum": ["walk", "metro", "bus", "tram", "train", "taxi", "ferry", "car"]},
					"duration_minutes": {"type": "integer", "minimum": 1},
					"cost_amount": {"type": "number", "minimum": 0},
					"instructions": {"type": "string"}
				}
			}
		}
	}
}`)

const transportSystem = `You are a transit planner connecting the stops of a travel day.
For every transit slot identifier you are given, pick a realistic mode and duration between the surrounding stops, with short rider instructions.
Answer only for the identifiers listed; keep each id exactly as given.`

// TransportWorker fills transit placeholders and records the resulting travel
// edge between the surrounding stops.
type TransportWorker struct {
	client llm.Client
	ident  *identity.Service
	pub    events.Publisher
}

// NewTransportWorker wires the transport population worker.
func NewTransportWorker(client llm.Client, ident *identity.Service, pub events.Publisher) *TransportWorker {
	return &TransportWorker{client: client, ident: ident, pub: pub}
}

// Capabilities implements Worker.
func (w *TransportWorker) Capabilities() Capabilities {
	return Capabilities{
		TaskType:       TaskPopulateTransport,
		Priority:       10,
		RequiredInputs: []string{"skeleton"},
	}
}

// Execute implements Worker.
func (w *TransportWorker) Execute(ctx context.Context, req *Request) (*Result, error) {
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
		targets := placeholderNodes(day, models.NodeTransit)
		if len(targets) == 0 {
			continue
		}
		if err := w.populateDay(ctx, req, day, targets); err != nil {
			lastErr = err
			slog.Warn("transport population failed for day",
				"itinerary_id", req.Itinerary.ID, "day", day.Number, "error", err)
			continue
		}
		populatedDays++
		reportProgress(ctx, w.pub, req, "population", 40, "transport",
			fmt.Sprintf("day %d transit filled", day.Number))
	}
	if populatedDays == 0 && lastErr != nil {
		return nil, lastErr
	}
	return &Result{}, nil
}

func (w *TransportWorker) populateDay(ctx context.Context, req *Request, day *models.Day, targets []*models.Node) error {
	raw, err := w.client.GenerateStructured(ctx, llm.Request{
		System:      transportSystem,
		Prompt:      w.buildPrompt(req.Itinerary, day, targets),
		Schema:      transportSchema,
		Temperature: 0.4,
	})
	if err != nil {
		return WrapLLM(err, fmt.Sprintf("populating transport for day %d", day.Number))
	}

	var out struct {
		Legs []struct {
			ID              string  `json:"id"`
			Mode            string  `json:"mode"`
			DurationMinutes int     `json:"duration_minutes"`
			CostAmount      float64 `json:"cost_amount"`
			Instructions    string  `json:"instructions"`
		} `json:"legs"`
	}
	if err := llm.Decode(raw, &out); err != nil {
		return Errorf(KindSchemaViolation, "decoding transport output: %v", err)
	}

	byID := make(map[string]*models.Node, len(targets))
	for _, n := range targets {
		byID[n.ID] = n
	}
	currency := req.Itinerary.Settings.Currency
	applied := 0
	for _, leg := range out.Legs {
		node, ok := byID[leg.ID]
		if !ok {
			slog.Warn("transport worker returned unknown node id",
				"itinerary_id", req.Itinerary.ID, "node_id", leg.ID)
			continue
		}
		node.Title = legTitle(leg.Mode)
		if node.Details == nil {
			node.Details = map[string]any{}
		}
		node.Details["mode"] = leg.Mode
		if leg.Instructions != "" {
			node.Details["instructions"] = leg.Instructions
		}
		if node.Timing != nil {
			node.Timing.DurationMinutes = leg.DurationMinutes
			node.Timing.EndMillis = node.Timing.StartMillis + int64(leg.DurationMinutes)*60_000
		}
		if leg.CostAmount > 0 {
			node.Cost = &models.Cost{Amount: leg.CostAmount, Currency: currency, PerPerson: true}
		}
		recordEdge(day, node.ID, leg.Mode, leg.DurationMinutes)
		clearPlaceholder(node)
		applied++
	}
	if applied == 0 {
		return Errorf(KindLLMFailure, "no transit slots filled for day %d", day.Number)
	}
	return nil
}

func legTitle(mode string) string {
	return strings.ToUpper(mode[:1]) + mode[1:] + " transfer"
}

// recordEdge links the stops surrounding a transit node with the leg's travel
// information, replacing a stale edge for the same pair.
func recordEdge(day *models.Day, transitID, mode string, minutes int) {
	pos := -1
	for i := range day.Nodes {
		if day.Nodes[i].ID == transitID {
			pos = i
			break
		}
	}
	if pos <= 0 || pos >= len(day.Nodes)-1 {
		return
	}
	from, to := day.Nodes[pos-1].ID, day.Nodes[pos+1].ID
	for i := range day.Edges {
		if day.Edges[i].From == from && day.Edges[i].To == to {
			day.Edges[i].Mode = mode
			day.Edges[i].DurationMinutes = minutes
			return
		}
	}
	day.Edges = append(day.Edges, models.Edge{From: from, To: to, Mode: mode, DurationMinutes: minutes})
}

func (w *TransportWorker) buildPrompt(it *models.Itinerary, day *models.Day, targets []*models.Node) string {
	var b strings.Builder
	b.WriteString(tripContext(it))
	b.WriteString("\n")
	b.WriteString(w.ident.SummarizeForWorker(it, "transport", summaryCharBudget))
	fmt.Fprintf(&b, "\nPlan these transit legs on day %d (%s); the summary above shows the stops before and after each leg:\n", day.Number, day.Date)
	for _, n := range targets {
		fmt.Fprintf(&b, "  [%s]\n", n.ID)
	}
	return b.String()
}
