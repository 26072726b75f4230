package worker

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/wanderplan/wanderplan/pkg/events"
	"github.com/wanderplan/wanderplan/pkg/identity"
	"github.com/wanderplan/wanderplan/pkg/llm"
	"github.com/wanderplan/wanderplan/pkg/models"
)

var mealSchema = llm.SchemaFor("populate_meals", `{
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
					"cuisine": {"type": "string"},
					"address": {"type": "string"},
					"price_level": {"type": "string", "enum": ["budget", "moderate", "upscale"]},
					"tips": {"type": "array", "items": {"type": "string"}}
				}
			}
		}
	}
}`)

const mealSystem = `You are a food writer picking restaurants for a trip.
For every meal slot identifier you are given, choose one specific restaurant or food spot that suits the meal kind, the budget tier, and the day's route.
Answer only for the identifiers listed; keep each id exactly as given.`

// MealWorker fills meal placeholders. The meal kind (breakfast, lunch,
// dinner) is inferred from the slot's start time and fed to the prompt.
type MealWorker struct {
	client llm.Client
	ident  *identity.Service
	pub    events.Publisher
}

// NewMealWorker wires the meal population worker.
func NewMealWorker(client llm.Client, ident *identity.Service, pub events.Publisher) *MealWorker {
	return &MealWorker{client: client, ident: ident, pub: pub}
}

// Capabilities implements Worker.
func (w *MealWorker) Capabilities() Capabilities {
	return Capabilities{
		TaskType:       TaskPopulateMeals,
		Priority:       10,
		RequiredInputs: []string{"skeleton"},
	}
}

// Execute implements Worker.
func (w *MealWorker) Execute(ctx context.Context, req *Request) (*Result, error) {
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
		targets := placeholderNodes(day, models.NodeMeal)
		if len(targets) == 0 {
			continue
		}
		if err := w.populateDay(ctx, req, day, targets); err != nil {
			lastErr = err
			slog.Warn("meal population failed for day",
				"itinerary_id", req.Itinerary.ID, "day", day.Number, "error", err)
			continue
		}
		populatedDays++
		reportProgress(ctx, w.pub, req, "population", 40, "meal",
			fmt.Sprintf("day %d meals filled", day.Number))
	}
	if populatedDays == 0 && lastErr != nil {
		return nil, lastErr
	}
	return &Result{}, nil
}

func (w *MealWorker) populateDay(ctx context.Context, req *Request, day *models.Day, targets []*models.Node) error {
	raw, err := w.client.GenerateStructured(ctx, llm.Request{
		System:      mealSystem,
		Prompt:      w.buildPrompt(req.Itinerary, day, targets),
		Schema:      mealSchema,
		Temperature: 0.7,
	})
	if err != nil {
		return WrapLLM(err, fmt.Sprintf("populating meals for day %d", day.Number))
	}

	var out struct {
		Nodes []struct {
			ID         string   `json:"id"`
			Title      string   `json:"title"`
			Cuisine    string   `json:"cuisine"`
			Address    string   `json:"address"`
			PriceLevel string   `json:"price_level"`
			Tips       []string `json:"tips"`
		} `json:"nodes"`
	}
	if err := llm.Decode(raw, &out); err != nil {
		return Errorf(KindSchemaViolation, "decoding meal output: %v", err)
	}

	byID := make(map[string]*models.Node, len(targets))
	for _, n := range targets {
		byID[n.ID] = n
	}
	applied := 0
	for _, gen := range out.Nodes {
		node, ok := byID[gen.ID]
		if !ok {
			slog.Warn("meal worker returned unknown node id",
				"itinerary_id", req.Itinerary.ID, "node_id", gen.ID)
			continue
		}
		node.Title = gen.Title
		node.Location = &models.Location{Name: gen.Title, Address: gen.Address}
		if node.Details == nil {
			node.Details = map[string]any{}
		}
		node.Details["meal"] = mealKind(node)
		if gen.Cuisine != "" {
			node.Details["cuisine"] = gen.Cuisine
		}
		if gen.PriceLevel != "" {
			node.Details["price_level"] = gen.PriceLevel
		}
		if len(gen.Tips) > 0 {
			node.Tips = gen.Tips
		}
		clearPlaceholder(node)
		applied++
	}
	if applied == 0 {
		return Errorf(KindLLMFailure, "no meal slots filled for day %d", day.Number)
	}
	return nil
}

// mealKind infers breakfast/lunch/dinner from the slot's wall-clock start.
// Unscheduled slots default to lunch.
func mealKind(n *models.Node) string {
	if n.Timing == nil || n.Timing.StartMillis == 0 {
		return "lunch"
	}
	switch hour := time.UnixMilli(n.Timing.StartMillis).UTC().Hour(); {
	case hour < 11:
		return "breakfast"
	case hour < 16:
		return "lunch"
	default:
		return "dinner"
	}
}

func (w *MealWorker) buildPrompt(it *models.Itinerary, day *models.Day, targets []*models.Node) string {
	var b strings.Builder
	b.WriteString(tripContext(it))
	b.WriteString("\n")
	b.WriteString(w.ident.SummarizeForWorker(it, "meal", summaryCharBudget))
	fmt.Fprintf(&b, "\nPick restaurants for these slots on day %d (%s):\n", day.Number, day.Date)
	for _, n := range targets {
		fmt.Fprintf(&b, "  [%s] %s (%s)\n", n.ID, n.Title, mealKind(n))
	}
	return b.String()
}
