package worker

import (
	"context"
	"fmt"
	"strings"

	"github.com/wanderplan/wanderplan/pkg/events"
	"github.com/wanderplan/wanderplan/pkg/identity"
	"github.com/wanderplan/wanderplan/pkg/llm"
	"github.com/wanderplan/wanderplan/pkg/models"
)

var skeletonSchema = llm.SchemaFor("skeleton", `{
	"type": "object",
	"required": ["days"],
	"properties": {
		"days": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["number", "nodes"],
				"properties": {
					"number": {"type": "integer", "minimum": 1},
					"theme": {"type": "string"},
					"nodes": {
						"type": "array",
						"items": {
							"type": "object",
							"required": ["title", "type", "start_time", "duration_minutes"],
							"properties": {
								"title": {"type": "string", "minLength": 1},
								"type": {"type": "string", "enum": ["attraction", "meal", "hotel", "transit", "activity"]},
								"start_time": {"type": "string", "pattern": "^([01][0-9]|2[0-3]):[0-5][0-9]$"},
								"duration_minutes": {"type": "integer", "minimum": 5}
							}
						}
					}
				}
			}
		}
	}
}`)

const skeletonSystem = `You are a travel planner laying out the structure of a trip.
Produce a day-by-day skeleton: for each day a sequence of activity slots in visit order.
Slots are structural placeholders (e.g. "Morning attraction", "Lunch", "Transfer to old town") — later passes fill in the concrete places.
Every day needs meals at sensible times and transit slots between areas.`

// SkeletonWorker runs the skeleton phase: it lays out the day/slot structure
// of a fresh itinerary. Node identifiers are minted canonically here; every
// later phase targets them.
type SkeletonWorker struct {
	client llm.Client
	pub    events.Publisher
}

// NewSkeletonWorker wires the skeleton worker.
func NewSkeletonWorker(client llm.Client, pub events.Publisher) *SkeletonWorker {
	return &SkeletonWorker{client: client, pub: pub}
}

// Capabilities implements Worker.
func (w *SkeletonWorker) Capabilities() Capabilities {
	return Capabilities{
		TaskType:       TaskCreate,
		Priority:       10,
		RequiredInputs: []string{"trip"},
	}
}

// Execute implements Worker. The itinerary arrives as a shell (days with
// dates, no nodes) and leaves with placeholder nodes on every day.
func (w *SkeletonWorker) Execute(ctx context.Context, req *Request) (*Result, error) {
	caps := w.Capabilities()
	if err := checkTask(req.TaskType, caps); err != nil {
		return nil, err
	}
	if err := checkItinerary(req); err != nil {
		return nil, err
	}
	it := req.Itinerary
	if len(it.Days) == 0 {
		return nil, Errorf(KindInvalidInput, "itinerary %s has no day shells", it.ID)
	}

	reportProgress(ctx, w.pub, req, "skeleton", 5, "skeleton", "laying out day structure")

	prompt := w.buildPrompt(it)
	raw, err := w.client.GenerateStructured(ctx, llm.Request{
		System:      skeletonSystem,
		Prompt:      prompt,
		Schema:      skeletonSchema,
		Temperature: 0.7,
	})
	if err != nil {
		return nil, WrapLLM(err, "skeleton generation")
	}

	var out struct {
		Days []struct {
			Number int    `json:"number"`
			Theme  string `json:"theme"`
			Nodes  []struct {
				Title           string `json:"title"`
				Type            string `json:"type"`
				StartTime       string `json:"start_time"`
				DurationMinutes int    `json:"duration_minutes"`
			} `json:"nodes"`
		} `json:"days"`
	}
	if err := llm.Decode(raw, &out); err != nil {
		return nil, Errorf(KindSchemaViolation, "decoding skeleton output: %v", err)
	}

	filled := 0
	for _, gen := range out.Days {
		day := it.DayByNumber(gen.Number)
		if day == nil {
			// The model invented a day outside the trip range; drop it.
			continue
		}
		day.Nodes = day.Nodes[:0]
		day.Edges = nil
		if gen.Theme != "" {
			day.Notes = gen.Theme
		}
		for i, slot := range gen.Nodes {
			node := models.Node{
				ID:      identity.NodeID(day.Number, i+1),
				Title:   slot.Title,
				Type:    models.NodeType(slot.Type),
				Details: map[string]any{"placeholder": true},
			}
			if start, err := clockOnDate(day.Date, slot.StartTime); err == nil {
				node.Timing = &models.Timing{
					StartMillis:     start,
					EndMillis:       start + int64(slot.DurationMinutes)*60_000,
					DurationMinutes: slot.DurationMinutes,
				}
			}
			day.Nodes = append(day.Nodes, node)
		}
		if len(day.Nodes) > 0 {
			filled++
		}
	}
	if filled == 0 {
		return nil, Errorf(KindLLMFailure, "skeleton produced no usable days for itinerary %s", it.ID)
	}

	reportProgress(ctx, w.pub, req, "skeleton", 10, "skeleton",
		fmt.Sprintf("structured %d of %d days", filled, len(it.Days)))
	return &Result{}, nil
}

func (w *SkeletonWorker) buildPrompt(it *models.Itinerary) string {
	var b strings.Builder
	b.WriteString(tripContext(it))
	b.WriteString("\nPlan the following days:\n")
	for i := range it.Days {
		fmt.Fprintf(&b, "  Day %d — %s\n", it.Days[i].Number, it.Days[i].Date)
	}
	return b.String()
}
