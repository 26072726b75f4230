package worker

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/wanderplan/wanderplan/pkg/events"
	"github.com/wanderplan/wanderplan/pkg/models"
)

// Pacing thresholds: more non-transit nodes on a day than the profile allows
// earns the day a pacing note.
var pacingLimits = map[string]int{
	"relaxed":  4,
	"moderate": 6,
	"packed":   8,
}

const defaultPacingLimit = 6

// EnrichmentWorker grounds nodes in the real world: coordinates, place
// identifiers, formatted addresses, opening hours. It also flags days that
// look overpacked for the trip's pacing profile. Chat-enabled so "where
// exactly is this?" style requests can target a single node.
type EnrichmentWorker struct {
	places PlacesClient
	pub    events.Publisher
}

// NewEnrichmentWorker wires the enrichment worker.
func NewEnrichmentWorker(places PlacesClient, pub events.Publisher) *EnrichmentWorker {
	return &EnrichmentWorker{places: places, pub: pub}
}

// Capabilities implements Worker.
func (w *EnrichmentWorker) Capabilities() Capabilities {
	return Capabilities{
		TaskType:       TaskEnrich,
		Priority:       10,
		ChatEnabled:    true,
		RequiredInputs: []string{"population"},
	}
}

// Execute implements Worker. With a TargetNodeID the run is scoped to that
// node (chat path); otherwise every node lacking coordinates is attempted.
// Individual lookup failures degrade to warnings; the worker only fails when
// nothing could be enriched at all.
func (w *EnrichmentWorker) Execute(ctx context.Context, req *Request) (*Result, error) {
	caps := w.Capabilities()
	if err := checkTask(req.TaskType, caps); err != nil {
		return nil, err
	}
	if err := checkItinerary(req); err != nil {
		return nil, err
	}
	it := req.Itinerary

	targets := w.selectTargets(req)
	if len(targets) == 0 {
		w.notePacing(it)
		return &Result{Message: "nothing to enrich"}, nil
	}

	enriched, attempted := 0, 0
	var lastErr error
	for _, node := range targets {
		if ctx.Err() != nil {
			return nil, Errorf(KindTransient, "enrichment cancelled: %v", ctx.Err())
		}
		attempted++
		if err := w.enrichNode(ctx, it, node); err != nil {
			lastErr = err
			slog.Warn("place lookup failed",
				"itinerary_id", it.ID, "node_id", node.ID, "error", err)
			continue
		}
		enriched++
		w.publishEnhanced(ctx, req, node.ID, "coordinates")
	}
	if enriched == 0 && attempted > 0 {
		return nil, &Error{Kind: KindDependencyFailure, Message: "place lookups failed for every node", Wrapped: lastErr}
	}

	w.notePacing(it)
	reportProgress(ctx, w.pub, req, "enrichment", 70, "enrichment",
		fmt.Sprintf("enriched %d of %d nodes", enriched, attempted))
	return &Result{Message: fmt.Sprintf("enriched %d of %d nodes", enriched, attempted)}, nil
}

// selectTargets picks the nodes to enrich: the chat target, or every
// locatable node without coordinates.
func (w *EnrichmentWorker) selectTargets(req *Request) []*models.Node {
	it := req.Itinerary
	if req.TargetNodeID != "" {
		if _, node := it.FindNode(req.TargetNodeID); node != nil {
			return []*models.Node{node}
		}
		return nil
	}
	var out []*models.Node
	for _, day := range daysInScope(req) {
		for i := range day.Nodes {
			n := &day.Nodes[i]
			if n.Type == models.NodeTransit || isPlaceholder(n) {
				continue
			}
			if n.Location == nil || n.Location.Coordinates == nil {
				out = append(out, n)
			}
		}
	}
	return out
}

func (w *EnrichmentWorker) enrichNode(ctx context.Context, it *models.Itinerary, node *models.Node) error {
	query := node.Title
	if node.Location != nil && node.Location.Name != "" {
		query = node.Location.Name
	}
	info, err := w.places.Lookup(ctx, query, it.Trip.Destination)
	if err != nil {
		return err
	}
	if !info.Coordinates.Valid() {
		return fmt.Errorf("lookup for %q returned out-of-range coordinates", query)
	}
	if node.Location == nil {
		node.Location = &models.Location{Name: node.Title}
	}
	coords := info.Coordinates
	node.Location.Coordinates = &coords
	node.Location.PlaceID = info.PlaceID
	node.Location.FormattedAddress = info.FormattedAddress
	if len(info.Hours) > 0 {
		if node.Details == nil {
			node.Details = map[string]any{}
		}
		node.Details["hours"] = info.Hours
	}
	if len(info.PhotoURLs) > 0 {
		node.Links = append(node.Links, info.PhotoURLs...)
	}
	return nil
}

// notePacing appends a note to days carrying more activity than the pacing
// profile allows. Notes are additive; an existing pacing note is not repeated.
func (w *EnrichmentWorker) notePacing(it *models.Itinerary) {
	limit, ok := pacingLimits[it.Settings.Pacing]
	if !ok {
		limit = defaultPacingLimit
	}
	for i := range it.Days {
		day := &it.Days[i]
		active := 0
		for j := range day.Nodes {
			if day.Nodes[j].Type != models.NodeTransit {
				active++
			}
		}
		if active <= limit || strings.Contains(day.Notes, "Pacing:") {
			continue
		}
		note := fmt.Sprintf("Pacing: %d activities may be a lot for a %s day", active, pacingName(it.Settings.Pacing))
		if day.Notes == "" {
			day.Notes = note
		} else {
			day.Notes += " — " + note
		}
	}
}

func pacingName(p string) string {
	if p == "" {
		return "moderate"
	}
	return p
}

func (w *EnrichmentWorker) publishEnhanced(ctx context.Context, req *Request, nodeID, enhancement string) {
	if w.pub == nil {
		return
	}
	p := events.NodeEnhancedPayload{
		BasePayload: events.NewBase(events.EventTypeNodeEnhanced, req.Itinerary.ID, req.ExecutionID),
		NodeID:      nodeID,
		Enhancement: enhancement,
	}
	if err := w.pub.PublishNodeEnhanced(ctx, req.Itinerary.ID, p); err != nil {
		slog.Warn("node_enhanced publish failed", "node_id", nodeID, "error", err)
	}
}
