// Package identity guarantees stable node identifiers across the pipeline.
//
// The historical failure mode this package exists to prevent: the summary an
// LLM worker sees and the tree the change engine mutates were read from two
// different snapshots, so the worker targeted identifiers that no longer
// existed. Callers MUST thread the migrated in-memory itinerary through to
// the change engine instead of re-reading it from the store.
package identity

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/wanderplan/wanderplan/pkg/models"
)

// CanonicalPattern matches the stable node identifier scheme day{N}_node{M}.
var CanonicalPattern = regexp.MustCompile(`^day\d+_node\d+$`)

// Store is the persistence dependency of the identity service. Satisfied by
// services.ItineraryService.
type Store interface {
	// PutItinerary persists the itinerary; the stored row must be at
	// version-1 or the put fails with a version conflict.
	PutItinerary(ctx context.Context, it *models.Itinerary) error
}

// Service mints, migrates, and validates node identifiers, and renders the
// itinerary summaries workers receive in their prompts.
type Service struct {
	store Store
}

// NewService creates an identity service. store may be nil for callers that
// only mint and summarize (the change engine persists through its own path).
func NewService(store Store) *Service {
	return &Service{store: store}
}

// NodeID returns the canonical identifier for position pos (1-based) on day n.
func NodeID(day, pos int) string {
	return fmt.Sprintf("day%d_node%d", day, pos)
}

// Renumber rewrites every node identifier in the day to the canonical scheme
// in list order starting at 1. Relative order is preserved. Returns true if
// any identifier changed.
func Renumber(day *models.Day) bool {
	changed := false
	for i := range day.Nodes {
		want := NodeID(day.Number, i+1)
		if day.Nodes[i].ID != want {
			day.Nodes[i].ID = want
			changed = true
		}
	}
	return changed
}

// MigrateIfNeeded renumbers all nodes to the canonical scheme when any
// identifier is missing or legacy-formatted. The migration is idempotent: if
// every identifier already matches, the itinerary is returned untouched and
// nothing is persisted. On migration the version is bumped and the itinerary
// persisted through the store.
func (s *Service) MigrateIfNeeded(ctx context.Context, it *models.Itinerary) (*models.Itinerary, error) {
	needs := false
	for di := range it.Days {
		for ni := range it.Days[di].Nodes {
			if !CanonicalPattern.MatchString(it.Days[di].Nodes[ni].ID) {
				needs = true
				break
			}
		}
		if needs {
			break
		}
	}
	if !needs {
		return it, nil
	}

	migrated := it.Clone()
	for di := range migrated.Days {
		Renumber(&migrated.Days[di])
	}
	migrated.Version++
	migrated.UpdatedAt = time.Now().UTC()

	if s.store != nil {
		if err := s.store.PutItinerary(ctx, migrated); err != nil {
			return nil, fmt.Errorf("persisting migrated itinerary %s: %w", it.ID, err)
		}
	}
	return migrated, nil
}

// SummarizeForWorker renders a compact textual view of the itinerary for an
// LLM prompt: one line per node with its canonical identifier, title, type,
// timing window, and location name. The rendering enumerates exactly the
// identifiers present in the tree — it never invents or elides entries.
// When the rendering would exceed charBudget, per-node detail is reduced
// before any node line is dropped; identifiers are the last thing to go.
func (s *Service) SummarizeForWorker(it *models.Itinerary, workerKind string, charBudget int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Itinerary %s — %s, %s to %s (v%d)\n",
		it.ID, it.Trip.Destination, it.Trip.StartDate, it.Trip.EndDate, it.Version)

	full := renderDays(it, true)
	if charBudget <= 0 || b.Len()+len(full) <= charBudget {
		b.WriteString(full)
		return b.String()
	}

	// Over budget: drop timing/location detail but keep every id line.
	compact := renderDays(it, false)
	b.WriteString(compact)
	return b.String()
}

func renderDays(it *models.Itinerary, detailed bool) string {
	var b strings.Builder
	for di := range it.Days {
		day := &it.Days[di]
		fmt.Fprintf(&b, "Day %d (%s):\n", day.Number, day.Date)
		if len(day.Nodes) == 0 {
			b.WriteString("  (empty)\n")
			continue
		}
		for ni := range day.Nodes {
			n := &day.Nodes[ni]
			fmt.Fprintf(&b, "  [%s] %s (%s)", n.ID, n.Title, n.Type)
			if detailed {
				if n.Timing != nil && n.Timing.StartMillis > 0 {
					start := time.UnixMilli(n.Timing.StartMillis).UTC()
					if n.Timing.EndMillis > 0 {
						end := time.UnixMilli(n.Timing.EndMillis).UTC()
						fmt.Fprintf(&b, " %s-%s", start.Format("15:04"), end.Format("15:04"))
					} else {
						fmt.Fprintf(&b, " %s", start.Format("15:04"))
					}
				}
				if n.Location != nil && n.Location.Name != "" && n.Location.Name != n.Title {
					fmt.Fprintf(&b, " @ %s", n.Location.Name)
				}
				if n.Locked {
					b.WriteString(" [locked]")
				}
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

// ValidationError describes one consistency violation found in an itinerary.
type ValidationError struct {
	NodeID  string
	Day     int
	Message string
}

func (e ValidationError) Error() string {
	if e.NodeID != "" {
		return fmt.Sprintf("day %d node %s: %s", e.Day, e.NodeID, e.Message)
	}
	return fmt.Sprintf("day %d: %s", e.Day, e.Message)
}

// ValidateConsistency detects missing identifiers, blank titles, inverted
// timings, out-of-range coordinates, and duplicate identifiers within a day.
// The pipeline aborts on any returned error.
func (s *Service) ValidateConsistency(it *models.Itinerary) []ValidationError {
	var errs []ValidationError
	for di := range it.Days {
		day := &it.Days[di]
		seen := make(map[string]bool, len(day.Nodes))
		for ni := range day.Nodes {
			n := &day.Nodes[ni]
			if n.ID == "" {
				errs = append(errs, ValidationError{Day: day.Number, Message: fmt.Sprintf("node at position %d has no identifier", ni+1)})
				continue
			}
			if seen[n.ID] {
				errs = append(errs, ValidationError{NodeID: n.ID, Day: day.Number, Message: "duplicate identifier within day"})
			}
			seen[n.ID] = true
			if strings.TrimSpace(n.Title) == "" {
				errs = append(errs, ValidationError{NodeID: n.ID, Day: day.Number, Message: "blank title"})
			}
			if n.Timing != nil && !n.Timing.Valid() {
				errs = append(errs, ValidationError{NodeID: n.ID, Day: day.Number, Message: "timing start is after end"})
			}
			if n.Location != nil && n.Location.Coordinates != nil && !n.Location.Coordinates.Valid() {
				errs = append(errs, ValidationError{NodeID: n.ID, Day: day.Number, Message: "coordinates out of range"})
			}
		}
		// Orphaned edge references.
		for _, e := range day.Edges {
			if e.From != "" && !seen[e.From] {
				errs = append(errs, ValidationError{NodeID: e.From, Day: day.Number, Message: "edge references unknown node"})
			}
			if e.To != "" && !seen[e.To] {
				errs = append(errs, ValidationError{NodeID: e.To, Day: day.Number, Message: "edge references unknown node"})
			}
		}
	}
	return errs
}
