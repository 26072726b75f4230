package identity

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderplan/wanderplan/pkg/models"
)

type fakeStore struct {
	puts []*models.Itinerary
	err  error
}

func (s *fakeStore) PutItinerary(_ context.Context, it *models.Itinerary) error {
	if s.err != nil {
		return s.err
	}
	s.puts = append(s.puts, it)
	return nil
}

func twoDayItinerary() *models.Itinerary {
	return &models.Itinerary{
		ID:      "it_ident",
		Version: 2,
		Trip:    models.TripMeta{Destination: "Lisbon", StartDate: "2026-05-01", EndDate: "2026-05-02"},
		Days: []models.Day{
			{Number: 1, Date: "2026-05-01", Nodes: []models.Node{
				{ID: "day1_node1", Title: "Castle", Type: models.NodeAttraction},
				{ID: "day1_node2", Title: "Lunch", Type: models.NodeMeal},
			}},
			{Number: 2, Date: "2026-05-02", Nodes: []models.Node{
				{ID: "day2_node1", Title: "Tram ride", Type: models.NodeTransit},
			}},
		},
	}
}

func TestNodeID(t *testing.T) {
	assert.Equal(t, "day3_node12", NodeID(3, 12))
	assert.True(t, CanonicalPattern.MatchString(NodeID(1, 1)))
	assert.False(t, CanonicalPattern.MatchString("node-abc123"))
}

func TestMigrateIfNeeded_CanonicalIsNoop(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store)
	it := twoDayItinerary()

	got, err := svc.MigrateIfNeeded(context.Background(), it)
	require.NoError(t, err)
	assert.Same(t, it, got, "canonical itinerary returned untouched")
	assert.Equal(t, 2, got.Version)
	assert.Empty(t, store.puts, "no persistence on a no-op")
}

func TestMigrateIfNeeded_RenumbersLegacyIDs(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store)
	it := twoDayItinerary()
	it.Days[0].Nodes[1].ID = "uuid-9f3a" // legacy format
	title := it.Days[0].Nodes[1].Title

	got, err := svc.MigrateIfNeeded(context.Background(), it)
	require.NoError(t, err)
	assert.NotSame(t, it, got)

	assert.Equal(t, "day1_node1", got.Days[0].Nodes[0].ID)
	assert.Equal(t, "day1_node2", got.Days[0].Nodes[1].ID)
	assert.Equal(t, title, got.Days[0].Nodes[1].Title, "other fields preserved")
	assert.Equal(t, 3, got.Version)

	require.Len(t, store.puts, 1)
	assert.Equal(t, got, store.puts[0])

	// Idempotent: a second call sees only canonical identifiers.
	again, err := svc.MigrateIfNeeded(context.Background(), got)
	require.NoError(t, err)
	assert.Same(t, got, again)
	assert.Len(t, store.puts, 1)
}

func TestMigrateIfNeeded_StoreErrorSurfaces(t *testing.T) {
	svc := NewService(&fakeStore{err: fmt.Errorf("conflict")})
	it := twoDayItinerary()
	it.Days[1].Nodes[0].ID = ""

	_, err := svc.MigrateIfNeeded(context.Background(), it)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "it_ident")
}

// TestMigrateIfNeeded_RandomizedLegacyIDs scatters legacy identifiers through
// generated itineraries and checks the migration invariants for every input:
// canonical sequential identifiers afterwards, titles preserved in order,
// exactly one version bump and persist when anything changed, and idempotence
// on the second call.
func TestMigrateIfNeeded_RandomizedLegacyIDs(t *testing.T) {
	rng := rand.New(rand.NewSource(41))

	for round := 0; round < 100; round++ {
		store := &fakeStore{}
		svc := NewService(store)

		it := &models.Itinerary{
			ID:      fmt.Sprintf("it_rand_%d", round),
			Version: 1 + rng.Intn(9),
			Trip:    models.TripMeta{Destination: "Lisbon"},
		}
		hasLegacy := false
		var wantTitles []string
		for d := 1; d <= 1+rng.Intn(4); d++ {
			day := models.Day{Number: d}
			for n := 1 + rng.Intn(4); n > 0; n-- {
				node := models.Node{
					ID:    NodeID(d, len(day.Nodes)+1),
					Title: fmt.Sprintf("Stop %d", rng.Intn(10000)),
					Type:  models.NodeAttraction,
				}
				if rng.Intn(3) == 0 {
					node.ID = fmt.Sprintf("legacy-%08x", rng.Uint32())
					hasLegacy = true
				}
				wantTitles = append(wantTitles, node.Title)
				day.Nodes = append(day.Nodes, node)
			}
			it.Days = append(it.Days, day)
		}
		baseVersion := it.Version

		got, err := svc.MigrateIfNeeded(context.Background(), it)
		require.NoError(t, err, "round %d", round)

		if hasLegacy {
			assert.Equal(t, baseVersion+1, got.Version, "round %d", round)
			assert.Len(t, store.puts, 1, "round %d", round)
		} else {
			assert.Same(t, it, got, "round %d: canonical input must pass through", round)
			assert.Empty(t, store.puts, "round %d", round)
		}

		var gotTitles []string
		for _, day := range got.Days {
			for i, n := range day.Nodes {
				assert.Equal(t, NodeID(day.Number, i+1), n.ID, "round %d", round)
				gotTitles = append(gotTitles, n.Title)
			}
		}
		assert.Equal(t, wantTitles, gotTitles, "round %d: node order and fields must survive", round)

		again, err := svc.MigrateIfNeeded(context.Background(), got)
		require.NoError(t, err, "round %d", round)
		assert.Same(t, got, again, "round %d: second call must be a no-op", round)
	}
}

func TestSummarizeForWorker_EmitsEveryIdentifier(t *testing.T) {
	svc := NewService(nil)
	it := twoDayItinerary()
	it.Days[0].Nodes[0].Locked = true

	summary := svc.SummarizeForWorker(it, "editor", 0)

	for _, id := range []string{"day1_node1", "day1_node2", "day2_node1"} {
		assert.Contains(t, summary, "["+id+"]")
	}
	assert.Contains(t, summary, "Lisbon")
	assert.Contains(t, summary, "[locked]")
}

func TestSummarizeForWorker_BudgetDropsDetailNotIdentifiers(t *testing.T) {
	svc := NewService(nil)
	it := twoDayItinerary()
	for di := range it.Days {
		for ni := range it.Days[di].Nodes {
			it.Days[di].Nodes[ni].Timing = &models.Timing{StartMillis: 1_700_000_000_000, EndMillis: 1_700_003_600_000}
			it.Days[di].Nodes[ni].Location = &models.Location{Name: "Somewhere very specific in Alfama"}
		}
	}

	full := svc.SummarizeForWorker(it, "editor", 0)
	tight := svc.SummarizeForWorker(it, "editor", len(full)-1)

	assert.Less(t, len(tight), len(full))
	for _, id := range []string{"day1_node1", "day1_node2", "day2_node1"} {
		assert.Contains(t, tight, "["+id+"]", "identifiers survive the budget cut")
	}
	assert.NotContains(t, tight, "Alfama")
}

func TestValidateConsistency(t *testing.T) {
	svc := NewService(nil)

	t.Run("clean itinerary", func(t *testing.T) {
		assert.Empty(t, svc.ValidateConsistency(twoDayItinerary()))
	})

	t.Run("flags every violation", func(t *testing.T) {
		it := twoDayItinerary()
		it.Days[0].Nodes[1].ID = "day1_node1" // duplicate
		it.Days[0].Nodes[1].Title = "  "
		it.Days[1].Nodes[0].Timing = &models.Timing{StartMillis: 200, EndMillis: 100}
		it.Days[1].Nodes[0].Location = &models.Location{Coordinates: &models.Coordinates{Lat: 95, Lng: 0}}
		it.Days[1].Edges = []models.Edge{{From: "day2_node1", To: "day2_node9"}}

		errs := svc.ValidateConsistency(it)
		messages := make([]string, 0, len(errs))
		for _, e := range errs {
			messages = append(messages, e.Error())
		}
		joined := strings.Join(messages, "\n")
		assert.Contains(t, joined, "duplicate identifier")
		assert.Contains(t, joined, "blank title")
		assert.Contains(t, joined, "timing start is after end")
		assert.Contains(t, joined, "coordinates out of range")
		assert.Contains(t, joined, "edge references unknown node")
		assert.Len(t, errs, 5)
	})

	t.Run("missing identifier reported by position", func(t *testing.T) {
		it := twoDayItinerary()
		it.Days[0].Nodes[0].ID = ""
		errs := svc.ValidateConsistency(it)
		require.Len(t, errs, 1)
		assert.Contains(t, errs[0].Error(), "position 1")
	})
}
