package chat

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderplan/wanderplan/pkg/models"
)

func resolveItinerary() *models.Itinerary {
	return &models.Itinerary{
		ID: "01RESOLVE00000000000000000",
		Days: []models.Day{
			{Number: 1, Nodes: []models.Node{
				{ID: "day1_node1", Title: "Prado Museum", Type: models.NodeAttraction},
				{ID: "day1_node2", Title: "Botin", Type: models.NodeMeal,
					Location: &models.Location{Name: "Restaurante Botin"}},
			}},
			{Number: 2, Nodes: []models.Node{
				{ID: "day2_node1", Title: "Reina Sofia Museum", Type: models.NodeAttraction},
				{ID: "day2_node2", Title: "Flamenco Show", Type: models.NodeActivity},
			}},
			{Number: 3, Nodes: []models.Node{
				{ID: "day3_node1", Title: "Toledo Day Trip", Type: models.NodeActivity},
			}},
		},
	}
}

func TestResolveNodes_ExactTitleWins(t *testing.T) {
	got := resolveNodes(resolveItinerary(), "flamenco show", 0, nil)

	require.NotEmpty(t, got)
	assert.Equal(t, "day2_node2", got[0].NodeID)
	assert.False(t, ambiguous(got))
}

func TestResolveNodes_MatchesLocationName(t *testing.T) {
	got := resolveNodes(resolveItinerary(), "restaurante botin", 0, nil)

	require.NotEmpty(t, got)
	assert.Equal(t, "day1_node2", got[0].NodeID)
}

func TestResolveNodes_TypeWordMatches(t *testing.T) {
	// "dinner" does not match, but the node type word does.
	got := resolveNodes(resolveItinerary(), "the meal", 0, nil)

	require.NotEmpty(t, got)
	assert.Equal(t, "day1_node2", got[0].NodeID)
}

func TestResolveNodes_AmbiguousMuseums(t *testing.T) {
	got := resolveNodes(resolveItinerary(), "the museum", 0, nil)

	require.GreaterOrEqual(t, len(got), 2)
	assert.True(t, ambiguous(got), "two museums with no tiebreaker must be ambiguous")
}

func TestResolveNodes_ScopeDayBreaksTie(t *testing.T) {
	got := resolveNodes(resolveItinerary(), "the museum", 2, nil)

	require.NotEmpty(t, got)
	assert.Equal(t, "day2_node1", got[0].NodeID)
	assert.False(t, ambiguous(got))
}

func TestResolveNodes_RecencyBreaksTie(t *testing.T) {
	got := resolveNodes(resolveItinerary(), "the museum", 0, []string{"day1_node1"})

	require.NotEmpty(t, got)
	assert.Equal(t, "day1_node1", got[0].NodeID)
	assert.False(t, ambiguous(got))
}

func TestResolveNodes_NoMatch(t *testing.T) {
	assert.Empty(t, resolveNodes(resolveItinerary(), "the cathedral", 0, nil))
	assert.Empty(t, resolveNodes(resolveItinerary(), "", 0, nil))
	assert.Empty(t, resolveNodes(resolveItinerary(), "the a of", 0, nil), "stopwords only")
}

func TestResolveNodes_CapsCandidates(t *testing.T) {
	it := &models.Itinerary{Days: []models.Day{{Number: 1}}}
	for i := 1; i <= 6; i++ {
		it.Days[0].Nodes = append(it.Days[0].Nodes, models.Node{
			ID:    fmt.Sprintf("day1_node%d", i),
			Title: fmt.Sprintf("Museum %d", i),
			Type:  models.NodeAttraction,
		})
	}

	got := resolveNodes(it, "museum", 0, nil)
	assert.Len(t, got, maxCandidates)
}

func TestProximityScore(t *testing.T) {
	// No scope: flat.
	assert.Equal(t, 0.5, proximityScore(3, 0, 5))
	// On the scoped day: maximal.
	assert.Equal(t, 1.0, proximityScore(2, 2, 5))
	// Furthest day: minimal.
	assert.Equal(t, 0.0, proximityScore(5, 1, 5))
}

func TestRecencyScore(t *testing.T) {
	rank := map[string]int{"a": 0, "b": 1, "c": 2}
	assert.Equal(t, 1.0, recencyScore(rank, "a"))
	assert.Equal(t, 0.5, recencyScore(rank, "b"))
	assert.Equal(t, 0.0, recencyScore(rank, "unseen"))
}

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"louvre", "museum"}, tokenize("the Louvre Museum"))
	assert.Equal(t, []string{"cafe", "2"}, tokenize("that cafe on day 2"))
	assert.Empty(t, tokenize("the of at"))
}
