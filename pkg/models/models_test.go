package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleItinerary() *Itinerary {
	return &Itinerary{
		ID:      "it_models",
		Version: 1,
		Trip:    TripMeta{Destination: "Porto", StartDate: "2026-04-10", EndDate: "2026-04-12"},
		Days: []Day{
			{Number: 1, Date: "2026-04-10", Nodes: []Node{
				{
					ID:       "day1_node1",
					Title:    "Livraria Lello",
					Type:     NodeAttraction,
					Details:  map[string]any{"description": "bookshop"},
					Tips:     []string{"buy the entry voucher online"},
					Location: &Location{Name: "Livraria Lello", Coordinates: &Coordinates{Lat: 41.147, Lng: -8.615}},
					Timing:   &Timing{StartMillis: 1000, EndMillis: 2000, DurationMinutes: 60},
				},
				{ID: "day1_node2", Title: "Lunch", Type: NodeMeal},
			}, Edges: []Edge{{From: "day1_node1", To: "day1_node2", Mode: "walk"}}},
		},
	}
}

func TestClone_IsDeep(t *testing.T) {
	orig := sampleItinerary()
	cp := orig.Clone()

	cp.Days[0].Nodes[0].Title = "changed"
	cp.Days[0].Nodes[0].Details["description"] = "changed"
	cp.Days[0].Nodes[0].Tips[0] = "changed"
	cp.Days[0].Nodes[0].Location.Coordinates.Lat = 0
	cp.Days[0].Nodes[0].Timing.StartMillis = 0
	cp.Days[0].Edges[0].Mode = "metro"

	assert.Equal(t, "Livraria Lello", orig.Days[0].Nodes[0].Title)
	assert.Equal(t, "bookshop", orig.Days[0].Nodes[0].Details["description"])
	assert.Equal(t, "buy the entry voucher online", orig.Days[0].Nodes[0].Tips[0])
	assert.Equal(t, 41.147, orig.Days[0].Nodes[0].Location.Coordinates.Lat)
	assert.EqualValues(t, 1000, orig.Days[0].Nodes[0].Timing.StartMillis)
	assert.Equal(t, "walk", orig.Days[0].Edges[0].Mode)
}

func TestNodePatch_Apply(t *testing.T) {
	it := sampleItinerary()
	_, node := it.FindNode("day1_node1")
	require.NotNil(t, node)

	title := "Clérigos Tower"
	patch := &NodePatch{
		Title:   &title,
		Details: map[string]any{"hours": "09:00-19:00"},
		Tips:    []string{"climb at sunset"},
	}
	patch.Apply(node)

	assert.Equal(t, "Clérigos Tower", node.Title)
	assert.Equal(t, "09:00-19:00", node.Details["hours"])
	assert.Equal(t, "bookshop", node.Details["description"], "patch details merge, not replace")
	assert.Equal(t, []string{"climb at sunset"}, node.Tips)
	assert.NotNil(t, node.Timing, "unset patch fields leave the node alone")

	// A nil patch is a no-op.
	var nilPatch *NodePatch
	nilPatch.Apply(node)
	assert.Equal(t, "Clérigos Tower", node.Title)
}

func TestTripMeta_DayCount(t *testing.T) {
	cases := []struct {
		start, end string
		want       int
	}{
		{"2026-04-10", "2026-04-12", 3},
		{"2026-04-10", "2026-04-10", 1},
		{"2026-04-12", "2026-04-10", 0},
		{"not-a-date", "2026-04-10", 0},
	}
	for _, tc := range cases {
		m := TripMeta{StartDate: tc.start, EndDate: tc.end}
		assert.Equal(t, tc.want, m.DayCount(), "%s..%s", tc.start, tc.end)
	}
}

func TestFindNode_ExactOnly(t *testing.T) {
	it := sampleItinerary()

	day, node := it.FindNode("day1_node2")
	require.NotNil(t, node)
	assert.Equal(t, 1, day.Number)
	assert.Equal(t, "Lunch", node.Title)

	_, missing := it.FindNode("day1_node")
	assert.Nil(t, missing, "prefixes never match")
}

func TestValidIdempotencyKey(t *testing.T) {
	assert.True(t, ValidIdempotencyKey(""))
	assert.True(t, ValidIdempotencyKey("client-42:retry.1"))
	assert.False(t, ValidIdempotencyKey("has spaces"))
	assert.False(t, ValidIdempotencyKey(strings.Repeat("k", 129)))
}

func TestDiff_Empty(t *testing.T) {
	assert.True(t, Diff{}.Empty())
	assert.False(t, Diff{Removed: []Node{{ID: "day1_node1"}}}.Empty())
}
