package e2e

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderplan/wanderplan/pkg/events"
)

// ────────────────────────────────────────────────────────────
// Generation test — one-day trip through the full pipeline.
//
// Canned LLM outputs drive all four generation schemas. The skeleton lays
// out four slots (attraction, meal, transit, activity); the population
// workers fill them; enrichment and cost run offline. The test asserts the
// final document over HTTP and the persisted event history over WebSocket
// auto-catchup.
// ────────────────────────────────────────────────────────────

func TestE2E_Generation(t *testing.T) {
	app := NewTestApp(t)
	app.RegisterSingleDayGeneration()

	id, executionID := app.CreateTrip(t, "Seville")
	require.NotEmpty(t, executionID)

	it := app.WaitForStatus(t, id, "ready")

	// Structure: canonical identifiers, in day order.
	assert.Equal(t, []string{"day1_node1", "day1_node2", "day1_node3", "day1_node4"}, nodeIDs(it))

	// Population replaced every placeholder with concrete content.
	attraction := nodeByID(t, it, "day1_node1")
	require.NotNil(t, attraction)
	assert.Equal(t, "Alcázar Royal Palace", attraction["title"])
	if details, ok := attraction["details"].(map[string]any); ok {
		assert.NotContains(t, details, "placeholder")
	}

	meal := nodeByID(t, it, "day1_node2")
	require.NotNil(t, meal)
	assert.Equal(t, "Bodega Santa Cruz", meal["title"])
	details, ok := meal["details"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Andalusian tapas", details["cuisine"])
	assert.NotContains(t, details, "placeholder")

	transit := nodeByID(t, it, "day1_node3")
	require.NotNil(t, transit)
	assert.Equal(t, "Tram transfer", transit["title"])
	require.NotNil(t, transit["cost"], "transit leg carries the canned fare")

	// The transport worker linked the surrounding stops.
	days := it["days"].([]any)
	day1 := days[0].(map[string]any)
	edges, _ := day1["edges"].([]any)
	require.NotEmpty(t, edges, "transit leg records an edge")

	// Event history: subscribe after the fact and let auto-catchup replay
	// the persisted stream.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	ws, err := WSConnect(ctx, app.WSURL)
	require.NoError(t, err)
	defer ws.Close()

	_, err = ws.WaitForEventType("connection.established", 5*time.Second)
	require.NoError(t, err)

	require.NoError(t, ws.Subscribe(events.ItineraryChannel(id)))
	_, err = ws.WaitForEventType("subscription.confirmed", 5*time.Second)
	require.NoError(t, err)

	complete, err := ws.WaitForEventType("generation_complete", 10*time.Second)
	require.NoError(t, err)
	assert.Equal(t, id, complete.Parsed["itinerary_id"])

	// Every phase reported completion before the terminal event.
	phases := make(map[string]bool)
	for _, e := range ws.EventsOfType("phase_complete") {
		if p, ok := e.Parsed["phase"].(string); ok {
			phases[p] = true
		}
	}
	for _, phase := range []string{"skeleton", "population", "finalization"} {
		assert.True(t, phases[phase], "missing phase_complete for %s", phase)
	}
}

func TestE2E_GenerationFailureAndRegenerate(t *testing.T) {
	app := NewTestApp(t)

	// Only the skeleton succeeds; all three population workers miss their
	// canned responses, so the population phase has no survivor.
	app.LLM.Respond("skeleton", cannedSkeleton)

	id, _ := app.CreateTrip(t, "Seville")
	app.WaitForStatus(t, id, "failed")

	// The terminal error is on the persisted stream.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	ws, err := WSConnect(ctx, app.WSURL)
	require.NoError(t, err)
	defer ws.Close()

	require.NoError(t, ws.Subscribe(events.ItineraryChannel(id)))
	errEvent, err := ws.WaitForEventType("error", 10*time.Second)
	require.NoError(t, err)
	assert.Equal(t, id, errEvent.Parsed["itinerary_id"])

	// With the remaining responses registered, regenerate recovers.
	app.RegisterSingleDayGeneration()
	resp := app.postJSON(t, "/api/v1/itineraries/"+id+"/regenerate", nil, 202)
	require.NotEmpty(t, resp["execution_id"])

	it := app.WaitForStatus(t, id, "ready")
	assert.Equal(t, "Alcázar Royal Palace", nodeByID(t, it, "day1_node1")["title"])
}

func TestE2E_PartialPopulationDegrades(t *testing.T) {
	app := NewTestApp(t)

	// Transport misses its canned response; attractions and meals survive,
	// so generation completes with a warning instead of failing.
	app.LLM.Respond("skeleton", cannedSkeleton)
	app.LLM.Respond("populate_attractions", cannedAttractions)
	app.LLM.Respond("populate_meals", cannedMeals)

	id, _ := app.CreateTrip(t, "Seville")
	it := app.WaitForStatus(t, id, "ready")

	// The populated slots are concrete, the transit slot is still the
	// structural placeholder.
	assert.Equal(t, "Alcázar Royal Palace", nodeByID(t, it, "day1_node1")["title"])
	transit := nodeByID(t, it, "day1_node3")
	require.NotNil(t, transit)
	assert.Equal(t, "Transfer to river district", transit["title"])

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	ws, err := WSConnect(ctx, app.WSURL)
	require.NoError(t, err)
	defer ws.Close()

	require.NoError(t, ws.Subscribe(events.ItineraryChannel(id)))
	warning, err := ws.WaitForEventType("warning", 10*time.Second)
	require.NoError(t, err)
	assert.Equal(t, id, warning.Parsed["itinerary_id"])
}
