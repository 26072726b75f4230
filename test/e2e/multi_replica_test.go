package e2e

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderplan/wanderplan/pkg/events"
	testdb "github.com/wanderplan/wanderplan/test/database"
)

// ────────────────────────────────────────────────────────────
// Multi-replica fan-out — two server instances share one schema; events
// published while generating on replica A must reach a subscriber connected
// to replica B, since NOTIFY routing crosses connection pools.
// ────────────────────────────────────────────────────────────

func TestE2E_EventsFanOutAcrossReplicas(t *testing.T) {
	shared := testdb.NewSharedTestDB(t)

	appA := NewTestApp(t, WithDatabase(shared.NewClient(t), shared.BaseConnString()))
	appB := NewTestApp(t, WithDatabase(shared.NewClient(t), shared.BaseConnString()))

	appA.RegisterSingleDayGeneration()

	// Subscribe on replica B before replica A starts generating.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	ws, err := WSConnect(ctx, appB.WSURL)
	require.NoError(t, err)
	defer ws.Close()
	_, err = ws.WaitForEventType("connection.established", 5*time.Second)
	require.NoError(t, err)

	id, _ := appA.CreateTrip(t, "Seville")
	require.NoError(t, ws.Subscribe(events.ItineraryChannel(id)))
	_, err = ws.WaitForEventType("subscription.confirmed", 5*time.Second)
	require.NoError(t, err)

	appA.WaitForStatus(t, id, "ready")

	complete, err := ws.WaitForEventType("generation_complete", 10*time.Second)
	require.NoError(t, err)
	assert.Equal(t, id, complete.Parsed["itinerary_id"])

	// Both replicas serve the same persisted document.
	itA := appA.GetItinerary(t, id)
	itB := appB.GetItinerary(t, id)
	assert.Equal(t, version(t, itA), version(t, itB))
	assert.Equal(t, nodeIDs(itA), nodeIDs(itB))
}
