package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderplan/wanderplan/pkg/models"
)

func seedEvents(t *testing.T, ts *testServices, itineraryID, channel string, n int) []int {
	t.Helper()
	ids := make([]int, n)
	for i := 0; i < n; i++ {
		evt, err := ts.client.Event.Create().
			SetItineraryID(itineraryID).
			SetChannel(channel).
			SetPayload(map[string]any{"type": "progress", "seq": i + 1}).
			Save(context.Background())
		require.NoError(t, err)
		ids[i] = evt.ID
	}
	return ids
}

func TestEventService_GetEventsSince(t *testing.T) {
	ts := newTestServices(t)
	ctx := context.Background()

	it := seedItinerary(t, ts)
	channel := fmt.Sprintf("itinerary:%s", it.ID)
	ids := seedEvents(t, ts, it.ID, channel, 5)

	// Full replay from the zero cursor.
	events, err := ts.events.GetEventsSince(ctx, channel, 0, 0)
	require.NoError(t, err)
	require.Len(t, events, 5)
	for i := 1; i < len(events); i++ {
		assert.Greater(t, events[i].ID, events[i-1].ID, "catchup must be ordered by id")
	}

	// Resume mid-stream: only events after the cursor come back.
	events, err = ts.events.GetEventsSince(ctx, channel, ids[2], 0)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, ids[3], events[0].ID)
	assert.Equal(t, ids[4], events[1].ID)
	assert.Equal(t, "progress", events[0].Payload["type"])

	// Limit pages the replay.
	events, err = ts.events.GetEventsSince(ctx, channel, 0, 2)
	require.NoError(t, err)
	assert.Len(t, events, 2)

	// Other channels stay invisible.
	events, err = ts.events.GetEventsSince(ctx, "itinerary:other", 0, 0)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestEventService_CleanupItineraryEvents(t *testing.T) {
	ts := newTestServices(t)
	ctx := context.Background()

	it := seedItinerary(t, ts)
	other, err := ts.itinerary.CreateItinerary(ctx, "traveller-1", models.CreateItineraryRequest{
		Destination: "Gdańsk",
		StartDate:   "2026-07-01",
		EndDate:     "2026-07-02",
		Party:       models.Party{Adults: 2},
	})
	require.NoError(t, err)

	seedEvents(t, ts, it.ID, fmt.Sprintf("itinerary:%s", it.ID), 3)
	seedEvents(t, ts, other.ID, fmt.Sprintf("itinerary:%s", other.ID), 2)

	count, err := ts.events.CleanupItineraryEvents(ctx, it.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	remaining, err := ts.events.GetEventsSince(ctx, fmt.Sprintf("itinerary:%s", other.ID), 0, 0)
	require.NoError(t, err)
	assert.Len(t, remaining, 2)
}

func TestEventService_CleanupExpiredEvents(t *testing.T) {
	ts := newTestServices(t)
	ctx := context.Background()

	it := seedItinerary(t, ts)
	channel := fmt.Sprintf("itinerary:%s", it.ID)

	// One stale event, one fresh.
	_, err := ts.client.Event.Create().
		SetItineraryID(it.ID).
		SetChannel(channel).
		SetPayload(map[string]any{"type": "progress"}).
		SetCreatedAt(time.Now().Add(-48 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)
	seedEvents(t, ts, it.ID, channel, 1)

	count, err := ts.events.CleanupExpiredEvents(ctx, 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	remaining, err := ts.events.GetEventsSince(ctx, channel, 0, 0)
	require.NoError(t, err)
	assert.Len(t, remaining, 1)
}
