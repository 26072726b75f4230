package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderplan/wanderplan/ent/usertrip"
	"github.com/wanderplan/wanderplan/pkg/models"
)

func TestItineraryService_CreateAndGet(t *testing.T) {
	ts := newTestServices(t)
	ctx := context.Background()

	it := seedItinerary(t, ts)

	assert.NotEmpty(t, it.ID)
	assert.Equal(t, 1, it.Version)
	assert.Equal(t, models.StatusGenerating, it.Status)
	require.Len(t, it.Days, 4)
	assert.Equal(t, "2026-01-24", it.Days[0].Date)
	assert.Equal(t, "2026-01-27", it.Days[3].Date)
	for i, day := range it.Days {
		assert.Equal(t, i+1, day.Number)
		assert.Empty(t, day.Nodes)
	}

	got, err := ts.itinerary.GetItinerary(ctx, it.ID)
	require.NoError(t, err)
	assert.Equal(t, it.ID, got.ID)
	assert.Equal(t, "Warsaw", got.Trip.Destination)
	assert.Equal(t, models.BudgetMid, got.Trip.Budget)
	assert.Equal(t, it.Days, got.Days)

	// Trip-list link written in the same transaction.
	linked, err := ts.client.UserTrip.Query().
		Where(usertrip.UserIDEQ("traveller-1"), usertrip.ItineraryIDEQ(it.ID)).
		Exist(ctx)
	require.NoError(t, err)
	assert.True(t, linked)
}

func TestItineraryService_GetMissing(t *testing.T) {
	ts := newTestServices(t)

	_, err := ts.itinerary.GetItinerary(context.Background(), "01JUNKNOWNITINERARY0000000")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestItineraryService_CreateValidation(t *testing.T) {
	ts := newTestServices(t)
	ctx := context.Background()

	valid := models.CreateItineraryRequest{
		Destination: "Lisbon",
		StartDate:   "2026-06-01",
		EndDate:     "2026-06-03",
		Party:       models.Party{Adults: 1},
		Budget:      models.BudgetEconomy,
	}

	tests := []struct {
		name   string
		owner  string
		mutate func(*models.CreateItineraryRequest)
	}{
		{"missing owner", "", func(r *models.CreateItineraryRequest) {}},
		{"missing destination", "u1", func(r *models.CreateItineraryRequest) { r.Destination = "" }},
		{"bad start date", "u1", func(r *models.CreateItineraryRequest) { r.StartDate = "June 1st" }},
		{"bad end date", "u1", func(r *models.CreateItineraryRequest) { r.EndDate = "2026-13-40" }},
		{"inverted range", "u1", func(r *models.CreateItineraryRequest) { r.EndDate = "2026-05-30" }},
		{"no adults", "u1", func(r *models.CreateItineraryRequest) { r.Party.Adults = 0 }},
		{"negative children", "u1", func(r *models.CreateItineraryRequest) { r.Party.Children = -1 }},
		{"unknown budget", "u1", func(r *models.CreateItineraryRequest) { r.Budget = "opulent" }},
		{"unknown pacing", "u1", func(r *models.CreateItineraryRequest) { r.Pacing = "frantic" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			_, err := ts.itinerary.CreateItinerary(ctx, tt.owner, req)
			require.Error(t, err)
			assert.True(t, IsValidationError(err), "expected validation error, got %v", err)
		})
	}
}

func TestItineraryService_PutOptimisticVersioning(t *testing.T) {
	ts := newTestServices(t)
	ctx := context.Background()

	it := seedItinerary(t, ts)

	it.Days[0].Nodes = append(it.Days[0].Nodes, models.Node{
		ID:    "day1_node1",
		Title: "Royal Castle",
		Type:  models.NodeAttraction,
	})
	it.Version = 2
	it.Status = models.StatusReady
	it.UpdatedAt = time.Now().UTC()

	require.NoError(t, ts.itinerary.PutItinerary(ctx, it))

	got, err := ts.itinerary.GetItinerary(ctx, it.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Version)
	assert.Equal(t, models.StatusReady, got.Status)
	require.Len(t, got.Days[0].Nodes, 1)
	assert.Equal(t, "Royal Castle", got.Days[0].Nodes[0].Title)

	// A second put at the same target version finds the stored row already
	// moved past version 1.
	err = ts.itinerary.PutItinerary(ctx, it)
	assert.ErrorIs(t, err, ErrVersionConflict)

	missing := *it
	missing.ID = "01JMISSINGITINERARY0000000"
	err = ts.itinerary.PutItinerary(ctx, &missing)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestItineraryService_DeleteOwnership(t *testing.T) {
	ts := newTestServices(t)
	ctx := context.Background()

	it := seedItinerary(t, ts)

	err := ts.itinerary.DeleteItinerary(ctx, it.ID, "somebody-else")
	assert.ErrorIs(t, err, ErrNotOwner)

	require.NoError(t, ts.itinerary.DeleteItinerary(ctx, it.ID, "traveller-1"))

	_, err = ts.itinerary.GetItinerary(ctx, it.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// Trip link cascades with the row.
	linked, err := ts.client.UserTrip.Query().
		Where(usertrip.ItineraryIDEQ(it.ID)).
		Exist(ctx)
	require.NoError(t, err)
	assert.False(t, linked)
}

func TestItineraryService_ListTrips(t *testing.T) {
	ts := newTestServices(t)
	ctx := context.Background()

	first := seedItinerary(t, ts)
	second, err := ts.itinerary.CreateItinerary(ctx, "traveller-1", models.CreateItineraryRequest{
		Destination: "Porto",
		StartDate:   "2026-03-10",
		EndDate:     "2026-03-12",
		Party:       models.Party{Adults: 2},
		Budget:      models.BudgetLuxury,
	})
	require.NoError(t, err)

	_, err = ts.itinerary.CreateItinerary(ctx, "traveller-2", models.CreateItineraryRequest{
		Destination: "Oslo",
		StartDate:   "2026-02-01",
		EndDate:     "2026-02-02",
		Party:       models.Party{Adults: 1},
	})
	require.NoError(t, err)

	trips, total, err := ts.itinerary.ListTrips(ctx, "traveller-1", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, trips, 2)

	ids := []string{trips[0].ID, trips[1].ID}
	assert.Contains(t, ids, first.ID)
	assert.Contains(t, ids, second.ID)

	paged, total, err := ts.itinerary.ListTrips(ctx, "traveller-1", 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, paged, 1)
}

func TestItineraryService_Regenerate(t *testing.T) {
	ts := newTestServices(t)
	ctx := context.Background()

	it := seedItinerary(t, ts)

	// Simulate a completed (or failed) generation.
	it.Days[0].Nodes = []models.Node{{ID: "day1_node1", Title: "Old Town", Type: models.NodeAttraction}}
	it.Version = 2
	it.Status = models.StatusFailed
	it.UpdatedAt = time.Now().UTC()
	require.NoError(t, ts.itinerary.PutItinerary(ctx, it))

	_, err := ts.itinerary.Regenerate(ctx, it.ID, "intruder")
	assert.ErrorIs(t, err, ErrNotOwner)

	fresh, err := ts.itinerary.Regenerate(ctx, it.ID, "traveller-1")
	require.NoError(t, err)
	assert.Equal(t, 3, fresh.Version)
	assert.Equal(t, models.StatusGenerating, fresh.Status)
	require.Len(t, fresh.Days, 4)
	for _, day := range fresh.Days {
		assert.Empty(t, day.Nodes)
	}
}

func TestItineraryService_FailOrphanedGenerating(t *testing.T) {
	ts := newTestServices(t)
	ctx := context.Background()

	generating := seedItinerary(t, ts)

	ready, err := ts.itinerary.CreateItinerary(ctx, "traveller-1", models.CreateItineraryRequest{
		Destination: "Kraków",
		StartDate:   "2026-04-01",
		EndDate:     "2026-04-02",
		Party:       models.Party{Adults: 2},
	})
	require.NoError(t, err)
	ready.Version = 2
	ready.Status = models.StatusReady
	ready.UpdatedAt = time.Now().UTC()
	require.NoError(t, ts.itinerary.PutItinerary(ctx, ready))

	count, err := ts.itinerary.FailOrphanedGenerating(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	got, err := ts.itinerary.GetItinerary(ctx, generating.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusFailed, got.Status)

	got, err = ts.itinerary.GetItinerary(ctx, ready.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusReady, got.Status)
}

func TestValidationErrorHelpers(t *testing.T) {
	err := NewValidationError("destination", "required")
	assert.True(t, IsValidationError(err))
	assert.Contains(t, err.Error(), "destination")
	assert.False(t, IsValidationError(errors.New("plain")))
}
