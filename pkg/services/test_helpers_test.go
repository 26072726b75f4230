package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wanderplan/wanderplan/ent"
	"github.com/wanderplan/wanderplan/pkg/models"
	"github.com/wanderplan/wanderplan/test/util"
)

// testServices bundles the service layer over one isolated test schema.
type testServices struct {
	client    *ent.Client
	itinerary *ItineraryService
	revisions *RevisionService
	chat      *ChatService
	events    *EventService
}

func newTestServices(t *testing.T) *testServices {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)
	return &testServices{
		client:    client,
		itinerary: NewItineraryService(client),
		revisions: NewRevisionService(client),
		chat:      NewChatService(client),
		events:    NewEventService(client),
	}
}

// seedItinerary creates a small persisted itinerary owned by "traveller-1".
func seedItinerary(t *testing.T, ts *testServices) *models.Itinerary {
	t.Helper()
	it, err := ts.itinerary.CreateItinerary(context.Background(), "traveller-1", models.CreateItineraryRequest{
		Destination: "Warsaw",
		StartDate:   "2026-01-24",
		EndDate:     "2026-01-27",
		Party:       models.Party{Adults: 2, Rooms: 1},
		Budget:      models.BudgetMid,
		Interests:   []string{"museums"},
	})
	require.NoError(t, err)
	return it
}
