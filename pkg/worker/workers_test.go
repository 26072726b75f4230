package worker

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderplan/wanderplan/pkg/events"
	"github.com/wanderplan/wanderplan/pkg/identity"
	"github.com/wanderplan/wanderplan/pkg/llm"
	"github.com/wanderplan/wanderplan/pkg/models"
)

// recordingPublisher captures emitted events for assertions.
type recordingPublisher struct {
	progress []events.ProgressPayload
	enhanced []events.NodeEnhancedPayload
}

func (p *recordingPublisher) PublishProgress(_ context.Context, _ string, e events.ProgressPayload) error {
	p.progress = append(p.progress, e)
	return nil
}

func (p *recordingPublisher) PublishNodeEnhanced(_ context.Context, _ string, e events.NodeEnhancedPayload) error {
	p.enhanced = append(p.enhanced, e)
	return nil
}

func (p *recordingPublisher) PublishPhaseStart(context.Context, string, events.PhaseStartPayload) error {
	return nil
}

func (p *recordingPublisher) PublishPhaseComplete(context.Context, string, events.PhaseCompletePayload) error {
	return nil
}

func (p *recordingPublisher) PublishPatchApplied(context.Context, string, events.PatchAppliedPayload) error {
	return nil
}

func (p *recordingPublisher) PublishDayCompleted(context.Context, string, events.DayCompletedPayload) error {
	return nil
}

func (p *recordingPublisher) PublishGenerationComplete(context.Context, string, events.GenerationCompletePayload) error {
	return nil
}

func (p *recordingPublisher) PublishItineraryStatus(context.Context, string, events.ItineraryStatusPayload) error {
	return nil
}

func (p *recordingPublisher) PublishWarning(context.Context, string, events.WarningPayload) error {
	return nil
}

func (p *recordingPublisher) PublishError(context.Context, string, events.ErrorPayload) error {
	return nil
}

// shellItinerary is the state after initialization: dated days, no nodes.
func shellItinerary(days int) *models.Itinerary {
	it := &models.Itinerary{
		ID:      "it_test",
		OwnerID: "user_1",
		Version: 1,
		Status:  models.StatusGenerating,
		Trip: models.TripMeta{
			Destination: "Paris",
			StartDate:   "2026-05-01",
			EndDate:     fmt.Sprintf("2026-05-%02d", days),
			Party:       models.Party{Adults: 2},
			Budget:      models.BudgetMid,
			Interests:   []string{"art", "food"},
		},
	}
	for d := 1; d <= days; d++ {
		it.Days = append(it.Days, models.Day{
			Number: d,
			Date:   fmt.Sprintf("2026-05-%02d", d),
		})
	}
	return it
}

// populatedItinerary carries one placeholder of each population type per day.
func populatedItinerary(days int) *models.Itinerary {
	it := shellItinerary(days)
	for d := range it.Days {
		day := &it.Days[d]
		mk := func(pos int, title string, typ models.NodeType, clock string, dur int) models.Node {
			start, _ := clockOnDate(day.Date, clock)
			return models.Node{
				ID:      identity.NodeID(day.Number, pos),
				Title:   title,
				Type:    typ,
				Details: map[string]any{"placeholder": true},
				Timing: &models.Timing{
					StartMillis:     start,
					EndMillis:       start + int64(dur)*60_000,
					DurationMinutes: dur,
				},
			}
		}
		day.Nodes = []models.Node{
			mk(1, "Morning attraction", models.NodeAttraction, "09:30", 120),
			mk(2, "Transfer", models.NodeTransit, "11:45", 20),
			mk(3, "Lunch", models.NodeMeal, "12:30", 75),
		}
	}
	return it
}

func structuredClient(t *testing.T, responses map[string]string) llm.Client {
	t.Helper()
	noop := llm.NewNoopProvider()
	for name, out := range responses {
		noop.Respond(name, out)
	}
	client, err := llm.NewStructuredClient(noop)
	require.NoError(t, err)
	return client
}

func TestSkeletonWorker_FillsDayShells(t *testing.T) {
	client := structuredClient(t, map[string]string{
		"skeleton": `{"days":[
			{"number":1,"theme":"Old town","nodes":[
				{"title":"Morning attraction","type":"attraction","start_time":"09:30","duration_minutes":120},
				{"title":"Lunch","type":"meal","start_time":"12:30","duration_minutes":60}
			]},
			{"number":2,"nodes":[
				{"title":"Day trip","type":"activity","start_time":"10:00","duration_minutes":240}
			]},
			{"number":9,"nodes":[
				{"title":"Phantom","type":"attraction","start_time":"09:00","duration_minutes":60}
			]}
		]}`,
	})
	pub := &recordingPublisher{}
	w := NewSkeletonWorker(client, pub)
	it := shellItinerary(2)

	_, err := w.Execute(t.Context(), &Request{TaskType: TaskCreate, Itinerary: it, ExecutionID: "exec_1"})
	require.NoError(t, err)

	require.Len(t, it.Days[0].Nodes, 2)
	assert.Equal(t, "day1_node1", it.Days[0].Nodes[0].ID)
	assert.Equal(t, "day1_node2", it.Days[0].Nodes[1].ID)
	assert.Equal(t, "Old town", it.Days[0].Notes)
	assert.True(t, isPlaceholder(&it.Days[0].Nodes[0]))
	require.NotNil(t, it.Days[0].Nodes[0].Timing)
	start := time.UnixMilli(it.Days[0].Nodes[0].Timing.StartMillis).UTC()
	assert.Equal(t, "2026-05-01 09:30", start.Format("2006-01-02 15:04"))

	// Day 9 is outside the trip; it must not appear anywhere.
	require.Len(t, it.Days, 2)
	assert.NotEmpty(t, pub.progress)
}

func TestSkeletonWorker_RejectsWrongTask(t *testing.T) {
	w := NewSkeletonWorker(structuredClient(t, nil), nil)
	_, err := w.Execute(t.Context(), &Request{TaskType: TaskEdit, Itinerary: shellItinerary(1)})
	assert.True(t, IsKind(err, KindInvalidInput))
}

func TestActivityWorker_PopulatesPlaceholders(t *testing.T) {
	client := structuredClient(t, map[string]string{
		"populate_attractions": `{"nodes":[
			{"id":"day1_node1","title":"Louvre Museum","description":"World's largest art museum","address":"Rue de Rivoli","duration_minutes":180,"tips":["Book ahead"]},
			{"id":"day1_node99","title":"Ghost"}
		]}`,
	})
	ident := identity.NewService(nil)
	pub := &recordingPublisher{}
	w := NewActivityWorker(client, ident, pub)
	it := populatedItinerary(1)

	_, err := w.Execute(t.Context(), &Request{TaskType: TaskPopulateAttraction, Itinerary: it})
	require.NoError(t, err)

	n := it.Days[0].Nodes[0]
	assert.Equal(t, "Louvre Museum", n.Title)
	assert.False(t, isPlaceholder(&n))
	require.NotNil(t, n.Location)
	assert.Equal(t, "Rue de Rivoli", n.Location.Address)
	assert.Equal(t, 180, n.Timing.DurationMinutes)
	assert.Equal(t, []string{"Book ahead"}, n.Tips)

	// The meal placeholder is not this worker's to touch.
	assert.True(t, isPlaceholder(&it.Days[0].Nodes[2]))
	assert.NotEmpty(t, pub.progress)
}

func TestMealWorker_InfersMealKindFromTiming(t *testing.T) {
	client := structuredClient(t, map[string]string{
		"populate_meals": `{"nodes":[
			{"id":"day1_node3","title":"Chez Janou","cuisine":"Provencal","price_level":"moderate"}
		]}`,
	})
	w := NewMealWorker(client, identity.NewService(nil), &recordingPublisher{})
	it := populatedItinerary(1)

	_, err := w.Execute(t.Context(), &Request{TaskType: TaskPopulateMeals, Itinerary: it})
	require.NoError(t, err)

	n := it.Days[0].Nodes[2]
	assert.Equal(t, "Chez Janou", n.Title)
	assert.Equal(t, "lunch", n.Details["meal"])
	assert.Equal(t, "Provencal", n.Details["cuisine"])
	assert.False(t, isPlaceholder(&n))
}

func TestMealKindBoundaries(t *testing.T) {
	node := func(clock string) *models.Node {
		start, _ := clockOnDate("2026-05-01", clock)
		return &models.Node{Timing: &models.Timing{StartMillis: start}}
	}
	assert.Equal(t, "breakfast", mealKind(node("08:00")))
	assert.Equal(t, "lunch", mealKind(node("12:30")))
	assert.Equal(t, "dinner", mealKind(node("19:00")))
	assert.Equal(t, "lunch", mealKind(&models.Node{}))
}

func TestTransportWorker_FillsLegsAndEdges(t *testing.T) {
	client := structuredClient(t, map[string]string{
		"populate_transport": `{"legs":[
			{"id":"day1_node2","mode":"metro","duration_minutes":15,"cost_amount":2.1,"instructions":"Line 1 toward Vincennes"}
		]}`,
	})
	w := NewTransportWorker(client, identity.NewService(nil), &recordingPublisher{})
	it := populatedItinerary(1)

	_, err := w.Execute(t.Context(), &Request{TaskType: TaskPopulateTransport, Itinerary: it})
	require.NoError(t, err)

	n := it.Days[0].Nodes[1]
	assert.Equal(t, "Metro transfer", n.Title)
	assert.Equal(t, "metro", n.Details["mode"])
	assert.Equal(t, 15, n.Timing.DurationMinutes)
	require.NotNil(t, n.Cost)
	assert.InDelta(t, 2.1, n.Cost.Amount, 0.001)

	require.Len(t, it.Days[0].Edges, 1)
	edge := it.Days[0].Edges[0]
	assert.Equal(t, "day1_node1", edge.From)
	assert.Equal(t, "day1_node3", edge.To)
	assert.Equal(t, "metro", edge.Mode)
	assert.Equal(t, 15, edge.DurationMinutes)
}

func TestEnrichmentWorker_FillsCoordinates(t *testing.T) {
	pub := &recordingPublisher{}
	w := NewEnrichmentWorker(OfflinePlacesClient{}, pub)
	it := populatedItinerary(1)
	// Population already ran.
	for i := range it.Days[0].Nodes {
		clearPlaceholder(&it.Days[0].Nodes[i])
	}

	res, err := w.Execute(t.Context(), &Request{TaskType: TaskEnrich, Itinerary: it})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Message)

	// Non-transit nodes got coordinates; the transit leg was skipped.
	for _, idx := range []int{0, 2} {
		n := it.Days[0].Nodes[idx]
		require.NotNil(t, n.Location, "node %s", n.ID)
		require.NotNil(t, n.Location.Coordinates, "node %s", n.ID)
		assert.True(t, n.Location.Coordinates.Valid())
		assert.NotEmpty(t, n.Location.PlaceID)
	}
	assert.Nil(t, it.Days[0].Nodes[1].Location)
	assert.Len(t, pub.enhanced, 2)
}

func TestEnrichmentWorker_ScopedToTargetNode(t *testing.T) {
	w := NewEnrichmentWorker(OfflinePlacesClient{}, &recordingPublisher{})
	it := populatedItinerary(1)
	for i := range it.Days[0].Nodes {
		clearPlaceholder(&it.Days[0].Nodes[i])
	}

	_, err := w.Execute(t.Context(), &Request{
		TaskType:     TaskEnrich,
		Itinerary:    it,
		TargetNodeID: "day1_node3",
	})
	require.NoError(t, err)

	assert.Nil(t, it.Days[0].Nodes[0].Location)
	require.NotNil(t, it.Days[0].Nodes[2].Location)
	assert.NotNil(t, it.Days[0].Nodes[2].Location.Coordinates)
}

func TestEnrichmentWorker_DeterministicLookups(t *testing.T) {
	a, err := OfflinePlacesClient{}.Lookup(t.Context(), "Louvre Museum", "Paris")
	require.NoError(t, err)
	b, err := OfflinePlacesClient{}.Lookup(t.Context(), "Louvre Museum", "Paris")
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.True(t, a.Coordinates.Valid())
}

func TestEnrichmentWorker_PacingNote(t *testing.T) {
	w := NewEnrichmentWorker(OfflinePlacesClient{}, &recordingPublisher{})
	it := populatedItinerary(1)
	it.Settings.Pacing = "relaxed"
	day := &it.Days[0]
	for i := range day.Nodes {
		clearPlaceholder(&day.Nodes[i])
	}
	for pos := 4; pos <= 6; pos++ {
		day.Nodes = append(day.Nodes, models.Node{
			ID:    identity.NodeID(1, pos),
			Title: fmt.Sprintf("Extra stop %d", pos),
			Type:  models.NodeAttraction,
		})
	}

	_, err := w.Execute(t.Context(), &Request{TaskType: TaskEnrich, Itinerary: it})
	require.NoError(t, err)
	assert.Contains(t, day.Notes, "Pacing:")

	// A second run must not duplicate the note.
	before := day.Notes
	_, err = w.Execute(t.Context(), &Request{TaskType: TaskEnrich, Itinerary: it})
	require.NoError(t, err)
	assert.Equal(t, before, day.Notes)
}

func TestCostWorker_TierTable(t *testing.T) {
	w := NewCostWorker(&recordingPublisher{})
	it := populatedItinerary(1)
	it.Trip.Budget = models.BudgetLuxury
	for i := range it.Days[0].Nodes {
		clearPlaceholder(&it.Days[0].Nodes[i])
	}
	// Pre-existing estimate must survive.
	it.Days[0].Nodes[1].Cost = &models.Cost{Amount: 2.1, Currency: "EUR"}

	_, err := w.Execute(t.Context(), &Request{TaskType: TaskEstimateCost, Itinerary: it})
	require.NoError(t, err)

	attraction := it.Days[0].Nodes[0]
	require.NotNil(t, attraction.Cost)
	assert.InDelta(t, 20*2.2, attraction.Cost.Amount, 0.001)
	assert.Equal(t, models.BudgetLuxury, attraction.Cost.Tier)
	assert.True(t, attraction.Cost.PerPerson)
	assert.Equal(t, "USD", attraction.Cost.Currency)

	assert.InDelta(t, 2.1, it.Days[0].Nodes[1].Cost.Amount, 0.001)
}

func TestCostWorker_SkipsPlaceholders(t *testing.T) {
	w := NewCostWorker(&recordingPublisher{})
	it := populatedItinerary(1)

	_, err := w.Execute(t.Context(), &Request{TaskType: TaskEstimateCost, Itinerary: it})
	require.NoError(t, err)
	for _, n := range it.Days[0].Nodes {
		assert.Nil(t, n.Cost, "placeholder %s must not be priced", n.ID)
	}
}

func TestEditorWorker_BuildsChangeSet(t *testing.T) {
	client := structuredClient(t, map[string]string{
		"changeset": `{"ops":[
			{"op":"replace","id":"day1_node3","node":{"title":"Le Comptoir","type":"meal"},"start_time":"13:00","end_time":"14:30"}
		],"reason":"swap lunch spot"}`,
	})
	w := NewEditorWorker(client, identity.NewService(nil))
	it := populatedItinerary(1)
	it.Version = 7

	res, err := w.Execute(t.Context(), &Request{
		TaskType:  TaskEdit,
		Itinerary: it,
		Text:      "change lunch to Le Comptoir at 1pm",
	})
	require.NoError(t, err)

	cs := res.ChangeSet
	require.NotNil(t, cs)
	assert.Equal(t, 7, cs.BaseVersion)
	require.Len(t, cs.Ops, 1)
	assert.Equal(t, models.OpReplace, cs.Ops[0].Op)
	assert.Equal(t, "day1_node3", cs.Ops[0].NodeID)
	assert.Equal(t, "13:00", cs.Ops[0].StartTime)
	assert.Equal(t, "swap lunch spot", cs.Reason)
	assert.Contains(t, res.Message, "1 replace")

	// The worker must not have touched the tree.
	assert.Equal(t, "Lunch", it.Days[0].Nodes[2].Title)
}

func TestEditorWorker_EmptyTextRejected(t *testing.T) {
	w := NewEditorWorker(structuredClient(t, nil), identity.NewService(nil))
	_, err := w.Execute(t.Context(), &Request{TaskType: TaskEdit, Itinerary: populatedItinerary(1), Text: "  "})
	assert.True(t, IsKind(err, KindInvalidInput))
}

func TestExplainerWorker_AnswersQuestion(t *testing.T) {
	client := structuredClient(t, map[string]string{
		"explain": `{"answer":"Lunch on day 1 is at 12:30."}`,
	})
	w := NewExplainerWorker(client, identity.NewService(nil))

	res, err := w.Execute(t.Context(), &Request{
		TaskType:  TaskExplain,
		Itinerary: populatedItinerary(1),
		Text:      "when is lunch?",
	})
	require.NoError(t, err)
	assert.Equal(t, "Lunch on day 1 is at 12:30.", res.Message)
	assert.Nil(t, res.ChangeSet)
}

func TestBookingWorker_ProducesUpdateOp(t *testing.T) {
	w := NewBookingWorker(OfflineBookingClient{})
	it := populatedItinerary(1)

	res, err := w.Execute(t.Context(), &Request{
		TaskType:     TaskBook,
		Itinerary:    it,
		TargetNodeID: "day1_node1",
		Text:         "book the morning attraction",
	})
	require.NoError(t, err)

	cs := res.ChangeSet
	require.NotNil(t, cs)
	require.Len(t, cs.Ops, 1)
	assert.Equal(t, models.OpUpdate, cs.Ops[0].Op)
	assert.Equal(t, "day1_node1", cs.Ops[0].NodeID)
	require.NotNil(t, cs.Ops[0].Patch)
	require.NotNil(t, cs.Ops[0].Patch.BookingRef)
	assert.Contains(t, *cs.Ops[0].Patch.BookingRef, "WNDR-")
	assert.Contains(t, res.Message, "Booked")

	// Booking never restructures the day.
	assert.Len(t, it.Days[0].Nodes, 3)
}

func TestBookingWorker_AlreadyBooked(t *testing.T) {
	w := NewBookingWorker(OfflineBookingClient{})
	it := populatedItinerary(1)
	it.Days[0].Nodes[0].BookingRef = "WNDR-EXISTING"

	res, err := w.Execute(t.Context(), &Request{
		TaskType:     TaskBook,
		Itinerary:    it,
		TargetNodeID: "day1_node1",
	})
	require.NoError(t, err)
	assert.Nil(t, res.ChangeSet)
	assert.Contains(t, res.Message, "WNDR-EXISTING")
}

func TestBookingWorker_RequiresTarget(t *testing.T) {
	w := NewBookingWorker(OfflineBookingClient{})
	_, err := w.Execute(t.Context(), &Request{TaskType: TaskBook, Itinerary: populatedItinerary(1)})
	assert.True(t, IsKind(err, KindInvalidInput))
}

func TestWrapLLM_Classification(t *testing.T) {
	assert.Equal(t, KindSchemaViolation, WrapLLM(fmt.Errorf("wrap: %w", llm.ErrSchemaViolation), "x").Kind)
	assert.Equal(t, KindTransient, WrapLLM(context.Canceled, "x").Kind)
	assert.Equal(t, KindLLMFailure, WrapLLM(fmt.Errorf("boom"), "x").Kind)
}
