package engine

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderplan/wanderplan/pkg/events"
	"github.com/wanderplan/wanderplan/pkg/identity"
	"github.com/wanderplan/wanderplan/pkg/models"
)

// fakeStore is an in-memory Store with the same optimistic-version contract
// as the ent-backed service layer.
type fakeStore struct {
	mu          sync.Mutex
	itineraries map[string]*models.Itinerary
	revisions   map[string][]*models.Revision

	failPut      error
	failRevision error
}

func newFakeStore(its ...*models.Itinerary) *fakeStore {
	s := &fakeStore{
		itineraries: make(map[string]*models.Itinerary),
		revisions:   make(map[string][]*models.Revision),
	}
	for _, it := range its {
		s.itineraries[it.ID] = it.Clone()
	}
	return s
}

func (s *fakeStore) GetItinerary(_ context.Context, id string) (*models.Itinerary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	it, ok := s.itineraries[id]
	if !ok {
		return nil, fmt.Errorf("itinerary %s not found", id)
	}
	return it.Clone(), nil
}

func (s *fakeStore) PutItinerary(_ context.Context, it *models.Itinerary) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failPut != nil {
		return s.failPut
	}
	stored, ok := s.itineraries[it.ID]
	if ok && stored.Version != it.Version-1 {
		return fmt.Errorf("stale write: stored version %d, putting %d", stored.Version, it.Version)
	}
	s.itineraries[it.ID] = it.Clone()
	return nil
}

func (s *fakeStore) AppendRevision(_ context.Context, itineraryID string, rev *models.Revision) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failRevision != nil {
		return s.failRevision
	}
	s.revisions[itineraryID] = append(s.revisions[itineraryID], rev)
	return nil
}

func (s *fakeStore) GetRevision(_ context.Context, itineraryID string, number int) (*models.Revision, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rev := range s.revisions[itineraryID] {
		if rev.Number == number {
			return rev, nil
		}
	}
	return nil, fmt.Errorf("revision %d of itinerary %s not found", number, itineraryID)
}

func (s *fakeStore) revisionCount(itineraryID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.revisions[itineraryID])
}

// fakePublisher records published events.
type fakePublisher struct {
	mu           sync.Mutex
	patchApplied []events.PatchAppliedPayload
}

func (p *fakePublisher) PublishProgress(context.Context, string, events.ProgressPayload) error {
	return nil
}
func (p *fakePublisher) PublishPhaseStart(context.Context, string, events.PhaseStartPayload) error {
	return nil
}
func (p *fakePublisher) PublishPhaseComplete(context.Context, string, events.PhaseCompletePayload) error {
	return nil
}
func (p *fakePublisher) PublishPatchApplied(_ context.Context, _ string, payload events.PatchAppliedPayload) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.patchApplied = append(p.patchApplied, payload)
	return nil
}
func (p *fakePublisher) PublishDayCompleted(context.Context, string, events.DayCompletedPayload) error {
	return nil
}
func (p *fakePublisher) PublishNodeEnhanced(context.Context, string, events.NodeEnhancedPayload) error {
	return nil
}
func (p *fakePublisher) PublishGenerationComplete(context.Context, string, events.GenerationCompletePayload) error {
	return nil
}
func (p *fakePublisher) PublishItineraryStatus(context.Context, string, events.ItineraryStatusPayload) error {
	return nil
}
func (p *fakePublisher) PublishWarning(context.Context, string, events.WarningPayload) error {
	return nil
}
func (p *fakePublisher) PublishError(context.Context, string, events.ErrorPayload) error {
	return nil
}

func (p *fakePublisher) patchEvents() []events.PatchAppliedPayload {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]events.PatchAppliedPayload, len(p.patchApplied))
	copy(out, p.patchApplied)
	return out
}

// fakeEnricher records enrichment requests.
type fakeEnricher struct {
	mu    sync.Mutex
	calls map[string][]string
}

func (f *fakeEnricher) ScheduleEnrichment(itineraryID string, nodeIDs []string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.calls == nil {
		f.calls = make(map[string][]string)
	}
	f.calls[itineraryID] = append(f.calls[itineraryID], nodeIDs...)
}

// testItinerary builds a canonical itinerary: `days` days starting 2026-01-24,
// `nodesPerDay` placeholder attractions each, at the given version.
func testItinerary(days, nodesPerDay, version int) *models.Itinerary {
	it := &models.Itinerary{
		ID:      "01J8TESTITINERARY",
		OwnerID: "user-1",
		Version: version,
		Status:  models.StatusReady,
		Trip: models.TripMeta{
			Destination: "Warsaw",
			StartDate:   "2026-01-24",
			EndDate:     "2026-01-27",
			Budget:      models.BudgetMid,
		},
	}
	start, _ := time.Parse("2006-01-02", "2026-01-24")
	for d := 1; d <= days; d++ {
		day := models.Day{
			Number: d,
			Date:   start.AddDate(0, 0, d-1).Format("2006-01-02"),
		}
		for n := 1; n <= nodesPerDay; n++ {
			day.Nodes = append(day.Nodes, models.Node{
				ID:    identity.NodeID(d, n),
				Title: "Placeholder",
				Type:  models.NodeAttraction,
			})
		}
		it.Days = append(it.Days, day)
	}
	return it
}

func newTestEngine(it *models.Itinerary) (*Engine, *fakeStore, *fakePublisher) {
	store := newFakeStore(it)
	pub := &fakePublisher{}
	return New(store, pub), store, pub
}

func replaceChangeSet(baseVersion int, key string) *models.ChangeSet {
	return &models.ChangeSet{
		BaseVersion:    baseVersion,
		IdempotencyKey: key,
		Day:            4,
		Reason:         "user request",
		Ops: []models.Operation{{
			Op:     models.OpReplace,
			NodeID: "day4_node4",
			Node: &models.Node{
				Title: "Museum of Sport",
				Type:  models.NodeAttraction,
				Location: &models.Location{
					Name:    "Museum of Sport",
					Address: "Warsaw",
				},
			},
			StartTime: "15:00",
			EndTime:   "17:00",
		}},
	}
}

func TestApply_ReplaceNode(t *testing.T) {
	it := testItinerary(4, 4, 5)
	eng, store, pub := newTestEngine(it)

	result, err := eng.Apply(t.Context(), it, replaceChangeSet(5, "K1"))
	require.NoError(t, err)

	assert.Equal(t, 6, result.Version)
	assert.Empty(t, result.Diff.Added)
	assert.Empty(t, result.Diff.Removed)
	require.Len(t, result.Diff.Updated, 1)
	assert.Equal(t, "Placeholder", result.Diff.Updated[0].Before.Title)
	assert.Equal(t, "Museum of Sport", result.Diff.Updated[0].After.Title)

	// Caller's object is updated in place.
	assert.Equal(t, 6, it.Version)
	_, node := it.FindNode("day4_node4")
	require.NotNil(t, node)
	assert.Equal(t, "Museum of Sport", node.Title)
	require.NotNil(t, node.Timing)
	assert.LessOrEqual(t, node.Timing.StartMillis, node.Timing.EndMillis)
	assert.Equal(t, 120, node.Timing.DurationMinutes)

	// Revision recorded with the pre-change snapshot.
	assert.Equal(t, 1, store.revisionCount(it.ID))
	rev, err := store.GetRevision(t.Context(), it.ID, 5)
	require.NoError(t, err)
	_, snapNode := (&models.Itinerary{Days: rev.Snapshot}).FindNode("day4_node4")
	require.NotNil(t, snapNode)
	assert.Equal(t, "Placeholder", snapNode.Title)

	// Patch event published with the diff and new version.
	patches := pub.patchEvents()
	require.Len(t, patches, 1)
	assert.Equal(t, 6, patches[0].NewVersion)
	assert.Len(t, patches[0].Diff.Updated, 1)
}

func TestApply_IdempotentReplay(t *testing.T) {
	it := testItinerary(4, 4, 5)
	eng, store, pub := newTestEngine(it)

	first, err := eng.Apply(t.Context(), it, replaceChangeSet(5, "K1"))
	require.NoError(t, err)

	// Replay with the new base version and the same key: the cached result
	// comes back verbatim, nothing re-executes.
	second, err := eng.Apply(t.Context(), it, replaceChangeSet(6, "K1"))
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 6, it.Version)
	assert.Equal(t, 1, store.revisionCount(it.ID))
	assert.Len(t, pub.patchEvents(), 1)
}

func TestApply_VersionConflict(t *testing.T) {
	it := testItinerary(4, 4, 6)
	eng, store, pub := newTestEngine(it)

	_, err := eng.Apply(t.Context(), it, replaceChangeSet(3, ""))
	require.Error(t, err)
	assert.True(t, IsKind(err, KindVersionConflict))

	assert.Equal(t, 6, it.Version)
	_, node := it.FindNode("day4_node4")
	assert.Equal(t, "Placeholder", node.Title)
	assert.Equal(t, 0, store.revisionCount(it.ID))
	assert.Empty(t, pub.patchEvents())
}

func TestApply_MissingNode(t *testing.T) {
	it := testItinerary(4, 4, 5)
	eng, store, _ := newTestEngine(it)

	cs := &models.ChangeSet{
		BaseVersion: 5,
		Ops: []models.Operation{
			{
				Op:     models.OpUpdate,
				NodeID: "day4_node4",
				Patch:  &models.NodePatch{Title: strPtr("Changed")},
			},
			{Op: models.OpReplace, NodeID: "day4_node99", Node: &models.Node{Title: "X", Type: models.NodeAttraction}},
		},
	}

	_, err := eng.Apply(t.Context(), it, cs)
	require.Error(t, err)
	assert.True(t, IsKind(err, KindNodeNotFound))
	assert.Contains(t, err.Error(), "day4_node99")

	// The earlier update in the same changeset must not have leaked.
	assert.Equal(t, 5, it.Version)
	_, node := it.FindNode("day4_node4")
	assert.Equal(t, "Placeholder", node.Title)
	assert.Equal(t, 0, store.revisionCount(it.ID))
}

func TestApply_LockedTarget(t *testing.T) {
	makeLocked := func() *models.Itinerary {
		it := testItinerary(2, 2, 1)
		_, node := it.FindNode("day1_node1")
		node.Locked = true
		return it
	}

	mutations := []models.Operation{
		{Op: models.OpUpdate, NodeID: "day1_node1", Patch: &models.NodePatch{Title: strPtr("New")}},
		{Op: models.OpReplace, NodeID: "day1_node1", Node: &models.Node{Title: "New", Type: models.NodeAttraction}},
		{Op: models.OpDelete, NodeID: "day1_node1"},
		{Op: models.OpMove, NodeID: "day1_node1", ToDay: 2, ToPosition: 0},
	}

	for _, op := range mutations {
		t.Run(string(op.Op), func(t *testing.T) {
			it := makeLocked()
			eng, store, _ := newTestEngine(it)

			_, err := eng.Apply(t.Context(), it, &models.ChangeSet{Ops: []models.Operation{op}})
			require.Error(t, err)
			assert.True(t, IsKind(err, KindLockedTarget))
			assert.Equal(t, 1, it.Version)
			assert.Equal(t, 0, store.revisionCount(it.ID))
		})
	}

	t.Run("explicit unlock succeeds", func(t *testing.T) {
		it := makeLocked()
		eng, _, _ := newTestEngine(it)

		result, err := eng.Apply(t.Context(), it, &models.ChangeSet{
			Ops: []models.Operation{{Op: models.OpUnlock, NodeID: "day1_node1"}},
		})
		require.NoError(t, err)
		assert.Equal(t, 2, result.Version)
		_, node := it.FindNode("day1_node1")
		assert.False(t, node.Locked)
	})
}

func TestApply_EmptyDiffIsNoOp(t *testing.T) {
	it := testItinerary(2, 2, 3)
	eng, store, pub := newTestEngine(it)

	// Patching a field to its current value produces an empty diff.
	result, err := eng.Apply(t.Context(), it, &models.ChangeSet{
		Ops: []models.Operation{{
			Op:     models.OpUpdate,
			NodeID: "day1_node1",
			Patch:  &models.NodePatch{Title: strPtr("Placeholder")},
		}},
	})
	require.NoError(t, err)

	assert.Equal(t, 3, result.Version)
	assert.True(t, result.Diff.Empty())
	assert.Equal(t, 0, store.revisionCount(it.ID))
	assert.Empty(t, pub.patchEvents())
}

func TestApply_InsertRenumbersCanonically(t *testing.T) {
	it := testItinerary(1, 2, 1)
	eng, _, _ := newTestEngine(it)

	result, err := eng.Apply(t.Context(), it, &models.ChangeSet{
		Day: 1,
		Ops: []models.Operation{{
			Op:       models.OpInsert,
			Position: 0,
			Node:     &models.Node{Title: "Lazienki Park", Type: models.NodeAttraction},
		}},
	})
	require.NoError(t, err)

	require.Len(t, it.Days[0].Nodes, 3)
	for i, n := range it.Days[0].Nodes {
		assert.Equal(t, identity.NodeID(1, i+1), n.ID)
	}
	assert.Equal(t, "Lazienki Park", it.Days[0].Nodes[0].Title)

	require.Len(t, result.Diff.Added, 1)
	assert.Equal(t, "day1_node1", result.Diff.Added[0].ID)
	assert.Empty(t, result.Diff.Removed)
}

func TestApply_MixedDeleteInsertUpdateTargetsOriginalNodes(t *testing.T) {
	it := testItinerary(1, 3, 1)
	titles := []string{"One", "Two", "Three"}
	for i := range it.Days[0].Nodes {
		it.Days[0].Nodes[i].Title = titles[i]
	}
	eng, _, _ := newTestEngine(it)

	// The delete frees the day1_node2 slot and the insert lands before the
	// survivors; the final update must still hit the original "Three", never
	// the freshly inserted node.
	result, err := eng.Apply(t.Context(), it, &models.ChangeSet{
		Day: 1,
		Ops: []models.Operation{
			{Op: models.OpDelete, NodeID: "day1_node2"},
			{Op: models.OpInsert, Position: 0, Node: &models.Node{Title: "Fresh", Type: models.NodeActivity}},
			{Op: models.OpUpdate, NodeID: "day1_node3", Patch: &models.NodePatch{Title: strPtr("Three Renamed")}},
		},
	})
	require.NoError(t, err)

	require.Len(t, it.Days[0].Nodes, 3)
	var got []string
	for i, n := range it.Days[0].Nodes {
		assert.Equal(t, identity.NodeID(1, i+1), n.ID)
		got = append(got, n.Title)
	}
	assert.Equal(t, []string{"Fresh", "One", "Three Renamed"}, got)

	require.Len(t, result.Diff.Added, 1)
	assert.Equal(t, "Fresh", result.Diff.Added[0].Title)
	require.Len(t, result.Diff.Removed, 1)
	assert.Equal(t, "Two", result.Diff.Removed[0].Title)
}

func TestApply_PendingInsertIsNotAResolvableTarget(t *testing.T) {
	it := testItinerary(1, 1, 1)
	eng, store, _ := newTestEngine(it)

	_, err := eng.Apply(t.Context(), it, &models.ChangeSet{
		Day: 1,
		Ops: []models.Operation{
			{Op: models.OpInsert, Node: &models.Node{Title: "Fresh", Type: models.NodeActivity}},
			{Op: models.OpUpdate, NodeID: "_pending_1", Patch: &models.NodePatch{Title: strPtr("Hijack")}},
		},
	})
	require.Error(t, err)
	assert.True(t, IsKind(err, KindNodeNotFound))
	assert.Equal(t, 1, it.Version)
	assert.Equal(t, 0, store.revisionCount(it.ID))
}

func TestApply_MoveAcrossDays(t *testing.T) {
	it := testItinerary(2, 2, 1)
	_, node := it.FindNode("day1_node2")
	node.Title = "Old Town Walk"
	eng, _, _ := newTestEngine(it)

	result, err := eng.Apply(t.Context(), it, &models.ChangeSet{
		Ops: []models.Operation{{
			Op: models.OpMove, NodeID: "day1_node2", ToDay: 2, ToPosition: 0,
		}},
	})
	require.NoError(t, err)

	assert.Len(t, it.Days[0].Nodes, 1)
	require.Len(t, it.Days[1].Nodes, 3)
	assert.Equal(t, "Old Town Walk", it.Days[1].Nodes[0].Title)
	for i, n := range it.Days[1].Nodes {
		assert.Equal(t, identity.NodeID(2, i+1), n.ID)
	}

	// The moved node keeps its entity identity: it shows up as updated (its
	// identifier changed), never as removed+added.
	assert.Empty(t, result.Diff.Added)
	assert.Empty(t, result.Diff.Removed)
	assert.NotEmpty(t, result.Diff.Updated)
}

func TestApply_DeleteDropsEdges(t *testing.T) {
	it := testItinerary(1, 3, 1)
	it.Days[0].Edges = []models.Edge{
		{From: "day1_node1", To: "day1_node2", Mode: "walk"},
		{From: "day1_node2", To: "day1_node3", Mode: "walk"},
	}
	eng, _, _ := newTestEngine(it)

	_, err := eng.Apply(t.Context(), it, &models.ChangeSet{
		Ops: []models.Operation{{Op: models.OpDelete, NodeID: "day1_node2"}},
	})
	require.NoError(t, err)

	assert.Len(t, it.Days[0].Nodes, 2)
	assert.Empty(t, it.Days[0].Edges, "edges referencing the deleted node must be dropped")
}

func TestApply_InvalidInput(t *testing.T) {
	cases := []struct {
		name string
		cs   *models.ChangeSet
	}{
		{
			name: "unknown operation tag",
			cs:   &models.ChangeSet{Ops: []models.Operation{{Op: "teleport", NodeID: "day1_node1"}}},
		},
		{
			name: "malformed idempotency key",
			cs:   &models.ChangeSet{IdempotencyKey: "no spaces allowed", Ops: []models.Operation{}},
		},
		{
			name: "coordinates out of range",
			cs: &models.ChangeSet{Day: 1, Ops: []models.Operation{{
				Op: models.OpInsert,
				Node: &models.Node{
					Title:    "Nowhere",
					Type:     models.NodeAttraction,
					Location: &models.Location{Coordinates: &models.Coordinates{Lat: 91, Lng: 0}},
				},
			}}},
		},
		{
			name: "timing start after end",
			cs: &models.ChangeSet{Day: 1, Ops: []models.Operation{{
				Op: models.OpInsert,
				Node: &models.Node{
					Title:  "Backwards",
					Type:   models.NodeAttraction,
					Timing: &models.Timing{StartMillis: 2000, EndMillis: 1000},
				},
			}}},
		},
		{
			name: "insert without day",
			cs: &models.ChangeSet{Ops: []models.Operation{{
				Op:   models.OpInsert,
				Node: &models.Node{Title: "X", Type: models.NodeAttraction},
			}}},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			it := testItinerary(2, 2, 1)
			eng, store, _ := newTestEngine(it)

			_, err := eng.Apply(t.Context(), it, tc.cs)
			require.Error(t, err)
			assert.True(t, IsKind(err, KindInvalidInput), "got %v", err)
			assert.Equal(t, 1, it.Version)
			assert.Equal(t, 0, store.revisionCount(it.ID))
		})
	}
}

func TestPropose_MatchesApplyDiff(t *testing.T) {
	cs := replaceChangeSet(5, "")

	proposed := testItinerary(4, 4, 5)
	eng1, _, _ := newTestEngine(proposed)
	diff, err := eng1.Propose(t.Context(), proposed, cs)
	require.NoError(t, err)

	// Propose does not mutate or bump.
	assert.Equal(t, 5, proposed.Version)
	_, node := proposed.FindNode("day4_node4")
	assert.Equal(t, "Placeholder", node.Title)

	applied := testItinerary(4, 4, 5)
	eng2, _, _ := newTestEngine(applied)
	result, err := eng2.Apply(t.Context(), applied, cs)
	require.NoError(t, err)

	assert.Equal(t, result.Diff, diff)
}

func TestPropose_DetectsConflicts(t *testing.T) {
	t.Run("stale base version", func(t *testing.T) {
		it := testItinerary(2, 2, 7)
		eng, _, _ := newTestEngine(it)
		_, err := eng.Propose(t.Context(), it, replaceChangeSet(3, ""))
		assert.True(t, IsKind(err, KindVersionConflict))
	})

	t.Run("locked target", func(t *testing.T) {
		it := testItinerary(2, 2, 1)
		_, node := it.FindNode("day1_node1")
		node.Locked = true
		eng, _, _ := newTestEngine(it)
		_, err := eng.Propose(t.Context(), it, &models.ChangeSet{
			Ops: []models.Operation{{Op: models.OpDelete, NodeID: "day1_node1"}},
		})
		assert.True(t, IsKind(err, KindLockedTarget))
	})
}

func TestUndo_RestoresSnapshot(t *testing.T) {
	it := testItinerary(4, 4, 5)
	eng, store, pub := newTestEngine(it)

	originalDays := models.CloneDays(it.Days)

	_, err := eng.Apply(t.Context(), it, replaceChangeSet(5, ""))
	require.NoError(t, err)
	require.Equal(t, 6, it.Version)

	newVersion, err := eng.Undo(t.Context(), it.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, 7, newVersion)

	restored, err := store.GetItinerary(t.Context(), it.ID)
	require.NoError(t, err)
	assert.Equal(t, originalDays, restored.Days)
	assert.Equal(t, 7, restored.Version)

	// Rollback is append-only: two revisions now, and a second patch event.
	assert.Equal(t, 2, store.revisionCount(it.ID))
	assert.Len(t, pub.patchEvents(), 2)
}

func TestUndo_NoOpWhenStateMatches(t *testing.T) {
	it := testItinerary(2, 2, 5)
	eng, store, pub := newTestEngine(it)

	_, err := eng.Apply(t.Context(), it, replaceChangeSetForDay(it, 5))
	require.NoError(t, err)

	// Roll back, then roll back to the same revision again: the second call
	// finds the state already restored and does nothing.
	_, err = eng.Undo(t.Context(), it.ID, 5)
	require.NoError(t, err)
	v, err := eng.Undo(t.Context(), it.ID, 5)
	require.NoError(t, err)

	assert.Equal(t, 7, v)
	assert.Equal(t, 2, store.revisionCount(it.ID))
	assert.Len(t, pub.patchEvents(), 2)
}

func TestApply_RevisionPersistenceFailureAborts(t *testing.T) {
	it := testItinerary(4, 4, 5)
	store := newFakeStore(it)
	store.failRevision = fmt.Errorf("disk full")
	eng := New(store, &fakePublisher{})

	_, err := eng.Apply(t.Context(), it, replaceChangeSet(5, ""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")

	assert.Equal(t, 5, it.Version)
	_, node := it.FindNode("day4_node4")
	assert.Equal(t, "Placeholder", node.Title)
}

func TestApply_SchedulesEnrichmentForCoordinatelessNodes(t *testing.T) {
	it := testItinerary(1, 1, 1)
	store := newFakeStore(it)
	enricher := &fakeEnricher{}
	eng := New(store, &fakePublisher{}, WithEnricher(enricher))

	_, err := eng.Apply(t.Context(), it, &models.ChangeSet{
		Day: 1,
		Ops: []models.Operation{
			{Op: models.OpInsert, Node: &models.Node{Title: "No Coords Cafe", Type: models.NodeMeal}},
			{Op: models.OpInsert, Node: &models.Node{
				Title: "Located Museum", Type: models.NodeAttraction,
				Location: &models.Location{Coordinates: &models.Coordinates{Lat: 52.23, Lng: 21.01}},
			}},
		},
	})
	require.NoError(t, err)

	enricher.mu.Lock()
	defer enricher.mu.Unlock()
	ids := enricher.calls[it.ID]
	require.Len(t, ids, 1, "only the coordinate-less node should be scheduled")
}

func TestApply_ConcurrentAppliesSerialize(t *testing.T) {
	it := testItinerary(1, 1, 1)
	eng, store, _ := newTestEngine(it)

	const workers = 10
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := eng.Apply(context.Background(), it, &models.ChangeSet{
				Day: 1,
				Ops: []models.Operation{{
					Op:   models.OpInsert,
					Node: &models.Node{Title: fmt.Sprintf("Stop %d", i), Type: models.NodeActivity},
				}},
			})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	stored, err := store.GetItinerary(context.Background(), it.ID)
	require.NoError(t, err)
	assert.Equal(t, 1+workers, stored.Version)
	assert.Len(t, stored.Days[0].Nodes, 1+workers)
	assert.Equal(t, workers, store.revisionCount(it.ID))
}

// replaceChangeSetForDay targets day1_node1 of any itinerary; used where the
// 4-day fixture is overkill.
func replaceChangeSetForDay(it *models.Itinerary, baseVersion int) *models.ChangeSet {
	return &models.ChangeSet{
		BaseVersion: baseVersion,
		Ops: []models.Operation{{
			Op:     models.OpReplace,
			NodeID: "day1_node1",
			Node:   &models.Node{Title: "Replacement", Type: models.NodeAttraction},
		}},
	}
}

func strPtr(s string) *string { return &s }
