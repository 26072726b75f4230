package pipeline

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderplan/wanderplan/pkg/models"
	"github.com/wanderplan/wanderplan/pkg/worker"
)

type enrichFakeStore struct {
	mu  sync.Mutex
	it  *models.Itinerary
	put int
}

func (s *enrichFakeStore) GetItinerary(_ context.Context, id string) (*models.Itinerary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.it, nil
}

func (s *enrichFakeStore) PutItinerary(_ context.Context, it *models.Itinerary) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.put++
	s.it = it
	return nil
}

func (s *enrichFakeStore) putCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.put
}

func enrichRegistry(t *testing.T, fn func(ctx context.Context, req *worker.Request) (*worker.Result, error)) *worker.Registry {
	t.Helper()
	registry := worker.NewRegistry()
	require.NoError(t, registry.Register(&scriptWorker{task: worker.TaskEnrich, fn: fn}))
	return registry
}

func TestEnrichQueue_ProcessesScheduledNodes(t *testing.T) {
	it := shellItinerary(1)
	it.Days[0].Nodes = []models.Node{{ID: "day1_node1", Title: "Tower"}}
	store := &enrichFakeStore{it: it}

	var mu sync.Mutex
	var seen []string
	registry := enrichRegistry(t, func(_ context.Context, req *worker.Request) (*worker.Result, error) {
		mu.Lock()
		seen = append(seen, req.TargetNodeID)
		mu.Unlock()
		return &worker.Result{}, nil
	})

	q := NewEnrichQueue(registry, store, 8)
	q.Start(t.Context())
	defer q.Stop()

	baseVersion := it.Version
	q.ScheduleEnrichment(it.ID, []string{"day1_node1"})

	require.Eventually(t, func() bool {
		return store.putCalls() == 1
	}, time.Second, 5*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"day1_node1"}, seen)
	assert.Equal(t, baseVersion+1, store.it.Version)
}

func TestEnrichQueue_AllNodesFailingSkipsPersist(t *testing.T) {
	store := &enrichFakeStore{it: shellItinerary(1)}
	processed := make(chan struct{}, 1)
	registry := enrichRegistry(t, func(context.Context, *worker.Request) (*worker.Result, error) {
		select {
		case processed <- struct{}{}:
		default:
		}
		return nil, worker.Errorf(worker.KindDependencyFailure, "places lookup failed")
	})

	q := NewEnrichQueue(registry, store, 8)
	q.Start(t.Context())
	defer q.Stop()

	q.ScheduleEnrichment("it_pipeline", []string{"day1_node1"})

	select {
	case <-processed:
	case <-time.After(time.Second):
		t.Fatal("enrich job never ran")
	}
	// Nothing succeeded, so no version bump should be written.
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, 0, store.putCalls())
}

func TestEnrichQueue_EmptyScheduleIsNoop(t *testing.T) {
	q := NewEnrichQueue(worker.NewRegistry(), &enrichFakeStore{}, 1)
	q.ScheduleEnrichment("it_x", nil)

	select {
	case <-q.jobs:
		t.Fatal("empty schedule enqueued a job")
	default:
	}
}

func TestEnrichQueue_FullQueueDrops(t *testing.T) {
	q := NewEnrichQueue(worker.NewRegistry(), &enrichFakeStore{}, 1)

	// Not started: first fills the buffer, second must drop, not block.
	q.ScheduleEnrichment("it_a", []string{"n1"})
	doneCh := make(chan struct{})
	go func() {
		q.ScheduleEnrichment("it_b", []string{"n2"})
		close(doneCh)
	}()

	select {
	case <-doneCh:
	case <-time.After(time.Second):
		t.Fatal("ScheduleEnrichment blocked on a full queue")
	}
}
