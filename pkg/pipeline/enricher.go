package pipeline

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/wanderplan/wanderplan/pkg/models"
	"github.com/wanderplan/wanderplan/pkg/worker"
)

// EnrichStore is the persistence surface of the background enricher.
// Satisfied by *services.Store.
type EnrichStore interface {
	GetItinerary(ctx context.Context, id string) (*models.Itinerary, error)
	PutItinerary(ctx context.Context, it *models.Itinerary) error
}

type enrichJob struct {
	itineraryID string
	nodeIDs     []string
}

// EnrichQueue enriches nodes that entered the itinerary without coordinates,
// off the request path. The change engine schedules jobs after a successful
// apply; a single loop drains them. Scheduling never blocks: a full queue
// drops the job, the nodes stay un-enriched until the next generation pass.
type EnrichQueue struct {
	registry *worker.Registry
	store    EnrichStore

	jobs   chan enrichJob
	cancel context.CancelFunc
	done   chan struct{}

	mu      sync.Mutex
	started bool
}

// NewEnrichQueue creates an enrich queue holding up to size pending jobs.
func NewEnrichQueue(registry *worker.Registry, store EnrichStore, size int) *EnrichQueue {
	if size <= 0 {
		size = 64
	}
	return &EnrichQueue{
		registry: registry,
		store:    store,
		jobs:     make(chan enrichJob, size),
	}
}

// ScheduleEnrichment implements engine.EnrichScheduler.
func (q *EnrichQueue) ScheduleEnrichment(itineraryID string, nodeIDs []string) {
	if len(nodeIDs) == 0 {
		return
	}
	select {
	case q.jobs <- enrichJob{itineraryID: itineraryID, nodeIDs: nodeIDs}:
	default:
		slog.Warn("Enrich queue full, dropping job",
			"itinerary_id", itineraryID, "nodes", len(nodeIDs))
	}
}

// Start launches the drain loop.
func (q *EnrichQueue) Start(ctx context.Context) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.started {
		return
	}
	q.started = true

	ctx, q.cancel = context.WithCancel(ctx)
	q.done = make(chan struct{})
	go q.run(ctx)
}

// Stop cancels the loop and waits for the in-flight job to finish.
func (q *EnrichQueue) Stop() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if !q.started {
		return
	}
	q.cancel()
	<-q.done
	q.started = false
}

func (q *EnrichQueue) run(ctx context.Context) {
	defer close(q.done)
	for {
		select {
		case <-ctx.Done():
			return
		case job := <-q.jobs:
			q.process(ctx, job)
		}
	}
}

func (q *EnrichQueue) process(ctx context.Context, job enrichJob) {
	logger := slog.With("itinerary_id", job.itineraryID)

	w, err := q.registry.Get(worker.TaskEnrich)
	if err != nil {
		logger.Warn("No enrich worker registered", "error", err)
		return
	}

	jobCtx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	it, err := q.store.GetItinerary(jobCtx, job.itineraryID)
	if err != nil {
		logger.Warn("Enrich job: itinerary load failed", "error", err)
		return
	}

	// One scoped run per node; the worker fills what the apply left empty.
	enriched := 0
	for _, nodeID := range job.nodeIDs {
		if _, err := w.Execute(jobCtx, &worker.Request{
			TaskType:     worker.TaskEnrich,
			Itinerary:    it,
			TargetNodeID: nodeID,
		}); err != nil {
			logger.Warn("Enrich job: node enrichment failed", "node_id", nodeID, "error", err)
			continue
		}
		enriched++
	}
	if enriched == 0 {
		return
	}

	it.Version++
	it.UpdatedAt = time.Now().UTC()
	if err := q.store.PutItinerary(jobCtx, it); err != nil {
		// A concurrent apply won the version race; its enrichment will be
		// rescheduled by the engine.
		logger.Warn("Enrich job: persist failed", "error", err)
		return
	}
	logger.Info("Background enrichment applied", "nodes", enriched, "version", it.Version)
}
