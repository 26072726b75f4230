// Package engine is the transactional change engine: the single authoritative
// mutation path for itineraries. It applies ChangeSets with optimistic
// concurrency, strict node resolution, lock enforcement, idempotent replay,
// revision-first persistence, and patch event publication.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/wanderplan/wanderplan/pkg/events"
	"github.com/wanderplan/wanderplan/pkg/models"
)

// Store is the persistence contract the engine depends on. Implemented by
// the service layer over ent; tests use in-memory fakes.
type Store interface {
	GetItinerary(ctx context.Context, id string) (*models.Itinerary, error)
	// PutItinerary persists the itinerary with an optimistic version check:
	// the stored row must be at it.Version-1 or the put fails.
	PutItinerary(ctx context.Context, it *models.Itinerary) error
	AppendRevision(ctx context.Context, itineraryID string, rev *models.Revision) error
	GetRevision(ctx context.Context, itineraryID string, number int) (*models.Revision, error)
}

// EnrichScheduler receives the identifiers of nodes that were added or
// updated without coordinates, for asynchronous enrichment. Scheduling must
// not block; the engine calls it after a successful apply.
type EnrichScheduler interface {
	ScheduleEnrichment(itineraryID string, nodeIDs []string)
}

// Engine applies, previews, and undoes ChangeSets. Applies against the same
// itinerary are serialized through a per-itinerary mutex; different
// itineraries proceed in parallel.
type Engine struct {
	store     Store
	publisher events.Publisher
	enricher  EnrichScheduler

	locks *itineraryLocks
	idem  *idempotencyCache
}

// Option configures the engine.
type Option func(*Engine)

// WithEnricher wires the auto-enrichment scheduler.
func WithEnricher(e EnrichScheduler) Option {
	return func(eng *Engine) { eng.enricher = e }
}

// WithIdempotencyCache overrides the cache bounds. Zero values keep defaults.
func WithIdempotencyCache(maxEntries int, ttl time.Duration) Option {
	return func(eng *Engine) { eng.idem = newIdempotencyCache(maxEntries, ttl) }
}

// New creates a change engine. publisher may be nil in previews-only setups;
// Apply and Undo then skip event publication.
func New(store Store, publisher events.Publisher, opts ...Option) *Engine {
	e := &Engine{
		store:     store,
		publisher: publisher,
		locks:     newItineraryLocks(),
		idem:      newIdempotencyCache(0, 0),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Propose computes the diff a changeset would produce without persisting and
// without bumping the version. Conflict detection against locks and the base
// version still occurs.
func (e *Engine) Propose(ctx context.Context, it *models.Itinerary, cs *models.ChangeSet) (models.Diff, error) {
	if err := validateChangeSet(cs); err != nil {
		return models.Diff{}, err
	}
	if cs.BaseVersion != 0 && cs.BaseVersion != it.Version {
		return models.Diff{}, versionConflict(it.Version, cs.BaseVersion)
	}

	ws, err := executeOps(it, cs)
	if err != nil {
		return models.Diff{}, err
	}
	return computeDiff(it.Days, ws), nil
}

// Apply is the authoritative mutation path. On success the caller's itinerary
// is updated in place to the committed state; the chat orchestrator relies on
// this, threading the same in-memory object from summary to apply.
func (e *Engine) Apply(ctx context.Context, it *models.Itinerary, cs *models.ChangeSet) (models.ApplyChangesResult, error) {
	e.locks.Lock(it.ID)
	defer e.locks.Unlock(it.ID)

	if err := validateChangeSet(cs); err != nil {
		return models.ApplyChangesResult{}, err
	}

	// Idempotent replay: return the cached result verbatim, no re-execution.
	if cs.IdempotencyKey != "" {
		if cached, ok := e.idem.Get(it.ID, cs.IdempotencyKey); ok {
			return cached, nil
		}
	}

	if cs.BaseVersion != 0 && cs.BaseVersion != it.Version {
		return models.ApplyChangesResult{}, versionConflict(it.Version, cs.BaseVersion)
	}

	ws, err := executeOps(it, cs)
	if err != nil {
		return models.ApplyChangesResult{}, err
	}

	diff := computeDiff(it.Days, ws)
	if diff.Empty() {
		// No-op changeset: current version, no revision, no event.
		return models.ApplyChangesResult{Version: it.Version, Diff: diff}, nil
	}

	// Revision first: if the snapshot cannot be persisted the apply aborts
	// with the itinerary untouched.
	revision := &models.Revision{
		Number:    it.Version,
		CreatedAt: time.Now().UTC(),
		Reason:    cs.Reason,
		ChangeSet: *cs,
		Snapshot:  models.CloneDays(it.Days),
	}
	if err := e.store.AppendRevision(ctx, it.ID, revision); err != nil {
		return models.ApplyChangesResult{}, fmt.Errorf("persisting revision %d for itinerary %s: %w", revision.Number, it.ID, err)
	}

	committed := ws.it
	committed.Version = it.Version + 1
	committed.UpdatedAt = time.Now().UTC()
	if err := e.store.PutItinerary(ctx, committed); err != nil {
		return models.ApplyChangesResult{}, fmt.Errorf("persisting itinerary %s at version %d: %w", it.ID, committed.Version, err)
	}

	*it = *committed

	result := models.ApplyChangesResult{Version: committed.Version, Diff: diff}
	if cs.IdempotencyKey != "" {
		e.idem.Put(it.ID, cs.IdempotencyKey, result)
	}

	e.scheduleAutoEnrichment(committed.ID, diff)
	e.publishPatchApplied(ctx, committed.ID, diff, committed.Version, revision.Number)

	return result, nil
}

// Undo restores the pre-state from the named revision. The restoration is
// itself recorded as a new revision — history is append-only, never rewound.
func (e *Engine) Undo(ctx context.Context, itineraryID string, revisionNumber int) (int, error) {
	e.locks.Lock(itineraryID)
	defer e.locks.Unlock(itineraryID)

	it, err := e.store.GetItinerary(ctx, itineraryID)
	if err != nil {
		return 0, fmt.Errorf("loading itinerary %s: %w", itineraryID, err)
	}
	target, err := e.store.GetRevision(ctx, itineraryID, revisionNumber)
	if err != nil {
		return 0, fmt.Errorf("loading revision %d of itinerary %s: %w", revisionNumber, itineraryID, err)
	}

	restored := models.CloneDays(target.Snapshot)
	diff := diffSnapshots(it.Days, restored)
	if diff.Empty() {
		return it.Version, nil
	}

	revision := &models.Revision{
		Number:    it.Version,
		CreatedAt: time.Now().UTC(),
		Reason:    fmt.Sprintf("rollback to revision %d", revisionNumber),
		Snapshot:  models.CloneDays(it.Days),
	}
	if err := e.store.AppendRevision(ctx, itineraryID, revision); err != nil {
		return 0, fmt.Errorf("persisting rollback revision for itinerary %s: %w", itineraryID, err)
	}

	it.Days = restored
	it.Version++
	it.UpdatedAt = time.Now().UTC()
	if err := e.store.PutItinerary(ctx, it); err != nil {
		return 0, fmt.Errorf("persisting rolled-back itinerary %s: %w", itineraryID, err)
	}

	e.publishPatchApplied(ctx, itineraryID, diff, it.Version, revision.Number)
	return it.Version, nil
}

// executeOps clones the itinerary and applies every operation in order. Any
// failure discards the clone; the input itinerary is never touched.
func executeOps(it *models.Itinerary, cs *models.ChangeSet) (*workingState, error) {
	ws := newWorkingState(it.Clone())
	for i := range cs.Ops {
		if err := ws.applyOperation(&cs.Ops[i], cs); err != nil {
			return nil, err
		}
	}
	ws.renumber()
	return ws, nil
}

func validateChangeSet(cs *models.ChangeSet) error {
	if cs == nil {
		return invalidInput("changeset is required")
	}
	if !models.ValidIdempotencyKey(cs.IdempotencyKey) {
		return invalidInput("idempotency key %q is not a valid opaque key", cs.IdempotencyKey)
	}
	return nil
}

// scheduleAutoEnrichment hands added/updated nodes lacking coordinates to the
// enrichment scheduler. Fire-and-forget by contract: the scheduler owns the
// completion callback that emits node_enhanced.
func (e *Engine) scheduleAutoEnrichment(itineraryID string, diff models.Diff) {
	if e.enricher == nil {
		return
	}
	var ids []string
	for _, n := range diff.Added {
		if n.Location == nil || n.Location.Coordinates == nil {
			ids = append(ids, n.ID)
		}
	}
	for _, u := range diff.Updated {
		if u.After.Location == nil || u.After.Location.Coordinates == nil {
			ids = append(ids, u.After.ID)
		}
	}
	if len(ids) > 0 {
		e.enricher.ScheduleEnrichment(itineraryID, ids)
	}
}

func (e *Engine) publishPatchApplied(ctx context.Context, itineraryID string, diff models.Diff, newVersion, revisionNumber int) {
	if e.publisher == nil {
		return
	}
	payload := events.PatchAppliedPayload{
		BasePayload: events.NewBase(events.EventTypePatchApplied, itineraryID, ""),
		Diff:        diff,
		NewVersion:  newVersion,
		Revision:    revisionNumber,
	}
	if err := e.publisher.PublishPatchApplied(ctx, itineraryID, payload); err != nil {
		slog.Warn("Failed to publish patch_applied event",
			"itinerary_id", itineraryID, "new_version", newVersion, "error", err)
	}
}
