// Package pipeline drives itinerary generation: five phases from an empty
// shell to a ready itinerary, with anchored progress events and failure
// isolation inside the population phase.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/oklog/ulid/v2"

	"github.com/wanderplan/wanderplan/pkg/events"
	"github.com/wanderplan/wanderplan/pkg/identity"
	"github.com/wanderplan/wanderplan/pkg/models"
	"github.com/wanderplan/wanderplan/pkg/worker"
)

// Phase names, in execution order. These strings are the wire-visible phase
// identifiers in phase_start/phase_complete/progress events.
const (
	PhaseSkeleton     = "skeleton"
	PhasePopulation   = "population"
	PhaseEnrichment   = "enrichment"
	PhaseCost         = "cost"
	PhaseFinalization = "finalization"
)

// Progress anchors per phase: the percent reported when the phase completes.
var phaseAnchor = map[string]int{
	PhaseSkeleton:     10,
	PhasePopulation:   40,
	PhaseEnrichment:   70,
	PhaseCost:         90,
	PhaseFinalization: 100,
}

// Store is the persistence dependency of the orchestrator. Satisfied by
// services.ItineraryService.
type Store interface {
	PutItinerary(ctx context.Context, it *models.Itinerary) error
}

// Config tunes execution. Zero values fall back to defaults.
type Config struct {
	WorkerTimeout time.Duration // per worker attempt
	WorkerRetries uint64        // transient retries per worker
	RetryInterval time.Duration // initial backoff interval

	// MaxConcurrent caps simultaneously running executions; Run rejects
	// starts beyond the cap with a transient error.
	MaxConcurrent int

	// TaskTimeouts overrides WorkerTimeout for specific task types.
	TaskTimeouts map[worker.TaskType]time.Duration
}

func (c Config) withDefaults() Config {
	if c.WorkerTimeout <= 0 {
		c.WorkerTimeout = 2 * time.Minute
	}
	if c.WorkerRetries == 0 {
		c.WorkerRetries = 2
	}
	if c.RetryInterval <= 0 {
		c.RetryInterval = 500 * time.Millisecond
	}
	if c.MaxConcurrent <= 0 {
		c.MaxConcurrent = 4
	}
	return c
}

// Handle identifies a running execution. Done closes when the run reaches a
// terminal state — by then either generation_complete or a critical error
// event has been published.
type Handle struct {
	ExecutionID string
	ItineraryID string
	Done        <-chan struct{}
}

// Wait blocks until the execution finishes or ctx expires.
func (h *Handle) Wait(ctx context.Context) error {
	select {
	case <-h.Done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Orchestrator runs generation executions and tracks them for cancellation.
type Orchestrator struct {
	registry *worker.Registry
	store    Store
	pub      events.Publisher
	ident    *identity.Service
	cfg      Config

	mu     sync.RWMutex
	active map[string]context.CancelFunc // execution_id → cancel
	wg     sync.WaitGroup
	sem    chan struct{} // bounds concurrent executions
}

// New creates an orchestrator.
func New(registry *worker.Registry, store Store, pub events.Publisher, ident *identity.Service, cfg Config) *Orchestrator {
	cfg = cfg.withDefaults()
	return &Orchestrator{
		registry: registry,
		store:    store,
		pub:      pub,
		ident:    ident,
		cfg:      cfg,
		active:   make(map[string]context.CancelFunc),
		sem:      make(chan struct{}, cfg.MaxConcurrent),
	}
}

// Run starts a generation execution for the itinerary and returns immediately
// with a handle. The itinerary must be a shell in status "generating"; the
// orchestrator owns the object until the handle completes.
func (o *Orchestrator) Run(ctx context.Context, it *models.Itinerary) (*Handle, error) {
	if it == nil || len(it.Days) == 0 {
		return nil, fmt.Errorf("itinerary shell with day range required")
	}

	select {
	case o.sem <- struct{}{}:
	default:
		return nil, worker.Errorf(worker.KindTransient,
			"generation capacity reached (%d running), retry shortly", cap(o.sem))
	}

	executionID := ulid.Make().String()
	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	done := make(chan struct{})

	o.mu.Lock()
	o.active[executionID] = cancel
	o.mu.Unlock()

	o.wg.Add(1)
	go func() {
		defer o.wg.Done()
		defer close(done)
		defer func() { <-o.sem }()
		defer func() {
			o.mu.Lock()
			delete(o.active, executionID)
			o.mu.Unlock()
			cancel()
		}()
		o.execute(runCtx, it, executionID)
	}()

	return &Handle{ExecutionID: executionID, ItineraryID: it.ID, Done: done}, nil
}

// Cancel aborts a running execution. Returns false when the execution is not
// active on this process.
func (o *Orchestrator) Cancel(executionID string) bool {
	o.mu.RLock()
	defer o.mu.RUnlock()
	if cancel, ok := o.active[executionID]; ok {
		cancel()
		return true
	}
	return false
}

// ActiveCount returns the number of running executions.
func (o *Orchestrator) ActiveCount() int {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return len(o.active)
}

// Shutdown waits for running executions to drain, up to ctx's deadline.
// Executions still running after the budget are cancelled.
func (o *Orchestrator) Shutdown(ctx context.Context) error {
	drained := make(chan struct{})
	go func() {
		o.wg.Wait()
		close(drained)
	}()
	select {
	case <-drained:
		return nil
	case <-ctx.Done():
		o.mu.RLock()
		for id, cancel := range o.active {
			slog.Warn("cancelling execution at shutdown", "execution_id", id)
			cancel()
		}
		o.mu.RUnlock()
		<-drained
		return ctx.Err()
	}
}

// execute runs the five phases. Every exit path publishes a terminal event:
// generation_complete on success, a critical error otherwise.
func (o *Orchestrator) execute(ctx context.Context, it *models.Itinerary, executionID string) {
	logger := slog.With("itinerary_id", it.ID, "execution_id", executionID)
	logger.Info("generation started", "destination", it.Trip.Destination, "days", len(it.Days))

	// Phase 1 — skeleton. Critical: without structure nothing downstream
	// can run.
	if err := o.runPhase(ctx, it, executionID, PhaseSkeleton, func(phaseCtx context.Context) error {
		_, err := o.runWorker(phaseCtx, worker.TaskCreate, &worker.Request{
			TaskType:    worker.TaskCreate,
			Itinerary:   it,
			ExecutionID: executionID,
		})
		return err
	}); err != nil {
		o.failExecution(it, executionID, "skeleton_failed", err)
		return
	}

	// Phase 2 — population: three workers in parallel, failure-isolated.
	// All three failing is critical; partial failure degrades to warnings.
	if err := o.runPhase(ctx, it, executionID, PhasePopulation, func(phaseCtx context.Context) error {
		return o.runPopulation(phaseCtx, it, executionID)
	}); err != nil {
		o.failExecution(it, executionID, "population_failed", err)
		return
	}
	o.publishCompletedDays(ctx, it, executionID)

	// Phases 3 and 4 are tolerant: a failure degrades the itinerary, it does
	// not abort the run.
	for _, tolerant := range []struct {
		phase string
		task  worker.TaskType
	}{
		{PhaseEnrichment, worker.TaskEnrich},
		{PhaseCost, worker.TaskEstimateCost},
	} {
		err := o.runPhase(ctx, it, executionID, tolerant.phase, func(phaseCtx context.Context) error {
			_, err := o.runWorker(phaseCtx, tolerant.task, &worker.Request{
				TaskType:    tolerant.task,
				Itinerary:   it,
				ExecutionID: executionID,
			})
			return err
		})
		if err == nil {
			continue
		}
		if ctx.Err() != nil {
			o.failExecution(it, executionID, "cancelled", err)
			return
		}
		logger.Warn("tolerant phase failed", "phase", tolerant.phase, "error", err)
		o.publishWarning(it, executionID, tolerant.phase+"_failed", err.Error(),
			"itinerary is usable; re-run generation to fill the gaps")
	}

	// Phase 5 — finalization: consistency gate, persist, announce.
	if err := o.runPhase(ctx, it, executionID, PhaseFinalization, func(context.Context) error {
		return o.finalize(it)
	}); err != nil {
		o.failExecution(it, executionID, "finalization_failed", err)
		return
	}

	bg := context.Background()
	o.publishStatus(bg, it, executionID, models.StatusReady)
	if err := o.pub.PublishGenerationComplete(bg, it.ID, events.GenerationCompletePayload{
		BasePayload: events.NewBase(events.EventTypeGenerationComplete, it.ID, executionID),
		Snapshot:    it,
	}); err != nil {
		logger.Error("generation_complete publish failed", "error", err)
	}
	logger.Info("generation completed", "version", it.Version, "nodes", it.NodeCount())
}

// runPhase wraps a phase body with start/complete events, the cancellation
// barrier, progress anchoring, and the post-phase persist.
func (o *Orchestrator) runPhase(ctx context.Context, it *models.Itinerary, executionID, phase string, body func(context.Context) error) error {
	if ctx.Err() != nil {
		return fmt.Errorf("execution cancelled before %s: %w", phase, ctx.Err())
	}

	start := time.Now()
	if err := o.pub.PublishPhaseStart(ctx, it.ID, events.PhaseStartPayload{
		BasePayload: events.NewBase(events.EventTypePhaseStart, it.ID, executionID),
		Phase:       phase,
	}); err != nil {
		slog.Warn("phase_start publish failed", "phase", phase, "error", err)
	}

	if err := body(ctx); err != nil {
		return err
	}

	if err := o.persist(ctx, it); err != nil {
		return fmt.Errorf("persisting after %s: %w", phase, err)
	}

	// Terminal events must go out even when ctx was cancelled mid-persist.
	bg := context.Background()
	if err := o.pub.PublishPhaseComplete(bg, it.ID, events.PhaseCompletePayload{
		BasePayload: events.NewBase(events.EventTypePhaseComplete, it.ID, executionID),
		Phase:       phase,
		DurationMS:  time.Since(start).Milliseconds(),
	}); err != nil {
		slog.Warn("phase_complete publish failed", "phase", phase, "error", err)
	}
	if err := o.pub.PublishProgress(bg, it.ID, events.ProgressPayload{
		BasePayload: events.NewBase(events.EventTypeProgress, it.ID, executionID),
		Phase:       phase,
		Percent:     phaseAnchor[phase],
		Message:     phase + " complete",
	}); err != nil {
		slog.Warn("progress publish failed", "phase", phase, "error", err)
	}
	return nil
}

// populationResult pairs a population task with its outcome.
type populationResult struct {
	task worker.TaskType
	err  error
}

// runPopulation plans the population phase into its worker list and launches
// every planned worker concurrently. One survivor is enough to continue;
// failures of the others become warnings.
func (o *Orchestrator) runPopulation(ctx context.Context, it *models.Itinerary, executionID string) error {
	plan, err := o.registry.Plan(worker.TaskPopulate)
	if err != nil {
		return fmt.Errorf("planning population phase: %w", err)
	}

	results := make(chan populationResult, len(plan))
	var wg sync.WaitGroup
	for _, w := range plan {
		wg.Add(1)
		go func(w worker.Worker) {
			defer wg.Done()
			task := w.Capabilities().TaskType
			_, err := o.executeWithRetry(ctx, w, task, &worker.Request{
				TaskType:    task,
				Itinerary:   it,
				ExecutionID: executionID,
			})
			results <- populationResult{task: task, err: err}
		}(w)
	}
	wg.Wait()
	close(results)

	failed := 0
	var lastErr error
	for r := range results {
		if r.err == nil {
			continue
		}
		failed++
		lastErr = r.err
		slog.Warn("population worker failed",
			"itinerary_id", it.ID, "task", r.task, "error", r.err)
		o.publishWarning(it, executionID, "population_worker_failed",
			fmt.Sprintf("%s: %v", r.task, r.err),
			"some slots remain placeholders; edit or regenerate to fill them")
	}
	if failed == len(plan) {
		return fmt.Errorf("all population workers failed: %w", lastErr)
	}
	return nil
}

// runWorker plans a single-worker task and executes it.
func (o *Orchestrator) runWorker(ctx context.Context, task worker.TaskType, req *worker.Request) (*worker.Result, error) {
	plan, err := o.registry.Plan(task)
	if err != nil {
		return nil, err
	}
	return o.executeWithRetry(ctx, plan[0], task, req)
}

// executeWithRetry dispatches one worker with a per-attempt timeout and
// transient retries. Non-transient failures are terminal immediately.
func (o *Orchestrator) executeWithRetry(ctx context.Context, w worker.Worker, task worker.TaskType, req *worker.Request) (*worker.Result, error) {
	timeout := o.cfg.WorkerTimeout
	if t, ok := o.cfg.TaskTimeouts[task]; ok && t > 0 {
		timeout = t
	}

	var result *worker.Result
	op := func() error {
		attemptCtx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		res, execErr := w.Execute(attemptCtx, req)
		if execErr != nil {
			if worker.IsKind(execErr, worker.KindTransient) && ctx.Err() == nil {
				return execErr
			}
			return backoff.Permanent(execErr)
		}
		result = res
		return nil
	}

	expBackoff := backoff.NewExponentialBackOff()
	expBackoff.InitialInterval = o.cfg.RetryInterval
	if err := backoff.Retry(op, backoff.WithContext(backoff.WithMaxRetries(expBackoff, o.cfg.WorkerRetries), ctx)); err != nil {
		return nil, fmt.Errorf("worker %s: %w", task, err)
	}
	return result, nil
}

// finalize runs the consistency gate and flips the itinerary to ready.
func (o *Orchestrator) finalize(it *models.Itinerary) error {
	if errs := o.ident.ValidateConsistency(it); len(errs) > 0 {
		return fmt.Errorf("consistency check failed: %v (and %d more)", errs[0], len(errs)-1)
	}
	if it.NodeCount() == 0 {
		return fmt.Errorf("generation produced an empty itinerary")
	}
	it.Status = models.StatusReady
	return nil
}

// persist bumps the version and writes the itinerary.
func (o *Orchestrator) persist(ctx context.Context, it *models.Itinerary) error {
	it.Version++
	it.UpdatedAt = time.Now().UTC()
	return o.store.PutItinerary(ctx, it)
}

// publishCompletedDays emits day_completed for every fully populated day.
func (o *Orchestrator) publishCompletedDays(ctx context.Context, it *models.Itinerary, executionID string) {
	for i := range it.Days {
		day := &it.Days[i]
		complete := len(day.Nodes) > 0
		for j := range day.Nodes {
			if v, ok := day.Nodes[j].Details["placeholder"].(bool); ok && v {
				complete = false
				break
			}
		}
		if !complete {
			continue
		}
		if err := o.pub.PublishDayCompleted(ctx, it.ID, events.DayCompletedPayload{
			BasePayload: events.NewBase(events.EventTypeDayCompleted, it.ID, executionID),
			Day:         day.Number,
		}); err != nil {
			slog.Warn("day_completed publish failed", "day", day.Number, "error", err)
		}
	}
}

// failExecution is the single critical-failure path: persist the failed
// status, then publish the status transition and a critical error event.
// Uses a background context — the run context may already be cancelled.
func (o *Orchestrator) failExecution(it *models.Itinerary, executionID, code string, cause error) {
	bg := context.Background()
	slog.Error("generation failed",
		"itinerary_id", it.ID, "execution_id", executionID, "code", code, "error", cause)

	it.Status = models.StatusFailed
	if err := o.persist(bg, it); err != nil {
		slog.Error("persisting failed status", "itinerary_id", it.ID, "error", err)
	}

	o.publishStatus(bg, it, executionID, models.StatusFailed)
	if err := o.pub.PublishError(bg, it.ID, events.ErrorPayload{
		BasePayload: events.NewBase(events.EventTypeError, it.ID, executionID),
		Code:        code,
		Message:     cause.Error(),
		Severity:    events.SeverityCritical,
		Retryable:   true,
	}); err != nil {
		slog.Error("error event publish failed", "itinerary_id", it.ID, "error", err)
	}
}

func (o *Orchestrator) publishStatus(ctx context.Context, it *models.Itinerary, executionID string, status models.CreationStatus) {
	if err := o.pub.PublishItineraryStatus(ctx, it.ID, events.ItineraryStatusPayload{
		BasePayload: events.NewBase(events.EventTypeItineraryStatus, it.ID, executionID),
		Status:      status,
	}); err != nil {
		slog.Warn("itinerary status publish failed", "itinerary_id", it.ID, "error", err)
	}
}

func (o *Orchestrator) publishWarning(it *models.Itinerary, executionID, code, message, hint string) {
	if err := o.pub.PublishWarning(context.Background(), it.ID, events.WarningPayload{
		BasePayload:  events.NewBase(events.EventTypeWarning, it.ID, executionID),
		Code:         code,
		Message:      message,
		RecoveryHint: hint,
	}); err != nil {
		slog.Warn("warning publish failed", "itinerary_id", it.ID, "error", err)
	}
}
