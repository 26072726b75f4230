package pipeline

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
	"github.com/wanderplan/wanderplan/pkg/worker"
)

// recordingPublisher captures every emitted event, concurrency-safe.
type recordingPublisher struct {
	mu        sync.Mutex
	progress  []events.ProgressPayload
	starts    []events.PhaseStartPayload
	completes []events.PhaseCompletePayload
	days      []events.DayCompletedPayload
	generated []events.GenerationCompletePayload
	statuses  []events.ItineraryStatusPayload
	warnings  []events.WarningPayload
	errs      []events.ErrorPayload
}

func (p *recordingPublisher) PublishProgress(_ context.Context, _ string, e events.ProgressPayload) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.progress = append(p.progress, e)
	return nil
}

func (p *recordingPublisher) PublishPhaseStart(_ context.Context, _ string, e events.PhaseStartPayload) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.starts = append(p.starts, e)
	return nil
}

func (p *recordingPublisher) PublishPhaseComplete(_ context.Context, _ string, e events.PhaseCompletePayload) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.completes = append(p.completes, e)
	return nil
}

func (p *recordingPublisher) PublishPatchApplied(context.Context, string, events.PatchAppliedPayload) error {
	return nil
}

func (p *recordingPublisher) PublishDayCompleted(_ context.Context, _ string, e events.DayCompletedPayload) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.days = append(p.days, e)
	return nil
}

func (p *recordingPublisher) PublishNodeEnhanced(context.Context, string, events.NodeEnhancedPayload) error {
	return nil
}

func (p *recordingPublisher) PublishGenerationComplete(_ context.Context, _ string, e events.GenerationCompletePayload) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.generated = append(p.generated, e)
	return nil
}

func (p *recordingPublisher) PublishItineraryStatus(_ context.Context, _ string, e events.ItineraryStatusPayload) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.statuses = append(p.statuses, e)
	return nil
}

func (p *recordingPublisher) PublishWarning(_ context.Context, _ string, e events.WarningPayload) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.warnings = append(p.warnings, e)
	return nil
}

func (p *recordingPublisher) PublishError(_ context.Context, _ string, e events.ErrorPayload) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.errs = append(p.errs, e)
	return nil
}

// captured is a lock-free copy of the publisher's state.
type captured struct {
	progress  []events.ProgressPayload
	starts    []events.PhaseStartPayload
	completes []events.PhaseCompletePayload
	days      []events.DayCompletedPayload
	generated []events.GenerationCompletePayload
	statuses  []events.ItineraryStatusPayload
	warnings  []events.WarningPayload
	errs      []events.ErrorPayload
}

func (p *recordingPublisher) snapshot() captured {
	p.mu.Lock()
	defer p.mu.Unlock()
	return captured{
		progress:  append([]events.ProgressPayload(nil), p.progress...),
		starts:    append([]events.PhaseStartPayload(nil), p.starts...),
		completes: append([]events.PhaseCompletePayload(nil), p.completes...),
		days:      append([]events.DayCompletedPayload(nil), p.days...),
		generated: append([]events.GenerationCompletePayload(nil), p.generated...),
		statuses:  append([]events.ItineraryStatusPayload(nil), p.statuses...),
		warnings:  append([]events.WarningPayload(nil), p.warnings...),
		errs:      append([]events.ErrorPayload(nil), p.errs...),
	}
}

// fakeStore records puts.
type fakeStore struct {
	mu   sync.Mutex
	puts int
}

func (s *fakeStore) PutItinerary(_ context.Context, _ *models.Itinerary) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.puts++
	return nil
}

func (s *fakeStore) putCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.puts
}

// scriptWorker is a scriptable worker for orchestration tests.
type scriptWorker struct {
	task  worker.TaskType
	fn    func(ctx context.Context, req *worker.Request) (*worker.Result, error)
	mu    sync.Mutex
	calls int
}

func (w *scriptWorker) Capabilities() worker.Capabilities {
	return worker.Capabilities{TaskType: w.task, Priority: 10}
}

func (w *scriptWorker) Execute(ctx context.Context, req *worker.Request) (*worker.Result, error) {
	w.mu.Lock()
	w.calls++
	w.mu.Unlock()
	if w.fn == nil {
		return &worker.Result{}, nil
	}
	return w.fn(ctx, req)
}

func (w *scriptWorker) callCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.calls
}

// fillSkeleton populates every day with one concrete node, mimicking a
// successful skeleton + population pass in one step.
func fillSkeleton(_ context.Context, req *worker.Request) (*worker.Result, error) {
	for i := range req.Itinerary.Days {
		day := &req.Itinerary.Days[i]
		day.Nodes = []models.Node{{
			ID:    identity.NodeID(day.Number, 1),
			Title: fmt.Sprintf("Stop %d", day.Number),
			Type:  models.NodeAttraction,
		}}
	}
	return &worker.Result{}, nil
}

func shellItinerary(days int) *models.Itinerary {
	it := &models.Itinerary{
		ID:      "it_pipeline",
		OwnerID: "user_1",
		Version: 1,
		Status:  models.StatusGenerating,
		Trip: models.TripMeta{
			Destination: "Lisbon",
			StartDate:   "2026-06-01",
			EndDate:     fmt.Sprintf("2026-06-%02d", days),
			Party:       models.Party{Adults: 2},
			Budget:      models.BudgetMid,
		},
	}
	for d := 1; d <= days; d++ {
		it.Days = append(it.Days, models.Day{Number: d, Date: fmt.Sprintf("2026-06-%02d", d)})
	}
	return it
}

type testRig struct {
	orch     *Orchestrator
	pub      *recordingPublisher
	store    *fakeStore
	registry *worker.Registry
	workers  map[worker.TaskType]*scriptWorker
}

func newTestRig(t *testing.T, overrides map[worker.TaskType]func(context.Context, *worker.Request) (*worker.Result, error)) *testRig {
	t.Helper()
	registry := worker.NewRegistry()
	workers := make(map[worker.TaskType]*scriptWorker)
	defaults := map[worker.TaskType]func(context.Context, *worker.Request) (*worker.Result, error){
		worker.TaskCreate:             fillSkeleton,
		worker.TaskPopulateAttraction: nil,
		worker.TaskPopulateMeals:      nil,
		worker.TaskPopulateTransport:  nil,
		worker.TaskEnrich:             nil,
		worker.TaskEstimateCost:       nil,
	}
	for task, fn := range defaults {
		if override, ok := overrides[task]; ok {
			fn = override
		}
		sw := &scriptWorker{task: task, fn: fn}
		workers[task] = sw
		require.NoError(t, registry.Register(sw))
	}

	pub := &recordingPublisher{}
	store := &fakeStore{}
	orch := New(registry, store, pub, identity.NewService(nil), Config{
		WorkerTimeout: 5 * time.Second,
		WorkerRetries: 2,
		RetryInterval: time.Millisecond,
	})
	return &testRig{orch: orch, pub: pub, store: store, registry: registry, workers: workers}
}

func TestOrchestrator_SuccessfulRun(t *testing.T) {
	rig := newTestRig(t, nil)
	it := shellItinerary(3)

	handle, err := rig.orch.Run(t.Context(), it)
	require.NoError(t, err)
	require.NotEmpty(t, handle.ExecutionID)
	require.NoError(t, handle.Wait(t.Context()))

	got := rig.pub.snapshot()

	// All five phases started and completed, in order. Literal strings on
	// purpose: these names are the wire contract subscribers match on.
	wantPhases := []string{"skeleton", "population", "enrichment", "cost", "finalization"}
	require.Len(t, got.starts, 5)
	require.Len(t, got.completes, 5)
	for i, phase := range wantPhases {
		assert.Equal(t, phase, got.starts[i].Phase)
		assert.Equal(t, phase, got.completes[i].Phase)
	}

	// Anchored progress per phase.
	anchors := map[string]int{}
	for _, p := range got.progress {
		anchors[p.Phase] = p.Percent
	}
	for phase, want := range phaseAnchor {
		assert.Equal(t, want, anchors[phase], "anchor for %s", phase)
	}

	// One day_completed per populated day.
	assert.Len(t, got.days, 3)

	require.Len(t, got.generated, 1)
	require.NotNil(t, got.generated[0].Snapshot)
	assert.Equal(t, models.StatusReady, got.generated[0].Snapshot.Status)
	assert.Equal(t, handle.ExecutionID, got.generated[0].ExecutionID)
	assert.Empty(t, got.errs)

	// One persist per phase, each bumping the version.
	assert.Equal(t, 5, rig.store.putCount())
	assert.Equal(t, 6, it.Version)
	assert.Equal(t, models.StatusReady, it.Status)

	require.NotEmpty(t, got.statuses)
	assert.Equal(t, models.StatusReady, got.statuses[len(got.statuses)-1].Status)
	assert.Equal(t, 0, rig.orch.ActiveCount())
}

func TestOrchestrator_SkeletonFailureIsCritical(t *testing.T) {
	rig := newTestRig(t, map[worker.TaskType]func(context.Context, *worker.Request) (*worker.Result, error){
		worker.TaskCreate: func(context.Context, *worker.Request) (*worker.Result, error) {
			return nil, worker.Errorf(worker.KindLLMFailure, "model unreachable")
		},
	})
	it := shellItinerary(2)

	handle, err := rig.orch.Run(t.Context(), it)
	require.NoError(t, err)
	require.NoError(t, handle.Wait(t.Context()))

	got := rig.pub.snapshot()
	assert.Empty(t, got.generated)
	require.Len(t, got.errs, 1)
	assert.Equal(t, "skeleton_failed", got.errs[0].Code)
	assert.Equal(t, events.SeverityCritical, got.errs[0].Severity)
	assert.Equal(t, models.StatusFailed, it.Status)

	// Population never ran.
	assert.Equal(t, 0, rig.workers[worker.TaskPopulateAttraction].callCount())
}

func TestOrchestrator_PartialPopulationFailureDegrades(t *testing.T) {
	rig := newTestRig(t, map[worker.TaskType]func(context.Context, *worker.Request) (*worker.Result, error){
		worker.TaskPopulateMeals: func(context.Context, *worker.Request) (*worker.Result, error) {
			return nil, worker.Errorf(worker.KindLLMFailure, "meal model down")
		},
	})
	it := shellItinerary(2)

	handle, err := rig.orch.Run(t.Context(), it)
	require.NoError(t, err)
	require.NoError(t, handle.Wait(t.Context()))

	got := rig.pub.snapshot()
	require.Len(t, got.generated, 1, "partial failure must not abort the run")
	require.NotEmpty(t, got.warnings)
	found := false
	for _, w := range got.warnings {
		if w.Code == "population_worker_failed" {
			found = true
			assert.Contains(t, w.Message, "populate-meals")
			assert.NotEmpty(t, w.RecoveryHint)
		}
	}
	assert.True(t, found)
	assert.Empty(t, got.errs)
}

func TestOrchestrator_AllPopulationFailuresAreCritical(t *testing.T) {
	fail := func(context.Context, *worker.Request) (*worker.Result, error) {
		return nil, worker.Errorf(worker.KindLLMFailure, "down")
	}
	rig := newTestRig(t, map[worker.TaskType]func(context.Context, *worker.Request) (*worker.Result, error){
		worker.TaskPopulateAttraction: fail,
		worker.TaskPopulateMeals:      fail,
		worker.TaskPopulateTransport:  fail,
	})
	it := shellItinerary(1)

	handle, err := rig.orch.Run(t.Context(), it)
	require.NoError(t, err)
	require.NoError(t, handle.Wait(t.Context()))

	got := rig.pub.snapshot()
	assert.Empty(t, got.generated)
	require.Len(t, got.errs, 1)
	assert.Equal(t, "population_failed", got.errs[0].Code)
	assert.Equal(t, models.StatusFailed, it.Status)
}

func TestOrchestrator_TolerantPhaseFailureWarnsAndCompletes(t *testing.T) {
	rig := newTestRig(t, map[worker.TaskType]func(context.Context, *worker.Request) (*worker.Result, error){
		worker.TaskEnrich: func(context.Context, *worker.Request) (*worker.Result, error) {
			return nil, worker.Errorf(worker.KindDependencyFailure, "places api down")
		},
	})
	it := shellItinerary(1)

	handle, err := rig.orch.Run(t.Context(), it)
	require.NoError(t, err)
	require.NoError(t, handle.Wait(t.Context()))

	got := rig.pub.snapshot()
	require.Len(t, got.generated, 1)
	found := false
	for _, w := range got.warnings {
		if w.Code == "enrichment_failed" {
			found = true
		}
	}
	assert.True(t, found)
	assert.Equal(t, models.StatusReady, it.Status)
}

func TestOrchestrator_RetriesTransientFailures(t *testing.T) {
	var attempts int
	var mu sync.Mutex
	rig := newTestRig(t, map[worker.TaskType]func(context.Context, *worker.Request) (*worker.Result, error){
		worker.TaskCreate: func(ctx context.Context, req *worker.Request) (*worker.Result, error) {
			mu.Lock()
			attempts++
			n := attempts
			mu.Unlock()
			if n == 1 {
				return nil, worker.Errorf(worker.KindTransient, "flaky network")
			}
			return fillSkeleton(ctx, req)
		},
	})
	it := shellItinerary(1)

	handle, err := rig.orch.Run(t.Context(), it)
	require.NoError(t, err)
	require.NoError(t, handle.Wait(t.Context()))

	assert.Equal(t, 2, rig.workers[worker.TaskCreate].callCount())
	assert.Len(t, rig.pub.snapshot().generated, 1)
}

func TestOrchestrator_NonTransientFailureNotRetried(t *testing.T) {
	rig := newTestRig(t, map[worker.TaskType]func(context.Context, *worker.Request) (*worker.Result, error){
		worker.TaskCreate: func(context.Context, *worker.Request) (*worker.Result, error) {
			return nil, worker.Errorf(worker.KindSchemaViolation, "bad output")
		},
	})
	it := shellItinerary(1)

	handle, err := rig.orch.Run(t.Context(), it)
	require.NoError(t, err)
	require.NoError(t, handle.Wait(t.Context()))

	assert.Equal(t, 1, rig.workers[worker.TaskCreate].callCount())
}

func TestOrchestrator_CancelAbortsExecution(t *testing.T) {
	started := make(chan struct{})
	rig := newTestRig(t, map[worker.TaskType]func(context.Context, *worker.Request) (*worker.Result, error){
		worker.TaskCreate: func(ctx context.Context, _ *worker.Request) (*worker.Result, error) {
			close(started)
			<-ctx.Done()
			return nil, worker.Errorf(worker.KindTransient, "cancelled: %v", ctx.Err())
		},
	})
	it := shellItinerary(1)

	handle, err := rig.orch.Run(t.Context(), it)
	require.NoError(t, err)

	<-started
	assert.True(t, rig.orch.Cancel(handle.ExecutionID))
	require.NoError(t, handle.Wait(t.Context()))

	got := rig.pub.snapshot()
	assert.Empty(t, got.generated)
	require.NotEmpty(t, got.errs)
	assert.Equal(t, models.StatusFailed, it.Status)

	// Unknown executions are not cancellable.
	assert.False(t, rig.orch.Cancel("nope"))
}

func TestOrchestrator_RejectsEmptyShell(t *testing.T) {
	rig := newTestRig(t, nil)
	_, err := rig.orch.Run(t.Context(), &models.Itinerary{ID: "x"})
	assert.Error(t, err)
}

func TestOrchestrator_ShutdownDrains(t *testing.T) {
	rig := newTestRig(t, nil)
	it := shellItinerary(2)

	handle, err := rig.orch.Run(t.Context(), it)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(t.Context(), 5*time.Second)
	defer cancel()
	require.NoError(t, rig.orch.Shutdown(ctx))

	select {
	case <-handle.Done:
	default:
		t.Fatal("execution still running after Shutdown")
	}
}

func TestOrchestrator_CapsConcurrentExecutions(t *testing.T) {
	release := make(chan struct{})
	rig := newTestRig(t, map[worker.TaskType]func(context.Context, *worker.Request) (*worker.Result, error){
		worker.TaskCreate: func(ctx context.Context, req *worker.Request) (*worker.Result, error) {
			select {
			case <-release:
			case <-ctx.Done():
				return nil, ctx.Err()
			}
			return fillSkeleton(ctx, req)
		},
	})
	rig.orch = New(rig.registry, rig.store, rig.pub, identity.NewService(nil), Config{
		WorkerTimeout: 5 * time.Second,
		WorkerRetries: 1,
		RetryInterval: time.Millisecond,
		MaxConcurrent: 1,
	})

	first, err := rig.orch.Run(t.Context(), shellItinerary(1))
	require.NoError(t, err)

	_, err = rig.orch.Run(t.Context(), shellItinerary(1))
	require.Error(t, err)
	assert.True(t, worker.IsKind(err, worker.KindTransient))

	close(release)
	require.NoError(t, first.Wait(t.Context()))

	// Slot freed: a new execution starts.
	second, err := rig.orch.Run(t.Context(), shellItinerary(1))
	require.NoError(t, err)
	require.NoError(t, second.Wait(t.Context()))
}

func TestOrchestrator_TaskTimeoutOverride(t *testing.T) {
	deadlineCh := make(chan time.Duration, 1)
	rig := newTestRig(t, map[worker.TaskType]func(context.Context, *worker.Request) (*worker.Result, error){
		worker.TaskEnrich: func(ctx context.Context, _ *worker.Request) (*worker.Result, error) {
			if deadline, ok := ctx.Deadline(); ok {
				select {
				case deadlineCh <- time.Until(deadline):
				default:
				}
			}
			return &worker.Result{}, nil
		},
	})
	rig.orch = New(rig.registry, rig.store, rig.pub, identity.NewService(nil), Config{
		WorkerTimeout: time.Hour,
		WorkerRetries: 1,
		RetryInterval: time.Millisecond,
		TaskTimeouts:  map[worker.TaskType]time.Duration{worker.TaskEnrich: 100 * time.Millisecond},
	})

	handle, err := rig.orch.Run(t.Context(), shellItinerary(1))
	require.NoError(t, err)
	require.NoError(t, handle.Wait(t.Context()))

	select {
	case remaining := <-deadlineCh:
		assert.LessOrEqual(t, remaining, 100*time.Millisecond)
	default:
		t.Fatal("enrich worker never observed a deadline")
	}
}
