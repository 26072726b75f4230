package worker

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubWorker struct {
	caps Capabilities
}

func (w *stubWorker) Capabilities() Capabilities { return w.caps }

func (w *stubWorker) Execute(context.Context, *Request) (*Result, error) {
	return &Result{}, nil
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := NewRegistry()
	w := &stubWorker{caps: Capabilities{TaskType: TaskEdit, Priority: 10, ChatEnabled: true}}
	require.NoError(t, r.Register(w))

	got, err := r.Get(TaskEdit)
	require.NoError(t, err)
	assert.Same(t, w, got)

	_, err = r.Get(TaskBook)
	assert.Error(t, err)
}

func TestRegistry_RejectsEqualPriorityOverlap(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&stubWorker{caps: Capabilities{TaskType: TaskEdit, Priority: 10, ChatEnabled: true}}))

	err := r.Register(&stubWorker{caps: Capabilities{TaskType: TaskEdit, Priority: 10, ChatEnabled: true}})
	assert.Error(t, err)
}

func TestRegistry_HigherPriorityWins(t *testing.T) {
	r := NewRegistry()
	low := &stubWorker{caps: Capabilities{TaskType: TaskExplain, Priority: 5}}
	high := &stubWorker{caps: Capabilities{TaskType: TaskExplain, Priority: 20}}
	require.NoError(t, r.Register(low))
	require.NoError(t, r.Register(high))

	got, err := r.Get(TaskExplain)
	require.NoError(t, err)
	assert.Same(t, high, got)

	// Lower priority after the fact is a silent no-op.
	require.NoError(t, r.Register(low))
	got, err = r.Get(TaskExplain)
	require.NoError(t, err)
	assert.Same(t, high, got)
}

func TestRegistry_RejectsEmptyTaskType(t *testing.T) {
	r := NewRegistry()
	assert.Error(t, r.Register(&stubWorker{}))
}

func TestRegistry_ChatCapableWorkersSortedAndFiltered(t *testing.T) {
	r := NewRegistry()
	r.MustRegister(
		&stubWorker{caps: Capabilities{TaskType: TaskExplain, Priority: 10, ChatEnabled: true}},
		&stubWorker{caps: Capabilities{TaskType: TaskEdit, Priority: 10, ChatEnabled: true}},
		&stubWorker{caps: Capabilities{TaskType: TaskCreate, Priority: 10}},
	)

	chat := r.ChatCapableWorkers()
	require.Len(t, chat, 2)
	assert.Equal(t, TaskEdit, chat[0].Capabilities().TaskType)
	assert.Equal(t, TaskExplain, chat[1].Capabilities().TaskType)
}

func TestRegistry_PlanSingleWorker(t *testing.T) {
	r := NewRegistry()
	w := &stubWorker{caps: Capabilities{TaskType: TaskEdit, Priority: 10, ChatEnabled: true}}
	require.NoError(t, r.Register(w))

	plan, err := r.Plan(TaskEdit)
	require.NoError(t, err)
	require.Len(t, plan, 1)
	assert.Same(t, w, plan[0])

	_, err = r.Plan(TaskBook)
	assert.Error(t, err)
}

func TestRegistry_PlanPopulationPhase(t *testing.T) {
	r := NewRegistry()
	attractions := &stubWorker{caps: Capabilities{TaskType: TaskPopulateAttraction, Priority: 10}}
	meals := &stubWorker{caps: Capabilities{TaskType: TaskPopulateMeals, Priority: 10}}
	transport := &stubWorker{caps: Capabilities{TaskType: TaskPopulateTransport, Priority: 10}}
	r.MustRegister(attractions, meals, transport)

	plan, err := r.Plan(TaskPopulate)
	require.NoError(t, err)
	require.Len(t, plan, 3)
	assert.Same(t, attractions, plan[0])
	assert.Same(t, meals, plan[1])
	assert.Same(t, transport, plan[2])
}

func TestRegistry_PlanFailsWhenMemberMissing(t *testing.T) {
	r := NewRegistry()
	r.MustRegister(
		&stubWorker{caps: Capabilities{TaskType: TaskPopulateAttraction, Priority: 10}},
		&stubWorker{caps: Capabilities{TaskType: TaskPopulateMeals, Priority: 10}},
	)

	_, err := r.Plan(TaskPopulate)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "populate-transport")
}

func TestErrorTaxonomy(t *testing.T) {
	err := Errorf(KindInvalidInput, "bad day %d", 9)
	assert.True(t, IsKind(err, KindInvalidInput))
	assert.False(t, IsKind(err, KindTransient))
	assert.Equal(t, KindInvalidInput, KindOf(err))
	assert.False(t, err.Retryable())
	assert.True(t, Errorf(KindTransient, "x").Retryable())

	wrapped := &Error{Kind: KindDependencyFailure, Message: "provider down", Wrapped: context.DeadlineExceeded}
	assert.ErrorIs(t, wrapped, context.DeadlineExceeded)
}
