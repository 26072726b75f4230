package worker

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"
)

// Registry holds one worker per task type. Registration is write-once at
// startup; lookups are concurrent-safe.
type Registry struct {
	mu      sync.RWMutex
	workers map[TaskType]Worker
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{workers: make(map[TaskType]Worker)}
}

// Register adds a worker. When two workers declare the same task type, the
// higher priority wins; equal priority is a configuration error so that the
// chat dispatcher never has an ambiguous choice.
func (r *Registry) Register(w Worker) error {
	caps := w.Capabilities()
	if caps.TaskType == "" {
		return fmt.Errorf("worker declares empty task type")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.workers[caps.TaskType]
	if !ok {
		r.workers[caps.TaskType] = w
		return nil
	}

	prev := existing.Capabilities()
	switch {
	case caps.Priority > prev.Priority:
		slog.Info("worker registration override",
			"task_type", caps.TaskType,
			"old_priority", prev.Priority,
			"new_priority", caps.Priority)
		r.workers[caps.TaskType] = w
		return nil
	case caps.Priority < prev.Priority:
		return nil
	default:
		return fmt.Errorf("task type %q claimed twice at priority %d", caps.TaskType, caps.Priority)
	}
}

// MustRegister panics on registration failure. For static startup wiring.
func (r *Registry) MustRegister(workers ...Worker) {
	for _, w := range workers {
		if err := r.Register(w); err != nil {
			panic(err)
		}
	}
}

// compositeTasks expands a phase-level planning key into its member task
// types, in dependency order.
var compositeTasks = map[TaskType][]TaskType{
	TaskPopulate: {TaskPopulateAttraction, TaskPopulateMeals, TaskPopulateTransport},
}

// Plan resolves a task type into the ordered list of workers that executes
// it: a single worker for direct tasks (the chat path), the member workers of
// a composite key in order (the pipeline path). Planning fails when any
// required worker is unregistered.
func (r *Registry) Plan(task TaskType) ([]Worker, error) {
	members, ok := compositeTasks[task]
	if !ok {
		w, err := r.Get(task)
		if err != nil {
			return nil, err
		}
		return []Worker{w}, nil
	}
	out := make([]Worker, 0, len(members))
	for _, member := range members {
		w, err := r.Get(member)
		if err != nil {
			return nil, fmt.Errorf("planning %s: %w", task, err)
		}
		out = append(out, w)
	}
	return out, nil
}

// Get returns the worker for a task type.
func (r *Registry) Get(task TaskType) (Worker, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.workers[task]
	if !ok {
		return nil, fmt.Errorf("no worker registered for task type %q", task)
	}
	return w, nil
}

// ChatCapableWorkers returns the chat-enabled workers ordered by task type,
// so intent routing is deterministic.
func (r *Registry) ChatCapableWorkers() []Worker {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Worker, 0, len(r.workers))
	for _, w := range r.workers {
		if w.Capabilities().ChatEnabled {
			out = append(out, w)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Capabilities().TaskType < out[j].Capabilities().TaskType
	})
	return out
}

// TaskTypes returns every registered task type, sorted.
func (r *Registry) TaskTypes() []TaskType {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]TaskType, 0, len(r.workers))
	for t := range r.workers {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
