// Package worker contains the specialized agents behind the pipeline and the
// chat orchestrator. Each worker handles exactly one task type and either
// produces a ChangeSet (editor, booking) or populates its slice of the
// itinerary in place (skeleton, population, enrichment, cost).
package worker

import (
	"context"
	"errors"
	"fmt"

	"github.com/wanderplan/wanderplan/pkg/llm"
	"github.com/wanderplan/wanderplan/pkg/models"
)

// TaskType is the single label a worker advertises.
type TaskType string

// Canonical task types.
const (
	TaskCreate             TaskType = "create"
	TaskPopulateAttraction TaskType = "populate-attractions"
	TaskPopulateMeals      TaskType = "populate-meals"
	TaskPopulateTransport  TaskType = "populate-transport"
	TaskEnrich             TaskType = "enrich"
	TaskEstimateCost       TaskType = "estimate-cost"
	TaskEdit               TaskType = "edit"
	TaskExplain            TaskType = "explain"
	TaskBook               TaskType = "book"

	// TaskPopulate is a phase-level planning key, not a worker's task type:
	// Registry.Plan expands it into the three population workers in order.
	TaskPopulate TaskType = "populate"
)

// Capabilities is a worker's self-declaration, consulted by the registry.
type Capabilities struct {
	TaskType          TaskType
	Priority          int // higher wins when two workers claim a task type
	ChatEnabled       bool
	RequiredInputs    []string
	ProducesChangeSet bool // false means the worker mutates the itinerary in place
}

// Request is a single worker invocation. Itinerary is the CURRENT in-memory
// migrated object; workers must not re-read it from the store.
type Request struct {
	TaskType    TaskType
	Itinerary   *models.Itinerary
	ExecutionID string

	// Chat path fields.
	Text         string
	TargetNodeID string
	Scope        map[string]string

	// Day restricts population to one day; zero means all days.
	Day int
}

// Result is a worker's output. Exactly one of ChangeSet / in-place mutation
// applies, per the worker's ProducesChangeSet capability; Message carries the
// natural-language side of chat responses.
type Result struct {
	ChangeSet *models.ChangeSet
	Message   string
}

// Worker is a specialized agent handling one task type.
type Worker interface {
	Capabilities() Capabilities
	Execute(ctx context.Context, req *Request) (*Result, error)
}

// ErrorKind classifies a worker failure; the orchestrator decides retry vs
// abort from the kind.
type ErrorKind string

// Worker failure kinds.
const (
	KindTransient         ErrorKind = "transient"
	KindInvalidInput      ErrorKind = "invalid_input"
	KindLLMFailure        ErrorKind = "llm_failure"
	KindSchemaViolation   ErrorKind = "schema_violation"
	KindDependencyFailure ErrorKind = "dependency_failure"
)

// Error is a typed worker failure.
type Error struct {
	Kind    ErrorKind
	Message string
	Wrapped error
}

func (e *Error) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Wrapped }

// Retryable reports whether the orchestrator may retry this failure.
func (e *Error) Retryable() bool { return e.Kind == KindTransient }

// IsKind reports whether err is a worker Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

// KindOf returns the kind of a worker Error, or "" for foreign errors.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// Errorf builds a typed worker error.
func Errorf(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// WrapLLM translates an llm package failure into the worker taxonomy.
// Context cancellation and deadline expiry classify as transient.
func WrapLLM(err error, message string) *Error {
	kind := KindLLMFailure
	switch {
	case errors.Is(err, llm.ErrSchemaViolation):
		kind = KindSchemaViolation
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		kind = KindTransient
	}
	return &Error{Kind: kind, Message: message, Wrapped: err}
}

// checkTask fails fast when a worker is dispatched the wrong task type.
func checkTask(got TaskType, caps Capabilities) *Error {
	if got != caps.TaskType {
		return Errorf(KindInvalidInput, "worker handles task %q, got %q", caps.TaskType, got)
	}
	return nil
}

// checkItinerary validates the shared request preconditions.
func checkItinerary(req *Request) *Error {
	if req.Itinerary == nil {
		return Errorf(KindInvalidInput, "itinerary is required")
	}
	return nil
}
