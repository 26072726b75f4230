package engine

import (
	"errors"
	"fmt"
)

// Kind classifies a change-engine failure. The API layer maps kinds to HTTP
// status codes; clients branch on the kind string.
type Kind string

// Failure kinds.
const (
	KindVersionConflict Kind = "version_conflict"
	KindNodeNotFound    Kind = "node_not_found"
	KindLockedTarget    Kind = "locked_target"
	KindInvalidInput    Kind = "invalid_input"
	KindNotOwned        Kind = "not_owned"
)

// Error is a typed change-engine failure. The whole changeset aborts on any
// Error: no partial application, no revision, no event.
type Error struct {
	Kind    Kind
	Message string
	NodeID  string // set for node-scoped failures
}

func (e *Error) Error() string {
	if e.NodeID != "" {
		return fmt.Sprintf("%s: %s (node %s)", e.Kind, e.Message, e.NodeID)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// IsKind reports whether err is an engine Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

// KindOf returns the kind of an engine Error, or "" for foreign errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

func versionConflict(have, want int) *Error {
	return &Error{
		Kind:    KindVersionConflict,
		Message: fmt.Sprintf("base version %d is stale, itinerary is at version %d", want, have),
	}
}

func nodeNotFound(nodeID string) *Error {
	return &Error{
		Kind:    KindNodeNotFound,
		Message: fmt.Sprintf("node %s does not exist", nodeID),
		NodeID:  nodeID,
	}
}

func lockedTarget(nodeID string) *Error {
	return &Error{
		Kind:    KindLockedTarget,
		Message: fmt.Sprintf("node %s is locked", nodeID),
		NodeID:  nodeID,
	}
}

func invalidInput(format string, args ...any) *Error {
	return &Error{
		Kind:    KindInvalidInput,
		Message: fmt.Sprintf(format, args...),
	}
}
