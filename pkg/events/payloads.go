package events

import (
	"time"

	"github.com/wanderplan/wanderplan/pkg/models"
)

// BasePayload carries the fields common to every event. Type is one of the
// EventType* constants; ExecutionID is set for pipeline events so clients can
// filter a subscription down to one generation run.
type BasePayload struct {
	Type        string `json:"type"`
	ItineraryID string `json:"itinerary_id"`
	ExecutionID string `json:"execution_id,omitempty"`
	Timestamp   string `json:"timestamp"` // RFC3339Nano
}

// NewBase builds a BasePayload stamped with the current time.
func NewBase(eventType, itineraryID, executionID string) BasePayload {
	return BasePayload{
		Type:        eventType,
		ItineraryID: itineraryID,
		ExecutionID: executionID,
		Timestamp:   time.Now().Format(time.RFC3339Nano),
	}
}

// ProgressPayload is a transient worker progress report.
type ProgressPayload struct {
	BasePayload
	Phase      string `json:"phase"`
	Percent    int    `json:"percent"` // 0–100, phase-anchored
	Message    string `json:"message,omitempty"`
	WorkerKind string `json:"worker_kind,omitempty"`
}

// PhaseStartPayload marks the start of a pipeline phase.
type PhaseStartPayload struct {
	BasePayload
	Phase string `json:"phase"`
}

// PhaseCompletePayload marks the end of a pipeline phase.
type PhaseCompletePayload struct {
	BasePayload
	Phase      string `json:"phase"`
	DurationMS int64  `json:"duration_ms"`
}

// PatchAppliedPayload carries the diff and new version after a change-engine
// commit.
type PatchAppliedPayload struct {
	BasePayload
	Diff       models.Diff `json:"diff"`
	NewVersion int         `json:"new_version"`
	Revision   int         `json:"revision,omitempty"`
}

// DayCompletedPayload signals that population finished for one day.
type DayCompletedPayload struct {
	BasePayload
	Day int `json:"day"`
}

// NodeEnhancedPayload signals that async enrichment completed for one node.
type NodeEnhancedPayload struct {
	BasePayload
	NodeID      string `json:"node_id"`
	Enhancement string `json:"enhancement"` // e.g. "coordinates", "hours", "photos"
}

// GenerationCompletePayload is the terminal success event of a pipeline run.
// Snapshot is the final itinerary state.
type GenerationCompletePayload struct {
	BasePayload
	Snapshot *models.Itinerary `json:"snapshot"`
}

// ItineraryStatusPayload reports a creation-status transition. Also broadcast
// transiently to the global trips channel for the trip list page.
type ItineraryStatusPayload struct {
	BasePayload
	Status models.CreationStatus `json:"status"`
}

// WarningPayload reports a recoverable degradation (worker failure in a
// tolerant phase, dropped subscriber events, cancellation).
type WarningPayload struct {
	BasePayload
	Code         string `json:"code"`
	Message      string `json:"message"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
	WorkerKind   string `json:"worker_kind,omitempty"`
}

// ErrorPayload reports a failure with severity and retryability.
type ErrorPayload struct {
	BasePayload
	Code      string `json:"code"`
	Message   string `json:"message"`
	Severity  string `json:"severity"` // info, warn, error, critical
	Retryable bool   `json:"retryable"`
}
