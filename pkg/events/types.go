// Package events provides real-time event delivery via WebSocket and
// PostgreSQL NOTIFY/LISTEN for cross-pod distribution.
//
// Events flow on per-itinerary channels ("itinerary:{id}"). Durable event
// types are persisted to the events table inside the same transaction that
// issues pg_notify, giving reconnecting clients a replay buffer to catch up
// from. High-frequency progress events are NOTIFY-only and lost on
// disconnect — the next durable event carries enough state to resync.
package events

import "context"

// Durable event types (stored in DB + NOTIFY).
const (
	// Pipeline lifecycle.
	EventTypePhaseStart         = "phase_start"
	EventTypePhaseComplete      = "phase_complete"
	EventTypeDayCompleted       = "day_completed"
	EventTypeGenerationComplete = "generation_complete"

	// Change engine.
	EventTypePatchApplied = "patch_applied"

	// Itinerary lifecycle status transitions (draft, generating, ready, failed).
	EventTypeItineraryStatus = "itinerary.status"

	// Degradation and failure.
	EventTypeWarning = "warning"
	EventTypeError   = "error"
)

// Transient event types (NOTIFY only, no DB persistence).
const (
	// Worker progress — high-frequency, ephemeral.
	EventTypeProgress = "progress"

	// Post-apply enrichment completion for a single node.
	EventTypeNodeEnhanced = "node_enhanced"
)

// Error severities carried by ErrorPayload.
const (
	SeverityInfo     = "info"
	SeverityWarn     = "warn"
	SeverityError    = "error"
	SeverityCritical = "critical"
)

// GlobalTripsChannel carries itinerary status events for the trip list page.
const GlobalTripsChannel = "trips"

// ItineraryChannel returns the channel name for one itinerary's events.
// Format: "itinerary:{itinerary_id}"
func ItineraryChannel(itineraryID string) string {
	return "itinerary:" + itineraryID
}

// Publisher is the event emission interface used by the pipeline, the change
// engine, workers, and the chat orchestrator. The production implementation
// is EventPublisher (PostgreSQL NOTIFY); tests inject recording fakes.
type Publisher interface {
	PublishProgress(ctx context.Context, itineraryID string, p ProgressPayload) error
	PublishPhaseStart(ctx context.Context, itineraryID string, p PhaseStartPayload) error
	PublishPhaseComplete(ctx context.Context, itineraryID string, p PhaseCompletePayload) error
	PublishPatchApplied(ctx context.Context, itineraryID string, p PatchAppliedPayload) error
	PublishDayCompleted(ctx context.Context, itineraryID string, p DayCompletedPayload) error
	PublishNodeEnhanced(ctx context.Context, itineraryID string, p NodeEnhancedPayload) error
	PublishGenerationComplete(ctx context.Context, itineraryID string, p GenerationCompletePayload) error
	PublishItineraryStatus(ctx context.Context, itineraryID string, p ItineraryStatusPayload) error
	PublishWarning(ctx context.Context, itineraryID string, p WarningPayload) error
	PublishError(ctx context.Context, itineraryID string, p ErrorPayload) error
}

// ClientMessage is the JSON structure for client → server WebSocket messages.
type ClientMessage struct {
	Action      string `json:"action"`                  // "subscribe", "unsubscribe", "catchup", "ping"
	Channel     string `json:"channel,omitempty"`       // e.g. "itinerary:01J8..."
	ExecutionID string `json:"execution_id,omitempty"`  // optional event filter
	LastEventID *int   `json:"last_event_id,omitempty"` // for catchup
}
