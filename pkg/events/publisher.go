package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"
)

// EventPublisher publishes events for WebSocket delivery. Durable events are
// stored in the events table then broadcast via NOTIFY in the same
// transaction (pg_notify is transactional — held until COMMIT). Transient
// events are broadcast via NOTIFY only.
type EventPublisher struct {
	db *sql.DB
}

// NewEventPublisher creates an EventPublisher over the service's *sql.DB.
func NewEventPublisher(db *sql.DB) *EventPublisher {
	return &EventPublisher{db: db}
}

var _ Publisher = (*EventPublisher)(nil)

// PublishProgress broadcasts a transient progress event (no DB persistence).
func (p *EventPublisher) PublishProgress(ctx context.Context, itineraryID string, payload ProgressPayload) error {
	return p.publishTransient(ctx, itineraryID, payload)
}

// PublishPhaseStart persists and broadcasts a phase_start event.
func (p *EventPublisher) PublishPhaseStart(ctx context.Context, itineraryID string, payload PhaseStartPayload) error {
	return p.publishDurable(ctx, itineraryID, payload)
}

// PublishPhaseComplete persists and broadcasts a phase_complete event.
func (p *EventPublisher) PublishPhaseComplete(ctx context.Context, itineraryID string, payload PhaseCompletePayload) error {
	return p.publishDurable(ctx, itineraryID, payload)
}

// PublishPatchApplied persists and broadcasts a patch_applied event.
func (p *EventPublisher) PublishPatchApplied(ctx context.Context, itineraryID string, payload PatchAppliedPayload) error {
	return p.publishDurable(ctx, itineraryID, payload)
}

// PublishDayCompleted persists and broadcasts a day_completed event.
func (p *EventPublisher) PublishDayCompleted(ctx context.Context, itineraryID string, payload DayCompletedPayload) error {
	return p.publishDurable(ctx, itineraryID, payload)
}

// PublishNodeEnhanced broadcasts a transient node_enhanced event.
func (p *EventPublisher) PublishNodeEnhanced(ctx context.Context, itineraryID string, payload NodeEnhancedPayload) error {
	return p.publishTransient(ctx, itineraryID, payload)
}

// PublishGenerationComplete persists and broadcasts the terminal
// generation_complete event.
func (p *EventPublisher) PublishGenerationComplete(ctx context.Context, itineraryID string, payload GenerationCompletePayload) error {
	return p.publishDurable(ctx, itineraryID, payload)
}

// PublishItineraryStatus persists a status event to the itinerary channel and
// broadcasts a transient copy to the global trips channel. Both publishes are
// best-effort; the first error encountered is returned.
func (p *EventPublisher) PublishItineraryStatus(ctx context.Context, itineraryID string, payload ItineraryStatusPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling ItineraryStatusPayload: %w", err)
	}

	var firstErr error
	if err := p.persistAndNotify(ctx, itineraryID, ItineraryChannel(itineraryID), payloadJSON); err != nil {
		slog.Warn("Failed to publish itinerary status to itinerary channel",
			"itinerary_id", itineraryID, "status", payload.Status, "error", err)
		firstErr = err
	}
	if err := p.notifyOnly(ctx, GlobalTripsChannel, payloadJSON); err != nil {
		slog.Warn("Failed to publish itinerary status to global channel",
			"itinerary_id", itineraryID, "status", payload.Status, "error", err)
		if firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// PublishWarning persists and broadcasts a warning event.
func (p *EventPublisher) PublishWarning(ctx context.Context, itineraryID string, payload WarningPayload) error {
	return p.publishDurable(ctx, itineraryID, payload)
}

// PublishError persists and broadcasts an error event.
func (p *EventPublisher) PublishError(ctx context.Context, itineraryID string, payload ErrorPayload) error {
	return p.publishDurable(ctx, itineraryID, payload)
}

// --- Internal core methods ---

func (p *EventPublisher) publishDurable(ctx context.Context, itineraryID string, payload any) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling event payload: %w", err)
	}
	return p.persistAndNotify(ctx, itineraryID, ItineraryChannel(itineraryID), payloadJSON)
}

func (p *EventPublisher) publishTransient(ctx context.Context, itineraryID string, payload any) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling event payload: %w", err)
	}
	return p.notifyOnly(ctx, ItineraryChannel(itineraryID), payloadJSON)
}

// persistAndNotify persists a pre-marshaled event to the events table and
// broadcasts via NOTIFY in a single transaction.
func (p *EventPublisher) persistAndNotify(ctx context.Context, itineraryID, channel string, payloadJSON []byte) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning event transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var eventID int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO events (itinerary_id, channel, payload, created_at) VALUES ($1, $2, $3, $4) RETURNING id`,
		itineraryID, channel, payloadJSON, time.Now(),
	).Scan(&eventID)
	if err != nil {
		return fmt.Errorf("persisting event: %w", err)
	}

	// NOTIFY payload carries db_event_id so clients can track catchup position.
	notifyPayload, err := injectDBEventIDAndTruncate(payloadJSON, eventID)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload); err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing event transaction: %w", err)
	}
	return nil
}

// notifyOnly broadcasts a pre-marshaled event via NOTIFY without persistence.
func (p *EventPublisher) notifyOnly(ctx context.Context, channel string, payloadJSON []byte) error {
	notifyPayload, err := truncateIfNeeded(string(payloadJSON))
	if err != nil {
		return err
	}
	if _, err := p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload); err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}
	return nil
}

// --- Internal helpers ---

// injectDBEventIDAndTruncate adds db_event_id to the JSON payload for NOTIFY
// delivery and applies truncation if the result exceeds PostgreSQL's limit.
func injectDBEventIDAndTruncate(payloadJSON []byte, dbEventID int64) (string, error) {
	var m map[string]any
	if err := json.Unmarshal(payloadJSON, &m); err != nil {
		return "", fmt.Errorf("unmarshaling payload for db_event_id injection: %w", err)
	}
	m["db_event_id"] = dbEventID

	enriched, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("marshaling enriched NOTIFY payload: %w", err)
	}
	return truncateIfNeeded(string(enriched))
}

// truncateIfNeeded returns the payload as-is when it fits within PostgreSQL's
// 8000-byte NOTIFY limit, otherwise a minimal envelope with routing fields —
// the client fetches the full event from the replay buffer by db_event_id.
// Oversized payloads are rare (generation_complete snapshots, large diffs).
func truncateIfNeeded(payloadStr string) (string, error) {
	if len(payloadStr) <= 7900 {
		return payloadStr, nil
	}
	return buildTruncatedPayload([]byte(payloadStr))
}

func buildTruncatedPayload(payloadBytes []byte) (string, error) {
	var routing struct {
		Type        string `json:"type"`
		ItineraryID string `json:"itinerary_id"`
		ExecutionID string `json:"execution_id"`
		DBEventID   *int64 `json:"db_event_id,omitempty"`
	}
	if err := json.Unmarshal(payloadBytes, &routing); err != nil {
		return "", fmt.Errorf("extracting routing fields for truncation: %w", err)
	}

	truncated := map[string]any{
		"type":         routing.Type,
		"itinerary_id": routing.ItineraryID,
		"truncated":    true,
	}
	if routing.ExecutionID != "" {
		truncated["execution_id"] = routing.ExecutionID
	}
	if routing.DBEventID != nil {
		truncated["db_event_id"] = *routing.DBEventID
	}

	truncBytes, err := json.Marshal(truncated)
	if err != nil {
		return "", fmt.Errorf("marshaling truncated payload: %w", err)
	}
	return string(truncBytes), nil
}
