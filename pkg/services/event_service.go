package services

import (
	"context"
	"fmt"
	"time"

	"github.com/wanderplan/wanderplan/ent"
	"github.com/wanderplan/wanderplan/ent/event"
)

// defaultCatchupLimit caps a single catchup read; clients page with the
// last id they saw.
const defaultCatchupLimit = 500

// EventService reads and reaps the durable event replay buffer. Writes go
// through the event publisher, which needs the NOTIFY to share the insert's
// transaction and therefore uses raw SQL.
type EventService struct {
	client *ent.Client
}

// NewEventService creates a new EventService
func NewEventService(client *ent.Client) *EventService {
	return &EventService{client: client}
}

// GetEventsSince retrieves events on a channel after sinceID, oldest first.
// This is the WebSocket catchup query: a reconnecting client replays what it
// missed before switching to live delivery.
func (s *EventService) GetEventsSince(ctx context.Context, channel string, sinceID, limit int) ([]*ent.Event, error) {
	if limit <= 0 || limit > defaultCatchupLimit {
		limit = defaultCatchupLimit
	}

	events, err := s.client.Event.Query().
		Where(
			event.ChannelEQ(channel),
			event.IDGT(sinceID),
		).
		Order(ent.Asc(event.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}

	return events, nil
}

// CleanupItineraryEvents removes all buffered events for an itinerary
func (s *EventService) CleanupItineraryEvents(ctx context.Context, itineraryID string) (int, error) {
	// Use background context with timeout for critical write
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := s.client.Event.Delete().
		Where(event.ItineraryIDEQ(itineraryID)).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup itinerary events: %w", err)
	}

	return count, nil
}

// CleanupExpiredEvents removes buffered events older than the TTL
func (s *EventService) CleanupExpiredEvents(ctx context.Context, ttl time.Duration) (int, error) {
	cutoff := time.Now().Add(-ttl)

	// Use background context with timeout for critical write
	writeCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.client.Event.Delete().
		Where(event.CreatedAtLT(cutoff)).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup expired events: %w", err)
	}

	return count, nil
}
