// Package cleanup enforces retention on the durable event replay buffer.
package cleanup

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/wanderplan/wanderplan/pkg/config"
)

// EventReaper is the event-store surface the sweeper needs. Satisfied by
// *services.EventService.
type EventReaper interface {
	CleanupExpiredEvents(ctx context.Context, ttl time.Duration) (int, error)
	CleanupItineraryEvents(ctx context.Context, itineraryID string) (int, error)
}

// Service runs two reclaim paths over the Event table:
//   - a periodic TTL sweep removing rows older than event_ttl
//   - per-itinerary cleanup a grace period after generation completes, so
//     reconnecting clients can still catch up on the final events
//
// Both are idempotent delete-by-predicate operations.
type Service struct {
	cfg    *config.RetentionConfig
	events EventReaper

	cancel context.CancelFunc
	done   chan struct{}

	mu     sync.Mutex
	timers map[string]*time.Timer // itinerary id → pending grace cleanup
}

// NewService creates a cleanup service.
func NewService(cfg *config.RetentionConfig, events EventReaper) *Service {
	return &Service{
		cfg:    cfg,
		events: events,
		timers: make(map[string]*time.Timer),
	}
}

// Start launches the background TTL sweep loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Event retention started",
		"event_ttl", s.cfg.EventTTL.Std(),
		"completed_grace", s.cfg.CompletedGrace.Std(),
		"interval", s.cfg.CleanupInterval.Std())
}

// Stop cancels the sweep loop and any pending grace timers, then waits for
// the loop to exit.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}

	s.mu.Lock()
	for id, timer := range s.timers {
		timer.Stop()
		delete(s.timers, id)
	}
	s.mu.Unlock()

	s.cancel()
	<-s.done
	slog.Info("Event retention stopped")
}

// ScheduleItineraryCleanup arms a one-shot cleanup of the itinerary's
// buffered events after the completed grace period. Re-arming (a regenerate
// finishing again) resets the timer.
func (s *Service) ScheduleItineraryCleanup(itineraryID string) {
	grace := s.cfg.CompletedGrace.Std()
	if grace <= 0 {
		s.sweepItinerary(itineraryID)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if timer, ok := s.timers[itineraryID]; ok {
		timer.Stop()
	}
	s.timers[itineraryID] = time.AfterFunc(grace, func() {
		s.mu.Lock()
		delete(s.timers, itineraryID)
		s.mu.Unlock()
		s.sweepItinerary(itineraryID)
	})
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.sweepExpired(ctx)

	ticker := time.NewTicker(s.cfg.CleanupInterval.Std())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweepExpired(ctx)
		}
	}
}

func (s *Service) sweepExpired(ctx context.Context) {
	count, err := s.events.CleanupExpiredEvents(ctx, s.cfg.EventTTL.Std())
	if err != nil {
		slog.Error("Retention: event TTL sweep failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: removed expired events", "count", count)
	}
}

func (s *Service) sweepItinerary(itineraryID string) {
	count, err := s.events.CleanupItineraryEvents(context.Background(), itineraryID)
	if err != nil {
		slog.Error("Retention: itinerary event cleanup failed",
			"itinerary_id", itineraryID, "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: removed completed-generation events",
			"itinerary_id", itineraryID, "count", count)
	}
}
