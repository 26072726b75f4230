// Package services is the persistence layer over ent: itinerary lifecycle,
// revision history, chat transcripts, and the durable event buffer.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/wanderplan/wanderplan/ent"
	"github.com/wanderplan/wanderplan/ent/itinerary"
	"github.com/wanderplan/wanderplan/ent/usertrip"
	"github.com/wanderplan/wanderplan/pkg/models"
)

// ItineraryService manages itinerary lifecycle and ownership
type ItineraryService struct {
	client *ent.Client
}

// NewItineraryService creates a new ItineraryService
func NewItineraryService(client *ent.Client) *ItineraryService {
	return &ItineraryService{client: client}
}

// CreateItinerary mints a new itinerary with shell days computed from the
// date range, persists it together with the owner's trip-list link, and
// returns the shell. Synchronous: it completes before the API response so
// the client can open its event subscription before generation starts. The
// shell is persisted in status "generating" because the pipeline run follows
// immediately.
func (s *ItineraryService) CreateItinerary(httpCtx context.Context, ownerID string, req models.CreateItineraryRequest) (*models.Itinerary, error) {
	if err := validateCreateRequest(ownerID, req); err != nil {
		return nil, err
	}

	trip := models.TripMeta{
		Destination: req.Destination,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Party:       req.Party,
		Budget:      req.Budget,
		Interests:   req.Interests,
		Language:    req.Language,
	}
	if trip.Budget == "" {
		trip.Budget = models.BudgetMid
	}

	now := time.Now().UTC()
	it := &models.Itinerary{
		ID:        ulid.Make().String(),
		OwnerID:   ownerID,
		Version:   1,
		Status:    models.StatusGenerating,
		CreatedAt: now,
		UpdatedAt: now,
		Days:      buildShellDays(trip),
		Settings: models.Settings{
			Currency: req.Currency,
			Pacing:   req.Pacing,
		},
		Trip: trip,
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Itinerary.Create().
		SetID(it.ID).
		SetOwnerID(it.OwnerID).
		SetVersion(it.Version).
		SetStatus(itinerary.Status(it.Status)).
		SetDays(it.Days).
		SetSettings(it.Settings).
		SetTrip(it.Trip).
		SetCreatedAt(it.CreatedAt).
		SetUpdatedAt(it.UpdatedAt).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create itinerary: %w", err)
	}

	// Trip-list link for the owner's trip page.
	_, err = tx.UserTrip.Create().
		SetUserID(ownerID).
		SetItineraryID(it.ID).
		SetCreatedAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to link user trip: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit itinerary creation: %w", err)
	}

	return it, nil
}

// GetItinerary retrieves an itinerary by ID
func (s *ItineraryService) GetItinerary(ctx context.Context, id string) (*models.Itinerary, error) {
	row, err := s.client.Itinerary.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get itinerary: %w", err)
	}
	return fromEntItinerary(row), nil
}

// GetForOwner retrieves an itinerary and verifies ownership
func (s *ItineraryService) GetForOwner(ctx context.Context, id, ownerID string) (*models.Itinerary, error) {
	it, err := s.GetItinerary(ctx, id)
	if err != nil {
		return nil, err
	}
	if it.OwnerID != ownerID {
		return nil, ErrNotOwner
	}
	return it, nil
}

// PutItinerary persists the itinerary with an optimistic version check: the
// stored row must still be at it.Version-1 or the put fails with
// ErrVersionConflict. The version predicate makes concurrent writers
// serialize at the database instead of last-write-wins.
func (s *ItineraryService) PutItinerary(httpCtx context.Context, it *models.Itinerary) error {
	// Use background context with timeout for critical write
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	n, err := s.client.Itinerary.Update().
		Where(
			itinerary.IDEQ(it.ID),
			itinerary.VersionEQ(it.Version-1),
		).
		SetVersion(it.Version).
		SetStatus(itinerary.Status(it.Status)).
		SetDays(it.Days).
		SetSettings(it.Settings).
		SetUpdatedAt(it.UpdatedAt).
		Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to put itinerary: %w", err)
	}
	if n == 0 {
		// Zero matched rows is either a missing itinerary or a stale version.
		exists, err := s.client.Itinerary.Query().
			Where(itinerary.IDEQ(it.ID)).
			Exist(writeCtx)
		if err != nil {
			return fmt.Errorf("failed to check itinerary existence: %w", err)
		}
		if !exists {
			return ErrNotFound
		}
		return ErrVersionConflict
	}
	return nil
}

// DeleteItinerary removes an itinerary after an ownership check. Revisions,
// chat messages, events, and trip links go with it via cascade.
func (s *ItineraryService) DeleteItinerary(ctx context.Context, id, ownerID string) error {
	if _, err := s.GetForOwner(ctx, id, ownerID); err != nil {
		return err
	}

	// Use background context with timeout for critical write
	deleteCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.client.Itinerary.DeleteOneID(id).Exec(deleteCtx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete itinerary: %w", err)
	}
	return nil
}

// ListTrips returns the user's itineraries, newest first
func (s *ItineraryService) ListTrips(ctx context.Context, userID string, limit, offset int) ([]*models.Itinerary, int, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := s.client.Itinerary.Query().
		Where(itinerary.HasUserTripsWith(usertrip.UserIDEQ(userID)))

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count trips: %w", err)
	}

	rows, err := query.
		Order(ent.Desc(itinerary.FieldCreatedAt)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list trips: %w", err)
	}

	trips := make([]*models.Itinerary, len(rows))
	for i, row := range rows {
		trips[i] = fromEntItinerary(row)
	}
	return trips, totalCount, nil
}

// Regenerate resets a failed or stale itinerary back to a shell so the
// pipeline can run again. The reset is a versioned write: history keeps the
// old version numbers and revision rows intact.
func (s *ItineraryService) Regenerate(ctx context.Context, id, ownerID string) (*models.Itinerary, error) {
	it, err := s.GetForOwner(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	it.Days = buildShellDays(it.Trip)
	it.Status = models.StatusGenerating
	it.Version++
	it.UpdatedAt = time.Now().UTC()

	if err := s.PutItinerary(ctx, it); err != nil {
		return nil, err
	}
	return it, nil
}

// FailOrphanedGenerating marks itineraries stuck in "generating" as failed.
// Called at startup: an in-flight execution cannot survive a process restart,
// so anything still generating was orphaned by the previous run.
func (s *ItineraryService) FailOrphanedGenerating(ctx context.Context) (int, error) {
	// Use background context with timeout for critical write
	writeCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.client.Itinerary.Update().
		Where(itinerary.StatusEQ(itinerary.StatusGenerating)).
		SetStatus(itinerary.StatusFailed).
		SetUpdatedAt(time.Now().UTC()).
		Save(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to mark orphaned itineraries: %w", err)
	}
	return count, nil
}

// buildShellDays expands the inclusive date range into empty day shells.
// Node lists start empty; the skeleton worker fills them.
func buildShellDays(trip models.TripMeta) []models.Day {
	count := trip.DayCount()
	if count == 0 {
		return nil
	}
	start, _ := time.Parse("2006-01-02", trip.StartDate)

	days := make([]models.Day, count)
	for i := range days {
		days[i] = models.Day{
			Number: i + 1,
			Date:   start.AddDate(0, 0, i).Format("2006-01-02"),
			Nodes:  []models.Node{},
		}
	}
	return days
}

func validateCreateRequest(ownerID string, req models.CreateItineraryRequest) error {
	if ownerID == "" {
		return NewValidationError("owner_id", "required")
	}
	if req.Destination == "" {
		return NewValidationError("destination", "required")
	}
	if _, err := time.Parse("2006-01-02", req.StartDate); err != nil {
		return NewValidationError("start_date", "must be an ISO date (YYYY-MM-DD)")
	}
	if _, err := time.Parse("2006-01-02", req.EndDate); err != nil {
		return NewValidationError("end_date", "must be an ISO date (YYYY-MM-DD)")
	}
	trip := models.TripMeta{StartDate: req.StartDate, EndDate: req.EndDate}
	if trip.DayCount() == 0 {
		return NewValidationError("end_date", "must not precede start_date")
	}
	if req.Party.Adults < 1 {
		return NewValidationError("party.adults", "at least one adult required")
	}
	if req.Party.Children < 0 || req.Party.Rooms < 0 {
		return NewValidationError("party", "negative counts not allowed")
	}
	switch req.Budget {
	case "", models.BudgetEconomy, models.BudgetMid, models.BudgetLuxury:
	default:
		return NewValidationError("budget", fmt.Sprintf("unknown budget tier %q", req.Budget))
	}
	switch req.Pacing {
	case "", "relaxed", "moderate", "packed":
	default:
		return NewValidationError("pacing", fmt.Sprintf("unknown pacing %q", req.Pacing))
	}
	return nil
}

// fromEntItinerary converts a row into the domain aggregate
func fromEntItinerary(row *ent.Itinerary) *models.Itinerary {
	return &models.Itinerary{
		ID:        row.ID,
		OwnerID:   row.OwnerID,
		Version:   row.Version,
		Status:    models.CreationStatus(row.Status),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
		Days:      row.Days,
		Settings:  row.Settings,
		Trip:      row.Trip,
	}
}
