package services

import (
	"context"
	"fmt"
	"time"

	"github.com/wanderplan/wanderplan/ent"
	"github.com/wanderplan/wanderplan/ent/revision"
	"github.com/wanderplan/wanderplan/pkg/models"
)

// RevisionService manages the append-only itinerary history
type RevisionService struct {
	client *ent.Client
}

// NewRevisionService creates a new RevisionService
func NewRevisionService(client *ent.Client) *RevisionService {
	return &RevisionService{client: client}
}

// AppendRevision persists one history entry. The (itinerary_id, number)
// unique index guards against double-writes from racing appliers.
func (s *RevisionService) AppendRevision(httpCtx context.Context, itineraryID string, rev *models.Revision) error {
	if rev == nil {
		return NewValidationError("revision", "required")
	}

	// Use background context with timeout for critical write
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	createdAt := rev.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	err := s.client.Revision.Create().
		SetItineraryID(itineraryID).
		SetNumber(rev.Number).
		SetSnapshot(rev.Snapshot).
		SetChangeSet(rev.ChangeSet).
		SetReason(rev.Reason).
		SetCreatedAt(createdAt).
		Exec(writeCtx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return ErrAlreadyExists
		}
		return fmt.Errorf("failed to append revision %d: %w", rev.Number, err)
	}
	return nil
}

// GetRevision retrieves one history entry by number
func (s *RevisionService) GetRevision(ctx context.Context, itineraryID string, number int) (*models.Revision, error) {
	row, err := s.client.Revision.Query().
		Where(
			revision.ItineraryIDEQ(itineraryID),
			revision.NumberEQ(number),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get revision %d: %w", number, err)
	}
	return fromEntRevision(row), nil
}

// ListRevisions returns a page of history, newest revision first
func (s *RevisionService) ListRevisions(ctx context.Context, itineraryID string, page, pageSize int) (*models.RevisionPage, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}

	query := s.client.Revision.Query().
		Where(revision.ItineraryIDEQ(itineraryID))

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count revisions: %w", err)
	}

	rows, err := query.
		Order(ent.Desc(revision.FieldNumber)).
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list revisions: %w", err)
	}

	revisions := make([]models.Revision, len(rows))
	for i, row := range rows {
		revisions[i] = *fromEntRevision(row)
	}

	return &models.RevisionPage{
		Revisions:  revisions,
		TotalCount: totalCount,
		Page:       page,
		PageSize:   pageSize,
	}, nil
}

func fromEntRevision(row *ent.Revision) *models.Revision {
	return &models.Revision{
		Number:    row.Number,
		CreatedAt: row.CreatedAt,
		Reason:    row.Reason,
		ChangeSet: row.ChangeSet,
		Snapshot:  row.Snapshot,
	}
}
