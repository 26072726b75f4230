package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates PostgreSQL indexes that plain migrations keep out
// of the versioned set: destination search over the trip document and payload
// containment queries over the event buffer.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// Full-text search over trip destinations for the trip list page.
	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_itineraries_destination_gin
		ON itineraries USING gin(to_tsvector('simple', COALESCE(trip->>'destination', '')))`)
	if err != nil {
		return fmt.Errorf("failed to create destination GIN index: %w", err)
	}

	// Payload containment (@>) for event-type filtered catchup queries.
	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_events_payload_gin
		ON events USING gin(payload jsonb_path_ops)`)
	if err != nil {
		return fmt.Errorf("failed to create event payload GIN index: %w", err)
	}

	return nil
}
