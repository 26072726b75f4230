// Package database hands integration tests a fully prepared database.Client,
// layered on the shared schema fixtures in test/util.
package database

import (
	"context"
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/require"

	"github.com/wanderplan/wanderplan/pkg/database"
	"github.com/wanderplan/wanderplan/test/util"
)

// NewTestClient returns a client bound to an isolated schema with migrations
// and the JSONB GIN indexes applied — the same surface production gets from
// database.NewClient, minus the config plumbing. CI_DATABASE_URL points the
// fixture at an external server; otherwise a shared testcontainer serves all
// tests in the binary. Schema teardown registers on t automatically.
func NewTestClient(t *testing.T) *database.Client {
	t.Helper()

	entClient, db := util.SetupTestDatabase(t)

	drv := entsql.OpenDB(dialect.Postgres, db)
	require.NoError(t, database.CreateGINIndexes(context.Background(), drv),
		"creating GIN indexes for itinerary JSONB queries")

	return database.NewClientFromEnt(entClient, db)
}
