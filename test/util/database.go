// Package util holds the shared database fixtures used by integration tests.
package util

import (
	"context"
	"crypto/rand"
	stdsql "database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/wanderplan/wanderplan/ent"
)

// One postgres instance per test binary; each test gets its own schema inside
// it, so tests parallelize without stepping on each other's rows.
var (
	sharedConnStr string
	containerOnce sync.Once
	containerErr  error
)

// SetupTestDatabase gives the test an isolated schema on the shared postgres
// instance, with ent migrations applied, and returns the ent client plus the
// underlying pool. Schema drop and connection close run via t.Cleanup.
//
// In CI the instance is the service container behind CI_DATABASE_URL; locally
// it is a testcontainer started once per package.
func SetupTestDatabase(t *testing.T) (*ent.Client, *stdsql.DB) {
	ctx := context.Background()
	connStr := GetBaseConnectionString(t)
	schemaName := GenerateSchemaName(t)

	// A short-lived connection creates the schema; the pool the test uses
	// connects afterwards with search_path pinned, so every pooled
	// connection resolves unqualified names into the test schema.
	admin, err := stdsql.Open("pgx", connStr)
	require.NoError(t, err)
	_, err = admin.ExecContext(ctx, fmt.Sprintf("CREATE SCHEMA %s", schemaName))
	require.NoError(t, err)
	_ = admin.Close()
	t.Logf("test schema %s created", schemaName)

	db, err := stdsql.Open("pgx", AddSearchPathToConnString(connStr, schemaName))
	require.NoError(t, err)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	entClient := ent.NewClient(ent.Driver(entsql.OpenDB(dialect.Postgres, db)))
	require.NoError(t, entClient.Schema.Create(ctx))

	t.Cleanup(func() {
		if _, err := db.ExecContext(context.Background(),
			fmt.Sprintf("DROP SCHEMA IF EXISTS %s CASCADE", schemaName)); err != nil {
			t.Logf("dropping schema %s: %v", schemaName, err)
		}
		_ = entClient.Close()
		_ = db.Close()
	})

	return entClient, db
}

// GetBaseConnectionString returns the connection string of the shared
// instance without any search_path. Tests that need their own dedicated
// connection — the NOTIFY listener's pgx.Conn, for one — start from this.
func GetBaseConnectionString(t *testing.T) string {
	if url := os.Getenv("CI_DATABASE_URL"); url != "" {
		return url
	}

	containerOnce.Do(func() {
		ctx := context.Background()
		t.Log("starting shared postgres testcontainer")

		ctr, err := postgres.Run(ctx,
			"postgres:17-alpine",
			postgres.WithDatabase("wanderplan_test"),
			postgres.WithUsername("wanderplan"),
			postgres.WithPassword("wanderplan"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
		if err != nil {
			containerErr = fmt.Errorf("starting postgres container: %w", err)
			return
		}

		sharedConnStr, err = ctr.ConnectionString(ctx, "sslmode=disable")
		if err != nil {
			containerErr = fmt.Errorf("reading container connection string: %w", err)
		}
	})

	require.NoError(t, containerErr, "shared postgres container unavailable")
	return sharedConnStr
}

// GenerateSchemaName derives a postgres-safe schema name from the test name,
// with a random suffix so retries and parallel subtests never collide.
func GenerateSchemaName(t *testing.T) string {
	name := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}
		return '_'
	}, strings.ToLower(t.Name()))

	// Stay under the 63-byte identifier limit with suffix and prefix.
	if len(name) > 40 {
		name = name[:40]
	}

	suffix := make([]byte, 4)
	if _, err := rand.Read(suffix); err != nil {
		t.Fatalf("random schema suffix: %v", err)
	}
	return fmt.Sprintf("test_%s_%s", name, hex.EncodeToString(suffix))
}

// AddSearchPathToConnString pins a schema onto a connection string so every
// pooled connection opens with it as the search path.
func AddSearchPathToConnString(connStr, schemaName string) string {
	sep := "?"
	if strings.Contains(connStr, "?") {
		sep = "&"
	}
	return connStr + sep + "search_path=" + schemaName
}
