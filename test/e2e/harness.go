// Package e2e boots a complete wanderplan instance — PostgreSQL, event
// streaming, all nine workers, both orchestrators, and the HTTP API — and
// drives it through the public surface the way a browser client would.
package e2e

import (
	"context"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/wanderplan/wanderplan/ent"
	"github.com/wanderplan/wanderplan/pkg/api"
	"github.com/wanderplan/wanderplan/pkg/chat"
	"github.com/wanderplan/wanderplan/pkg/database"
	"github.com/wanderplan/wanderplan/pkg/engine"
	"github.com/wanderplan/wanderplan/pkg/events"
	"github.com/wanderplan/wanderplan/pkg/identity"
	"github.com/wanderplan/wanderplan/pkg/llm"
	"github.com/wanderplan/wanderplan/pkg/pipeline"
	"github.com/wanderplan/wanderplan/pkg/services"
	"github.com/wanderplan/wanderplan/pkg/worker"
	testdb "github.com/wanderplan/wanderplan/test/database"
	"github.com/wanderplan/wanderplan/test/util"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// TestApp is a full wanderplan instance wired against a per-test database
// schema. The LLM layer is the deterministic noop provider; everything else
// is the real production wiring.
type TestApp struct {
	DBClient  *database.Client
	EntClient *ent.Client

	Store        *services.Store
	EventService *services.EventService
	ChatService  *services.ChatService

	// LLM holds the canned responses the workers will receive, keyed by
	// schema name. Register outputs before triggering generation or chat.
	LLM *llm.NoopProvider

	Publisher      *events.EventPublisher
	ConnManager    *events.ConnectionManager
	NotifyListener *events.NotifyListener

	Engine      *engine.Engine
	Pipeline    *pipeline.Orchestrator
	Chat        *chat.Orchestrator
	EnrichQueue *pipeline.EnrichQueue

	BaseURL string // e.g. "http://127.0.0.1:54321"
	WSURL   string // e.g. "ws://127.0.0.1:54321/api/v1/ws"

	t *testing.T
}

// testAppConfig holds options accumulated before creating the TestApp.
type testAppConfig struct {
	workerTimeout time.Duration
	workerRetries uint64
	maxConcurrent int

	dbClient    *database.Client
	baseConnStr string
}

// TestAppOption configures the test app.
type TestAppOption func(*testAppConfig)

// WithWorkerTimeout caps each worker invocation.
func WithWorkerTimeout(d time.Duration) TestAppOption {
	return func(c *testAppConfig) { c.workerTimeout = d }
}

// WithWorkerRetries sets how many times a failed worker call is retried.
func WithWorkerRetries(n uint64) TestAppOption {
	return func(c *testAppConfig) { c.workerRetries = n }
}

// WithMaxConcurrent caps simultaneously running generations.
func WithMaxConcurrent(n int) TestAppOption {
	return func(c *testAppConfig) { c.maxConcurrent = n }
}

// WithDatabase injects a pre-created database client and the base connection
// string its NOTIFY listener should use, skipping the default per-test
// schema. Used by multi-replica tests where several TestApp instances share
// one schema.
func WithDatabase(client *database.Client, baseConnStr string) TestAppOption {
	return func(c *testAppConfig) {
		c.dbClient = client
		c.baseConnStr = baseConnStr
	}
}

// NewTestApp creates and starts a full wanderplan test instance.
// Shutdown is registered via t.Cleanup automatically.
func NewTestApp(t *testing.T, opts ...TestAppOption) *TestApp {
	t.Helper()

	tc := &testAppConfig{
		workerTimeout: 15 * time.Second,
		workerRetries: 1,
		maxConcurrent: 4,
	}
	for _, opt := range opts {
		opt(tc)
	}

	ctx := context.Background()

	// 1. Database — per-test schema, migrations and GIN indexes applied,
	// unless the test injected a shared one.
	dbClient := tc.dbClient
	baseConnStr := tc.baseConnStr
	if dbClient == nil {
		dbClient = testdb.NewTestClient(t)
		baseConnStr = util.GetBaseConnectionString(t)
	}
	entClient := dbClient.Client

	// 2. Domain services.
	store := services.NewStore(entClient)
	eventService := services.NewEventService(entClient)
	chatService := services.NewChatService(entClient)

	// 3. Event streaming — real publisher, real LISTEN connection. The
	// listener needs its own pgx connection outside the per-test schema;
	// NOTIFY channels are not schema-scoped so routing still works.
	publisher := events.NewEventPublisher(dbClient.DB())
	connManager := events.NewConnectionManager(events.NewEventServiceAdapter(eventService), 5*time.Second)

	notifyListener := events.NewNotifyListener(baseConnStr, connManager)
	require.NoError(t, notifyListener.Start(ctx))
	connManager.SetListener(notifyListener)

	// 4. LLM — noop provider, canned responses per schema name.
	noop := llm.NewNoopProvider()
	client, err := llm.NewStructuredClient(noop)
	require.NoError(t, err)

	// 5. Workers — the full production registry.
	ident := identity.NewService(store)
	registry := worker.NewRegistry()
	registry.MustRegister(
		worker.NewSkeletonWorker(client, publisher),
		worker.NewActivityWorker(client, ident, publisher),
		worker.NewMealWorker(client, ident, publisher),
		worker.NewTransportWorker(client, ident, publisher),
		worker.NewEnrichmentWorker(worker.OfflinePlacesClient{}, publisher),
		worker.NewCostWorker(publisher),
		worker.NewEditorWorker(client, ident),
		worker.NewExplainerWorker(client, ident),
		worker.NewBookingWorker(worker.OfflineBookingClient{}),
	)

	// 6. Change engine with background enrichment.
	enrichQueue := pipeline.NewEnrichQueue(registry, store, 16)
	enrichQueue.Start(ctx)

	changeEngine := engine.New(store, publisher, engine.WithEnricher(enrichQueue))

	// 7. Orchestrators.
	orchestrator := pipeline.New(registry, store, publisher, ident, pipeline.Config{
		WorkerTimeout: tc.workerTimeout,
		WorkerRetries: tc.workerRetries,
		RetryInterval: time.Millisecond,
		MaxConcurrent: tc.maxConcurrent,
	})

	chatOrch := chat.New(client, registry, changeEngine, ident, publisher, chatService, chat.Config{})

	// 8. HTTP server.
	server := api.NewServer(api.Options{
		Itineraries: store.ItineraryService,
		Revisions:   store.RevisionService,
		Engine:      changeEngine,
		Pipeline:    orchestrator,
		Chat:        chatOrch,
		DB:          dbClient,
		ConnMgr:     connManager,
	})
	ts := httptest.NewServer(server.Router())

	app := &TestApp{
		DBClient:       dbClient,
		EntClient:      entClient,
		Store:          store,
		EventService:   eventService,
		ChatService:    chatService,
		LLM:            noop,
		Publisher:      publisher,
		ConnManager:    connManager,
		NotifyListener: notifyListener,
		Engine:         changeEngine,
		Pipeline:       orchestrator,
		Chat:           chatOrch,
		EnrichQueue:    enrichQueue,
		BaseURL:        ts.URL,
		WSURL:          fmt.Sprintf("ws%s/api/v1/ws", strings.TrimPrefix(ts.URL, "http")),
		t:              t,
	}

	// Cleanup in reverse-creation order; DB teardown is handled by
	// testdb.NewTestClient.
	t.Cleanup(func() {
		ts.Close()
		drainCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = orchestrator.Shutdown(drainCtx)
		enrichQueue.Stop()
		notifyListener.Stop(context.Background())
	})

	return app
}
