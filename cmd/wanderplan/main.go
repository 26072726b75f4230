// Wanderplan server — HTTP API, generation pipeline, chat orchestrator, and
// the event stream over one PostgreSQL instance.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	anthropicopt "github.com/anthropics/anthropic-sdk-go/option"
	"github.com/joho/godotenv"
	openaiopt "github.com/openai/openai-go/option"

	"github.com/wanderplan/wanderplan/pkg/api"
	"github.com/wanderplan/wanderplan/pkg/chat"
	"github.com/wanderplan/wanderplan/pkg/cleanup"
	"github.com/wanderplan/wanderplan/pkg/config"
	"github.com/wanderplan/wanderplan/pkg/database"
	"github.com/wanderplan/wanderplan/pkg/engine"
	"github.com/wanderplan/wanderplan/pkg/events"
	"github.com/wanderplan/wanderplan/pkg/identity"
	"github.com/wanderplan/wanderplan/pkg/llm"
	"github.com/wanderplan/wanderplan/pkg/pipeline"
	"github.com/wanderplan/wanderplan/pkg/services"
	"github.com/wanderplan/wanderplan/pkg/version"
	"github.com/wanderplan/wanderplan/pkg/worker"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	slog.Info("Starting wanderplan",
		"version", version.Full(),
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Database (runs migrations and GIN indexes on connect)
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Domain services
	store := services.NewStore(dbClient.Client)
	eventService := services.NewEventService(dbClient.Client)
	chatService := services.NewChatService(dbClient.Client)

	// One-time startup sweep: itineraries left "generating" by a previous
	// process can never finish, flip them to failed.
	if n, err := store.FailOrphanedGenerating(ctx); err != nil {
		slog.Error("Failed to fail orphaned generations", "error", err)
	} else if n > 0 {
		slog.Info("Marked orphaned generations as failed", "count", n)
	}

	// 4. Event streaming: publisher, LISTEN connection, ws manager
	publisher := events.NewEventPublisher(dbClient.DB())
	connManager := events.NewConnectionManager(events.NewEventServiceAdapter(eventService), 10*time.Second)

	notifyListener := events.NewNotifyListener(dbConfig.DSN(), connManager)
	if err := notifyListener.Start(ctx); err != nil {
		slog.Error("Failed to start NOTIFY listener", "error", err)
		os.Exit(1)
	}
	defer notifyListener.Stop(ctx)
	connManager.SetListener(notifyListener)
	slog.Info("Event streaming initialized")

	// 5. LLM clients: default chain plus per-task overrides
	defaultClient, err := buildLLMClient(cfg,
		append([]string{cfg.Defaults.LLMProvider}, cfg.Defaults.FallbackProviders...))
	if err != nil {
		slog.Error("Failed to build LLM client", "error", err)
		os.Exit(1)
	}
	clientFor := func(task worker.TaskType) llm.Client {
		override, ok := cfg.Workers[string(task)]
		if !ok || override.LLMProvider == "" {
			return defaultClient
		}
		client, err := buildLLMClient(cfg, []string{override.LLMProvider})
		if err != nil {
			slog.Error("Failed to build worker LLM client", "task", task, "error", err)
			os.Exit(1)
		}
		return client
	}

	// 6. Workers
	ident := identity.NewService(store)
	registry := worker.NewRegistry()
	registry.MustRegister(
		worker.NewSkeletonWorker(clientFor(worker.TaskCreate), publisher),
		worker.NewActivityWorker(clientFor(worker.TaskPopulateAttraction), ident, publisher),
		worker.NewMealWorker(clientFor(worker.TaskPopulateMeals), ident, publisher),
		worker.NewTransportWorker(clientFor(worker.TaskPopulateTransport), ident, publisher),
		worker.NewEnrichmentWorker(worker.OfflinePlacesClient{}, publisher),
		worker.NewCostWorker(publisher),
		worker.NewEditorWorker(clientFor(worker.TaskEdit), ident),
		worker.NewExplainerWorker(clientFor(worker.TaskExplain), ident),
		worker.NewBookingWorker(worker.OfflineBookingClient{}),
	)
	slog.Info("Workers registered", "count", 9)

	// 7. Change engine with background enrichment
	enrichQueue := pipeline.NewEnrichQueue(registry, store, 64)
	enrichQueue.Start(ctx)
	defer enrichQueue.Stop()

	changeEngine := engine.New(store, publisher,
		engine.WithEnricher(enrichQueue),
		engine.WithIdempotencyCache(10_000, time.Hour),
	)

	// 8. Pipeline and chat orchestrators
	taskTimeouts := make(map[worker.TaskType]time.Duration)
	for task, override := range cfg.Workers {
		if override.Timeout > 0 {
			taskTimeouts[worker.TaskType(task)] = override.Timeout.Std()
		}
	}
	orchestrator := pipeline.New(registry, store, publisher, ident, pipeline.Config{
		WorkerTimeout: cfg.Pipeline.WorkerTimeout.Std(),
		WorkerRetries: uint64(cfg.Pipeline.WorkerRetries),
		RetryInterval: cfg.Pipeline.RetryInterval.Std(),
		MaxConcurrent: cfg.Pipeline.MaxConcurrentGenerations,
		TaskTimeouts:  taskTimeouts,
	})

	chatOrchestrator := chat.New(defaultClient, registry, changeEngine, ident, publisher, chatService, chat.Config{
		ConfidenceThreshold: cfg.Chat.ConfidenceThreshold,
		TranscriptWindow:    cfg.Chat.TranscriptWindow,
	})

	// 9. Event retention
	retention := cleanup.NewService(cfg.System.Retention, eventService)
	retention.Start(ctx)
	defer retention.Stop()

	// 10. HTTP server
	server := api.NewServer(api.Options{
		Itineraries:      store.ItineraryService,
		Revisions:        store.RevisionService,
		Engine:           changeEngine,
		Pipeline:         orchestrator,
		Chat:             chatOrchestrator,
		DB:               dbClient,
		ConnMgr:          connManager,
		AllowedWSOrigins: cfg.System.AllowedWSOrigins,
	})

	httpServer := &http.Server{
		Addr:              cfg.System.ListenAddr,
		Handler:           server.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Wanderplan started",
		"max_concurrent_generations", cfg.Pipeline.MaxConcurrentGenerations,
		"llm_provider", cfg.Defaults.LLMProvider)

	// 11. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 12. Graceful shutdown: stop accepting, drain generations with a budget
	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	drainCtx, drainCancel := context.WithTimeout(ctx, cfg.Pipeline.GracefulShutdownTimeout.Std())
	defer drainCancel()
	if err := orchestrator.Shutdown(drainCtx); err != nil {
		slog.Warn("Generation drain timeout exceeded, executions cancelled", "error", err)
	} else {
		slog.Info("Generations drained")
	}

	slog.Info("Shutdown complete")
}

// buildLLMClient assembles a structured client from an ordered provider
// chain; earlier names are preferred, later ones are fallbacks.
func buildLLMClient(cfg *config.Config, names []string) (llm.Client, error) {
	providers := make([]llm.Provider, 0, len(names))
	for _, name := range names {
		pc, err := cfg.GetLLMProvider(name)
		if err != nil {
			return nil, err
		}
		p, err := buildProvider(pc)
		if err != nil {
			return nil, fmt.Errorf("provider %q: %w", name, err)
		}
		providers = append(providers, llm.WithDefaultMaxTokens(p, pc.MaxOutputTokens))
	}
	return llm.NewStructuredClient(providers...)
}

func buildProvider(pc *config.LLMProviderConfig) (llm.Provider, error) {
	switch pc.Type {
	case config.LLMProviderTypeAnthropic:
		var opts []anthropicopt.RequestOption
		if pc.BaseURL != "" {
			opts = append(opts, anthropicopt.WithBaseURL(pc.BaseURL))
		}
		return llm.NewAnthropicProvider(os.Getenv(pc.APIKeyEnv), pc.Model, opts...)
	case config.LLMProviderTypeOpenAI:
		var opts []openaiopt.RequestOption
		if pc.BaseURL != "" {
			opts = append(opts, openaiopt.WithBaseURL(pc.BaseURL))
		}
		return llm.NewOpenAIProvider(os.Getenv(pc.APIKeyEnv), pc.Model, opts...)
	case config.LLMProviderTypeNoop:
		return llm.NewNoopProvider(), nil
	default:
		return nil, fmt.Errorf("unsupported llm provider type %q", pc.Type)
	}
}
