// Package api is the HTTP/WebSocket transport adapter: gin handlers over the
// service layer, change engine, pipeline, and chat orchestrator. Handlers
// parse, authorize by owner, delegate, and map errors; no domain logic lives
// here.
package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wanderplan/wanderplan/pkg/chat"
	"github.com/wanderplan/wanderplan/pkg/database"
	"github.com/wanderplan/wanderplan/pkg/events"
	"github.com/wanderplan/wanderplan/pkg/models"
	"github.com/wanderplan/wanderplan/pkg/pipeline"
)

// ItineraryStore is the itinerary service surface the handlers need.
// Satisfied by *services.ItineraryService.
type ItineraryStore interface {
	CreateItinerary(ctx context.Context, ownerID string, req models.CreateItineraryRequest) (*models.Itinerary, error)
	GetForOwner(ctx context.Context, id, ownerID string) (*models.Itinerary, error)
	DeleteItinerary(ctx context.Context, id, ownerID string) error
	ListTrips(ctx context.Context, userID string, limit, offset int) ([]*models.Itinerary, int, error)
	Regenerate(ctx context.Context, id, ownerID string) (*models.Itinerary, error)
}

// RevisionStore is the revision history surface. Satisfied by
// *services.RevisionService.
type RevisionStore interface {
	ListRevisions(ctx context.Context, itineraryID string, page, pageSize int) (*models.RevisionPage, error)
	GetRevision(ctx context.Context, itineraryID string, number int) (*models.Revision, error)
}

// ChangeEngine is the change-engine surface. Satisfied by *engine.Engine.
type ChangeEngine interface {
	Propose(ctx context.Context, it *models.Itinerary, cs *models.ChangeSet) (models.Diff, error)
	Apply(ctx context.Context, it *models.Itinerary, cs *models.ChangeSet) (models.ApplyChangesResult, error)
	Undo(ctx context.Context, itineraryID string, revisionNumber int) (int, error)
}

// PipelineRunner starts and tracks generation executions. Satisfied by
// *pipeline.Orchestrator.
type PipelineRunner interface {
	Run(ctx context.Context, it *models.Itinerary) (*pipeline.Handle, error)
	Cancel(executionID string) bool
	ActiveCount() int
}

// ChatOrchestrator handles one conversational turn. Satisfied by
// *chat.Orchestrator.
type ChatOrchestrator interface {
	HandleMessage(ctx context.Context, it *models.Itinerary, req models.ChatRequest) (*chat.Response, error)
}

// Server wires handlers to their collaborators.
type Server struct {
	itineraries ItineraryStore
	revisions   RevisionStore
	engine      ChangeEngine
	pipeline    PipelineRunner
	chat        ChatOrchestrator

	db      *database.Client
	connMgr *events.ConnectionManager

	allowedWSOrigins []string
}

// Options carries the server's collaborators; db, connMgr and pipeline may be
// nil in tests that don't exercise health or streaming.
type Options struct {
	Itineraries      ItineraryStore
	Revisions        RevisionStore
	Engine           ChangeEngine
	Pipeline         PipelineRunner
	Chat             ChatOrchestrator
	DB               *database.Client
	ConnMgr          *events.ConnectionManager
	AllowedWSOrigins []string
}

// NewServer creates the API server.
func NewServer(opts Options) *Server {
	return &Server{
		itineraries:      opts.Itineraries,
		revisions:        opts.Revisions,
		engine:           opts.Engine,
		pipeline:         opts.Pipeline,
		chat:             opts.Chat,
		db:               opts.DB,
		connMgr:          opts.ConnMgr,
		allowedWSOrigins: opts.AllowedWSOrigins,
	}
}

// Router builds the gin engine with all routes and middleware registered.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(), securityHeaders())

	router.GET("/health", s.healthHandler)

	v1 := router.Group("/api/v1")
	{
		v1.POST("/itineraries", s.createItineraryHandler)
		v1.GET("/itineraries", s.listItinerariesHandler)
		v1.GET("/itineraries/:id", s.getItineraryHandler)
		v1.DELETE("/itineraries/:id", s.deleteItineraryHandler)
		v1.POST("/itineraries/:id/regenerate", s.regenerateItineraryHandler)
		v1.POST("/itineraries/:id/cancel", s.cancelGenerationHandler)

		v1.POST("/itineraries/:id/changes", s.applyChangesHandler)

		v1.GET("/itineraries/:id/revisions", s.listRevisionsHandler)
		v1.GET("/itineraries/:id/revisions/:number", s.getRevisionHandler)
		v1.POST("/itineraries/:id/revisions/:number/rollback", s.rollbackHandler)

		v1.POST("/itineraries/:id/chat", s.chatHandler)

		v1.GET("/ws", s.websocketHandler)
	}

	return router
}

// loadOwned fetches the itinerary for the authenticated user, writing the
// error response itself. Returns nil when the response is already written.
func (s *Server) loadOwned(c *gin.Context) *models.Itinerary {
	id := c.Param("id")
	if id == "" {
		writeError(c, http.StatusBadRequest, "invalid_input", "itinerary id is required")
		return nil
	}
	it, err := s.itineraries.GetForOwner(c.Request.Context(), id, extractUser(c))
	if err != nil {
		mapServiceError(c, err)
		return nil
	}
	return it
}
