package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/wanderplan/wanderplan/pkg/models"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// createItineraryHandler persists the trip shell and starts generation in the
// background. The response carries the shell (status "generating") and the
// execution id; clients follow progress over the event stream.
func (s *Server) createItineraryHandler(c *gin.Context) {
	var req models.CreateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid_input", "invalid request body: "+err.Error())
		return
	}

	it, err := s.itineraries.CreateItinerary(c.Request.Context(), extractUser(c), req)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	handle, err := s.pipeline.Run(c.Request.Context(), it)
	if err != nil {
		mapWorkerError(c, err)
		return
	}

	c.JSON(http.StatusCreated, CreateItineraryResponse{
		Itinerary:   it,
		ExecutionID: handle.ExecutionID,
	})
}

func (s *Server) getItineraryHandler(c *gin.Context) {
	it := s.loadOwned(c)
	if it == nil {
		return
	}
	c.JSON(http.StatusOK, it)
}

func (s *Server) deleteItineraryHandler(c *gin.Context) {
	id := c.Param("id")
	if err := s.itineraries.DeleteItinerary(c.Request.Context(), id, extractUser(c)); err != nil {
		mapServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) listItinerariesHandler(c *gin.Context) {
	page := parsePositiveInt(c.Query("page"), 1)
	pageSize := parsePositiveInt(c.Query("page_size"), defaultPageSize)
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	trips, total, err := s.itineraries.ListTrips(c.Request.Context(), extractUser(c), pageSize, (page-1)*pageSize)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, ListTripsResponse{
		Itineraries: trips,
		TotalCount:  total,
		Page:        page,
		PageSize:    pageSize,
	})
}

// regenerateItineraryHandler resets the trip to a generating shell and starts
// a fresh execution. Prior revision history is retained.
func (s *Server) regenerateItineraryHandler(c *gin.Context) {
	it, err := s.itineraries.Regenerate(c.Request.Context(), c.Param("id"), extractUser(c))
	if err != nil {
		mapServiceError(c, err)
		return
	}

	handle, err := s.pipeline.Run(c.Request.Context(), it)
	if err != nil {
		mapWorkerError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, CreateItineraryResponse{
		Itinerary:   it,
		ExecutionID: handle.ExecutionID,
	})
}

type cancelRequest struct {
	ExecutionID string `json:"execution_id"`
}

// cancelGenerationHandler stops a running execution. Cancelling an execution
// that already finished is not an error; Cancelled reports what happened.
func (s *Server) cancelGenerationHandler(c *gin.Context) {
	if s.loadOwned(c) == nil {
		return
	}

	var req cancelRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ExecutionID == "" {
		writeError(c, http.StatusBadRequest, "invalid_input", "execution_id is required")
		return
	}

	c.JSON(http.StatusOK, CancelResponse{
		ExecutionID: req.ExecutionID,
		Cancelled:   s.pipeline.Cancel(req.ExecutionID),
	})
}

func parsePositiveInt(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
