package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

func (s *Server) listRevisionsHandler(c *gin.Context) {
	it := s.loadOwned(c)
	if it == nil {
		return
	}

	page := parsePositiveInt(c.Query("page"), 1)
	pageSize := parsePositiveInt(c.Query("page_size"), defaultPageSize)
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	revs, err := s.revisions.ListRevisions(c.Request.Context(), it.ID, page, pageSize)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, revs)
}

func (s *Server) getRevisionHandler(c *gin.Context) {
	it := s.loadOwned(c)
	if it == nil {
		return
	}

	number, err := strconv.Atoi(c.Param("number"))
	if err != nil || number < 1 {
		writeError(c, http.StatusBadRequest, "invalid_input", "revision number must be a positive integer")
		return
	}

	rev, err := s.revisions.GetRevision(c.Request.Context(), it.ID, number)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rev)
}

// rollbackHandler restores the itinerary to the state captured before the
// given revision. The rollback itself is recorded as a new revision, so it
// can in turn be undone.
func (s *Server) rollbackHandler(c *gin.Context) {
	it := s.loadOwned(c)
	if it == nil {
		return
	}

	number, err := strconv.Atoi(c.Param("number"))
	if err != nil || number < 1 {
		writeError(c, http.StatusBadRequest, "invalid_input", "revision number must be a positive integer")
		return
	}

	version, err := s.engine.Undo(c.Request.Context(), it.ID, number)
	if err != nil {
		mapEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, RollbackResponse{ItineraryID: it.ID, Version: version})
}
