package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wanderplan/wanderplan/pkg/models"
)

// applyChangesHandler applies a changeset transactionally, or previews it
// without persisting when ?dry_run=true.
func (s *Server) applyChangesHandler(c *gin.Context) {
	it := s.loadOwned(c)
	if it == nil {
		return
	}

	var cs models.ChangeSet
	if err := c.ShouldBindJSON(&cs); err != nil {
		writeError(c, http.StatusBadRequest, "invalid_input", "invalid changeset: "+err.Error())
		return
	}

	if c.Query("dry_run") == "true" {
		diff, err := s.engine.Propose(c.Request.Context(), it, &cs)
		if err != nil {
			mapEngineError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.ApplyChangesResult{Version: it.Version, Diff: diff})
		return
	}

	result, err := s.engine.Apply(c.Request.Context(), it, &cs)
	if err != nil {
		mapEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
