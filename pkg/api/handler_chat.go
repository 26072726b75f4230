package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wanderplan/wanderplan/pkg/models"
	"github.com/wanderplan/wanderplan/pkg/worker"
)

// chatHandler runs one conversational turn. Clarification and apology turns
// come back as normal 200 responses; only malformed requests fail.
func (s *Server) chatHandler(c *gin.Context) {
	it := s.loadOwned(c)
	if it == nil {
		return
	}

	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid_input", "invalid request body: "+err.Error())
		return
	}
	req.ItineraryID = it.ID

	resp, err := s.chat.HandleMessage(c.Request.Context(), it, req)
	if err != nil {
		if worker.IsKind(err, worker.KindInvalidInput) {
			writeError(c, http.StatusBadRequest, "invalid_input", err.Error())
			return
		}
		mapWorkerError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
