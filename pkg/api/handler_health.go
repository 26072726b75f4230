package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/wanderplan/wanderplan/pkg/database"
)

const healthCheckTimeout = 5 * time.Second

type healthResponse struct {
	Status            string                 `json:"status"`
	Database          *database.HealthStatus `json:"database,omitempty"`
	ActiveGenerations int                    `json:"active_generations"`
	ActiveWSClients   int                    `json:"active_ws_clients"`
}

func (s *Server) healthHandler(c *gin.Context) {
	resp := healthResponse{Status: "healthy"}

	if s.pipeline != nil {
		resp.ActiveGenerations = s.pipeline.ActiveCount()
	}
	if s.connMgr != nil {
		resp.ActiveWSClients = s.connMgr.ActiveConnections()
	}

	if s.db != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
		defer cancel()

		dbHealth, err := database.Health(ctx, s.db.DB())
		resp.Database = dbHealth
		if err != nil {
			resp.Status = "unhealthy"
			c.JSON(http.StatusServiceUnavailable, resp)
			return
		}
	}

	c.JSON(http.StatusOK, resp)
}
