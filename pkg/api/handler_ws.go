package api

import (
	"log/slog"
	"net/http"

	"github.com/coder/websocket"
	"github.com/gin-gonic/gin"
)

// websocketHandler upgrades the connection and hands it to the connection
// manager, which owns it until the client disconnects or goes idle.
func (s *Server) websocketHandler(c *gin.Context) {
	if s.connMgr == nil {
		writeError(c, http.StatusServiceUnavailable, "unavailable", "event streaming is not enabled")
		return
	}

	opts := &websocket.AcceptOptions{}
	if len(s.allowedWSOrigins) > 0 {
		opts.OriginPatterns = s.allowedWSOrigins
	} else {
		// No allowlist configured: same-origin only, which is the
		// websocket package default. Dev setups set allowed_ws_origins.
		opts.InsecureSkipVerify = false
	}

	conn, err := websocket.Accept(c.Writer, c.Request, opts)
	if err != nil {
		slog.Warn("WebSocket upgrade failed", "error", err, "user", extractUser(c))
		return
	}

	// Blocks for the connection lifetime.
	s.connMgr.HandleConnection(c.Request.Context(), conn)
}
