package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wanderplan/wanderplan/pkg/engine"
	"github.com/wanderplan/wanderplan/pkg/services"
	"github.com/wanderplan/wanderplan/pkg/worker"
)

// errorBody is the uniform error envelope: a stable machine-readable code
// plus a human-readable message.
type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	NodeID  string `json:"node_id,omitempty"`
}

func writeError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, errorBody{Code: code, Message: message})
}

// mapServiceError maps service-layer errors to HTTP error responses.
func mapServiceError(c *gin.Context, err error) {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		writeError(c, http.StatusBadRequest, "invalid_input", validErr.Error())
		return
	}
	switch {
	case errors.Is(err, services.ErrNotFound):
		writeError(c, http.StatusNotFound, "not_found", "itinerary not found")
	case errors.Is(err, services.ErrNotOwner):
		writeError(c, http.StatusForbidden, "not_owned", "itinerary is owned by another user")
	case errors.Is(err, services.ErrVersionConflict):
		writeError(c, http.StatusConflict, "version_conflict", "itinerary was modified concurrently; reload and retry")
	case errors.Is(err, services.ErrAlreadyExists):
		writeError(c, http.StatusConflict, "already_exists", "resource already exists")
	default:
		slog.Error("Unexpected service error", "error", err)
		writeError(c, http.StatusInternalServerError, "internal", "internal server error")
	}
}

// mapEngineError maps change-engine failures to HTTP error responses.
// The whole changeset aborted; nothing was persisted.
func mapEngineError(c *gin.Context, err error) {
	var engErr *engine.Error
	if !errors.As(err, &engErr) {
		mapServiceError(c, err)
		return
	}

	status := http.StatusInternalServerError
	switch engErr.Kind {
	case engine.KindVersionConflict:
		status = http.StatusConflict
	case engine.KindNodeNotFound:
		status = http.StatusNotFound
	case engine.KindLockedTarget:
		status = http.StatusConflict
	case engine.KindInvalidInput:
		status = http.StatusBadRequest
	case engine.KindNotOwned:
		status = http.StatusForbidden
	}

	c.AbortWithStatusJSON(status, errorBody{
		Code:    string(engErr.Kind),
		Message: engErr.Message,
		NodeID:  engErr.NodeID,
	})
}

// mapWorkerError maps typed worker failures to HTTP error responses.
func mapWorkerError(c *gin.Context, err error) {
	kind := worker.KindOf(err)
	status := http.StatusInternalServerError
	switch kind {
	case worker.KindInvalidInput:
		status = http.StatusBadRequest
	case worker.KindTransient:
		status = http.StatusServiceUnavailable
	case worker.KindLLMFailure, worker.KindSchemaViolation, worker.KindDependencyFailure:
		status = http.StatusBadGateway
	default:
		slog.Error("Unexpected worker error", "error", err)
		writeError(c, status, "internal", "internal server error")
		return
	}
	writeError(c, status, string(kind), err.Error())
}
