package api

import "github.com/wanderplan/wanderplan/pkg/models"

// CreateItineraryResponse is returned on 201: the persisted shell plus the
// execution identifier a client can use to cancel generation.
type CreateItineraryResponse struct {
	Itinerary   *models.Itinerary `json:"itinerary"`
	ExecutionID string            `json:"execution_id"`
}

// ListTripsResponse is one page of the owner's trips.
type ListTripsResponse struct {
	Itineraries []*models.Itinerary `json:"itineraries"`
	TotalCount  int                 `json:"total_count"`
	Page        int                 `json:"page"`
	PageSize    int                 `json:"page_size"`
}

// CancelResponse reports whether the execution was still running.
type CancelResponse struct {
	ExecutionID string `json:"execution_id"`
	Cancelled   bool   `json:"cancelled"`
}

// RollbackResponse reports the version created by a revision rollback.
type RollbackResponse struct {
	ItineraryID string `json:"itinerary_id"`
	Version     int    `json:"version"`
}
