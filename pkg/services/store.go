package services

import "github.com/wanderplan/wanderplan/ent"

// Store bundles the itinerary and revision services into the persistence
// contract the change engine and the pipeline orchestrator depend on:
// GetItinerary, PutItinerary (optimistic), AppendRevision, GetRevision.
type Store struct {
	*ItineraryService
	*RevisionService
}

// NewStore creates the combined persistence facade
func NewStore(client *ent.Client) *Store {
	return &Store{
		ItineraryService: NewItineraryService(client),
		RevisionService:  NewRevisionService(client),
	}
}
