package models

// CreateItineraryRequest contains the fields accepted when creating a trip.
type CreateItineraryRequest struct {
	Destination string     `json:"destination"`
	StartDate   string     `json:"start_date"` // ISO date, inclusive
	EndDate     string     `json:"end_date"`   // ISO date, inclusive
	Party       Party      `json:"party"`
	Budget      BudgetTier `json:"budget"`
	Interests   []string   `json:"interests,omitempty"`
	Language    string     `json:"language,omitempty"`
	Currency    string     `json:"currency,omitempty"`
	Pacing      string     `json:"pacing,omitempty"`
}

// ApplyChangesRequest is the service-level input for a change apply.
type ApplyChangesRequest struct {
	ItineraryID string    `json:"itinerary_id"`
	ChangeSet   ChangeSet `json:"changeset"`
	DryRun      bool      `json:"dry_run,omitempty"` // propose only, no persistence
}

// ApplyChangesResult is returned on a successful apply or propose.
type ApplyChangesResult struct {
	Version int  `json:"version"`
	Diff    Diff `json:"diff"`
}

// ChatRequest is one conversational turn against an itinerary.
type ChatRequest struct {
	ItineraryID string `json:"itinerary_id"`
	Text        string `json:"text"`
	Scope       string `json:"scope,omitempty"` // optional day limit, e.g. "day3"
}
