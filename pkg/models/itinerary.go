// Package models defines the domain value types shared across the service:
// the itinerary aggregate, change sets, diffs, and revisions.
//
// The Day → Node → Location tree is a strict tree. Cross-day references are
// by node identifier string, never by pointer, so a deep copy of the tree is
// always safe to mutate in isolation.
package models

import (
	"time"
)

// CreationStatus tracks the itinerary generation lifecycle.
type CreationStatus string

// Creation status values.
const (
	StatusDraft      CreationStatus = "draft"
	StatusGenerating CreationStatus = "generating"
	StatusReady      CreationStatus = "ready"
	StatusFailed     CreationStatus = "failed"
)

// NodeType identifies the kind of activity a node represents.
type NodeType string

// Node type variants.
const (
	NodeAttraction NodeType = "attraction"
	NodeMeal       NodeType = "meal"
	NodeHotel      NodeType = "hotel"
	NodeTransit    NodeType = "transit"
	NodeActivity   NodeType = "activity"
)

// BudgetTier is the trip-level spending profile.
type BudgetTier string

// Budget tiers.
const (
	BudgetEconomy BudgetTier = "economy"
	BudgetMid     BudgetTier = "mid"
	BudgetLuxury  BudgetTier = "luxury"
)

// Itinerary is the aggregate root. It is created by the initialization
// service, mutated only through the change engine or pipeline workers
// writing whole sub-trees, and versioned monotonically.
type Itinerary struct {
	ID        string         `json:"id"`
	OwnerID   string         `json:"owner_id"`
	Version   int            `json:"version"`
	Status    CreationStatus `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	Days      []Day          `json:"days"`
	Settings  Settings       `json:"settings"`
	Trip      TripMeta       `json:"trip"`
}

// TripMeta holds the immutable request parameters the itinerary was built from.
type TripMeta struct {
	Destination string     `json:"destination"`
	StartDate   string     `json:"start_date"` // ISO date, inclusive
	EndDate     string     `json:"end_date"`   // ISO date, inclusive
	Party       Party      `json:"party"`
	Budget      BudgetTier `json:"budget"`
	Interests   []string   `json:"interests,omitempty"`
	Language    string     `json:"language,omitempty"`
}

// Party describes who is travelling.
type Party struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
	Rooms    int `json:"rooms"`
}

// Settings are itinerary-level display and pacing preferences.
// Precedence when a node or day carries its own override: node > day > itinerary.
type Settings struct {
	Currency string `json:"currency,omitempty"`
	Units    string `json:"units,omitempty"`  // "metric" or "imperial"
	Pacing   string `json:"pacing,omitempty"` // "relaxed", "moderate", "packed"
}

// Day is one calendar day of the trip. Node order is the visit order.
type Day struct {
	Number int    `json:"number"` // 1-indexed
	Date   string `json:"date"`   // ISO date
	Nodes  []Node `json:"nodes"`
	Edges  []Edge `json:"edges,omitempty"`
	Notes  string `json:"notes,omitempty"`
}

// Edge links two nodes of the same day with travel information.
type Edge struct {
	From            string `json:"from"` // node id
	To              string `json:"to"`   // node id
	Mode            string `json:"mode,omitempty"`
	DurationMinutes int    `json:"duration_minutes,omitempty"`
}

// Node is a unit of activity within a day. The ID follows the canonical
// pattern day{N}_node{M} where N is the day number and M the 1-based
// position at the time the identifier was minted.
type Node struct {
	ID         string         `json:"id"`
	Title      string         `json:"title"`
	Type       NodeType       `json:"type"`
	Location   *Location      `json:"location,omitempty"`
	Timing     *Timing        `json:"timing,omitempty"`
	Cost       *Cost          `json:"cost,omitempty"`
	Details    map[string]any `json:"details,omitempty"`
	Tips       []string       `json:"tips,omitempty"`
	Links      []string       `json:"links,omitempty"`
	Locked     bool           `json:"locked,omitempty"`
	BookingRef string         `json:"booking_ref,omitempty"`
}

// Location places a node on the map.
type Location struct {
	Name             string       `json:"name,omitempty"`
	Address          string       `json:"address,omitempty"`
	Coordinates      *Coordinates `json:"coordinates,omitempty"`
	PlaceID          string       `json:"place_id,omitempty"`
	FormattedAddress string       `json:"formatted_address,omitempty"`
}

// Coordinates is a single optional record so latitude and longitude are
// always both present or both absent.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Valid reports whether the coordinates are within WGS84 bounds.
func (c Coordinates) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}

// Timing is the scheduled window of a node.
type Timing struct {
	StartMillis     int64 `json:"start_millis,omitempty"` // epoch millis
	EndMillis       int64 `json:"end_millis,omitempty"`   // epoch millis
	DurationMinutes int   `json:"duration_minutes,omitempty"`
}

// Valid reports whether start ≤ end when both are present.
func (t Timing) Valid() bool {
	if t.StartMillis == 0 || t.EndMillis == 0 {
		return true
	}
	return t.StartMillis <= t.EndMillis
}

// Cost is a per-node cost estimate.
type Cost struct {
	Amount    float64    `json:"amount"`
	Currency  string     `json:"currency,omitempty"`
	PerPerson bool       `json:"per_person,omitempty"`
	Tier      BudgetTier `json:"tier,omitempty"`
}

// DayCount returns the number of calendar days spanned by the trip metadata,
// inclusive of both endpoints. Returns 0 when the dates do not parse or the
// range is inverted.
func (m TripMeta) DayCount() int {
	start, err := time.Parse("2006-01-02", m.StartDate)
	if err != nil {
		return 0
	}
	end, err := time.Parse("2006-01-02", m.EndDate)
	if err != nil {
		return 0
	}
	if end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}

// FindNode returns a pointer into the itinerary's day/node tree for the given
// node identifier, or nil when absent. Lookups are exact: no fuzzy matching.
func (it *Itinerary) FindNode(nodeID string) (*Day, *Node) {
	for di := range it.Days {
		day := &it.Days[di]
		for ni := range day.Nodes {
			if day.Nodes[ni].ID == nodeID {
				return day, &day.Nodes[ni]
			}
		}
	}
	return nil, nil
}

// DayByNumber returns the day with the given 1-indexed number, or nil.
func (it *Itinerary) DayByNumber(n int) *Day {
	for i := range it.Days {
		if it.Days[i].Number == n {
			return &it.Days[i]
		}
	}
	return nil
}

// NodeCount returns the total number of nodes across all days.
func (it *Itinerary) NodeCount() int {
	n := 0
	for i := range it.Days {
		n += len(it.Days[i].Nodes)
	}
	return n
}
