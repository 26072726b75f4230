package models

import "regexp"

// OpType tags a ChangeSet operation variant.
type OpType string

// Operation variants.
const (
	OpInsert  OpType = "insert"
	OpReplace OpType = "replace"
	OpUpdate  OpType = "update"
	OpDelete  OpType = "delete"
	OpMove    OpType = "move"
	OpUnlock  OpType = "unlock"
)

// idempotencyKeyPattern bounds idempotency keys to URL-safe opaque strings.
var idempotencyKeyPattern = regexp.MustCompile(`^[A-Za-z0-9_.:-]{1,128}$`)

// ValidIdempotencyKey reports whether key matches the accepted format.
// Empty keys are valid — idempotency is opt-in.
func ValidIdempotencyKey(key string) bool {
	return key == "" || idempotencyKeyPattern.MatchString(key)
}

// ChangeSet is a versioned bundle of operations targeting one itinerary.
type ChangeSet struct {
	// BaseVersion is the itinerary version the author read before building
	// the changeset. Zero means "no check requested".
	BaseVersion int `json:"base_version,omitempty"`

	// IdempotencyKey makes the apply at-most-once per itinerary. Optional.
	IdempotencyKey string `json:"idempotency_key,omitempty"`

	Ops    []Operation       `json:"ops"`
	Day    int               `json:"day,omitempty"` // target day for inserts without explicit day
	Reason string            `json:"reason,omitempty"`
	Scope  map[string]string `json:"scope,omitempty"`
}

// Operation is a tagged union; Op selects which fields are meaningful.
type Operation struct {
	Op OpType `json:"op"`

	// insert
	Position int   `json:"position,omitempty"` // 0-based insertion index; -1 or past-end appends
	Node     *Node `json:"node,omitempty"`     // insert, replace payload

	// replace / update / delete / move / unlock
	NodeID string `json:"id,omitempty"`

	// update
	Patch *NodePatch `json:"patch,omitempty"`

	// replace time-of-day overrides ("15:04" wall clock on the target day)
	StartTime string `json:"start_time,omitempty"`
	EndTime   string `json:"end_time,omitempty"`

	// move
	ToDay      int `json:"to_day,omitempty"`
	ToPosition int `json:"to_position,omitempty"`
}

// NodePatch carries the partial fields of an update operation. Nil pointers
// leave the corresponding node field untouched.
type NodePatch struct {
	Title      *string        `json:"title,omitempty"`
	Type       *NodeType      `json:"type,omitempty"`
	Location   *Location      `json:"location,omitempty"`
	Timing     *Timing        `json:"timing,omitempty"`
	Cost       *Cost          `json:"cost,omitempty"`
	Details    map[string]any `json:"details,omitempty"`
	Tips       []string       `json:"tips,omitempty"`
	Links      []string       `json:"links,omitempty"`
	BookingRef *string        `json:"booking_ref,omitempty"`
}

// Apply overlays the patch onto the node in place.
func (p *NodePatch) Apply(n *Node) {
	if p == nil {
		return
	}
	if p.Title != nil {
		n.Title = *p.Title
	}
	if p.Type != nil {
		n.Type = *p.Type
	}
	if p.Location != nil {
		n.Location = p.Location
	}
	if p.Timing != nil {
		n.Timing = p.Timing
	}
	if p.Cost != nil {
		n.Cost = p.Cost
	}
	if p.Details != nil {
		if n.Details == nil {
			n.Details = make(map[string]any, len(p.Details))
		}
		for k, v := range p.Details {
			n.Details[k] = v
		}
	}
	if p.Tips != nil {
		n.Tips = p.Tips
	}
	if p.Links != nil {
		n.Links = p.Links
	}
	if p.BookingRef != nil {
		n.BookingRef = *p.BookingRef
	}
}
