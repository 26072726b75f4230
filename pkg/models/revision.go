package models

import "time"

// Revision is an append-only history entry recorded on every non-empty
// change-engine apply. Snapshot holds the day tree as it was BEFORE the
// change, which is what a rollback restores.
type Revision struct {
	Number    int       `json:"number"`
	CreatedAt time.Time `json:"created_at"`
	Reason    string    `json:"reason,omitempty"`
	ChangeSet ChangeSet `json:"changeset"`
	Snapshot  []Day     `json:"snapshot"`
}

// RevisionPage is a descending page of revision history.
type RevisionPage struct {
	Revisions  []Revision `json:"revisions"`
	TotalCount int        `json:"total_count"`
	Page       int        `json:"page"`
	PageSize   int        `json:"page_size"`
}
