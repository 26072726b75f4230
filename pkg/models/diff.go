package models

// Diff summarizes the effect of an applied ChangeSet. Its shape is consumed
// verbatim by patch_applied events.
type Diff struct {
	Added   []Node       `json:"added"`
	Removed []Node       `json:"removed"`
	Updated []NodeUpdate `json:"updated"`
}

// NodeUpdate pairs the before and after states of a modified node.
type NodeUpdate struct {
	Before Node `json:"before"`
	After  Node `json:"after"`
}

// Empty reports whether the diff records no changes.
func (d Diff) Empty() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0 && len(d.Updated) == 0
}
