package engine

import (
	"reflect"

	"github.com/wanderplan/wanderplan/pkg/models"
)

// computeDiff derives the (added, removed, updated) summary by matching
// post-apply nodes to their pre-apply identities via the origin tracking, so
// a node that only shifted position under renumbering still pairs with its
// former self. Ordering is deterministic: day order, then node order; removed
// entries follow the pre-apply order.
func computeDiff(before []models.Day, ws *workingState) models.Diff {
	beforeByID := make(map[string]models.Node)
	var beforeOrder []string
	for di := range before {
		for ni := range before[di].Nodes {
			n := before[di].Nodes[ni]
			beforeByID[n.ID] = n
			beforeOrder = append(beforeOrder, n.ID)
		}
	}

	var diff models.Diff
	seen := make(map[string]bool, len(beforeByID))

	for di := range ws.it.Days {
		for ni := range ws.it.Days[di].Nodes {
			after := ws.it.Days[di].Nodes[ni]
			origin := ws.origins[di][ni]
			if origin == "" {
				diff.Added = append(diff.Added, after.Clone())
				continue
			}
			seen[origin] = true
			prev, ok := beforeByID[origin]
			if !ok {
				// Origin vanished from the pre-state map; treat as added.
				diff.Added = append(diff.Added, after.Clone())
				continue
			}
			if !reflect.DeepEqual(prev, after) {
				diff.Updated = append(diff.Updated, models.NodeUpdate{
					Before: prev.Clone(),
					After:  after.Clone(),
				})
			}
		}
	}

	for _, id := range beforeOrder {
		if !seen[id] {
			diff.Removed = append(diff.Removed, beforeByID[id].Clone())
		}
	}

	return diff
}

// diffSnapshots compares two day lists by node identifier. Used by Undo,
// where there is no per-operation origin tracking: identifiers are canonical
// on both sides, so identifier equality is entity equality.
func diffSnapshots(before, after []models.Day) models.Diff {
	beforeByID := make(map[string]models.Node)
	var beforeOrder []string
	for di := range before {
		for ni := range before[di].Nodes {
			n := before[di].Nodes[ni]
			beforeByID[n.ID] = n
			beforeOrder = append(beforeOrder, n.ID)
		}
	}

	var diff models.Diff
	seen := make(map[string]bool, len(beforeByID))

	for di := range after {
		for ni := range after[di].Nodes {
			n := after[di].Nodes[ni]
			prev, ok := beforeByID[n.ID]
			if !ok {
				diff.Added = append(diff.Added, n.Clone())
				continue
			}
			seen[n.ID] = true
			if !reflect.DeepEqual(prev, n) {
				diff.Updated = append(diff.Updated, models.NodeUpdate{
					Before: prev.Clone(),
					After:  n.Clone(),
				})
			}
		}
	}

	for _, id := range beforeOrder {
		if !seen[id] {
			diff.Removed = append(diff.Removed, beforeByID[id].Clone())
		}
	}

	return diff
}
