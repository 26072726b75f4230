package engine

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderplan/wanderplan/pkg/identity"
	"github.com/wanderplan/wanderplan/pkg/models"
)

// randomChangeSet builds 1-3 operations over mostly-valid targets, with a
// deliberate sprinkling of missing identifiers, stale base versions, and
// malformed payloads so both the commit and the rejection paths run.
func randomChangeSet(rng *rand.Rand, it *models.Itinerary) *models.ChangeSet {
	pickNodeID := func() string {
		if rng.Intn(10) == 0 {
			return "day9_node9"
		}
		day := it.Days[rng.Intn(len(it.Days))]
		return day.Nodes[rng.Intn(len(day.Nodes))].ID
	}

	cs := &models.ChangeSet{Day: it.Days[rng.Intn(len(it.Days))].Number}
	switch rng.Intn(4) {
	case 0:
		cs.BaseVersion = it.Version
	case 1:
		cs.BaseVersion = it.Version + 1 + rng.Intn(3) // stale
	}

	for n := 1 + rng.Intn(3); n > 0; n-- {
		switch rng.Intn(5) {
		case 0:
			node := &models.Node{Title: fmt.Sprintf("New %d", rng.Intn(1000)), Type: models.NodeActivity}
			if rng.Intn(8) == 0 {
				node.Title = ""
			}
			cs.Ops = append(cs.Ops, models.Operation{Op: models.OpInsert, Position: rng.Intn(6) - 1, Node: node})
		case 1:
			cs.Ops = append(cs.Ops, models.Operation{Op: models.OpDelete, NodeID: pickNodeID()})
		case 2:
			cs.Ops = append(cs.Ops, models.Operation{
				Op:     models.OpUpdate,
				NodeID: pickNodeID(),
				Patch:  &models.NodePatch{Title: strPtr(fmt.Sprintf("Renamed %d", rng.Intn(1000)))},
			})
		case 3:
			cs.Ops = append(cs.Ops, models.Operation{
				Op:         models.OpMove,
				NodeID:     pickNodeID(),
				ToDay:      it.Days[rng.Intn(len(it.Days))].Number,
				ToPosition: rng.Intn(6) - 1,
			})
		default:
			cs.Ops = append(cs.Ops, models.Operation{
				Op:     models.OpReplace,
				NodeID: pickNodeID(),
				Node:   &models.Node{Title: fmt.Sprintf("Swap %d", rng.Intn(1000)), Type: models.NodeAttraction},
			})
		}
	}
	return cs
}

// TestApply_RandomizedChangeSets drives the engine with generated changesets
// and checks the invariants that must hold for every input: version bumps by
// exactly one per non-empty diff, rejected applies leave no partial state,
// propose and apply always agree, and committed trees carry canonical
// sequential node identifiers.
func TestApply_RandomizedChangeSets(t *testing.T) {
	rng := rand.New(rand.NewSource(0x77a9))

	for round := 0; round < 250; round++ {
		it := testItinerary(1+rng.Intn(3), 1+rng.Intn(4), 1+rng.Intn(40))
		for di := range it.Days {
			for ni := range it.Days[di].Nodes {
				it.Days[di].Nodes[ni].Title = fmt.Sprintf("Stop %d-%d", di+1, ni+1)
			}
		}
		cs := randomChangeSet(rng, it)
		before := it.Clone()

		eng, store, _ := newTestEngine(it)
		proposeDiff, proposeErr := eng.Propose(context.Background(), before.Clone(), cs)
		result, applyErr := eng.Apply(context.Background(), it, cs)

		if applyErr != nil {
			assert.Equal(t, before, it, "round %d: rejected apply mutated the itinerary", round)
			assert.Equal(t, 0, store.revisionCount(it.ID), "round %d: rejected apply left a revision", round)
			assert.Error(t, proposeErr, "round %d: propose accepted what apply rejected", round)
			continue
		}
		require.NoError(t, proposeErr, "round %d: apply accepted what propose rejected", round)
		assert.Equal(t, proposeDiff, result.Diff, "round %d: propose and apply diffs disagree", round)

		if result.Diff.Empty() {
			assert.Equal(t, before.Version, result.Version, "round %d: empty diff bumped the version", round)
			assert.Equal(t, 0, store.revisionCount(it.ID), "round %d", round)
		} else {
			assert.Equal(t, before.Version+1, result.Version, "round %d: version must bump by exactly one", round)
			assert.Equal(t, result.Version, it.Version, "round %d", round)
			assert.Equal(t, 1, store.revisionCount(it.ID), "round %d", round)
		}

		seen := map[string]bool{}
		for _, day := range it.Days {
			for i, n := range day.Nodes {
				assert.Equal(t, identity.NodeID(day.Number, i+1), n.ID,
					"round %d: committed identifiers must be canonical and sequential", round)
				assert.False(t, seen[n.ID], "round %d: duplicate identifier %s", round, n.ID)
				seen[n.ID] = true
			}
		}
	}
}
