package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/wanderplan/wanderplan/pkg/identity"
	"github.com/wanderplan/wanderplan/pkg/models"
)

// pendingIDPrefix marks nodes inserted earlier in the same changeset. The
// sentinel lives outside the day{N}_node{M} space, so a later operation can
// never resolve its target onto a freshly inserted node — inserts must not
// shadow a surviving node's canonical identifier mid-apply. The renumber pass
// replaces sentinels with canonical identifiers.
const pendingIDPrefix = "_pending_"

// workingState wraps the cloned itinerary during operation application. Each
// node carries its pre-apply identifier (origin) in a parallel structure so
// the diff can match entities across the canonical renumbering that follows
// structural changes. Newly inserted nodes have an empty origin.
type workingState struct {
	it       *models.Itinerary
	origins  [][]string // parallel to it.Days[i].Nodes
	inserted int        // pending sentinel counter
}

func newWorkingState(clone *models.Itinerary) *workingState {
	ws := &workingState{
		it:      clone,
		origins: make([][]string, len(clone.Days)),
	}
	for di := range clone.Days {
		ids := make([]string, len(clone.Days[di].Nodes))
		for ni := range clone.Days[di].Nodes {
			ids[ni] = clone.Days[di].Nodes[ni].ID
		}
		ws.origins[di] = ids
	}
	return ws
}

// findNode resolves a node identifier to day/node indices. Resolution is
// exact; a missing identifier fails the entire apply. Pending sentinels are
// never resolvable targets.
func (ws *workingState) findNode(nodeID string) (int, int, bool) {
	if strings.HasPrefix(nodeID, pendingIDPrefix) {
		return 0, 0, false
	}
	for di := range ws.it.Days {
		for ni := range ws.it.Days[di].Nodes {
			if ws.it.Days[di].Nodes[ni].ID == nodeID {
				return di, ni, true
			}
		}
	}
	return 0, 0, false
}

func (ws *workingState) dayIndex(dayNumber int) (int, bool) {
	for di := range ws.it.Days {
		if ws.it.Days[di].Number == dayNumber {
			return di, true
		}
	}
	return 0, false
}

// insertAt places a node (with its origin marker) at pos within day di.
// pos < 0 or past the end appends.
func (ws *workingState) insertAt(di, pos int, node models.Node, origin string) {
	nodes := ws.it.Days[di].Nodes
	origins := ws.origins[di]
	if pos < 0 || pos > len(nodes) {
		pos = len(nodes)
	}

	nodes = append(nodes, models.Node{})
	copy(nodes[pos+1:], nodes[pos:])
	nodes[pos] = node
	ws.it.Days[di].Nodes = nodes

	origins = append(origins, "")
	copy(origins[pos+1:], origins[pos:])
	origins[pos] = origin
	ws.origins[di] = origins
}

// removeAt removes the node at di/ni and returns it with its origin.
func (ws *workingState) removeAt(di, ni int) (models.Node, string) {
	node := ws.it.Days[di].Nodes[ni]
	origin := ws.origins[di][ni]
	ws.it.Days[di].Nodes = append(ws.it.Days[di].Nodes[:ni], ws.it.Days[di].Nodes[ni+1:]...)
	ws.origins[di] = append(ws.origins[di][:ni], ws.origins[di][ni+1:]...)
	return node, origin
}

// renumber rewrites every node identifier to the canonical day{N}_node{M}
// scheme in list order. Relative order within each day is preserved; origins
// are untouched so the diff still matches pre-apply entities.
func (ws *workingState) renumber() {
	for di := range ws.it.Days {
		identity.Renumber(&ws.it.Days[di])
	}
}

// applyOperation applies one operation in place. Any returned error aborts
// the whole changeset.
func (ws *workingState) applyOperation(op *models.Operation, cs *models.ChangeSet) error {
	switch op.Op {
	case models.OpInsert:
		return ws.applyInsert(op, cs)
	case models.OpReplace:
		return ws.applyReplace(op)
	case models.OpUpdate:
		return ws.applyUpdate(op)
	case models.OpDelete:
		return ws.applyDelete(op)
	case models.OpMove:
		return ws.applyMove(op)
	case models.OpUnlock:
		return ws.applyUnlock(op)
	default:
		return invalidInput("unknown operation tag %q", op.Op)
	}
}

func (ws *workingState) applyInsert(op *models.Operation, cs *models.ChangeSet) error {
	if op.Node == nil {
		return invalidInput("insert requires a node payload")
	}
	dayNumber := cs.Day
	if dayNumber == 0 {
		return invalidInput("insert requires a target day")
	}
	di, ok := ws.dayIndex(dayNumber)
	if !ok {
		return invalidInput("day %d does not exist", dayNumber)
	}
	node := op.Node.Clone()
	if err := validateNodePayload(&node); err != nil {
		return err
	}
	// The canonical identifier is minted by the renumber pass. Until then the
	// node carries a sentinel so it cannot collide with — and steal operations
	// addressed to — a surviving node after an earlier delete or move.
	ws.inserted++
	node.ID = fmt.Sprintf("%s%d", pendingIDPrefix, ws.inserted)
	ws.insertAt(di, op.Position, node, "")
	return nil
}

func (ws *workingState) applyReplace(op *models.Operation) error {
	if op.Node == nil {
		return invalidInput("replace requires a node payload")
	}
	di, ni, ok := ws.findNode(op.NodeID)
	if !ok {
		return nodeNotFound(op.NodeID)
	}
	current := &ws.it.Days[di].Nodes[ni]
	if current.Locked {
		return lockedTarget(op.NodeID)
	}

	replacement := op.Node.Clone()
	replacement.ID = current.ID
	if op.StartTime != "" || op.EndTime != "" {
		timing, err := timingFromClocks(ws.it.Days[di].Date, op.StartTime, op.EndTime)
		if err != nil {
			return err
		}
		replacement.Timing = timing
	}
	if err := validateNodePayload(&replacement); err != nil {
		return err
	}
	ws.it.Days[di].Nodes[ni] = replacement
	return nil
}

func (ws *workingState) applyUpdate(op *models.Operation) error {
	if op.Patch == nil {
		return invalidInput("update requires a patch")
	}
	di, ni, ok := ws.findNode(op.NodeID)
	if !ok {
		return nodeNotFound(op.NodeID)
	}
	node := &ws.it.Days[di].Nodes[ni]
	if node.Locked {
		return lockedTarget(op.NodeID)
	}
	op.Patch.Apply(node)
	return validateNodePayload(node)
}

func (ws *workingState) applyDelete(op *models.Operation) error {
	di, ni, ok := ws.findNode(op.NodeID)
	if !ok {
		return nodeNotFound(op.NodeID)
	}
	if ws.it.Days[di].Nodes[ni].Locked {
		return lockedTarget(op.NodeID)
	}
	removed, _ := ws.removeAt(di, ni)
	dropEdgesReferencing(&ws.it.Days[di], removed.ID)
	return nil
}

func (ws *workingState) applyMove(op *models.Operation) error {
	di, ni, ok := ws.findNode(op.NodeID)
	if !ok {
		return nodeNotFound(op.NodeID)
	}
	if ws.it.Days[di].Nodes[ni].Locked {
		return lockedTarget(op.NodeID)
	}
	toDay := op.ToDay
	if toDay == 0 {
		toDay = ws.it.Days[di].Number
	}
	tdi, ok := ws.dayIndex(toDay)
	if !ok {
		return invalidInput("destination day %d does not exist", toDay)
	}

	node, origin := ws.removeAt(di, ni)
	dropEdgesReferencing(&ws.it.Days[di], node.ID)
	ws.insertAt(tdi, op.ToPosition, node, origin)
	return nil
}

func (ws *workingState) applyUnlock(op *models.Operation) error {
	di, ni, ok := ws.findNode(op.NodeID)
	if !ok {
		return nodeNotFound(op.NodeID)
	}
	ws.it.Days[di].Nodes[ni].Locked = false
	return nil
}

// dropEdgesReferencing removes day edges touching a node that left the day.
func dropEdgesReferencing(day *models.Day, nodeID string) {
	if len(day.Edges) == 0 {
		return
	}
	kept := day.Edges[:0]
	for _, e := range day.Edges {
		if e.From != nodeID && e.To != nodeID {
			kept = append(kept, e)
		}
	}
	day.Edges = kept
}

// validateNodePayload enforces the node invariants a changeset can violate:
// title presence, coordinate ranges, timing ordering.
func validateNodePayload(n *models.Node) error {
	if n.Title == "" {
		return invalidInput("node title must not be blank")
	}
	if n.Location != nil && n.Location.Coordinates != nil && !n.Location.Coordinates.Valid() {
		return invalidInput("coordinates out of range: lat=%v lng=%v",
			n.Location.Coordinates.Lat, n.Location.Coordinates.Lng)
	}
	if n.Timing != nil && !n.Timing.Valid() {
		return invalidInput("timing start is after end")
	}
	return nil
}

// timingFromClocks builds a Timing from wall-clock overrides ("15:04") on the
// given ISO day. An empty clock leaves that bound unset.
func timingFromClocks(date, startClock, endClock string) (*models.Timing, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, invalidInput("day has unparseable date %q", date)
	}

	var t models.Timing
	if startClock != "" {
		millis, err := clockMillis(day, startClock)
		if err != nil {
			return nil, err
		}
		t.StartMillis = millis
	}
	if endClock != "" {
		millis, err := clockMillis(day, endClock)
		if err != nil {
			return nil, err
		}
		t.EndMillis = millis
	}
	if t.StartMillis > 0 && t.EndMillis > 0 {
		t.DurationMinutes = int(time.Duration(t.EndMillis-t.StartMillis) * time.Millisecond / time.Minute)
	}
	return &t, nil
}

func clockMillis(day time.Time, clock string) (int64, error) {
	parsed, err := time.Parse("15:04", clock)
	if err != nil {
		return 0, invalidInput("unparseable time of day %q", clock)
	}
	at := time.Date(day.Year(), day.Month(), day.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0, time.UTC)
	return at.UnixMilli(), nil
}
