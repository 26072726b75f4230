package worker

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/wanderplan/wanderplan/pkg/events"
	"github.com/wanderplan/wanderplan/pkg/models"
)

// summaryCharBudget bounds the itinerary rendering embedded in worker prompts.
const summaryCharBudget = 6000

// tripContext renders the immutable trip parameters for a prompt header.
func tripContext(it *models.Itinerary) string {
	var b strings.Builder
	t := it.Trip
	fmt.Fprintf(&b, "Destination: %s\n", t.Destination)
	fmt.Fprintf(&b, "Dates: %s to %s (%d days)\n", t.StartDate, t.EndDate, t.DayCount())
	fmt.Fprintf(&b, "Party: %d adults, %d children\n", t.Party.Adults, t.Party.Children)
	fmt.Fprintf(&b, "Budget: %s\n", t.Budget)
	if len(t.Interests) > 0 {
		fmt.Fprintf(&b, "Interests: %s\n", strings.Join(t.Interests, ", "))
	}
	if t.Language != "" {
		fmt.Fprintf(&b, "Language: %s\n", t.Language)
	}
	if it.Settings.Pacing != "" {
		fmt.Fprintf(&b, "Pacing: %s\n", it.Settings.Pacing)
	}
	return b.String()
}

// reportProgress emits a transient progress event. Progress is advisory;
// emission failure never fails the worker.
func reportProgress(ctx context.Context, pub events.Publisher, req *Request, phase string, percent int, kind, message string) {
	if pub == nil {
		return
	}
	p := events.ProgressPayload{
		BasePayload: events.NewBase(events.EventTypeProgress, req.Itinerary.ID, req.ExecutionID),
		Phase:       phase,
		Percent:     percent,
		WorkerKind:  kind,
		Message:     message,
	}
	if err := pub.PublishProgress(ctx, req.Itinerary.ID, p); err != nil {
		slog.Warn("progress publish failed", "worker", kind, "error", err)
	}
}

// clockOnDate resolves a "15:04" wall clock onto an ISO date, in UTC millis.
func clockOnDate(date, clock string) (int64, error) {
	t, err := time.Parse("2006-01-02 15:04", date+" "+clock)
	if err != nil {
		return 0, fmt.Errorf("parsing clock %q on %s: %w", clock, date, err)
	}
	return t.UTC().UnixMilli(), nil
}

// placeholderNodes returns pointers to the unpopulated nodes of the given type
// in a day. A node is a placeholder until a population worker clears the flag.
func placeholderNodes(day *models.Day, types ...models.NodeType) []*models.Node {
	var out []*models.Node
	for i := range day.Nodes {
		n := &day.Nodes[i]
		if !isPlaceholder(n) {
			continue
		}
		for _, t := range types {
			if n.Type == t {
				out = append(out, n)
				break
			}
		}
	}
	return out
}

func isPlaceholder(n *models.Node) bool {
	if n.Details == nil {
		return false
	}
	v, ok := n.Details["placeholder"].(bool)
	return ok && v
}

func clearPlaceholder(n *models.Node) {
	delete(n.Details, "placeholder")
	if len(n.Details) == 0 {
		n.Details = nil
	}
}

// daysInScope returns the days a population request covers: the single day
// named by req.Day, or all of them.
func daysInScope(req *Request) []*models.Day {
	it := req.Itinerary
	if req.Day > 0 {
		if d := it.DayByNumber(req.Day); d != nil {
			return []*models.Day{d}
		}
		return nil
	}
	out := make([]*models.Day, 0, len(it.Days))
	for i := range it.Days {
		out = append(out, &it.Days[i])
	}
	return out
}
