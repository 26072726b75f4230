package worker

import (
	"context"
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/wanderplan/wanderplan/pkg/models"
)

// BookingRequest identifies what to book.
type BookingRequest struct {
	ItineraryID string
	NodeID      string
	Title       string
	Date        string
	Party       models.Party
}

// BookingConfirmation is a successful booking's receipt.
type BookingConfirmation struct {
	Reference string
	Provider  string
}

// BookingClient places a reservation with an external provider.
// OfflineBookingClient is the keyless fallback.
type BookingClient interface {
	Book(ctx context.Context, req BookingRequest) (*BookingConfirmation, error)
}

// OfflineBookingClient issues deterministic synthetic references without any
// network call. Same node, same reference.
type OfflineBookingClient struct{}

// Book implements BookingClient.
func (OfflineBookingClient) Book(_ context.Context, req BookingRequest) (*BookingConfirmation, error) {
	if req.NodeID == "" {
		return nil, fmt.Errorf("booking request has no node")
	}
	h := fnv.New32a()
	_, _ = h.Write([]byte(req.ItineraryID + "|" + req.NodeID + "|" + req.Date))
	return &BookingConfirmation{
		Reference: fmt.Sprintf("WNDR-%08X", h.Sum32()),
		Provider:  "offline",
	}, nil
}

// BookingWorker reserves the target node through the booking client and
// records the confirmation as an update operation. It never changes the
// itinerary's structure: booking only annotates the node it was asked about.
type BookingWorker struct {
	bookings BookingClient
}

// NewBookingWorker wires the booking worker.
func NewBookingWorker(bookings BookingClient) *BookingWorker {
	return &BookingWorker{bookings: bookings}
}

// Capabilities implements Worker.
func (w *BookingWorker) Capabilities() Capabilities {
	return Capabilities{
		TaskType:          TaskBook,
		Priority:          10,
		ChatEnabled:       true,
		RequiredInputs:    []string{"itinerary", "target_node"},
		ProducesChangeSet: true,
	}
}

// Execute implements Worker.
func (w *BookingWorker) Execute(ctx context.Context, req *Request) (*Result, error) {
	caps := w.Capabilities()
	if err := checkTask(req.TaskType, caps); err != nil {
		return nil, err
	}
	if err := checkItinerary(req); err != nil {
		return nil, err
	}
	if req.TargetNodeID == "" {
		return nil, Errorf(KindInvalidInput, "booking needs a resolved target node")
	}
	it := req.Itinerary
	day, node := it.FindNode(req.TargetNodeID)
	if node == nil {
		return nil, Errorf(KindInvalidInput, "node %s not found in itinerary %s", req.TargetNodeID, it.ID)
	}
	if node.BookingRef != "" {
		return &Result{
			Message: fmt.Sprintf("%s is already booked (reference %s).", node.Title, node.BookingRef),
		}, nil
	}

	conf, err := w.bookings.Book(ctx, BookingRequest{
		ItineraryID: it.ID,
		NodeID:      node.ID,
		Title:       node.Title,
		Date:        day.Date,
		Party:       it.Trip.Party,
	})
	if err != nil {
		return nil, &Error{Kind: KindDependencyFailure, Message: "booking provider refused", Wrapped: err}
	}

	ref := conf.Reference
	cs := &models.ChangeSet{
		BaseVersion: it.Version,
		Reason:      fmt.Sprintf("book %s", node.Title),
		Scope:       req.Scope,
		Ops: []models.Operation{{
			Op:     models.OpUpdate,
			NodeID: node.ID,
			Patch: &models.NodePatch{
				BookingRef: &ref,
				Details: map[string]any{
					"booking_provider": conf.Provider,
				},
			},
		}},
	}
	msg := fmt.Sprintf("Booked %s for %s — reference %s.",
		node.Title, day.Date, conf.Reference)
	if !strings.EqualFold(conf.Provider, "offline") {
		msg += fmt.Sprintf(" (via %s)", conf.Provider)
	}
	return &Result{ChangeSet: cs, Message: msg}, nil
}
