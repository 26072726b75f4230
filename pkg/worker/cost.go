package worker

import (
	"context"
	"fmt"

	"github.com/wanderplan/wanderplan/pkg/events"
	"github.com/wanderplan/wanderplan/pkg/models"
)

// Per-node base estimates in USD-equivalent units at the mid tier.
var costBase = map[models.NodeType]float64{
	models.NodeAttraction: 20,
	models.NodeActivity:   35,
	models.NodeMeal:       25,
	models.NodeHotel:      120,
	models.NodeTransit:    5,
}

var tierMultiplier = map[models.BudgetTier]float64{
	models.BudgetEconomy: 0.6,
	models.BudgetMid:     1.0,
	models.BudgetLuxury:  2.2,
}

const defaultCurrency = "USD"

// CostWorker assigns per-node cost estimates from a deterministic tier table.
// Nodes that already carry a cost (a population worker's estimate, a booked
// price) are left alone.
type CostWorker struct {
	pub events.Publisher
}

// NewCostWorker wires the cost estimation worker.
func NewCostWorker(pub events.Publisher) *CostWorker {
	return &CostWorker{pub: pub}
}

// Capabilities implements Worker.
func (w *CostWorker) Capabilities() Capabilities {
	return Capabilities{
		TaskType:       TaskEstimateCost,
		Priority:       10,
		RequiredInputs: []string{"population"},
	}
}

// Execute implements Worker.
func (w *CostWorker) Execute(ctx context.Context, req *Request) (*Result, error) {
	caps := w.Capabilities()
	if err := checkTask(req.TaskType, caps); err != nil {
		return nil, err
	}
	if err := checkItinerary(req); err != nil {
		return nil, err
	}
	it := req.Itinerary

	tier := it.Trip.Budget
	mult, ok := tierMultiplier[tier]
	if !ok {
		tier = models.BudgetMid
		mult = 1.0
	}
	currency := it.Settings.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	estimated := 0
	for _, day := range daysInScope(req) {
		for i := range day.Nodes {
			n := &day.Nodes[i]
			if n.Cost != nil || isPlaceholder(n) {
				continue
			}
			base, ok := costBase[n.Type]
			if !ok {
				continue
			}
			n.Cost = &models.Cost{
				Amount:    base * mult,
				Currency:  currency,
				PerPerson: n.Type != models.NodeHotel,
				Tier:      tier,
			}
			estimated++
		}
	}

	reportProgress(ctx, w.pub, req, "cost", 90, "cost",
		fmt.Sprintf("estimated costs for %d nodes", estimated))
	return &Result{}, nil
}
