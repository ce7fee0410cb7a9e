package usecase

import (
	"context"
	"log"

	"hsj_mel/internal/domain/entities"
	"hsj_mel/internal/usecase/interfaces"
)

// Snapshot is the per-sweep read-only view of the upstream data. It is
// fetched once and shared across all rule evaluations.
type Snapshot struct {
	Equipment     []entities.EquipmentRecord
	ServiceOrders []entities.ServiceOrder
	OrdersSource  entities.ServiceOrderSource
	// Degraded is set when the analytic feed was unavailable and the engine
	// fell back to the summarized feed (losing tag-based linking) or to an
	// empty order list.
	Degraded bool
}

// loadSnapshot materializes the equipment and service-order snapshots.
//
// Equipment is mandatory: without it any reconciliation would wrongly
// resolve every alert, so a fetch failure aborts the triggering request
// and leaves previously-computed alerts untouched.
//
// Service orders degrade instead of failing: analytic feed first, then the
// summarized feed (flagged, since it cannot block any unit), then zero
// orders. Units then count as available unless status-flagged.
func loadSnapshot(ctx context.Context, provider interfaces.IEquipmentProvider) (*Snapshot, error) {
	equipment, err := provider.ListEquipment(ctx)
	if err != nil {
		log.Printf("[mel][snapshot] equipment fetch failed err=%v", err)
		return nil, err
	}

	snap := &Snapshot{Equipment: equipment, OrdersSource: entities.ServiceOrderSourceAnalytic}

	orders, err := provider.ListServiceOrdersAnalytic(ctx)
	if err == nil {
		snap.ServiceOrders = orders
		return snap, nil
	}
	log.Printf("[mel][snapshot] analytic OS fetch failed; falling back to summarized feed err=%v", err)

	orders, err = provider.ListServiceOrdersSummarized(ctx)
	if err == nil {
		snap.ServiceOrders = orders
		snap.OrdersSource = entities.ServiceOrderSourceSummarized
		snap.Degraded = true
		log.Printf("[mel][snapshot] running degraded: summarized feed has no tag/equipment-id linking")
		return snap, nil
	}
	log.Printf("[mel][snapshot] summarized OS fetch failed; proceeding with zero service orders err=%v", err)

	snap.ServiceOrders = nil
	snap.OrdersSource = entities.ServiceOrderSourceSummarized
	snap.Degraded = true
	return snap, nil
}
