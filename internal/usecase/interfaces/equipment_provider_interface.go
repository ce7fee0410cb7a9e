package interfaces

import (
	"context"

	"hsj_mel/internal/domain/entities"
)

// IEquipmentProvider abstracts the upstream Effort API.
//
// ListEquipment materializes the full inventory (pagination is the
// provider's problem). The two service-order listings correspond to the two
// upstream feeds: the analytic feed carries tag/equipment-id identity, the
// summarized one does not. Degradation between them is decided by the
// snapshot loader, not here.
type IEquipmentProvider interface {
	ListEquipment(ctx context.Context) ([]entities.EquipmentRecord, error)
	ListServiceOrdersAnalytic(ctx context.Context) ([]entities.ServiceOrder, error)
	ListServiceOrdersSummarized(ctx context.Context) ([]entities.ServiceOrder, error)
}
