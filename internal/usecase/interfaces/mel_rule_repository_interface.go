package interfaces

import (
	"context"
	"hsj_mel/internal/domain/entities"
)

// IMelRuleRepository abstracts DynamoDB persistence for SectorMelRule.
//
// Lookups return the zero value (empty SectorID) when no rule exists for
// the key; callers translate that into their own not-found errors.

type IMelRuleRepository interface {
	Create(ctx context.Context, r entities.SectorMelRule) (entities.SectorMelRule, error)
	GetByKey(ctx context.Context, sectorID, groupKey string) (entities.SectorMelRule, error)
	List(ctx context.Context) ([]entities.SectorMelRule, error)
	ListActive(ctx context.Context) ([]entities.SectorMelRule, error)
	Update(ctx context.Context, r entities.SectorMelRule) (entities.SectorMelRule, error)
	Delete(ctx context.Context, sectorID, groupKey string) error
}
