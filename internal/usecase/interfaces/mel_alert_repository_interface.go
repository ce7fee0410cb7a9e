package interfaces

import (
	"context"
	"time"

	"hsj_mel/internal/domain/entities"
)

// IMelAlertRepository abstracts DynamoDB persistence for MelAlert.
//
// The engine never deletes alerts; Resolve flips the status and stamps the
// resolution time. GetActiveByRuleKey returns the zero value (empty ID)
// when the rule has no open alert.

type IMelAlertRepository interface {
	Create(ctx context.Context, a entities.MelAlert) (entities.MelAlert, error)
	UpdateCounts(ctx context.Context, id string, available, total, unavailable int) (entities.MelAlert, error)
	Resolve(ctx context.Context, id string, resolvedAt time.Time) (entities.MelAlert, error)
	GetActiveByRuleKey(ctx context.Context, ruleKey string) (entities.MelAlert, error)
	ListActive(ctx context.Context) ([]entities.MelAlert, error)
	List(ctx context.Context) ([]entities.MelAlert, error)
}
