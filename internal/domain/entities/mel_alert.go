package entities

import "time"

// MelAlertStatus is the alert lifecycle state.
//
// "resolvido" is terminal for a given alert row: if the same rule violates
// again later, the reconciler opens a new alert instead of reopening the
// resolved one, so history is preserved.

type MelAlertStatus string

const (
	MelAlertStatusAtivo     MelAlertStatus = "ativo"
	MelAlertStatusResolvido MelAlertStatus = "resolvido"
)

// MelAlert is the persisted record of a minimum-equipment violation.
//
// Storage model (DynamoDB):
//   - PK: id (uuid)
//   - GSI rule_key-index (PK: rule_key)
//   - GSI status-index (PK: status)
//
// Alerts are never physically deleted by the engine; resolution only flips
// the status and stamps ResolvedAt.

type MelAlert struct {
	ID         string         `json:"id"`
	RuleKey    string         `json:"rule_key"`
	SectorID   string         `json:"sector_id"`
	SectorName string         `json:"sector_name"`
	GroupKey   string         `json:"equipment_group_key"`
	GroupName  string         `json:"equipment_group_name"`

	Available   int `json:"available"`
	Total       int `json:"total"`
	Unavailable int `json:"unavailable"`
	Minimum     int `json:"minimum"`

	Status     MelAlertStatus `json:"status"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	ResolvedAt *time.Time     `json:"resolved_at,omitempty"`
}

// IsActive reports whether the alert is still open.
func (a MelAlert) IsActive() bool {
	return a.Status == MelAlertStatusAtivo
}
