package entities

import "time"

// SectorMelRule is the configured minimum-equipment policy for one
// (sector, equipment group) pair.
//
// Storage model (DynamoDB):
//   - PK: rule_key = "<sector_id>#<group_key>"
//
// We purposely use the composite key as PK to guarantee at most one rule
// per (sectorId, equipmentGroupKey). This keeps the uniqueness invariant in
// the table itself instead of in application checks.
//
// Definition holds the serialized group-definition payload (see
// ParseGroupDefinition); empty means the built-in catalog patterns apply.

type SectorMelRule struct {
	SectorID        string    `json:"sector_id"`
	SectorName      string    `json:"sector_name"`
	GroupKey        string    `json:"equipment_group_key"`
	GroupName       string    `json:"equipment_group_name"`
	Definition      string    `json:"definition,omitempty"`
	MinimumQuantity int       `json:"minimum_quantity"`
	Active          bool      `json:"active"`
	Justification   string    `json:"justification,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// RuleKey builds the composite storage key for a (sector, group) pair.
func RuleKey(sectorID, groupKey string) string {
	return sectorID + "#" + groupKey
}

// Key returns the rule's composite storage key.
func (r SectorMelRule) Key() string {
	return RuleKey(r.SectorID, r.GroupKey)
}
