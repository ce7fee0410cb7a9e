package response

import (
	"time"

	"hsj_mel/internal/domain/entities"
)

type MelRuleResponse struct {
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

func FromMelRule(r entities.SectorMelRule) MelRuleResponse {
	return MelRuleResponse{
		SectorID:        r.SectorID,
		SectorName:      r.SectorName,
		GroupKey:        r.GroupKey,
		GroupName:       r.GroupName,
		Definition:      r.Definition,
		MinimumQuantity: r.MinimumQuantity,
		Active:          r.Active,
		Justification:   r.Justification,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

func FromMelRules(rules []entities.SectorMelRule) []MelRuleResponse {
	out := make([]MelRuleResponse, 0, len(rules))
	for _, r := range rules {
		out = append(out, FromMelRule(r))
	}
	return out
}
