package request

import (
	"strings"

	"hsj_mel/internal/usecase"
)

// MelRuleCreateRequest is the payload for creating a sector MEL rule.
//
// `definition` is the serialized group definition: empty (catalog
// patterns), a pattern string ("ventilador;respirador"), or a JSON custom
// set ({"type":"custom","equipmentIds":[1,2]}).
type MelRuleCreateRequest struct {
	SectorID        string `json:"sector_id" binding:"required"`
	SectorName      string `json:"sector_name" binding:"required"`
	GroupKey        string `json:"equipment_group_key" binding:"required"`
	GroupName       string `json:"equipment_group_name"`
	Definition      string `json:"definition"`
	MinimumQuantity *int   `json:"minimum_quantity" binding:"required"`
	Justification   string `json:"justification"`
}

// ResolveInput translates the payload into the usecase command.
func (r MelRuleCreateRequest) ResolveInput() usecase.MelRuleInput {
	minimum := 0
	if r.MinimumQuantity != nil {
		minimum = *r.MinimumQuantity
	}
	return usecase.MelRuleInput{
		SectorID:        strings.TrimSpace(r.SectorID),
		SectorName:      strings.TrimSpace(r.SectorName),
		GroupKey:        strings.TrimSpace(r.GroupKey),
		GroupName:       strings.TrimSpace(r.GroupName),
		Definition:      strings.TrimSpace(r.Definition),
		MinimumQuantity: minimum,
		Justification:   strings.TrimSpace(r.Justification),
	}
}

// MelRuleUpdateRequest carries partial rule updates; absent fields keep
// their stored values.
type MelRuleUpdateRequest struct {
	SectorName      *string `json:"sector_name"`
	GroupName       *string `json:"equipment_group_name"`
	Definition      *string `json:"definition"`
	MinimumQuantity *int    `json:"minimum_quantity"`
	Active          *bool   `json:"active"`
	Justification   *string `json:"justification"`
}

// ResolveInput translates the payload into the usecase command.
func (r MelRuleUpdateRequest) ResolveInput() usecase.MelRuleUpdateInput {
	return usecase.MelRuleUpdateInput{
		SectorName:      r.SectorName,
		GroupName:       r.GroupName,
		Definition:      r.Definition,
		MinimumQuantity: r.MinimumQuantity,
		Active:          r.Active,
		Justification:   r.Justification,
	}
}

// IsEmpty reports whether the update carries no field at all.
func (r MelRuleUpdateRequest) IsEmpty() bool {
	return r.SectorName == nil && r.GroupName == nil && r.Definition == nil &&
		r.MinimumQuantity == nil && r.Active == nil && r.Justification == nil
}
