package entities

import "strings"

// ServiceOrderSource tells which Effort feed an order came from.
//
// The summarized feed lacks the tag/equipment-id identity fields, so orders
// sourced from it can never be linked to a specific unit. The discriminant
// is resolved once at ingestion instead of re-guessed at each comparison.
type ServiceOrderSource string

const (
	ServiceOrderSourceAnalytic   ServiceOrderSource = "analytic"
	ServiceOrderSourceSummarized ServiceOrderSource = "summarized"
)

// Service order statuses that keep a unit blocked.
const (
	OSStatusAberta      = "aberta"
	OSStatusEmAndamento = "em_andamento"
)

// ServiceOrder is one maintenance work order (OS), normalized at the Effort
// boundary. Tag and EquipmentID are only populated for analytic orders;
// EquipmentID is nil when the feed carried no usable identifier.

type ServiceOrder struct {
	ID          string             `json:"id"`
	Status      string             `json:"status"`
	Tag         string             `json:"tag,omitempty"`
	EquipmentID *int               `json:"equipment_id,omitempty"`
	Source      ServiceOrderSource `json:"source"`
}

// IsBlockingStatus reports whether the order's free-text status marks it as
// open or in progress (case-insensitive substring).
func (o ServiceOrder) IsBlockingStatus() bool {
	status := strings.ToLower(strings.TrimSpace(o.Status))
	if status == "" {
		return false
	}
	return strings.Contains(status, OSStatusAberta) || strings.Contains(status, OSStatusEmAndamento)
}

// NormalizedTag returns the order's asset tag in comparable form.
func (o ServiceOrder) NormalizedTag() string {
	return strings.ToLower(strings.TrimSpace(o.Tag))
}

// HasIdentity reports whether the order carries at least one field capable
// of linking it to a specific physical unit.
func (o ServiceOrder) HasIdentity() bool {
	return o.NormalizedTag() != "" || o.EquipmentID != nil
}
