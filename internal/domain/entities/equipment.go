package entities

import "strings"

// EquipmentStatus values observed in the Effort inventory feed.
//
// The feed reports free text; the constants below are the substrings the
// engine recognizes. Anything else is treated as an operational unit.
const (
	EquipmentStatusSucateado  = "sucateado"
	EquipmentStatusBaixado    = "baixado"
	EquipmentStatusEmprestado = "emprestado"
)

// UnavailableEquipmentStatuses flags a unit as out of service regardless of
// open work orders (scrapped / decommissioned / on loan).
var UnavailableEquipmentStatuses = []string{
	EquipmentStatusSucateado,
	EquipmentStatusBaixado,
	EquipmentStatusEmprestado,
}

// EquipmentRecord is an immutable snapshot of one inventory unit as returned
// by the Effort API. The engine only reads it; it is re-fetched per sweep.
//
// Tag is the site asset code ("HSJ-001") and may be empty. Name, Model,
// Manufacturer and Sector are free text typed by hospital staff.

type EquipmentRecord struct {
	ID           int    `json:"id"`
	Tag          string `json:"tag"`
	Name         string `json:"name"`
	Model        string `json:"model"`
	Manufacturer string `json:"manufacturer"`
	Sector       string `json:"sector"`
	Status       string `json:"status"`
}

// HasUnavailableStatus reports whether the record's free-text status matches
// one of the known out-of-service markers (case-insensitive substring).
func (r EquipmentRecord) HasUnavailableStatus() bool {
	status := strings.ToLower(strings.TrimSpace(r.Status))
	if status == "" {
		return false
	}
	for _, s := range UnavailableEquipmentStatuses {
		if strings.Contains(status, s) {
			return true
		}
	}
	return false
}

// NormalizedTag returns the asset tag in comparable form (trimmed,
// case-folded). Empty means the unit carries no reliable asset code.
func (r EquipmentRecord) NormalizedTag() string {
	return strings.ToLower(strings.TrimSpace(r.Tag))
}
