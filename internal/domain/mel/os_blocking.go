package mel

import "hsj_mel/internal/domain/entities"

// IsBlockedByOS decides whether an open/in-progress service order renders
// the unit unavailable.
//
// Linking is strictly by identity: the asset tag, then the equipment
// identifier. Name/model/manufacturer similarity is never consulted — those
// fields are shared by every unit of the same model, and linking through
// them would block distinct physical units that merely look alike. Orders
// from the summarized feed carry no identity fields and therefore can never
// block anything; that is a hard safety boundary, not a gap to approximate.
func IsBlockedByOS(rec entities.EquipmentRecord, orders []entities.ServiceOrder) bool {
	recTag := rec.NormalizedTag()

	for _, os := range orders {
		if !os.IsBlockingStatus() {
			continue
		}

		// Tag equality is the only fully reliable channel.
		if osTag := os.NormalizedTag(); osTag != "" && recTag != "" && osTag == recTag {
			return true
		}

		if os.EquipmentID != nil {
			if *os.EquipmentID == rec.ID {
				return true
			}
			// An order that names a different unit is conclusively ruled
			// out for this one.
			continue
		}
	}
	return false
}
