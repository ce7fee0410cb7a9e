package mel

import (
	"log"

	"hsj_mel/internal/domain/entities"
)

// Availability is the per-sector-per-group unit count.
//
// Available = Total - Unavailable by construction; all three are
// non-negative and a unit is never double-counted even when it is both
// status-flagged and blocked by an order.
type Availability struct {
	Total       int `json:"total"`
	Unavailable int `json:"unavailable"`
	Available   int `json:"available"`
}

// Calculator combines classification, sector matching and OS blocking into
// availability counts for a rule.

type Calculator struct {
	catalog []entities.EquipmentGroup
	matcher *SectorMatcher
}

// NewCalculator creates a calculator over a classification catalog.
func NewCalculator(catalog []entities.EquipmentGroup, matcher *SectorMatcher) *Calculator {
	return &Calculator{catalog: catalog, matcher: matcher}
}

// Compute evaluates a rule against the full equipment and service-order
// snapshots. ok is false when the group resolves to zero matched equipment
// ("no data" — callers decide whether that counts as a violation).
//
// A malformed custom definition is recoverable: it is logged and the rule
// degrades to pattern classification, per the error-handling policy.
func (c *Calculator) Compute(rule entities.SectorMelRule, equipment []entities.EquipmentRecord, orders []entities.ServiceOrder) (Availability, bool) {
	def, err := entities.ParseGroupDefinition(rule.Definition)
	if err != nil {
		log.Printf("[mel][calculator] malformed definition; falling back to catalog patterns sector_id=%s group_key=%s err=%v",
			rule.SectorID, rule.GroupKey, err)
		def = entities.GroupDefinition{Type: entities.GroupDefinitionPattern}
	}

	matched := c.resolveMembers(rule, def, equipment)
	if len(matched) == 0 {
		return Availability{}, false
	}

	unavailable := 0
	for _, rec := range matched {
		if rec.HasUnavailableStatus() || IsBlockedByOS(rec, orders) {
			unavailable++
		}
	}

	total := len(matched)
	return Availability{
		Total:       total,
		Unavailable: unavailable,
		Available:   total - unavailable,
	}, true
}

// resolveMembers resolves group membership for a rule.
//
// Custom definitions filter the entire snapshot by identifier — a curated
// set may legitimately span sectors. Pattern rules resolve the sector first
// and then classify inside it.
func (c *Calculator) resolveMembers(rule entities.SectorMelRule, def entities.GroupDefinition, equipment []entities.EquipmentRecord) []entities.EquipmentRecord {
	if def.IsCustom() {
		set := NewIDSet(def.EquipmentIDs)
		matched := make([]entities.EquipmentRecord, 0, len(def.EquipmentIDs))
		for _, rec := range equipment {
			if set.Contains(rec.ID) {
				matched = append(matched, rec)
			}
		}
		return matched
	}

	sectorRecs := c.matcher.FilterBySector(rule.SectorName, equipment)

	matched := make([]entities.EquipmentRecord, 0, len(sectorRecs))
	for _, rec := range sectorRecs {
		if c.isGroupMember(rec, rule.GroupKey, def.Patterns) {
			matched = append(matched, rec)
		}
	}
	return matched
}

// isGroupMember checks pattern membership. Rule-level patterns override the
// catalog; otherwise the record must classify into the rule's group under
// first-match semantics.
func (c *Calculator) isGroupMember(rec entities.EquipmentRecord, groupKey string, overridePatterns []string) bool {
	if len(overridePatterns) > 0 {
		return MatchesPatterns(rec, overridePatterns)
	}
	g, ok := Classify(rec, c.catalog)
	return ok && g.Key == groupKey
}
