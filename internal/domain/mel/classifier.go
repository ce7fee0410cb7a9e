package mel

import (
	"strings"

	"hsj_mel/internal/domain/entities"
)

// searchableText concatenates the free-text fields a pattern can match on.
func searchableText(rec entities.EquipmentRecord) string {
	return strings.ToLower(rec.Name + " " + rec.Model + " " + rec.Manufacturer)
}

// MatchesPatterns reports whether any pattern appears as a case-insensitive
// substring of the record's name/model/manufacturer text.
func MatchesPatterns(rec entities.EquipmentRecord, patterns []string) bool {
	if len(patterns) == 0 {
		return false
	}
	text := searchableText(rec)
	for _, p := range patterns {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		if strings.Contains(text, p) {
			return true
		}
	}
	return false
}

// Classify resolves the first catalog group whose patterns match the record.
//
// First match wins over catalog order; when catalogs overlap a record may
// plausibly fit several groups and callers must not assume exclusivity.
func Classify(rec entities.EquipmentRecord, catalog []entities.EquipmentGroup) (entities.EquipmentGroup, bool) {
	for _, g := range catalog {
		if MatchesPatterns(rec, g.Patterns) {
			return g, true
		}
	}
	return entities.EquipmentGroup{}, false
}

// IDSet is an O(1) membership set over equipment identifiers, used for
// custom group definitions.
type IDSet map[int]struct{}

// NewIDSet builds a membership set from an explicit identifier list.
func NewIDSet(ids []int) IDSet {
	s := make(IDSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Contains reports whether the equipment identifier belongs to the set.
func (s IDSet) Contains(id int) bool {
	_, ok := s[id]
	return ok
}
