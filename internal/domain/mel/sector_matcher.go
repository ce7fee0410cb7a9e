package mel

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"hsj_mel/internal/domain/entities"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// MatchCache memoizes sector-name match decisions.
//
// The cache is owned by the caller and handed into the matcher; rule edits
// invalidate it explicitly instead of relying on TTL expiry alone. Keys are
// "<normalized target>|<normalized record sector>", so entries stay valid
// across snapshot refreshes.
type MatchCache interface {
	Get(key string) (matched bool, ok bool)
	Set(key string, matched bool)
	Invalidate()
}

// SectorMatcher resolves which equipment records belong to an
// administrative sector, tolerating the free-text naming drift between the
// rule store and the Effort inventory ("Centro Cirúrgico" vs
// "CC - Centro Cirurgico II").

type SectorMatcher struct {
	cache MatchCache
}

// NewSectorMatcher creates a matcher. cache may be nil.
func NewSectorMatcher(cache MatchCache) *SectorMatcher {
	return &SectorMatcher{cache: cache}
}

var diacriticStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeSectorName case-folds, strips diacritics and collapses
// whitespace so that "UTI  Neonatal" and "uti neonatal" compare equal.
func NormalizeSectorName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if out, _, err := transform.String(diacriticStripper, s); err == nil {
		s = out
	}
	return strings.Join(strings.Fields(s), " ")
}

// Matches reports whether an equipment record's sector field is considered
// equivalent to the target sector name.
func (m *SectorMatcher) Matches(target, recordSector string) bool {
	nt := NormalizeSectorName(target)
	ns := NormalizeSectorName(recordSector)

	key := nt + "|" + ns
	if m.cache != nil {
		if matched, ok := m.cache.Get(key); ok {
			return matched
		}
	}

	matched := matchNormalized(nt, ns)
	if m.cache != nil {
		m.cache.Set(key, matched)
	}
	return matched
}

// FilterBySector returns the records whose sector field matches the target.
//
// When sector names are prefixes of each other ("UTI" vs "UTI 2") the
// containment rule can match records of both; that ambiguity is inherited
// from the original matching policy and intentionally not tie-broken here.
func (m *SectorMatcher) FilterBySector(target string, recs []entities.EquipmentRecord) []entities.EquipmentRecord {
	matched := make([]entities.EquipmentRecord, 0, len(recs))
	for _, rec := range recs {
		if m.Matches(target, rec.Sector) {
			matched = append(matched, rec)
		}
	}
	return matched
}

// matchNormalized applies the match policy over normalized names:
//  1. targets shorter than 3 runes require exact equality (short codes like
//     "cc" would otherwise match almost everything by containment);
//  2. exact equality;
//  3. containment either way, with the contained string at least 3 runes;
//  4. at least 2 of the target's words (length >= 3) appearing in the
//     record's sector, tolerating reordering and partial names.
func matchNormalized(target, sector string) bool {
	if target == "" || sector == "" {
		return false
	}

	if utf8.RuneCountInString(target) < 3 {
		return target == sector
	}

	if target == sector {
		return true
	}

	if utf8.RuneCountInString(sector) >= 3 && strings.Contains(target, sector) {
		return true
	}
	if strings.Contains(sector, target) {
		return true
	}

	words := make([]string, 0, 4)
	for _, w := range strings.Fields(target) {
		if utf8.RuneCountInString(w) >= 3 {
			words = append(words, w)
		}
	}
	if len(words) < 2 {
		return false
	}
	hits := 0
	for _, w := range words {
		if strings.Contains(sector, w) {
			hits++
		}
	}
	return hits >= 2
}
