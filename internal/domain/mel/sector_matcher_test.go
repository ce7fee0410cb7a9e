package mel

import (
	"testing"

	"hsj_mel/internal/domain/entities"
)

func TestNormalizeSectorName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"  Centro  Cirúrgico ", "centro cirurgico"},
		{"UTI NEONATAL", "uti neonatal"},
		{"Emergência\tPediátrica", "emergencia pediatrica"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := NormalizeSectorName(tc.in); got != tc.want {
			t.Fatalf("normalize %q: expected %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestSectorMatcherMatches(t *testing.T) {
	m := NewSectorMatcher(nil)

	t.Run("exact after normalization", func(t *testing.T) {
		if !m.Matches("Centro Cirúrgico", "centro  cirurgico") {
			t.Fatalf("expected match")
		}
	})

	t.Run("short target requires exact equality", func(t *testing.T) {
		if m.Matches("CC", "CC - Centro Cirurgico") {
			t.Fatalf("short code must not match by containment")
		}
		if !m.Matches("CC", "cc") {
			t.Fatalf("expected exact short match")
		}
	})

	t.Run("record sector contains target", func(t *testing.T) {
		if !m.Matches("Centro Cirurgico", "CC - Centro Cirúrgico II") {
			t.Fatalf("expected containment match")
		}
	})

	t.Run("target contains record sector", func(t *testing.T) {
		if !m.Matches("UTI Adulto", "UTI") {
			t.Fatalf("expected containment match")
		}
	})

	t.Run("contained side shorter than 3 runes is rejected", func(t *testing.T) {
		if m.Matches("UTI Adulto II", "II") {
			t.Fatalf("two-rune sector must not match by containment")
		}
	})

	t.Run("word overlap tolerates reordering", func(t *testing.T) {
		if !m.Matches("Unidade Terapia Intensiva Neonatal", "Terapia Intensiva - Ala B") {
			t.Fatalf("expected word-overlap match")
		}
	})

	t.Run("single word hit is not enough", func(t *testing.T) {
		if m.Matches("Unidade Terapia Intensiva", "Unidade de Endoscopia") {
			t.Fatalf("did not expect match on one word")
		}
	})

	t.Run("unrelated sectors", func(t *testing.T) {
		if m.Matches("Centro Cirurgico", "Lavanderia") {
			t.Fatalf("did not expect match")
		}
	})

	t.Run("empty names never match", func(t *testing.T) {
		if m.Matches("", "UTI") || m.Matches("UTI", "") {
			t.Fatalf("empty side must not match")
		}
	})
}

type fakeMatchCache struct {
	entries map[string]bool
	hits    int
	sets    int
}

func newFakeMatchCache() *fakeMatchCache {
	return &fakeMatchCache{entries: map[string]bool{}}
}

func (f *fakeMatchCache) Get(key string) (bool, bool) {
	v, ok := f.entries[key]
	if ok {
		f.hits++
	}
	return v, ok
}

func (f *fakeMatchCache) Set(key string, matched bool) {
	f.sets++
	f.entries[key] = matched
}

func (f *fakeMatchCache) Invalidate() {
	f.entries = map[string]bool{}
}

func TestSectorMatcherCache(t *testing.T) {
	cache := newFakeMatchCache()
	m := NewSectorMatcher(cache)

	first := m.Matches("UTI Neonatal", "uti  neonatal")
	second := m.Matches("uti neonatal", "UTI Neonatal")

	if !first || !second {
		t.Fatalf("expected both lookups to match")
	}
	if cache.sets != 1 {
		t.Fatalf("expected a single cached decision, got %d", cache.sets)
	}
	if cache.hits != 1 {
		t.Fatalf("expected the second lookup to hit the cache, got %d hits", cache.hits)
	}
}

func TestFilterBySector(t *testing.T) {
	m := NewSectorMatcher(nil)
	recs := []entities.EquipmentRecord{
		{ID: 1, Sector: "UTI 1"},
		{ID: 2, Sector: "Centro Cirurgico"},
		{ID: 3, Sector: "uti 1"},
	}

	got := m.FilterBySector("UTI 1", recs)
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 3 {
		t.Fatalf("unexpected filter result: %+v", got)
	}
}
