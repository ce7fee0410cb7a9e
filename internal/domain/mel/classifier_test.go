package mel

import (
	"testing"

	"hsj_mel/internal/domain/entities"
)

func TestMatchesPatterns(t *testing.T) {
	rec := entities.EquipmentRecord{
		Name:         "Monitor Multiparâmetro",
		Model:        "Efficia CM120",
		Manufacturer: "Philips",
	}

	t.Run("matches on name, case insensitive", func(t *testing.T) {
		if !MatchesPatterns(rec, []string{"MONITOR MULTIPARÂMETRO"}) {
			t.Fatalf("expected match on name")
		}
	})

	t.Run("matches on model", func(t *testing.T) {
		if !MatchesPatterns(rec, []string{"cm120"}) {
			t.Fatalf("expected match on model")
		}
	})

	t.Run("matches on manufacturer", func(t *testing.T) {
		if !MatchesPatterns(rec, []string{"philips"}) {
			t.Fatalf("expected match on manufacturer")
		}
	})

	t.Run("no match", func(t *testing.T) {
		if MatchesPatterns(rec, []string{"ventilador"}) {
			t.Fatalf("did not expect match")
		}
	})

	t.Run("empty and blank patterns never match", func(t *testing.T) {
		if MatchesPatterns(rec, nil) {
			t.Fatalf("nil patterns must not match")
		}
		if MatchesPatterns(rec, []string{"", "  "}) {
			t.Fatalf("blank patterns must not match")
		}
	})
}

func TestClassify(t *testing.T) {
	catalog := entities.BuiltinGroups()

	t.Run("classifies into catalog group", func(t *testing.T) {
		rec := entities.EquipmentRecord{Name: "Ventilador Pulmonar Servo-i"}
		g, ok := Classify(rec, catalog)
		if !ok || g.Key != "ventilador-pulmonar" {
			t.Fatalf("expected ventilador-pulmonar, got %q ok=%v", g.Key, ok)
		}
	})

	t.Run("first match wins over catalog order", func(t *testing.T) {
		// "monitor multiparametro" appears before "desfibrilador" in the
		// catalog; a record matching both lands in the earlier group.
		rec := entities.EquipmentRecord{Name: "Monitor Multiparametro com Desfibrilador"}
		g, ok := Classify(rec, catalog)
		if !ok || g.Key != "monitor-multiparametro" {
			t.Fatalf("expected monitor-multiparametro, got %q ok=%v", g.Key, ok)
		}
	})

	t.Run("no group for unknown equipment", func(t *testing.T) {
		rec := entities.EquipmentRecord{Name: "Cadeira de Rodas"}
		if _, ok := Classify(rec, catalog); ok {
			t.Fatalf("did not expect classification")
		}
	})
}

func TestIDSet(t *testing.T) {
	s := NewIDSet([]int{1, 2, 3})
	if !s.Contains(2) {
		t.Fatalf("expected 2 in set")
	}
	if s.Contains(99) {
		t.Fatalf("did not expect 99 in set")
	}
}
