package mel

import (
	"testing"

	"hsj_mel/internal/domain/entities"
)

func newTestCalculator() *Calculator {
	return NewCalculator(entities.BuiltinGroups(), NewSectorMatcher(nil))
}

func TestCalculatorCompute(t *testing.T) {
	calc := newTestCalculator()

	equipment := []entities.EquipmentRecord{
		{ID: 1, Tag: "HSJ-001", Name: "Ventilador Pulmonar", Sector: "UTI 1", Status: "ativo"},
		{ID: 2, Tag: "HSJ-002", Name: "Ventilador Pulmonar", Sector: "UTI 1", Status: "ativo"},
		{ID: 3, Tag: "HSJ-003", Name: "Ventilador Pulmonar", Sector: "UTI 1", Status: "sucateado"},
		{ID: 4, Tag: "HSJ-004", Name: "Ventilador Pulmonar", Sector: "UTI 2", Status: "ativo"},
		{ID: 5, Tag: "HSJ-005", Name: "Monitor Multiparametro", Sector: "UTI 1", Status: "ativo"},
	}

	rule := entities.SectorMelRule{
		SectorID:        "uti-1",
		SectorName:      "UTI 1",
		GroupKey:        "ventilador-pulmonar",
		MinimumQuantity: 2,
		Active:          true,
	}

	t.Run("counts only the sector's group members", func(t *testing.T) {
		avail, ok := calc.Compute(rule, equipment, nil)
		if !ok {
			t.Fatalf("expected data")
		}
		if avail.Total != 3 || avail.Unavailable != 1 || avail.Available != 2 {
			t.Fatalf("unexpected availability: %+v", avail)
		}
	})

	t.Run("open order blocks a unit", func(t *testing.T) {
		orders := []entities.ServiceOrder{
			{ID: "900", Status: "aberta", Tag: "HSJ-001", Source: entities.ServiceOrderSourceAnalytic},
		}
		avail, ok := calc.Compute(rule, equipment, orders)
		if !ok {
			t.Fatalf("expected data")
		}
		if avail.Unavailable != 2 || avail.Available != 1 {
			t.Fatalf("unexpected availability: %+v", avail)
		}
	})

	t.Run("status-flagged and blocked unit counts once", func(t *testing.T) {
		orders := []entities.ServiceOrder{
			{ID: "900", Status: "aberta", Tag: "HSJ-003", Source: entities.ServiceOrderSourceAnalytic},
		}
		avail, ok := calc.Compute(rule, equipment, orders)
		if !ok {
			t.Fatalf("expected data")
		}
		if avail.Total != 3 || avail.Unavailable != 1 || avail.Available != 2 {
			t.Fatalf("unit double-counted: %+v", avail)
		}
	})

	t.Run("zero matched equipment reports no data", func(t *testing.T) {
		r := rule
		r.GroupKey = "autoclave"
		avail, ok := calc.Compute(r, equipment, nil)
		if ok {
			t.Fatalf("expected no data, got %+v", avail)
		}
		if avail.Total != 0 || avail.Available != 0 {
			t.Fatalf("expected zero counts, got %+v", avail)
		}
	})

	t.Run("custom definition spans sectors", func(t *testing.T) {
		r := rule
		r.Definition = `{"type":"custom","equipmentIds":[1,4,5]}`
		avail, ok := calc.Compute(r, equipment, nil)
		if !ok {
			t.Fatalf("expected data")
		}
		// IDs 1 (UTI 1), 4 (UTI 2) and 5 (another group) all count: a
		// curated set overrides both sector and pattern membership.
		if avail.Total != 3 || avail.Available != 3 {
			t.Fatalf("unexpected availability: %+v", avail)
		}
	})

	t.Run("pattern override replaces catalog patterns", func(t *testing.T) {
		r := rule
		r.Definition = "monitor multiparametro"
		avail, ok := calc.Compute(r, equipment, nil)
		if !ok {
			t.Fatalf("expected data")
		}
		if avail.Total != 1 {
			t.Fatalf("expected only the monitor, got %+v", avail)
		}
	})

	t.Run("malformed definition falls back to catalog patterns", func(t *testing.T) {
		r := rule
		r.Definition = `{"type":"custom","equipmentIds":}`
		avail, ok := calc.Compute(r, equipment, nil)
		if !ok {
			t.Fatalf("expected fallback to catalog patterns")
		}
		if avail.Total != 3 {
			t.Fatalf("unexpected availability after fallback: %+v", avail)
		}
	})
}

func TestCalculatorComputeAvailableIsDerived(t *testing.T) {
	calc := newTestCalculator()

	equipment := []entities.EquipmentRecord{
		{ID: 1, Name: "Desfibrilador", Sector: "Emergencia", Status: "baixado"},
		{ID: 2, Name: "Desfibrilador", Sector: "Emergencia", Status: "emprestado"},
	}
	rule := entities.SectorMelRule{
		SectorID:   "emg",
		SectorName: "Emergencia",
		GroupKey:   "desfibrilador",
		Active:     true,
	}

	avail, ok := calc.Compute(rule, equipment, nil)
	if !ok {
		t.Fatalf("expected data")
	}
	if avail.Available != avail.Total-avail.Unavailable {
		t.Fatalf("available must equal total minus unavailable: %+v", avail)
	}
	if avail.Available != 0 {
		t.Fatalf("expected all units unavailable: %+v", avail)
	}
}
