package entities

import (
	"encoding/json"
	"errors"
	"strings"
)

var (
	ErrInvalidGroupDefinition = errors.New("invalid group definition")
)

// EquipmentGroup is a semantic equipment category recognized from free text.
//
// Patterns are case-insensitive substrings checked against the concatenation
// of an equipment record's name, model and manufacturer. Classification is
// first-match over the catalog order, not best-match.

type EquipmentGroup struct {
	Key      string   `json:"key"`
	Name     string   `json:"name"`
	Patterns []string `json:"patterns"`
}

// BuiltinGroups returns the built-in catalog, in classification order.
//
// Keys are stable and lowercase-hyphenated; they are what rules and alerts
// reference, so renaming a display name never breaks stored state.
func BuiltinGroups() []EquipmentGroup {
	return []EquipmentGroup{
		{Key: "monitor-multiparametro", Name: "Monitor Multiparâmetro", Patterns: []string{"monitor multiparametro", "monitor multiparâmetro", "monitor de sinais"}},
		{Key: "ventilador-pulmonar", Name: "Ventilador Pulmonar", Patterns: []string{"ventilador pulmonar", "ventilador mecanico", "ventilador mecânico", "respirador"}},
		{Key: "desfibrilador", Name: "Desfibrilador", Patterns: []string{"desfibrilador", "cardioversor", "dea"}},
		{Key: "bomba-infusao", Name: "Bomba de Infusão", Patterns: []string{"bomba de infusao", "bomba de infusão", "bomba infusora"}},
		{Key: "oximetro", Name: "Oxímetro de Pulso", Patterns: []string{"oximetro", "oxímetro"}},
		{Key: "eletrocardiografo", Name: "Eletrocardiógrafo", Patterns: []string{"eletrocardiografo", "eletrocardiógrafo", "ecg"}},
		{Key: "carro-anestesia", Name: "Carro de Anestesia", Patterns: []string{"anestesia"}},
		{Key: "incubadora", Name: "Incubadora Neonatal", Patterns: []string{"incubadora"}},
		{Key: "berco-aquecido", Name: "Berço Aquecido", Patterns: []string{"berco aquecido", "berço aquecido", "berco de calor", "berço de calor"}},
		{Key: "foco-cirurgico", Name: "Foco Cirúrgico", Patterns: []string{"foco cirurgico", "foco cirúrgico", "foco auxiliar"}},
		{Key: "aspirador", Name: "Aspirador de Secreção", Patterns: []string{"aspirador"}},
		{Key: "autoclave", Name: "Autoclave", Patterns: []string{"autoclave"}},
		{Key: "raio-x", Name: "Raio-X Móvel", Patterns: []string{"raio-x", "raio x", "raios-x", "raios x"}},
	}
}

// FindGroup resolves a catalog group by key.
func FindGroup(catalog []EquipmentGroup, key string) (EquipmentGroup, bool) {
	for _, g := range catalog {
		if g.Key == key {
			return g, true
		}
	}
	return EquipmentGroup{}, false
}

// GroupDefinitionType discriminates the two rule definition shapes.
type GroupDefinitionType string

const (
	GroupDefinitionPattern GroupDefinitionType = "pattern"
	GroupDefinitionCustom  GroupDefinitionType = "custom"
)

// GroupDefinition is the parsed form of a rule's stored definition payload.
//
// Two shapes are accepted:
//   - a plain pattern string ("ventilador;respirador"), overriding the
//     catalog patterns for that rule;
//   - a JSON object {"type":"custom","equipmentIds":[...]} selecting an
//     explicit set of equipment IDs. Custom membership takes absolute
//     precedence over pattern classification.

type GroupDefinition struct {
	Type         GroupDefinitionType
	Patterns     []string
	EquipmentIDs []int
}

// IsCustom reports whether the definition is an explicit ID set.
func (d GroupDefinition) IsCustom() bool {
	return d.Type == GroupDefinitionCustom
}

type customDefinitionPayload struct {
	Type         string        `json:"type"`
	EquipmentIDs []json.Number `json:"equipmentIds"`
}

// ParseGroupDefinition parses a stored definition payload.
//
// An empty payload is a valid pattern definition with no overrides (the
// catalog patterns apply). A payload that looks like JSON but does not
// decode into a valid custom set is an error; callers are expected to fall
// back to pattern classification and log.
func ParseGroupDefinition(raw string) (GroupDefinition, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return GroupDefinition{Type: GroupDefinitionPattern}, nil
	}

	if strings.HasPrefix(raw, "{") {
		var payload customDefinitionPayload
		if err := json.Unmarshal([]byte(raw), &payload); err != nil {
			return GroupDefinition{}, ErrInvalidGroupDefinition
		}
		if !strings.EqualFold(strings.TrimSpace(payload.Type), string(GroupDefinitionCustom)) {
			return GroupDefinition{}, ErrInvalidGroupDefinition
		}
		if len(payload.EquipmentIDs) == 0 {
			return GroupDefinition{}, ErrInvalidGroupDefinition
		}
		ids := make([]int, 0, len(payload.EquipmentIDs))
		for _, n := range payload.EquipmentIDs {
			// The admin UI historically saved IDs as numbers or numeric
			// strings; both coerce through json.Number.
			v, err := n.Int64()
			if err != nil {
				return GroupDefinition{}, ErrInvalidGroupDefinition
			}
			ids = append(ids, int(v))
		}
		return GroupDefinition{Type: GroupDefinitionCustom, EquipmentIDs: ids}, nil
	}

	patterns := make([]string, 0, 4)
	for _, p := range strings.FieldsFunc(raw, func(r rune) bool { return r == ';' || r == ',' }) {
		p = strings.TrimSpace(p)
		if p != "" {
			patterns = append(patterns, p)
		}
	}
	if len(patterns) == 0 {
		return GroupDefinition{Type: GroupDefinitionPattern}, nil
	}
	return GroupDefinition{Type: GroupDefinitionPattern, Patterns: patterns}, nil
}
