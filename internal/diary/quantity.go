package diary

import (
	"fmt"
	"strings"
)

// QuantityKind tells how a meal item's amount relates to its reference serving.
type QuantityKind string

const (
	// QuantityWeight amounts are grams, nutrients are per 100g.
	QuantityWeight QuantityKind = "weight"
	// QuantityCount amounts are whole servings (pieces, cups, tablets).
	QuantityCount QuantityKind = "count"
)

// CountUnitTokens is the legacy mapping: a unit containing any of these is a count unit.
var CountUnitTokens = []string{"本", "個", "杯", "枚", "錠"}

// KindForUnit resolves the quantity kind of a free-form unit string.
// Unknown units are weight units.
func KindForUnit(unit string) QuantityKind {
	for _, token := range CountUnitTokens {
		if strings.Contains(unit, token) {
			return QuantityCount
		}
	}
	return QuantityWeight
}

func (k *QuantityKind) UnmarshalText(text []byte) error {
	switch v := QuantityKind(text); v {
	case "", QuantityWeight, QuantityCount:
		*k = v
		return nil
	default:
		return fmt.Errorf("unknown quantity kind: %s", text)
	}
}
