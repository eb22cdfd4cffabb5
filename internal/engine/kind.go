package engine

import (
	"fmt"
	"strings"
)

// OutputKind identifies a category of entity the engine can emit.
type OutputKind int

// The zero value is reserved for helper symbols that never reach the output.
const (
	kindNone OutputKind = iota
	KindNumber
	KindOrdinal
	KindDuration
	KindDatetime
	KindTemperature
	KindAmountOfMoney
	KindPercentage
)

var kindNames = map[OutputKind]string{
	KindNumber:        "number",
	KindOrdinal:       "ordinal",
	KindDuration:      "duration",
	KindDatetime:      "datetime",
	KindTemperature:   "temperature",
	KindAmountOfMoney: "amount-of-money",
	KindPercentage:    "percentage",
}

// allKinds is the canonical order returned by AllOutputKinds.
var allKinds = []OutputKind{
	KindNumber,
	KindOrdinal,
	KindDuration,
	KindDatetime,
	KindTemperature,
	KindAmountOfMoney,
	KindPercentage,
}

// AllOutputKinds returns every output kind in canonical order.
// The returned slice is a copy and may be modified by the caller.
func AllOutputKinds() []OutputKind {
	out := make([]OutputKind, len(allKinds))
	copy(out, allKinds)
	return out
}

// ParseOutputKind parses a kind name. Matching is case-insensitive and accepts
// underscores or hyphens between words ("amount_of_money", "AmountOfMoney").
func ParseOutputKind(s string) (OutputKind, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer("_", "", "-", "", " ", "").Replace(norm)
	for _, k := range allKinds {
		if strings.ReplaceAll(kindNames[k], "-", "") == norm {
			return k, nil
		}
	}
	return kindNone, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// ParseOutputKinds parses a list of kind names, preserving order and duplicates.
func ParseOutputKinds(names []string) ([]OutputKind, error) {
	kinds := make([]OutputKind, 0, len(names))
	for _, name := range names {
		k, err := ParseOutputKind(name)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}

// String implements fmt.Stringer.
func (k OutputKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "none"
}
