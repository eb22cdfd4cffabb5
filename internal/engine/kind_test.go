package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOutputKind(t *testing.T) {
	tests := map[string]OutputKind{
		"number":          KindNumber,
		"Ordinal":         KindOrdinal,
		"duration":        KindDuration,
		"datetime":        KindDatetime,
		"temperature":     KindTemperature,
		"amount-of-money": KindAmountOfMoney,
		"amount_of_money": KindAmountOfMoney,
		"AmountOfMoney":   KindAmountOfMoney,
		" percentage ":    KindPercentage,
	}
	for in, want := range tests {
		got, err := ParseOutputKind(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseOutputKind("distance")
	require.ErrorIs(t, err, ErrUnknownKind)
}

func TestParseOutputKinds_KeepsOrderAndDuplicates(t *testing.T) {
	kinds, err := ParseOutputKinds([]string{"number", "ordinal", "number"})
	require.NoError(t, err)
	assert.Equal(t, []OutputKind{KindNumber, KindOrdinal, KindNumber}, kinds)

	_, err = ParseOutputKinds([]string{"number", "bogus"})
	require.ErrorIs(t, err, ErrUnknownKind)
}

func TestAllOutputKinds(t *testing.T) {
	all := AllOutputKinds()
	require.Len(t, all, 7)
	assert.Equal(t, KindNumber, all[0])
	assert.Equal(t, KindPercentage, all[len(all)-1])

	// Callers get their own copy.
	all[0] = KindPercentage
	assert.Equal(t, KindNumber, AllOutputKinds()[0])

	for _, k := range all {
		assert.NotEqual(t, "none", k.String())
	}
	assert.Equal(t, "none", kindNone.String())
}
