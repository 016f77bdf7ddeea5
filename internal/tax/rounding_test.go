package tax

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestRoundModes(t *testing.T) {
	cases := []struct {
		name  string
		value string
		mode  RoundingMode
		want  string
	}{
		{"none keeps exact", "16.666666", RoundNone, "16.666666"},
		{"half up at tie", "0.125", RoundHalfUp, "0.13"},
		{"half up below tie", "0.124", RoundHalfUp, "0.12"},
		{"half down at tie", "0.125", RoundHalfDown, "0.12"},
		{"half down above tie", "0.1251", RoundHalfDown, "0.13"},
		{"half even rounds to even", "0.125", RoundHalfEven, "0.12"},
		{"half even rounds up to even", "0.135", RoundHalfEven, "0.14"},
		{"half odd rounds to odd", "0.125", RoundHalfOdd, "0.13"},
		{"half odd keeps odd", "0.135", RoundHalfOdd, "0.13"},
		{"negative half up", "-0.125", RoundHalfUp, "-0.13"},
		{"negative half down", "-0.125", RoundHalfDown, "-0.12"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Round(decimal.RequireFromString(tc.value), 2, tc.mode)
			require.True(t, got.Equal(decimal.RequireFromString(tc.want)),
				"Round(%s, %s) = %s, want %s", tc.value, tc.mode, got, tc.want)
		})
	}
}

func TestRoundZeroPlaces(t *testing.T) {
	// Currencies without minor units round at integer precision.
	got := Round(decimal.RequireFromString("104.895"), 0, RoundHalfUp)
	require.True(t, got.Equal(decimal.NewFromInt(105)), "got %s", got)
}

func TestParseRoundingMode(t *testing.T) {
	for _, name := range []string{"none", "half_up", "half_down", "half_even", "half_odd"} {
		mode, err := ParseRoundingMode(name)
		require.NoError(t, err)
		require.Equal(t, name, mode.String())
	}
	_, err := ParseRoundingMode("bankers")
	require.Error(t, err)
}
