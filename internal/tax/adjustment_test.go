package tax

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestComputeAdjustmentExclusive(t *testing.T) {
	amount := RateAmount{Amount: decimal.RequireFromString("0.20")}
	got, ok := ComputeAdjustment(amount, decimal.RequireFromString("100.00"), 2, false, RoundHalfUp)
	require.True(t, ok)
	require.True(t, got.Equal(decimal.RequireFromString("20.00")), "got %s", got)
}

func TestComputeAdjustmentInclusive(t *testing.T) {
	amount := RateAmount{Amount: decimal.RequireFromString("0.20")}
	got, ok := ComputeAdjustment(amount, decimal.RequireFromString("100.00"), 2, true, RoundHalfUp)
	require.True(t, ok)
	// 100 * 0.20 / 1.20
	require.True(t, got.Equal(decimal.RequireFromString("16.67")), "got %s", got)
}

func TestComputeAdjustmentInclusiveExclusiveConsistency(t *testing.T) {
	amount := RateAmount{Amount: decimal.RequireFromString("0.19")}
	base := decimal.RequireFromString("49.99")

	exclusive, ok := ComputeAdjustment(amount, base, 2, false, RoundNone)
	require.True(t, ok)
	inclusive, ok := ComputeAdjustment(amount, base, 2, true, RoundNone)
	require.True(t, ok)

	derived := exclusive.Div(decimalOne.Add(amount.Amount))
	diff := derived.Sub(inclusive).Abs()
	require.True(t, diff.LessThan(decimal.RequireFromString("0.0000000001")),
		"exclusive/(1+rate)=%s differs from inclusive=%s", derived, inclusive)
}

func TestComputeAdjustmentNoneRoundTrip(t *testing.T) {
	amount := RateAmount{Amount: decimal.RequireFromString("0.0725")}
	base := decimal.RequireFromString("123.45")
	first, ok := ComputeAdjustment(amount, base, 2, false, RoundNone)
	require.True(t, ok)
	second, ok := ComputeAdjustment(amount, base, 2, false, RoundNone)
	require.True(t, ok)
	require.True(t, first.Sub(second).IsZero(), "expected zero drift, got %s", first.Sub(second))
}

func TestComputeAdjustmentZeroRate(t *testing.T) {
	zero := RateAmount{Amount: decimal.Zero}

	// An inclusive zero has nothing to back out of the price.
	_, ok := ComputeAdjustment(zero, decimal.RequireFromString("100.00"), 2, true, RoundHalfUp)
	require.False(t, ok)

	// An explicit zero rate on an exclusive price keeps its informational line.
	got, ok := ComputeAdjustment(zero, decimal.RequireFromString("100.00"), 2, false, RoundHalfUp)
	require.True(t, ok)
	require.True(t, got.IsZero())
}
