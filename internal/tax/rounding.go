package tax

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// RoundingMode selects the tie-break rule applied to the final adjustment
// amount at the currency's minor-unit precision. Sales taxes generally do not
// round at all, while VAT style taxes round the half up.
type RoundingMode int

const (
	// RoundNone keeps the exact amount.
	RoundNone RoundingMode = iota
	// RoundHalfUp rounds the half away from zero.
	RoundHalfUp
	// RoundHalfDown rounds the half toward zero.
	RoundHalfDown
	// RoundHalfEven rounds the half to the nearest even digit.
	RoundHalfEven
	// RoundHalfOdd rounds the half to the nearest odd digit.
	RoundHalfOdd
)

var roundingModeNames = map[RoundingMode]string{
	RoundNone:     "none",
	RoundHalfUp:   "half_up",
	RoundHalfDown: "half_down",
	RoundHalfEven: "half_even",
	RoundHalfOdd:  "half_odd",
}

// String returns the machine name of the rounding mode.
func (m RoundingMode) String() string {
	if name, ok := roundingModeNames[m]; ok {
		return name
	}
	return "none"
}

// ParseRoundingMode converts a machine name into a RoundingMode.
func ParseRoundingMode(value string) (RoundingMode, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	for mode, name := range roundingModeNames {
		if name == normalized {
			return mode, nil
		}
	}
	return RoundNone, fmt.Errorf("unknown rounding mode %q", value)
}

var (
	decimalOne  = decimal.NewFromInt(1)
	decimalTwo  = decimal.NewFromInt(2)
	decimalHalf = decimal.New(5, -1)
)

// Round rounds value to the given number of decimal places using the mode.
func Round(value decimal.Decimal, places int32, mode RoundingMode) decimal.Decimal {
	switch mode {
	case RoundHalfUp:
		return value.Round(places)
	case RoundHalfEven:
		return value.RoundBank(places)
	case RoundHalfDown, RoundHalfOdd:
		return roundHalfRule(value, places, mode)
	default:
		return value
	}
}

func roundHalfRule(value decimal.Decimal, places int32, mode RoundingMode) decimal.Decimal {
	negative := value.IsNegative()
	shifted := value.Abs().Shift(places)
	floor := shifted.Floor()
	frac := shifted.Sub(floor)

	var rounded decimal.Decimal
	switch frac.Cmp(decimalHalf) {
	case 1:
		rounded = floor.Add(decimalOne)
	case -1:
		rounded = floor
	default:
		if mode == RoundHalfDown {
			rounded = floor
		} else if floor.Mod(decimalTwo).IsZero() {
			// Half to odd: an even floor moves up to the odd neighbour.
			rounded = floor.Add(decimalOne)
		} else {
			rounded = floor
		}
	}
	rounded = rounded.Shift(-places)
	if negative {
		return rounded.Neg()
	}
	return rounded
}
