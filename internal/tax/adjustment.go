package tax

import "github.com/shopspring/decimal"

// Adjustment is the monetary tax line appended to an order item. It is
// created once per qualifying item and never mutated afterwards.
type Adjustment struct {
	Type         string          `json:"type"`
	Label        string          `json:"label"`
	Amount       decimal.Decimal `json:"amount"`
	Currency     string          `json:"currency"`
	SourceRateID string          `json:"source_rate_id"`
	// Included reports whether the amount is already folded into the
	// displayed price rather than added on top.
	Included bool `json:"included"`
}

// ComputeAdjustment turns a resolved rate amount and base price into the
// rounded tax portion. In tax-inclusive mode the tax already contained in the
// price is backed out proportionally. The bool result is false when no
// adjustment should be emitted: a zero amount folded into an inclusive price
// has nothing to show, while an explicit zero rate on an exclusive price
// still yields its informational zero line.
func ComputeAdjustment(amount RateAmount, basePrice decimal.Decimal, places int32, displayInclusive bool, mode RoundingMode) (decimal.Decimal, bool) {
	if amount.Amount.IsZero() && displayInclusive {
		return decimal.Zero, false
	}
	adjustment := basePrice.Mul(amount.Amount)
	if displayInclusive {
		adjustment = adjustment.Div(decimalOne.Add(amount.Amount))
	}
	return Round(adjustment, places, mode), true
}
