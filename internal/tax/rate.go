package tax

import (
	"time"

	"github.com/shopspring/decimal"
)

// RateAmount is one fixed percentage valid over [StartDate, EndDate).
// A zero EndDate means the amount is open-ended.
type RateAmount struct {
	Amount    decimal.Decimal `json:"amount"`
	StartDate time.Time       `json:"start_date"`
	EndDate   time.Time       `json:"end_date,omitempty"`
}

// Active reports whether the amount's interval contains the date.
func (a RateAmount) Active(date time.Time) bool {
	if a.StartDate.After(date) {
		return false
	}
	if !a.EndDate.IsZero() && !date.Before(a.EndDate) {
		return false
	}
	return true
}

// Rate is a named tax rate with a history of percentage amounts over time.
// Amounts keep declaration order and are not assumed to be date-sorted.
type Rate struct {
	ID      string       `json:"id"`
	Label   string       `json:"label"`
	Default bool         `json:"default,omitempty"`
	Amounts []RateAmount `json:"amounts"`
}

// AmountOn resolves the amount valid on the given date. Among amounts whose
// interval contains the date, the latest start date wins; ties keep the first
// declared entry, which represents a correction over the original. A miss
// means the rate does not apply on that date, which is distinct from a
// recorded zero-percent amount.
func (r Rate) AmountOn(date time.Time) (RateAmount, bool) {
	var best RateAmount
	found := false
	for _, a := range r.Amounts {
		if !a.Active(date) {
			continue
		}
		if !found || a.StartDate.After(best.StartDate) {
			best = a
			found = true
		}
	}
	return best, found
}
