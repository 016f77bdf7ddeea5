package tax

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func date(value string) time.Time {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return parsed
}

func TestRateAmountOnTransition(t *testing.T) {
	rate := Rate{
		ID:    "standard",
		Label: "Standard",
		Amounts: []RateAmount{
			{Amount: decimal.RequireFromString("0.20"), StartDate: date("2016-01-01"), EndDate: date("2016-12-31")},
			{Amount: decimal.RequireFromString("0.19"), StartDate: date("2017-01-01")},
		},
	}

	amount, ok := rate.AmountOn(date("2016-06-01"))
	if !ok || !amount.Amount.Equal(decimal.RequireFromString("0.20")) {
		t.Fatalf("expected 0.20 on 2016-06-01, got %v ok=%v", amount.Amount, ok)
	}
	amount, ok = rate.AmountOn(date("2017-03-01"))
	if !ok || !amount.Amount.Equal(decimal.RequireFromString("0.19")) {
		t.Fatalf("expected 0.19 on 2017-03-01, got %v ok=%v", amount.Amount, ok)
	}
	if _, ok := rate.AmountOn(date("2010-01-01")); ok {
		t.Fatal("expected no amount before the rate's introduction")
	}
}

func TestRateAmountEndDateExclusive(t *testing.T) {
	rate := Rate{
		Amounts: []RateAmount{
			{Amount: decimal.RequireFromString("0.20"), StartDate: date("2016-01-01"), EndDate: date("2016-12-31")},
		},
	}
	if _, ok := rate.AmountOn(date("2016-12-31")); ok {
		t.Fatal("expected the end date itself to fall outside the interval")
	}
	if _, ok := rate.AmountOn(date("2016-12-30")); !ok {
		t.Fatal("expected the day before the end date to resolve")
	}
}

func TestRateAmountOverlapLatestStartWins(t *testing.T) {
	rate := Rate{
		Amounts: []RateAmount{
			{Amount: decimal.RequireFromString("0.10"), StartDate: date("2010-01-01")},
			{Amount: decimal.RequireFromString("0.12"), StartDate: date("2015-01-01")},
		},
	}
	amount, ok := rate.AmountOn(date("2016-01-01"))
	if !ok || !amount.Amount.Equal(decimal.RequireFromString("0.12")) {
		t.Fatalf("expected the later start to win, got %v", amount.Amount)
	}
}

func TestRateAmountOverlapTieKeepsFirstDeclared(t *testing.T) {
	// Two entries with the same start date represent a corrected entry
	// followed by the original; the first declared wins.
	rate := Rate{
		Amounts: []RateAmount{
			{Amount: decimal.RequireFromString("0.21"), StartDate: date("2015-01-01")},
			{Amount: decimal.RequireFromString("0.20"), StartDate: date("2015-01-01")},
		},
	}
	amount, ok := rate.AmountOn(date("2016-01-01"))
	if !ok || !amount.Amount.Equal(decimal.RequireFromString("0.21")) {
		t.Fatalf("expected first declared amount to win the tie, got %v", amount.Amount)
	}
}

func TestZoneDefaultRate(t *testing.T) {
	zone := Zone{
		Rates: []Rate{
			{ID: "reduced"},
			{ID: "standard", Default: true},
		},
	}
	rate, ok := zone.DefaultRate()
	if !ok || rate.ID != "standard" {
		t.Fatalf("expected explicit default, got %q", rate.ID)
	}

	implicit := Zone{Rates: []Rate{{ID: "first"}, {ID: "second"}}}
	rate, ok = implicit.DefaultRate()
	if !ok || rate.ID != "first" {
		t.Fatalf("expected first rate as implicit default, got %q", rate.ID)
	}

	if _, ok := (Zone{}).DefaultRate(); ok {
		t.Fatal("expected no default rate for an empty zone")
	}
}
