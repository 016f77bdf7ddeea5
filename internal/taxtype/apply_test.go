package taxtype

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/bucefal91/commerce/internal/order"
	"github.com/bucefal91/commerce/internal/tax"
)

func serbianVAT() Custom {
	return Custom{
		TypeID:    "rs_vat",
		TypeLabel: "Serbia VAT",
		Display:   "vat",
		Rounding:  tax.RoundHalfUp,
		Inclusive: true,
		Rates: []CustomRate{
			{Label: "Standard", Amount: decimal.RequireFromString("0.2")},
			{Label: "Reduced", Amount: decimal.RequireFromString("0.1")},
		},
		Territories: []tax.CountryCode{"RS"},
	}
}

func march(day int) time.Time {
	return time.Date(2024, time.March, day, 0, 0, 0, 0, time.UTC)
}

func TestApplyCustomDomestic(t *testing.T) {
	vat := serbianVAT()
	o := &order.Order{
		Currency: "RSD",
		Date:     march(1),
		Items:    []*order.Item{{UnitPrice: decimal.RequireFromString("120.00"), Quantity: 1}},
	}
	oc := OrderContext{
		Store:           order.Store{Address: tax.Address{Country: "RS"}},
		CustomerAddress: tax.Address{Country: "RS"},
		Date:            march(1),
	}

	emitted := Apply(vat, oc, o)
	require.Equal(t, 1, emitted)

	adjustments := o.Items[0].Adjustments()
	require.Len(t, adjustments, 1)
	require.Equal(t, "vat", adjustments[0].Label)
	require.True(t, adjustments[0].Included)
	require.Equal(t, "rs_vat|default|standard", adjustments[0].SourceRateID)
	// 120 * 0.2 / 1.2
	require.Equal(t, "20", adjustments[0].Amount.String())
}

func TestApplyCustomSkipsForeignCustomer(t *testing.T) {
	vat := serbianVAT()
	o := &order.Order{
		Currency: "RSD",
		Date:     march(1),
		Items:    []*order.Item{{UnitPrice: decimal.RequireFromString("120.00"), Quantity: 1}},
	}
	oc := OrderContext{
		Store:           order.Store{Address: tax.Address{Country: "RS"}},
		CustomerAddress: tax.Address{Country: "HU"},
		Date:            march(1),
	}

	require.Equal(t, 0, Apply(vat, oc, o))
	require.Empty(t, o.Items[0].Adjustments())
}

func TestApplyZeroRateExclusiveEmitsZeroLine(t *testing.T) {
	salesTax := Custom{
		TypeID:      "exempt",
		TypeLabel:   "Exempt sales tax",
		Display:     "tax",
		Rounding:    tax.RoundNone,
		Inclusive:   false,
		Rates:       []CustomRate{{Label: "Zero", Amount: decimal.Zero}},
		Territories: []tax.CountryCode{"US"},
	}
	o := &order.Order{
		Currency: "USD",
		Date:     march(1),
		Items:    []*order.Item{{UnitPrice: decimal.RequireFromString("50.00"), Quantity: 1}},
	}
	oc := OrderContext{
		Store:           order.Store{Address: tax.Address{Country: "US"}},
		CustomerAddress: tax.Address{Country: "US"},
		Date:            march(1),
	}

	require.Equal(t, 1, Apply(salesTax, oc, o))
	adjustments := o.Items[0].Adjustments()
	require.Len(t, adjustments, 1)
	require.True(t, adjustments[0].Amount.IsZero())
	require.False(t, adjustments[0].Included)
}

func TestApplyEUDigitalDestination(t *testing.T) {
	// digital download sold from France to a German consumer picks up
	// German VAT under the destination rule
	o := &order.Order{
		Currency: "EUR",
		Date:     march(1),
		Items:    []*order.Item{{UnitPrice: decimal.RequireFromString("10.00"), Quantity: 1, Digital: true}},
	}
	oc := OrderContext{
		Store:           order.Store{Address: tax.Address{Country: "FR"}},
		CustomerAddress: tax.Address{Country: "DE"},
		Date:            march(1),
	}

	require.Equal(t, 1, Apply(EU{}, oc, o))
	adjustments := o.Items[0].Adjustments()
	require.Len(t, adjustments, 1)
	require.Equal(t, "eu|de|standard", adjustments[0].SourceRateID)
}

type failingLoader struct{}

func (failingLoader) EnabledTypes(context.Context) ([]TaxType, error) {
	return nil, errors.New("database offline")
}

type staticLoader struct{ types []TaxType }

func (l staticLoader) EnabledTypes(context.Context) ([]TaxType, error) {
	return l.types, nil
}

func TestEngineTypesDegradeToBuiltins(t *testing.T) {
	engine := Engine{Builtin: []TaxType{EU{}}, Loader: failingLoader{}, Logger: zerolog.Nop()}
	types := engine.Types(context.Background())
	require.Len(t, types, 1)
	require.Equal(t, "eu", types[0].ID())
}

func TestEngineAppliesBuiltinAndCustomTypes(t *testing.T) {
	engine := Engine{
		Builtin: []TaxType{EU{}},
		Loader:  staticLoader{types: []TaxType{serbianVAT()}},
		Logger:  zerolog.Nop(),
	}
	o := &order.Order{
		Currency: "RSD",
		Date:     march(1),
		Items:    []*order.Item{{UnitPrice: decimal.RequireFromString("120.00"), Quantity: 1}},
	}
	oc := OrderContext{
		Store:           order.Store{Address: tax.Address{Country: "RS"}},
		CustomerAddress: tax.Address{Country: "RS"},
		Date:            march(1),
	}

	require.Equal(t, 1, engine.ApplyAll(context.Background(), oc, o))
	require.Len(t, o.Items[0].Adjustments(), 1)
}
