package taxtype

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/bucefal91/commerce/internal/order"
	"github.com/bucefal91/commerce/internal/tax"
)

// DisplayLabels enumerates the supported display labels, keyed by machine
// name. GST covers Australia, New Zealand, Singapore, Hong Kong, India and
// Malaysia; consumption tax covers Japan.
var DisplayLabels = map[string]string{
	"tax":             "Tax",
	"vat":             "VAT",
	"gst":             "GST",
	"consumption_tax": "Consumption tax",
}

// customEpoch is the synthetic start date applied to configured rates.
// Custom rates carry a single amount without their own date history, so a
// start date is invented here.
const customEpoch = "2000-01-01"

// CustomRate is one configured rate row.
type CustomRate struct {
	Label  string
	Amount decimal.Decimal
}

// Custom is a single-zone tax type assembled from stored configuration.
// Instances are value objects constructed fresh per resolution.
type Custom struct {
	TypeID      string
	TypeLabel   string
	Display     string
	Rounding    tax.RoundingMode
	Inclusive   bool
	Rates       []CustomRate
	Territories []tax.CountryCode
}

// ID implements TaxType.
func (c Custom) ID() string { return c.TypeID }

// Label implements TaxType.
func (c Custom) Label() string { return c.TypeLabel }

// DisplayLabel implements TaxType. Unknown labels fall back to "tax".
func (c Custom) DisplayLabel() string {
	if _, ok := DisplayLabels[c.Display]; ok {
		return c.Display
	}
	return "tax"
}

// RoundingMode implements TaxType.
func (c Custom) RoundingMode() tax.RoundingMode { return c.Rounding }

// DisplayInclusive implements TaxType.
func (c Custom) DisplayInclusive() bool { return c.Inclusive }

// AppliesTo implements TaxType: the store's address belongs to the zone, or
// the store is registered to collect tax there.
func (c Custom) AppliesTo(store order.Store) bool {
	zones := c.Zones()
	if len(zones) == 0 {
		return false
	}
	return zones[0].AppliesToStore(store.Address, store.TaxRegistrations)
}

// Zones implements TaxType. The configured territories and rates form one
// zone; the first configured rate is the default.
func (c Custom) Zones() []tax.Zone {
	territories := make([]tax.Territory, 0, len(c.Territories))
	for _, country := range c.Territories {
		territories = append(territories, tax.Territory{Country: country})
	}
	rates := make([]tax.Rate, 0, len(c.Rates))
	for i, row := range c.Rates {
		rates = append(rates, tax.Rate{
			ID:      rateMachineName(row.Label),
			Label:   row.Label,
			Default: i == 0,
			Amounts: []tax.RateAmount{{Amount: row.Amount, StartDate: mustDate(customEpoch)}},
		})
	}
	return []tax.Zone{{
		ID:          "default",
		Label:       "Default",
		Territories: territories,
		Rates:       rates,
	}}
}

// Policy implements TaxType.
func (c Custom) Policy() tax.JurisdictionPolicy { return tax.SingleZonePolicy{} }

func rateMachineName(label string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(label)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '-', r == '_':
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "rate"
	}
	return b.String()
}
