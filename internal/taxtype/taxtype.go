// Package taxtype hosts the tax-type variants applied to orders. Each
// variant owns its zones, rounding behaviour, and jurisdiction policy; the
// shared Apply routine walks order items and attaches adjustments.
package taxtype

import (
	"time"

	"github.com/bucefal91/commerce/internal/order"
	"github.com/bucefal91/commerce/internal/tax"
)

// TaxType is one configured source of tax obligations, either built in
// (the EU VAT tables) or assembled from stored configuration.
type TaxType interface {
	// ID identifies the tax type in adjustments and metrics.
	ID() string
	// Label is the administrative name of the tax type.
	Label() string
	// DisplayLabel identifies the applied tax in order summaries.
	DisplayLabel() string
	// RoundingMode rounds each item's tax amount.
	RoundingMode() tax.RoundingMode
	// DisplayInclusive reports whether taxes of this type are folded into
	// displayed prices.
	DisplayInclusive() bool
	// AppliesTo reports whether the store may levy taxes of this type.
	AppliesTo(store order.Store) bool
	// Zones returns the zones of this tax type, rebuilt per call.
	Zones() []tax.Zone
	// Policy selects the jurisdiction resolution behaviour.
	Policy() tax.JurisdictionPolicy
}

// OrderContext carries the per-order facts needed for resolution.
type OrderContext struct {
	Store             order.Store
	CustomerAddress   tax.Address
	CustomerTaxNumber string
	Date              time.Time
}

// Apply resolves and attaches adjustments for one tax type across all order
// items. At most one adjustment is produced per item: the first resolved rate
// with an active amount wins. It returns the number of adjustments emitted.
// A tax type that cannot resolve contributes nothing; order processing is
// never aborted from here.
func Apply(t TaxType, oc OrderContext, o *order.Order) int {
	if o == nil || !t.AppliesTo(oc.Store) {
		return 0
	}
	zones := t.Zones()
	places := order.MinorUnits(o.Currency)
	emitted := 0
	for _, item := range o.Items {
		tc := tax.TransactionContext{
			StoreAddress:       oc.Store.Address,
			CustomerAddress:    oc.CustomerAddress,
			Date:               oc.Date,
			StoreRegistrations: oc.Store.TaxRegistrations,
			CustomerTaxNumber:  oc.CustomerTaxNumber,
			Digital:            item.Digital,
		}
		resolved := t.Policy().ResolveRates(tc, zones)
		winner, amount, ok := firstActiveRate(resolved, oc.Date)
		if !ok {
			continue
		}
		value, ok := tax.ComputeAdjustment(amount, item.UnitPrice, places, t.DisplayInclusive(), t.RoundingMode())
		if !ok {
			continue
		}
		item.AddAdjustment(tax.Adjustment{
			Type:         "tax",
			Label:        t.DisplayLabel(),
			Amount:       value,
			Currency:     o.Currency,
			SourceRateID: t.ID() + "|" + winner.Zone.ID + "|" + winner.Rate.ID,
			Included:     t.DisplayInclusive(),
		})
		emitted++
	}
	return emitted
}

// firstActiveRate picks the single winning rate: the first resolved rate with
// an amount active on the date. Rates without an active amount are skipped
// rather than treated as zero.
func firstActiveRate(resolved []tax.ResolvedRate, date time.Time) (tax.ResolvedRate, tax.RateAmount, bool) {
	for _, rr := range resolved {
		if amount, ok := rr.Rate.AmountOn(date); ok {
			return rr, amount, true
		}
	}
	return tax.ResolvedRate{}, tax.RateAmount{}, false
}
