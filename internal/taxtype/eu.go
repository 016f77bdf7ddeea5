package taxtype

import (
	"time"

	"github.com/bucefal91/commerce/internal/order"
	"github.com/bucefal91/commerce/internal/tax"
)

// euCountries are the member states covered by the built-in VAT tables.
var euCountries = []tax.CountryCode{
	"AT", "BE", "BG", "CY", "CZ", "DE", "DK", "EE", "ES", "FI",
	"FR", "GB", "GR", "HR", "HU", "IE", "IT", "LT", "LU", "LV",
	"MT", "NL", "PL", "PT", "RO", "SE", "SI", "SK",
}

// euDigitalServicesFrom is the date from which digital services sold to EU
// customers must apply the destination VAT. An ebook sold to Germany needs
// German VAT applied from this date onward.
var euDigitalServicesFrom = time.Date(2015, time.January, 1, 0, 0, 0, 0, time.UTC)

// EU is the built-in European Union VAT tax type.
type EU struct{}

// ID implements TaxType.
func (EU) ID() string { return "eu" }

// Label implements TaxType.
func (EU) Label() string { return "European Union" }

// DisplayLabel implements TaxType.
func (EU) DisplayLabel() string { return "vat" }

// RoundingMode implements TaxType. VAT rounds the half up.
func (EU) RoundingMode() tax.RoundingMode { return tax.RoundHalfUp }

// DisplayInclusive implements TaxType. EU prices are displayed tax inclusive.
func (EU) DisplayInclusive() bool { return true }

// AppliesTo implements TaxType. The store must be in an EU country or
// registered to collect taxes there.
func (EU) AppliesTo(store order.Store) bool {
	for _, country := range euCountries {
		if store.Address.Country == country {
			return true
		}
		for _, reg := range store.TaxRegistrations {
			if reg == country {
				return true
			}
		}
	}
	return false
}

// Zones implements TaxType.
func (EU) Zones() []tax.Zone { return euZones() }

// Policy implements TaxType.
func (EU) Policy() tax.JurisdictionPolicy {
	ic := euIntraCommunityZone()
	return tax.CrossBorderPolicy{
		ReverseChargeZone:   &ic,
		DigitalServicesFrom: euDigitalServicesFrom,
	}
}
