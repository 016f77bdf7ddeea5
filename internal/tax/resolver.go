package tax

import "time"

// ResolvedRate pairs a rate with the zone it was drawn from.
type ResolvedRate struct {
	Zone Zone
	Rate Rate
}

// JurisdictionPolicy determines which zones' rates govern a transaction.
// Implementations must be pure: identical context and zone set always produce
// identical output.
type JurisdictionPolicy interface {
	ResolveRates(tc TransactionContext, zones []Zone) []ResolvedRate
}

// SingleZonePolicy serves tax types that define exactly one zone. Resolution
// degenerates to a direct applicability check against the zone, and the
// default rate is used unconditionally.
type SingleZonePolicy struct{}

// ResolveRates implements JurisdictionPolicy.
func (SingleZonePolicy) ResolveRates(tc TransactionContext, zones []Zone) []ResolvedRate {
	if len(zones) == 0 {
		return nil
	}
	zone := zones[0]
	if !zone.Matches(tc.CustomerAddress) {
		return nil
	}
	return defaultRates([]Zone{zone})
}

// CrossBorderPolicy implements EU-style cross-border VAT resolution:
// origin taxation for physical goods, destination taxation for digital
// services, reverse charge for cross-border B2B supplies, and
// registration-threshold overrides.
type CrossBorderPolicy struct {
	// ReverseChargeZone carries the distinguished zero rate applied to
	// intra-community B2B supplies. The produced adjustment is informational;
	// the remittance obligation shifts to the customer.
	ReverseChargeZone *Zone
	// DigitalServicesFrom is the date from which digital services switch to
	// destination taxation. Transactions dated earlier are taxed as physical
	// supplies.
	DigitalServicesFrom time.Time
}

// ResolveRates implements JurisdictionPolicy.
func (p CrossBorderPolicy) ResolveRates(tc TransactionContext, zones []Zone) []ResolvedRate {
	customerZones := zonesMatching(zones, tc.CustomerAddress)
	if len(customerZones) == 0 {
		// The customer is outside every zone of this tax type.
		return nil
	}
	storeZones := zonesMatching(zones, tc.StoreAddress)
	registrationZones := registrationOnlyZones(zones, tc)
	digital := tc.Digital && !tc.Date.Before(p.DigitalServicesFrom)

	switch {
	case len(storeZones) == 0 && len(registrationZones) > 0:
		// The store has no physical presence but is registered to collect
		// tax. That registration covers B2C digital services only.
		if digital && tc.CustomerTaxNumber == "" {
			return defaultRates(customerZones)
		}
		return nil
	case tc.CustomerTaxNumber != "" && tc.CustomerAddress.Country != tc.StoreAddress.Country:
		// Cross-border B2B supply: reverse charge.
		if p.ReverseChargeZone == nil {
			return nil
		}
		return defaultRates([]Zone{*p.ReverseChargeZone})
	case digital:
		return defaultRates(customerZones)
	default:
		// Physical goods are taxed at origin unless the store is registered
		// in the customer's zone, which means the distance-selling threshold
		// was crossed and destination tax is due.
		for _, cz := range customerZones {
			if cz.RegisteredIn(tc.StoreRegistrations) {
				return defaultRates(customerZones)
			}
		}
		return defaultRates(storeZones)
	}
}

func zonesMatching(zones []Zone, addr Address) []Zone {
	var out []Zone
	for _, z := range zones {
		if z.Matches(addr) {
			out = append(out, z)
		}
	}
	return out
}

// registrationOnlyZones returns zones where the store holds a registration
// without being geographically present.
func registrationOnlyZones(zones []Zone, tc TransactionContext) []Zone {
	var out []Zone
	for _, z := range zones {
		if z.RegisteredIn(tc.StoreRegistrations) && !z.Matches(tc.StoreAddress) {
			out = append(out, z)
		}
	}
	return out
}

func defaultRates(zones []Zone) []ResolvedRate {
	out := make([]ResolvedRate, 0, len(zones))
	for _, z := range zones {
		if rate, ok := z.DefaultRate(); ok {
			out = append(out, ResolvedRate{Zone: z, Rate: rate})
		}
	}
	return out
}
