package tax

// Zone is a named tax jurisdiction composed of territories and rates.
// Zones are immutable value objects rebuilt per calculation pass.
type Zone struct {
	ID          string      `json:"id"`
	Label       string      `json:"label"`
	Territories []Territory `json:"territories"`
	Rates       []Rate      `json:"rates"`
}

// Matches reports whether any territory in the zone covers the address.
func (z Zone) Matches(addr Address) bool {
	for _, t := range z.Territories {
		if t.Matches(addr) {
			return true
		}
	}
	return false
}

// DefaultRate returns the zone's default rate. When no rate carries an
// explicit default flag the first rate is the default.
func (z Zone) DefaultRate() (Rate, bool) {
	for _, r := range z.Rates {
		if r.Default {
			return r, true
		}
	}
	if len(z.Rates) > 0 {
		return z.Rates[0], true
	}
	return Rate{}, false
}

// RegisteredIn reports whether the registration set covers any of the zone's
// territory countries.
func (z Zone) RegisteredIn(registrations []CountryCode) bool {
	for _, t := range z.Territories {
		for _, reg := range registrations {
			if t.Country == reg {
				return true
			}
		}
	}
	return false
}

// AppliesToStore reports whether a store may levy this zone's taxes: the
// store is either located in the zone or registered to collect tax there.
func (z Zone) AppliesToStore(storeAddress Address, registrations []CountryCode) bool {
	return z.Matches(storeAddress) || z.RegisteredIn(registrations)
}
