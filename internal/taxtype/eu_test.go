package taxtype

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/bucefal91/commerce/internal/order"
	"github.com/bucefal91/commerce/internal/tax"
)

func TestEUAppliesToStoreOrRegistration(t *testing.T) {
	eu := EU{}
	require.True(t, eu.AppliesTo(order.Store{Address: tax.Address{Country: "FR"}}))
	require.False(t, eu.AppliesTo(order.Store{Address: tax.Address{Country: "US"}}))
	require.True(t, eu.AppliesTo(order.Store{
		Address:          tax.Address{Country: "US"},
		TaxRegistrations: []tax.CountryCode{"DE"},
	}))
}

func TestEUZoneTableShape(t *testing.T) {
	zones := euZones()
	require.Len(t, zones, 30)

	seen := map[string]bool{}
	for _, zone := range zones {
		require.False(t, seen[zone.ID], "duplicate zone %s", zone.ID)
		seen[zone.ID] = true
		require.NotEmpty(t, zone.Territories, "zone %s has no territories", zone.ID)
		require.NotEmpty(t, zone.Rates, "zone %s has no rates", zone.ID)

		defaultRate, ok := zone.DefaultRate()
		require.True(t, ok, "zone %s has no default rate", zone.ID)
		require.NotEmpty(t, defaultRate.Amounts)
	}
	for _, id := range []string{"at", "de", "fr", "fr_h", "pt", "pt_30", "gr"} {
		require.True(t, seen[id], "missing zone %s", id)
	}
}

func TestEUHeligolandExcludedFromGermanZone(t *testing.T) {
	zones := euZones()
	var de tax.Zone
	for _, zone := range zones {
		if zone.ID == "de" {
			de = zone
		}
	}
	require.True(t, de.Matches(tax.Address{Country: "DE", PostalCode: "10115"}))
	require.False(t, de.Matches(tax.Address{Country: "DE", PostalCode: "27498"}))
	// Jungholz and Mittelberg are Austrian enclaves taxed as German territory
	require.True(t, de.Matches(tax.Address{Country: "AT", PostalCode: "6691"}))
	require.True(t, de.Matches(tax.Address{Country: "AT", PostalCode: "6992"}))
	require.False(t, de.Matches(tax.Address{Country: "AT", PostalCode: "1010"}))
}

func TestEUCorsicaResolvesToSpecialZone(t *testing.T) {
	zones := euZones()
	matched := tax.SingleZonePolicy{}

	resolved := matched.ResolveRates(tax.TransactionContext{
		CustomerAddress: tax.Address{Country: "FR", PostalCode: "20090"},
	}, zonesByID(zones, "fr_h"))
	require.Len(t, resolved, 1)
	require.Equal(t, "fr_h", resolved[0].Zone.ID)
}

func TestEURomanianStandardRateTransition(t *testing.T) {
	zones := euZones()
	var ro tax.Zone
	for _, zone := range zones {
		if zone.ID == "ro" {
			ro = zone
		}
	}
	standard, ok := ro.DefaultRate()
	require.True(t, ok)

	during2016, ok := standard.AmountOn(time.Date(2016, time.June, 1, 0, 0, 0, 0, time.UTC))
	require.True(t, ok)
	require.Equal(t, "0.2", during2016.Amount.String())

	during2017, ok := standard.AmountOn(time.Date(2017, time.June, 1, 0, 0, 0, 0, time.UTC))
	require.True(t, ok)
	require.Equal(t, "0.19", during2017.Amount.String())
}

func TestEUIntraCommunityZoneIsZeroRated(t *testing.T) {
	ic := euIntraCommunityZone()
	rate, ok := ic.DefaultRate()
	require.True(t, ok)
	amount, ok := rate.AmountOn(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC))
	require.True(t, ok)
	require.True(t, amount.Amount.IsZero())
}

func zonesByID(zones []tax.Zone, id string) []tax.Zone {
	for _, zone := range zones {
		if zone.ID == id {
			return []tax.Zone{zone}
		}
	}
	return nil
}
