package tax

import "testing"

func TestTerritoryCountryOnly(t *testing.T) {
	territory := Territory{Country: "DE"}
	if !territory.Matches(Address{Country: "DE", PostalCode: "10115"}) {
		t.Fatal("expected match for same country without postal clauses")
	}
	if territory.Matches(Address{Country: "FR", PostalCode: "10115"}) {
		t.Fatal("expected mismatch for different country")
	}
}

func TestTerritoryExcludedRangeAndLiteral(t *testing.T) {
	// Austria without Jungholz and Mittelberg.
	territory := Territory{Country: "AT", ExcludedPostalCodes: "6691, 6991:6993"}
	cases := []struct {
		postal string
		want   bool
	}{
		{"1010", true},
		{"6691", false},
		{"6991", false},
		{"6992", false},
		{"6993", false},
		{"6994", true},
	}
	for _, tc := range cases {
		got := territory.Matches(Address{Country: "AT", PostalCode: tc.postal})
		if got != tc.want {
			t.Fatalf("postal %s: expected %v, got %v", tc.postal, tc.want, got)
		}
	}
}

func TestTerritoryIncludedRegexp(t *testing.T) {
	// France (Corsica).
	territory := Territory{Country: "FR", IncludedPostalCodes: "/(20)[0-9]{3}/"}
	if !territory.Matches(Address{Country: "FR", PostalCode: "20090"}) {
		t.Fatal("expected Corsican postal code to match")
	}
	if territory.Matches(Address{Country: "FR", PostalCode: "75001"}) {
		t.Fatal("expected Paris postal code to miss the inclusion clause")
	}
}

func TestTerritoryExcludedRegexp(t *testing.T) {
	// Spain without Canary Islands, Ceuta and Melilla.
	territory := Territory{Country: "ES", ExcludedPostalCodes: "/(35|38|51|52)[0-9]{3}/"}
	if territory.Matches(Address{Country: "ES", PostalCode: "35001"}) {
		t.Fatal("expected Canary Islands postal code to be excluded")
	}
	if !territory.Matches(Address{Country: "ES", PostalCode: "28001"}) {
		t.Fatal("expected Madrid postal code to match")
	}
}

func TestTerritoryMalformedPatternIsNonMatch(t *testing.T) {
	territory := Territory{Country: "DE", IncludedPostalCodes: "/([0-9]/"}
	if territory.Matches(Address{Country: "DE", PostalCode: "10115"}) {
		t.Fatal("expected malformed inclusion pattern to reject every address")
	}
	excluded := Territory{Country: "DE", ExcludedPostalCodes: "/([0-9]/"}
	if !excluded.Matches(Address{Country: "DE", PostalCode: "10115"}) {
		t.Fatal("expected malformed exclusion pattern to exclude nothing")
	}
}

func TestTerritoryLexicographicRange(t *testing.T) {
	territory := Territory{Country: "GB", IncludedPostalCodes: "AB1:AB9"}
	if !territory.Matches(Address{Country: "GB", PostalCode: "AB5"}) {
		t.Fatal("expected lexicographic range to match")
	}
	if territory.Matches(Address{Country: "GB", PostalCode: "AC1"}) {
		t.Fatal("expected postal code outside lexicographic range to miss")
	}
}
