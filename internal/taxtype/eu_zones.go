package taxtype

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/bucefal91/commerce/internal/tax"
)

func mustDate(value string) time.Time {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return parsed
}

func amount(value, start string) tax.RateAmount {
	return tax.RateAmount{Amount: decimal.RequireFromString(value), StartDate: mustDate(start)}
}

func amountUntil(value, start, end string) tax.RateAmount {
	return tax.RateAmount{Amount: decimal.RequireFromString(value), StartDate: mustDate(start), EndDate: mustDate(end)}
}

// euIntraCommunityZone carries the distinguished zero rate applied to
// cross-border B2B supplies. It has no territories of its own; the resolver
// selects it directly.
func euIntraCommunityZone() tax.Zone {
	return tax.Zone{
		ID:    "eu_ic",
		Label: "Intra-Community Supply",
		Rates: []tax.Rate{{
			ID:      "ic",
			Label:   "Intra-Community Supply",
			Default: true,
			Amounts: []tax.RateAmount{amount("0", "1993-01-01")},
		}},
	}
}

// euZones builds the VAT zones of the EU member states. The tables are static
// configuration data; zones are rebuilt per call so callers may treat them as
// private copies.
func euZones() []tax.Zone {
	return []tax.Zone{
		{
			ID:    "at",
			Label: "Austria",
			Territories: []tax.Territory{
				// Austria without Jungholz and Mittelberg.
				{Country: "AT", ExcludedPostalCodes: "6691, 6991:6993"},
			},
			Rates: []tax.Rate{
				{ID: "standard", Label: "Standard", Default: true, Amounts: []tax.RateAmount{amount("0.2", "1995-01-01")}},
				{ID: "intermediate", Label: "Intermediate", Amounts: []tax.RateAmount{amount("0.13", "2016-01-01")}},
				{ID: "reduced", Label: "Reduced", Amounts: []tax.RateAmount{amount("0.1", "1995-01-01")}},
			},
		},
		{
			ID:          "be",
			Label:       "Belgium",
			Territories: []tax.Territory{{Country: "BE"}},
			Rates: []tax.Rate{
				{ID: "standard", Label: "Standard", Default: true, Amounts: []tax.RateAmount{amount("0.21", "1996-01-01")}},
				{ID: "intermediate", Label: "Intermediate", Amounts: []tax.RateAmount{amount("0.12", "1992-04-01")}},
				{ID: "reduced", Label: "Reduced", Amounts: []tax.RateAmount{amount("0.06", "1971-01-01")}},
				{ID: "zero", Label: "Zero", Amounts: []tax.RateAmount{amount("0", "1971-01-01")}},
			},
		},
		{
			ID:          "bg",
			Label:       "Bulgaria",
			Territories: []tax.Territory{{Country: "BG"}},
			Rates: []tax.Rate{
				{ID: "standard", Label: "Standard", Default: true, Amounts: []tax.RateAmount{amount("0.2", "2007-01-01")}},
				{ID: "reduced", Label: "Reduced", Amounts: []tax.RateAmount{amount("0.09", "2011-04-01")}},
			},
		},
		{
			ID:          "cy",
			Label:       "Cyprus",
			Territories: []tax.Territory{{Country: "CY"}},
			Rates: []tax.Rate{
				{ID: "standard", Label: "Standard", Default: true, Amounts: []tax.RateAmount{amount("0.19", "2014-01-13")}},
				{ID: "intermediate", Label: "Intermediate", Amounts: []tax.RateAmount{amount("0.09", "2014-01-13")}},
				{ID: "reduced", Label: "Reduced", Amounts: []tax.RateAmount{amount("0.05", "2004-05-01")}},
			},
		},
		{
			ID:          "cz",
			Label:       "Czech Republic",
			Territories: []tax.Territory{{Country: "CZ"}},
			Rates: []tax.Rate{
				{ID: "standard", Label: "Standard", Default: true, Amounts: []tax.RateAmount{amount("0.21", "2013-01-01")}},
				{ID: "reduced", Label: "Reduced", Amounts: []tax.RateAmount{amount("0.15", "2013-01-01")}},
				{ID: "super_reduced", Label: "Super Reduced", Amounts: []tax.RateAmount{amount("0.1", "2015-01-01")}},
				{ID: "zero", Label: "Zero", Amounts: []tax.RateAmount{amount("0", "2004-05-01")}},
			},
		},
		{
			ID:    "de",
			Label: "Germany",
			Territories: []tax.Territory{
				// Germany without Heligoland and Buesingen.
				{Country: "DE", ExcludedPostalCodes: "27498, 78266"},
				// Austria (Jungholz and Mittelberg).
				{Country: "AT", IncludedPostalCodes: "6691, 6991:6993"},
			},
			Rates: []tax.Rate{
				{ID: "standard", Label: "Standard", Default: true, Amounts: []tax.RateAmount{amount("0.19", "2007-01-01")}},
				{ID: "reduced", Label: "Reduced", Amounts: []tax.RateAmount{amount("0.07", "1983-07-01")}},
			},
		},
		{
			ID:          "dk",
			Label:       "Denmark",
			Territories: []tax.Territory{{Country: "DK"}},
			Rates: []tax.Rate{
				{ID: "standard", Label: "Standard", Default: true, Amounts: []tax.RateAmount{amount("0.25", "1992-01-01")}},
				{ID: "zero", Label: "Zero", Amounts: []tax.RateAmount{amount("0", "1973-01-01")}},
			},
		},
		{
			ID:          "ee",
			Label:       "Estonia",
			Territories: []tax.Territory{{Country: "EE"}},
			Rates: []tax.Rate{
				{ID: "standard", Label: "Standard", Default: true, Amounts: []tax.RateAmount{amount("0.2", "2009-07-01")}},
				{ID: "reduced", Label: "Reduced", Amounts: []tax.RateAmount{amount("0.09", "2009-01-01")}},
			},
		},
		{
			ID:    "es",
			Label: "Spain",
			Territories: []tax.Territory{
				// Spain without Canary Islands, Ceuta and Melilla.
				{Country: "ES", ExcludedPostalCodes: "/(35|38|51|52)[0-9]{3}/"},
			},
			Rates: []tax.Rate{
				{ID: "standard", Label: "Standard", Default: true, Amounts: []tax.RateAmount{amount("0.21", "2012-09-01")}},
				{ID: "reduced", Label: "Reduced", Amounts: []tax.RateAmount{amount("0.1", "2012-09-01")}},
				{ID: "super_reduced", Label: "Super Reduced", Amounts: []tax.RateAmount{amount("0.04", "1995-01-01")}},
			},
		},
		{
			ID:    "fi",
			Label: "Finland",
			Territories: []tax.Territory{
				// Finland without the Aland Islands.
				{Country: "FI", ExcludedPostalCodes: "22000:22999"},
			},
			Rates: []tax.Rate{
				{ID: "standard", Label: "Standard", Default: true, Amounts: []tax.RateAmount{amount("0.24", "2013-01-01")}},
				{ID: "intermediate", Label: "Intermediate", Amounts: []tax.RateAmount{amount("0.14", "2013-01-01")}},
				{ID: "reduced", Label: "Reduced", Amounts: []tax.RateAmount{amount("0.1", "2013-01-01")}},
			},
		},
		{
			ID:    "fr",
			Label: "France",
			Territories: []tax.Territory{
				// France without Corsica.
				{Country: "FR", ExcludedPostalCodes: "/(20)[0-9]{3}/"},
				{Country: "MC"},
			},
			Rates: []tax.Rate{
				{ID: "standard", Label: "Standard", Default: true, Amounts: []tax.RateAmount{amount("0.2", "2014-01-01")}},
				{ID: "intermediate", Label: "Intermediate", Amounts: []tax.RateAmount{amount("0.1", "2014-01-01")}},
				{ID: "reduced", Label: "Reduced", Amounts: []tax.RateAmount{amount("0.055", "1982-07-01")}},
				{ID: "super_reduced", Label: "Super Reduced", Amounts: []tax.RateAmount{amount("0.021", "1986-07-01")}},
			},
		},
		{
			ID:          "fr_h",
			Label:       "France (Corsica)",
			Territories: []tax.Territory{{Country: "FR", IncludedPostalCodes: "/(20)[0-9]{3}/"}},
			Rates: []tax.Rate{
				{ID: "standard", Label: "Standard", Default: true, Amounts: []tax.RateAmount{amount("0.2", "2014-01-01")}},
				{ID: "special", Label: "Special", Amounts: []tax.RateAmount{amount("0.1", "2014-01-01")}},
				{ID: "reduced", Label: "Reduced", Amounts: []tax.RateAmount{amount("0.021", "1997-09-01")}},
				{ID: "super_reduced", Label: "Super Reduced", Amounts: []tax.RateAmount{amount("0.009", "1972-04-01")}},
			},
		},
		{
			ID:          "gb",
			Label:       "Great Britain",
			Territories: []tax.Territory{{Country: "GB"}, {Country: "IM"}},
			Rates: []tax.Rate{
				{ID: "standard", Label: "Standard", Default: true, Amounts: []tax.RateAmount{amount("0.2", "2011-01-04")}},
				{ID: "reduced", Label: "Reduced", Amounts: []tax.RateAmount{amount("0.05", "1997-09-01")}},
				{ID: "zero", Label: "Zero", Amounts: []tax.RateAmount{amount("0", "1973-01-01")}},
			},
		},
		{
			ID:    "gr",
			Label: "Greece",
			Territories: []tax.Territory{
				// Greece without Thassos, Samothrace, Skiros, the Northern
				// Sporades, Lesbos, Chios, the Cyclades and the Dodecanese.
				{Country: "GR", ExcludedPostalCodes: "/640 ?04|680 ?02|340 ?07|((370|811|821|840|851) ?[0-9]{2})/"},
			},
			Rates: []tax.Rate{
				{ID: "standard", Label: "Standard", Default: true, Amounts: []tax.RateAmount{amount("0.23", "2010-07-01")}},
				{ID: "intermediate", Label: "Intermediate", Amounts: []tax.RateAmount{amount("0.13", "2011-01-01")}},
				{ID: "reduced", Label: "Reduced", Amounts: []tax.RateAmount{amount("0.06", "2015-07-01")}},
			},
		},
		{
			ID:          "hr",
			Label:       "Croatia",
			Territories: []tax.Territory{{Country: "HR"}},
			Rates: []tax.Rate{
				{ID: "standard", Label: "Standard", Default: true, Amounts: []tax.RateAmount{amount("0.25", "2013-07-01")}},
				{ID: "reduced", Label: "Reduced", Amounts: []tax.RateAmount{amount("0.13", "2014-01-01")}},
				{ID: "super_reduced", Label: "Super Reduced", Amounts: []tax.RateAmount{amount("0.05", "2014-01-01")}},
				{ID: "zero", Label: "Zero", Amounts: []tax.RateAmount{amount("0", "2013-07-01")}},
			},
		},
		{
			ID:          "hu",
			Label:       "Hungary",
			Territories: []tax.Territory{{Country: "HU"}},
			Rates: []tax.Rate{
				{ID: "standard", Label: "Standard", Default: true, Amounts: []tax.RateAmount{amount("0.27", "2012-01-01")}},
				{ID: "intermediate", Label: "Intermediate", Amounts: []tax.RateAmount{amount("0.18", "2009-07-01")}},
				{ID: "reduced", Label: "Reduced", Amounts: []tax.RateAmount{amount("0.05", "2004-05-01")}},
			},
		},
		{
			ID:          "ie",
			Label:       "Ireland",
			Territories: []tax.Territory{{Country: "IE"}},
			Rates: []tax.Rate{
				{ID: "standard", Label: "Standard", Default: true, Amounts: []tax.RateAmount{amount("0.23", "2012-01-01")}},
				{ID: "reduced", Label: "Reduced", Amounts: []tax.RateAmount{amount("0.135", "2003-01-01")}},
				{ID: "second_reduced", Label: "Second Reduced", Amounts: []tax.RateAmount{amount("0.09", "2011-07-01")}},
				{ID: "super_reduced", Label: "Super Reduced", Amounts: []tax.RateAmount{amount("0.048", "2005-01-01")}},
				{ID: "zero", Label: "Zero", Amounts: []tax.RateAmount{amount("0", "1972-04-01")}},
			},
		},
		{
			ID:    "it",
			Label: "Italy",
			Territories: []tax.Territory{
				// Italy without Livigno, Campione d'Italia and Lake Lugano.
				{Country: "IT", ExcludedPostalCodes: "23030, 22060"},
			},
			Rates: []tax.Rate{
				{ID: "standard", Label: "Standard", Default: true, Amounts: []tax.RateAmount{amount("0.22", "2013-10-01")}},
				{ID: "reduced", Label: "Reduced", Amounts: []tax.RateAmount{amount("0.1", "1995-02-24")}},
				{ID: "super_reduced", Label: "Super Reduced", Amounts: []tax.RateAmount{amount("0.04", "1989-01-01")}},
			},
		},
		{
			ID:          "lt",
			Label:       "Lithuania",
			Territories: []tax.Territory{{Country: "LT"}},
			Rates: []tax.Rate{
				{ID: "standard", Label: "Standard", Default: true, Amounts: []tax.RateAmount{amount("0.21", "2009-09-01")}},
				{ID: "intermediate", Label: "Intermediate", Amounts: []tax.RateAmount{amount("0.09", "2004-05-01")}},
				{ID: "reduced", Label: "Reduced", Amounts: []tax.RateAmount{amount("0.05", "2004-05-01")}},
			},
		},
		{
			ID:          "lu",
			Label:       "Luxembourg",
			Territories: []tax.Territory{{Country: "LU"}},
			Rates: []tax.Rate{
				{ID: "standard", Label: "Standard", Default: true, Amounts: []tax.RateAmount{amount("0.17", "2015-01-01")}},
				{ID: "intermediate", Label: "Intermediate", Amounts: []tax.RateAmount{amount("0.14", "2015-01-01")}},
				{ID: "reduced", Label: "Reduced", Amounts: []tax.RateAmount{amount("0.08", "2015-01-01")}},
				{ID: "super_reduced", Label: "Super Reduced", Amounts: []tax.RateAmount{amount("0.03", "1983-07-01")}},
			},
		},
		{
			ID:          "lv",
			Label:       "Latvia",
			Territories: []tax.Territory{{Country: "LV"}},
			Rates: []tax.Rate{
				{ID: "standard", Label: "Standard", Default: true, Amounts: []tax.RateAmount{amount("0.21", "2012-07-01")}},
				{ID: "reduced", Label: "Reduced", Amounts: []tax.RateAmount{amount("0.12", "2011-01-01")}},
			},
		},
		{
			ID:          "mt",
			Label:       "Malta",
			Territories: []tax.Territory{{Country: "MT"}},
			Rates: []tax.Rate{
				{ID: "standard", Label: "Standard", Default: true, Amounts: []tax.RateAmount{amount("0.18", "2004-05-01")}},
				{ID: "intermediate", Label: "Intermediate", Amounts: []tax.RateAmount{amount("0.07", "2011-01-01")}},
				{ID: "reduced", Label: "Reduced", Amounts: []tax.RateAmount{amount("0.05", "2004-05-01")}},
			},
		},
		{
			ID:          "nl",
			Label:       "Netherlands",
			Territories: []tax.Territory{{Country: "NL"}},
			Rates: []tax.Rate{
				{ID: "standard", Label: "Standard", Default: true, Amounts: []tax.RateAmount{amount("0.21", "2012-10-01")}},
				{ID: "reduced", Label: "Reduced", Amounts: []tax.RateAmount{amount("0.06", "1986-10-01")}},
			},
		},
		{
			ID:          "pl",
			Label:       "Poland",
			Territories: []tax.Territory{{Country: "PL"}},
			Rates: []tax.Rate{
				{ID: "standard", Label: "Standard", Default: true, Amounts: []tax.RateAmount{amount("0.22", "2016-01-01")}},
				{ID: "intermediate", Label: "Intermediate", Amounts: []tax.RateAmount{amount("0.08", "2011-01-01")}},
				{ID: "reduced", Label: "Reduced", Amounts: []tax.RateAmount{amount("0.05", "2011-01-01")}},
			},
		},
		{
			ID:    "pt",
			Label: "Portugal",
			Territories: []tax.Territory{
				// Portugal without the Azores and Madeira.
				{Country: "PT", ExcludedPostalCodes: "/(9)[0-9]{3}-[0-9]{3}/"},
			},
			Rates: []tax.Rate{
				{ID: "standard", Label: "Standard", Default: true, Amounts: []tax.RateAmount{amount("0.23", "2011-01-01")}},
				{ID: "intermediate", Label: "Intermediate", Amounts: []tax.RateAmount{amount("0.13", "2010-07-01")}},
				{ID: "reduced", Label: "Reduced", Amounts: []tax.RateAmount{amount("0.06", "2010-07-01")}},
			},
		},
		{
			ID:          "pt_30",
			Label:       "Portugal (Madeira)",
			Territories: []tax.Territory{{Country: "PT", IncludedPostalCodes: "/(9)[5-9][0-9]{2}-[0-9]{3}/"}},
			Rates: []tax.Rate{
				{ID: "standard", Label: "Standard", Default: true, Amounts: []tax.RateAmount{amount("0.22", "2012-04-01")}},
				{ID: "intermediate", Label: "Intermediate", Amounts: []tax.RateAmount{amount("0.12", "2012-04-01")}},
				{ID: "reduced", Label: "Reduced", Amounts: []tax.RateAmount{amount("0.05", "2012-04-01")}},
			},
		},
		{
			ID:          "ro",
			Label:       "Romania",
			Territories: []tax.Territory{{Country: "RO"}},
			Rates: []tax.Rate{
				{ID: "standard", Label: "Standard", Default: true, Amounts: []tax.RateAmount{
					amountUntil("0.20", "2016-01-01", "2017-01-01"),
					amount("0.19", "2017-01-01"),
				}},
				{ID: "intermediate", Label: "Intermediate", Amounts: []tax.RateAmount{amount("0.09", "2008-12-01")}},
				{ID: "reduced", Label: "Reduced", Amounts: []tax.RateAmount{amount("0.05", "2008-12-01")}},
			},
		},
		{
			ID:          "se",
			Label:       "Sweden",
			Territories: []tax.Territory{{Country: "SE"}},
			Rates: []tax.Rate{
				{ID: "standard", Label: "Standard", Default: true, Amounts: []tax.RateAmount{amount("0.25", "1995-01-01")}},
				{ID: "intermediate", Label: "Intermediate", Amounts: []tax.RateAmount{amount("0.12", "1995-01-01")}},
				{ID: "reduced", Label: "Reduced", Amounts: []tax.RateAmount{amount("0.06", "1996-01-01")}},
			},
		},
		{
			ID:          "si",
			Label:       "Slovenia",
			Territories: []tax.Territory{{Country: "SI"}},
			Rates: []tax.Rate{
				{ID: "standard", Label: "Standard", Default: true, Amounts: []tax.RateAmount{amount("0.22", "2013-07-01")}},
				{ID: "reduced", Label: "Reduced", Amounts: []tax.RateAmount{amount("0.095", "2013-07-01")}},
			},
		},
		{
			ID:          "sk",
			Label:       "Slovakia",
			Territories: []tax.Territory{{Country: "SK"}},
			Rates: []tax.Rate{
				{ID: "standard", Label: "Standard", Default: true, Amounts: []tax.RateAmount{amount("0.2", "2011-01-01")}},
				{ID: "reduced", Label: "Reduced", Amounts: []tax.RateAmount{amount("0.1", "2011-01-01")}},
			},
		},
	}
}
