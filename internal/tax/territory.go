package tax

import (
	"regexp"
	"strconv"
	"strings"
)

// Territory is a country plus optional postal-code inclusion/exclusion
// clauses. A territory without postal clauses covers the whole country.
//
// A clause is either a delimited regular expression ("/20[0-9]{3}/") searched
// against the raw postal code, or a comma-separated list of tokens where each
// token is a literal postal code or an inclusive range "A:B". Tokens within a
// clause are OR'd. Malformed tokens never match; they are configuration
// defects, not faults.
type Territory struct {
	Country             CountryCode `json:"country_code"`
	IncludedPostalCodes string      `json:"included_postal_codes,omitempty"`
	ExcludedPostalCodes string      `json:"excluded_postal_codes,omitempty"`
}

// Matches reports whether the address belongs to this territory.
func (t Territory) Matches(addr Address) bool {
	if addr.Country != t.Country {
		return false
	}
	if t.IncludedPostalCodes != "" && !matchClause(t.IncludedPostalCodes, addr.PostalCode) {
		return false
	}
	if t.ExcludedPostalCodes != "" && matchClause(t.ExcludedPostalCodes, addr.PostalCode) {
		return false
	}
	return true
}

func matchClause(clause, postal string) bool {
	clause = strings.TrimSpace(clause)
	if clause == "" {
		return false
	}
	if isDelimitedRegexp(clause) {
		re, err := regexp.Compile(clause[1 : len(clause)-1])
		if err != nil {
			return false
		}
		return re.MatchString(postal)
	}
	for _, token := range strings.Split(clause, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		if lo, hi, ok := strings.Cut(token, ":"); ok {
			if inPostalRange(strings.TrimSpace(lo), strings.TrimSpace(hi), postal) {
				return true
			}
			continue
		}
		if token == postal {
			return true
		}
	}
	return false
}

func isDelimitedRegexp(clause string) bool {
	return len(clause) > 2 && strings.HasPrefix(clause, "/") && strings.HasSuffix(clause, "/")
}

// inPostalRange checks lo <= postal <= hi. Fully numeric operands compare as
// integers, anything else falls back to lexicographic comparison.
func inPostalRange(lo, hi, postal string) bool {
	if lo == "" || hi == "" || postal == "" {
		return false
	}
	nLo, errLo := strconv.Atoi(lo)
	nHi, errHi := strconv.Atoi(hi)
	nPostal, errPostal := strconv.Atoi(postal)
	if errLo == nil && errHi == nil && errPostal == nil {
		return nLo <= nPostal && nPostal <= nHi
	}
	return lo <= postal && postal <= hi
}
