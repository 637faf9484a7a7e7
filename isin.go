package fondo

import (
	"fmt"
	"iter"
	"maps"
	"regexp"
	"slices"
)

// isinRegex checks for the basic structure: 2 letters, 9 alphanumeric, 1 digit.
var isinRegex = regexp.MustCompile(`^[A-Z]{2}[A-Z0-9]{9}[0-9]$`)

// ISIN is the ISO 6166 identifier of a fund. It is the key used to query the
// upstream price sources.
type ISIN string

// ParseISIN validates the string structure and returns it as an ISIN.
func ParseISIN(s string) (ISIN, error) {
	if !isinRegex.MatchString(s) {
		return "", fmt.Errorf("invalid ISIN %q: want 2 letters, 9 alphanumerics, 1 digit", s)
	}
	return ISIN(s), nil
}

func (i ISIN) String() string { return string(i) }

// Catalog maps human-readable fund names to their ISIN. A fund missing from
// the catalog has no identifier, which forces its quote to be unavailable
// while ledger-only metrics remain computed.
type Catalog map[string]ISIN

// DefaultCatalog lists the funds the sheet is known to contain.
func DefaultCatalog() Catalog {
	return Catalog{
		"MSCI World":        "IE00BYX5NX33",
		"Global Technology": "LU1213836080",
	}
}

// Lookup returns the ISIN for a fund name, or false if the fund is unmapped.
func (c Catalog) Lookup(fund string) (ISIN, bool) {
	isin, ok := c[fund]
	return isin, ok
}

// Funds iterates over the catalog's fund names in sorted order.
func (c Catalog) Funds() iter.Seq[string] {
	return func(yield func(string) bool) {
		names := slices.Collect(maps.Keys(c))
		slices.Sort(names)
		for _, name := range names {
			if !yield(name) {
				return
			}
		}
	}
}
