package domain

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// SortKey - the supported catalog orderings.
type SortKey string

const (
	SortNewest    SortKey = "newest"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
)

// ParseSortKey maps a raw string onto a sort key, falling back to newest.
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortPriceLow, SortPriceHigh:
		return SortKey(s)
	default:
		return SortNewest
	}
}

// Criteria is the set of filter predicates applied to the property catalog.
// All predicates are AND-combined; a zero-valued predicate matches everything.
type Criteria struct {
	// City is matched as a case- and diacritic-insensitive substring of the
	// property's city, or of its neighborhood.
	City         string
	ListingType  ListingType
	PropertyType PropertyType
	Status       PropertyStatus
	MinPrice     *float64
	MaxPrice     *float64
	// Bedrooms/Bathrooms carry "N+" semantics: the property value must be >= N.
	Bedrooms  *int
	Bathrooms *int
	Featured  bool
	// ApprovedOnly must be set on every public-facing query.
	ApprovedOnly bool
}

// Matches reports whether a single property satisfies every predicate.
func (c Criteria) Matches(p *Property) bool {
	if c.ApprovedOnly && !p.Approved {
		return false
	}
	if c.City != "" {
		needle := foldForSearch(c.City)
		if !strings.Contains(foldForSearch(p.City), needle) &&
			!strings.Contains(foldForSearch(p.Neighborhood), needle) {
			return false
		}
	}
	if c.ListingType != "" && p.ListingType != c.ListingType {
		return false
	}
	if c.PropertyType != "" && p.PropertyType != c.PropertyType {
		return false
	}
	if c.Status != "" && p.Status != c.Status {
		return false
	}
	if c.MinPrice != nil && p.Price < *c.MinPrice {
		return false
	}
	if c.MaxPrice != nil && p.Price > *c.MaxPrice {
		return false
	}
	if c.Bedrooms != nil && p.Bedrooms < *c.Bedrooms {
		return false
	}
	if c.Bathrooms != nil && p.Bathrooms < *c.Bathrooms {
		return false
	}
	if c.Featured && !p.Featured {
		return false
	}
	return true
}

// Filter derives a new slice holding the properties that match the criteria.
// The input slice is never mutated and never aliased by the result.
func Filter(properties []Property, c Criteria) []Property {
	out := make([]Property, 0, len(properties))
	for i := range properties {
		if c.Matches(&properties[i]) {
			out = append(out, properties[i])
		}
	}
	return out
}

// SortProperties returns a newly ordered copy of the input.
// Ties keep their original relative order (sort.SliceStable), which makes the
// operation idempotent.
func SortProperties(properties []Property, key SortKey) []Property {
	out := make([]Property, len(properties))
	copy(out, properties)

	switch key {
	case SortPriceLow:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceHigh:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	default: // SortNewest
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	}
	return out
}

// foldForSearch lowercases the string and strips diacritics, so that
// "fès" matches "Fes" and "TANGER" matches "Tanger".
func foldForSearch(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(strings.TrimSpace(folded))
}
