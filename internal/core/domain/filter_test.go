package domain

import (
	"testing"
	"time"
)

func ptrF(v float64) *float64 { return &v }
func ptrI(v int) *int         { return &v }

func sampleProperties() []Property {
	day := func(d int) time.Time {
		return time.Date(2024, time.January, d, 0, 0, 0, 0, time.UTC)
	}
	return []Property{
		{ID: "a", Price: 450000, ListingType: ListingBuy, PropertyType: PropertyApartment, Status: StatusAvailable, City: "Casablanca", Neighborhood: "Maarif", Bedrooms: 2, Bathrooms: 1, Approved: true, CreatedAt: day(1)},
		{ID: "b", Price: 2500000, ListingType: ListingBuy, PropertyType: PropertyVilla, Status: StatusAvailable, City: "Casablanca", Neighborhood: "Anfa", Bedrooms: 5, Bathrooms: 4, Featured: true, Approved: true, CreatedAt: day(5)},
		{ID: "c", Price: 8500, ListingType: ListingRent, PropertyType: PropertyApartment, Status: StatusAvailable, City: "Fès", Bedrooms: 1, Bathrooms: 1, Approved: true, CreatedAt: day(10)},
		{ID: "d", Price: 15000, ListingType: ListingRent, PropertyType: PropertyVilla, Status: StatusRented, City: "Tanger", Bedrooms: 4, Bathrooms: 3, Approved: false, CreatedAt: day(15)},
	}
}

func ids(properties []Property) []string {
	out := make([]string, 0, len(properties))
	for _, p := range properties {
		out = append(out, p.ID)
	}
	return out
}

func assertIDs(t *testing.T, got []Property, want ...string) {
	t.Helper()
	gotIDs := ids(got)
	if len(gotIDs) != len(want) {
		t.Fatalf("got ids %v, want %v", gotIDs, want)
	}
	for i := range want {
		if gotIDs[i] != want[i] {
			t.Fatalf("got ids %v, want %v", gotIDs, want)
		}
	}
}

func TestFilterEmptyCriteriaKeepsEverything(t *testing.T) {
	props := sampleProperties()
	got := Filter(props, Criteria{})
	assertIDs(t, got, "a", "b", "c", "d")
}

func TestFilterIsSubsetAndDoesNotMutateInput(t *testing.T) {
	props := sampleProperties()
	got := Filter(props, Criteria{ListingType: ListingRent})

	assertIDs(t, got, "c", "d")
	// Original order and content must survive the call.
	assertIDs(t, props, "a", "b", "c", "d")
}

func TestFilterPredicatesAreANDCombined(t *testing.T) {
	props := sampleProperties()

	got := Filter(props, Criteria{
		ListingType: ListingBuy,
		MinPrice:    ptrF(500000),
	})
	assertIDs(t, got, "b")

	got = Filter(props, Criteria{
		ListingType: ListingBuy,
		MinPrice:    ptrF(500000),
		MaxPrice:    ptrF(1000000),
	})
	assertIDs(t, got)
}

func TestFilterBedroomsHavePlusSemantics(t *testing.T) {
	props := sampleProperties()
	// "4+" includes the 5-bedroom villa.
	got := Filter(props, Criteria{Bedrooms: ptrI(4)})
	assertIDs(t, got, "b", "d")
}

func TestFilterApprovedOnlyHidesUnapproved(t *testing.T) {
	props := sampleProperties()
	got := Filter(props, Criteria{ApprovedOnly: true})
	assertIDs(t, got, "a", "b", "c")
}

func TestFilterFeaturedOnly(t *testing.T) {
	props := sampleProperties()
	got := Filter(props, Criteria{Featured: true})
	assertIDs(t, got, "b")
}

func TestFilterCityIsDiacriticAndCaseInsensitive(t *testing.T) {
	props := sampleProperties()

	cases := []struct {
		name  string
		query string
		want  []string
	}{
		{"plain", "Casablanca", []string{"a", "b"}},
		{"lowercase", "casablanca", []string{"a", "b"}},
		{"diacritic stripped in query", "fes", []string{"c"}},
		{"diacritic kept in query", "Fès", []string{"c"}},
		{"matches neighborhood too", "maarif", []string{"a"}},
		{"substring", "casa", []string{"a", "b"}},
		{"no match", "Marrakech", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Filter(props, Criteria{City: tc.query})
			assertIDs(t, got, tc.want...)
		})
	}
}

func TestSortPropertiesOrderings(t *testing.T) {
	props := sampleProperties()

	assertIDs(t, SortProperties(props, SortPriceLow), "c", "d", "a", "b")
	assertIDs(t, SortProperties(props, SortPriceHigh), "b", "a", "d", "c")
	assertIDs(t, SortProperties(props, SortNewest), "d", "c", "b", "a")
	// Unknown keys fall back to newest.
	assertIDs(t, SortProperties(props, SortKey("bogus")), "d", "c", "b", "a")
}

func TestSortPropertiesIsStableAndIdempotent(t *testing.T) {
	day := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	props := []Property{
		{ID: "x", Price: 100, CreatedAt: day},
		{ID: "y", Price: 100, CreatedAt: day},
		{ID: "z", Price: 100, CreatedAt: day},
	}

	once := SortProperties(props, SortPriceLow)
	assertIDs(t, once, "x", "y", "z")

	twice := SortProperties(once, SortPriceLow)
	assertIDs(t, twice, "x", "y", "z")
}

func TestSortPropertiesDoesNotMutateInput(t *testing.T) {
	props := sampleProperties()
	_ = SortProperties(props, SortPriceHigh)
	assertIDs(t, props, "a", "b", "c", "d")
}

func TestParseSortKey(t *testing.T) {
	if got := ParseSortKey("price-low"); got != SortPriceLow {
		t.Fatalf("got %q", got)
	}
	if got := ParseSortKey("price-high"); got != SortPriceHigh {
		t.Fatalf("got %q", got)
	}
	if got := ParseSortKey(""); got != SortNewest {
		t.Fatalf("got %q", got)
	}
	if got := ParseSortKey("whatever"); got != SortNewest {
		t.Fatalf("got %q", got)
	}
}
