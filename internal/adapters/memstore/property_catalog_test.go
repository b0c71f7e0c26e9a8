package memstore

import (
	"context"
	"errors"
	"palais-immobilier-api/internal/core/domain"
	"testing"
)

func seededCatalog() *PropertyCatalog {
	return NewPropertyCatalog(SeedProperties())
}

func resultIDs(properties []domain.Property) []string {
	out := make([]string, 0, len(properties))
	for _, p := range properties {
		out = append(out, p.ID)
	}
	return out
}

func TestFindWithCriteriaRentFilter(t *testing.T) {
	catalog := seededCatalog()

	result, err := catalog.FindWithCriteria(context.Background(), domain.Criteria{
		ListingType:  domain.ListingRent,
		ApprovedOnly: true,
	}, domain.SortNewest, 0, 0)
	if err != nil {
		t.Fatal(err)
	}

	if result.TotalCount != 2 {
		t.Fatalf("total = %d, want 2", result.TotalCount)
	}
	seen := map[string]bool{}
	for _, p := range result.Properties {
		seen[p.ID] = true
	}
	if !seen["4"] || !seen["5"] {
		t.Fatalf("got ids %v, want {4, 5}", resultIDs(result.Properties))
	}
}

func TestFindWithCriteriaUnknownCityIsEmpty(t *testing.T) {
	catalog := seededCatalog()

	result, err := catalog.FindWithCriteria(context.Background(), domain.Criteria{
		City:         "Marrakech",
		ApprovedOnly: true,
	}, domain.SortNewest, 0, 0)
	if err != nil {
		t.Fatal(err)
	}

	if result.TotalCount != 0 || len(result.Properties) != 0 {
		t.Fatalf("got %v, want empty", resultIDs(result.Properties))
	}
}

func TestFindWithCriteriaBuySortedByPriceDescending(t *testing.T) {
	catalog := seededCatalog()

	result, err := catalog.FindWithCriteria(context.Background(), domain.Criteria{
		ListingType:  domain.ListingBuy,
		ApprovedOnly: true,
	}, domain.SortPriceHigh, 0, 0)
	if err != nil {
		t.Fatal(err)
	}

	got := resultIDs(result.Properties)
	want := []string{"2", "6", "3", "1"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestFindWithCriteriaPagination(t *testing.T) {
	catalog := seededCatalog()

	result, err := catalog.FindWithCriteria(context.Background(), domain.Criteria{
		ListingType:  domain.ListingBuy,
		ApprovedOnly: true,
	}, domain.SortPriceHigh, 2, 1)
	if err != nil {
		t.Fatal(err)
	}

	if result.TotalCount != 4 {
		t.Fatalf("total = %d, want 4", result.TotalCount)
	}
	got := resultIDs(result.Properties)
	if len(got) != 2 || got[0] != "6" || got[1] != "3" {
		t.Fatalf("got %v, want [6 3]", got)
	}

	// An offset past the end yields an empty page, not an error.
	result, err = catalog.FindWithCriteria(context.Background(), domain.Criteria{}, domain.SortNewest, 10, 100)
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Properties) != 0 {
		t.Fatalf("got %v, want empty page", resultIDs(result.Properties))
	}
}

func TestGetByIDUnknown(t *testing.T) {
	catalog := seededCatalog()

	if _, err := catalog.GetByID(context.Background(), "no-such-id"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestIncrementViewCountIsMonotonic(t *testing.T) {
	catalog := seededCatalog()
	ctx := context.Background()

	before, err := catalog.GetByID(ctx, "1")
	if err != nil {
		t.Fatal(err)
	}

	first, err := catalog.IncrementViewCount(ctx, "1")
	if err != nil {
		t.Fatal(err)
	}
	second, err := catalog.IncrementViewCount(ctx, "1")
	if err != nil {
		t.Fatal(err)
	}

	if first != before.ViewCount+1 || second != first+1 {
		t.Fatalf("counts %d, %d after %d", first, second, before.ViewCount)
	}

	if _, err := catalog.IncrementViewCount(ctx, "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestReplacePreservesCreatedAtAndViewCount(t *testing.T) {
	catalog := seededCatalog()
	ctx := context.Background()

	if _, err := catalog.IncrementViewCount(ctx, "1"); err != nil {
		t.Fatal(err)
	}
	original, err := catalog.GetByID(ctx, "1")
	if err != nil {
		t.Fatal(err)
	}

	replacement := *original
	replacement.Price = 999999
	replacement.ViewCount = 0        // clients cannot reset the counter
	replacement.CreatedAt = replacement.CreatedAt.AddDate(1, 0, 0)

	updated, err := catalog.Replace(ctx, replacement)
	if err != nil {
		t.Fatal(err)
	}

	if updated.Price != 999999 {
		t.Fatalf("price = %v", updated.Price)
	}
	if !updated.CreatedAt.Equal(original.CreatedAt) {
		t.Fatalf("createdAt changed: %v != %v", updated.CreatedAt, original.CreatedAt)
	}
	if updated.ViewCount != original.ViewCount {
		t.Fatalf("viewCount = %d, want %d", updated.ViewCount, original.ViewCount)
	}
}

func TestDeleteRemovesListing(t *testing.T) {
	catalog := seededCatalog()
	ctx := context.Background()

	if err := catalog.Delete(ctx, "3"); err != nil {
		t.Fatal(err)
	}
	if _, err := catalog.GetByID(ctx, "3"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if err := catalog.Delete(ctx, "3"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("second delete err = %v, want ErrNotFound", err)
	}
}

func TestCreateRejectsDuplicateID(t *testing.T) {
	catalog := seededCatalog()

	_, err := catalog.Create(context.Background(), domain.Property{ID: "1"})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
}

func TestFindNearbySharesGeohashCell(t *testing.T) {
	lat := func(v float64) *float64 { return &v }

	seed := []domain.Property{
		{ID: "base", Approved: true, Latitude: lat(33.5900), Longitude: lat(-7.6300)},
		{ID: "close", Approved: true, Latitude: lat(33.5910), Longitude: lat(-7.6310)},
		{ID: "far", Approved: true, Latitude: lat(35.7595), Longitude: lat(-5.8340)},
		{ID: "close-unapproved", Approved: false, Latitude: lat(33.5905), Longitude: lat(-7.6305)},
		{ID: "no-coords", Approved: true},
	}
	catalog := NewPropertyCatalog(seed)

	got, err := catalog.FindNearby(context.Background(), "base", 0)
	if err != nil {
		t.Fatal(err)
	}

	if len(got) != 1 || got[0].ID != "close" {
		t.Fatalf("got %v, want [close]", resultIDs(got))
	}
}

func TestFindNearbyWithoutCoordinatesIsEmpty(t *testing.T) {
	seed := []domain.Property{{ID: "blind", Approved: true}}
	catalog := NewPropertyCatalog(seed)

	got, err := catalog.FindNearby(context.Background(), "blind", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Fatalf("got %v, want empty", resultIDs(got))
	}
}
