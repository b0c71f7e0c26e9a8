package memstore

import (
	"context"
	"errors"
	"palais-immobilier-api/internal/core/domain"
	"sync"
	"testing"
	"time"
)

func TestToggleEditModeIsAdminOnly(t *testing.T) {
	store := NewSiteConfigStore(0)
	ctx := context.Background()

	// Non-admin roles cannot flip the flag.
	for _, role := range []domain.Role{domain.RoleAgent, domain.RoleUser} {
		enabled, err := store.ToggleEditMode(ctx, role)
		if err != nil {
			t.Fatal(err)
		}
		if enabled {
			t.Fatalf("role %s toggled edit mode", role)
		}
	}

	enabled, err := store.ToggleEditMode(ctx, domain.RoleAdmin)
	if err != nil {
		t.Fatal(err)
	}
	if !enabled {
		t.Fatal("admin toggle did not enable edit mode")
	}

	enabled, _ = store.ToggleEditMode(ctx, domain.RoleAdmin)
	if enabled {
		t.Fatal("second admin toggle did not disable edit mode")
	}
}

func TestAddHeroImageAppendsWithNextOrder(t *testing.T) {
	store := NewSiteConfigStore(0)
	ctx := context.Background()

	img, err := store.AddHeroImage(ctx, "https://cdn.palaisrouge.ma/hero/extra.jpg", "Extra")
	if err != nil {
		t.Fatal(err)
	}
	// Defaults ship three images ordered 1..3.
	if img.Order != 4 {
		t.Fatalf("order = %d, want 4", img.Order)
	}
	if img.ID == "" {
		t.Fatal("empty image id")
	}

	cfg, err := store.Get(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.HeroImages) != 4 {
		t.Fatalf("hero images = %d, want 4", len(cfg.HeroImages))
	}
}

func TestAddHeroImageRejectsBlankURL(t *testing.T) {
	store := NewSiteConfigStore(0)

	for _, url := range []string{"", "   ", "\t"} {
		if _, err := store.AddHeroImage(context.Background(), url, "alt"); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("url %q: err = %v, want ErrValidation", url, err)
		}
	}
}

func TestUpdateHeroImageMergesPatch(t *testing.T) {
	store := NewSiteConfigStore(0)
	ctx := context.Background()

	newAlt := "Updated alt"
	if err := store.UpdateHeroImage(ctx, "hero-1", domain.HeroImagePatch{Alt: &newAlt}); err != nil {
		t.Fatal(err)
	}

	cfg, _ := store.Get(ctx)
	if cfg.HeroImages[0].Alt != newAlt {
		t.Fatalf("alt = %q", cfg.HeroImages[0].Alt)
	}
	// Untouched fields survive the patch.
	if cfg.HeroImages[0].URL == "" || cfg.HeroImages[0].Order != 1 {
		t.Fatalf("patch clobbered other fields: %+v", cfg.HeroImages[0])
	}
}

func TestUpdateHeroImageUnknownIDIsNoOp(t *testing.T) {
	store := NewSiteConfigStore(0)
	ctx := context.Background()

	before, _ := store.Get(ctx)

	url := "https://example.test/x.jpg"
	if err := store.UpdateHeroImage(ctx, "hero-999", domain.HeroImagePatch{URL: &url}); err != nil {
		t.Fatalf("unknown id must not fail: %v", err)
	}

	after, _ := store.Get(ctx)
	if len(after.HeroImages) != len(before.HeroImages) {
		t.Fatal("image count changed")
	}
	for i := range before.HeroImages {
		if after.HeroImages[i] != before.HeroImages[i] {
			t.Fatalf("image %d changed: %+v", i, after.HeroImages[i])
		}
	}
}

func TestRemoveHeroImage(t *testing.T) {
	store := NewSiteConfigStore(0)
	ctx := context.Background()

	if err := store.RemoveHeroImage(ctx, "hero-2"); err != nil {
		t.Fatal(err)
	}
	cfg, _ := store.Get(ctx)
	for _, img := range cfg.HeroImages {
		if img.ID == "hero-2" {
			t.Fatal("hero-2 still present")
		}
	}

	// Removing it again is a silent no-op.
	if err := store.RemoveHeroImage(ctx, "hero-2"); err != nil {
		t.Fatal(err)
	}
}

func TestSetLegalPageRejectsUnknownKey(t *testing.T) {
	store := NewSiteConfigStore(0)

	err := store.SetLegalPage(context.Background(), "imprint", domain.LegalPage{Enabled: true, Title: "Imprint"})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
}

func TestSetSectionEnabledKeepsOrder(t *testing.T) {
	store := NewSiteConfigStore(0)
	ctx := context.Background()

	if err := store.SetSectionEnabled(ctx, "sec-featured", false); err != nil {
		t.Fatal(err)
	}

	cfg, _ := store.Get(ctx)
	for _, section := range cfg.Sections {
		if section.ID == "sec-featured" {
			if section.Enabled {
				t.Fatal("section still enabled")
			}
			if section.Order != 2 {
				t.Fatalf("order = %d, want 2", section.Order)
			}
		}
	}
}

func TestSaveSetsSavedAtMarker(t *testing.T) {
	store := NewSiteConfigStore(0)
	ctx := context.Background()

	if err := store.Save(ctx); err != nil {
		t.Fatal(err)
	}

	cfg, _ := store.Get(ctx)
	if cfg.SavedAt == nil {
		t.Fatal("SavedAt not set")
	}
	if time.Since(*cfg.SavedAt) > time.Minute {
		t.Fatalf("SavedAt implausible: %v", cfg.SavedAt)
	}
}

func TestSaveIsSingleFlight(t *testing.T) {
	store := NewSiteConfigStore(50 * time.Millisecond)
	ctx := context.Background()

	started := make(chan struct{})
	var firstErr error
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		close(started)
		firstErr = store.Save(ctx)
	}()

	<-started
	time.Sleep(10 * time.Millisecond)

	if err := store.Save(ctx); !errors.Is(err, domain.ErrSaveInProgress) {
		t.Fatalf("concurrent save err = %v, want ErrSaveInProgress", err)
	}

	wg.Wait()
	if firstErr != nil {
		t.Fatalf("first save failed: %v", firstErr)
	}

	// Once the first save finished, saving again works.
	if err := store.Save(ctx); err != nil {
		t.Fatalf("follow-up save failed: %v", err)
	}
}

func TestSaveHonorsContextCancellation(t *testing.T) {
	store := NewSiteConfigStore(time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if err := store.Save(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err = %v, want DeadlineExceeded", err)
	}

	cfg, _ := store.Get(context.Background())
	if cfg.SavedAt != nil {
		t.Fatal("cancelled save must not set SavedAt")
	}
}

func TestGetReturnsDefensiveCopy(t *testing.T) {
	store := NewSiteConfigStore(0)
	ctx := context.Background()

	cfg, _ := store.Get(ctx)
	cfg.HeroImages[0].URL = "mutated"
	cfg.LegalPages[domain.LegalCookies] = domain.LegalPage{Enabled: false, Title: "mutated"}

	fresh, _ := store.Get(ctx)
	if fresh.HeroImages[0].URL == "mutated" {
		t.Fatal("hero image mutation leaked into the store")
	}
	if fresh.LegalPages[domain.LegalCookies].Title == "mutated" {
		t.Fatal("legal page mutation leaked into the store")
	}
}
