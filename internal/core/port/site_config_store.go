package port

import (
	"context"
	"palais-immobilier-api/internal/core/domain"
)

// SiteConfigStorePort - contract for the adapter holding the editable site content.
// Every getter returns a defensive copy; mutation only happens through these methods.
type SiteConfigStorePort interface {
	Get(ctx context.Context) (*domain.SiteConfig, error)

	// ToggleEditMode flips edit mode for admins and is a no-op for everyone
	// else. Returns the resulting state.
	ToggleEditMode(ctx context.Context, role domain.Role) (bool, error)

	// UpdateHeroImage merges the patch into the entry; unknown id is a no-op.
	UpdateHeroImage(ctx context.Context, id string, patch domain.HeroImagePatch) error
	// AddHeroImage appends with order = current max + 1; a blank url is rejected.
	AddHeroImage(ctx context.Context, url, alt string) (*domain.HeroImage, error)
	RemoveHeroImage(ctx context.Context, id string) error

	UpdateSocialLink(ctx context.Context, id string, patch domain.SocialLinkPatch) error
	SetLegalPage(ctx context.Context, key string, page domain.LegalPage) error
	UpdateCookieConsent(ctx context.Context, consent domain.CookieConsent) error
	SetSectionEnabled(ctx context.Context, id string, enabled bool) error

	// Save persists the configuration. Single-flight: a save issued while one
	// is pending returns domain.ErrSaveInProgress.
	Save(ctx context.Context) error
}
