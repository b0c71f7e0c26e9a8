package usecases_port

import (
	"context"
	"palais-immobilier-api/internal/core/domain"
)

type GetSiteConfigUseCase interface {
	Execute(ctx context.Context) (*domain.SiteConfig, error)
}

type ToggleEditModeUseCase interface {
	Execute(ctx context.Context, role domain.Role) (bool, error)
}

type SaveSiteConfigUseCase interface {
	Execute(ctx context.Context) error
}

type AddHeroImageUseCase interface {
	Execute(ctx context.Context, url, alt string) (*domain.HeroImage, error)
}

type UpdateHeroImageUseCase interface {
	Execute(ctx context.Context, id string, patch domain.HeroImagePatch) error
}

type RemoveHeroImageUseCase interface {
	Execute(ctx context.Context, id string) error
}

type UpdateSocialLinkUseCase interface {
	Execute(ctx context.Context, id string, patch domain.SocialLinkPatch) error
}

type SetLegalPageUseCase interface {
	Execute(ctx context.Context, key string, page domain.LegalPage) error
}

type UpdateCookieConsentUseCase interface {
	Execute(ctx context.Context, consent domain.CookieConsent) error
}

type SetSectionEnabledUseCase interface {
	Execute(ctx context.Context, id string, enabled bool) error
}
