package usecase

import (
	"context"
	"palais-immobilier-api/internal/contextkeys"
	"palais-immobilier-api/internal/core/domain"
	"palais-immobilier-api/internal/core/port"
)

// The four content editors below are pure state replacement on one slice of
// the site configuration; unrelated fields stay untouched.

type UpdateSocialLinkUseCase struct {
	store port.SiteConfigStorePort
}

func NewUpdateSocialLinkUseCase(store port.SiteConfigStorePort) *UpdateSocialLinkUseCase {
	return &UpdateSocialLinkUseCase{store: store}
}

func (uc *UpdateSocialLinkUseCase) Execute(ctx context.Context, id string, patch domain.SocialLinkPatch) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":       "UpdateSocialLink",
		"social_link_id": id,
	})

	ucLogger.Info("Use case started", nil)

	if err := uc.store.UpdateSocialLink(ctx, id, patch); err != nil {
		ucLogger.Error("Store returned an error", err, nil)
		return err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return nil
}

type SetLegalPageUseCase struct {
	store port.SiteConfigStorePort
}

func NewSetLegalPageUseCase(store port.SiteConfigStorePort) *SetLegalPageUseCase {
	return &SetLegalPageUseCase{store: store}
}

func (uc *SetLegalPageUseCase) Execute(ctx context.Context, key string, page domain.LegalPage) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "SetLegalPage",
		"legal_page": key,
	})

	ucLogger.Info("Use case started", nil)

	if err := uc.store.SetLegalPage(ctx, key, page); err != nil {
		ucLogger.Warn("Legal page update rejected", port.Fields{"error": err.Error()})
		return err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return nil
}

type UpdateCookieConsentUseCase struct {
	store port.SiteConfigStorePort
}

func NewUpdateCookieConsentUseCase(store port.SiteConfigStorePort) *UpdateCookieConsentUseCase {
	return &UpdateCookieConsentUseCase{store: store}
}

func (uc *UpdateCookieConsentUseCase) Execute(ctx context.Context, consent domain.CookieConsent) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "UpdateCookieConsent"})

	ucLogger.Info("Use case started", nil)

	if err := uc.store.UpdateCookieConsent(ctx, consent); err != nil {
		ucLogger.Error("Store returned an error", err, nil)
		return err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return nil
}

type SetSectionEnabledUseCase struct {
	store port.SiteConfigStorePort
}

func NewSetSectionEnabledUseCase(store port.SiteConfigStorePort) *SetSectionEnabledUseCase {
	return &SetSectionEnabledUseCase{store: store}
}

func (uc *SetSectionEnabledUseCase) Execute(ctx context.Context, id string, enabled bool) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "SetSectionEnabled",
		"section_id": id,
		"enabled":    enabled,
	})

	ucLogger.Info("Use case started", nil)

	if err := uc.store.SetSectionEnabled(ctx, id, enabled); err != nil {
		ucLogger.Error("Store returned an error", err, nil)
		return err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return nil
}
