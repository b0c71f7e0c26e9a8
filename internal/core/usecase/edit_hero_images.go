package usecase

import (
	"context"
	"palais-immobilier-api/internal/contextkeys"
	"palais-immobilier-api/internal/core/domain"
	"palais-immobilier-api/internal/core/port"
)

type AddHeroImageUseCase struct {
	store port.SiteConfigStorePort
}

func NewAddHeroImageUseCase(store port.SiteConfigStorePort) *AddHeroImageUseCase {
	return &AddHeroImageUseCase{store: store}
}

func (uc *AddHeroImageUseCase) Execute(ctx context.Context, url, alt string) (*domain.HeroImage, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "AddHeroImage"})

	ucLogger.Info("Use case started", nil)

	img, err := uc.store.AddHeroImage(ctx, url, alt)
	if err != nil {
		ucLogger.Warn("Hero image rejected", port.Fields{"error": err.Error()})
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"hero_image_id": img.ID, "order": img.Order})
	return img, nil
}

type UpdateHeroImageUseCase struct {
	store port.SiteConfigStorePort
}

func NewUpdateHeroImageUseCase(store port.SiteConfigStorePort) *UpdateHeroImageUseCase {
	return &UpdateHeroImageUseCase{store: store}
}

// Execute merges the patch into the hero image entry. An unknown id is a
// deliberate no-op, not an error.
func (uc *UpdateHeroImageUseCase) Execute(ctx context.Context, id string, patch domain.HeroImagePatch) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":      "UpdateHeroImage",
		"hero_image_id": id,
	})

	ucLogger.Info("Use case started", nil)

	if err := uc.store.UpdateHeroImage(ctx, id, patch); err != nil {
		ucLogger.Error("Store returned an error", err, nil)
		return err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return nil
}

type RemoveHeroImageUseCase struct {
	store port.SiteConfigStorePort
}

func NewRemoveHeroImageUseCase(store port.SiteConfigStorePort) *RemoveHeroImageUseCase {
	return &RemoveHeroImageUseCase{store: store}
}

func (uc *RemoveHeroImageUseCase) Execute(ctx context.Context, id string) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":      "RemoveHeroImage",
		"hero_image_id": id,
	})

	ucLogger.Info("Use case started", nil)

	if err := uc.store.RemoveHeroImage(ctx, id); err != nil {
		ucLogger.Error("Store returned an error", err, nil)
		return err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return nil
}
