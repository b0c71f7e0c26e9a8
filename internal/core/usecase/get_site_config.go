package usecase

import (
	"context"
	"palais-immobilier-api/internal/contextkeys"
	"palais-immobilier-api/internal/core/domain"
	"palais-immobilier-api/internal/core/port"
)

type GetSiteConfigUseCase struct {
	store port.SiteConfigStorePort
}

func NewGetSiteConfigUseCase(store port.SiteConfigStorePort) *GetSiteConfigUseCase {
	return &GetSiteConfigUseCase{store: store}
}

func (uc *GetSiteConfigUseCase) Execute(ctx context.Context) (*domain.SiteConfig, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "GetSiteConfig"})

	ucLogger.Debug("Use case started", nil)

	cfg, err := uc.store.Get(ctx)
	if err != nil {
		ucLogger.Error("Store returned an error", err, nil)
		return nil, err
	}

	return cfg, nil
}
