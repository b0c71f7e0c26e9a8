package usecase

import (
	"context"
	"palais-immobilier-api/internal/contextkeys"
	"palais-immobilier-api/internal/core/port"
)

type SaveSiteConfigUseCase struct {
	store port.SiteConfigStorePort
}

func NewSaveSiteConfigUseCase(store port.SiteConfigStorePort) *SaveSiteConfigUseCase {
	return &SaveSiteConfigUseCase{store: store}
}

// Execute persists the site configuration. Single-flight: a save issued while
// one is pending fails with domain.ErrSaveInProgress instead of queueing.
func (uc *SaveSiteConfigUseCase) Execute(ctx context.Context) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "SaveSiteConfig"})

	ucLogger.Info("Use case started", nil)

	if err := uc.store.Save(ctx); err != nil {
		ucLogger.Warn("Save did not complete", port.Fields{"error": err.Error()})
		return err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return nil
}
