package usecase

import (
	"context"
	"palais-immobilier-api/internal/contextkeys"
	"palais-immobilier-api/internal/core/domain"
	"palais-immobilier-api/internal/core/port"
)

type ToggleEditModeUseCase struct {
	store port.SiteConfigStorePort
}

func NewToggleEditModeUseCase(store port.SiteConfigStorePort) *ToggleEditModeUseCase {
	return &ToggleEditModeUseCase{store: store}
}

// Execute flips edit mode. The store itself ignores non-admin callers, so the
// guard holds even if a handler forgets to check the role.
func (uc *ToggleEditModeUseCase) Execute(ctx context.Context, role domain.Role) (bool, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "ToggleEditMode",
		"role":     role,
	})

	ucLogger.Info("Use case started", nil)

	enabled, err := uc.store.ToggleEditMode(ctx, role)
	if err != nil {
		ucLogger.Error("Store returned an error", err, nil)
		return false, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"edit_mode": enabled})
	return enabled, nil
}
