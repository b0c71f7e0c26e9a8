package usecase

import (
	"context"
	"palais-immobilier-api/internal/contextkeys"
	"palais-immobilier-api/internal/core/domain"
	"palais-immobilier-api/internal/core/port"
)

type ApprovePropertyUseCase struct {
	catalog port.PropertyCatalogPort
}

func NewApprovePropertyUseCase(catalog port.PropertyCatalogPort) *ApprovePropertyUseCase {
	return &ApprovePropertyUseCase{catalog: catalog}
}

// Execute flips a listing to approved, making it publicly listable.
func (uc *ApprovePropertyUseCase) Execute(ctx context.Context, propertyID string) (*domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "ApproveProperty",
		"property_id": propertyID,
	})

	ucLogger.Info("Use case started", nil)

	property, err := uc.catalog.SetApproved(ctx, propertyID, true)
	if err != nil {
		ucLogger.Warn("Failed to approve property", port.Fields{"error": err.Error()})
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return property, nil
}
