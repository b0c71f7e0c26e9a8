package usecase

import (
	"context"
	"palais-immobilier-api/internal/contextkeys"
	"palais-immobilier-api/internal/core/domain"
	"palais-immobilier-api/internal/core/port"
)

type GetNearbyPropertiesUseCase struct {
	catalog port.PropertyCatalogPort
}

func NewGetNearbyPropertiesUseCase(catalog port.PropertyCatalogPort) *GetNearbyPropertiesUseCase {
	return &GetNearbyPropertiesUseCase{catalog: catalog}
}

func (uc *GetNearbyPropertiesUseCase) Execute(ctx context.Context, propertyID string, limit int) ([]domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "GetNearbyProperties",
		"property_id": propertyID,
		"limit":       limit,
	})

	ucLogger.Info("Use case started", nil)

	neighbors, err := uc.catalog.FindNearby(ctx, propertyID, limit)
	if err != nil {
		ucLogger.Error("Catalog returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"found": len(neighbors)})
	return neighbors, nil
}
