package usecase

import (
	"context"
	"palais-immobilier-api/internal/contextkeys"
	"palais-immobilier-api/internal/core/port"
)

type RecordViewUseCase struct {
	catalog port.PropertyCatalogPort
}

func NewRecordViewUseCase(catalog port.PropertyCatalogPort) *RecordViewUseCase {
	return &RecordViewUseCase{catalog: catalog}
}

func (uc *RecordViewUseCase) Execute(ctx context.Context, propertyID string) (int, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "RecordView",
		"property_id": propertyID,
	})

	ucLogger.Info("Use case started", nil)

	views, err := uc.catalog.IncrementViewCount(ctx, propertyID)
	if err != nil {
		ucLogger.Warn("Failed to record view", port.Fields{"error": err.Error()})
		return 0, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"view_count": views})
	return views, nil
}
