package usecase

import (
	"context"
	"palais-immobilier-api/internal/contextkeys"
	"palais-immobilier-api/internal/core/domain"
	"palais-immobilier-api/internal/core/port"
)

type FindPropertiesUseCase struct {
	catalog port.PropertyCatalogPort
}

func NewFindPropertiesUseCase(catalog port.PropertyCatalogPort) *FindPropertiesUseCase {
	return &FindPropertiesUseCase{catalog: catalog}
}

func (uc *FindPropertiesUseCase) Execute(ctx context.Context, criteria domain.Criteria, sortKey domain.SortKey, limit, offset int) (*domain.PaginatedProperties, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "FindProperties",
		"criteria": criteria,
		"sort":     sortKey,
		"limit":    limit,
		"offset":   offset,
	})

	ucLogger.Info("Use case started", nil)

	result, err := uc.catalog.FindWithCriteria(ctx, criteria, sortKey, limit, offset)
	if err != nil {
		ucLogger.Error("Catalog returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{
		"total_found":   result.TotalCount,
		"items_on_page": len(result.Properties),
	})

	return result, nil
}
