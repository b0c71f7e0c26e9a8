package usecase

import (
	"context"
	"palais-immobilier-api/internal/contextkeys"
	"palais-immobilier-api/internal/core/domain"
	"palais-immobilier-api/internal/core/port"
)

type DeletePropertyUseCase struct {
	catalog port.PropertyCatalogPort
}

func NewDeletePropertyUseCase(catalog port.PropertyCatalogPort) *DeletePropertyUseCase {
	return &DeletePropertyUseCase{catalog: catalog}
}

func (uc *DeletePropertyUseCase) Execute(ctx context.Context, propertyID string, author domain.Claims) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "DeleteProperty",
		"property_id": propertyID,
		"author":      author.UserID,
	})

	ucLogger.Info("Use case started", nil)

	existing, err := uc.catalog.GetByID(ctx, propertyID)
	if err != nil {
		ucLogger.Warn("Property not found", port.Fields{"error": err.Error()})
		return err
	}

	if author.Role != domain.RoleAdmin && existing.AgentID != author.UserID {
		ucLogger.Warn("Author does not own the listing", nil)
		return domain.ErrForbidden
	}

	if err := uc.catalog.Delete(ctx, propertyID); err != nil {
		ucLogger.Error("Catalog returned an error", err, nil)
		return err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return nil
}
