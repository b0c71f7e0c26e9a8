package usecase

import (
	"context"
	"palais-immobilier-api/internal/contextkeys"
	"palais-immobilier-api/internal/core/domain"
	"palais-immobilier-api/internal/core/port"
)

type UpdatePropertyUseCase struct {
	catalog port.PropertyCatalogPort
}

func NewUpdatePropertyUseCase(catalog port.PropertyCatalogPort) *UpdatePropertyUseCase {
	return &UpdatePropertyUseCase{catalog: catalog}
}

// Execute performs a full-record replace-by-id. Agents may only replace their
// own listings; identity, creation time and the monotonic view counter are
// preserved by the catalog.
func (uc *UpdatePropertyUseCase) Execute(ctx context.Context, property domain.Property, author domain.Claims) (*domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "UpdateProperty",
		"property_id": property.ID,
		"author":      author.UserID,
	})

	ucLogger.Info("Use case started", nil)

	existing, err := uc.catalog.GetByID(ctx, property.ID)
	if err != nil {
		ucLogger.Warn("Property not found", port.Fields{"error": err.Error()})
		return nil, err
	}

	if author.Role != domain.RoleAdmin && existing.AgentID != author.UserID {
		ucLogger.Warn("Author does not own the listing", nil)
		return nil, domain.ErrForbidden
	}

	updated, err := uc.catalog.Replace(ctx, property)
	if err != nil {
		ucLogger.Error("Catalog returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return updated, nil
}
