package usecase

import (
	"context"
	"palais-immobilier-api/internal/contextkeys"
	"palais-immobilier-api/internal/core/domain"
	"palais-immobilier-api/internal/core/port"
)

type GetPropertyDetailsUseCase struct {
	catalog port.PropertyCatalogPort
}

func NewGetPropertyDetailsUseCase(catalog port.PropertyCatalogPort) *GetPropertyDetailsUseCase {
	return &GetPropertyDetailsUseCase{catalog: catalog}
}

// Execute returns a single listing by id. Unapproved listings stay invisible
// to the public: only an admin or the listing's own agent may fetch them.
func (uc *GetPropertyDetailsUseCase) Execute(ctx context.Context, propertyID string, viewer *domain.Claims) (*domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "GetPropertyDetails",
		"property_id": propertyID,
	})

	ucLogger.Info("Use case started", nil)

	property, err := uc.catalog.GetByID(ctx, propertyID)
	if err != nil {
		ucLogger.Warn("Property not found", port.Fields{"error": err.Error()})
		return nil, err
	}

	if !property.Approved && !canSeeUnapproved(property, viewer) {
		// Hidden, not forbidden: the public answer for an unapproved listing
		// is the same as for a missing one.
		ucLogger.Warn("Unapproved property requested without access", nil)
		return nil, domain.ErrNotFound
	}

	ucLogger.Info("Use case finished successfully", nil)
	return property, nil
}

func canSeeUnapproved(p *domain.Property, viewer *domain.Claims) bool {
	if viewer == nil {
		return false
	}
	if viewer.Role == domain.RoleAdmin {
		return true
	}
	return viewer.Role == domain.RoleAgent && viewer.UserID == p.AgentID
}
