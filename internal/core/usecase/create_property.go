package usecase

import (
	"context"
	"palais-immobilier-api/internal/contextkeys"
	"palais-immobilier-api/internal/core/domain"
	"palais-immobilier-api/internal/core/port"
	"time"

	"github.com/google/uuid"
)

type CreatePropertyUseCase struct {
	catalog port.PropertyCatalogPort
}

func NewCreatePropertyUseCase(catalog port.PropertyCatalogPort) *CreatePropertyUseCase {
	return &CreatePropertyUseCase{catalog: catalog}
}

// Execute creates a listing. New listings always start unapproved with a zero
// view counter; agents own what they create, admins may create on behalf of
// another agent.
func (uc *CreatePropertyUseCase) Execute(ctx context.Context, property domain.Property, author domain.Claims) (*domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "CreateProperty",
		"author":   author.UserID,
	})

	ucLogger.Info("Use case started", nil)

	if property.ID == "" {
		property.ID = uuid.New().String()
	}
	property.Approved = false
	property.ViewCount = 0
	property.CreatedAt = time.Now().UTC()

	if author.Role != domain.RoleAdmin || property.AgentID == "" {
		property.AgentID = author.UserID
		property.AgentName = author.Username
	}

	created, err := uc.catalog.Create(ctx, property)
	if err != nil {
		ucLogger.Error("Catalog returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"property_id": created.ID})
	return created, nil
}
