package usecase

import (
	"context"
	"palais-immobilier-api/internal/contextkeys"
	"palais-immobilier-api/internal/core/domain"
	"palais-immobilier-api/internal/core/port"
)

type GetAgentPropertiesUseCase struct {
	catalog port.PropertyCatalogPort
}

func NewGetAgentPropertiesUseCase(catalog port.PropertyCatalogPort) *GetAgentPropertiesUseCase {
	return &GetAgentPropertiesUseCase{catalog: catalog}
}

// Execute lists an agent's own properties, unapproved ones included.
func (uc *GetAgentPropertiesUseCase) Execute(ctx context.Context, agentID string) ([]domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetAgentProperties",
		"agent_id": agentID,
	})

	ucLogger.Info("Use case started", nil)

	properties, err := uc.catalog.FindByAgent(ctx, agentID)
	if err != nil {
		ucLogger.Error("Catalog returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"found": len(properties)})
	return properties, nil
}
