package usecases_port

import (
	"context"
	"palais-immobilier-api/internal/core/domain"
)

type CreatePropertyUseCase interface {
	Execute(ctx context.Context, property domain.Property, author domain.Claims) (*domain.Property, error)
}

type UpdatePropertyUseCase interface {
	Execute(ctx context.Context, property domain.Property, author domain.Claims) (*domain.Property, error)
}

type DeletePropertyUseCase interface {
	Execute(ctx context.Context, propertyID string, author domain.Claims) error
}

type ApprovePropertyUseCase interface {
	Execute(ctx context.Context, propertyID string) (*domain.Property, error)
}

type GetAgentPropertiesUseCase interface {
	Execute(ctx context.Context, agentID string) ([]domain.Property, error)
}
