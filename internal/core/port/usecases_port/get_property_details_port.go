package usecases_port

import (
	"context"
	"palais-immobilier-api/internal/core/domain"
)

type GetPropertyDetailsUseCase interface {
	// viewer is nil for anonymous requests.
	Execute(ctx context.Context, propertyID string, viewer *domain.Claims) (*domain.Property, error)
}
