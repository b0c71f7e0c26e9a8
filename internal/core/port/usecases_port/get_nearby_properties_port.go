package usecases_port

import (
	"context"
	"palais-immobilier-api/internal/core/domain"
)

type GetNearbyPropertiesUseCase interface {
	Execute(ctx context.Context, propertyID string, limit int) ([]domain.Property, error)
}
