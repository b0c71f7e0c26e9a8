package usecases_port

import (
	"context"
	"palais-immobilier-api/internal/core/domain"
)

type FindPropertiesUseCase interface {
	Execute(ctx context.Context, criteria domain.Criteria, sortKey domain.SortKey, limit, offset int) (*domain.PaginatedProperties, error)
}
