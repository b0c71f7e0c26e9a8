package port

import (
	"context"
	"palais-immobilier-api/internal/core/domain"
)

// PropertyCatalogPort - contract for the adapter holding the property catalog.
type PropertyCatalogPort interface {
	// FindWithCriteria returns a filtered, sorted page of the catalog.
	// limit <= 0 means "no limit".
	FindWithCriteria(ctx context.Context, criteria domain.Criteria, sortKey domain.SortKey, limit, offset int) (*domain.PaginatedProperties, error)

	GetByID(ctx context.Context, propertyID string) (*domain.Property, error)
	FindByAgent(ctx context.Context, agentID string) ([]domain.Property, error)

	// FindNearby returns approved listings sharing the geohash bucket of the
	// given property. Empty when the property carries no coordinates.
	FindNearby(ctx context.Context, propertyID string, limit int) ([]domain.Property, error)

	Create(ctx context.Context, property domain.Property) (*domain.Property, error)
	// Replace performs the full-record replace-by-id mutation.
	Replace(ctx context.Context, property domain.Property) (*domain.Property, error)
	Delete(ctx context.Context, propertyID string) error

	// IncrementViewCount bumps the monotonic counter and returns the new value.
	IncrementViewCount(ctx context.Context, propertyID string) (int, error)
	SetApproved(ctx context.Context, propertyID string, approved bool) (*domain.Property, error)
}
