package port

import (
	"context"
	"palais-immobilier-api/internal/core/domain"
)

// UserRepositoryPort - contract for the adapter holding the identity table.
type UserRepositoryPort interface {
	// FindByUsername returns (nil, nil) when no such user exists.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByID(ctx context.Context, userID string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}
