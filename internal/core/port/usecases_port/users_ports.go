package usecases_port

import (
	"context"
	"palais-immobilier-api/internal/core/domain"
)

type ListUsersUseCase interface {
	Execute(ctx context.Context) ([]domain.User, error)
}

type GetUserByIDUseCase interface {
	Execute(ctx context.Context, userID string) (*domain.User, error)
}
