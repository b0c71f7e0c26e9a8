package usecases_port

import (
	"context"
	"palais-immobilier-api/internal/core/domain"
)

type LoginUserUseCasePort interface {
	Execute(ctx context.Context, username, password string) (*domain.User, string, error)
}
