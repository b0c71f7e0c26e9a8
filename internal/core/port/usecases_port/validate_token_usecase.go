package usecases_port

import (
	"context"
	"palais-immobilier-api/internal/core/domain"
)

type ValidateTokenUseCasePort interface {
	Execute(ctx context.Context, tokenString string) (*domain.Claims, error)
}
