package port

import (
	"context"
	"palais-immobilier-api/internal/core/domain"
	"time"
)

// TokenServicePort - contract for issuing and validating session tokens.
type TokenServicePort interface {
	GenerateToken(ctx context.Context, user *domain.User, ttl time.Duration) (string, error)
	ValidateToken(ctx context.Context, tokenString string) (*domain.Claims, error)
}
