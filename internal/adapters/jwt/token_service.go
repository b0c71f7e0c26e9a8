package token_adapter

import (
	"context"
	"errors"
	"fmt"
	"palais-immobilier-api/internal/contextkeys"
	"palais-immobilier-api/internal/core/domain"
	"palais-immobilier-api/internal/core/port"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenService - the TokenServicePort implementation backed by JWT.
type TokenService struct {
	// Secret used for signing. Comes from the config, never hardcoded here.
	signingKey []byte
}

func NewTokenService(signingKey string) (*TokenService, error) {
	if signingKey == "" {
		return nil, fmt.Errorf("JWT signing key cannot be empty")
	}
	return &TokenService{signingKey: []byte(signingKey)}, nil
}

// jwtCustomClaims - our take on the standard JWT claims.
type jwtCustomClaims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken creates a new signed JWT.
func (s *TokenService) GenerateToken(ctx context.Context, user *domain.User, ttl time.Duration) (string, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	serviceLogger := logger.WithFields(port.Fields{
		"component": "TokenService",
		"method":    "GenerateToken",
		"user_id":   user.ID,
	})

	serviceLogger.Debug("Generating new token.", port.Fields{"ttl": ttl.String()})
	claims := &jwtCustomClaims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    "palais-immobilier-api",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signedToken, err := token.SignedString(s.signingKey)
	if err != nil {
		serviceLogger.Error("Failed to sign token", err, nil)
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signedToken, nil
}

// ValidateToken parses and verifies a token, returning its claims.
func (s *TokenService) ValidateToken(ctx context.Context, tokenString string) (*domain.Claims, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	serviceLogger := logger.WithFields(port.Fields{
		"component": "TokenService",
		"method":    "ValidateToken",
	})

	token, err := jwt.ParseWithClaims(tokenString, &jwtCustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Only HS256 is acceptable here.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			alg := token.Header["alg"]
			serviceLogger.Error("Unexpected signing method detected", fmt.Errorf("algorithm %v is not HS256", alg), port.Fields{"algorithm": alg})
			return nil, fmt.Errorf("unexpected signing method: %v", alg)
		}
		return s.signingKey, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			if claims, ok := token.Claims.(*jwtCustomClaims); ok {
				serviceLogger.Warn("Token has expired", port.Fields{"user_id": claims.UserID})
			} else {
				serviceLogger.Warn("An expired token could not be parsed to claims", nil)
			}
		} else {
			serviceLogger.Warn("Invalid token format or signature", port.Fields{"error": err.Error()})
		}
		return nil, domain.ErrTokenInvalid
	}

	if claims, ok := token.Claims.(*jwtCustomClaims); ok && token.Valid {
		role, known := domain.ParseRole(claims.Role)
		if !known {
			serviceLogger.Error("Token carries an unknown role", nil, port.Fields{"role": claims.Role})
			return nil, domain.ErrTokenInvalid
		}

		return &domain.Claims{
			UserID:   claims.UserID,
			Username: claims.Username,
			Role:     role,
		}, nil
	}

	serviceLogger.Error("Token was parsed without error, but claims type assertion failed", nil, nil)
	return nil, domain.ErrTokenInvalid
}
