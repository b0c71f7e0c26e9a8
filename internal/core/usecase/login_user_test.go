package usecase

import (
	"context"
	"errors"
	"palais-immobilier-api/internal/adapters/memstore"
	"palais-immobilier-api/internal/core/domain"
	"testing"
	"time"
)

// stubTokenService issues a fixed token without any cryptography.
type stubTokenService struct {
	token string
	err   error
}

func (s *stubTokenService) GenerateToken(ctx context.Context, user *domain.User, ttl time.Duration) (string, error) {
	return s.token, s.err
}

func (s *stubTokenService) ValidateToken(ctx context.Context, tokenString string) (*domain.Claims, error) {
	return nil, domain.ErrTokenInvalid
}

func newLoginUseCase(t *testing.T) *LoginUserUseCase {
	t.Helper()
	repo := memstore.NewUserRepository(memstore.SeedUsers())
	return NewLoginUserUseCase(repo, &stubTokenService{token: "session-token"}, time.Hour)
}

func TestLoginWithSeededCredentials(t *testing.T) {
	uc := newLoginUseCase(t)

	cases := []struct {
		username string
		role     domain.Role
	}{
		{"admin", domain.RoleAdmin},
		{"agent", domain.RoleAgent},
		{"user", domain.RoleUser},
	}

	for _, tc := range cases {
		t.Run(tc.username, func(t *testing.T) {
			user, token, err := uc.Execute(context.Background(), tc.username, "123")
			if err != nil {
				t.Fatal(err)
			}
			if user.Role != tc.role {
				t.Fatalf("role = %s, want %s", user.Role, tc.role)
			}
			if token != "session-token" {
				t.Fatalf("token = %q", token)
			}
			if user.PasswordHash == "" {
				t.Fatal("seeded user has no password hash")
			}
		})
	}
}

func TestLoginWrongPassword(t *testing.T) {
	uc := newLoginUseCase(t)

	_, _, err := uc.Execute(context.Background(), "admin", "wrong")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginUnknownUser(t *testing.T) {
	uc := newLoginUseCase(t)

	// Unknown usernames get the same answer as bad passwords.
	_, _, err := uc.Execute(context.Background(), "ghost", "123")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginMissingFields(t *testing.T) {
	uc := newLoginUseCase(t)

	cases := []struct {
		name     string
		username string
		password string
	}{
		{"no username", "", "123"},
		{"no password", "admin", ""},
		{"nothing", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := uc.Execute(context.Background(), tc.username, tc.password)
			if !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("err = %v, want ErrValidation", err)
			}
		})
	}
}
