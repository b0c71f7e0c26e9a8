package token_adapter

import (
	"context"
	"errors"
	"palais-immobilier-api/internal/core/domain"
	"testing"
	"time"
)

func TestNewTokenServiceRejectsEmptyKey(t *testing.T) {
	if _, err := NewTokenService(""); err == nil {
		t.Fatal("expected error for empty signing key")
	}
}

func TestTokenRoundTrip(t *testing.T) {
	svc, err := NewTokenService("test-signing-key")
	if err != nil {
		t.Fatal(err)
	}

	user := &domain.User{ID: "42", Username: "yasmine", Role: domain.RoleAgent}
	token, err := svc.GenerateToken(context.Background(), user, time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	if token == "" {
		t.Fatal("empty token")
	}

	claims, err := svc.ValidateToken(context.Background(), token)
	if err != nil {
		t.Fatal(err)
	}
	if claims.UserID != "42" || claims.Username != "yasmine" || claims.Role != domain.RoleAgent {
		t.Fatalf("claims = %+v", claims)
	}
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	svc, err := NewTokenService("test-signing-key")
	if err != nil {
		t.Fatal(err)
	}

	user := &domain.User{ID: "1", Username: "karim", Role: domain.RoleAdmin}
	token, err := svc.GenerateToken(context.Background(), user, -time.Minute)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := svc.ValidateToken(context.Background(), token); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("err = %v, want ErrTokenInvalid", err)
	}
}

func TestValidateTokenRejectsWrongKey(t *testing.T) {
	issuer, _ := NewTokenService("key-one")
	verifier, _ := NewTokenService("key-two")

	user := &domain.User{ID: "1", Username: "karim", Role: domain.RoleAdmin}
	token, err := issuer.GenerateToken(context.Background(), user, time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := verifier.ValidateToken(context.Background(), token); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("err = %v, want ErrTokenInvalid", err)
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc, _ := NewTokenService("test-signing-key")

	for _, token := range []string{"", "not-a-jwt", "a.b.c"} {
		if _, err := svc.ValidateToken(context.Background(), token); !errors.Is(err, domain.ErrTokenInvalid) {
			t.Fatalf("token %q: err = %v, want ErrTokenInvalid", token, err)
		}
	}
}
