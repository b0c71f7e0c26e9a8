package rest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"palais-immobilier-api/internal/core/domain"
	"testing"
)

// stubValidator resolves a fixed token table.
type stubValidator struct {
	tokens map[string]*domain.Claims
}

func (s *stubValidator) Execute(ctx context.Context, tokenString string) (*domain.Claims, error) {
	if claims, ok := s.tokens[tokenString]; ok {
		return claims, nil
	}
	return nil, domain.ErrTokenInvalid
}

func newTestMiddleware() *AuthMiddleware {
	return NewAuthMiddleware(&stubValidator{tokens: map[string]*domain.Claims{
		"admin-token": {UserID: "1", Username: "admin", Role: domain.RoleAdmin},
		"agent-token": {UserID: "2", Username: "agent", Role: domain.RoleAgent},
		"user-token":  {UserID: "3", Username: "user", Role: domain.RoleUser},
	}})
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func doRequest(handler http.Handler, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestAuthenticateRejectsMissingAndBadTokens(t *testing.T) {
	am := newTestMiddleware()
	handler := am.Authenticate(okHandler())

	if rec := doRequest(handler, ""); rec.Code != http.StatusUnauthorized {
		t.Fatalf("no token: status %d", rec.Code)
	}
	if rec := doRequest(handler, "forged"); rec.Code != http.StatusUnauthorized {
		t.Fatalf("bad token: status %d", rec.Code)
	}

	// A raw header without the Bearer prefix is also rejected.
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "admin-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("no prefix: status %d", rec.Code)
	}
}

func TestAuthenticatePutsClaimsIntoContext(t *testing.T) {
	am := newTestMiddleware()

	var got *domain.Claims
	handler := am.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = ClaimsFromContext(r.Context())
	}))

	if rec := doRequest(handler, "agent-token"); rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	if got == nil || got.UserID != "2" || got.Role != domain.RoleAgent {
		t.Fatalf("claims = %+v", got)
	}
}

func TestRequireAnyRole(t *testing.T) {
	am := newTestMiddleware()
	handler := am.Authenticate(am.RequireAnyRole(domain.RoleAgent, domain.RoleAdmin)(okHandler()))

	if rec := doRequest(handler, "agent-token"); rec.Code != http.StatusOK {
		t.Fatalf("agent: status %d", rec.Code)
	}
	if rec := doRequest(handler, "admin-token"); rec.Code != http.StatusOK {
		t.Fatalf("admin: status %d", rec.Code)
	}
	if rec := doRequest(handler, "user-token"); rec.Code != http.StatusForbidden {
		t.Fatalf("user: status %d, want 403", rec.Code)
	}
}

func TestRequireDashboardRoleRedirects(t *testing.T) {
	am := newTestMiddleware()
	handler := am.RequireDashboardRole(domain.RoleAdmin)(okHandler())

	cases := []struct {
		name         string
		token        string
		wantStatus   int
		wantLocation string
	}{
		{"matching role passes", "admin-token", http.StatusOK, ""},
		{"anonymous goes to login", "", http.StatusSeeOther, "/login"},
		{"invalid token counts as anonymous", "forged", http.StatusSeeOther, "/login"},
		{"agent lands on own dashboard", "agent-token", http.StatusSeeOther, "/dashboard/agent"},
		{"user lands on own dashboard", "user-token", http.StatusSeeOther, "/dashboard/user"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doRequest(handler, tc.token)
			if rec.Code != tc.wantStatus {
				t.Fatalf("status %d, want %d", rec.Code, tc.wantStatus)
			}
			if tc.wantLocation != "" && rec.Header().Get("Location") != tc.wantLocation {
				t.Fatalf("location %q, want %q", rec.Header().Get("Location"), tc.wantLocation)
			}
		})
	}
}

func TestWithOptionalClaims(t *testing.T) {
	am := newTestMiddleware()

	var got *domain.Claims
	handler := am.WithOptionalClaims(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = ClaimsFromContext(r.Context())
	}))

	// Anonymous requests pass through without claims.
	if rec := doRequest(handler, ""); rec.Code != http.StatusOK {
		t.Fatalf("anonymous: status %d", rec.Code)
	}
	if got != nil {
		t.Fatalf("anonymous claims = %+v", got)
	}

	// A bad token is ignored, not rejected.
	if rec := doRequest(handler, "forged"); rec.Code != http.StatusOK {
		t.Fatalf("forged: status %d", rec.Code)
	}
	if got != nil {
		t.Fatalf("forged claims = %+v", got)
	}

	if rec := doRequest(handler, "admin-token"); rec.Code != http.StatusOK {
		t.Fatalf("valid: status %d", rec.Code)
	}
	if got == nil || got.Role != domain.RoleAdmin {
		t.Fatalf("valid claims = %+v", got)
	}
}
