package rest

import (
	"context"
	"net/http"
	"palais-immobilier-api/internal/core/domain"
	"palais-immobilier-api/internal/core/port/usecases_port"
	"strings"
)

// Custom context key type to avoid collisions.
type contextKey string

const claimsKey = contextKey("claims")

// ClaimsFromContext returns the authenticated claims, or nil for anonymous
// requests.
func ClaimsFromContext(ctx context.Context) *domain.Claims {
	if claims, ok := ctx.Value(claimsKey).(*domain.Claims); ok {
		return claims
	}
	return nil
}

type AuthMiddleware struct {
	validateUC usecases_port.ValidateTokenUseCasePort
}

func NewAuthMiddleware(validateUC usecases_port.ValidateTokenUseCasePort) *AuthMiddleware {
	return &AuthMiddleware{validateUC: validateUC}
}

// claimsFromRequest extracts and validates the Bearer token, if any.
func (am *AuthMiddleware) claimsFromRequest(r *http.Request) *domain.Claims {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return nil
	}

	claims, err := am.validateUC.Execute(r.Context(), tokenString)
	if err != nil {
		return nil
	}
	return claims
}

// Authenticate guards the data API: requests without a valid Bearer token are
// rejected with 401.
func (am *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			WriteJSONError(w, http.StatusUnauthorized, "Authorization header required")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			WriteJSONError(w, http.StatusUnauthorized, "Invalid token format")
			return
		}

		claims, err := am.validateUC.Execute(r.Context(), tokenString)
		if err != nil {
			WriteJSONError(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// WithOptionalClaims attaches claims when a valid token is present but never
// rejects the request. Public endpoints that behave differently for staff
// (unapproved listing details) sit behind this.
func (am *AuthMiddleware) WithOptionalClaims(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if claims := am.claimsFromRequest(r); claims != nil {
			ctx := context.WithValue(r.Context(), claimsKey, claims)
			r = r.WithContext(ctx)
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAnyRole guards data endpoints: 403 when the authenticated role is
// not in the allowed set. Must run after Authenticate.
func (am *AuthMiddleware) RequireAnyRole(roles ...domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := ClaimsFromContext(r.Context())
			if claims == nil {
				WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
				return
			}

			for _, role := range roles {
				if claims.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			WriteJSONError(w, http.StatusForbidden, "Forbidden")
		})
	}
}

// RequireDashboardRole implements the page guard. A role mismatch is not an
// error: the visitor is silently redirected to their own landing page, and an
// anonymous visitor goes to the login entry point.
func (am *AuthMiddleware) RequireDashboardRole(expected domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := am.claimsFromRequest(r)
			if claims == nil {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}

			if claims.Role != expected {
				http.Redirect(w, r, claims.Role.LandingPage(), http.StatusSeeOther)
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
