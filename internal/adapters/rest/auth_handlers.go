package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"palais-immobilier-api/internal/contextkeys"
	"palais-immobilier-api/internal/core/domain"
	"palais-immobilier-api/internal/core/port"
	"palais-immobilier-api/internal/core/port/usecases_port"
)

type AuthHandlers struct {
	loginUC    usecases_port.LoginUserUseCasePort
	validateUC usecases_port.ValidateTokenUseCasePort
	getUserUC  usecases_port.GetUserByIDUseCase
}

func NewAuthHandlers(loginUC usecases_port.LoginUserUseCasePort,
	validateUC usecases_port.ValidateTokenUseCasePort,
	getUserUC usecases_port.GetUserByIDUseCase) *AuthHandlers {
	return &AuthHandlers{
		loginUC:    loginUC,
		validateUC: validateUC,
		getUserUC:  getUserUC,
	}
}

// Login handles POST /auth/login.
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "Login"})

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("Failed to decode login request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	handlerLogger := logger.WithFields(port.Fields{"username": req.Username})
	handlerLogger.Info("Processing login request", nil)

	user, token, err := h.loginUC.Execute(r.Context(), req.Username, req.Password)
	if err != nil {
		// A missing field is a validation problem, not an authentication one.
		if errors.Is(err, domain.ErrValidation) {
			handlerLogger.Warn("Login rejected: username and password are required", nil)
			WriteJSONError(w, http.StatusBadRequest, "Username and password are required")
			return
		}
		if errors.Is(err, domain.ErrInvalidCredentials) {
			handlerLogger.Warn("Login failed: invalid credentials", nil)
			WriteJSONError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		handlerLogger.Error("Login use case failed with an unexpected error", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	handlerLogger.Info("User logged in successfully", port.Fields{"user_id": user.ID})

	RespondWithJSON(w, http.StatusOK, AuthResponse{
		Token: token,
		User:  toUserResponse(user),
	})
}

// ValidateToken handles POST /auth/validate.
func (h *AuthHandlers) ValidateToken(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "ValidateToken"})

	var req ValidateTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("Failed to decode validation request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	claims, err := h.validateUC.Execute(r.Context(), req.Token)
	if err != nil {
		logger.Warn("Token validation failed", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusUnauthorized, "Invalid or expired token")
		return
	}

	RespondWithJSON(w, http.StatusOK, ValidateTokenResponse{
		UserID:      claims.UserID,
		Username:    claims.Username,
		Role:        string(claims.Role),
		LandingPage: claims.Role.LandingPage(),
	})
}

// Me handles GET /auth/me for an authenticated caller.
func (h *AuthHandlers) Me(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "Me"})

	claims := ClaimsFromContext(r.Context())
	if claims == nil {
		WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	user, err := h.getUserUC.Execute(r.Context(), claims.UserID)
	if err != nil {
		logger.Warn("Authenticated user no longer exists", port.Fields{"user_id": claims.UserID})
		WriteJSONError(w, http.StatusNotFound, "User not found")
		return
	}

	RespondWithJSON(w, http.StatusOK, toUserResponse(user))
}
