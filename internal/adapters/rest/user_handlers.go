package rest

import (
	"errors"
	"net/http"
	"palais-immobilier-api/internal/core/domain"
	"palais-immobilier-api/internal/core/port/usecases_port"

	"github.com/go-chi/chi/v5"
)

type UserHandlers struct {
	listUC    usecases_port.ListUsersUseCase
	getUserUC usecases_port.GetUserByIDUseCase
}

func NewUserHandlers(listUC usecases_port.ListUsersUseCase,
	getUserUC usecases_port.GetUserByIDUseCase) *UserHandlers {
	return &UserHandlers{listUC: listUC, getUserUC: getUserUC}
}

// ListUsers handles GET /users (admin only).
func (h *UserHandlers) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.listUC.Execute(r.Context())
	if err != nil {
		WriteJSONError(w, http.StatusInternalServerError, "Failed to list users")
		return
	}

	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, toUserResponse(&users[i]))
	}
	RespondWithJSON(w, http.StatusOK, out)
}

// GetUser handles GET /users/{userID} (admin only).
func (h *UserHandlers) GetUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	user, err := h.getUserUC.Execute(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			WriteJSONError(w, http.StatusNotFound, "User not found")
			return
		}
		WriteJSONError(w, http.StatusInternalServerError, "Failed to load user")
		return
	}

	RespondWithJSON(w, http.StatusOK, toUserResponse(user))
}
