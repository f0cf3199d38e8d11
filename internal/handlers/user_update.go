package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/srosales/sigboard/internal/logger"
	"github.com/srosales/sigboard/internal/models"
	"github.com/srosales/sigboard/internal/services"
)

// UserUpdater defines the interface that the service must implement.
type UserUpdater interface {
	Update(ctx context.Context, id int64, username, email string) (*models.UserDB, error)
}

// UpdateUserRequest represents the JSON body for a full user replace
// swagger:model UpdateUserRequest
type UpdateUserRequest struct {
	// Username
	// required: true
	// default: john_doe
	Username string `json:"username"`

	// Email, unique across users
	// required: true
	// default: john@example.com
	Email string `json:"email"`
}

// NewUserUpdateHandler returns an HTTP handler replacing a user in place.
// Both fields are required: PUT is a full replace, not a partial update.
// @Summary Update user
// @Description Replaces username and email of an existing user.
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User id"
// @Param updateUserRequest body handlers.UpdateUserRequest true "User update request"
// @Success 200 {object} models.UserDB "Updated user"
// @Failure 400 {object} handlers.ErrorResponse "Validation failure or duplicate email"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /users/{id} [put]
func NewUserUpdateHandler(svc UserUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		var req UpdateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		user, err := svc.Update(r.Context(), id, req.Username, req.Email)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrValidation):
				writeError(w, http.StatusBadRequest, err.Error())
			case errors.Is(err, services.ErrEmailTaken):
				writeError(w, http.StatusBadRequest, "Email already exists")
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, "User not found")
			default:
				logger.Log.Errorw("update user failed", "id", id, "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}
