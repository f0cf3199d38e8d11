package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/srosales/sigboard/internal/logger"
	"github.com/srosales/sigboard/internal/services"
)

// SignatureDeleter defines the interface that the service must implement.
type SignatureDeleter interface {
	Delete(ctx context.Context, id int64) error
}

// DeleteSignatureResponse represents the confirmation body after a delete.
// Unlike the users endpoint this returns a JSON body rather than no content;
// existing clients expect the confirmation message.
// swagger:model DeleteSignatureResponse
type DeleteSignatureResponse struct {
	// Confirmation message
	// default: Signature deleted successfully
	Message string `json:"message"`
}

// NewSignatureDeleteHandler returns an HTTP handler deleting a signature.
// @Summary Delete signature
// @Description Deletes a signature by id and returns a confirmation message.
// @Tags signatures
// @Produce json
// @Param id path int true "Signature id"
// @Success 200 {object} handlers.DeleteSignatureResponse "Signature deleted"
// @Failure 400 {object} handlers.ErrorResponse "Invalid id"
// @Failure 404 {object} handlers.ErrorResponse "Signature not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /signatures/{id} [delete]
func NewSignatureDeleteHandler(svc SignatureDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			switch {
			case errors.Is(err, services.ErrSignatureNotFound):
				writeError(w, http.StatusNotFound, "Signature not found")
			default:
				logger.Log.Errorw("delete signature failed", "id", id, "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, DeleteSignatureResponse{
			Message: "Signature deleted successfully",
		})
	}
}
