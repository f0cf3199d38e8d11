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

// SignatureUpdater defines the interface that the service must implement.
type SignatureUpdater interface {
	Update(ctx context.Context, id int64, name, image *string) (*models.SignatureDB, error)
}

// UpdateSignatureRequest represents the JSON body for a partial signature
// update. Pointer fields distinguish "absent" from "provided but blank":
// an omitted field is left untouched, a blank one is rejected.
// swagger:model UpdateSignatureRequest
type UpdateSignatureRequest struct {
	// Signer name
	// default: John Doe
	Name *string `json:"name,omitempty"`

	// Encoded signature image as a data URI
	// default: data:image/png;base64,AAAA
	Image *string `json:"signature_image,omitempty"`
}

// NewSignatureUpdateHandler returns an HTTP handler partially updating a
// signature. At least one of name and image must be supplied.
// @Summary Update signature
// @Description Updates name, image, or both. Absent fields keep their stored value.
// @Tags signatures
// @Accept json
// @Produce json
// @Param id path int true "Signature id"
// @Param updateSignatureRequest body handlers.UpdateSignatureRequest true "Signature update request"
// @Success 200 {object} models.SignatureDB "Updated signature"
// @Failure 400 {object} handlers.ErrorResponse "Validation failure"
// @Failure 404 {object} handlers.ErrorResponse "Signature not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /signatures/{id} [put]
func NewSignatureUpdateHandler(svc SignatureUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		var req UpdateSignatureRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		sig, err := svc.Update(r.Context(), id, req.Name, req.Image)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrValidation):
				writeError(w, http.StatusBadRequest, err.Error())
			case errors.Is(err, services.ErrSignatureNotFound):
				writeError(w, http.StatusNotFound, "Signature not found")
			default:
				logger.Log.Errorw("update signature failed", "id", id, "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, sig)
	}
}
