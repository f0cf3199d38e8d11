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

// SignatureCreator defines the interface that the service must implement.
type SignatureCreator interface {
	Create(ctx context.Context, name, image string) (*models.SignatureDB, error)
}

// CreateSignatureRequest represents the JSON body for signature creation
// swagger:model CreateSignatureRequest
type CreateSignatureRequest struct {
	// Signer name
	// required: true
	// default: John Doe
	Name string `json:"name"`

	// Encoded signature image as a data URI
	// required: true
	// default: data:image/png;base64,AAAA
	Image string `json:"signature_image"`
}

// NewSignatureCreateHandler returns an HTTP handler creating a signature.
// @Summary Create signature
// @Description Creates a signature. Name and image are required; the image must be an encoded-image data URI.
// @Tags signatures
// @Accept json
// @Produce json
// @Param createSignatureRequest body handlers.CreateSignatureRequest true "Signature creation request"
// @Success 201 {object} models.SignatureDB "Created signature with assigned id and timestamps"
// @Failure 400 {object} handlers.ErrorResponse "Validation failure"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /signatures [post]
func NewSignatureCreateHandler(svc SignatureCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateSignatureRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		sig, err := svc.Create(r.Context(), req.Name, req.Image)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrValidation):
				writeError(w, http.StatusBadRequest, err.Error())
			default:
				logger.Log.Errorw("create signature failed", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusCreated, sig)
	}
}
