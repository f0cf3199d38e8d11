package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/srosales/sigboard/internal/logger"
	"github.com/srosales/sigboard/internal/models"
	"github.com/srosales/sigboard/internal/services"
)

// SignatureGetter defines the interface that the service must implement.
type SignatureGetter interface {
	Get(ctx context.Context, id int64) (*models.SignatureDB, error)
}

// NewSignatureGetHandler returns an HTTP handler fetching a single signature.
// @Summary Get signature
// @Description Returns a single signature by id, image included as a data URI.
// @Tags signatures
// @Produce json
// @Param id path int true "Signature id"
// @Success 200 {object} models.SignatureDB "Signature"
// @Failure 400 {object} handlers.ErrorResponse "Invalid id"
// @Failure 404 {object} handlers.ErrorResponse "Signature not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /signatures/{id} [get]
func NewSignatureGetHandler(svc SignatureGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		sig, err := svc.Get(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrSignatureNotFound):
				writeError(w, http.StatusNotFound, "Signature not found")
			default:
				logger.Log.Errorw("get signature failed", "id", id, "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, sig)
	}
}
