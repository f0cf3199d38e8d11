package handlers

import (
	"context"
	"net/http"

	"github.com/srosales/sigboard/internal/logger"
	"github.com/srosales/sigboard/internal/models"
)

// SignatureLister defines the interface that the service must implement.
type SignatureLister interface {
	List(ctx context.Context) ([]models.SignatureDB, error)
}

// NewSignatureListHandler returns an HTTP handler listing all signatures.
// @Summary List signatures
// @Description Returns all signatures ordered by creation time descending.
// @Tags signatures
// @Produce json
// @Success 200 {array} models.SignatureDB "Signature collection"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /signatures [get]
func NewSignatureListHandler(svc SignatureLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		signatures, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("list signatures failed", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, signatures)
	}
}
