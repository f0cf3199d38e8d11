package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/srosales/sigboard/internal/models"
)

// SignaturesClient covers the /signatures resource endpoints.
type SignaturesClient struct {
	c *Client
}

// Signatures returns a resource client for /signatures.
func (c *Client) Signatures() *SignaturesClient {
	return &SignaturesClient{c: c}
}

// List fetches the whole collection, newest first.
func (s *SignaturesClient) List(ctx context.Context) ([]models.SignatureDB, error) {
	var signatures []models.SignatureDB
	if err := s.c.do(ctx, http.MethodGet, "/signatures", nil, &signatures); err != nil {
		return nil, err
	}
	return signatures, nil
}

// Get fetches a single signature by id, image included.
func (s *SignaturesClient) Get(ctx context.Context, id int64) (*models.SignatureDB, error) {
	var sig models.SignatureDB
	if err := s.c.do(ctx, http.MethodGet, fmt.Sprintf("/signatures/%d", id), nil, &sig); err != nil {
		return nil, err
	}
	return &sig, nil
}

// Create posts a new signature.
func (s *SignaturesClient) Create(ctx context.Context, name, image string) (*models.SignatureDB, error) {
	body := map[string]string{"name": name, "signature_image": image}
	var sig models.SignatureDB
	if err := s.c.do(ctx, http.MethodPost, "/signatures", body, &sig); err != nil {
		return nil, err
	}
	return &sig, nil
}

// Update applies a partial update. Nil fields are omitted from the request
// body and keep their stored values.
func (s *SignaturesClient) Update(ctx context.Context, id int64, name, image *string) (*models.SignatureDB, error) {
	body := map[string]*string{}
	if name != nil {
		body["name"] = name
	}
	if image != nil {
		body["signature_image"] = image
	}

	var sig models.SignatureDB
	if err := s.c.do(ctx, http.MethodPut, fmt.Sprintf("/signatures/%d", id), body, &sig); err != nil {
		return nil, err
	}
	return &sig, nil
}

// Delete removes a signature. The confirmation body is discarded.
func (s *SignaturesClient) Delete(ctx context.Context, id int64) error {
	return s.c.do(ctx, http.MethodDelete, fmt.Sprintf("/signatures/%d", id), nil, nil)
}
