package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/srosales/sigboard/internal/logger"
	"github.com/srosales/sigboard/internal/models"
	"github.com/srosales/sigboard/internal/repositories"
)

// SignatureReader defines read-only operations for signatures.
type SignatureReader interface {
	List(ctx context.Context) ([]models.SignatureDB, error)
	Get(ctx context.Context, id int64) (*models.SignatureDB, error)
}

// SignatureWriter defines write operations for signatures.
type SignatureWriter interface {
	Create(ctx context.Context, name, image string) (*models.SignatureDB, error)
	Update(ctx context.Context, id int64, name, image *string) (*models.SignatureDB, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// SignatureCache caches the full signature collection.
type SignatureCache interface {
	GetList(ctx context.Context) ([]models.SignatureDB, error)
	SetList(ctx context.Context, signatures []models.SignatureDB) error
	InvalidateList(ctx context.Context) error
}

// SignatureService enforces validation and store-call sequencing for the
// signatures collection, including the partial-update field rules.
type SignatureService struct {
	reader      SignatureReader
	writer      SignatureWriter
	cache       SignatureCache
	kafkaWriter KafkaWriter
}

// NewSignatureService creates a new SignatureService. Cache and Kafka writer
// may be nil; the service degrades to store-only operation.
func NewSignatureService(reader SignatureReader, writer SignatureWriter, cache SignatureCache, kafkaWriter KafkaWriter) *SignatureService {
	return &SignatureService{
		reader:      reader,
		writer:      writer,
		cache:       cache,
		kafkaWriter: kafkaWriter,
	}
}

// List returns all signatures, newest first. The cached collection is served
// when warm; a miss falls through to the store and re-primes the cache.
func (svc *SignatureService) List(ctx context.Context) ([]models.SignatureDB, error) {
	if svc.cache != nil {
		if cached, err := svc.cache.GetList(ctx); err == nil {
			return cached, nil
		}
	}

	signatures, err := svc.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list signatures", "err", err)
		return nil, mapSignatureStoreError(err)
	}

	if svc.cache != nil {
		if err := svc.cache.SetList(ctx, signatures); err != nil {
			logger.Log.Warnw("failed to prime signature cache", "err", err)
		}
	}
	return signatures, nil
}

// Get returns a single signature or ErrSignatureNotFound.
func (svc *SignatureService) Get(ctx context.Context, id int64) (*models.SignatureDB, error) {
	sig, err := svc.reader.Get(ctx, id)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			logger.Log.Errorw("failed to get signature", "id", id, "err", err)
		}
		return nil, mapSignatureStoreError(err)
	}
	return sig, nil
}

// Create validates name and image and inserts a new signature. The image
// must be a self-describing encoded-image data URI.
func (svc *SignatureService) Create(ctx context.Context, name, image string) (*models.SignatureDB, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if image == "" {
		return nil, fmt.Errorf("%w: signature image is required", ErrValidation)
	}
	if err := validateImage(image); err != nil {
		return nil, err
	}

	sig, err := svc.writer.Create(ctx, strings.TrimSpace(name), image)
	if err != nil {
		logger.Log.Errorw("failed to create signature", "name", name, "err", err)
		return nil, mapSignatureStoreError(err)
	}

	svc.invalidateCache(ctx)
	publishMutation(ctx, svc.kafkaWriter, "signatures", models.ActionCreated, sig.ID)
	return sig, nil
}

// Update applies a partial update. At least one of name and image must be
// provided; a provided-but-blank field is rejected rather than silently
// dropped, since the schema cannot store an empty name or image. The store
// is never reached when validation fails, so updated_at stays untouched.
func (svc *SignatureService) Update(ctx context.Context, id int64, name, image *string) (*models.SignatureDB, error) {
	if name == nil && image == nil {
		return nil, fmt.Errorf("%w: at least one of name and signature image is required", ErrValidation)
	}
	if name != nil && strings.TrimSpace(*name) == "" {
		return nil, fmt.Errorf("%w: name must not be blank", ErrValidation)
	}
	if image != nil {
		if *image == "" {
			return nil, fmt.Errorf("%w: signature image must not be blank", ErrValidation)
		}
		if err := validateImage(*image); err != nil {
			return nil, err
		}
	}

	if name != nil {
		trimmed := strings.TrimSpace(*name)
		name = &trimmed
	}

	sig, err := svc.writer.Update(ctx, id, name, image)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			logger.Log.Errorw("failed to update signature", "id", id, "err", err)
		}
		return nil, mapSignatureStoreError(err)
	}

	svc.invalidateCache(ctx)
	publishMutation(ctx, svc.kafkaWriter, "signatures", models.ActionUpdated, sig.ID)
	return sig, nil
}

// Delete removes a signature or returns ErrSignatureNotFound.
func (svc *SignatureService) Delete(ctx context.Context, id int64) error {
	affected, err := svc.writer.Delete(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to delete signature", "id", id, "err", err)
		return mapSignatureStoreError(err)
	}
	if affected == 0 {
		return ErrSignatureNotFound
	}

	svc.invalidateCache(ctx)
	publishMutation(ctx, svc.kafkaWriter, "signatures", models.ActionDeleted, id)
	return nil
}

func (svc *SignatureService) invalidateCache(ctx context.Context) {
	if svc.cache == nil {
		return
	}
	if err := svc.cache.InvalidateList(ctx); err != nil {
		logger.Log.Warnw("failed to invalidate signature cache", "err", err)
	}
}

func validateImage(image string) error {
	if !strings.HasPrefix(image, models.ImagePrefix) {
		return fmt.Errorf("%w: signature image must be an encoded image data URI", ErrValidation)
	}
	return nil
}

// mapSignatureStoreError translates adapter errors into the service taxonomy.
func mapSignatureStoreError(err error) error {
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return ErrSignatureNotFound
	case repositories.IsCode(err, repositories.CodeUnavailable):
		return ErrStoreUnavailable
	default:
		return err
	}
}
