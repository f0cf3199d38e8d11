package repositories

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/srosales/sigboard/internal/logger"
	"github.com/srosales/sigboard/internal/models"
)

// signatureListKey holds the JSON-encoded full collection. A single key is
// enough: every mutation invalidates the whole list, matching the client's
// mutation-then-full-reload pattern.
const signatureListKey = "signatures:list"

// SignatureCacheRepository caches the signature collection in Redis.
type SignatureCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

func NewSignatureCacheRepository(client *redis.Client, expiration time.Duration) *SignatureCacheRepository {
	return &SignatureCacheRepository{client: client, exp: expiration}
}

// GetList returns the cached collection, or redis.Nil when the cache is cold.
func (r *SignatureCacheRepository) GetList(ctx context.Context) ([]models.SignatureDB, error) {
	val, err := r.client.Get(ctx, signatureListKey).Result()

	logger.Log.Infow(
		"key", signatureListKey,
		"hit", err == nil,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	var signatures []models.SignatureDB
	if err := json.Unmarshal([]byte(val), &signatures); err != nil {
		return nil, err
	}
	return signatures, nil
}

// SetList stores the collection with the configured TTL.
func (r *SignatureCacheRepository) SetList(ctx context.Context, signatures []models.SignatureDB) error {
	data, err := json.Marshal(signatures)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, signatureListKey, data, r.exp).Err()

	logger.Log.Infow(
		"key", signatureListKey,
		"size", len(signatures),
		"error", err,
	)

	return err
}

// InvalidateList drops the cached collection after a mutation.
func (r *SignatureCacheRepository) InvalidateList(ctx context.Context) error {
	err := r.client.Del(ctx, signatureListKey).Err()

	logger.Log.Infow(
		"key", signatureListKey,
		"invalidated", err == nil,
		"error", err,
	)

	return err
}
