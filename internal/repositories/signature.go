package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/srosales/sigboard/internal/logger"
	"github.com/srosales/sigboard/internal/models"
)

// SignatureReadRepository handles signature read operations.
type SignatureReadRepository struct {
	db *sqlx.DB
}

func NewSignatureReadRepository(db *sqlx.DB) *SignatureReadRepository {
	return &SignatureReadRepository{db: db}
}

// List returns all signatures, newest first.
func (r *SignatureReadRepository) List(ctx context.Context) ([]models.SignatureDB, error) {
	const query = `
		SELECT id, name, signature_data, created_at, updated_at
		FROM signatures
		ORDER BY created_at DESC, id DESC
	`

	signatures := []models.SignatureDB{}
	err := r.db.SelectContext(ctx, &signatures, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(signatures),
		"error", err,
	)

	return signatures, wrapStoreError(err)
}

// Get returns a single signature by id. sql.ErrNoRows propagates when the id
// is absent.
func (r *SignatureReadRepository) Get(ctx context.Context, id int64) (*models.SignatureDB, error) {
	const query = `
		SELECT id, name, signature_data, created_at, updated_at
		FROM signatures
		WHERE id = $1
	`

	var sig models.SignatureDB
	err := r.db.GetContext(ctx, &sig, query, id)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"result", sig.ID,
		"error", err,
	)

	if err != nil {
		return nil, wrapStoreError(err)
	}
	return &sig, nil
}

// SignatureWriteRepository handles signature write operations.
type SignatureWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewSignatureWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *SignatureWriteRepository {
	return &SignatureWriteRepository{db: db, txGetter: txGetter}
}

func (r *SignatureWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Create inserts a signature and returns the stored row, timestamps included.
func (r *SignatureWriteRepository) Create(ctx context.Context, name, image string) (*models.SignatureDB, error) {
	const query = `
		INSERT INTO signatures (name, signature_data, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		RETURNING id, name, signature_data, created_at, updated_at
	`
	args := []any{name, image}

	var sig models.SignatureDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &sig, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{name, len(image)},
		"result", sig.ID,
		"error", err,
	)

	if err != nil {
		return nil, wrapStoreError(err)
	}
	return &sig, nil
}

// Update issues exactly one of three UPDATE shapes depending on which fields
// are provided. Absent fields are never overwritten with NULL. updated_at is
// refreshed on every shape. Callers guarantee at least one field is non-nil.
func (r *SignatureWriteRepository) Update(ctx context.Context, id int64, name, image *string) (*models.SignatureDB, error) {
	var (
		query string
		args  []any
	)

	switch {
	case name != nil && image != nil:
		query = `
			UPDATE signatures
			SET name = $1, signature_data = $2, updated_at = NOW()
			WHERE id = $3
			RETURNING id, name, signature_data, created_at, updated_at
		`
		args = []any{*name, *image, id}
	case name != nil:
		query = `
			UPDATE signatures
			SET name = $1, updated_at = NOW()
			WHERE id = $2
			RETURNING id, name, signature_data, created_at, updated_at
		`
		args = []any{*name, id}
	default:
		query = `
			UPDATE signatures
			SET signature_data = $1, updated_at = NOW()
			WHERE id = $2
			RETURNING id, name, signature_data, created_at, updated_at
		`
		args = []any{*image, id}
	}

	var sig models.SignatureDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &sig, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"result", sig.ID,
		"error", err,
	)

	if err != nil {
		return nil, wrapStoreError(err)
	}
	return &sig, nil
}

// Delete removes a signature and reports the number of rows affected.
func (r *SignatureWriteRepository) Delete(ctx context.Context, id int64) (int64, error) {
	const query = `
		DELETE FROM signatures
		WHERE id = $1
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, wrapStoreError(err)
}
