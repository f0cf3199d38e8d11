package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/srosales/sigboard/internal/logger"
	"github.com/srosales/sigboard/internal/models"
)

// UserReadRepository handles user read operations.
type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// List returns all users ordered by id ascending. An empty slice is a valid
// result, not an error.
func (r *UserReadRepository) List(ctx context.Context) ([]models.UserDB, error) {
	const query = `
		SELECT id, username, email
		FROM users
		ORDER BY id ASC
	`

	users := []models.UserDB{}
	err := r.db.SelectContext(ctx, &users, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(users),
		"error", err,
	)

	return users, wrapStoreError(err)
}

// Get returns a single user by id. sql.ErrNoRows propagates when the id is
// absent.
func (r *UserReadRepository) Get(ctx context.Context, id int64) (*models.UserDB, error) {
	const query = `
		SELECT id, username, email
		FROM users
		WHERE id = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, id)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"result", user,
		"error", err,
	)

	if err != nil {
		return nil, wrapStoreError(err)
	}
	return &user, nil
}

// UserWriteRepository handles user write operations.
type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewUserWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

func (r *UserWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Create inserts a user and returns the stored row with its assigned id.
func (r *UserWriteRepository) Create(ctx context.Context, username, email string) (*models.UserDB, error) {
	const query = `
		INSERT INTO users (username, email)
		VALUES ($1, $2)
		RETURNING id, username, email
	`
	args := []any{username, email}

	var user models.UserDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &user, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", user,
		"error", err,
	)

	if err != nil {
		return nil, wrapStoreError(err)
	}
	return &user, nil
}

// Update replaces username and email in place. sql.ErrNoRows propagates when
// the id is absent.
func (r *UserWriteRepository) Update(ctx context.Context, id int64, username, email string) (*models.UserDB, error) {
	const query = `
		UPDATE users
		SET username = $1, email = $2
		WHERE id = $3
		RETURNING id, username, email
	`
	args := []any{username, email, id}

	var user models.UserDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &user, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", user,
		"error", err,
	)

	if err != nil {
		return nil, wrapStoreError(err)
	}
	return &user, nil
}

// Delete removes a user and reports the number of rows affected.
func (r *UserWriteRepository) Delete(ctx context.Context, id int64) (int64, error) {
	const query = `
		DELETE FROM users
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
