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

// UserReader defines read-only operations for users.
type UserReader interface {
	List(ctx context.Context) ([]models.UserDB, error)
	Get(ctx context.Context, id int64) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Create(ctx context.Context, username, email string) (*models.UserDB, error)
	Update(ctx context.Context, id int64, username, email string) (*models.UserDB, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// UserService enforces validation and store-call sequencing for the users
// collection. Every call is a complete, independent transaction against the
// store; there is no cross-call memory.
type UserService struct {
	reader      UserReader
	writer      UserWriter
	kafkaWriter KafkaWriter
}

// NewUserService creates a new UserService. The Kafka writer may be nil.
func NewUserService(reader UserReader, writer UserWriter, kafkaWriter KafkaWriter) *UserService {
	return &UserService{
		reader:      reader,
		writer:      writer,
		kafkaWriter: kafkaWriter,
	}
}

// List returns all users ordered by id ascending.
func (svc *UserService) List(ctx context.Context) ([]models.UserDB, error) {
	users, err := svc.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list users", "err", err)
		return nil, mapUserStoreError(err)
	}
	return users, nil
}

// Get returns a single user or ErrUserNotFound.
func (svc *UserService) Get(ctx context.Context, id int64) (*models.UserDB, error) {
	user, err := svc.reader.Get(ctx, id)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			logger.Log.Errorw("failed to get user", "id", id, "err", err)
		}
		return nil, mapUserStoreError(err)
	}
	return user, nil
}

// Create validates the pair and inserts a new user. A duplicate email is
// reported as ErrEmailTaken; no other row is touched.
func (svc *UserService) Create(ctx context.Context, username, email string) (*models.UserDB, error) {
	if err := validateUserFields(username, email); err != nil {
		return nil, err
	}

	user, err := svc.writer.Create(ctx, strings.TrimSpace(username), strings.TrimSpace(email))
	if err != nil {
		logger.Log.Errorw("failed to create user", "username", username, "err", err)
		return nil, mapUserStoreError(err)
	}

	publishMutation(ctx, svc.kafkaWriter, "users", models.ActionCreated, user.ID)
	return user, nil
}

// Update replaces username and email in place. Both fields are required:
// this is a full-replace operation, not a partial one.
func (svc *UserService) Update(ctx context.Context, id int64, username, email string) (*models.UserDB, error) {
	if err := validateUserFields(username, email); err != nil {
		return nil, err
	}

	user, err := svc.writer.Update(ctx, id, strings.TrimSpace(username), strings.TrimSpace(email))
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			logger.Log.Errorw("failed to update user", "id", id, "err", err)
		}
		return nil, mapUserStoreError(err)
	}

	publishMutation(ctx, svc.kafkaWriter, "users", models.ActionUpdated, user.ID)
	return user, nil
}

// Delete removes a user or returns ErrUserNotFound.
func (svc *UserService) Delete(ctx context.Context, id int64) error {
	affected, err := svc.writer.Delete(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to delete user", "id", id, "err", err)
		return mapUserStoreError(err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	publishMutation(ctx, svc.kafkaWriter, "users", models.ActionDeleted, id)
	return nil
}

func validateUserFields(username, email string) error {
	if strings.TrimSpace(username) == "" {
		return fmt.Errorf("%w: username is required", ErrValidation)
	}
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("%w: email is required", ErrValidation)
	}
	return nil
}

// mapUserStoreError translates adapter errors into the service taxonomy.
func mapUserStoreError(err error) error {
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return ErrUserNotFound
	case repositories.IsCode(err, repositories.CodeUniqueViolation):
		return ErrEmailTaken
	case repositories.IsCode(err, repositories.CodeUnavailable):
		return ErrStoreUnavailable
	default:
		return err
	}
}
