package state

import (
	"context"
	"sync"
	"time"

	"github.com/srosales/sigboard/internal/logger"
	"github.com/srosales/sigboard/internal/models"
)

// UsersAPI defines the server operations the session depends on.
type UsersAPI interface {
	List(ctx context.Context) ([]models.UserDB, error)
	Get(ctx context.Context, id int64) (*models.UserDB, error)
	Create(ctx context.Context, username, email string) (*models.UserDB, error)
	Update(ctx context.Context, id int64, username, email string) (*models.UserDB, error)
	Delete(ctx context.Context, id int64) error
}

// UserForm holds the user form fields.
type UserForm struct {
	Username string
	Email    string
}

// UserSession owns the client-side state for the users collection. It is the
// simpler sibling of SignatureSession: the user table has no search or
// pagination, only the snapshot and the edit mode.
type UserSession struct {
	mu  sync.Mutex
	api UsersAPI

	snapshot []models.UserDB
	mode     Mode
	targetID int64
	form     UserForm

	notes notifier

	render func([]models.UserDB)
}

// NewUserSession creates a session over the given API. render may be nil.
func NewUserSession(api UsersAPI, render func([]models.UserDB)) *UserSession {
	return &UserSession{
		api:    api,
		notes:  notifier{now: time.Now},
		render: render,
	}
}

// Reload fetches the entire collection and replaces the snapshot wholesale.
// On failure the prior snapshot stays in place.
func (s *UserSession) Reload(ctx context.Context) error {
	users, err := s.api.List(ctx)
	if err != nil {
		logger.Log.Errorw("user reload failed", "err", err)
		s.mu.Lock()
		s.notes.push("Failed to load users", LevelDanger)
		s.mu.Unlock()
		return err
	}

	s.mu.Lock()
	s.snapshot = users
	s.mu.Unlock()

	s.rerender()
	return nil
}

// Users returns a copy of the current snapshot.
func (s *UserSession) Users() []models.UserDB {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.UserDB, len(s.snapshot))
	copy(out, s.snapshot)
	return out
}

// BeginEdit switches to Editing(id), copying the record's fields from the
// in-memory snapshot into the form. No fresh fetch happens.
func (s *UserSession) BeginEdit(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.snapshot {
		if user.ID == id {
			s.mode = Editing
			s.targetID = id
			s.form = UserForm{Username: user.Username, Email: user.Email}
			return true
		}
	}

	s.notes.push("User not found in the current list", LevelDanger)
	return false
}

// CancelEdit discards the edit session without sending a request.
func (s *UserSession) CancelEdit() {
	s.mu.Lock()
	s.resetEdit()
	s.mu.Unlock()
}

func (s *UserSession) resetEdit() {
	s.mode = Viewing
	s.targetID = 0
	s.form = UserForm{}
}

// Mode returns the current mode and, while editing, the target id.
func (s *UserSession) Mode() (Mode, int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode, s.targetID
}

// Form returns a copy of the current form state.
func (s *UserSession) Form() UserForm {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form
}

// SetForm replaces both form fields.
func (s *UserSession) SetForm(username, email string) {
	s.mu.Lock()
	s.form = UserForm{Username: username, Email: email}
	s.mu.Unlock()
}

// Save sends the form to the server: a create while viewing, a full replace
// while editing. On success the session exits editing and triggers a full
// reload; on failure nothing local changes.
func (s *UserSession) Save(ctx context.Context) error {
	s.mu.Lock()
	mode := s.mode
	targetID := s.targetID
	form := s.form

	if form.Username == "" || form.Email == "" {
		s.notes.push("Please fill in all fields", LevelWarning)
		s.mu.Unlock()
		return nil
	}
	s.mu.Unlock()

	var err error
	if mode == Editing {
		_, err = s.api.Update(ctx, targetID, form.Username, form.Email)
	} else {
		_, err = s.api.Create(ctx, form.Username, form.Email)
	}

	if err != nil {
		logger.Log.Errorw("user save failed", "err", err)
		s.mu.Lock()
		s.notes.push("Failed to save the user", LevelDanger)
		s.mu.Unlock()
		return err
	}

	s.mu.Lock()
	s.resetEdit()
	message := "User created successfully"
	if mode == Editing {
		message = "User updated successfully"
	}
	s.notes.push(message, LevelSuccess)
	s.mu.Unlock()

	return s.Reload(ctx)
}

// Delete removes a user and triggers a full reload. Deleting the record
// currently being edited implicitly ends the edit session.
func (s *UserSession) Delete(ctx context.Context, id int64) error {
	if err := s.api.Delete(ctx, id); err != nil {
		logger.Log.Errorw("user delete failed", "id", id, "err", err)
		s.mu.Lock()
		s.notes.push("Failed to delete the user", LevelDanger)
		s.mu.Unlock()
		return err
	}

	s.mu.Lock()
	if s.mode == Editing && s.targetID == id {
		s.resetEdit()
	}
	s.notes.push("User deleted successfully", LevelSuccess)
	s.mu.Unlock()

	return s.Reload(ctx)
}

// Notifications returns the live transient alerts, pruning expired ones.
func (s *UserSession) Notifications() []Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.notes.active()
}

func (s *UserSession) rerender() {
	if s.render != nil {
		s.render(s.Users())
	}
}
