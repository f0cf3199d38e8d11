package state

import (
	"context"
	"sync"
	"time"

	"github.com/srosales/sigboard/internal/logger"
	"github.com/srosales/sigboard/internal/models"
)

// Mode tracks whether the session is viewing the collection or editing one
// record. targetID is meaningful only while editing.
type Mode int

const (
	Viewing Mode = iota
	Editing
)

// SignaturesAPI defines the server operations the session depends on.
type SignaturesAPI interface {
	List(ctx context.Context) ([]models.SignatureDB, error)
	Get(ctx context.Context, id int64) (*models.SignatureDB, error)
	Create(ctx context.Context, name, image string) (*models.SignatureDB, error)
	Update(ctx context.Context, id int64, name, image *string) (*models.SignatureDB, error)
	Delete(ctx context.Context, id int64) error
}

// SignatureForm holds the form fields and the locally-buffered image capture.
type SignatureForm struct {
	Name  string
	Image string // encoded image handed over by the capture surface
}

// SignatureSession owns the client-side state for the signatures collection:
// the local snapshot, the edit mode, and the search/pagination cursors. The
// snapshot is a disposable cache, rebuilt from the last full list fetch; the
// server is the sole authority.
type SignatureSession struct {
	mu  sync.Mutex
	api SignaturesAPI

	snapshot []models.SignatureDB

	mode     Mode
	targetID int64
	form     SignatureForm
	// imageDirty marks that the buffered image is a fresh capture rather
	// than a replay of the stored one, so saves know whether to send it.
	imageDirty bool

	searchTerm  string
	currentPage int
	pageSize    int

	debounce *Debouncer
	notes    notifier

	// render, when set, receives the derived view after every state change
	// that affects it.
	render func(SignatureView)
}

// NewSignatureSession creates a session over the given API. render may be nil.
func NewSignatureSession(api SignaturesAPI, render func(SignatureView)) *SignatureSession {
	return &SignatureSession{
		api:         api,
		currentPage: 1,
		pageSize:    DefaultPageSize,
		debounce:    NewDebouncer(DefaultDebounce),
		notes:       notifier{now: time.Now},
		render:      render,
	}
}

// Reload fetches the entire collection, replaces the snapshot wholesale, and
// resets pagination to page 1. On failure the prior snapshot stays in place.
func (s *SignatureSession) Reload(ctx context.Context) error {
	signatures, err := s.api.List(ctx)
	if err != nil {
		logger.Log.Errorw("signature reload failed", "err", err)
		s.mu.Lock()
		s.notes.push("Failed to load signatures", LevelDanger)
		s.mu.Unlock()
		return err
	}

	s.mu.Lock()
	s.snapshot = signatures
	s.currentPage = 1
	s.mu.Unlock()

	s.rerender()
	return nil
}

// View recomputes the derived view from the current snapshot and cursors.
func (s *SignatureSession) View() SignatureView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return buildView(s.snapshot, s.searchTerm, s.currentPage, s.pageSize)
}

// SearchInput coalesces keystrokes: the term is applied only after the input
// has been quiet for the debounce window.
func (s *SignatureSession) SearchInput(term string) {
	s.debounce.Schedule(func() {
		s.applySearch(term)
	})
}

// ConfirmSearch bypasses the debounce and applies the term immediately.
func (s *SignatureSession) ConfirmSearch(term string) {
	s.debounce.Flush(func() {
		s.applySearch(term)
	})
}

// applySearch sets the term and resets pagination to page 1.
func (s *SignatureSession) applySearch(term string) {
	s.mu.Lock()
	s.searchTerm = term
	s.currentPage = 1
	s.mu.Unlock()
	s.rerender()
}

// NextPage advances one page when one exists. Changing pages never touches
// the search term.
func (s *SignatureSession) NextPage() {
	s.mu.Lock()
	view := buildView(s.snapshot, s.searchTerm, s.currentPage, s.pageSize)
	if view.HasNext {
		s.currentPage = view.Page + 1
	}
	s.mu.Unlock()
	s.rerender()
}

// PrevPage goes back one page when possible.
func (s *SignatureSession) PrevPage() {
	s.mu.Lock()
	if s.currentPage > 1 {
		s.currentPage--
	}
	s.mu.Unlock()
	s.rerender()
}

// GoToPage jumps to the given page; out-of-range targets are clamped by the
// next view computation.
func (s *SignatureSession) GoToPage(page int) {
	if page < 1 {
		page = 1
	}
	s.mu.Lock()
	s.currentPage = page
	s.mu.Unlock()
	s.rerender()
}

// BeginEdit switches to Editing(id), copying the record's fields from the
// in-memory snapshot into the form and replaying the stored image into the
// capture buffer. No fresh fetch happens: a concurrent server-side change
// stays invisible until the next full reload.
func (s *SignatureSession) BeginEdit(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, sig := range s.snapshot {
		if sig.ID == id {
			s.mode = Editing
			s.targetID = id
			s.form = SignatureForm{Name: sig.Name, Image: sig.Image}
			s.imageDirty = false
			return true
		}
	}

	s.notes.push("Signature not found in the current list", LevelDanger)
	return false
}

// CancelEdit discards the edit session without sending a request.
func (s *SignatureSession) CancelEdit() {
	s.mu.Lock()
	s.resetEdit()
	s.mu.Unlock()
}

// resetEdit returns to Viewing and clears the form and the buffered capture.
// Callers hold the lock.
func (s *SignatureSession) resetEdit() {
	s.mode = Viewing
	s.targetID = 0
	s.form = SignatureForm{}
	s.imageDirty = false
}

// Mode returns the current mode and, while editing, the target id.
func (s *SignatureSession) Mode() (Mode, int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode, s.targetID
}

// Form returns a copy of the current form state.
func (s *SignatureSession) Form() SignatureForm {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form
}

// SetName updates the name field of the form.
func (s *SignatureSession) SetName(name string) {
	s.mu.Lock()
	s.form.Name = name
	s.mu.Unlock()
}

// CaptureImage buffers a fresh capture from the drawing surface.
func (s *SignatureSession) CaptureImage(image string) {
	s.mu.Lock()
	s.form.Image = image
	s.imageDirty = true
	s.mu.Unlock()
}

// ClearImage drops the buffered capture.
func (s *SignatureSession) ClearImage() {
	s.mu.Lock()
	s.form.Image = ""
	s.imageDirty = false
	s.mu.Unlock()
}

// Save sends the form to the server: a create while viewing, a partial
// update while editing. While editing, the image is sent only when a fresh
// capture is buffered, so a name-only edit leaves the stored image alone.
// On success the session exits editing and triggers a full reload; on
// failure nothing local changes.
func (s *SignatureSession) Save(ctx context.Context) error {
	s.mu.Lock()
	mode := s.mode
	targetID := s.targetID
	form := s.form
	imageDirty := s.imageDirty

	if form.Name == "" {
		s.notes.push("Please enter a name", LevelWarning)
		s.mu.Unlock()
		return nil
	}
	if mode == Viewing && form.Image == "" {
		s.notes.push("Please capture a signature first", LevelWarning)
		s.mu.Unlock()
		return nil
	}
	s.mu.Unlock()

	var err error
	if mode == Editing {
		name := form.Name
		var image *string
		if imageDirty {
			image = &form.Image
		}
		_, err = s.api.Update(ctx, targetID, &name, image)
	} else {
		_, err = s.api.Create(ctx, form.Name, form.Image)
	}

	if err != nil {
		logger.Log.Errorw("signature save failed", "err", err)
		s.mu.Lock()
		s.notes.push("Failed to save the signature", LevelDanger)
		s.mu.Unlock()
		return err
	}

	s.mu.Lock()
	s.resetEdit()
	message := "Signature saved successfully"
	if mode == Editing {
		message = "Signature updated successfully"
	}
	s.notes.push(message, LevelSuccess)
	s.mu.Unlock()

	return s.Reload(ctx)
}

// Delete removes a signature and triggers a full reload. Deleting the record
// currently being edited implicitly ends the edit session.
func (s *SignatureSession) Delete(ctx context.Context, id int64) error {
	if err := s.api.Delete(ctx, id); err != nil {
		logger.Log.Errorw("signature delete failed", "id", id, "err", err)
		s.mu.Lock()
		s.notes.push("Failed to delete the signature", LevelDanger)
		s.mu.Unlock()
		return err
	}

	s.mu.Lock()
	if s.mode == Editing && s.targetID == id {
		s.resetEdit()
	}
	s.notes.push("Signature deleted successfully", LevelSuccess)
	s.mu.Unlock()

	return s.Reload(ctx)
}

// ViewImage fetches one signature fresh from the server and returns its
// stored image for full-size display.
func (s *SignatureSession) ViewImage(ctx context.Context, id int64) (string, error) {
	sig, err := s.api.Get(ctx, id)
	if err != nil {
		logger.Log.Errorw("signature fetch failed", "id", id, "err", err)
		s.mu.Lock()
		s.notes.push("Failed to load the signature", LevelDanger)
		s.mu.Unlock()
		return "", err
	}
	return sig.Image, nil
}

// Notifications returns the live transient alerts, pruning expired ones.
func (s *SignatureSession) Notifications() []Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.notes.active()
}

// Close cancels any pending debounced search.
func (s *SignatureSession) Close() {
	s.debounce.Stop()
}

func (s *SignatureSession) rerender() {
	if s.render != nil {
		s.render(s.View())
	}
}
