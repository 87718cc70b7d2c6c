package service

import (
	"context"

	"github.com/and161185/notekeeper/internal/model"
	"github.com/and161185/notekeeper/internal/repository"
)

// Default paging for note listing.
const (
	defaultListLimit = 100
)

// Translator converts text to the configured target language.
type Translator interface {
	Translate(ctx context.Context, text string) (string, error)
}

// NoteService defines owner-scoped note operations. Every operation on an
// existing note runs the same ownership check; a note that exists but belongs
// to someone else yields errs.ErrForbidden, a missing one errs.ErrNotFound.
type NoteService interface {
	Create(ctx context.Context, ownerID int64, title, content string) (*model.Note, error)
	Get(ctx context.Context, requesterID, noteID int64) (*model.Note, error)
	Update(ctx context.Context, requesterID, noteID int64, patch model.NotePatch) (*model.Note, error)
	Delete(ctx context.Context, requesterID, noteID int64) error
	List(ctx context.Context, requesterID int64, skip, limit int) ([]model.Note, error)
	Translate(ctx context.Context, requesterID, noteID int64) (string, error)
}

type NoteServiceImpl struct {
	notes      repository.NoteRepository
	translator Translator
}

// NewNoteService constructs NoteService with required dependencies.
func NewNoteService(notes repository.NoteRepository, translator Translator) *NoteServiceImpl {
	return &NoteServiceImpl{notes: notes, translator: translator}
}

// Create stores a new note; the owner is fixed to the creator forever.
func (s *NoteServiceImpl) Create(ctx context.Context, ownerID int64, title, content string) (*model.Note, error) {
	return s.notes.Create(ctx, ownerID, title, content)
}

// Get returns the note after the ownership check.
func (s *NoteServiceImpl) Get(ctx context.Context, requesterID, noteID int64) (*model.Note, error) {
	n, err := s.notes.GetByID(ctx, noteID)
	if err != nil {
		return nil, err
	}
	if err := AuthorizeOwner(n.UserID, requesterID); err != nil {
		return nil, err
	}
	return n, nil
}

// Update applies a partial update after the ownership check.
func (s *NoteServiceImpl) Update(ctx context.Context, requesterID, noteID int64, patch model.NotePatch) (*model.Note, error) {
	if _, err := s.Get(ctx, requesterID, noteID); err != nil {
		return nil, err
	}
	return s.notes.Update(ctx, noteID, patch)
}

// Delete removes the note after the ownership check.
func (s *NoteServiceImpl) Delete(ctx context.Context, requesterID, noteID int64) error {
	if _, err := s.Get(ctx, requesterID, noteID); err != nil {
		return err
	}
	return s.notes.Delete(ctx, noteID)
}

// List returns the requester's own notes; skip/limit fall back to defaults
// when negative or zero.
func (s *NoteServiceImpl) List(ctx context.Context, requesterID int64, skip, limit int) ([]model.Note, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	return s.notes.ListByUser(ctx, requesterID, skip, limit)
}

// Translate sends the note content upstream after the ownership check.
func (s *NoteServiceImpl) Translate(ctx context.Context, requesterID, noteID int64) (string, error) {
	n, err := s.Get(ctx, requesterID, noteID)
	if err != nil {
		return "", err
	}
	return s.translator.Translate(ctx, n.Content)
}
