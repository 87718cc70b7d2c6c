package repository

import (
	"context"

	"github.com/and161185/notekeeper/internal/model"
)

// NoteRepository provides CRUD access to notes. Ownership checks live in the
// service layer; the repository only scopes listing by owner.
type NoteRepository interface {
	// Create inserts a note owned by userID.
	Create(ctx context.Context, userID int64, title, content string) (*model.Note, error)
	// GetByID loads a note regardless of owner; errs.ErrNotFound if absent.
	GetByID(ctx context.Context, id int64) (*model.Note, error)
	// Update applies a partial update; nil patch fields keep stored values.
	Update(ctx context.Context, id int64, patch model.NotePatch) (*model.Note, error)
	// Delete removes a note; errs.ErrNotFound if absent.
	Delete(ctx context.Context, id int64) error
	// ListByUser returns the owner's notes ordered by id with offset/limit paging.
	ListByUser(ctx context.Context, userID int64, skip, limit int) ([]model.Note, error)
}
