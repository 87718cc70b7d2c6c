package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/and161185/notekeeper/internal/errs"
	"github.com/and161185/notekeeper/internal/model"
)

// NoteRepo implements NoteRepository using PostgreSQL.
type NoteRepo struct{ db *DB }

// NewNoteRepo constructs a note repository.
func NewNoteRepo(db *DB) *NoteRepo { return &NoteRepo{db: db} }

// Create inserts a note row owned by userID.
func (r *NoteRepo) Create(ctx context.Context, userID int64, title, content string) (*model.Note, error) {
	const q = `
INSERT INTO notes (title, content, user_id)
VALUES ($1, $2, $3)
RETURNING id, created_at, updated_at`
	n := model.Note{Title: title, Content: content, UserID: userID}
	err := r.db.Pool.QueryRow(ctx, q, title, content, userID).Scan(&n.ID, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// GetByID selects a note by ID, regardless of owner.
func (r *NoteRepo) GetByID(ctx context.Context, id int64) (*model.Note, error) {
	const q = `
SELECT id, title, content, user_id, created_at, updated_at
FROM notes WHERE id=$1`
	var n model.Note
	err := r.db.Pool.QueryRow(ctx, q, id).Scan(&n.ID, &n.Title, &n.Content, &n.UserID, &n.CreatedAt, &n.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, errs.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// Update applies a partial update in a single statement; absent patch fields
// keep their stored values via COALESCE.
func (r *NoteRepo) Update(ctx context.Context, id int64, patch model.NotePatch) (*model.Note, error) {
	const q = `
UPDATE notes
SET title=COALESCE($2, title), content=COALESCE($3, content), updated_at=now()
WHERE id=$1
RETURNING id, title, content, user_id, created_at, updated_at`
	var n model.Note
	err := r.db.Pool.QueryRow(ctx, q, id, patch.Title, patch.Content).
		Scan(&n.ID, &n.Title, &n.Content, &n.UserID, &n.CreatedAt, &n.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, errs.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// Delete removes a note row.
func (r *NoteRepo) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM notes WHERE id=$1`
	tag, err := r.db.Pool.Exec(ctx, q, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// ListByUser returns the owner's notes ordered by id with offset/limit paging.
func (r *NoteRepo) ListByUser(ctx context.Context, userID int64, skip, limit int) ([]model.Note, error) {
	const q = `
SELECT id, title, content, user_id, created_at, updated_at
FROM notes
WHERE user_id=$1
ORDER BY id ASC
OFFSET $2 LIMIT $3`
	rows, err := r.db.Pool.Query(ctx, q, userID, skip, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Note, 0)
	for rows.Next() {
		var n model.Note
		if err = rows.Scan(&n.ID, &n.Title, &n.Content, &n.UserID, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}
