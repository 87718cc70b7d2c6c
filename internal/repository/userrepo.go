// Package repository defines storage interfaces implemented by concrete backends.
package repository

import (
	"context"

	"github.com/and161185/notekeeper/internal/model"
)

// UserRepository provides access to account records.
type UserRepository interface {
	// Create inserts a new user; errs.ErrAlreadyExists if the username is taken.
	Create(ctx context.Context, username, passwordHash string) (*model.User, error)
	// GetByUsername loads a user by username; errs.ErrNotFound if absent.
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	// GetByID loads a user by ID; errs.ErrNotFound if absent.
	GetByID(ctx context.Context, id int64) (*model.User, error)
}
