// Package model defines domain entities used by services and repositories.
package model

import "time"

// Tokens collects an issued access token and its expiry (for diagnostics).
type Tokens struct {
	AccessToken string
	ExpiresAt   time.Time
}

// User represents an account. The password is stored only as an Argon2id digest.
type User struct {
	ID           int64  // PK
	Username     string // unique
	PasswordHash string // PHC-encoded Argon2id digest (salt embedded)
	CreatedAt    time.Time
}

// Note is a single note owned by exactly one user. The owner is fixed at
// creation and never changes.
type Note struct {
	ID        int64
	Title     string
	Content   string
	UserID    int64 // FK -> users.id
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NotePatch is a partial update: nil fields keep the stored value.
type NotePatch struct {
	Title   *string
	Content *string
}
