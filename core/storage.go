package core

import "context"

// UserUpdate enumerates the writable columns of a user row. A nil
// pointer leaves the column untouched; the Clear flags set the token
// columns back to NULL. Unknown fields are unrepresentable, so a bad
// partial update is a compile error rather than a runtime check.
type UserUpdate struct {
	PasswordHash *string
	SessionID    *string
	ResetToken   *string

	ClearSessionID  bool
	ClearResetToken bool
}

// CredentialStore is the persistence port the auth core talks to.
// Implementations translate their storage engine's "no rows" condition
// into ErrUserNotFound and their uniqueness conflicts into
// ErrEmailTaken; no other sentinel mapping is expected of them.
type CredentialStore interface {
	// Insert creates a user row with no live session or reset token.
	// Returns ErrEmailTaken when a row with the same email already
	// exists: the storage-level constraint closes the find-then-insert
	// race that a lookup alone cannot.
	Insert(ctx context.Context, email, passwordHash string) (*User, error)

	FindByID(ctx context.Context, id int64) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindBySessionID(ctx context.Context, sessionID string) (*User, error)
	FindByResetToken(ctx context.Context, resetToken string) (*User, error)

	// Update applies a partial update to the row identified by id.
	// Returns ErrUserNotFound when no row matches.
	Update(ctx context.Context, id int64, upd UserUpdate) error
}
