package core

import (
	"context"
	"errors"
	"fmt"
)

// Authenticator is the narrow surface HTTP adapters program against.
//
// Error polarity is deliberate and asymmetric: login and session
// resolution swallow lookup misses into a negative result, while the
// two password-reset operations surface them as sentinel errors.
type Authenticator interface {
	Register(ctx context.Context, email, password string) (*User, error)
	ValidLogin(ctx context.Context, email, password string) bool
	CreateSession(ctx context.Context, email string) (string, error)
	ResolveSession(ctx context.Context, sessionID string) (*User, bool)
	DestroySession(ctx context.Context, userID int64) error
	RequestPasswordReset(ctx context.Context, email string) (string, error)
	RedeemPasswordReset(ctx context.Context, resetToken, newPassword string) error
}

// Ensure Auth implements Authenticator
var _ Authenticator = (*Auth)(nil)

// Register creates a user row with a hashed password and no live
// session or reset token. Returns ErrEmailTaken when the email is
// already registered.
func (a *Auth) Register(ctx context.Context, email, password string) (*User, error) {
	// The lookup failing to find a row is the success path here.
	_, err := a.store.FindByEmail(ctx, email)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	hash, err := a.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	// Insert enforces uniqueness a second time, so two registrations
	// racing past the check above still resolve to one row and one
	// ErrEmailTaken.
	user, err := a.store.Insert(ctx, email, hash)
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// ValidLogin reports whether email resolves to a user whose stored
// hash matches password. Lookup misses and mismatches both read as
// false; this operation never surfaces an error.
func (a *Auth) ValidLogin(ctx context.Context, email, password string) bool {
	user, err := a.store.FindByEmail(ctx, email)
	if err != nil {
		return false
	}
	return a.hasher.Verify(password, user.PasswordHash)
}

// CreateSession issues a fresh session token for email and persists it
// to the user row, overwriting any previous token. Returns the
// sentinel ErrNoSession when the email does not resolve; that is a
// recoverable condition, not a fault.
func (a *Auth) CreateSession(ctx context.Context, email string) (string, error) {
	user, err := a.store.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return "", ErrNoSession
		}
		return "", fmt.Errorf("failed to find user: %w", err)
	}

	token, err := a.tokens.NewToken()
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	if err := a.store.Update(ctx, user.ID, UserUpdate{SessionID: &token}); err != nil {
		return "", fmt.Errorf("failed to persist session: %w", err)
	}

	return token, nil
}

// ResolveSession returns the user owning sessionID. An empty or
// unknown token reads as (nil, false) without raising.
func (a *Auth) ResolveSession(ctx context.Context, sessionID string) (*User, bool) {
	if sessionID == "" {
		return nil, false
	}

	user, err := a.store.FindBySessionID(ctx, sessionID)
	if err != nil {
		return nil, false
	}

	return user, true
}

// DestroySession clears the session token on the user row. A missing
// user is silently ignored, so the call is idempotent.
func (a *Auth) DestroySession(ctx context.Context, userID int64) error {
	err := a.store.Update(ctx, userID, UserUpdate{ClearSessionID: true})
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// RequestPasswordReset issues a fresh reset token for email and
// persists it to the user row, implicitly invalidating any prior
// unused token. Unlike login, an unknown email here is a surfaced
// ErrUserNotFound.
func (a *Auth) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	user, err := a.store.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("failed to find user: %w", err)
	}

	token, err := a.tokens.NewToken()
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	if err := a.store.Update(ctx, user.ID, UserUpdate{ResetToken: &token}); err != nil {
		return "", fmt.Errorf("failed to persist reset token: %w", err)
	}

	return token, nil
}

// RedeemPasswordReset re-hashes newPassword for the user holding
// resetToken and consumes the token. Returns ErrInvalidToken when no
// row holds the token, including a token already redeemed.
func (a *Auth) RedeemPasswordReset(ctx context.Context, resetToken, newPassword string) error {
	if resetToken == "" {
		return ErrInvalidToken
	}

	user, err := a.store.FindByResetToken(ctx, resetToken)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return ErrInvalidToken
		}
		return fmt.Errorf("failed to find user: %w", err)
	}

	hash, err := a.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	upd := UserUpdate{PasswordHash: &hash, ClearResetToken: true}
	if err := a.store.Update(ctx, user.ID, upd); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}
