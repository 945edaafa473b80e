// Package authd is a small embeddable session-authentication library:
// credential verification, session lifecycle and password-reset
// lifecycle over a pluggable credential store. HTTP and storage live
// in adapters; this package re-exports the surface most callers need.
package authd

import (
	"github.com/gabrie-lhilarion/authd/core"
	"github.com/gabrie-lhilarion/authd/pkg/crypto"
)

// interfaces
type (
	CredentialStore = core.CredentialStore
	Authenticator   = core.Authenticator

	PasswordHandler = crypto.PasswordHandler
	TokenSource     = crypto.TokenSource
)

// structs
type (
	Auth   = core.Auth
	Config = core.Config

	User       = core.User
	UserUpdate = core.UserUpdate
)

// Constructors & helpers (convenience re-exports)
var (
	NewBcrypt = crypto.NewBcrypt
	NewArgon2 = crypto.NewArgon2
	NewNanoID = crypto.NewNanoID
)

var (
	ErrEmailTaken   = core.ErrEmailTaken
	ErrUserNotFound = core.ErrUserNotFound
	ErrInvalidToken = core.ErrInvalidToken
	ErrNoSession    = core.ErrNoSession
)

var (
	ErrEmailRequired    = core.ErrEmailRequired
	ErrPasswordRequired = core.ErrPasswordRequired
	ErrTokenRequired    = core.ErrTokenRequired
	ErrStoreRequired    = core.ErrStoreRequired
)

// New assembles an Auth core from config. The credential store is
// required; the password hasher defaults to bcrypt and the token
// source to v4 UUIDs.
func New(config Config) (*Auth, error) {
	return core.NewAuth(config)
}
