package core

import (
	"github.com/gabrie-lhilarion/authd/pkg/crypto"
)

type Config struct {
	Store CredentialStore

	// Optional config
	PasswordHasher crypto.PasswordHandler
	Tokens         crypto.TokenSource
}

// Auth orchestrates registration, login verification, session
// issuance/destruction and password-reset issuance/redemption on top
// of a CredentialStore, a PasswordHandler and a TokenSource.
type Auth struct {
	store  CredentialStore
	hasher crypto.PasswordHandler
	tokens crypto.TokenSource
}

// NewAuth assembles an Auth core, filling in the default bcrypt hasher
// and UUID token source when the config leaves them nil.
func NewAuth(config Config) (*Auth, error) {
	if config.Store == nil {
		return nil, ErrStoreRequired
	}

	hasher := config.PasswordHasher
	if hasher == nil {
		hasher = crypto.NewBcrypt()
	}

	tokens := config.Tokens
	if tokens == nil {
		tokens = crypto.UUIDSource{}
	}

	return &Auth{
		store:  config.Store,
		hasher: hasher,
		tokens: tokens,
	}, nil
}
