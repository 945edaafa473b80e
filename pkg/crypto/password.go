package crypto

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHandler is the one-way password transform used by the auth
// core. Hash salts freshly on every call and embeds the salt in its
// output, so Verify needs only the candidate password and the stored
// value.
type PasswordHandler interface {
	Hash(password string) (string, error)

	// Verify reports whether password matches hash. A malformed hash
	// reads as a mismatch, never an error.
	Verify(password, hash string) bool
}

// Ensure Bcrypt implements PasswordHandler
var _ PasswordHandler = (*Bcrypt)(nil)

// Bcrypt hashes passwords with golang.org/x/crypto/bcrypt. The salt
// and cost are embedded in the standard $2a$... encoding.
type Bcrypt struct {
	Cost int
}

func NewBcrypt() *Bcrypt {
	return &Bcrypt{Cost: bcrypt.DefaultCost}
}

func (b *Bcrypt) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), b.Cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

func (b *Bcrypt) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
