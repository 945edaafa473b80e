package crypto

import (
	"fmt"

	"github.com/google/uuid"
)

// TokenSource produces opaque identifiers for sessions and password
// resets. Tokens carry no structure: they are compared only by exact
// equality against stored values, so the only requirement is that they
// are unguessable (128-bit-class entropy from a CSPRNG).
type TokenSource interface {
	NewToken() (string, error)
}

// Ensure both sources implement TokenSource
var (
	_ TokenSource = UUIDSource{}
	_ TokenSource = (*NanoIDGenerator)(nil)
)

// UUIDSource issues v4 random UUIDs (122 bits of entropy).
type UUIDSource struct{}

func (UUIDSource) NewToken() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return id.String(), nil
}
