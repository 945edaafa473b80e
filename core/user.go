package core

// User is the sole persistent entity: one row per registered account.
//
// SessionID and ResetToken are nil unless the corresponding token is
// live. Issuing a new token overwrites the old one, which invalidates
// it; there is no expiry tracking.
type User struct {
	ID           int64   `json:"id"`
	Email        string  `json:"email"`
	PasswordHash string  `json:"-"` // Never expose in JSON
	SessionID    *string `json:"-"`
	ResetToken   *string `json:"-"`
}
