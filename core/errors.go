package core

import "errors"

// Authentication related errors
var (
	ErrEmailTaken   = errors.New("email already registered") // 400 Bad Request
	ErrUserNotFound = errors.New("user not found")           // 403 on reset issuance
	ErrInvalidToken = errors.New("invalid reset token")      // 403 on reset redemption

	// ErrNoSession is the recoverable "no session could be issued"
	// result of CreateSession when the email does not resolve.
	ErrNoSession = errors.New("no session")
)

// Validation errors (client input)
var (
	ErrEmailRequired    = errors.New("email is required")       // 400
	ErrPasswordRequired = errors.New("password is required")    // 400
	ErrTokenRequired    = errors.New("reset token is required") // 403
)

// Config errors (server-side configuration)
var (
	ErrStoreRequired = errors.New("credential store is required") // 500
)
