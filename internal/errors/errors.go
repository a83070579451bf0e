package errors

import "errors"

// Common error types for the login flow
var (
	// Session token errors
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// Flow-state errors
	ErrSerialization = errors.New("authorization request serialization failed")

	// Client registration errors
	ErrRegistrationNotFound = errors.New("client registration not found")
)

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}
