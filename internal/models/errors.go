package models

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across services and handlers.
// Handlers map each of these to a stable HTTP status code in one place.
var (
	// ErrNotFound is returned when a requested resource does not exist
	ErrNotFound = errors.New("resource not found")
	// ErrDuplicateEmail is returned when registration or user creation hits the unique email constraint
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrInvalidCredentials is returned on login failure; the same error is used
	// for unknown email and wrong password so the response never reveals which
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrUnauthenticated is returned when no valid session or token is present
	ErrUnauthenticated = errors.New("authentication required")
	// ErrForbidden is returned when the identity is resolved but its role is not allowed
	ErrForbidden = errors.New("insufficient permissions")
	// ErrTokenExpired is returned when a token's signature is valid but its expiry has passed
	ErrTokenExpired = errors.New("token has expired")
	// ErrTokenMalformed is returned when a token is not parseable as the expected structure
	ErrTokenMalformed = errors.New("token is malformed")
	// ErrBadSignature is returned when a token's signature does not match under the server secret
	ErrBadSignature = errors.New("token signature is invalid")
	// ErrConflict is returned when a mutation would violate a domain rule,
	// such as deleting the sole Admin or reusing a unique slug
	ErrConflict = errors.New("resource conflict")
	// ErrInfrastructure marks store unavailability; the only class eligible for retry by the caller
	ErrInfrastructure = errors.New("storage unavailable")
)

// ValidationError reports a single user-correctable input problem.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError creates a validation error for a field
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
