package services

import "errors"

// Sentinel errors shared across services. Handlers map these to HTTP statuses
// at the request boundary; nothing below the handler layer writes responses.
var (
	// ErrNotFound covers both truly missing records and records hidden by
	// row-level scoping. The two are intentionally indistinguishable.
	ErrNotFound = errors.New("record not found")

	// ErrForbidden means the actor is authenticated but fails the ownership
	// check for the target record.
	ErrForbidden = errors.New("not allowed to perform this action")

	// ErrConflict covers uniqueness violations surfaced as client errors.
	ErrConflict = errors.New("conflicting record already exists")

	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired refresh token")
)

// ValidationError is a semantically invalid input: bad date order, zero-night
// stay, out-of-range rating, empty comment, attempts to mutate immutable
// fields. Field is empty for record-level violations.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

func validationErr(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
