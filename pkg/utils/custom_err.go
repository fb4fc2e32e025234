package utils

import "errors"

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrValidation          = errors.New("validation failed")
	ErrBackendUnconfigured = errors.New("generative backend not configured")
	ErrBackendFailure      = errors.New("generative backend call failed")
	ErrEmptyCompletion     = errors.New("generative backend returned no text")
	ErrRenderingFailure    = errors.New("itinerary rendering failed")
	ErrMailDelivery        = errors.New("mail delivery failed")
)

// ValidationError carries a message that is safe to show to the user.
type ValidationError struct {
	Field   string
	Message string
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// UserMessage returns the user-facing text of a validation error, or "" for any other error.
func UserMessage(err error) string {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr.Message
	}
	return ""
}
