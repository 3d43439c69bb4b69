package scheduling

import (
	"errors"
)

// Error kinds. Every validation failure wraps exactly one of these so
// handlers can map it with errors.Is.
var (
	ErrMissingFields   = errors.New("missing fields")
	ErrMissingProfiles = errors.New("missing profiles")
	ErrInvalidRange    = errors.New("invalid range")
	ErrUnknownProfile  = errors.New("unknown profile")
	ErrInvalidTimezone = errors.New("invalid timezone")
)

const (
	msgMissingProfiles = "At least one profile is required"
	msgMissingFields   = "All fields are required"
	msgInvalidRange    = "End date must be after start date"
	msgUnknownProfile  = "One or more profiles not found"
	msgInvalidTimezone = "Timezone must be a valid IANA identifier"
)

// ValidationError is a client-facing validation failure.
// Message is safe to return verbatim in a 400 response.
type ValidationError struct {
	Kind    error
	Message string
	Details map[string]interface{}
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Kind
}

func newValidationError(kind error, msg string, details map[string]interface{}) *ValidationError {
	return &ValidationError{Kind: kind, Message: msg, Details: details}
}

// IsValidation reports whether err is a client-side validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
