package errors

const (
	HttpInternalError         = "internal_error"
	HttpInvalidJsonError      = "invalid_json"
	HttpNotFoundError         = "not_found"
	HttpMissingFieldsError    = "missing_fields"
	HttpMissingProfilesError  = "missing_profiles"
	HttpInvalidRangeError     = "invalid_range"
	HttpUnknownProfileError   = "unknown_profile"
	HttpInvalidTimezoneError  = "invalid_timezone"
	HttpDuplicateProfileError = "duplicate_profile"
	HttpValidationError       = "validation_failed"
)

// ErrorResponse is the error response body shared by all handlers.
type ErrorResponse struct {
	ErrorType string      `json:"error_type"`
	Message   string      `json:"message"`
	Details   interface{} `json:"details,omitempty"`
}
