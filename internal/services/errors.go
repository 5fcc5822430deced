package services

import "errors"

// ValidationError reports malformed or out-of-range input. Its message is
// safe to return to clients.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validation errors
var (
	ErrInvalidEmail     = &ValidationError{Message: "email must be 3-255 characters and contain @"}
	ErrInvalidPassword  = &ValidationError{Message: "password must be 8-72 bytes"}
	ErrInvalidCompany   = &ValidationError{Message: "company must be 1-100 characters"}
	ErrInvalidRole      = &ValidationError{Message: "role must be 1-100 characters"}
	ErrInvalidStatus    = &ValidationError{Message: "Invalid status"}
	ErrInvalidQuery     = &ValidationError{Message: "q must be 1-100 characters"}
	ErrInvalidPage      = &ValidationError{Message: "page must be >= 1"}
	ErrPageOutOfRange   = &ValidationError{Message: "page is out of range"}
	ErrInvalidLimit     = &ValidationError{Message: "limit must be between 1 and 50"}
	ErrInvalidSortField = &ValidationError{Message: "Invalid sort field"}
	ErrInvalidSortOrder = &ValidationError{Message: "Invalid sort order"}
)

// IsValidationError reports whether err carries a ValidationError.
func IsValidationError(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}
