package apperrors

import "errors"

// Request-level errors. Every handler turns one of these into a renderable
// view state, none of them is fatal to the process.
var (
	// ErrValidationFailed marks bad, missing or oversize input.
	ErrValidationFailed = errors.New("validation failed")
	// ErrDuplicateStudent is returned when a student number is already registered.
	ErrDuplicateStudent = errors.New("student number already exists")
	// ErrUnknownStudent is returned when a student number resolves to no student.
	ErrUnknownStudent = errors.New("unknown student")
	// ErrInvalidCredentials is returned by login for any number/password mismatch.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrStorage wraps commit and query failures. The write has been rolled back.
	ErrStorage = errors.New("storage error")
	// ErrCollaboratorUnavailable marks a failed call to an external collaborator
	// (feed, document index).
	ErrCollaboratorUnavailable = errors.New("collaborator unavailable")
)

// Session errors
var (
	ErrSessionMissing = errors.New("session missing")
	ErrSessionExpired = errors.New("session expired")
	ErrSessionInvalid = errors.New("session invalid")
)

// Is returns whether err matches target or any of the errors in errList.
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError carries a user-facing message next to the sentinel it wraps.
type CustomError struct {
	Err     error
	Message string
	Field   string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithField records which input field caused the error.
func (e *CustomError) WithField(field string) *CustomError {
	e.Field = field
	return e
}

// NewValidationError creates a validation error with a user-facing message.
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// NewStorageError wraps a storage failure.
func NewStorageError(message string, cause error) error {
	return &CustomError{
		Err:     errors.Join(ErrStorage, cause),
		Message: message,
	}
}

// UserMessage returns the message meant for the person who sent the request.
// Errors without one fall back to the given default.
func UserMessage(err error, fallback string) string {
	var ce *CustomError
	if errors.As(err, &ce) && ce.Message != "" {
		return ce.Message
	}
	return fallback
}
