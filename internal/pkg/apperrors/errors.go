package apperrors

import "errors"

// Validation errors
var (
	ErrValidationFailed = errors.New("validation failed")
	ErrRoleRequired     = errors.New("role is required")
)

// Credential errors
var (
	ErrInvalidAdminPassword     = errors.New("invalid admin password")
	ErrInvalidPrincipalPassword = errors.New("invalid principal password")
	ErrInvalidTeacherLogin      = errors.New("invalid email or password")
	ErrInvalidStudentLogin      = errors.New("invalid student ID or password")
	ErrInvalidTeacherPassword   = errors.New("invalid teacher password")
	ErrUnknownTeacherEmail      = errors.New("no teacher registered with this email")
)

// Authorization errors
var (
	ErrInvalidRole        = errors.New("invalid role")
	ErrTeacherNotApproved = errors.New("teacher account is not approved")
	ErrTeacherRejected    = errors.New("teacher account has been rejected")
	ErrDepartmentMismatch = errors.New("teacher and student departments do not match")
)

// Resource errors
var (
	ErrStudentNotFound = errors.New("student not found")
	ErrTeacherNotFound = errors.New("teacher not found")
	ErrSubjectNotFound = errors.New("subject not found for this student")

	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrSubjectAlreadyAssigned = errors.New("subject already assigned to this student")
	ErrSubjectCapacityReached = errors.New("student can have maximum 10 subjects")
)

// CustomError carries an underlying sentinel plus a request-specific message.
type CustomError struct {
	Err     error
	Message string
}

// Error implements the error interface.
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap so errors.Is sees the sentinel.
func (e *CustomError) Unwrap() error {
	return e.Err
}

// Wrap attaches a request-specific message to a sentinel.
func Wrap(err error, message string) error {
	return &CustomError{Err: err, Message: message}
}

// NewValidationError wraps ErrValidationFailed with a field-specific message.
func NewValidationError(message string) error {
	return &CustomError{Err: ErrValidationFailed, Message: message}
}
