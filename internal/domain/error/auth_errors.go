// Package error defines domain-specific errors for the LifeTrack application.
package error

import "errors"

// Auth domain errors.
var (
	// ErrEmailAlreadyRegistered is returned when registering with an email that already exists.
	ErrEmailAlreadyRegistered = errors.New("email already registered")

	// ErrInvalidCredentials is returned when login credentials do not match a user.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrUserNotFound is returned when a user cannot be found.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidToken is returned when a token is malformed, expired or invalidated.
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrWeakPassword is returned when a password does not meet minimum requirements.
	ErrWeakPassword = errors.New("password does not meet minimum requirements")

	// ErrMissingAuthFields is returned when required registration or login fields are absent.
	ErrMissingAuthFields = errors.New("missing required fields")
)

// AuthErrorCode defines error codes for auth errors.
// Format: AUTH-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeEmailAlreadyRegistered AuthErrorCode = "AUTH-010001"
	ErrCodeInvalidCredentials     AuthErrorCode = "AUTH-010002"
	ErrCodeUserNotFound           AuthErrorCode = "AUTH-010003"
	ErrCodeWeakPassword           AuthErrorCode = "AUTH-010004"
	ErrCodeMissingAuthFields      AuthErrorCode = "AUTH-010005"

	// Token errors (02XXXX)
	ErrCodeMissingToken AuthErrorCode = "AUTH-020001"
	ErrCodeInvalidToken AuthErrorCode = "AUTH-020002"

	// Rate limiting (03XXXX)
	ErrCodeRateLimited AuthErrorCode = "AUTH-030001"
)

// AuthError represents an auth error with code and message.
type AuthError struct {
	Code    AuthErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError creates a new AuthError with the given code and message.
func NewAuthError(code AuthErrorCode, message string, err error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
