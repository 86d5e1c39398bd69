// Package businessflow contains the core business logic and use cases for the calendar
package businessflow

import (
	"errors"
	"fmt"
)

// Business flow error constants
var (
	// Admin auth errors
	ErrAdminSecretMissing      = errors.New("admin password is not configured")
	ErrInvalidAdminPassword    = errors.New("invalid admin password")
	ErrSessionStoreUnavailable = errors.New("session store unavailable")

	// Event errors
	ErrEventNotFound   = errors.New("event not found")
	ErrEventIDRequired = errors.New("event ID is required")

	// Location tag errors
	ErrLocationTagNotFound   = errors.New("location tag not found")
	ErrLocationTagIDRequired = errors.New("location tag ID is required")

	// Reference website errors
	ErrReferenceWebsiteNotFound   = errors.New("reference website not found")
	ErrReferenceWebsiteIDRequired = errors.New("reference website ID is required")

	// Month view errors
	ErrInvalidMonth = errors.New("month must be between 1 and 12")
	ErrInvalidYear  = errors.New("year is out of range")

	// User interest errors
	ErrSessionIDRequired = errors.New("session ID is required")
)

// BusinessError represents a business logic error with context
type BusinessError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *BusinessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

// NewBusinessError creates a new business error
func NewBusinessError(code, message string, err error) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func IsAdminSecretMissing(err error) bool {
	return errors.Is(err, ErrAdminSecretMissing)
}

func IsInvalidAdminPassword(err error) bool {
	return errors.Is(err, ErrInvalidAdminPassword)
}

func IsEventNotFound(err error) bool {
	return errors.Is(err, ErrEventNotFound)
}

func IsEventIDRequired(err error) bool {
	return errors.Is(err, ErrEventIDRequired)
}

func IsLocationTagNotFound(err error) bool {
	return errors.Is(err, ErrLocationTagNotFound)
}

func IsReferenceWebsiteNotFound(err error) bool {
	return errors.Is(err, ErrReferenceWebsiteNotFound)
}

func IsInvalidMonth(err error) bool {
	return errors.Is(err, ErrInvalidMonth)
}

func IsInvalidYear(err error) bool {
	return errors.Is(err, ErrInvalidYear)
}
