package domain

import (
	"errors"
	"fmt"
)

// DomainError represents errors in the domain layer
type DomainError struct {
	Code    string
	Message string
	Cause   error
}

func (e DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e DomainError) Unwrap() error {
	return e.Cause
}

// Domain error codes
const (
	ErrCodeConfigError     = "CONFIG_ERROR"
	ErrCodeTimezoneError   = "TIMEZONE_ERROR"
	ErrCodeFilesystemError = "FILESYSTEM_ERROR"
	ErrCodeInvalidInput    = "INVALID_INPUT"
	ErrCodeOutputError     = "OUTPUT_ERROR"
)

// NewDomainError creates a new domain error
func NewDomainError(code, message string, cause error) error {
	return DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// NewConfigError creates a configuration error
func NewConfigError(message string, cause error) error {
	return NewDomainError(ErrCodeConfigError, message, cause)
}

// NewTimezoneError creates an unknown-timezone error
func NewTimezoneError(name string, cause error) error {
	return NewDomainError(ErrCodeTimezoneError, fmt.Sprintf("unknown timezone: %s", name), cause)
}

// NewFilesystemError creates a filesystem error
func NewFilesystemError(message string, cause error) error {
	return NewDomainError(ErrCodeFilesystemError, message, cause)
}

// NewInvalidInputError creates an invalid input error
func NewInvalidInputError(message string, cause error) error {
	return NewDomainError(ErrCodeInvalidInput, message, cause)
}

// NewOutputError creates an output error
func NewOutputError(message string, cause error) error {
	return NewDomainError(ErrCodeOutputError, message, cause)
}

// HasCode reports whether err is a DomainError carrying the given code
func HasCode(err error, code string) bool {
	var de DomainError
	return errors.As(err, &de) && de.Code == code
}
