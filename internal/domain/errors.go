package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the validation error taxonomy. Every failure that
// leaves the orchestration core wraps exactly one of these so the boundary
// layer can tell the kinds apart.
var (
	// ErrInvalidInput means the request broke a structural invariant and the
	// engine was never invoked
	ErrInvalidInput = errors.New("invalid input")
	// ErrEngine means the scan engine raised during connection, query
	// execution or check evaluation
	ErrEngine = errors.New("engine error")
	// ErrScanTimeout means the scan deadline elapsed while waiting for or
	// running inside the execution gate
	ErrScanTimeout = errors.New("scan timeout")
	// ErrNormalization means the engine returned a result shape the
	// normalizer could not interpret
	ErrNormalization = errors.New("normalization error")
	// ErrInternal is an unexpected internal error
	ErrInternal = errors.New("internal error")
)

// DomainError carries an error kind, a user-facing message and optional
// structured detail across layer boundaries.
type DomainError struct {
	Code    string
	Message string
	Details map[string]any
	Err     error
}

// Error implements the error interface (used for logs and internal wrapping)
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// UserMessage returns the user-facing message without internal detail
func (e *DomainError) UserMessage() string {
	return e.Message
}

// Unwrap returns the wrapped sentinel
func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewInvalidInputError creates an invalid input error
func NewInvalidInputError(message string) error {
	return &DomainError{
		Code:    "INVALID_INPUT",
		Message: message,
		Err:     ErrInvalidInput,
	}
}

// NewEngineError creates an engine error preserving the engine's message
func NewEngineError(message string, err error) error {
	if err == nil {
		err = ErrEngine
	} else {
		err = fmt.Errorf("%w: %v", ErrEngine, err)
	}
	return &DomainError{
		Code:    "ENGINE_ERROR",
		Message: message,
		Err:     err,
	}
}

// NewScanTimeoutError creates a timeout error for the given deadline
func NewScanTimeoutError(message string) error {
	return &DomainError{
		Code:    "SCAN_TIMEOUT",
		Message: message,
		Err:     ErrScanTimeout,
	}
}

// NewNormalizationError creates a normalization error. These indicate an
// engine contract violation and are always surfaced, never downgraded to a
// passing report.
func NewNormalizationError(message string, err error) error {
	if err == nil {
		err = ErrNormalization
	} else {
		err = fmt.Errorf("%w: %v", ErrNormalization, err)
	}
	return &DomainError{
		Code:    "NORMALIZATION_ERROR",
		Message: message,
		Err:     err,
	}
}

// NewInternalError creates an internal error without exposing detail
func NewInternalError(err error) error {
	return &DomainError{
		Code:    "INTERNAL_ERROR",
		Message: "an internal error occurred",
		Err:     fmt.Errorf("%w: %v", ErrInternal, err),
	}
}

// IsInvalidInput reports whether err is an invalid input error
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsEngineError reports whether err is an engine error
func IsEngineError(err error) bool {
	return errors.Is(err, ErrEngine)
}

// IsScanTimeout reports whether err is a scan timeout
func IsScanTimeout(err error) bool {
	return errors.Is(err, ErrScanTimeout)
}

// IsNormalizationError reports whether err is a normalization error
func IsNormalizationError(err error) bool {
	return errors.Is(err, ErrNormalization)
}

// IsInternalError reports whether err is an internal error
func IsInternalError(err error) bool {
	return errors.Is(err, ErrInternal)
}
