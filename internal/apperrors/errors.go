package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrProviderTransport indicates a rate provider could not be reached or answered with a non-200 status.
var ErrProviderTransport = errors.New("provider transport error")

// ErrProviderSchema indicates a rate provider answered with a body that does not match its schema.
var ErrProviderSchema = errors.New("provider schema error")

// ErrNoProviderAvailable indicates every active provider was tried and none produced a usable result.
var ErrNoProviderAvailable = errors.New("no provider available")

// NoProviderAvailableMessage is the client-facing text for ErrNoProviderAvailable.
const NoProviderAvailableMessage = "No providers available, please define providers in the DB."

// AppError carries an HTTP-ish status code alongside the wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates an AppError with the given code.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewValidationError wraps ErrValidation so callers can match it with errors.Is.
func NewValidationError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message, Err: ErrValidation}
}

// NewNotFoundError wraps ErrNotFound so callers can match it with errors.Is.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: message, Err: ErrNotFound}
}

// ProviderError ties a transport or schema failure to the provider that produced it.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// NewProviderTransportError builds a ProviderError matching ErrProviderTransport.
func NewProviderTransportError(provider string, cause error) *ProviderError {
	return &ProviderError{Provider: provider, Err: fmt.Errorf("%w: %v", ErrProviderTransport, cause)}
}

// NewProviderSchemaError builds a ProviderError matching ErrProviderSchema.
func NewProviderSchemaError(provider string, cause error) *ProviderError {
	return &ProviderError{Provider: provider, Err: fmt.Errorf("%w: %v", ErrProviderSchema, cause)}
}
