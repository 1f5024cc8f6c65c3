package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrCurrencyRateNotFound indicates that the market returned no rate for the requested currency.
// It is a not-found condition as far as callers are concerned.
var ErrCurrencyRateNotFound = &kindError{msg: "currency rate not found", parent: ErrNotFound}

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrCreationFailed indicates that a stock could not be created or published.
var ErrCreationFailed = errors.New("stock creation failed")

// ErrMultipleMatches indicates that more than one element matched where at most one was expected.
var ErrMultipleMatches = errors.New("multiple elements matched")

// ErrSequenceConsumed is returned when a one-shot sequence is iterated a second time.
var ErrSequenceConsumed = errors.New("sequence already consumed")

type kindError struct {
	msg    string
	parent error
}

func (e *kindError) Error() string { return e.msg }
func (e *kindError) Unwrap() error { return e.parent }

// AppError carries an HTTP status code and a client-facing message alongside the underlying cause.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil && e.Err.Error() != e.Message {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

// NewAppError creates an AppError with an explicit status code.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates a 404 AppError that matches ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return NewAppError(http.StatusNotFound, message, ErrNotFound)
}

// NewCurrencyRateNotFoundError creates a 404 AppError that matches ErrCurrencyRateNotFound.
func NewCurrencyRateNotFoundError(message string) *AppError {
	return NewAppError(http.StatusNotFound, message, ErrCurrencyRateNotFound)
}

// NewCreationFailedError creates a 400 AppError that matches ErrCreationFailed.
func NewCreationFailedError(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message, ErrCreationFailed)
}

// WrapCreationFailed turns any error into a creation-failed AppError carrying the original message.
// Errors that already are creation failures are returned unchanged.
func WrapCreationFailed(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) && errors.Is(err, ErrCreationFailed) {
		return appErr
	}
	return NewAppError(http.StatusBadRequest, MessageOf(err), fmt.Errorf("%w: %w", ErrCreationFailed, err))
}

// NewMultipleMatchesError creates a 500 AppError that matches ErrMultipleMatches.
func NewMultipleMatchesError(message string) *AppError {
	return NewAppError(http.StatusInternalServerError, message, ErrMultipleMatches)
}

// NewValidationError creates a 400 AppError that matches ErrValidation.
func NewValidationError(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message, ErrValidation)
}

// statusTable maps error kinds to HTTP status codes. More specific kinds come first.
var statusTable = []struct {
	kind   error
	status int
}{
	{ErrCurrencyRateNotFound, http.StatusNotFound},
	{ErrNotFound, http.StatusNotFound},
	{ErrCreationFailed, http.StatusBadRequest},
	{ErrValidation, http.StatusBadRequest},
	{ErrMultipleMatches, http.StatusInternalServerError},
}

// StatusFor returns the HTTP status code an error should be reported with.
func StatusFor(err error) int {
	for _, entry := range statusTable {
		if errors.Is(err, entry.kind) {
			return entry.status
		}
	}
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Code != 0 {
		return appErr.Code
	}
	return http.StatusInternalServerError
}

// MessageOf returns the client-facing message of an error.
func MessageOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}
