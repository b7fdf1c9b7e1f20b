package apperrors

import (
	"errors"
	"strings"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrInvalidAmount indicates a ledger transaction amount the account's policy does not accept.
var ErrInvalidAmount = errors.New("invalid transaction amount")

// ErrInvalidState indicates that an operation is not allowed in the current workflow state.
var ErrInvalidState = errors.New("operation not allowed in current state")

// ErrPersistence indicates that the local persistence substrate failed to read or write.
var ErrPersistence = errors.New("local store unavailable")

// ErrRemoteFetch indicates that the remote catalog API failed.
var ErrRemoteFetch = errors.New("remote catalog request failed")

// ErrSuperseded indicates a catalog result that resolved after a newer request was issued.
var ErrSuperseded = errors.New("request superseded by a newer request")

// ErrUnauthorized indicates a missing or stale session.
var ErrUnauthorized = errors.New("unauthorized")

// ValidationError carries every validation message at once so the caller can show them together.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation error: " + strings.Join(e.Messages, "; ")
}

// Unwrap lets errors.Is(err, ErrValidation) match.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError returns nil when there are no messages.
func NewValidationError(messages []string) error {
	if len(messages) == 0 {
		return nil
	}
	return &ValidationError{Messages: messages}
}

// ValidationMessages extracts the message list from err, if it carries one.
func ValidationMessages(err error) []string {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr.Messages
	}
	if errors.Is(err, ErrValidation) {
		return []string{err.Error()}
	}
	return nil
}
