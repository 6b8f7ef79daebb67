package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrAuthenticationRequired is returned when an operation needs a caller and has none
	ErrAuthenticationRequired = errors.New("authentication required")

	// ErrAlreadySubmitted is returned when the caller already has a row for the form type
	ErrAlreadySubmitted = errors.New("form already submitted")

	// ErrProfileNotFound is returned by GetProfile for an unknown id
	ErrProfileNotFound = errors.New("profile not found")

	// ErrSubmissionNotFound is returned by GetSubmission for an unknown id
	ErrSubmissionNotFound = errors.New("submission not found")

	// ErrUnknownFormType is returned for a form type outside parent, attendee and waiver
	ErrUnknownFormType = errors.New("unknown form type")
)

// ValidationError is a local, pre-write rejection. Nothing reaches the store.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalid(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// WriteError wraps a store rejection of an insert
type WriteError struct {
	Form FormType
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("%s rejected: %v", e.Form, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// SourceError is one failed read against a named source
type SourceError struct {
	Source string
	Err    error
}

// StoreFetchError reports reads that failed badly enough to abort an operation
type StoreFetchError struct {
	Sources []SourceError
}

func (e *StoreFetchError) Error() string {
	parts := make([]string, 0, len(e.Sources))
	for _, s := range e.Sources {
		parts = append(parts, fmt.Sprintf("%s: %v", s.Source, s.Err))
	}
	return "store fetch failed (" + strings.Join(parts, "; ") + ")"
}

// Unwrap exposes every source error to errors.Is and errors.As
func (e *StoreFetchError) Unwrap() []error {
	errs := make([]error, 0, len(e.Sources))
	for _, s := range e.Sources {
		errs = append(errs, s.Err)
	}
	return errs
}
