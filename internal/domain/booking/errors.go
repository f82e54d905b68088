package booking

import (
	"fmt"
	"strings"

	"venue-boxoffice/internal/pkg/errs"
)

var (
	ErrValidation  = errs.New("invalid booking request")
	ErrConflict    = errs.New("booking conflict")
	ErrPersistence = errs.New("failed to persist booking request")
	ErrGroupClosed = errs.New("booking group is closed")
	ErrEmptyGroup  = errs.New("booking group has no requests")
	ErrNoSuchIndex = errs.New("no request at index")
)

type ValidationError struct {
	Field  string
	Reason string
}

func newValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrValidation.Error(), e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// ConflictPair indexes into the group's pending sequence.
type ConflictPair struct {
	First  int
	Second int
	A      Request
	B      Request
}

type ConflictError struct {
	Pairs []ConflictPair
}

func (e *ConflictError) Error() string {
	parts := make([]string, 0, len(e.Pairs))
	for _, p := range e.Pairs {
		parts = append(parts, fmt.Sprintf("#%d %s overlaps #%d %s", p.First, p.A, p.Second, p.B))
	}
	return ErrConflict.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}

// PersistenceError carries the saver's error verbatim.
// Index is -1 when the transaction itself failed rather than a single save.
type PersistenceError struct {
	Index   int
	Request Request
	Err     error
}

func (e *PersistenceError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%s: %v", ErrPersistence.Error(), e.Err)
	}
	return fmt.Sprintf("%s #%d (%s): %v", ErrPersistence.Error(), e.Index, e.Request, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func (e *PersistenceError) Is(target error) bool {
	return target == ErrPersistence
}
