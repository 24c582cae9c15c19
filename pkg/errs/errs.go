// Package errs defines the error kinds shared by the record stores and the
// command layer. Callers match them with errors.Is and errors.As.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation matches every *ValidationError.
	ErrValidation = errors.New("invalid value")

	// ErrAlreadyExists is returned when a record key is already taken.
	ErrAlreadyExists = errors.New("record already exists")

	// ErrNotFound is returned when a record key or sub-field does not exist.
	ErrNotFound = errors.New("not found")

	// ErrNoBirthday is returned by birthday queries on a record without one.
	ErrNoBirthday = errors.New("no birthday set")

	// ErrDuplicateField is returned when a repeated attribute value is added twice.
	ErrDuplicateField = errors.New("duplicate value")

	// ErrPersistence matches every *PersistenceError.
	ErrPersistence = errors.New("persistence failure")
)

// ValidationError reports a value that failed its format rule.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

// Invalid builds a ValidationError.
func Invalid(field, value, reason string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Reason: reason}
}

func (e *ValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

// Is reports whether target is ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// PersistenceError reports a failed load or save of a store's target.
// Divergent is set when the in-memory store already holds a mutation
// that never reached disk.
type PersistenceError struct {
	Op        string
	Target    string
	Divergent bool
	Err       error
}

func (e *PersistenceError) Error() string {
	msg := fmt.Sprintf("%s %s: %v", e.Op, e.Target, e.Err)
	if e.Divergent {
		msg += " (in-memory data is ahead of disk)"
	}
	return msg
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrPersistence.
func (e *PersistenceError) Is(target error) bool {
	return target == ErrPersistence
}
