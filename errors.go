// Package reloader defines the errors shared by the statement builder, its
// Database facade and the record store.
package reloader

import (
	"errors"
	"fmt"
)

// Sentinel causes carried by StateError and ValidationError.
var (
	// ErrBuilderOpen is returned when a statement is begun while another one
	// is still being built on the same handle.
	ErrBuilderOpen = errors.New("a statement is already being built")

	// ErrNoBuilder is returned when a clause is added, or a statement rendered,
	// before any statement was begun.
	ErrNoBuilder = errors.New("no statement is being built")

	// ErrNoListItems is returned when a required clause list is empty.
	ErrNoListItems = errors.New("no list items given")

	// ErrTableCount is returned when a single-table command names zero or
	// several tables.
	ErrTableCount = errors.New("exactly one table is required")

	// ErrRowCount is returned when an UPDATE carries other than one value row.
	ErrRowCount = errors.New("exactly one value row is required")

	// ErrValueCount is returned when a value row does not line up with the
	// field list.
	ErrValueCount = errors.New("field and value counts differ")

	// ErrOperatorFamily is returned when a logical operator sits in a
	// comparison slot or the other way around.
	ErrOperatorFamily = errors.New("operator used outside its family")

	// ErrOperatorCount is returned when the number of logical operators is
	// not one less than the number of conditions.
	ErrOperatorCount = errors.New("logical operators must join consecutive conditions")

	// ErrInvalidIdentifier is returned for a table, column or field name that
	// is not a plain, optionally schema-qualified, SQL identifier.
	ErrInvalidIdentifier = errors.New("invalid identifier")

	// ErrInvalidValue is returned for a value without a type tag, or a
	// non-finite real.
	ErrInvalidValue = errors.New("value has no type")

	// ErrUnknownCommand is returned when a builder carries no known command.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("reloader: record not found")
)

// StateError reports misuse of the begin/build/reset protocol.
type StateError struct {
	Op  string // Operation that was refused (e.g. "begin select", "add column")
	Err error  // ErrBuilderOpen or ErrNoBuilder
}

// Error returns the error string.
func (e *StateError) Error() string {
	return fmt.Sprintf("reloader: %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *StateError) Unwrap() error {
	return e.Err
}

// NewStateError returns a new StateError for the given operation.
func NewStateError(op string, err error) *StateError {
	return &StateError{Op: op, Err: err}
}

// IsStateError returns true if the error is a StateError.
func IsStateError(err error) bool {
	if err == nil {
		return false
	}
	var e *StateError
	return errors.As(err, &e)
}

// ValidationError reports a statement whose clauses are missing or malformed.
type ValidationError struct {
	Clause string // Clause that failed (e.g. "columns", "values", "where")
	Err    error  // Underlying validation error
}

// Error returns the error string.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("reloader: invalid %s clause: %v", e.Clause, e.Err)
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError returns a new ValidationError for the given clause.
func NewValidationError(clause string, err error) *ValidationError {
	return &ValidationError{Clause: clause, Err: err}
}

// IsValidationError returns true if the error is a ValidationError.
func IsValidationError(err error) bool {
	if err == nil {
		return false
	}
	var e *ValidationError
	return errors.As(err, &e)
}

// NotFoundError represents an error when a record is not found.
type NotFoundError struct {
	label string
	id    any // Optional: the ID that was searched for
}

// Error returns the error string.
func (e *NotFoundError) Error() string {
	if e.id != nil {
		return fmt.Sprintf("reloader: %s not found (id=%v)", e.label, e.id)
	}
	return fmt.Sprintf("reloader: %s not found", e.label)
}

// Is reports whether the target error matches NotFoundError.
// This allows errors.Is(notFoundErr, ErrNotFound) to return true.
func (e *NotFoundError) Is(err error) bool {
	return err == ErrNotFound
}

// Label returns the record label.
func (e *NotFoundError) Label() string {
	return e.label
}

// ID returns the ID that was searched for, if available.
func (e *NotFoundError) ID() any {
	return e.id
}

// NewNotFoundError returns a new NotFoundError for the given record kind.
func NewNotFoundError(label string, id any) *NotFoundError {
	return &NotFoundError{label: label, id: id}
}

// IsNotFound returns true if the error is a NotFoundError.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	var e *NotFoundError
	return errors.As(err, &e) || errors.Is(err, ErrNotFound)
}

// ConstraintError represents a storage constraint violation.
type ConstraintError struct {
	msg  string
	wrap error
}

// Error returns the error string.
func (e ConstraintError) Error() string {
	return fmt.Sprintf("reloader: constraint failed: %s", e.msg)
}

// Unwrap returns the underlying error.
func (e ConstraintError) Unwrap() error {
	return e.wrap
}

// NewConstraintError returns a new ConstraintError with the given message.
func NewConstraintError(msg string, wrap error) error {
	return ConstraintError{msg: msg, wrap: wrap}
}

// IsConstraintError returns true if the error is a ConstraintError.
func IsConstraintError(err error) bool {
	if err == nil {
		return false
	}
	var e ConstraintError
	return errors.As(err, &e)
}
