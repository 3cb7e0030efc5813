package chart

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptySelection indicates no Y columns were chosen.
	ErrEmptySelection = errors.New("no columns selected to plot")
	// ErrMissingAxis indicates the plot kind needs an X column but none was given.
	ErrMissingAxis = errors.New("x-axis column required")
	// ErrInvalidColumnReference indicates a column name that is not in the dataset.
	ErrInvalidColumnReference = errors.New("column not found in dataset")
	// ErrUnknownKind indicates a plot kind outside the supported set.
	ErrUnknownKind = errors.New("unknown plot kind")
)

// ValidationError reports a request field that failed validation.
type ValidationError struct {
	Field string // "kind", "x", "y"
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// ColumnError reports a request that references a column the dataset lacks.
type ColumnError struct {
	Name string
	Role string // "x" or "y"
}

func (e *ColumnError) Error() string {
	return fmt.Sprintf("%s column %q: %v", e.Role, e.Name, ErrInvalidColumnReference)
}

func (e *ColumnError) Unwrap() error { return ErrInvalidColumnReference }
