package tupleset

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// ConflictError occurs when a variable is bound on a level of a TupleSet while
// it is already bound within one of the TupleSets merged into that level.
type ConflictError struct {
	error
	variable string
}

// NewConflictError constructs a new ConflictError for the given variable.
func NewConflictError(variable string) ConflictError {
	return ConflictError{
		error:    fmt.Errorf("could not bind variable `%s` on higher level as it is already bound in an embedded binding", variable),
		variable: variable,
	}
}

// Variable is the name of the variable that could not be bound.
func (err ConflictError) Variable() string {
	return err.variable
}

// MarshalZerologObject implements zerolog object marshalling.
func (err ConflictError) MarshalZerologObject(e *zerolog.Event) {
	e.Err(err.error).Str("variable", err.variable)
}

// DetailsMetadata returns the metadata for details for this error.
func (err ConflictError) DetailsMetadata() map[string]string {
	return map[string]string{
		"variable": err.variable,
	}
}

// AsConflictError returns the error as a ConflictError, if applicable.
func AsConflictError(err error) (ConflictError, bool) {
	var conflictErr ConflictError
	if errors.As(err, &conflictErr) {
		return conflictErr, true
	}
	return ConflictError{}, false
}
