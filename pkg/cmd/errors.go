package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/rs/zerolog"
)

// TooManyTuplesError occurs when flattening a projection would produce more
// tuples than allowed.
type TooManyTuplesError struct {
	error
	count     uint64
	maxTuples uint64
}

// NewTooManyTuplesError constructs a new TooManyTuplesError.
func NewTooManyTuplesError(count, maxTuples uint64) TooManyTuplesError {
	return TooManyTuplesError{
		error:     fmt.Errorf("flattening would produce %d tuples, more than the maximum of %d; narrow the variables or raise --max-tuples", count, maxTuples),
		count:     count,
		maxTuples: maxTuples,
	}
}

// Count is the number of tuples the projection would have produced.
func (err TooManyTuplesError) Count() uint64 {
	return err.count
}

// MarshalZerologObject implements zerolog object marshalling.
func (err TooManyTuplesError) MarshalZerologObject(e *zerolog.Event) {
	e.Err(err.error).Uint64("count", err.count).Uint64("max", err.maxTuples)
}

// DetailsMetadata returns the metadata for details for this error.
func (err TooManyTuplesError) DetailsMetadata() map[string]string {
	return map[string]string{
		"count":      strconv.FormatUint(err.count, 10),
		"max_tuples": strconv.FormatUint(err.maxTuples, 10),
	}
}

// ValidationFailedError occurs when assertions of a tuple set file do not
// hold.
type ValidationFailedError struct {
	error
	failed int
}

// NewValidationFailedError constructs a new ValidationFailedError.
func NewValidationFailedError(failed int) ValidationFailedError {
	return ValidationFailedError{
		error:  fmt.Errorf("%d assertion(s) failed", failed),
		failed: failed,
	}
}

// Failed is the number of failed assertions.
func (err ValidationFailedError) Failed() int {
	return err.failed
}

// IsValidationFailed returns true if the error is a ValidationFailedError.
func IsValidationFailed(err error) bool {
	var vfe ValidationFailedError
	return errors.As(err, &vfe)
}
