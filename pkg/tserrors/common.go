package tserrors

import (
	"errors"
	"fmt"
)

// SourcePosition is a position in the input source.
type SourcePosition struct {
	// LineNumber is the 1-indexed line number in the input source.
	LineNumber int

	// ColumnPosition is the 1-indexed column position in the input source.
	ColumnPosition int
}

// WithSourceError is an error that includes the source text and position
// information.
type WithSourceError struct {
	error

	// SourceCodeString is the input source code string for the error.
	SourceCodeString string

	// LineNumber is the (1-indexed) line number of the error, or 0 if unknown.
	LineNumber uint64

	// ColumnPosition is the (1-indexed) column position of the error, or 0 if
	// unknown.
	ColumnPosition uint64
}

// Unwrap returns the inner, wrapped error.
func (err *WithSourceError) Unwrap() error {
	return err.error
}

// Error includes the position when it is known.
func (err *WithSourceError) Error() string {
	if err.LineNumber == 0 {
		return err.error.Error()
	}
	return fmt.Sprintf("%s (line %d, column %d)", err.error.Error(), err.LineNumber, err.ColumnPosition)
}

// DetailsMetadata returns the source position as metadata.
func (err *WithSourceError) DetailsMetadata() map[string]string {
	return map[string]string{
		"source_code":     err.SourceCodeString,
		"line_number":     fmt.Sprintf("%d", err.LineNumber),
		"column_position": fmt.Sprintf("%d", err.ColumnPosition),
	}
}

// NewWithSourceError creates and returns a new WithSourceError.
func NewWithSourceError(err error, sourceCodeString string, oneIndexedLineNumber uint64, oneIndexedColumnPosition uint64) *WithSourceError {
	return &WithSourceError{err, sourceCodeString, oneIndexedLineNumber, oneIndexedColumnPosition}
}

// AsWithSourceError returns the error as an WithSourceError, if applicable.
func AsWithSourceError(err error) (*WithSourceError, bool) {
	var serr *WithSourceError
	if errors.As(err, &serr) {
		return serr, true
	}
	return nil, false
}

// HasMetadata indicates that the error has metadata defined.
type HasMetadata interface {
	// DetailsMetadata returns the metadata for details for this error.
	DetailsMetadata() map[string]string
}

// MetadataFor walks the error chain and returns the metadata of the first
// error that defines any.
func MetadataFor(err error) (map[string]string, bool) {
	var withMetadata HasMetadata
	if errors.As(err, &withMetadata) {
		return withMetadata.DetailsMetadata(), true
	}
	return nil, false
}
