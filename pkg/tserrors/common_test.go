package tserrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWithSourceError(t *testing.T) {
	inner := errors.New("unexpected value")
	err := NewWithSourceError(inner, "foo", 3, 5)

	require.ErrorIs(t, err, inner)
	require.Equal(t, "unexpected value (line 3, column 5)", err.Error())

	wrapped := fmt.Errorf("loading file: %w", err)
	found, ok := AsWithSourceError(wrapped)
	require.True(t, ok)
	require.Equal(t, "foo", found.SourceCodeString)
	require.Equal(t, uint64(3), found.LineNumber)

	_, ok = AsWithSourceError(inner)
	require.False(t, ok)
}

func TestWithSourceErrorWithoutPosition(t *testing.T) {
	err := NewWithSourceError(errors.New("boom"), "", 0, 0)
	require.Equal(t, "boom", err.Error())
}

func TestMetadata(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", NewWithSourceError(errors.New("boom"), "src", 1, 2))

	metadata, ok := MetadataFor(err)
	require.True(t, ok)
	require.Equal(t, "src", metadata["source_code"])

	_, ok = MetadataFor(errors.New("plain"))
	require.False(t, ok)
}
