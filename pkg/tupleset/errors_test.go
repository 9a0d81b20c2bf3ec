package tupleset

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	log "github.com/authzed/tupleset/internal/logging"
	"github.com/authzed/tupleset/pkg/tserrors"
)

func TestConflictError(t *testing.T) {
	err := NewConflictError("x")
	require.Equal(t, "x", err.Variable())
	require.Equal(t, "could not bind variable `x` on higher level as it is already bound in an embedded binding", err.Error())

	wrapped := fmt.Errorf("binding solution: %w", err)
	found, ok := AsConflictError(wrapped)
	require.True(t, ok)
	require.Equal(t, "x", found.Variable())

	metadata, ok := tserrors.MetadataFor(wrapped)
	require.True(t, ok)
	require.Equal(t, "x", metadata["variable"])

	_, ok = AsConflictError(errors.New("other"))
	require.False(t, ok)
}

func TestConflictIsLogged(t *testing.T) {
	originalLogger := log.Logger
	t.Cleanup(func() {
		log.SetGlobalLogger(originalLogger)
	})

	buf := &bytes.Buffer{}
	log.SetGlobalLogger(zerolog.New(buf).Level(zerolog.DebugLevel))

	child := New()
	require.NoError(t, child.Add("x", "1"))
	parent := New()
	parent.Merge(child)

	require.Error(t, parent.Add("x", "2"))
	require.Contains(t, buf.String(), `"variable":"x"`)
	require.Contains(t, buf.String(), child.ID())
}
