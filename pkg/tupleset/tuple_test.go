package tupleset

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestTupleAddAndGet(t *testing.T) {
	tuple := NewTuple()
	require.Equal(t, 0, tuple.Len())
	require.Equal(t, "{}", tuple.String())

	tuple.Add("x", "1")
	tuple.Add("y", "a")

	require.Equal(t, 2, tuple.Len())
	require.Equal(t, []string{"x", "y"}, tuple.Keys())
	require.Equal(t, []string{"1", "a"}, tuple.Values())
	require.Equal(t, map[string]string{"x": "1", "y": "a"}, tuple.AsMap())
	require.Equal(t, "{x=1, y=a}", tuple.String())

	value, ok := tuple.Get("y")
	require.True(t, ok)
	require.Equal(t, "a", value)

	_, ok = tuple.Get("z")
	require.False(t, ok)
}

func TestTupleCloneIsIndependent(t *testing.T) {
	prefix := NewTuple()
	prefix.Add("x", "1")

	first := prefix.Clone()
	second := prefix.Clone()
	first.Add("y", "a")
	second.Add("y", "b")

	require.Equal(t, "{x=1}", prefix.String())
	require.Equal(t, "{x=1, y=a}", first.String())
	require.Equal(t, "{x=1, y=b}", second.String())

	// Extending a clone further must not overwrite a sibling clone.
	third := first.Clone()
	fourth := first.Clone()
	third.Add("z", "3")
	fourth.Add("z", "4")
	require.Equal(t, "{x=1, y=a, z=3}", third.String())
	require.Equal(t, "{x=1, y=a, z=4}", fourth.String())
}

func TestTupleEqual(t *testing.T) {
	a := NewTuple()
	a.Add("x", "1")
	a.Add("y", "2")

	b := a.Clone()
	require.True(t, a.Equal(b))

	c := NewTuple()
	c.Add("y", "2")
	c.Add("x", "1")
	require.False(t, a.Equal(c))

	b.Add("z", "3")
	require.False(t, a.Equal(b))
}

func TestTupleBindingsIsACopy(t *testing.T) {
	tuple := NewTuple()
	tuple.Add("x", "1")

	bindings := tuple.Bindings()
	bindings[0].Value = "changed"

	value, _ := tuple.Get("x")
	require.Equal(t, "1", value)
}

func TestTupleMarshalZerologObject(t *testing.T) {
	tuple := NewTuple()
	tuple.Add("x", "1")
	tuple.Add("y", "a")

	buf := &bytes.Buffer{}
	logger := zerolog.New(buf)
	logger.Info().Object("tuple", tuple).Msg("flattened")

	require.Contains(t, buf.String(), `"tuple":{"x":"1","y":"a"}`)
}
