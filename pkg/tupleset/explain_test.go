package tupleset

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExplain(t *testing.T) {
	leaf := &TupleSet{}
	require.NoError(t, leaf.Add("z", "1"))

	left := &TupleSet{}
	left.Merge(leaf)
	require.NoError(t, left.Add("y", "1"))
	require.NoError(t, left.Add("y", "2"))

	right := &TupleSet{}
	require.NoError(t, right.Add("w", "1"))

	root := &TupleSet{}
	root.Merge(left)
	root.Merge(right)
	require.NoError(t, root.Add("x", "1"))

	explain := root.Explain()
	require.Equal(t, "TupleSet[x(1)]", explain.Info)
	require.Len(t, explain.SubExplain, 2)
	require.Equal(t, "TupleSet[y(2)]", explain.SubExplain[0].Info)
	require.Equal(t, "TupleSet[z(1)]", explain.SubExplain[0].SubExplain[0].Info)

	expected := "TupleSet[x(1)]\n" +
		"├─ TupleSet[y(2)]\n" +
		"│  └─ TupleSet[z(1)]\n" +
		"└─ TupleSet[w(1)]\n"
	require.Equal(t, expected, explain.String())
}

func TestExplainIncludesShortID(t *testing.T) {
	ts := New()
	require.NoError(t, ts.Add("x", "1"))

	explain := ts.Explain()
	require.Equal(t, ts.ID(), explain.ID)
	require.Equal(t, "TupleSet[x(1)] (ID: "+ts.ID()[:8]+")\n", explain.String())
}

func TestExplainEmpty(t *testing.T) {
	require.Equal(t, "TupleSet[]\n", (&TupleSet{}).Explain().String())
}
