package tupleset

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSaturatingArithmetic(t *testing.T) {
	require.Equal(t, uint64(5), saturatingAdd(2, 3))
	require.Equal(t, uint64(math.MaxUint64), saturatingAdd(math.MaxUint64, 1))
	require.Equal(t, uint64(6), saturatingMul(2, 3))
	require.Equal(t, uint64(math.MaxUint64), saturatingMul(math.MaxUint64/2, 3))
	require.Equal(t, uint64(0), saturatingMul(math.MaxUint64, 0))
}

func TestCountTuplesWithoutMaterializing(t *testing.T) {
	// 64 variables with 4 values each would be 2^128 tuples.
	ts := New()
	variables := make([]string, 0, 64)
	for i := 0; i < 64; i++ {
		key := string(rune('A' + i))
		variables = append(variables, key)
		for _, value := range []string{"0", "1", "2", "3"} {
			require.NoError(t, ts.Add(key, value))
		}
	}

	require.Equal(t, uint64(math.MaxUint64), ts.CountTuples(variables...))
	require.Equal(t, uint64(16), ts.CountTuples(variables[0], variables[1]))
	require.Equal(t, uint64(0), ts.CountTuples())
}

func TestCountTuplesAcrossChildren(t *testing.T) {
	left := New()
	require.NoError(t, left.Add("x", "1"))
	require.NoError(t, left.Add("x", "2"))

	right := New()
	require.NoError(t, right.Add("x", "3"))

	root := New()
	root.Merge(left)
	root.Merge(right)
	require.NoError(t, root.Add("y", "a"))
	require.NoError(t, root.Add("y", "b"))

	require.Equal(t, uint64(6), root.CountTuples("x", "y"))
	require.Equal(t, uint64(3), root.CountTuples("x"))
	require.Equal(t, uint64(2), root.CountTuples("y"))
	require.Equal(t, uint64(0), root.CountTuples("unknown"))
}
