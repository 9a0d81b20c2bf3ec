package tupleset

import (
	"math"
	"math/bits"

	"github.com/authzed/tupleset/pkg/genutil/slicez"
)

// CountTuples returns the number of tuples Tuples would produce for the given
// variables, without producing any of them. The count saturates at
// math.MaxUint64.
func (ts *TupleSet) CountTuples(variables ...string) uint64 {
	own, rest := ts.partition(slicez.Unique(variables))

	var count uint64
	for _, explode := range ts.explodes {
		count = saturatingAdd(count, explode.CountTuples(rest...))
	}

	for _, key := range own {
		valueCount := uint64(ts.bindings.CountOf(key))
		if count == 0 {
			count = valueCount
			continue
		}
		count = saturatingMul(count, valueCount)
	}
	return count
}

func saturatingAdd(x, y uint64) uint64 {
	sum, carry := bits.Add64(x, y, 0)
	if carry != 0 {
		return math.MaxUint64
	}
	return sum
}

func saturatingMul(x, y uint64) uint64 {
	hi, lo := bits.Mul64(x, y)
	if hi != 0 {
		return math.MaxUint64
	}
	return lo
}
