package tupleset

import (
	"iter"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	log "github.com/authzed/tupleset/internal/logging"
	"github.com/authzed/tupleset/pkg/genutil/mapz"
	"github.com/authzed/tupleset/pkg/genutil/slicez"
)

// TupleSet is the explosion of the multi-valued bindings of its own variables
// with the tuple sets merged into it.
type TupleSet struct {
	id       string
	bindings mapz.MultiMap[string, string]
	explodes []*TupleSet
}

// New creates an empty TupleSet.
func New() *TupleSet {
	return &TupleSet{id: uuid.NewString()}
}

// ID uniquely identifies this level of the tree in explanations and logs.
func (ts *TupleSet) ID() string {
	return ts.id
}

// Add binds the variable key to value on this level. A variable may be bound
// to several values; they are kept in the order they were added.
//
// Returns a ConflictError if key is already bound within any merged TupleSet.
func (ts *TupleSet) Add(key, value string) error {
	for _, explode := range ts.explodes {
		if explode.HasVariable(key) {
			err := NewConflictError(key)
			log.Debug().Str("tupleset", ts.id).Str("child", explode.id).Object("conflict", err).Msg("refusing to bind variable owned by a merged tuple set")
			return err
		}
	}

	ts.bindings.Add(key, value)
	return nil
}

// Merge appends other as a nested TupleSet. other is owned by this TupleSet
// from then on and must not be merged anywhere else.
//
// No conflict check is done here: siblings may bind the same variables, and a
// conflict with this level is reported by the next Add of such a variable.
func (ts *TupleSet) Merge(other *TupleSet) {
	if other == nil {
		return
	}
	ts.explodes = append(ts.explodes, other)
}

// HasVariable returns true if key is bound on this level or in any merged
// TupleSet.
func (ts *TupleSet) HasVariable(key string) bool {
	if ts.bindings.Has(key) {
		return true
	}

	for _, explode := range ts.explodes {
		if explode.HasVariable(key) {
			return true
		}
	}
	return false
}

// Variables returns all variables bound on this level or in any merged
// TupleSet.
func (ts *TupleSet) Variables() *mapz.Set[string] {
	vars := mapz.NewSet(ts.bindings.Keys()...)
	for _, explode := range ts.explodes {
		vars.Merge(explode.Variables())
	}
	return vars
}

// Tuples flattens the TupleSet into tuples over the given variables.
//
// The tuples of all merged TupleSets are concatenated, then multiplied by
// every value of each requested variable bound on this level. Requested
// variables that are bound nowhere are absent from the result rather than an
// error. A variable requested more than once is flattened only once,
// so every tuple binds each variable at most once. A TupleSet that
// cannot bind any requested variable yields no tuples.
//
// The number of tuples is the product of the value counts of the requested
// variables, see CountTuples to bound it before flattening.
func (ts *TupleSet) Tuples(variables ...string) []*Tuple {
	own, rest := ts.partition(slicez.Unique(variables))

	explosion := []*Tuple{}
	for _, explode := range ts.explodes {
		explosion = append(explosion, explode.Tuples(rest...)...)
	}

	for _, key := range own {
		values, _ := ts.bindings.Get(key)
		if len(explosion) == 0 {
			explosion = make([]*Tuple, 0, len(values))
			for _, value := range values {
				tuple := NewTuple()
				tuple.Add(key, value)
				explosion = append(explosion, tuple)
			}
			continue
		}

		next := make([]*Tuple, 0, len(values)*len(explosion))
		for _, value := range values {
			for _, yet := range explosion {
				tuple := yet.Clone()
				tuple.Add(key, value)
				next = append(next, tuple)
			}
		}
		explosion = next
	}

	log.Trace().Str("tupleset", ts.id).Strs("variables", variables).Int("tuples", len(explosion)).Msg("flattened tuple set")
	return explosion
}

// Seq returns an iterator over the tuples for the given variables.
func (ts *TupleSet) Seq(variables ...string) iter.Seq[*Tuple] {
	return func(yield func(*Tuple) bool) {
		for _, tuple := range ts.Tuples(variables...) {
			if !yield(tuple) {
				return
			}
		}
	}
}

// partition splits the requested variables into the ones bound on this level
// and the ones left to the merged tuple sets, keeping the requested order.
func (ts *TupleSet) partition(variables []string) (own []string, rest []string) {
	return slicez.Partition(variables, ts.bindings.Has)
}

// Len is the number of variables bound on this level, ignoring merged tuple
// sets.
func (ts *TupleSet) Len() int {
	return ts.bindings.Len()
}

// IsEmpty returns true if neither this level nor any merged TupleSet binds a
// variable.
func (ts *TupleSet) IsEmpty() bool {
	if !ts.bindings.IsEmpty() {
		return false
	}

	for _, explode := range ts.explodes {
		if !explode.IsEmpty() {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the whole tree.
func (ts *TupleSet) Clone() *TupleSet {
	cloned := &TupleSet{
		id:       uuid.NewString(),
		bindings: *ts.bindings.Clone(),
		explodes: make([]*TupleSet, 0, len(ts.explodes)),
	}
	for _, explode := range ts.explodes {
		cloned.explodes = append(cloned.explodes, explode.Clone())
	}
	return cloned
}

// String renders the TupleSet as `TupleSet({x=[1, 2]}+[...])`.
func (ts *TupleSet) String() string {
	var sb strings.Builder
	ts.writeTo(&sb)
	return sb.String()
}

func (ts *TupleSet) writeTo(sb *strings.Builder) {
	sb.WriteString("TupleSet({")
	for i, key := range ts.bindings.Keys() {
		if i > 0 {
			sb.WriteString(", ")
		}
		values, _ := ts.bindings.Get(key)
		sb.WriteString(key)
		sb.WriteString("=[")
		sb.WriteString(strings.Join(values, ", "))
		sb.WriteByte(']')
	}
	sb.WriteString("}+[")
	for i, explode := range ts.explodes {
		if i > 0 {
			sb.WriteString(", ")
		}
		explode.writeTo(sb)
	}
	sb.WriteString("])")
}

// MarshalZerologObject implements zerolog object marshalling.
func (ts *TupleSet) MarshalZerologObject(e *zerolog.Event) {
	e.Str("id", ts.id).
		Strs("bindings", ts.bindings.Keys()).
		Strs("variables", mapz.SortedSlice(ts.Variables())).
		Int("explodes", len(ts.explodes))
}
