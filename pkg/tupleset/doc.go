// Package tupleset provides a compact representation of a set of variable
// bindings that is only exploded into flat tuples on demand.
//
// A TupleSet holds two kinds of information:
//
//   - its own bindings, where each variable may carry several values, and
//   - a list of merged TupleSets, each an independently produced partial
//     result which may in turn be nested.
//
// Flattening a TupleSet for a projection of variables first concatenates
// whatever every merged TupleSet can produce for the variables it owns, and
// then expands that result by the cartesian product of the values of the
// projected variables bound at this level:
//
//	child := tupleset.New()
//	_ = child.Add("x", "1")
//	_ = child.Add("x", "2")
//
//	parent := tupleset.New()
//	parent.Merge(child)
//	_ = parent.Add("y", "a")
//
//	parent.Tuples("x", "y") // [{x=1, y=a}, {x=2, y=a}]
//
// A variable belongs to exactly one scope along any chain of merges: once a
// merged TupleSet binds a variable, binding it again on an enclosing level
// fails with a ConflictError. Sibling TupleSets are alternative sources and may
// bind the same variable.
//
// Building a TupleSet is not synchronized. Once construction is done, all read
// methods are free of side effects and may be called concurrently.
package tupleset
