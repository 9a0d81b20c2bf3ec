package tupleset

import (
	"slices"
	"strings"

	"github.com/rs/zerolog"
)

// Binding is a single variable and the value it is bound to within a Tuple.
type Binding struct {
	Variable string `json:"variable" yaml:"variable"`
	Value    string `json:"value" yaml:"value"`
}

// Tuple is one flat assignment of values to variables, kept in the order the
// variables were added.
//
// Tuples are produced by flattening a TupleSet, which guarantees that every
// variable appears at most once.
type Tuple struct {
	bindings []Binding
}

// NewTuple creates an empty tuple.
func NewTuple() *Tuple {
	return &Tuple{}
}

// Add appends the binding of key to value. The caller must not add the same key
// twice.
func (t *Tuple) Add(key, value string) {
	t.bindings = append(t.bindings, Binding{Variable: key, Value: value})
}

// Clone returns an independent copy of the tuple, which can be extended
// without affecting the original.
func (t *Tuple) Clone() *Tuple {
	cloned := &Tuple{bindings: make([]Binding, len(t.bindings), len(t.bindings)+1)}
	copy(cloned.bindings, t.bindings)
	return cloned
}

// Get returns the value bound to the key and whether it was bound at all.
func (t *Tuple) Get(key string) (string, bool) {
	for _, b := range t.bindings {
		if b.Variable == key {
			return b.Value, true
		}
	}
	return "", false
}

// Len is the number of bound variables.
func (t *Tuple) Len() int {
	return len(t.bindings)
}

// Keys returns the bound variables in order.
func (t *Tuple) Keys() []string {
	keys := make([]string, 0, len(t.bindings))
	for _, b := range t.bindings {
		keys = append(keys, b.Variable)
	}
	return keys
}

// Values returns the bound values, in the order of Keys.
func (t *Tuple) Values() []string {
	values := make([]string, 0, len(t.bindings))
	for _, b := range t.bindings {
		values = append(values, b.Value)
	}
	return values
}

// Bindings returns a copy of the ordered bindings.
func (t *Tuple) Bindings() []Binding {
	return slices.Clone(t.bindings)
}

// AsMap returns the bindings keyed by variable.
func (t *Tuple) AsMap() map[string]string {
	asMap := make(map[string]string, len(t.bindings))
	for _, b := range t.bindings {
		asMap[b.Variable] = b.Value
	}
	return asMap
}

// Equal returns true if both tuples bind the same variables to the same values
// in the same order.
func (t *Tuple) Equal(other *Tuple) bool {
	return slices.Equal(t.bindings, other.bindings)
}

// String renders the tuple as `{x=1, y=a}`.
func (t *Tuple) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, b := range t.bindings {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(b.Variable)
		sb.WriteByte('=')
		sb.WriteString(b.Value)
	}
	sb.WriteByte('}')
	return sb.String()
}

// MarshalZerologObject implements zerolog object marshalling.
func (t *Tuple) MarshalZerologObject(e *zerolog.Event) {
	for _, b := range t.bindings {
		e.Str(b.Variable, b.Value)
	}
}
