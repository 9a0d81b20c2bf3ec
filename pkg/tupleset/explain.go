package tupleset

import (
	"fmt"
	"strings"
)

// Explain describes the layout of a TupleSet tree.
type Explain struct {
	ID         string
	Info       string
	SubExplain []Explain
}

// Explain returns a description of this TupleSet and everything merged into
// it.
func (ts *TupleSet) Explain() Explain {
	subs := make([]Explain, len(ts.explodes))
	for i, explode := range ts.explodes {
		subs[i] = explode.Explain()
	}

	bound := make([]string, 0, ts.bindings.Len())
	for _, key := range ts.bindings.Keys() {
		bound = append(bound, fmt.Sprintf("%s(%d)", key, ts.bindings.CountOf(key)))
	}

	return Explain{
		ID:         ts.id,
		Info:       fmt.Sprintf("TupleSet[%s]", strings.Join(bound, ", ")),
		SubExplain: subs,
	}
}

// String renders the explanation as an indented outline, one node per line.
func (e Explain) String() string {
	var sb strings.Builder
	e.format(&sb, "", "")
	return sb.String()
}

func (e Explain) format(sb *strings.Builder, prefix string, childPrefix string) {
	sb.WriteString(prefix)
	sb.WriteString(e.Info)
	if len(e.ID) >= 8 {
		fmt.Fprintf(sb, " (ID: %s)", e.ID[:8])
	}
	sb.WriteByte('\n')

	for i, sub := range e.SubExplain {
		if i == len(e.SubExplain)-1 {
			sub.format(sb, childPrefix+"└─ ", childPrefix+"   ")
		} else {
			sub.format(sb, childPrefix+"├─ ", childPrefix+"│  ")
		}
	}
}
