package tuplesetfile

import (
	"fmt"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/authzed/tupleset/pkg/genutil/slicez"
	"github.com/authzed/tupleset/pkg/tupleset"
)

// AssertionFailure describes an assertion that did not hold.
type AssertionFailure struct {
	// Assertion is the assertion that failed.
	Assertion Assertion

	// Message describes the mismatch.
	Message string
}

func (af AssertionFailure) Error() string {
	return fmt.Sprintf("assertion on line %d failed: %s", af.Assertion.SourcePosition.LineNumber, af.Message)
}

// Validate runs every assertion of the file against the given tuple set and
// returns those that failed.
func (f *File) Validate(ts *tupleset.TupleSet) []AssertionFailure {
	var failures []AssertionFailure
	for _, assertion := range f.Assertions {
		if message, ok := assertion.check(ts); !ok {
			failures = append(failures, AssertionFailure{Assertion: assertion, Message: message})
		}
	}
	return failures
}

func (a Assertion) check(ts *tupleset.TupleSet) (string, bool) {
	if a.ExpectedCount != nil {
		if count := ts.CountTuples(a.Variables...); count != *a.ExpectedCount {
			return fmt.Sprintf("expected %d tuples for %v, found %d", *a.ExpectedCount, a.Variables, count), false
		}
	}

	if a.Expected != nil {
		found := slicez.Map(ts.Tuples(a.Variables...), (*tupleset.Tuple).AsMap)
		if diff := cmp.Diff(a.Expected, found, cmpopts.EquateEmpty()); diff != "" {
			return fmt.Sprintf("unexpected tuples for %v (-expected +found):\n%s", a.Variables, diff), false
		}
	}

	return "", true
}
