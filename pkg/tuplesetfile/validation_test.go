package tuplesetfile

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidatePassing(t *testing.T) {
	loaded, err := LoadFiles(filepath.Join("testdata", "federated.yaml"))
	require.NoError(t, err)

	failures := loaded[0].File.Validate(loaded[0].TupleSet)
	require.Empty(t, failures)
}

func TestValidateFailures(t *testing.T) {
	file, err := DecodeFile([]byte(`bindings:
  - x: ["1", "2"]
assertions:
  - variables: [x]
    expectedCount: 3
  - variables: [x]
    expected:
      - {x: "2"}
      - {x: "1"}
  - variables: [x]
    expected:
      - {x: "1"}
      - {x: "2"}
  - variables: [missing]
    expected: []
`))
	require.NoError(t, err)

	ts, err := file.Build()
	require.NoError(t, err)

	failures := file.Validate(ts)
	require.Len(t, failures, 2)

	require.Equal(t, 4, failures[0].Assertion.SourcePosition.LineNumber)
	require.Contains(t, failures[0].Message, "expected 3 tuples for [x], found 2")
	require.Contains(t, failures[0].Error(), "assertion on line 4 failed")

	require.Equal(t, 6, failures[1].Assertion.SourcePosition.LineNumber)
	require.Contains(t, failures[1].Message, "unexpected tuples for [x]")
}
