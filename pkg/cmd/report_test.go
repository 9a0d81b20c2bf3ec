package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReportError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "plain error",
			err:      errors.New("boom"),
			expected: "Error: boom\n",
		},
		{
			name:     "metadata is listed in key order",
			err:      fmt.Errorf("flattening: %w", NewTooManyTuplesError(6, 5)),
			expected: "Error: flattening: flattening would produce 6 tuples, more than the maximum of 5; narrow the variables or raise --max-tuples\n  count: 6\n  max_tuples: 5\n",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			ReportError(&buf, tc.err)
			require.Equal(t, tc.expected, buf.String())
		})
	}
}

func TestReportConflictFromFile(t *testing.T) {
	_, err := execute(t, "flatten", filepath.Join("..", "tuplesetfile", "testdata", "conflict.yaml"))
	require.Error(t, err)

	var buf bytes.Buffer
	ReportError(&buf, err)
	require.Contains(t, buf.String(), "error binding `x` to `2`")
	require.Contains(t, buf.String(), "  line_number: 6\n")
	require.Contains(t, buf.String(), "  source_code: x\n")
}
