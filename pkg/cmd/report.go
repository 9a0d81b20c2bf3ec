package cmd

import (
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/authzed/tupleset/pkg/tserrors"
)

// ReportError writes the error that terminated a command to w, followed by
// the details metadata found in its chain, one sorted key per line.
func ReportError(w io.Writer, err error) {
	fmt.Fprintln(w, failure.Sprint("Error:"), err)

	metadata, ok := tserrors.MetadataFor(err)
	if !ok {
		return
	}
	for _, key := range slices.Sorted(maps.Keys(metadata)) {
		fmt.Fprintf(w, "  %s: %s\n", faint.Sprint(key), metadata[key])
	}
}
