package tuplesetfile

import (
	"fmt"
	"os"

	"github.com/ccoveille/go-safecast/v2"

	log "github.com/authzed/tupleset/internal/logging"
	"github.com/authzed/tupleset/pkg/genutil/mapz"
	"github.com/authzed/tupleset/pkg/tserrors"
	"github.com/authzed/tupleset/pkg/tupleset"
)

// LoadedFile is a decoded file together with the tuple set built from it.
type LoadedFile struct {
	// Path is the path the file was read from.
	Path string

	// File is the decoded file.
	File *File

	// TupleSet is the root of the built tree.
	TupleSet *tupleset.TupleSet
}

// LoadFiles reads, decodes and builds each of the given files.
func LoadFiles(filePaths ...string) ([]LoadedFile, error) {
	loaded := make([]LoadedFile, 0, len(filePaths))
	for _, filePath := range filePaths {
		contents, err := os.ReadFile(filePath)
		if err != nil {
			return nil, err
		}

		parsed, err := DecodeFile(contents)
		if err != nil {
			return nil, fmt.Errorf("error when parsing tuple set file %s: %w", filePath, err)
		}

		ts, err := parsed.Build()
		if err != nil {
			return nil, fmt.Errorf("error when building tuple set file %s: %w", filePath, err)
		}

		log.Debug().Str("path", filePath).Object("tupleset", ts).Int("variables", ts.Variables().Len()).Int("assertions", len(parsed.Assertions)).Msg("loaded tuple set file")
		loaded = append(loaded, LoadedFile{Path: filePath, File: parsed, TupleSet: ts})
	}
	return loaded, nil
}

// Build constructs the tuple set described by the node: nested levels are
// built and merged first, then the bindings of this level are added in
// document order.
func (n Node) Build() (*tupleset.TupleSet, error) {
	ts := tupleset.New()
	for _, child := range n.Merge {
		built, err := child.Build()
		if err != nil {
			return nil, err
		}
		ts.Merge(built)
	}

	seen := mapz.NewSet[tupleset.Binding]()
	for _, binding := range n.Bindings {
		if !seen.Add(tupleset.Binding{Variable: binding.Variable, Value: binding.Value}) {
			log.Warn().Str("variable", binding.Variable).Str("value", binding.Value).Int("line", binding.SourcePosition.LineNumber).Msg("found repeated binding; it will produce duplicate tuples")
		}

		if err := ts.Add(binding.Variable, binding.Value); err != nil {
			return nil, sourceErrorFor(binding, err)
		}
	}

	return ts, nil
}

func sourceErrorFor(binding Binding, err error) error {
	line, castErr := safecast.Convert[uint64](binding.SourcePosition.LineNumber)
	if castErr != nil {
		return castErr
	}
	column, castErr := safecast.Convert[uint64](binding.SourcePosition.ColumnPosition)
	if castErr != nil {
		return castErr
	}

	return tserrors.NewWithSourceError(
		fmt.Errorf("error binding `%s` to `%s`: %w", binding.Variable, binding.Value, err),
		binding.Variable,
		line,
		column,
	)
}
