package tuplesetfile

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/ccoveille/go-safecast/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/authzed/tupleset/pkg/tserrors"
)

var (
	yamlLineRegex      = regexp.MustCompile(`line ([0-9]+): (.+)`)
	yamlUnmarshalRegex = regexp.MustCompile("cannot unmarshal !!(?:str|seq|map) `([^`]+)...`")
)

func convertYamlError(err error) error {
	if _, ok := tserrors.AsWithSourceError(err); ok {
		return err
	}

	linePieces := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(linePieces) == 3 {
		lineNumber, parseErr := strconv.ParseUint(linePieces[1], 10, 32)
		if parseErr != nil {
			lineNumber = 0
		}

		message := linePieces[2]
		source := ""
		unmarshalPieces := yamlUnmarshalRegex.FindStringSubmatch(message)
		if len(unmarshalPieces) == 2 {
			source = unmarshalPieces[1]
			if strings.Contains(source, " ") {
				source, _, _ = strings.Cut(source, " ")
			}

			message = fmt.Sprintf("unexpected value `%s`", source)
		}

		return tserrors.NewWithSourceError(
			errors.New(message),
			source,
			lineNumber,
			0,
		)
	}

	return err
}

// sourcePosition returns the position of the node in the document.
func sourcePosition(node *yamlv3.Node) tserrors.SourcePosition {
	return tserrors.SourcePosition{LineNumber: node.Line, ColumnPosition: node.Column}
}

// errorAt builds a source error pointing at the given node.
func errorAt(node *yamlv3.Node, source string, format string, args ...any) error {
	line, err := safecast.Convert[uint64](node.Line)
	if err != nil {
		return err
	}
	column, err := safecast.Convert[uint64](node.Column)
	if err != nil {
		return err
	}

	return tserrors.NewWithSourceError(fmt.Errorf(format, args...), source, line, column)
}
