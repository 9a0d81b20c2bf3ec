package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	yamlv3 "gopkg.in/yaml.v3"

	log "github.com/authzed/tupleset/internal/logging"
	"github.com/authzed/tupleset/pkg/genutil/mapz"
	"github.com/authzed/tupleset/pkg/genutil/slicez"
	"github.com/authzed/tupleset/pkg/tserrors"
	"github.com/authzed/tupleset/pkg/tupleset"
	"github.com/authzed/tupleset/pkg/tuplesetfile"
)

// FlattenExample is the usage example of the flatten command.
func FlattenExample(programName string) string {
	return fmt.Sprintf(`	%[1]s flatten assets.yaml
	%[1]s flatten assets.yaml --vars vin,assetType --format json
	%[1]s flatten assets.yaml --max-tuples 0`, programName)
}

// Flattener flattens tuple sets and writes the tuples out.
type Flattener struct {
	variables []string
	format    string
	maxTuples uint64
}

// Flatten writes the tuples of ts for the configured variables to w.
func (f *Flattener) Flatten(w io.Writer, ts *tupleset.TupleSet) error {
	variables := f.variables
	if len(variables) == 0 {
		variables = mapz.SortedSlice(ts.Variables())
	}

	count := ts.CountTuples(variables...)
	if f.maxTuples > 0 && count > f.maxTuples {
		err := NewTooManyTuplesError(count, f.maxTuples)
		log.Warn().Object("error", err).Strs("variables", variables).Msg("refusing to flatten")
		return err
	}

	tuples := ts.Tuples(variables...)
	log.Debug().Strs("variables", variables).Int("tuples", len(tuples)).Msg("flattened")

	columns := slicez.Filter(variables, ts.Variables().Has)
	return writeTuples(w, f.format, columns, tuples)
}

func writeTuples(w io.Writer, format string, columns []string, tuples []*tupleset.Tuple) error {
	switch format {
	case FormatTable:
		tw := table.NewWriter()
		tw.SetOutputMirror(w)
		tw.SetStyle(table.StyleLight)

		header := make(table.Row, 0, len(columns))
		for _, column := range columns {
			header = append(header, column)
		}
		tw.AppendHeader(header)

		for _, tuple := range tuples {
			row := make(table.Row, 0, len(columns))
			for _, column := range columns {
				value, _ := tuple.Get(column)
				row = append(row, value)
			}
			tw.AppendRow(row)
		}
		tw.Render()
		return nil

	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(slicez.Map(tuples, (*tupleset.Tuple).AsMap))

	case FormatYAML:
		encoder := yamlv3.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(slicez.Map(tuples, (*tupleset.Tuple).AsMap)); err != nil {
			return err
		}
		return encoder.Close()

	default:
		return tserrors.MustBugf("unknown output format `%s`", format)
	}
}

// NewFlattenCommand creates the command flattening the root tuple set of a
// file.
func NewFlattenCommand(programName string, config *Config) *cobra.Command {
	return &cobra.Command{
		Use:     "flatten <file>",
		Short:   "flatten the tuple set described by a file",
		Example: FlattenExample(programName),
		Args:    cobra.ExactArgs(1),
		PreRunE: DefaultPreRunE(programName),
		RunE: func(cmd *cobra.Command, args []string) error {
			flattener, err := config.Complete()
			if err != nil {
				return err
			}

			loaded, err := tuplesetfile.LoadFiles(args[0])
			if err != nil {
				return err
			}

			return flattener.Flatten(cmd.OutOrStdout(), loaded[0].TupleSet)
		},
	}
}
