package cmd

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	log "github.com/authzed/tupleset/internal/logging"
	"github.com/authzed/tupleset/pkg/tuplesetfile"
)

var (
	success = color.New(color.FgGreen)
	failure = color.New(color.FgRed)
	faint   = color.New(color.Faint)
)

// NewValidateCommand creates the command running the assertions of files.
func NewValidateCommand(programName string) *cobra.Command {
	return &cobra.Command{
		Use:     "validate <file>...",
		Short:   "check the assertions of tuple set files",
		Args:    cobra.MinimumNArgs(1),
		PreRunE: DefaultPreRunE(programName),
		RunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := tuplesetfile.LoadFiles(args...)
			if err != nil {
				return err
			}

			failed := 0
			for _, file := range loaded {
				failures := file.File.Validate(file.TupleSet)
				log.Debug().Str("path", file.Path).Int("assertions", len(file.File.Assertions)).Int("failures", len(failures)).Msg("validated file")

				if err := printValidation(cmd.OutOrStdout(), file, failures); err != nil {
					return err
				}
				failed += len(failures)
			}

			if failed > 0 {
				return NewValidationFailedError(failed)
			}
			return nil
		},
	}
}

func printValidation(w io.Writer, file tuplesetfile.LoadedFile, failures []tuplesetfile.AssertionFailure) error {
	if len(failures) == 0 {
		_, err := fmt.Fprintf(w, "%s %s %s\n", success.Sprint("✓"), file.Path, faint.Sprintf("(%d assertions)", len(file.File.Assertions)))
		return err
	}

	if _, err := fmt.Fprintf(w, "%s %s\n", failure.Sprint("✗"), file.Path); err != nil {
		return err
	}
	for _, f := range failures {
		if _, err := fmt.Fprintf(w, "  %s\n", failure.Sprint(f.Error())); err != nil {
			return err
		}
	}
	return nil
}
