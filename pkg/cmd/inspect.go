package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/authzed/tupleset/pkg/genutil/mapz"
	"github.com/authzed/tupleset/pkg/tuplesetfile"
)

// NewExplainCommand creates the command printing the tree of a file.
func NewExplainCommand(programName string) *cobra.Command {
	return &cobra.Command{
		Use:     "explain <file>",
		Short:   "print the tree of tuple sets described by a file",
		Args:    cobra.ExactArgs(1),
		PreRunE: DefaultPreRunE(programName),
		RunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := tuplesetfile.LoadFiles(args[0])
			if err != nil {
				return err
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), loaded[0].TupleSet.Explain().String())
			return err
		},
	}
}

// NewVariablesCommand creates the command listing the variables bound in a
// file.
func NewVariablesCommand(programName string) *cobra.Command {
	return &cobra.Command{
		Use:     "variables <file>",
		Short:   "list the variables bound anywhere in a file",
		Args:    cobra.ExactArgs(1),
		PreRunE: DefaultPreRunE(programName),
		RunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := tuplesetfile.LoadFiles(args[0])
			if err != nil {
				return err
			}

			for _, variable := range mapz.SortedSlice(loaded[0].TupleSet.Variables()) {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), variable); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
