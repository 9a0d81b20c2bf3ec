package cmd

import (
	"fmt"

	"github.com/jzelinskie/cobrautil/v2"
	"github.com/spf13/cobra"
)

// RegisterVersionFlags registers the flags of the version command.
func RegisterVersionFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("include-deps", false, "include versions of dependencies")
}

// NewVersionCommand creates the command displaying the version.
func NewVersionCommand(programName string) *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   "displays the version of " + programName,
		Args:    cobra.NoArgs,
		PreRunE: DefaultPreRunE(programName),
		RunE: func(cmd *cobra.Command, _ []string) error {
			includeDeps := cobrautil.MustGetBool(cmd, "include-deps")
			_, err := fmt.Fprintln(cmd.OutOrStdout(), cobrautil.UsageVersion(programName, includeDeps))
			return err
		},
	}
}
