package cmd

import (
	"github.com/jzelinskie/cobrautil/v2/cobrazerolog"
	"github.com/spf13/cobra"
)

// RegisterRootFlags registers the flags shared by every command.
func RegisterRootFlags(cmd *cobra.Command) {
	cobrazerolog.New().RegisterFlags(cmd.PersistentFlags())
}

// NewRootCommand creates the root command, without any subcommands.
func NewRootCommand(programName string) *cobra.Command {
	return &cobra.Command{
		Use:           programName,
		Short:         "Flatten nested tuple sets",
		Long:          "Build trees of multi-valued variable bindings from YAML files and flatten them into tuples",
		Example:       FlattenExample(programName),
		SilenceErrors: true,
		SilenceUsage:  true,
	}
}

// BuildRootCommand creates the root command with all of its subcommands and
// their flags registered.
func BuildRootCommand(programName string) *cobra.Command {
	rootCmd := NewRootCommand(programName)
	RegisterRootFlags(rootCmd)

	flattenConfig := NewConfigWithOptions()
	flattenCmd := NewFlattenCommand(programName, flattenConfig)
	RegisterFlattenFlags(flattenCmd.Flags(), flattenConfig)
	rootCmd.AddCommand(flattenCmd)

	rootCmd.AddCommand(NewExplainCommand(programName))
	rootCmd.AddCommand(NewVariablesCommand(programName))
	rootCmd.AddCommand(NewValidateCommand(programName))

	versionCmd := NewVersionCommand(programName)
	RegisterVersionFlags(versionCmd)
	rootCmd.AddCommand(versionCmd)

	return rootCmd
}
