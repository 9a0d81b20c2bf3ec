package main

import (
	"os"

	"github.com/authzed/tupleset/pkg/cmd"
)

func main() {
	rootCmd := cmd.BuildRootCommand("tupleset")
	if err := rootCmd.Execute(); err != nil {
		cmd.ReportError(os.Stderr, err)
		os.Exit(1)
	}
}
