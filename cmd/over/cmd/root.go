// Package cmd implements the over command-line tool: parse, lex, and
// format OVER documents from the shell (spec §6.2).
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:     "over",
	Short:   "Read, validate, and format OVER documents",
	Long:    "over is a command-line tool for working with the OVER data-interchange format: parsing, lexing, and canonical formatting.",
	Version: Version,
}

// Execute runs the root command, exiting the process on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.SetVersionTemplate("over version {{.Version}}\n")
}

func exitWithError(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
