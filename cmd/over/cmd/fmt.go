package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/over-lang/over/internal/parser"
	"github.com/over-lang/over/internal/writer"
)

var fmtWrite bool

var fmtCmd = &cobra.Command{
	Use:   "fmt [file]",
	Short: "Rewrite an OVER document in canonical form",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runFmt,
}

func init() {
	fmtCmd.Flags().BoolVarP(&fmtWrite, "write", "w", false, "write the result back to the file instead of stdout")
	rootCmd.AddCommand(fmtCmd)
}

func runFmt(c *cobra.Command, args []string) error {
	var source string
	var path string

	if len(args) == 1 {
		path = args[0]
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		source = string(data)
	} else {
		if fmtWrite {
			return fmt.Errorf("over fmt: -w requires a file argument")
		}
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return err
		}
		source = string(data)
	}

	value, err := parser.Parse(source)
	if err != nil {
		exitWithError(err)
		return nil
	}

	if fmtWrite {
		return writer.WriteFile(path, value)
	}

	text, err := writer.WriteText(value)
	if err != nil {
		return err
	}
	fmt.Print(text)
	return nil
}
