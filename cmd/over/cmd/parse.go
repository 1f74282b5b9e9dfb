package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/over-lang/over/internal/over"
	"github.com/over-lang/over/internal/overerr"
	"github.com/over-lang/over/internal/parser"
)

var parseExpr string
var parseDump bool

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse an OVER document and report errors",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().StringVarP(&parseExpr, "eval", "e", "", "parse the given source text instead of a file")
	parseCmd.Flags().BoolVar(&parseDump, "dump", false, "print the parsed value tree")
	rootCmd.AddCommand(parseCmd)
}

func runParse(c *cobra.Command, args []string) error {
	var value over.Value
	var err error

	switch {
	case parseExpr != "":
		value, err = parser.Parse(parseExpr)
	case len(args) == 1:
		value, err = parser.ParseFile(args[0], nil)
	default:
		data, readErr := io.ReadAll(os.Stdin)
		if readErr != nil {
			return readErr
		}
		value, err = parser.Parse(string(data))
	}

	if err != nil {
		if oe, ok := err.(*overerr.Error); ok {
			exitWithError(fmt.Errorf("%s", oe.Error()))
		}
		exitWithError(err)
		return nil
	}

	if parseDump {
		dumpValue(value, 0)
	} else {
		fmt.Println("ok")
	}
	return nil
}

func dumpValue(v over.Value, depth int) {
	indent := ""
	for i := 0; i < depth; i++ {
		indent += "  "
	}
	switch v.Kind() {
	case over.KindObj:
		fmt.Printf("%sObj\n", indent)
		for _, k := range v.ObjVal().Keys() {
			fv, _ := v.ObjVal().OwnField(k)
			fmt.Printf("%s  %s:\n", indent, k)
			dumpValue(fv, depth+2)
		}
	case over.KindArr, over.KindTup:
		fmt.Printf("%s%s\n", indent, v.Kind())
		for _, e := range v.Elems() {
			dumpValue(e, depth+1)
		}
	default:
		fmt.Printf("%s%s\n", indent, v.Kind())
	}
}
