package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/over-lang/over/internal/lexer"
	"github.com/over-lang/over/internal/token"
)

var lexExpr string
var lexShowPos bool

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Print the token stream for an OVER document",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runLex,
}

func init() {
	lexCmd.Flags().StringVarP(&lexExpr, "eval", "e", "", "lex the given source text instead of a file")
	lexCmd.Flags().BoolVar(&lexShowPos, "show-pos", false, "print each token's source position")
	rootCmd.AddCommand(lexCmd)
}

func runLex(c *cobra.Command, args []string) error {
	var source string
	switch {
	case lexExpr != "":
		source = lexExpr
	case len(args) == 1:
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		source = string(data)
	default:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return err
		}
		source = string(data)
	}

	l := lexer.New(source)
	for {
		tok := l.NextToken()
		printToken(tok)
		if tok.Type == token.EOF {
			break
		}
	}
	for _, e := range l.Errors() {
		fmt.Fprintln(os.Stderr, e.Error())
	}
	return nil
}

func printToken(tok token.Token) {
	if lexShowPos {
		fmt.Printf("%-10s %-20q %s\n", tok.Type, tok.Literal, tok.Pos)
		return
	}
	fmt.Printf("%-10s %q\n", tok.Type, tok.Literal)
}
