package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/golox/internal/diag"
	"github.com/cwbudde/golox/internal/lexer"
	"github.com/cwbudde/golox/internal/parser"
	"github.com/spf13/cobra"
)

var parseExprFlag string

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a Lox file or expression and print the resulting AST",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringVarP(&parseExprFlag, "eval", "e", "", "parse inline source instead of reading a file")
}

func runParse(_ *cobra.Command, args []string) error {
	input, err := readSource(parseExprFlag, args)
	if err != nil {
		return err
	}

	l := lexer.New(input)
	program, errs := parser.Parse(l)

	if len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintln(os.Stderr, diag.AtToken(e.Token, e.Message).Error())
		}
		return &ExitError{Code: exitStatic}
	}

	fmt.Println(program.String())
	return nil
}
