package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/cwbudde/golox/internal/lexer"
	"github.com/cwbudde/golox/internal/token"
	"github.com/spf13/cobra"
)

var lexExpr string

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a Lox file or expression and print the token stream",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)
	lexCmd.Flags().StringVarP(&lexExpr, "eval", "e", "", "tokenize inline source instead of reading a file")
}

func runLex(_ *cobra.Command, args []string) error {
	input, err := readSource(lexExpr, args)
	if err != nil {
		return err
	}

	l := lexer.New(input)
	for {
		tok := l.NextToken()
		fmt.Printf("%-14s %-20q %s\n", tok.Type, tok.Lexeme, tok.Pos)
		if tok.Type == token.EOF {
			break
		}
	}
	for _, e := range l.Errors() {
		fmt.Fprintf(os.Stderr, "%s: %s\n", e.Pos, e.Message)
	}
	return nil
}

func readSource(expr string, args []string) (string, error) {
	if expr != "" {
		return expr, nil
	}
	if len(args) == 1 {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		return string(content), nil
	}
	content, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(content), nil
}
