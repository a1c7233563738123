// Package cmd implements the golox command-line driver: a Cobra root
// command that reproduces the reference interpreter's REPL/file-mode/exit
// code behavior, plus debug subcommands for inspecting the lexer and
// parser in isolation.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information, set by build flags.
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var debugFlag bool

var rootCmd = &cobra.Command{
	Use:   "golox [script]",
	Short: "A tree-walking interpreter for Lox",
	Long: `golox is a tree-walking interpreter for Lox, a small dynamically-typed,
object-oriented scripting language with first-class closures and single
inheritance.

With no arguments, golox starts a REPL. With one argument, it runs that
file and exits.`,
	Version:       Version,
	Args:          usageArgs,
	RunE:          runRoot,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// usageArgs reproduces spec.md §6's exact usage line ("Usage: golox
// [script]") for more than one positional argument, overriding Cobra's
// default "accepts at most 1 arg(s)" message.
func usageArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 1 {
		return &UsageError{}
	}
	return nil
}

// UsageError signals the too-many-arguments case; main.go maps it to the
// "Usage: golox [script]" message and exit code 64 (EX_USAGE) without also
// printing Cobra's usual usage/help block.
type UsageError struct{}

func (e *UsageError) Error() string { return "Usage: golox [script]" }

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "print the parsed AST to stderr after each run (same effect as a non-empty DEBUG env var)")
	rootCmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error { return err })
}

// Execute runs the root command. Its error, if any, is a *UsageError (exit
// 64, conventional EX_USAGE), an *ExitError (exit 65 or 70), or any other
// error such as a failed file read (exit 1); main.go inspects the concrete
// type to choose the process exit code.
func Execute() error {
	return rootCmd.Execute()
}

func debugEnabled() bool {
	if debugFlag {
		return true
	}
	return os.Getenv("DEBUG") != ""
}
