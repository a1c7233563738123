package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/cwbudde/golox/pkg/golox"
	"github.com/spf13/cobra"
)

func runRoot(_ *cobra.Command, args []string) error {
	if len(args) == 1 {
		return runFile(args[0])
	}
	return runPrompt()
}

func runFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", path, err)
	}

	session := golox.NewSession(os.Stdout)
	result := session.Run(string(content))
	reportDebug(result)
	reportDiagnostics(result)

	switch result.Status {
	case golox.StatusStaticError:
		return &ExitError{Code: exitStatic}
	case golox.StatusRuntimeError:
		return &ExitError{Code: exitRuntime}
	}
	return nil
}

// runPrompt implements the REPL loop described in spec.md §6: read one
// line, evaluate it, loop; an empty line or "exit" ends the session. Only
// the static-error flag is reset between lines — there is no persistent
// runtime-error flag in the REPL, matching the original implementation's
// run_prompt (see SPEC_FULL.md §4).
func runPrompt() error {
	session := golox.NewSession(os.Stdout)
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return nil
		}
		line := scanner.Text()
		if line == "" || line == "exit" {
			return nil
		}

		result := session.Run(line)
		reportDebug(result)
		reportDiagnostics(result)
	}
}

func reportDebug(result golox.Result) {
	if !debugEnabled() || result.Program == nil {
		return
	}
	fmt.Fprintln(os.Stderr, result.Program.String())
}

func reportDiagnostics(result golox.Result) {
	for _, d := range result.Diagnostics {
		fmt.Fprintln(os.Stderr, d)
	}
}
