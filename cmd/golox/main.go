// Command golox runs the Lox tree-walking interpreter: a REPL with no
// arguments, or a single script file.
package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/golox/cmd/golox/cmd"
)

func main() {
	err := cmd.Execute()
	if err == nil {
		os.Exit(0)
	}

	switch e := err.(type) {
	case *cmd.ExitError:
		os.Exit(e.Code)
	case *cmd.UsageError:
		fmt.Fprintln(os.Stderr, e.Error())
		os.Exit(64)
	default:
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
