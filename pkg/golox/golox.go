// Package golox is the facade used by both the CLI (cmd/golox) and the
// WASM entrypoint (cmd/golox-wasm): run source text end to end through the
// scanner, parser, resolver, and interpreter against a single injected
// output writer, mirroring the teacher's own pkg/dwscript facade.
package golox

import (
	"io"
	"strings"

	"github.com/cwbudde/golox/internal/ast"
	"github.com/cwbudde/golox/internal/diag"
	"github.com/cwbudde/golox/internal/interp"
	"github.com/cwbudde/golox/internal/lexer"
	"github.com/cwbudde/golox/internal/parser"
	"github.com/cwbudde/golox/internal/resolver"
)

// Status reports which, if any, error category a Run encountered, so the
// CLI can map it to spec.md §6's exit codes (0 / 65 / 70) without the
// facade depending on os.Exit itself.
type Status int

const (
	// StatusOK means the program ran to completion with no errors.
	StatusOK Status = iota
	// StatusStaticError means a lexical, syntax, or resolution error was
	// found; the program was never evaluated.
	StatusStaticError
	// StatusRuntimeError means evaluation started and aborted partway
	// through on a runtime error.
	StatusRuntimeError
)

// Result is everything a caller needs after a Run: the outcome, the
// diagnostics to print (already formatted), and — for debug tooling — the
// parsed program, present even when resolution/evaluation was skipped due
// to a static error, as long as parsing itself produced a tree.
type Result struct {
	Status      Status
	Diagnostics []string
	Program     *ast.Program
}

// Session is a persistent interpreter instance: one Environment chain that
// survives across multiple Run calls, which is what the REPL needs so a
// variable declared on one line is visible on the next.
type Session struct {
	interp *interp.Interpreter
}

// NewSession creates a Session whose `print` output goes to out.
func NewSession(out io.Writer) *Session {
	return &Session{interp: interp.New(out)}
}

// Run scans, parses, resolves, and evaluates source against the session's
// persistent environment. A static error (lexical or syntax) short-circuits
// before resolution; a resolution error short-circuits before evaluation.
func (s *Session) Run(source string) Result {
	program, diags, ok := parseProgram(source)
	if !ok {
		return Result{Status: StatusStaticError, Diagnostics: diags, Program: program}
	}

	if resErrs := resolveProgram(program); len(resErrs) > 0 {
		msgs := make([]string, len(resErrs))
		for i, e := range resErrs {
			msgs[i] = diag.AtToken(e.Token, e.Message).Error()
		}
		return Result{Status: StatusStaticError, Diagnostics: msgs, Program: program}
	}

	if err := s.interp.Interpret(program); err != nil {
		if rerr, ok := err.(*interp.RuntimeError); ok {
			diags := []string{diag.AtToken(rerr.Token, rerr.Message).Error()}
			if trace := rerr.Stack.String(); trace != "" {
				diags = append(diags, trace)
			}
			return Result{Status: StatusRuntimeError, Diagnostics: diags, Program: program}
		}
		return Result{Status: StatusRuntimeError, Diagnostics: []string{err.Error()}, Program: program}
	}

	return Result{Status: StatusOK, Program: program}
}

// Run is a convenience one-shot entry point for callers (tests, the
// WASM export) that don't need a persistent session across calls.
func Run(source string, out io.Writer) Result {
	return NewSession(out).Run(source)
}

// RunString is the simplest possible entry point: run source against a
// fresh session and return everything it printed, joined as one string,
// followed by one line per diagnostic when the run did not succeed.
// Intended for the WASM export, where the caller only wants text back.
func RunString(source string) string {
	var sb strings.Builder
	res := Run(source, &sb)
	if res.Status != StatusOK {
		for _, d := range res.Diagnostics {
			sb.WriteString(d)
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func parseProgram(source string) (*ast.Program, []string, bool) {
	lex := lexer.New(source)
	program, parseErrs := parser.Parse(lex)

	var diags []string
	for _, e := range lex.Errors() {
		diags = append(diags, diag.AtPosition(e.Pos, e.Message).Error())
	}
	for _, e := range parseErrs {
		diags = append(diags, diag.AtToken(e.Token, e.Message).Error())
	}
	return program, diags, len(diags) == 0
}

func resolveProgram(program *ast.Program) []resolver.Error {
	return resolver.Resolve(program)
}
