// Package diag formats lexer, parser, resolver, and runtime errors into the
// diagnostic line the driver prints to stderr, and tracks the call stack
// shown alongside an uncaught runtime error.
package diag

import (
	"fmt"
	"strings"

	"github.com/cwbudde/golox/internal/token"
)

// SourceError is a single diagnostic tied to a source position. Where holds
// the pre-rendered "<where>" fragment (" at end" or " at 'LEXEME'") rather
// than the raw token, since lexer errors have no associated lexeme to quote.
type SourceError struct {
	Message string
	Where   string
	Pos     token.Position
}

// Error implements the error interface, formatting as
// "[line L] Error <where>: <message>".
func (e *SourceError) Error() string {
	return fmt.Sprintf("[line %d] Error%s: %s", e.Pos.Line, e.Where, e.Message)
}

// AtToken builds a SourceError whose Where fragment is derived from tok, per
// the reference format: end-of-file tokens render as " at end", every other
// token as " at 'LEXEME'".
func AtToken(tok token.Token, message string) *SourceError {
	where := " at '" + tok.Lexeme + "'"
	if tok.Type == token.EOF {
		where = " at end"
	}
	return &SourceError{Message: message, Where: where, Pos: tok.Pos}
}

// AtPosition builds a SourceError with no lexeme context, for lexical errors
// that occur before any token could be formed.
func AtPosition(pos token.Position, message string) *SourceError {
	return &SourceError{Message: message, Pos: pos}
}

// FormatAll renders each error on its own line, in order.
func FormatAll(errs []*SourceError) string {
	lines := make([]string, len(errs))
	for i, e := range errs {
		lines[i] = e.Error()
	}
	return strings.Join(lines, "\n")
}

// StackFrame is one call in progress when a runtime error was raised.
type StackFrame struct {
	FunctionName string
	Pos          token.Position
}

func (f StackFrame) String() string {
	return fmt.Sprintf("[line %d] in %s", f.Pos.Line, f.FunctionName)
}

// CallStack is the active call chain, outermost call first.
type CallStack []StackFrame

// String renders the stack from the innermost (most recent) call to the
// outermost, matching how a traceback is conventionally read.
func (s CallStack) String() string {
	if len(s) == 0 {
		return ""
	}
	var sb strings.Builder
	for i := len(s) - 1; i >= 0; i-- {
		sb.WriteString(s[i].String())
		if i > 0 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
