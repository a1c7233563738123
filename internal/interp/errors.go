package interp

import (
	"github.com/cwbudde/golox/internal/diag"
	"github.com/cwbudde/golox/internal/token"
)

// RuntimeError is a type mismatch, arity mismatch, undefined name, or
// invalid call/property target discovered during evaluation. It aborts the
// run in progress; the driver maps it to exit code 70. Stack is a snapshot
// of the Lox call chain active when the error was raised, innermost call
// last — an enrichment over the plain line+lexeme spec.md requires, useful
// for the CLI's optional trace output.
type RuntimeError struct {
	Message string
	Token   token.Token
	Stack   diag.CallStack
}

func (e *RuntimeError) Error() string { return e.Message }

// newRuntimeError builds a RuntimeError, capturing the interpreter's
// current call stack at the point of the error.
func (it *Interpreter) newRuntimeError(tok token.Token, message string) *RuntimeError {
	stack := make(diag.CallStack, len(it.callStack))
	copy(stack, it.callStack)
	return &RuntimeError{Message: message, Token: tok, Stack: stack}
}

// returnSignal carries a `return` statement's value up through the Go call
// stack via the error interface, without being a real error. Only
// Function.Call catches it; every other statement execution path passes it
// straight through, which executeBlock/execute rely on.
type returnSignal struct {
	value Value
}

func (r *returnSignal) Error() string { return "return (not a real error)" }
