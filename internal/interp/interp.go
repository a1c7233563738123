package interp

import (
	"io"
	"time"

	"github.com/cwbudde/golox/internal/ast"
	"github.com/cwbudde/golox/internal/diag"
	"github.com/cwbudde/golox/internal/token"
)

// resolved is implemented by every AST node the resolver can annotate with
// a lexical depth: VariableExpr, AssignExpr, ThisExpr, SuperExpr. Depth is
// stored directly on the node rather than in a side map — the node
// pointer already is the expression identity the spec's depth map keys on,
// so a second map would just duplicate that identity.
type resolved interface {
	Depth() (int, bool)
}

// Interpreter walks a resolved AST. Out is the single sink for `print`;
// tests construct an Interpreter over a bytes.Buffer, the CLI over stdout.
type Interpreter struct {
	globals     *Environment
	environment *Environment
	out         io.Writer
	callStack   diag.CallStack
}

// New creates an Interpreter with a fresh global environment seeded with
// the native `clock` function, writing `print` output to out.
func New(out io.Writer) *Interpreter {
	globals := NewEnvironment(nil)
	it := &Interpreter{globals: globals, environment: globals, out: out}
	it.defineNatives()
	return it
}

func (it *Interpreter) defineNatives() {
	it.globals.Define("clock", &NativeFunction{
		Name:  "clock",
		arity: 0,
		handler: func(_ *Interpreter, _ []Value) (Value, error) {
			return float64(time.Now().UnixMilli()), nil
		},
	})
}

// Interpret runs every statement in program in order, stopping at the first
// runtime error.
func (it *Interpreter) Interpret(program *ast.Program) error {
	for _, stmt := range program.Statements {
		if err := it.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

// lookUpVariable resolves name either through the depth recorded on expr by
// the resolver, or by falling back to a global lookup when expr carries no
// depth (meaning the resolver never found an enclosing scope for it).
func (it *Interpreter) lookUpVariable(name token.Token, expr resolved) (Value, error) {
	if distance, ok := expr.Depth(); ok {
		return it.environment.GetAt(distance, name.Lexeme), nil
	}
	if v, ok := it.globals.Get(name.Lexeme); ok {
		return v, nil
	}
	return nil, it.newRuntimeError(name, "Undefined variable '"+name.Lexeme+"'.")
}

// pushFrame records a call in progress, for the stack snapshot attached to
// any RuntimeError raised while it's active.
func (it *Interpreter) pushFrame(functionName string, pos token.Position) {
	it.callStack = append(it.callStack, diag.StackFrame{FunctionName: functionName, Pos: pos})
}

func (it *Interpreter) popFrame() {
	it.callStack = it.callStack[:len(it.callStack)-1]
}
