package interp

import (
	"fmt"

	"github.com/cwbudde/golox/internal/ast"
)

// execute runs a single statement. A non-nil error is either a
// *RuntimeError (abort the run) or a *returnSignal (unwind to the nearest
// enclosing function call) — callers that aren't a function call boundary
// must pass both straight through unexamined.
func (it *Interpreter) execute(stmt ast.Statement) error {
	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		_, err := it.evaluate(s.Expr)
		return err

	case *ast.PrintStmt:
		v, err := it.evaluate(s.Expr)
		if err != nil {
			return err
		}
		fmt.Fprintln(it.out, stringify(v))
		return nil

	case *ast.VarStmt:
		var value Value
		if s.Initializer != nil {
			v, err := it.evaluate(s.Initializer)
			if err != nil {
				return err
			}
			value = v
		}
		it.environment.Define(s.Name.Lexeme, value)
		return nil

	case *ast.BlockStmt:
		return it.executeBlock(s.Statements, NewEnvironment(it.environment))

	case *ast.IfStmt:
		cond, err := it.evaluate(s.Condition)
		if err != nil {
			return err
		}
		if isTruthy(cond) {
			return it.execute(s.Then)
		}
		if s.Else != nil {
			return it.execute(s.Else)
		}
		return nil

	case *ast.WhileStmt:
		for {
			cond, err := it.evaluate(s.Condition)
			if err != nil {
				return err
			}
			if !isTruthy(cond) {
				return nil
			}
			if err := it.execute(s.Body); err != nil {
				return err
			}
		}

	case *ast.FunctionStmt:
		fn := &Function{Declaration: s, Closure: it.environment}
		it.environment.Define(s.Name.Lexeme, fn)
		return nil

	case *ast.ReturnStmt:
		var value Value
		if s.Value != nil {
			v, err := it.evaluate(s.Value)
			if err != nil {
				return err
			}
			value = v
		}
		return &returnSignal{value: value}

	case *ast.ClassStmt:
		return it.executeClass(s)
	}
	return nil
}

// executeBlock runs stmts in env, restoring the interpreter's previous
// environment on every exit path (normal completion, runtime error, or
// return propagation) so a function call nested inside a block can never
// leave the interpreter pointed at a stale frame.
func (it *Interpreter) executeBlock(stmts []ast.Statement, env *Environment) error {
	previous := it.environment
	it.environment = env
	defer func() { it.environment = previous }()

	for _, stmt := range stmts {
		if err := it.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (it *Interpreter) executeClass(s *ast.ClassStmt) error {
	var superclass *Class
	if s.Superclass != nil {
		v, err := it.lookUpVariable(s.Superclass.Name, s.Superclass)
		if err != nil {
			return err
		}
		sc, ok := v.(*Class)
		if !ok {
			return it.newRuntimeError(s.Superclass.Name, "Superclass must be a class.")
		}
		superclass = sc
	}

	it.environment.Define(s.Name.Lexeme, nil)

	methodEnv := it.environment
	if superclass != nil {
		methodEnv = NewEnvironment(it.environment)
		methodEnv.Define("super", superclass)
	}

	methods := make(map[string]*Function, len(s.Methods))
	for _, m := range s.Methods {
		methods[m.Name.Lexeme] = &Function{
			Declaration:   m,
			Closure:       methodEnv,
			isInitializer: m.Name.Lexeme == "init",
		}
	}

	class := &Class{Name: s.Name.Lexeme, Superclass: superclass, Methods: methods}
	it.environment.Assign(s.Name.Lexeme, class)
	return nil
}
