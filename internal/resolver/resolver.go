// Package resolver performs a static analysis pass between parsing and
// interpretation: for every variable reference and assignment, it computes
// the number of scopes between the reference and the scope that declares
// it, so the interpreter can jump straight to the right Environment frame
// instead of walking parent links at every lookup. It also rejects a
// handful of situations that are only detectable with full knowledge of
// lexical structure: top-level return, self-referential initializers,
// `this`/`super` outside a class, and a class inheriting from itself.
package resolver

import (
	"fmt"

	"github.com/cwbudde/golox/internal/ast"
	"github.com/cwbudde/golox/internal/token"
)

// Error is a resolution error, reported at the token that triggered it.
type Error struct {
	Message string
	Pos     token.Position
	Token   token.Token
}

func (e *Error) Error() string { return e.Message }

type functionType int

const (
	functionNone functionType = iota
	functionFunction
	functionInitializer
	functionMethod
)

type classType int

const (
	classNone classType = iota
	classClass
	classSubclass
)

// scope maps a name declared in the current block to whether its
// initializer has finished running yet. A name present but false is
// "declared but not yet defined" — referencing it in its own initializer
// is a static error (`var a = a;`).
type scope map[string]bool

// Resolver walks the tree once, maintaining a stack of lexical scopes.
type Resolver struct {
	scopes          []scope
	currentFunction functionType
	currentClass    classType
	errors          []Error
}

// New creates a Resolver ready to walk a program.
func New() *Resolver {
	return &Resolver{}
}

// Resolve walks program, annotating every VariableExpr, AssignExpr,
// ThisExpr, and SuperExpr it can resolve with a lexical depth, and returns
// any static errors found along the way.
func Resolve(program *ast.Program) []Error {
	r := New()
	r.resolveStatements(program.Statements)
	return r.errors
}

func (r *Resolver) error(tok token.Token, format string, args ...any) {
	r.errors = append(r.errors, Error{Message: fmt.Sprintf(format, args...), Pos: tok.Pos, Token: tok})
}

func (r *Resolver) beginScope() { r.scopes = append(r.scopes, scope{}) }
func (r *Resolver) endScope()   { r.scopes = r.scopes[:len(r.scopes)-1] }

func (r *Resolver) declare(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	s := r.scopes[len(r.scopes)-1]
	if _, ok := s[name.Lexeme]; ok {
		r.error(name, "Already a variable with this name in this scope.")
	}
	s[name.Lexeme] = false
}

func (r *Resolver) define(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme] = true
}

// resolveLocal searches the scope stack from innermost outward, recording
// the distance through setDepth if name is found. An unresolved name is left
// untouched and treated as global by the interpreter.
func (r *Resolver) resolveLocal(name token.Token, setDepth func(int)) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.Lexeme]; ok {
			setDepth(len(r.scopes) - 1 - i)
			return
		}
	}
}

func (r *Resolver) resolveStatements(stmts []ast.Statement) {
	for _, s := range stmts {
		r.resolveStatement(s)
	}
}

func (r *Resolver) resolveStatement(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.BlockStmt:
		r.beginScope()
		r.resolveStatements(s.Statements)
		r.endScope()

	case *ast.VarStmt:
		r.declare(s.Name)
		if s.Initializer != nil {
			r.resolveExpression(s.Initializer)
		}
		r.define(s.Name)

	case *ast.FunctionStmt:
		r.declare(s.Name)
		r.define(s.Name)
		r.resolveFunction(s, functionFunction)

	case *ast.ClassStmt:
		r.resolveClass(s)

	case *ast.ExpressionStmt:
		r.resolveExpression(s.Expr)

	case *ast.IfStmt:
		r.resolveExpression(s.Condition)
		r.resolveStatement(s.Then)
		if s.Else != nil {
			r.resolveStatement(s.Else)
		}

	case *ast.PrintStmt:
		r.resolveExpression(s.Expr)

	case *ast.ReturnStmt:
		if r.currentFunction == functionNone {
			r.error(s.Token, "Can't return from top-level code.")
		}
		if s.Value != nil {
			if r.currentFunction == functionInitializer {
				r.error(s.Token, "Can't return a value from an initializer.")
			}
			r.resolveExpression(s.Value)
		}

	case *ast.WhileStmt:
		r.resolveExpression(s.Condition)
		r.resolveStatement(s.Body)
	}
}

func (r *Resolver) resolveClass(s *ast.ClassStmt) {
	enclosingClass := r.currentClass
	r.currentClass = classClass

	r.declare(s.Name)
	r.define(s.Name)

	if s.Superclass != nil {
		if s.Superclass.Name.Lexeme == s.Name.Lexeme {
			r.error(s.Superclass.Name, "A class can't inherit from itself.")
		} else {
			r.currentClass = classSubclass
			r.resolveExpression(s.Superclass)
		}
	}

	if s.Superclass != nil {
		r.beginScope()
		r.scopes[len(r.scopes)-1]["super"] = true
	}

	r.beginScope()
	r.scopes[len(r.scopes)-1]["this"] = true

	for _, method := range s.Methods {
		decl := functionMethod
		if method.Name.Lexeme == "init" {
			decl = functionInitializer
		}
		r.resolveFunction(method, decl)
	}

	r.endScope()

	if s.Superclass != nil {
		r.endScope()
	}

	r.currentClass = enclosingClass
}

func (r *Resolver) resolveFunction(fn *ast.FunctionStmt, typ functionType) {
	enclosingFunction := r.currentFunction
	r.currentFunction = typ

	r.beginScope()
	for _, param := range fn.Params {
		r.declare(param)
		r.define(param)
	}
	r.resolveStatements(fn.Body)
	r.endScope()

	r.currentFunction = enclosingFunction
}

func (r *Resolver) resolveExpression(expr ast.Expression) {
	switch e := expr.(type) {
	case *ast.VariableExpr:
		if len(r.scopes) > 0 {
			if defined, ok := r.scopes[len(r.scopes)-1][e.Name.Lexeme]; ok && !defined {
				r.error(e.Name, "Can't read local variable in its own initializer.")
			}
		}
		r.resolveLocal(e.Name, e.SetDepth)

	case *ast.AssignExpr:
		r.resolveExpression(e.Value)
		r.resolveLocal(e.Name, e.SetDepth)

	case *ast.BinaryExpr:
		r.resolveExpression(e.Left)
		r.resolveExpression(e.Right)

	case *ast.CallExpr:
		r.resolveExpression(e.Callee)
		for _, a := range e.Arguments {
			r.resolveExpression(a)
		}

	case *ast.GetExpr:
		r.resolveExpression(e.Object)

	case *ast.SetExpr:
		r.resolveExpression(e.Value)
		r.resolveExpression(e.Object)

	case *ast.GroupingExpr:
		r.resolveExpression(e.Expression)

	case *ast.LiteralExpr:
		// No sub-expressions and no name to resolve.

	case *ast.LogicalExpr:
		r.resolveExpression(e.Left)
		r.resolveExpression(e.Right)

	case *ast.SuperExpr:
		switch r.currentClass {
		case classNone:
			r.error(e.Keyword, "Can't use 'super' outside of a class.")
		case classClass:
			r.error(e.Keyword, "Can't use 'super' in a class with no superclass.")
		}
		r.resolveLocal(e.Keyword, e.SetDepth)

	case *ast.ThisExpr:
		if r.currentClass == classNone {
			r.error(e.Keyword, "Can't use 'this' outside of a class.")
			return
		}
		r.resolveLocal(e.Keyword, e.SetDepth)

	case *ast.UnaryExpr:
		r.resolveExpression(e.Right)
	}
}
