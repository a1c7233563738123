package ast

import (
	"bytes"
	"strings"

	"github.com/cwbudde/golox/internal/token"
)

// ExpressionStmt evaluates Expr for its side effects and discards the value.
type ExpressionStmt struct {
	Token token.Token
	Expr  Expression
}

func (e *ExpressionStmt) statementNode()     {}
func (e *ExpressionStmt) TokenLiteral() string { return e.Token.Lexeme }
func (e *ExpressionStmt) Pos() token.Position  { return e.Token.Pos }
func (e *ExpressionStmt) String() string       { return e.Expr.String() + ";" }

// PrintStmt evaluates Expr and writes its textual representation followed by
// a newline to the interpreter's output writer.
type PrintStmt struct {
	Token token.Token
	Expr  Expression
}

func (p *PrintStmt) statementNode()     {}
func (p *PrintStmt) TokenLiteral() string { return p.Token.Lexeme }
func (p *PrintStmt) Pos() token.Position  { return p.Token.Pos }
func (p *PrintStmt) String() string       { return "print " + p.Expr.String() + ";" }

// VarStmt declares Name in the enclosing scope, bound to Initializer's value
// or to nil when Initializer is absent.
type VarStmt struct {
	Token       token.Token
	Name        token.Token
	Initializer Expression
}

func (v *VarStmt) statementNode()     {}
func (v *VarStmt) TokenLiteral() string { return v.Token.Lexeme }
func (v *VarStmt) Pos() token.Position  { return v.Token.Pos }
func (v *VarStmt) String() string {
	if v.Initializer == nil {
		return "var " + v.Name.Lexeme + ";"
	}
	return "var " + v.Name.Lexeme + " = " + v.Initializer.String() + ";"
}

// BlockStmt introduces a new lexical scope around Statements.
type BlockStmt struct {
	Token      token.Token
	Statements []Statement
}

func (b *BlockStmt) statementNode()     {}
func (b *BlockStmt) TokenLiteral() string { return b.Token.Lexeme }
func (b *BlockStmt) Pos() token.Position  { return b.Token.Pos }
func (b *BlockStmt) String() string {
	var out bytes.Buffer
	out.WriteString("{ ")
	for _, s := range b.Statements {
		out.WriteString(s.String())
		out.WriteString(" ")
	}
	out.WriteString("}")
	return out.String()
}

// IfStmt evaluates Condition and runs Then if truthy, else Else when present.
type IfStmt struct {
	Token     token.Token
	Condition Expression
	Then      Statement
	Else      Statement
}

func (i *IfStmt) statementNode()     {}
func (i *IfStmt) TokenLiteral() string { return i.Token.Lexeme }
func (i *IfStmt) Pos() token.Position  { return i.Token.Pos }
func (i *IfStmt) String() string {
	var out bytes.Buffer
	out.WriteString("if (" + i.Condition.String() + ") " + i.Then.String())
	if i.Else != nil {
		out.WriteString(" else " + i.Else.String())
	}
	return out.String()
}

// WhileStmt runs Body repeatedly while Condition evaluates truthy. `for`
// loops are desugared into a WhileStmt by the parser (the increment is
// appended to the body in a BlockStmt, and an initializer wraps the loop in
// an outer BlockStmt), so the interpreter has a single looping construct to
// evaluate.
type WhileStmt struct {
	Token     token.Token
	Condition Expression
	Body      Statement
}

func (w *WhileStmt) statementNode()     {}
func (w *WhileStmt) TokenLiteral() string { return w.Token.Lexeme }
func (w *WhileStmt) Pos() token.Position  { return w.Token.Pos }
func (w *WhileStmt) String() string {
	return "while (" + w.Condition.String() + ") " + w.Body.String()
}

// FunctionStmt declares Name as a function (or, when used as a method body
// inside ClassStmt.Methods, carries no surrounding `fun` keyword).
type FunctionStmt struct {
	Token  token.Token
	Name   token.Token
	Params []token.Token
	Body   []Statement
}

func (f *FunctionStmt) statementNode()     {}
func (f *FunctionStmt) TokenLiteral() string { return f.Token.Lexeme }
func (f *FunctionStmt) Pos() token.Position  { return f.Token.Pos }
func (f *FunctionStmt) String() string {
	params := make([]string, len(f.Params))
	for i, p := range f.Params {
		params[i] = p.Lexeme
	}
	return "fun " + f.Name.Lexeme + "(" + strings.Join(params, ", ") + ") { ... }"
}

// ReturnStmt exits the enclosing function, yielding Value (nil when absent).
type ReturnStmt struct {
	Token token.Token
	Value Expression
}

func (r *ReturnStmt) statementNode()     {}
func (r *ReturnStmt) TokenLiteral() string { return r.Token.Lexeme }
func (r *ReturnStmt) Pos() token.Position  { return r.Token.Pos }
func (r *ReturnStmt) String() string {
	if r.Value == nil {
		return "return;"
	}
	return "return " + r.Value.String() + ";"
}

// ClassStmt declares a class. Superclass is nil for a class with no `<
// Parent` clause; when present it is always a *VariableExpr naming the
// parent class.
type ClassStmt struct {
	Token      token.Token
	Name       token.Token
	Superclass *VariableExpr
	Methods    []*FunctionStmt
}

func (c *ClassStmt) statementNode()     {}
func (c *ClassStmt) TokenLiteral() string { return c.Token.Lexeme }
func (c *ClassStmt) Pos() token.Position  { return c.Token.Pos }
func (c *ClassStmt) String() string {
	var out bytes.Buffer
	out.WriteString("class " + c.Name.Lexeme)
	if c.Superclass != nil {
		out.WriteString(" < " + c.Superclass.String())
	}
	out.WriteString(" { ")
	for _, m := range c.Methods {
		out.WriteString(m.String())
		out.WriteString(" ")
	}
	out.WriteString("}")
	return out.String()
}
