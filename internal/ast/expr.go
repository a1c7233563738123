package ast

import (
	"bytes"
	"strings"

	"github.com/cwbudde/golox/internal/token"
)

// LiteralExpr is a literal number, string, boolean, or nil value, already
// converted into its runtime-facing Go representation by the scanner
// (float64, string, bool, or nil).
type LiteralExpr struct {
	Token token.Token
	Value any
}

func (l *LiteralExpr) expressionNode()      {}
func (l *LiteralExpr) TokenLiteral() string { return l.Token.Lexeme }
func (l *LiteralExpr) Pos() token.Position  { return l.Token.Pos }
func (l *LiteralExpr) String() string {
	if l.Value == nil {
		return "nil"
	}
	if s, ok := l.Value.(string); ok {
		return "\"" + s + "\""
	}
	return l.Token.Lexeme
}

// VariableExpr reads the current value of a name. The resolver annotates it
// with a lexical depth (see SetDepth/Depth); an unresolved reference falls
// back to a global lookup at runtime.
type VariableExpr struct {
	Name  token.Token
	depth int
	resolved bool
}

func (v *VariableExpr) expressionNode()      {}
func (v *VariableExpr) TokenLiteral() string { return v.Name.Lexeme }
func (v *VariableExpr) Pos() token.Position  { return v.Name.Pos }
func (v *VariableExpr) String() string       { return v.Name.Lexeme }

// SetDepth records the lexical distance computed by the resolver.
func (v *VariableExpr) SetDepth(d int) { v.depth = d; v.resolved = true }

// Depth returns the resolved lexical distance and whether one was found.
func (v *VariableExpr) Depth() (int, bool) { return v.depth, v.resolved }

// UnaryExpr is a prefix operator: `!right` or `-right`.
type UnaryExpr struct {
	Operator token.Token
	Right    Expression
}

func (u *UnaryExpr) expressionNode()      {}
func (u *UnaryExpr) TokenLiteral() string { return u.Operator.Lexeme }
func (u *UnaryExpr) Pos() token.Position  { return u.Operator.Pos }
func (u *UnaryExpr) String() string {
	return "(" + u.Operator.Lexeme + u.Right.String() + ")"
}

// BinaryExpr is an infix arithmetic, comparison, or equality operator.
type BinaryExpr struct {
	Left     Expression
	Operator token.Token
	Right    Expression
}

func (b *BinaryExpr) expressionNode()      {}
func (b *BinaryExpr) TokenLiteral() string { return b.Operator.Lexeme }
func (b *BinaryExpr) Pos() token.Position  { return b.Operator.Pos }
func (b *BinaryExpr) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(b.Left.String())
	out.WriteString(" " + b.Operator.Lexeme + " ")
	out.WriteString(b.Right.String())
	out.WriteString(")")
	return out.String()
}

// LogicalExpr is `and`/`or`, which short-circuit and return one of their
// operand values unchanged rather than a coerced boolean.
type LogicalExpr struct {
	Left     Expression
	Operator token.Token
	Right    Expression
}

func (l *LogicalExpr) expressionNode()      {}
func (l *LogicalExpr) TokenLiteral() string { return l.Operator.Lexeme }
func (l *LogicalExpr) Pos() token.Position  { return l.Operator.Pos }
func (l *LogicalExpr) String() string {
	return "(" + l.Left.String() + " " + l.Operator.Lexeme + " " + l.Right.String() + ")"
}

// GroupingExpr is a parenthesized expression, kept as its own node so that
// precedence is visible in String() even though it evaluates transparently.
type GroupingExpr struct {
	Paren      token.Token
	Expression Expression
}

func (g *GroupingExpr) expressionNode()      {}
func (g *GroupingExpr) TokenLiteral() string { return g.Paren.Lexeme }
func (g *GroupingExpr) Pos() token.Position  { return g.Paren.Pos }
func (g *GroupingExpr) String() string       { return "(group " + g.Expression.String() + ")" }

// AssignExpr assigns Value to the variable Name. Like VariableExpr, it
// carries a resolver-computed lexical depth.
type AssignExpr struct {
	Name     token.Token
	Value    Expression
	depth    int
	resolved bool
}

func (a *AssignExpr) expressionNode()      {}
func (a *AssignExpr) TokenLiteral() string { return a.Name.Lexeme }
func (a *AssignExpr) Pos() token.Position  { return a.Name.Pos }
func (a *AssignExpr) String() string       { return a.Name.Lexeme + " = " + a.Value.String() }

func (a *AssignExpr) SetDepth(d int)       { a.depth = d; a.resolved = true }
func (a *AssignExpr) Depth() (int, bool)   { return a.depth, a.resolved }

// CallExpr invokes Callee with Arguments. Paren is the closing `)`, used for
// error reporting on arity mismatches.
type CallExpr struct {
	Callee    Expression
	Paren     token.Token
	Arguments []Expression
}

func (c *CallExpr) expressionNode()      {}
func (c *CallExpr) TokenLiteral() string { return c.Paren.Lexeme }
func (c *CallExpr) Pos() token.Position  { return c.Callee.Pos() }
func (c *CallExpr) String() string {
	args := make([]string, len(c.Arguments))
	for i, a := range c.Arguments {
		args[i] = a.String()
	}
	return c.Callee.String() + "(" + strings.Join(args, ", ") + ")"
}

// GetExpr reads a property or bound method off Object.
type GetExpr struct {
	Object Expression
	Name   token.Token
}

func (g *GetExpr) expressionNode()      {}
func (g *GetExpr) TokenLiteral() string { return g.Name.Lexeme }
func (g *GetExpr) Pos() token.Position  { return g.Name.Pos }
func (g *GetExpr) String() string       { return g.Object.String() + "." + g.Name.Lexeme }

// SetExpr assigns Value to a property on Object.
type SetExpr struct {
	Object Expression
	Name   token.Token
	Value  Expression
}

func (s *SetExpr) expressionNode()      {}
func (s *SetExpr) TokenLiteral() string { return s.Name.Lexeme }
func (s *SetExpr) Pos() token.Position  { return s.Name.Pos }
func (s *SetExpr) String() string {
	return s.Object.String() + "." + s.Name.Lexeme + " = " + s.Value.String()
}

// ThisExpr reads the `this` binding inside a method body.
type ThisExpr struct {
	Keyword  token.Token
	depth    int
	resolved bool
}

func (t *ThisExpr) expressionNode()      {}
func (t *ThisExpr) TokenLiteral() string { return t.Keyword.Lexeme }
func (t *ThisExpr) Pos() token.Position  { return t.Keyword.Pos }
func (t *ThisExpr) String() string       { return "this" }

func (t *ThisExpr) SetDepth(d int)     { t.depth = d; t.resolved = true }
func (t *ThisExpr) Depth() (int, bool) { return t.depth, t.resolved }

// SuperExpr reads `super.Method` inside a subclass method body.
type SuperExpr struct {
	Keyword  token.Token
	Method   token.Token
	depth    int
	resolved bool
}

func (s *SuperExpr) expressionNode()      {}
func (s *SuperExpr) TokenLiteral() string { return s.Keyword.Lexeme }
func (s *SuperExpr) Pos() token.Position  { return s.Keyword.Pos }
func (s *SuperExpr) String() string       { return "super." + s.Method.Lexeme }

func (s *SuperExpr) SetDepth(d int)     { s.depth = d; s.resolved = true }
func (s *SuperExpr) Depth() (int, bool) { return s.depth, s.resolved }
