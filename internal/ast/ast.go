// Package ast defines the Abstract Syntax Tree node types produced by the
// parser and consumed by the resolver and interpreter.
//
// The tree is a closed sum type: Expression and Statement are narrow
// interfaces implemented by a fixed set of structs. Each pass pattern
// matches on the concrete type with a type switch rather than dispatching
// through a visitor interface — adding a new node kind means extending the
// sum and updating every switch, not regenerating visitor boilerplate.
package ast

import (
	"bytes"

	"github.com/cwbudde/golox/internal/token"
)

// Node is the base interface implemented by every AST node.
type Node interface {
	// TokenLiteral returns the lexeme of the token most closely associated
	// with this node, for debugging.
	TokenLiteral() string

	// String renders the node back to source-like text, for debugging and
	// for the `--debug`/DEBUG pretty-print.
	String() string

	// Pos returns the source position used for error reporting.
	Pos() token.Position
}

// Expression is any node that produces a value.
type Expression interface {
	Node
	expressionNode()
}

// Statement is any node that performs an action without producing a value.
type Statement interface {
	Node
	statementNode()
}

// Program is the root of the tree: the sequence of top-level declarations.
type Program struct {
	Statements []Statement
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

func (p *Program) Pos() token.Position {
	if len(p.Statements) > 0 {
		return p.Statements[0].Pos()
	}
	return token.Position{Line: 1, Column: 1}
}

func (p *Program) String() string {
	var out bytes.Buffer
	for _, stmt := range p.Statements {
		out.WriteString(stmt.String())
		out.WriteString("\n")
	}
	return out.String()
}
