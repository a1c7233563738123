// Package parser implements a recursive-descent, precedence-climbing parser
// that turns a token stream into an *ast.Program.
package parser

import (
	"fmt"

	"github.com/cwbudde/golox/internal/ast"
	"github.com/cwbudde/golox/internal/lexer"
	"github.com/cwbudde/golox/internal/token"
)

// Error is a syntax error reported at a token position. Like the lexer, the
// parser never stops at the first error: it records one, synchronizes to a
// statement boundary, and keeps parsing so a single run surfaces as many
// problems as possible.
type Error struct {
	Message string
	Pos     token.Position
	Token   token.Token
}

func (e *Error) Error() string { return e.Message }

// maxArgs is the limit on call-argument and function-parameter counts,
// matching the reference implementation's own self-imposed ceiling.
const maxArgs = 255

// Parser consumes a Lexer's token stream one token of lookahead at a time.
type Parser struct {
	lex *lexer.Lexer

	previous token.Token
	current  token.Token
	peek     token.Token

	errors []Error
}

// New creates a Parser over the tokens produced by lex and primes both
// lookahead slots.
func New(lex *lexer.Lexer) *Parser {
	p := &Parser{lex: lex}
	p.advance()
	p.advance()
	return p
}

// Errors returns every syntax error accumulated during Parse.
func (p *Parser) Errors() []Error { return p.errors }

// LexerErrors returns every lexical error the underlying lexer accumulated
// while it was driven by this parser.
func (p *Parser) LexerErrors() []lexer.Error { return p.lex.Errors() }

func (p *Parser) advance() {
	p.previous = p.current
	p.current = p.peek
	p.peek = p.lex.NextToken()
}

func (p *Parser) check(t token.Type) bool { return p.current.Type == t }

func (p *Parser) match(types ...token.Type) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

// expect consumes the current token if it has type t, else records a syntax
// error and leaves the cursor where it is so synchronize() can recover.
func (p *Parser) expect(t token.Type, msg string) (token.Token, bool) {
	if p.check(t) {
		tok := p.current
		p.advance()
		return tok, true
	}
	p.errorAtCurrent(msg)
	return token.Token{}, false
}

func (p *Parser) errorAtCurrent(msg string) {
	p.errors = append(p.errors, Error{Message: msg, Pos: p.current.Pos, Token: p.current})
}

func (p *Parser) errorf(format string, args ...any) {
	p.errorAtCurrent(fmt.Sprintf(format, args...))
}

// synchronize discards tokens until it reaches a plausible statement
// boundary, so one syntax error doesn't cascade into a wall of follow-on
// errors for the rest of the file. It is called once the production that
// hit trouble has already given up (without consuming the token that upset
// it), so the first thing to check is whether that very token already
// starts a new statement; only then does it start discarding tokens.
func (p *Parser) synchronize() {
	for p.current.Type != token.EOF {
		if p.previous.Type == token.SEMICOLON {
			return
		}
		switch p.current.Type {
		case token.CLASS, token.FUN, token.VAR, token.FOR, token.IF, token.WHILE, token.PRINT, token.RETURN:
			return
		}
		p.advance()
	}
}

// Parse runs the parser to completion, returning every top-level statement
// it could recover. Callers must check the returned errors (and lex.Errors())
// before trusting the result.
func Parse(lex *lexer.Lexer) (*ast.Program, []Error) {
	p := New(lex)
	program := &ast.Program{}
	for p.current.Type != token.EOF {
		stmt := p.declaration()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
	}
	return program, p.errors
}
