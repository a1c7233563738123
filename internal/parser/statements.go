package parser

import (
	"github.com/cwbudde/golox/internal/ast"
	"github.com/cwbudde/golox/internal/token"
)

// declaration parses a top-level or block-level declaration. On a syntax
// error it synchronizes and returns nil, so the caller simply skips the
// failed statement and keeps parsing.
func (p *Parser) declaration() ast.Statement {
	var stmt ast.Statement
	switch {
	case p.match(token.CLASS):
		stmt = p.classDeclaration()
	case p.match(token.FUN):
		stmt = p.function("function")
	case p.match(token.VAR):
		stmt = p.varDeclaration()
	default:
		stmt = p.statement()
	}

	if stmt == nil {
		p.synchronize()
	}
	return stmt
}

func (p *Parser) classDeclaration() ast.Statement {
	tok := p.current
	name, ok := p.expect(token.IDENTIFIER, "Expect class name.")
	if !ok {
		return nil
	}

	var superclass *ast.VariableExpr
	if p.match(token.LESS) {
		superName, ok := p.expect(token.IDENTIFIER, "Expect superclass name.")
		if !ok {
			return nil
		}
		superclass = &ast.VariableExpr{Name: superName}
	}

	if _, ok := p.expect(token.LEFT_BRACE, "Expect '{' before class body."); !ok {
		return nil
	}

	var methods []*ast.FunctionStmt
	for !p.check(token.RIGHT_BRACE) && p.current.Type != token.EOF {
		m := p.function("method")
		if m == nil {
			return nil
		}
		methods = append(methods, m.(*ast.FunctionStmt))
	}

	if _, ok := p.expect(token.RIGHT_BRACE, "Expect '}' after class body."); !ok {
		return nil
	}

	return &ast.ClassStmt{Token: tok, Name: name, Superclass: superclass, Methods: methods}
}

func (p *Parser) function(kind string) ast.Statement {
	tok := p.current
	name, ok := p.expect(token.IDENTIFIER, "Expect "+kind+" name.")
	if !ok {
		return nil
	}

	if _, ok := p.expect(token.LEFT_PAREN, "Expect '(' after "+kind+" name."); !ok {
		return nil
	}

	var params []token.Token
	if !p.check(token.RIGHT_PAREN) {
		for {
			if len(params) >= maxArgs {
				p.errorf("Can't have more than %d parameters.", maxArgs)
			}
			param, ok := p.expect(token.IDENTIFIER, "Expect parameter name.")
			if !ok {
				return nil
			}
			params = append(params, param)
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	if _, ok := p.expect(token.RIGHT_PAREN, "Expect ')' after parameters."); !ok {
		return nil
	}

	if _, ok := p.expect(token.LEFT_BRACE, "Expect '{' before "+kind+" body."); !ok {
		return nil
	}
	body := p.block()

	return &ast.FunctionStmt{Token: tok, Name: name, Params: params, Body: body}
}

func (p *Parser) varDeclaration() ast.Statement {
	tok := p.current
	name, ok := p.expect(token.IDENTIFIER, "Expect variable name.")
	if !ok {
		return nil
	}

	var initializer ast.Expression
	if p.match(token.EQUAL) {
		initializer = p.expression()
	}

	if _, ok := p.expect(token.SEMICOLON, "Expect ';' after variable declaration."); !ok {
		return nil
	}
	return &ast.VarStmt{Token: tok, Name: name, Initializer: initializer}
}

func (p *Parser) statement() ast.Statement {
	switch {
	case p.match(token.FOR):
		return p.forStatement()
	case p.match(token.IF):
		return p.ifStatement()
	case p.match(token.PRINT):
		return p.printStatement()
	case p.match(token.RETURN):
		return p.returnStatement()
	case p.match(token.WHILE):
		return p.whileStatement()
	case p.match(token.LEFT_BRACE):
		tok := p.current
		return &ast.BlockStmt{Token: tok, Statements: p.block()}
	default:
		return p.expressionStatement()
	}
}

func (p *Parser) block() []ast.Statement {
	var stmts []ast.Statement
	for !p.check(token.RIGHT_BRACE) && p.current.Type != token.EOF {
		if s := p.declaration(); s != nil {
			stmts = append(stmts, s)
		}
	}
	p.expect(token.RIGHT_BRACE, "Expect '}' after block.")
	return stmts
}

func (p *Parser) ifStatement() ast.Statement {
	tok := p.current
	if _, ok := p.expect(token.LEFT_PAREN, "Expect '(' after 'if'."); !ok {
		return nil
	}
	cond := p.expression()
	if _, ok := p.expect(token.RIGHT_PAREN, "Expect ')' after if condition."); !ok {
		return nil
	}

	then := p.statement()
	var elseBranch ast.Statement
	if p.match(token.ELSE) {
		elseBranch = p.statement()
	}
	return &ast.IfStmt{Token: tok, Condition: cond, Then: then, Else: elseBranch}
}

func (p *Parser) printStatement() ast.Statement {
	tok := p.current
	value := p.expression()
	if _, ok := p.expect(token.SEMICOLON, "Expect ';' after value."); !ok {
		return nil
	}
	return &ast.PrintStmt{Token: tok, Expr: value}
}

func (p *Parser) returnStatement() ast.Statement {
	tok := p.current
	var value ast.Expression
	if !p.check(token.SEMICOLON) {
		value = p.expression()
	}
	if _, ok := p.expect(token.SEMICOLON, "Expect ';' after return value."); !ok {
		return nil
	}
	return &ast.ReturnStmt{Token: tok, Value: value}
}

func (p *Parser) whileStatement() ast.Statement {
	tok := p.current
	if _, ok := p.expect(token.LEFT_PAREN, "Expect '(' after 'while'."); !ok {
		return nil
	}
	cond := p.expression()
	if _, ok := p.expect(token.RIGHT_PAREN, "Expect ')' after condition."); !ok {
		return nil
	}
	body := p.statement()
	return &ast.WhileStmt{Token: tok, Condition: cond, Body: body}
}

// forStatement desugars the C-style for loop into a block containing the
// initializer followed by a WhileStmt whose body runs the increment after
// the loop body, the same transformation the reference implementation uses
// so the interpreter never needs a dedicated for-loop evaluation path.
func (p *Parser) forStatement() ast.Statement {
	tok := p.current
	if _, ok := p.expect(token.LEFT_PAREN, "Expect '(' after 'for'."); !ok {
		return nil
	}

	var initializer ast.Statement
	switch {
	case p.match(token.SEMICOLON):
		initializer = nil
	case p.match(token.VAR):
		initializer = p.varDeclaration()
	default:
		initializer = p.expressionStatement()
	}

	var condition ast.Expression
	if !p.check(token.SEMICOLON) {
		condition = p.expression()
	}
	if _, ok := p.expect(token.SEMICOLON, "Expect ';' after loop condition."); !ok {
		return nil
	}

	var increment ast.Expression
	if !p.check(token.RIGHT_PAREN) {
		increment = p.expression()
	}
	if _, ok := p.expect(token.RIGHT_PAREN, "Expect ')' after for clauses."); !ok {
		return nil
	}

	body := p.statement()

	if increment != nil {
		body = &ast.BlockStmt{
			Token:      tok,
			Statements: []ast.Statement{body, &ast.ExpressionStmt{Token: tok, Expr: increment}},
		}
	}

	if condition == nil {
		condition = &ast.LiteralExpr{Token: tok, Value: true}
	}
	body = &ast.WhileStmt{Token: tok, Condition: condition, Body: body}

	if initializer != nil {
		body = &ast.BlockStmt{Token: tok, Statements: []ast.Statement{initializer, body}}
	}
	return body
}

func (p *Parser) expressionStatement() ast.Statement {
	tok := p.current
	expr := p.expression()
	if _, ok := p.expect(token.SEMICOLON, "Expect ';' after expression."); !ok {
		return nil
	}
	return &ast.ExpressionStmt{Token: tok, Expr: expr}
}
