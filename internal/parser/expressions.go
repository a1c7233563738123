package parser

import (
	"github.com/cwbudde/golox/internal/ast"
	"github.com/cwbudde/golox/internal/token"
)

// The expression grammar is parsed by a chain of methods, one per
// precedence level, from loosest (assignment) to tightest (primary):
//
//	expression -> assignment
//	assignment -> ( call "." )? IDENTIFIER "=" assignment | logicOr
//	logicOr    -> logicAnd ( "or" logicAnd )*
//	logicAnd   -> equality ( "and" equality )*
//	equality   -> comparison ( ( "!=" | "==" ) comparison )*
//	comparison -> term ( ( ">" | ">=" | "<" | "<=" ) term )*
//	term       -> factor ( ( "-" | "+" ) factor )*
//	factor     -> unary ( ( "/" | "*" ) unary )*
//	unary      -> ( "!" | "-" ) unary | call
//	call       -> primary ( "(" arguments? ")" | "." IDENTIFIER )*
//	primary    -> NUMBER | STRING | "true" | "false" | "nil" | "this"
//	            | "(" expression ")" | IDENTIFIER | "super" "." IDENTIFIER

func (p *Parser) expression() ast.Expression {
	return p.assignment()
}

func (p *Parser) assignment() ast.Expression {
	expr := p.or()

	if p.match(token.EQUAL) {
		equals := p.previous
		value := p.assignment()

		switch target := expr.(type) {
		case *ast.VariableExpr:
			return &ast.AssignExpr{Name: target.Name, Value: value}
		case *ast.GetExpr:
			return &ast.SetExpr{Object: target.Object, Name: target.Name, Value: value}
		}
		p.errors = append(p.errors, Error{Message: "Invalid assignment target.", Pos: equals.Pos, Token: equals})
		return expr
	}
	return expr
}

func (p *Parser) or() ast.Expression {
	expr := p.and()
	for p.check(token.OR) {
		op := p.current
		p.advance()
		right := p.and()
		expr = &ast.LogicalExpr{Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) and() ast.Expression {
	expr := p.equality()
	for p.check(token.AND) {
		op := p.current
		p.advance()
		right := p.equality()
		expr = &ast.LogicalExpr{Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) equality() ast.Expression {
	expr := p.comparison()
	for p.check(token.BANG_EQUAL) || p.check(token.EQUAL_EQUAL) {
		op := p.current
		p.advance()
		right := p.comparison()
		expr = &ast.BinaryExpr{Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) comparison() ast.Expression {
	expr := p.term()
	for p.check(token.GREATER) || p.check(token.GREATER_EQUAL) || p.check(token.LESS) || p.check(token.LESS_EQUAL) {
		op := p.current
		p.advance()
		right := p.term()
		expr = &ast.BinaryExpr{Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) term() ast.Expression {
	expr := p.factor()
	for p.check(token.MINUS) || p.check(token.PLUS) {
		op := p.current
		p.advance()
		right := p.factor()
		expr = &ast.BinaryExpr{Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) factor() ast.Expression {
	expr := p.unary()
	for p.check(token.SLASH) || p.check(token.STAR) {
		op := p.current
		p.advance()
		right := p.unary()
		expr = &ast.BinaryExpr{Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) unary() ast.Expression {
	if p.check(token.BANG) || p.check(token.MINUS) {
		op := p.current
		p.advance()
		right := p.unary()
		return &ast.UnaryExpr{Operator: op, Right: right}
	}
	return p.call()
}

func (p *Parser) call() ast.Expression {
	expr := p.primary()

	for {
		switch {
		case p.match(token.LEFT_PAREN):
			expr = p.finishCall(expr)
		case p.match(token.DOT):
			name, ok := p.expect(token.IDENTIFIER, "Expect property name after '.'.")
			if !ok {
				return expr
			}
			expr = &ast.GetExpr{Object: expr, Name: name}
		default:
			return expr
		}
	}
}

func (p *Parser) finishCall(callee ast.Expression) ast.Expression {
	var args []ast.Expression
	if !p.check(token.RIGHT_PAREN) {
		for {
			if len(args) >= maxArgs {
				p.errorf("Can't have more than %d arguments.", maxArgs)
			}
			args = append(args, p.expression())
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	paren, _ := p.expect(token.RIGHT_PAREN, "Expect ')' after arguments.")
	return &ast.CallExpr{Callee: callee, Paren: paren, Arguments: args}
}

func (p *Parser) primary() ast.Expression {
	tok := p.current

	switch {
	case p.match(token.FALSE):
		return &ast.LiteralExpr{Token: tok, Value: false}
	case p.match(token.TRUE):
		return &ast.LiteralExpr{Token: tok, Value: true}
	case p.match(token.NIL):
		return &ast.LiteralExpr{Token: tok, Value: nil}
	case p.match(token.NUMBER), p.match(token.STRING):
		return &ast.LiteralExpr{Token: tok, Value: tok.Literal}
	case p.match(token.SUPER):
		keyword := tok
		if _, ok := p.expect(token.DOT, "Expect '.' after 'super'."); !ok {
			return nil
		}
		method, ok := p.expect(token.IDENTIFIER, "Expect superclass method name.")
		if !ok {
			return nil
		}
		return &ast.SuperExpr{Keyword: keyword, Method: method}
	case p.match(token.THIS):
		return &ast.ThisExpr{Keyword: tok}
	case p.match(token.IDENTIFIER):
		return &ast.VariableExpr{Name: tok}
	case p.match(token.LEFT_PAREN):
		expr := p.expression()
		p.expect(token.RIGHT_PAREN, "Expect ')' after expression.")
		return &ast.GroupingExpr{Paren: tok, Expression: expr}
	}

	p.errorAtCurrent("Expect expression.")
	p.advance()
	return &ast.LiteralExpr{Token: tok, Value: nil}
}
