package parser

import (
	"github.com/cwbudde/golox/internal/ast"
	"github.com/cwbudde/golox/internal/lexer"
)

func (p *Parser) expression() ast.Expr {
	return p.assignment()
}

// assignment parses the left-hand side as a general expression, then
// reinterprets it if '=' follows: a Variable becomes Assign, a Get becomes
// Set. Anything else is an "Invalid assignment target" error recorded at
// the '=' token, with parsing continuing using the already-parsed LHS.
func (p *Parser) assignment() ast.Expr {
	expr := p.or()

	if p.match(lexer.EQUAL) {
		equals := p.previous()
		value := p.assignment()

		switch target := expr.(type) {
		case *ast.Variable:
			return &ast.Assign{Name: target.Name, Value: value}
		case *ast.Get:
			return &ast.Set{Object: target.Object, Name: target.Name, Value: value}
		default:
			p.errors = append(p.errors, SyntaxError{Line: equals.Line(), Message: "Invalid assignment target."})
		}
	}

	return expr
}

func (p *Parser) or() ast.Expr {
	expr := p.and()
	for p.match(lexer.OR) {
		tok := p.previous()
		right := p.and()
		expr = &ast.Logical{Left: expr, Right: right, Op: ast.OpOr, Token: tok}
	}
	return expr
}

func (p *Parser) and() ast.Expr {
	expr := p.equality()
	for p.match(lexer.AND) {
		tok := p.previous()
		right := p.equality()
		expr = &ast.Logical{Left: expr, Right: right, Op: ast.OpAnd, Token: tok}
	}
	return expr
}

func (p *Parser) equality() ast.Expr {
	expr := p.comparison()
	for p.match(lexer.BANG_EQUAL, lexer.EQUAL_EQUAL) {
		op, tok := p.binaryOp()
		right := p.comparison()
		expr = &ast.Binary{Left: expr, Right: right, Op: op, Token: tok}
	}
	return expr
}

func (p *Parser) comparison() ast.Expr {
	expr := p.term()
	for p.match(lexer.GREATER, lexer.GREATER_EQUAL, lexer.LESS, lexer.LESS_EQUAL) {
		op, tok := p.binaryOp()
		right := p.term()
		expr = &ast.Binary{Left: expr, Right: right, Op: op, Token: tok}
	}
	return expr
}

func (p *Parser) term() ast.Expr {
	expr := p.factor()
	for p.match(lexer.MINUS, lexer.PLUS) {
		op, tok := p.binaryOp()
		right := p.factor()
		expr = &ast.Binary{Left: expr, Right: right, Op: op, Token: tok}
	}
	return expr
}

func (p *Parser) factor() ast.Expr {
	expr := p.unary()
	for p.match(lexer.SLASH, lexer.STAR) {
		op, tok := p.binaryOp()
		right := p.unary()
		expr = &ast.Binary{Left: expr, Right: right, Op: op, Token: tok}
	}
	return expr
}

// binaryOp maps the just-matched operator token to its ast.BinaryOp tag.
func (p *Parser) binaryOp() (ast.BinaryOp, lexer.Token) {
	tok := p.previous()
	switch tok.Type {
	case lexer.BANG_EQUAL:
		return ast.OpNEq, tok
	case lexer.EQUAL_EQUAL:
		return ast.OpEq, tok
	case lexer.GREATER:
		return ast.OpGt, tok
	case lexer.GREATER_EQUAL:
		return ast.OpGEq, tok
	case lexer.LESS:
		return ast.OpLt, tok
	case lexer.LESS_EQUAL:
		return ast.OpLEq, tok
	case lexer.MINUS:
		return ast.OpSub, tok
	case lexer.PLUS:
		return ast.OpAdd, tok
	case lexer.SLASH:
		return ast.OpDiv, tok
	case lexer.STAR:
		return ast.OpMul, tok
	default:
		return ast.OpAdd, tok
	}
}

func (p *Parser) unary() ast.Expr {
	if p.match(lexer.BANG, lexer.MINUS) {
		tok := p.previous()
		right := p.unary()
		return &ast.Unary{Op: tok.Type, Token: tok, Right: right}
	}
	return p.call()
}

// call parses `primary ( "(" args? ")" | "." IDENT )*`.
func (p *Parser) call() ast.Expr {
	expr := p.primary()

	for {
		switch {
		case p.match(lexer.LEFT_PAREN):
			expr = p.finishCall(expr)
		case p.match(lexer.DOT):
			name := p.consume(lexer.IDENTIFIER, "Expect property name after '.'.")
			expr = &ast.Get{Object: expr, Name: name}
		default:
			return expr
		}
	}
}

func (p *Parser) finishCall(callee ast.Expr) ast.Expr {
	var args []ast.Expr
	tooManyArgs := false
	if !p.check(lexer.RIGHT_PAREN) {
		for {
			if len(args) >= maxArgs {
				tooManyArgs = true
			}
			args = append(args, p.expression())
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}

	paren := p.consume(lexer.RIGHT_PAREN, "Expect ')' after arguments.")
	if tooManyArgs {
		p.errorAt(paren, "Can't have more than 255 arguments.")
	}
	return &ast.Call{Callee: callee, Paren: paren, Args: args}
}

func (p *Parser) primary() ast.Expr {
	switch {
	case p.match(lexer.FALSE):
		return &ast.Literal{Token: p.previous(), Value: false}
	case p.match(lexer.TRUE):
		return &ast.Literal{Token: p.previous(), Value: true}
	case p.match(lexer.NIL):
		return &ast.Literal{Token: p.previous(), Value: nil}
	case p.match(lexer.NUMBER, lexer.STRING):
		tok := p.previous()
		return &ast.Literal{Token: tok, Value: tok.Literal}
	case p.match(lexer.SUPER):
		keyword := p.previous()
		p.consume(lexer.DOT, "Expect '.' after 'super'.")
		method := p.consume(lexer.IDENTIFIER, "Expect superclass method name.")
		return &ast.Super{Keyword: keyword, Method: method}
	case p.match(lexer.THIS):
		return &ast.This{Keyword: p.previous()}
	case p.match(lexer.IDENTIFIER):
		return &ast.Variable{Name: p.previous()}
	case p.match(lexer.FUN):
		return p.lambda()
	case p.match(lexer.LEFT_PAREN):
		tok := p.previous()
		expr := p.expression()
		p.consume(lexer.RIGHT_PAREN, "Expect ')' after expression.")
		return &ast.Grouping{Token: tok, Inner: expr}
	default:
		panic(p.errorAt(p.peek(), "Expect expression."))
	}
}

// lambda parses the anonymous-function expression `fun (params) { body }`.
// Grammar-wise it is the parameter-list-and-block tail of `function`
// without a leading name.
func (p *Parser) lambda() ast.Expr {
	keyword := p.previous()
	p.consume(lexer.LEFT_PAREN, "Expect '(' after 'fun'.")

	var params []lexer.Token
	if !p.check(lexer.RIGHT_PAREN) {
		for {
			if len(params) >= maxArgs {
				p.errorAt(p.peek(), "Can't have more than 255 parameters.")
			}
			params = append(params, p.consume(lexer.IDENTIFIER, "Expect parameter name."))
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	p.consume(lexer.RIGHT_PAREN, "Expect ')' after parameters.")
	p.consume(lexer.LEFT_BRACE, "Expect '{' before function body.")
	body := p.block()

	return &ast.Lambda{Keyword: keyword, Params: params, Body: body}
}
