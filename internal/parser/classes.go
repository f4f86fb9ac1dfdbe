package parser

import (
	"fmt"

	"github.com/cwbudde/golox/internal/ast"
	"github.com/cwbudde/golox/internal/lexer"
)

const maxArgs = 255

// function parses the shared `IDENT "(" params? ")" block` shape used by
// both `fun` declarations and methods inside a class body. kind names the
// construct for error messages ("function" or "method"). isStatic marks a
// `class`-modified static method, callable directly on the class value.
func (p *Parser) function(kind string, isStatic bool) *ast.Function {
	name := p.consume(lexer.IDENTIFIER, fmt.Sprintf("Expect %s name.", kind))
	p.consume(lexer.LEFT_PAREN, fmt.Sprintf("Expect '(' after %s name.", kind))

	var params []lexer.Token
	tooManyParams := false
	if !p.check(lexer.RIGHT_PAREN) {
		for {
			if len(params) >= maxArgs {
				tooManyParams = true
			}
			params = append(params, p.consume(lexer.IDENTIFIER, "Expect parameter name."))
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	closeParen := p.consume(lexer.RIGHT_PAREN, "Expect ')' after parameters.")
	if tooManyParams {
		p.errorAt(closeParen, fmt.Sprintf("Can't have more than %d parameters.", maxArgs))
	}

	p.consume(lexer.LEFT_BRACE, fmt.Sprintf("Expect '{' before %s body.", kind))
	body := p.block()

	return &ast.Function{Name: name, Params: params, Body: body, IsStatic: isStatic}
}

// classDeclaration parses `class IDENT ( "<" IDENT )? "{" function* "}"`.
// Methods may optionally be preceded by the `class` modifier to mark a
// static method.
func (p *Parser) classDeclaration() ast.Stmt {
	name := p.consume(lexer.IDENTIFIER, "Expect class name.")

	var superclass *ast.Variable
	if p.match(lexer.LESS) {
		p.consume(lexer.IDENTIFIER, "Expect superclass name.")
		superclass = &ast.Variable{Name: p.previous()}
	}

	p.consume(lexer.LEFT_BRACE, "Expect '{' before class body.")

	var methods []*ast.Function
	for !p.check(lexer.RIGHT_BRACE) && !p.atEnd() {
		isStatic := p.match(lexer.CLASS)
		methods = append(methods, p.function("method", isStatic))
	}

	p.consume(lexer.RIGHT_BRACE, "Expect '}' after class body.")

	return &ast.Class{Name: name, Superclass: superclass, Methods: methods}
}
