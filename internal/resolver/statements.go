package resolver

import (
	"github.com/cwbudde/golox/internal/ast"
	"github.com/cwbudde/golox/internal/lexer"
)

func (r *Resolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *Resolver) resolveStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.Block:
		r.beginScope()
		r.resolveStmts(s.Stmts)
		r.endScope()

	case *ast.Var:
		r.declare(s.Name)
		if s.Init != nil {
			r.resolveExpr(s.Init)
		}
		r.define(s.Name.Lexeme)

	case *ast.Function:
		r.declare(s.Name)
		r.define(s.Name.Lexeme)
		r.resolveFunction(s.Params, s.Body, function)

	case *ast.ExprStmt:
		r.resolveExpr(s.Expr)

	case *ast.Print:
		r.resolveExpr(s.Expr)

	case *ast.If:
		r.resolveExpr(s.Cond)
		r.resolveStmt(s.Then)
		if s.Else != nil {
			r.resolveStmt(s.Else)
		}

	case *ast.While:
		r.resolveExpr(s.Cond)
		r.resolveStmt(s.Body)

	case *ast.Return:
		if r.currentFunction == noFunction {
			r.errorf(s.Line(), "Can't return from top-level code.")
		}
		if s.Value != nil {
			if r.currentFunction == initializer {
				r.errorf(s.Line(), "Can't return a value from an initializer.")
			}
			r.resolveExpr(s.Value)
		}

	case *ast.Class:
		r.resolveClass(s)

	default:
		panic("resolver: unhandled statement type")
	}
}

// resolveFunction resolves a function/method body in its own scope, with
// parameters declared and defined up front. enclosingFn is restored on
// return so nested functions don't leak their type into the caller.
func (r *Resolver) resolveFunction(params []lexer.Token, body []ast.Stmt, fnType functionType) {
	enclosingFn := r.currentFunction
	r.currentFunction = fnType

	r.beginScope()
	for _, p := range params {
		r.declare(p)
		r.define(p.Lexeme)
	}
	r.resolveStmts(body)
	r.endScope()

	r.currentFunction = enclosingFn
}
