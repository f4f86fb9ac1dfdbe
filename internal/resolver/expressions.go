package resolver

import "github.com/cwbudde/golox/internal/ast"

func (r *Resolver) resolveExpr(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.Literal:
		// no sub-expressions, no resolution slot

	case *ast.Grouping:
		r.resolveExpr(e.Inner)

	case *ast.Unary:
		r.resolveExpr(e.Right)

	case *ast.Binary:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *ast.Logical:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *ast.Variable:
		if scope := r.innermost(); scope != nil {
			if state, ok := scope[e.Name.Lexeme]; ok && state == declared {
				r.errorf(e.Line(), "Can't read local variable in its own initializer.")
			}
		}
		r.resolveLocal(&e.Resolution, e.Name.Lexeme)

	case *ast.Assign:
		r.resolveExpr(e.Value)
		r.resolveLocal(&e.Resolution, e.Name.Lexeme)

	case *ast.Call:
		r.resolveExpr(e.Callee)
		for _, a := range e.Args {
			r.resolveExpr(a)
		}

	case *ast.Get:
		r.resolveExpr(e.Object)

	case *ast.Set:
		r.resolveExpr(e.Value)
		r.resolveExpr(e.Object)

	case *ast.This:
		if r.currentClass == noClass {
			r.errorf(e.Line(), "Can't use 'this' outside of a class.")
			return
		}
		r.resolveLocal(&e.Resolution, "this")

	case *ast.Super:
		switch r.currentClass {
		case noClass:
			r.errorf(e.Line(), "Can't use 'super' outside of a class.")
			return
		case inClass:
			r.errorf(e.Line(), "Can't use 'super' in a class with no superclass.")
			return
		}
		r.resolveLocal(&e.Resolution, "super")

	case *ast.Lambda:
		r.resolveFunction(e.Params, e.Body, function)

	default:
		panic("resolver: unhandled expression type")
	}
}
