package resolver

import "github.com/cwbudde/golox/internal/ast"

// resolveClass declares the class name, detects self-inheritance, opens a
// `super` scope (only with a superclass) and a `this` scope around every
// method body, resolving `init` as an Initializer and everything else as
// a Method.
func (r *Resolver) resolveClass(c *ast.Class) {
	enclosingClass := r.currentClass
	r.currentClass = inClass

	r.declare(c.Name)
	r.define(c.Name.Lexeme)

	if c.Superclass != nil {
		if c.Superclass.Name.Lexeme == c.Name.Lexeme {
			r.errorf(c.Superclass.Line(), "A class can't inherit from itself.")
		}
		r.currentClass = inSubclass
		r.resolveExpr(c.Superclass)

		r.beginScope()
		r.innermost()["super"] = defined
	}

	for _, m := range c.Methods {
		// Static methods have no implicit `this` bound at runtime, so their
		// bodies are resolved without the `this` scope other methods get —
		// otherwise resolved hop counts would assume a runtime frame that
		// bind() never creates for them.
		if !m.IsStatic {
			r.beginScope()
			r.innermost()["this"] = defined
		}

		fnType := method
		if m.Name.Lexeme == "init" && !m.IsStatic {
			fnType = initializer
		}
		r.resolveFunction(m.Params, m.Body, fnType)

		if !m.IsStatic {
			r.endScope()
		}
	}

	if c.Superclass != nil {
		r.endScope() // super
	}

	r.currentClass = enclosingClass
}
