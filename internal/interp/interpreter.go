package interp

import (
	"io"

	"github.com/cwbudde/golox/internal/ast"
	"github.com/cwbudde/golox/internal/lexer"
)

// Interpreter walks a resolved statement tree, writing `print` output to
// Out. A single tree-walking Run entry point — no FFI adapters, type
// checking, or compiler front end; Lox has no equivalent of any of those.
type Interpreter struct {
	globals *Environment
	env     *Environment
	Out     io.Writer
}

// New creates an Interpreter with a globals frame seeded with the native
// builtins and ready to run a resolved program.
func New(out io.Writer) *Interpreter {
	globals := NewEnvironment()
	defineGlobals(globals)
	return &Interpreter{globals: globals, env: globals, Out: out}
}

// Run executes stmts in order against the current environment, returning
// the first RuntimeError encountered and aborting the rest.
func (interp *Interpreter) Run(stmts []ast.Stmt) error {
	for _, s := range stmts {
		if err := interp.execute(s); err != nil {
			return err
		}
	}
	return nil
}

// execute runs one statement. A non-nil, non-RuntimeError result is either
// a returnSignal propagating toward the enclosing function call or the
// output writer's error from a `print`.
func (interp *Interpreter) execute(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.ExprStmt:
		_, err := interp.evaluate(s.Expr)
		return err

	case *ast.Print:
		v, err := interp.evaluate(s.Expr)
		if err != nil {
			return err
		}
		_, werr := io.WriteString(interp.Out, displayString(v)+"\n")
		return werr

	case *ast.Var:
		var value Value = Nil{}
		if s.Init != nil {
			v, err := interp.evaluate(s.Init)
			if err != nil {
				return err
			}
			value = v
		}
		interp.env.Define(s.Name.Lexeme, value)
		return nil

	case *ast.Block:
		return interp.executeBlock(s.Stmts, NewEnclosedEnvironment(interp.env))

	case *ast.If:
		cond, err := interp.evaluate(s.Cond)
		if err != nil {
			return err
		}
		if isTruthy(cond) {
			return interp.execute(s.Then)
		}
		if s.Else != nil {
			return interp.execute(s.Else)
		}
		return nil

	case *ast.While:
		for {
			cond, err := interp.evaluate(s.Cond)
			if err != nil {
				return err
			}
			if !isTruthy(cond) {
				return nil
			}
			if err := interp.execute(s.Body); err != nil {
				return err
			}
		}

	case *ast.Function:
		fn := newFunction(s.Name.Lexeme, paramNames(s.Params), s.Body, interp.env, false)
		interp.env.Define(s.Name.Lexeme, fn)
		return nil

	case *ast.Return:
		var value Value = Nil{}
		if s.Value != nil {
			v, err := interp.evaluate(s.Value)
			if err != nil {
				return err
			}
			value = v
		}
		return returnSignal{Value: value}

	case *ast.Class:
		return interp.executeClass(s)

	default:
		panic("interp: unhandled statement type")
	}
}

// executeBlock runs stmts against env, restoring the interpreter's previous
// environment on every exit path (normal, error, or return-signal).
func (interp *Interpreter) executeBlock(stmts []ast.Stmt, env *Environment) error {
	previous := interp.env
	interp.env = env
	defer func() { interp.env = previous }()

	for _, s := range stmts {
		if err := interp.execute(s); err != nil {
			return err
		}
	}
	return nil
}

func paramNames(tokens []lexer.Token) []string {
	names := make([]string, len(tokens))
	for i, t := range tokens {
		names[i] = t.Lexeme
	}
	return names
}

// executeClass resolves the superclass reference (must be a Class value),
// binds the class's own name to nil before construction so method bodies
// can refer to it, builds the method table with each method's closure
// including a `super` frame when there is a superclass, then installs the
// finished Class.
func (interp *Interpreter) executeClass(s *ast.Class) error {
	var superclass *Class
	if s.Superclass != nil {
		v, err := interp.evaluate(s.Superclass)
		if err != nil {
			return err
		}
		sc, ok := v.(*Class)
		if !ok {
			return runtimeErrorf(s.Superclass.Line(), "Superclass must be a class.")
		}
		superclass = sc
	}

	interp.env.Define(s.Name.Lexeme, Nil{})

	closureEnv := interp.env
	if superclass != nil {
		closureEnv = NewEnclosedEnvironment(interp.env)
		closureEnv.Define("super", superclass)
	}

	methods := make(map[string]*Function)
	statics := make(map[string]*Function)
	for _, m := range s.Methods {
		fn := newFunction(m.Name.Lexeme, paramNames(m.Params), m.Body, closureEnv, m.Name.Lexeme == "init" && !m.IsStatic)
		if m.IsStatic {
			statics[m.Name.Lexeme] = fn
		} else {
			methods[m.Name.Lexeme] = fn
		}
	}

	class := newClass(s.Name.Lexeme, superclass, methods, statics)
	interp.env.Define(s.Name.Lexeme, class)
	return nil
}
