package interp

import (
	"github.com/cwbudde/golox/internal/ast"
	"github.com/cwbudde/golox/internal/lexer"
)

func (interp *Interpreter) evaluate(expr ast.Expr) (Value, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return literalValue(e.Value), nil

	case *ast.Grouping:
		return interp.evaluate(e.Inner)

	case *ast.Unary:
		right, err := interp.evaluate(e.Right)
		if err != nil {
			return nil, err
		}
		return interp.evalUnary(e, right)

	case *ast.Binary:
		return interp.evalBinary(e)

	case *ast.Logical:
		return interp.evalLogical(e)

	case *ast.Variable:
		return interp.lookUpVariable(e.Name.Lexeme, e.Resolution, e.Line())

	case *ast.Assign:
		value, err := interp.evaluate(e.Value)
		if err != nil {
			return nil, err
		}
		if e.Resolution != nil {
			if !interp.env.AssignAt(e.Resolution.Depth, e.Name.Lexeme, value) {
				return nil, runtimeErrorf(e.Line(), "Undefined variable '%s'.", e.Name.Lexeme)
			}
			return value, nil
		}
		if !interp.globals.AssignGlobal(e.Name.Lexeme, value) {
			return nil, runtimeErrorf(e.Line(), "Undefined variable '%s'.", e.Name.Lexeme)
		}
		return value, nil

	case *ast.Call:
		return interp.evalCall(e)

	case *ast.Get:
		obj, err := interp.evaluate(e.Object)
		if err != nil {
			return nil, err
		}
		switch target := obj.(type) {
		case *Instance:
			return target.get(e.Name.Lexeme, e.Line())
		case *Class:
			return target.getStatic(e.Name.Lexeme, e.Line())
		default:
			return nil, runtimeErrorf(e.Line(), "Only instances have properties.")
		}

	case *ast.Set:
		obj, err := interp.evaluate(e.Object)
		if err != nil {
			return nil, err
		}
		instance, ok := obj.(*Instance)
		if !ok {
			return nil, runtimeErrorf(e.Line(), "Only instances have fields.")
		}
		value, err := interp.evaluate(e.Value)
		if err != nil {
			return nil, err
		}
		instance.set(e.Name.Lexeme, value)
		return value, nil

	case *ast.This:
		v, err := interp.lookUpVariable("this", e.Resolution, e.Line())
		return v, err

	case *ast.Super:
		return interp.evalSuper(e)

	case *ast.Lambda:
		return newFunction("", paramNames(e.Params), e.Body, interp.env, false), nil

	default:
		panic("interp: unhandled expression type")
	}
}

func literalValue(v any) Value {
	switch vv := v.(type) {
	case nil:
		return Nil{}
	case bool:
		return Bool(vv)
	case float64:
		return Number(vv)
	case string:
		return String_(vv)
	default:
		return Nil{}
	}
}

// lookUpVariable dispatches on the resolved hop count: a non-nil resolution
// walks the frame chain by hop count; nil goes straight to the globals
// frame.
func (interp *Interpreter) lookUpVariable(name string, res *ast.Resolution, line int) (Value, error) {
	if res != nil {
		v, ok := interp.env.GetAt(res.Depth, name)
		if !ok {
			return nil, runtimeErrorf(line, "Undefined variable '%s'.", name)
		}
		return v, nil
	}
	v, ok := interp.globals.GetGlobal(name)
	if !ok {
		return nil, runtimeErrorf(line, "Undefined variable '%s'.", name)
	}
	return v, nil
}

func (interp *Interpreter) evalLogical(e *ast.Logical) (Value, error) {
	left, err := interp.evaluate(e.Left)
	if err != nil {
		return nil, err
	}

	if e.Op == ast.OpOr {
		if isTruthy(left) {
			return left, nil
		}
	} else {
		if !isTruthy(left) {
			return left, nil
		}
	}

	return interp.evaluate(e.Right)
}

func (interp *Interpreter) evalUnary(e *ast.Unary, right Value) (Value, error) {
	switch e.Op {
	case lexer.BANG:
		return Bool(!isTruthy(right)), nil
	case lexer.MINUS:
		n, ok := right.(Number)
		if !ok {
			return nil, runtimeErrorf(e.Line(), "Operand must be a number.")
		}
		return -n, nil
	default:
		panic("interp: unhandled unary operator")
	}
}

func (interp *Interpreter) evalCall(e *ast.Call) (Value, error) {
	callee, err := interp.evaluate(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]Value, len(e.Args))
	for i, a := range e.Args {
		v, err := interp.evaluate(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	callable, ok := callee.(Callable)
	if !ok {
		return nil, runtimeErrorf(e.Line(), "Can only call functions and classes.")
	}
	if len(args) != callable.Arity() {
		return nil, runtimeErrorf(e.Line(), "Expected %d arguments but got %d.", callable.Arity(), len(args))
	}

	return callable.Call(interp, args)
}

// evalSuper resolves `super` to the parent Class at the stored depth,
// `this` at depth-1 (one frame closer than super's own), and looks the
// method up on the parent chain.
func (interp *Interpreter) evalSuper(e *ast.Super) (Value, error) {
	depth := 0
	if e.Resolution != nil {
		depth = e.Resolution.Depth
	}

	superVal, _ := interp.env.GetAt(depth, "super")
	superclass, ok := superVal.(*Class)
	if !ok {
		return nil, runtimeErrorf(e.Line(), "Undefined property '%s'.", e.Method.Lexeme)
	}

	thisVal, _ := interp.env.GetAt(depth-1, "this")
	instance, ok := thisVal.(*Instance)
	if !ok {
		return nil, runtimeErrorf(e.Line(), "Undefined property '%s'.", e.Method.Lexeme)
	}

	method, ok := superclass.findMethod(e.Method.Lexeme)
	if !ok {
		return nil, runtimeErrorf(e.Line(), "Undefined property '%s'.", e.Method.Lexeme)
	}
	return method.bind(instance), nil
}
