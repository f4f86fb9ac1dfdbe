package interp

import "github.com/cwbudde/golox/internal/ast"

// Callable is any Value that can appear as the callee of a Call expression:
// a user-defined Function, a Class (instantiation), or a native builtin.
type Callable interface {
	Value
	Arity() int
	Call(interp *Interpreter, args []Value) (Value, error)
}

// Function is a closure: a declaration's shared parameter list and body,
// paired with the environment frame captured at the point the declaration
// (or, for a bound method, the binding) was evaluated.
type Function struct {
	name          string
	params        []string
	body          []ast.Stmt
	closure       *Environment
	isInitializer bool
}

func newFunction(name string, params []string, body []ast.Stmt, closure *Environment, isInitializer bool) *Function {
	return &Function{name: name, params: params, body: body, closure: closure, isInitializer: isInitializer}
}

func (f *Function) Type() string { return "function" }

func (f *Function) String() string {
	if f.name == "" {
		return "<fn>"
	}
	return `<fn "` + f.name + `">`
}

func (f *Function) Arity() int { return len(f.params) }

// bind returns a copy of f whose captured environment is a new child frame
// with `this` defined as instance. Created fresh on every property access
// rather than cached.
func (f *Function) bind(instance *Instance) *Function {
	env := NewEnclosedEnvironment(f.closure)
	env.Define("this", instance)
	return newFunction(f.name, f.params, f.body, env, f.isInitializer)
}

// Call executes the function body in a fresh child of its captured
// environment, with parameters bound positionally. A `return` statement
// unwinds here via returnSignal; its absence yields Nil, except that an
// initializer always yields the `this` bound in its own captured frame.
func (f *Function) Call(interp *Interpreter, args []Value) (Value, error) {
	callEnv := NewEnclosedEnvironment(f.closure)
	for i, p := range f.params {
		callEnv.Define(p, args[i])
	}

	err := interp.executeBlock(f.body, callEnv)
	if err != nil {
		if ret, ok := err.(returnSignal); ok {
			if f.isInitializer {
				this, _ := f.closure.GetAt(0, "this")
				return this, nil
			}
			return ret.Value, nil
		}
		return nil, err
	}

	if f.isInitializer {
		this, _ := f.closure.GetAt(0, "this")
		return this, nil
	}
	return Nil{}, nil
}
