package interp

import "time"

// nativeFunction wraps a Go function as a Callable so it can sit in the
// globals frame alongside user-defined Functions.
type nativeFunction struct {
	name  string
	arity int
	fn    func(args []Value) (Value, error)
}

func (n *nativeFunction) Type() string           { return "native function" }
func (n *nativeFunction) String() string         { return "<native fn " + n.name + ">" }
func (n *nativeFunction) Arity() int             { return n.arity }
func (n *nativeFunction) Call(_ *Interpreter, args []Value) (Value, error) {
	return n.fn(args)
}

// defineGlobals installs the single native function: clock(), returning
// whole seconds since the Unix epoch.
func defineGlobals(globals *Environment) {
	globals.Define("clock", &nativeFunction{
		name:  "clock",
		arity: 0,
		fn: func([]Value) (Value, error) {
			return Number(time.Now().Unix()), nil
		},
	})
}
