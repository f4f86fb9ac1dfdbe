// Package interp is the tree-walking evaluator: the environment chain,
// runtime value domain, function/class/instance model, and the statement
// and expression evaluation rules. The Value domain is a tagged-struct
// interface over four scalar kinds (Number, String, Bool, Nil) plus
// callables and objects — a small lattice compared to a general-purpose
// scripting runtime, since Lox has exactly one numeric type.
package interp

import "strconv"

// Value is any runtime value the evaluator produces or consumes.
type Value interface {
	// Type returns a short name for the value's kind ("number", "string",
	// "class", ...).
	Type() string
	// String returns the display form `print` writes.
	String() string
}

// Number is Lox's single numeric type: a 64-bit float.
type Number float64

func (Number) Type() string { return "number" }

func (n Number) String() string {
	return strconv.FormatFloat(float64(n), 'f', -1, 64)
}

// String_ is the String value. Named with a trailing underscore to avoid
// colliding with the built-in `string` type.
type String_ string

func (String_) Type() string     { return "string" }
func (s String_) String() string { return string(s) }

// Bool is the Boolean value.
type Bool bool

func (Bool) Type() string     { return "bool" }
func (b Bool) String() string { return strconv.FormatBool(bool(b)) }

// Nil is Lox's absence-of-value. There is exactly one Nil value; Go's nil
// interface is never used to represent it so that a missing Value and a
// present Nil value never get confused in comparisons.
type Nil struct{}

func (Nil) Type() string   { return "nil" }
func (Nil) String() string { return "nil" }

// isTruthy is Lox's truthiness rule: everything is truthy except `false`
// and `nil`.
func isTruthy(v Value) bool {
	switch vv := v.(type) {
	case Nil:
		return false
	case Bool:
		return bool(vv)
	default:
		return true
	}
}

// isEqual implements Lox's value equality: same dynamic type and value, with
// Nil equal only to Nil.
func isEqual(a, b Value) bool {
	switch av := a.(type) {
	case Nil:
		_, ok := b.(Nil)
		return ok
	case Number:
		bv, ok := b.(Number)
		return ok && av == bv
	case String_:
		bv, ok := b.(String_)
		return ok && av == bv
	case Bool:
		bv, ok := b.(Bool)
		return ok && av == bv
	default:
		return a == b
	}
}

// displayString is what `print` writes: the value's String() form. Numbers
// need no special case here, since Number.String already prints the
// shortest round-trip decimal with no trailing ".0" and no exponent.
func displayString(v Value) string {
	return v.String()
}
