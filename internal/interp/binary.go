package interp

import "github.com/cwbudde/golox/internal/ast"

// evalBinary implements arithmetic, relational, and equality operators:
// both operands are evaluated before the operator is applied.
func (interp *Interpreter) evalBinary(e *ast.Binary) (Value, error) {
	left, err := interp.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := interp.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Op {
	case ast.OpEq:
		return Bool(isEqual(left, right)), nil
	case ast.OpNEq:
		return Bool(!isEqual(left, right)), nil
	case ast.OpAdd:
		return interp.evalAdd(e, left, right)
	case ast.OpSub, ast.OpMul, ast.OpDiv:
		ln, lok := left.(Number)
		rn, rok := right.(Number)
		if !lok || !rok {
			return nil, runtimeErrorf(e.Line(), "Incompatible operands.")
		}
		switch e.Op {
		case ast.OpSub:
			return ln - rn, nil
		case ast.OpMul:
			return ln * rn, nil
		default:
			return ln / rn, nil
		}
	case ast.OpLt, ast.OpLEq, ast.OpGt, ast.OpGEq:
		ln, lok := left.(Number)
		rn, rok := right.(Number)
		if !lok || !rok {
			return nil, runtimeErrorf(e.Line(), "Incompatible operands.")
		}
		switch e.Op {
		case ast.OpLt:
			return Bool(ln < rn), nil
		case ast.OpLEq:
			return Bool(ln <= rn), nil
		case ast.OpGt:
			return Bool(ln > rn), nil
		default:
			return Bool(ln >= rn), nil
		}
	default:
		panic("interp: unhandled binary operator")
	}
}

// evalAdd is split out because `+` alone permits two strings.
func (interp *Interpreter) evalAdd(e *ast.Binary, left, right Value) (Value, error) {
	if ln, ok := left.(Number); ok {
		if rn, ok := right.(Number); ok {
			return ln + rn, nil
		}
	}
	if ls, ok := left.(String_); ok {
		if rs, ok := right.(String_); ok {
			return ls + rs, nil
		}
	}
	return nil, runtimeErrorf(e.Line(), "Incompatible operands.")
}
