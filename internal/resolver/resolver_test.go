package resolver

import (
	"testing"

	"github.com/cwbudde/golox/internal/ast"
	"github.com/cwbudde/golox/internal/lexer"
	"github.com/cwbudde/golox/internal/parser"
)

func resolve(t *testing.T, src string) ([]ast.Stmt, []Error) {
	t.Helper()
	tokens, scanErrs := lexer.New(src).ScanTokens()
	if len(scanErrs) != 0 {
		t.Fatalf("unexpected scanner errors: %v", scanErrs)
	}
	stmts, parseErrs := parser.New(tokens).Parse()
	if len(parseErrs) != 0 {
		t.Fatalf("unexpected parse errors: %v", parseErrs)
	}
	errs := New().Resolve(stmts)
	return stmts, errs
}

func TestSelfInitializerReadIsAnError(t *testing.T) {
	_, errs := resolve(t, "{ var a = a; }")
	if len(errs) != 1 || errs[0].Message != "Can't read local variable in its own initializer." {
		t.Fatalf("expected self-initializer error, got %v", errs)
	}
}

func TestDuplicateLocalDeclarationIsAnError(t *testing.T) {
	_, errs := resolve(t, "{ var a = 1; var a = 2; }")
	if len(errs) != 1 || errs[0].Message != "Already a variable with this name in this scope." {
		t.Fatalf("expected duplicate-local error, got %v", errs)
	}
}

func TestGlobalRedeclarationIsAllowed(t *testing.T) {
	_, errs := resolve(t, "var a = 1; var a = 2;")
	if len(errs) != 0 {
		t.Fatalf("expected no errors for global redeclaration, got %v", errs)
	}
}

func TestLocalVariableResolvesToDepthZero(t *testing.T) {
	stmts, errs := resolve(t, "{ var a = 1; a; }")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	block := stmts[0].(*ast.Block)
	es := block.Stmts[1].(*ast.ExprStmt)
	v := es.Expr.(*ast.Variable)
	if v.Resolution == nil || v.Resolution.Depth != 0 {
		t.Fatalf("expected resolution depth 0, got %#v", v.Resolution)
	}
}

func TestGlobalVariableHasNilResolution(t *testing.T) {
	stmts, errs := resolve(t, "var a = 1; fun f() { a; }")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	fn := stmts[1].(*ast.Function)
	es := fn.Body[0].(*ast.ExprStmt)
	v := es.Expr.(*ast.Variable)
	if v.Resolution != nil {
		t.Fatalf("expected nil resolution for global lookup, got %#v", v.Resolution)
	}
}

func TestReturnAtTopLevelIsAnError(t *testing.T) {
	_, errs := resolve(t, "return 1;")
	if len(errs) != 1 || errs[0].Message != "Can't return from top-level code." {
		t.Fatalf("expected top-level return error, got %v", errs)
	}
}

func TestReturnValueFromInitializerIsAnError(t *testing.T) {
	_, errs := resolve(t, "class C { init() { return 1; } }")
	if len(errs) != 1 || errs[0].Message != "Can't return a value from an initializer." {
		t.Fatalf("expected initializer-return error, got %v", errs)
	}
}

func TestBareReturnFromInitializerIsAllowed(t *testing.T) {
	_, errs := resolve(t, "class C { init() { return; } }")
	if len(errs) != 0 {
		t.Fatalf("expected bare return from init to be legal, got %v", errs)
	}
}

func TestSelfInheritanceIsAnError(t *testing.T) {
	_, errs := resolve(t, "class C < C {}")
	if len(errs) != 1 || errs[0].Message != "A class can't inherit from itself." {
		t.Fatalf("expected self-inheritance error, got %v", errs)
	}
}

func TestThisOutsideClassIsAnError(t *testing.T) {
	_, errs := resolve(t, "print this;")
	if len(errs) != 1 || errs[0].Message != "Can't use 'this' outside of a class." {
		t.Fatalf("expected this-outside-class error, got %v", errs)
	}
}

func TestSuperWithoutSuperclassIsAnError(t *testing.T) {
	_, errs := resolve(t, "class C { m() { super.m(); } }")
	if len(errs) != 1 || errs[0].Message != "Can't use 'super' in a class with no superclass." {
		t.Fatalf("expected super-without-superclass error, got %v", errs)
	}
}

func TestSuperOutsideClassIsAnError(t *testing.T) {
	_, errs := resolve(t, "super.m();")
	if len(errs) != 1 || errs[0].Message != "Can't use 'super' outside of a class." {
		t.Fatalf("expected super-outside-class error, got %v", errs)
	}
}

func TestSuperAndThisResolveInSubclassMethod(t *testing.T) {
	stmts, errs := resolve(t, "class A {} class B < A { m() { this; super.m(); } }")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	class := stmts[1].(*ast.Class)
	method := class.Methods[0]
	thisExpr := method.Body[0].(*ast.ExprStmt).Expr.(*ast.This)
	if thisExpr.Resolution == nil {
		t.Fatalf("expected 'this' to resolve, got nil")
	}
	superExpr := method.Body[1].(*ast.ExprStmt).Expr.(*ast.Call).Callee.(*ast.Super)
	if superExpr.Resolution == nil {
		t.Fatalf("expected 'super' to resolve, got nil")
	}
}
