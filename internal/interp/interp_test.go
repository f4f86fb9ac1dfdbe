package interp

import (
	"strings"
	"testing"

	"github.com/cwbudde/golox/internal/lexer"
	"github.com/cwbudde/golox/internal/parser"
	"github.com/cwbudde/golox/internal/resolver"
)

// run scans, parses, resolves, and evaluates src, returning everything
// written to the output sink and the first runtime error, if any.
func run(t *testing.T, src string) (string, error) {
	t.Helper()

	tokens, scanErrs := lexer.New(src).ScanTokens()
	if len(scanErrs) != 0 {
		t.Fatalf("unexpected scanner errors: %v", scanErrs)
	}

	stmts, parseErrs := parser.New(tokens).Parse()
	if len(parseErrs) != 0 {
		t.Fatalf("unexpected parse errors: %v", parseErrs)
	}

	if errs := resolver.New().Resolve(stmts); len(errs) != 0 {
		t.Fatalf("unexpected resolver errors: %v", errs)
	}

	var out strings.Builder
	interp := New(&out)
	err := interp.Run(stmts)
	return out.String(), err
}

func TestArithmeticAndPrint(t *testing.T) {
	out, err := run(t, `print 1 + 2 * 3;`)
	if err != nil {
		t.Fatalf("unexpected runtime error: %v", err)
	}
	if out != "7\n" {
		t.Fatalf("got %q, want %q", out, "7\n")
	}
}

func TestStringConcatenation(t *testing.T) {
	out, err := run(t, `print "foo" + "bar";`)
	if err != nil {
		t.Fatalf("unexpected runtime error: %v", err)
	}
	if out != "foobar\n" {
		t.Fatalf("got %q, want %q", out, "foobar\n")
	}
}

func TestClosureCapturesByReference(t *testing.T) {
	src := `
		fun makeCounter() {
			var i = 0;
			fun counter() {
				i = i + 1;
				return i;
			}
			return counter;
		}
		var c = makeCounter();
		print c();
		print c();
		print c();
	`
	out, err := run(t, src)
	if err != nil {
		t.Fatalf("unexpected runtime error: %v", err)
	}
	if out != "1\n2\n3\n" {
		t.Fatalf("got %q, want %q", out, "1\n2\n3\n")
	}
}

func TestClassInstantiationAndInitializer(t *testing.T) {
	out, err := run(t, `class P { init(x) { this.x = x; } } print P(7).x;`)
	if err != nil {
		t.Fatalf("unexpected runtime error: %v", err)
	}
	if out != "7\n" {
		t.Fatalf("got %q, want %q", out, "7\n")
	}
}

func TestInheritanceAndSuperDispatch(t *testing.T) {
	src := `
		class Doughnut {
			cook() {
				print "Fry until golden brown.";
			}
		}
		class BostonCream < Doughnut {
			cook() {
				super.cook();
				print "Pipe full of custard and coat with chocolate.";
			}
		}
		BostonCream().cook();
	`
	out, err := run(t, src)
	if err != nil {
		t.Fatalf("unexpected runtime error: %v", err)
	}
	want := "Fry until golden brown.\nPipe full of custard and coat with chocolate.\n"
	if out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

func TestIncompatibleOperandsIsARuntimeError(t *testing.T) {
	_, err := run(t, `"a" - 1;`)
	if err == nil {
		t.Fatalf("expected a runtime error")
	}
	rt, ok := err.(*RuntimeError)
	if !ok {
		t.Fatalf("expected *RuntimeError, got %T", err)
	}
	if rt.Error() != "[ line 1 ] : Incompatible operands." {
		t.Fatalf("got %q", rt.Error())
	}
}

func TestLogicalOperatorsReturnOperandValues(t *testing.T) {
	out, err := run(t, `print nil or "default"; print 1 and 2;`)
	if err != nil {
		t.Fatalf("unexpected runtime error: %v", err)
	}
	if out != "default\n2\n" {
		t.Fatalf("got %q, want %q", out, "default\n2\n")
	}
}

func TestForLoop(t *testing.T) {
	out, err := run(t, `for (var i = 0; i < 3; i = i + 1) print i;`)
	if err != nil {
		t.Fatalf("unexpected runtime error: %v", err)
	}
	if out != "0\n1\n2\n" {
		t.Fatalf("got %q, want %q", out, "0\n1\n2\n")
	}
}

func TestStaticMethodCallableOnClassWithNoInstance(t *testing.T) {
	out, err := run(t, `class Math { class square(x) { return x * x; } } print Math.square(5);`)
	if err != nil {
		t.Fatalf("unexpected runtime error: %v", err)
	}
	if out != "25\n" {
		t.Fatalf("got %q, want %q", out, "25\n")
	}
}

func TestUndefinedPropertyIsARuntimeError(t *testing.T) {
	_, err := run(t, `class C {} print C().nope;`)
	if err == nil {
		t.Fatalf("expected a runtime error")
	}
	if err.Error() != "[ line 1 ] : Undefined property 'nope'." {
		t.Fatalf("got %q", err.Error())
	}
}

func TestNonCallableValueIsARuntimeError(t *testing.T) {
	_, err := run(t, `var a = 1; a();`)
	if err == nil {
		t.Fatalf("expected a runtime error")
	}
	if err.Error() != "[ line 1 ] : Can only call functions and classes." {
		t.Fatalf("got %q", err.Error())
	}
}

func TestArityMismatchIsARuntimeError(t *testing.T) {
	_, err := run(t, `fun f(a, b) { return a + b; } f(1);`)
	if err == nil {
		t.Fatalf("expected a runtime error")
	}
	if err.Error() != "[ line 1 ] : Expected 2 arguments but got 1." {
		t.Fatalf("got %q", err.Error())
	}
}

func TestLambdaExpressionIsCallable(t *testing.T) {
	out, err := run(t, `var add = fun (a, b) { return a + b; }; print add(2, 3);`)
	if err != nil {
		t.Fatalf("unexpected runtime error: %v", err)
	}
	if out != "5\n" {
		t.Fatalf("got %q, want %q", out, "5\n")
	}
}
