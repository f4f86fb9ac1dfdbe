package printer_test

import (
	"strings"
	"testing"

	"github.com/cwbudde/golox/internal/lexer"
	"github.com/cwbudde/golox/internal/parser"
	"github.com/cwbudde/golox/internal/printer"
)

func TestPrintRoundTripsVarAndPrint(t *testing.T) {
	tokens, _ := lexer.New(`var x = 1; print x;`).ScanTokens()
	stmts, _ := parser.New(tokens).Parse()
	got := printer.Print(stmts)
	want := "var x = 1;\nprint x;\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestPrintFormatsClassWithMethods(t *testing.T) {
	tokens, _ := lexer.New(`class Greeter { greet() { print "hi"; } }`).ScanTokens()
	stmts, _ := parser.New(tokens).Parse()
	got := printer.Print(stmts)
	if !strings.Contains(got, "class Greeter {") || !strings.Contains(got, "\n  greet() {") {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestPrintRoundTripsLambda(t *testing.T) {
	tokens, _ := lexer.New(`var add = fun (a, b) { return a + b; };`).ScanTokens()
	stmts, _ := parser.New(tokens).Parse()
	once := printer.Print(stmts)

	tokens2, _ := lexer.New(once).ScanTokens()
	stmts2, errs := parser.New(tokens2).Parse()
	if len(errs) > 0 {
		t.Fatalf("formatted lambda failed to re-parse: %v\ngot: %q", errs, once)
	}
	twice := printer.Print(stmts2)
	if once != twice {
		t.Fatalf("lambda formatting is not idempotent:\nfirst:  %q\nsecond: %q", once, twice)
	}
}

func TestPrintIsIdempotent(t *testing.T) {
	tokens, _ := lexer.New(`if (true) { print 1; } else { print 2; }`).ScanTokens()
	stmts, _ := parser.New(tokens).Parse()
	once := printer.Print(stmts)

	tokens2, _ := lexer.New(once).ScanTokens()
	stmts2, errs := parser.New(tokens2).Parse()
	if len(errs) > 0 {
		t.Fatalf("formatted output failed to re-parse: %v", errs)
	}
	twice := printer.Print(stmts2)
	if once != twice {
		t.Fatalf("formatting is not idempotent:\nfirst:  %q\nsecond: %q", once, twice)
	}
}
