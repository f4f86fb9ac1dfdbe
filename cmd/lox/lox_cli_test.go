package main

import (
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tidwall/gjson"
)

// buildLox compiles the CLI binary once per test run into a scratch
// directory, then tests exec it and assert on its output.
func buildLox(t *testing.T) string {
	t.Helper()
	bin := filepath.Join(t.TempDir(), "lox")
	build := exec.Command("go", "build", "-o", bin, ".")
	out, err := build.CombinedOutput()
	if err != nil {
		t.Fatalf("failed to build lox: %v\n%s", err, out)
	}
	return bin
}

func TestRunEvalPrintsValue(t *testing.T) {
	bin := buildLox(t)
	out, err := exec.Command(bin, "run", "-e", `print 1 + 2;`).CombinedOutput()
	if err != nil {
		t.Fatalf("lox run -e failed: %v\n%s", err, out)
	}
	if strings.TrimSpace(string(out)) != "3" {
		t.Fatalf("got %q, want %q", out, "3\n")
	}
}

func TestRunReportsRuntimeErrorAndExitsNonZero(t *testing.T) {
	bin := buildLox(t)
	cmd := exec.Command(bin, "run", "-e", `print "a" - 1;`)
	out, err := cmd.CombinedOutput()
	if err == nil {
		t.Fatalf("expected non-zero exit, got success with output %q", out)
	}
	if !strings.Contains(string(out), "Runtime error:") {
		t.Fatalf("expected a runtime error banner, got %q", out)
	}
}

func TestLexJSONEmitsTokenArray(t *testing.T) {
	bin := buildLox(t)
	out, err := exec.Command(bin, "lex", "--json", "-e", `1 + 2`).CombinedOutput()
	if err != nil {
		t.Fatalf("lox lex --json failed: %v\n%s", err, out)
	}

	doc := string(out)
	tokens := gjson.Get(doc, "#").Int()
	if tokens != 4 {
		t.Fatalf("expected 4 tokens (NUMBER, PLUS, NUMBER, EOF), got %d in %q", tokens, doc)
	}
	if got := gjson.Get(doc, "0.lexeme").String(); got != "1" {
		t.Fatalf("token 0 lexeme = %q, want %q", got, "1")
	}
	if got := gjson.Get(doc, "1.type").String(); got != "PLUS" {
		t.Fatalf("token 1 type = %q, want %q", got, "PLUS")
	}
	if got := gjson.Get(doc, "2.lexeme").String(); got != "2" {
		t.Fatalf("token 2 lexeme = %q, want %q", got, "2")
	}
}

func TestParseJSONEmitsStmtArray(t *testing.T) {
	bin := buildLox(t)
	out, err := exec.Command(bin, "parse", "--json", "-e", `print 1; 2;`).CombinedOutput()
	if err != nil {
		t.Fatalf("lox parse --json failed: %v\n%s", err, out)
	}

	doc := string(out)
	if stmts := gjson.Get(doc, "#").Int(); stmts != 2 {
		t.Fatalf("expected 2 top-level statements, got %d in %q", stmts, doc)
	}
	if got := gjson.Get(doc, "0.kind").String(); got != "print" {
		t.Fatalf("statement 0 kind = %q, want %q", got, "print")
	}
	if got := gjson.Get(doc, "1.kind").String(); got != "expr" {
		t.Fatalf("statement 1 kind = %q, want %q", got, "expr")
	}
}

func TestReplAutoPrintsBareExpression(t *testing.T) {
	bin := buildLox(t)
	cmd := exec.Command(bin, "run")
	cmd.Stdin = strings.NewReader("1 + 2;\nvar x = 5;\nx;\n")
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("lox run (repl) failed: %v\n%s", err, out)
	}
	lines := strings.Split(strings.TrimRight(string(out), "\n"), "\n")
	if len(lines) != 2 || lines[0] != "3" || lines[1] != "5" {
		t.Fatalf("expected bare expressions to echo their value, got %q", out)
	}
}

func TestFmtReformatsStdin(t *testing.T) {
	bin := buildLox(t)
	cmd := exec.Command(bin, "fmt")
	cmd.Stdin = strings.NewReader("var   x=1;print x;")
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("lox fmt failed: %v\n%s", err, out)
	}
	want := "var x = 1;\nprint x;\n"
	if string(out) != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}
