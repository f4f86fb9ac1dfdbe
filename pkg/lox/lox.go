// Package lox is the embeddable front door to the interpreter: scan, parse,
// resolve, and evaluate a script against a configurable output sink,
// without requiring a caller to wire internal/lexer, internal/parser,
// internal/resolver, and internal/interp together by hand.
//
// The surface is deliberately small — New(options...) (*Engine, error),
// Engine.Eval, Engine.SetOutput, functional With* options — with no
// bytecode compile mode, FFI registration, or type-checking toggle: a
// tree-walking Lox engine has no module system or host-function boundary
// for those to serve.
package lox

import (
	"fmt"
	"io"
	"os"

	"github.com/cwbudde/golox/internal/ast"
	"github.com/cwbudde/golox/internal/errors"
	"github.com/cwbudde/golox/internal/interp"
	"github.com/cwbudde/golox/internal/lexer"
	"github.com/cwbudde/golox/internal/parser"
	"github.com/cwbudde/golox/internal/resolver"
)

// Engine holds the state shared by every Eval/Run call against it: the
// output sink and a single long-lived Interpreter, so globals defined by
// one Run call (a REPL line, say) are visible to the next.
type Engine struct {
	out         io.Writer
	interpreter *interp.Interpreter
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithOutput directs `print` output to w instead of the default os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(e *Engine) { e.out = w }
}

// New creates an Engine ready to Eval or Run scripts.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{out: os.Stdout}
	for _, opt := range opts {
		opt(e)
	}
	e.interpreter = interp.New(e.out)
	return e, nil
}

// SetOutput redirects `print` output after construction.
func (e *Engine) SetOutput(w io.Writer) {
	e.out = w
	e.interpreter.Out = w
}

// Result reports the outcome of one Eval/Run call. Success is false if any
// phase reported an error; Banner is the fully formatted, ready-to-print
// rendering of whatever went wrong.
type Result struct {
	Success bool
	Banner  string
}

// Compile scans, parses, and resolves src without evaluating it, returning
// the resolved statement tree for inspection or reuse across multiple Run
// calls. A non-nil error's message is already banner-formatted.
func (e *Engine) Compile(src string) ([]ast.Stmt, error) {
	tokens, scanErrs := lexer.New(src).ScanTokens()
	if len(scanErrs) != 0 {
		return nil, fmt.Errorf("%s", errors.Banner(errors.ScannerBanner, scannerLines(scanErrs)))
	}

	stmts, parseErrs := parser.New(tokens).Parse()
	if len(parseErrs) != 0 {
		return nil, fmt.Errorf("%s", errors.Banner(errors.SyntaxBanner, syntaxLines(parseErrs)))
	}

	if resolveErrs := resolver.New().Resolve(stmts); len(resolveErrs) != 0 {
		return nil, fmt.Errorf("%s", errors.Banner(errors.ResolverBanner, resolverLines(resolveErrs)))
	}

	return stmts, nil
}

// Run evaluates an already-resolved statement tree (from Compile) against
// this Engine's shared Interpreter, so top-level variables, functions, and
// classes it defines stay visible to later Compile/Run calls on e.
func (e *Engine) Run(stmts []ast.Stmt) *Result {
	if err := e.interpreter.Run(stmts); err != nil {
		banner := fmt.Sprintf("%s %s", errors.RuntimeBanner, err.Error())
		return &Result{Success: false, Banner: banner}
	}
	return &Result{Success: true}
}

// Eval compiles and runs src in one step. It is the common case: a single
// script, evaluated once.
func (e *Engine) Eval(src string) (*Result, error) {
	stmts, err := e.Compile(src)
	if err != nil {
		return &Result{Success: false, Banner: err.Error()}, nil
	}
	return e.Run(stmts), nil
}

func scannerLines(errs []lexer.Error) []errors.Line {
	lines := make([]errors.Line, len(errs))
	for i, er := range errs {
		lines[i] = errors.Line{Line: er.Line, Message: er.Message}
	}
	return lines
}

func syntaxLines(errs []parser.SyntaxError) []errors.Line {
	lines := make([]errors.Line, len(errs))
	for i, er := range errs {
		lines[i] = errors.Line{Line: er.Line, Message: er.Message}
	}
	return lines
}

func resolverLines(errs []resolver.Error) []errors.Line {
	lines := make([]errors.Line, len(errs))
	for i, er := range errs {
		lines[i] = errors.Line{Line: er.Line, Message: er.Message}
	}
	return lines
}
