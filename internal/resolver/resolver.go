// Package resolver performs the single static pass between parsing and
// evaluation: it fills in the lexical-hop resolution slot on every
// Variable, Assign, This, and Super node, and enforces the scope rules
// that the evaluator assumes already hold. A mutating tree-walk that
// tracks nested scopes and accumulates structured errors, the way a
// type-checking pass would, narrowed here to pure scope resolution with
// no type system.
package resolver

import (
	"github.com/cwbudde/golox/internal/ast"
	"github.com/cwbudde/golox/internal/errors"
	"github.com/cwbudde/golox/internal/lexer"
)

// Error is one recorded resolver fault.
type Error struct {
	Line    int
	Message string
}

func (e Error) Error() string {
	return errors.Line{Line: e.Line, Message: e.Message}.String()
}

type varState int

const (
	absent varState = iota
	declared
	defined
)

type functionType int

const (
	noFunction functionType = iota
	function
	method
	initializer
)

type classType int

const (
	noClass classType = iota
	inClass
	inSubclass
)

// Resolver walks a statement list once, in place, annotating resolution
// slots and collecting scope-rule violations.
type Resolver struct {
	scopes          []map[string]varState
	currentFunction functionType
	currentClass    classType
	errors          []Error
}

// New creates a Resolver ready to process a top-level statement list.
func New() *Resolver {
	return &Resolver{}
}

// Resolve walks stmts and returns the accumulated errors, if any. An empty
// slice means the tree is ready for evaluation.
func (r *Resolver) Resolve(stmts []ast.Stmt) []Error {
	r.resolveStmts(stmts)
	return r.errors
}

func (r *Resolver) errorf(line int, message string) {
	r.errors = append(r.errors, Error{Line: line, Message: message})
}

// --- scope stack ---

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, make(map[string]varState))
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

func (r *Resolver) innermost() map[string]varState {
	if len(r.scopes) == 0 {
		return nil
	}
	return r.scopes[len(r.scopes)-1]
}

// declare inserts name as Declared in the innermost scope. A duplicate
// declaration in the same non-global scope is an error.
func (r *Resolver) declare(name lexer.Token) {
	scope := r.innermost()
	if scope == nil {
		return
	}
	if _, ok := scope[name.Lexeme]; ok {
		r.errorf(name.Line(), "Already a variable with this name in this scope.")
	}
	scope[name.Lexeme] = declared
}

// define upgrades name to Defined in the innermost scope.
func (r *Resolver) define(name string) {
	scope := r.innermost()
	if scope == nil {
		return
	}
	scope[name] = defined
}

// resolveLocal sets res.Depth to the number of frames between the
// innermost scope and the one declaring name, leaving res untouched
// (meaning "global") if no active scope declares it.
func (r *Resolver) resolveLocal(res **ast.Resolution, name string) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name]; ok {
			*res = &ast.Resolution{Depth: len(r.scopes) - 1 - i}
			return
		}
	}
}
