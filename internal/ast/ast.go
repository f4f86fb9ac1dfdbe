// Package ast defines the Lox syntax tree: a fixed set of expression and
// statement variants produced by the parser, annotated in place by the
// resolver, and walked by the evaluator.
package ast

import "github.com/cwbudde/golox/internal/lexer"

// Node is the base interface every tree node satisfies.
type Node interface {
	// TokenLiteral returns the lexeme of the token the node is anchored on,
	// mainly useful for debugging and AST dumps.
	TokenLiteral() string

	// Line returns the 1-based source line used in every diagnostic message.
	Line() int
}

// Expr is any node that produces a value when evaluated.
type Expr interface {
	Node
	exprNode()
}

// Stmt is any node that performs an action without itself producing a value.
type Stmt interface {
	Node
	stmtNode()
}

// Resolution is the mutable slot the resolver fills in on every Variable,
// Assign, This, and Super node. A nil Resolution means the name resolves
// through the globals frame; a non-nil one carries the hop count from the
// innermost active frame to the frame that owns the binding.
type Resolution struct {
	Depth int
}

// Program is the parser's top-level output: an ordered list of statements.
type Program struct {
	Stmts []Stmt
}
