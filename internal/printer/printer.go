// Package printer re-serializes a parsed Lox syntax tree back to source
// text in one canonical style: two-space indentation, one statement per
// line, no configurable style variants.
package printer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cwbudde/golox/internal/ast"
	"github.com/cwbudde/golox/internal/lexer"
)

const indentUnit = "  "

// Print formats a full program (a statement list) as Lox source text.
func Print(stmts []ast.Stmt) string {
	var b strings.Builder
	for _, s := range stmts {
		writeStmt(&b, s, 0)
	}
	return b.String()
}

func writeIndent(b *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		b.WriteString(indentUnit)
	}
}

func writeStmt(b *strings.Builder, s ast.Stmt, depth int) {
	writeIndent(b, depth)
	switch n := s.(type) {
	case *ast.Print:
		fmt.Fprintf(b, "print %s;\n", printExpr(n.Expr))
	case *ast.ExprStmt:
		fmt.Fprintf(b, "%s;\n", printExpr(n.Expr))
	case *ast.Var:
		if n.Init != nil {
			fmt.Fprintf(b, "var %s = %s;\n", n.Name.Lexeme, printExpr(n.Init))
		} else {
			fmt.Fprintf(b, "var %s;\n", n.Name.Lexeme)
		}
	case *ast.Block:
		b.WriteString("{\n")
		for _, inner := range n.Stmts {
			writeStmt(b, inner, depth+1)
		}
		writeIndent(b, depth)
		b.WriteString("}\n")
	case *ast.If:
		fmt.Fprintf(b, "if (%s) ", printExpr(n.Cond))
		writeInlineBlockOrStmt(b, n.Then, depth)
		if n.Else != nil {
			writeIndent(b, depth)
			b.WriteString("else ")
			writeInlineBlockOrStmt(b, n.Else, depth)
		}
	case *ast.While:
		fmt.Fprintf(b, "while (%s) ", printExpr(n.Cond))
		writeInlineBlockOrStmt(b, n.Body, depth)
	case *ast.Function:
		prefix := ""
		if n.IsStatic {
			prefix = "class "
		}
		fmt.Fprintf(b, "%sfun %s(%s) {\n", prefix, n.Name.Lexeme, joinParams(n.Params))
		for _, st := range n.Body {
			writeStmt(b, st, depth+1)
		}
		writeIndent(b, depth)
		b.WriteString("}\n")
	case *ast.Return:
		if n.Value != nil {
			fmt.Fprintf(b, "return %s;\n", printExpr(n.Value))
		} else {
			b.WriteString("return;\n")
		}
	case *ast.Class:
		super := ""
		if n.Superclass != nil {
			super = " < " + n.Superclass.Name.Lexeme
		}
		fmt.Fprintf(b, "class %s%s {\n", n.Name.Lexeme, super)
		for _, m := range n.Methods {
			writeIndent(b, depth+1)
			if m.IsStatic {
				b.WriteString("class ")
			}
			fmt.Fprintf(b, "%s(%s) {\n", m.Name.Lexeme, joinParams(m.Params))
			for _, st := range m.Body {
				writeStmt(b, st, depth+2)
			}
			writeIndent(b, depth+1)
			b.WriteString("}\n")
		}
		writeIndent(b, depth)
		b.WriteString("}\n")
	default:
		fmt.Fprintf(b, "/* unknown statement %T */\n", s)
	}
}

// writeInlineBlockOrStmt prints a block in place, or a single non-block
// statement on its own indented line — a block is just one kind of
// statement, so `if`/`while` bodies take either shape.
func writeInlineBlockOrStmt(b *strings.Builder, s ast.Stmt, depth int) {
	if blk, ok := s.(*ast.Block); ok {
		b.WriteString("{\n")
		for _, inner := range blk.Stmts {
			writeStmt(b, inner, depth+1)
		}
		writeIndent(b, depth)
		b.WriteString("}\n")
		return
	}
	b.WriteString("\n")
	writeStmt(b, s, depth+1)
}

func joinParams(params []lexer.Token) string {
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = p.Lexeme
	}
	return strings.Join(names, ", ")
}

func printExpr(e ast.Expr) string {
	switch n := e.(type) {
	case *ast.Literal:
		return literalString(n.Value)
	case *ast.Grouping:
		return "(" + printExpr(n.Inner) + ")"
	case *ast.Unary:
		return n.Token.Lexeme + printExpr(n.Right)
	case *ast.Binary:
		return fmt.Sprintf("%s %s %s", printExpr(n.Left), n.Token.Lexeme, printExpr(n.Right))
	case *ast.Logical:
		return fmt.Sprintf("%s %s %s", printExpr(n.Left), n.Token.Lexeme, printExpr(n.Right))
	case *ast.Variable:
		return n.Name.Lexeme
	case *ast.Assign:
		return fmt.Sprintf("%s = %s", n.Name.Lexeme, printExpr(n.Value))
	case *ast.Call:
		args := make([]string, len(n.Args))
		for i, a := range n.Args {
			args[i] = printExpr(a)
		}
		return fmt.Sprintf("%s(%s)", printExpr(n.Callee), strings.Join(args, ", "))
	case *ast.Get:
		return printExpr(n.Object) + "." + n.Name.Lexeme
	case *ast.Set:
		return fmt.Sprintf("%s.%s = %s", printExpr(n.Object), n.Name.Lexeme, printExpr(n.Value))
	case *ast.This:
		return "this"
	case *ast.Super:
		return "super." + n.Method.Lexeme
	case *ast.Lambda:
		var body strings.Builder
		for _, st := range n.Body {
			writeStmt(&body, st, 0)
		}
		inline := strings.TrimSpace(strings.ReplaceAll(body.String(), "\n", " "))
		if inline == "" {
			return fmt.Sprintf("fun (%s) {}", joinParams(n.Params))
		}
		return fmt.Sprintf("fun (%s) { %s }", joinParams(n.Params), inline)
	default:
		return fmt.Sprintf("/* unknown expr %T */", e)
	}
}

func literalString(v any) string {
	switch val := v.(type) {
	case nil:
		return "nil"
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case string:
		return `"` + val + `"`
	default:
		return fmt.Sprintf("%v", val)
	}
}
