package cmd

import (
	"fmt"

	"github.com/cwbudde/golox/internal/ast"
	"github.com/cwbudde/golox/internal/errors"
	"github.com/cwbudde/golox/internal/lexer"
	"github.com/cwbudde/golox/internal/parser"
	"github.com/spf13/cobra"
	"github.com/tidwall/sjson"
)

var jsonParse bool

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a Lox file or expression and display the syntax tree",
	Long: `Parse a Lox program and print its syntax tree.

Examples:
  # Dump the tree for a script file
  lox parse script.lox

  # Dump the tree for an inline expression
  lox parse -e "1 + 2 * 3;"

  # Emit the tree as JSON instead of an indented dump
  lox parse --json script.lox`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "parse inline code instead of reading from file")
	parseCmd.Flags().BoolVar(&jsonParse, "json", false, "emit the tree as JSON")
}

func runParse(_ *cobra.Command, args []string) error {
	input, _, err := readSource(args)
	if err != nil {
		return err
	}

	tokens, lexErrs := lexer.New(input).ScanTokens()
	if len(lexErrs) > 0 {
		return fmt.Errorf("%s", errors.Banner(errors.ScannerBanner, scanErrLines(lexErrs)))
	}

	stmts, synErrs := parser.New(tokens).Parse()
	if len(synErrs) > 0 {
		return fmt.Errorf("%s", errors.Banner(errors.SyntaxBanner, synErrLines(synErrs)))
	}

	if jsonParse {
		return printStmtsJSON(stmts)
	}
	for _, s := range stmts {
		dumpStmt(s, 0)
	}
	return nil
}

func scanErrLines(errs []lexer.Error) []errors.Line {
	lines := make([]errors.Line, len(errs))
	for i, e := range errs {
		lines[i] = errors.Line{Line: e.Line, Message: e.Message}
	}
	return lines
}

func synErrLines(errs []parser.SyntaxError) []errors.Line {
	lines := make([]errors.Line, len(errs))
	for i, e := range errs {
		lines[i] = errors.Line{Line: e.Line, Message: e.Message}
	}
	return lines
}

func indent(n int) string {
	s := ""
	for i := 0; i < n; i++ {
		s += "  "
	}
	return s
}

func dumpStmt(s ast.Stmt, depth int) {
	pad := indent(depth)
	switch n := s.(type) {
	case *ast.Print:
		fmt.Printf("%sPrint\n", pad)
		dumpExpr(n.Expr, depth+1)
	case *ast.ExprStmt:
		fmt.Printf("%sExprStmt\n", pad)
		dumpExpr(n.Expr, depth+1)
	case *ast.Var:
		fmt.Printf("%sVar %s\n", pad, n.Name.Lexeme)
		if n.Init != nil {
			dumpExpr(n.Init, depth+1)
		}
	case *ast.Block:
		fmt.Printf("%sBlock\n", pad)
		for _, inner := range n.Stmts {
			dumpStmt(inner, depth+1)
		}
	case *ast.If:
		fmt.Printf("%sIf\n", pad)
		dumpExpr(n.Cond, depth+1)
		dumpStmt(n.Then, depth+1)
		if n.Else != nil {
			dumpStmt(n.Else, depth+1)
		}
	case *ast.While:
		fmt.Printf("%sWhile\n", pad)
		dumpExpr(n.Cond, depth+1)
		dumpStmt(n.Body, depth+1)
	case *ast.Function:
		fmt.Printf("%sFunction %s (static=%v)\n", pad, n.Name.Lexeme, n.IsStatic)
		for _, st := range n.Body {
			dumpStmt(st, depth+1)
		}
	case *ast.Return:
		fmt.Printf("%sReturn\n", pad)
		if n.Value != nil {
			dumpExpr(n.Value, depth+1)
		}
	case *ast.Class:
		super := ""
		if n.Superclass != nil {
			super = " < " + n.Superclass.Name.Lexeme
		}
		fmt.Printf("%sClass %s%s\n", pad, n.Name.Lexeme, super)
		for _, m := range n.Methods {
			dumpStmt(m, depth+1)
		}
	default:
		fmt.Printf("%s<unknown statement>\n", pad)
	}
}

func dumpExpr(e ast.Expr, depth int) {
	pad := indent(depth)
	switch n := e.(type) {
	case *ast.Literal:
		fmt.Printf("%sLiteral %v\n", pad, n.Value)
	case *ast.Grouping:
		fmt.Printf("%sGrouping\n", pad)
		dumpExpr(n.Inner, depth+1)
	case *ast.Unary:
		fmt.Printf("%sUnary %s\n", pad, n.Token.Lexeme)
		dumpExpr(n.Right, depth+1)
	case *ast.Binary:
		fmt.Printf("%sBinary %s\n", pad, n.Token.Lexeme)
		dumpExpr(n.Left, depth+1)
		dumpExpr(n.Right, depth+1)
	case *ast.Logical:
		fmt.Printf("%sLogical %s\n", pad, n.Token.Lexeme)
		dumpExpr(n.Left, depth+1)
		dumpExpr(n.Right, depth+1)
	case *ast.Variable:
		fmt.Printf("%sVariable %s%s\n", pad, n.Name.Lexeme, resolutionSuffix(n.Resolution))
	case *ast.Assign:
		fmt.Printf("%sAssign %s%s\n", pad, n.Name.Lexeme, resolutionSuffix(n.Resolution))
		dumpExpr(n.Value, depth+1)
	case *ast.Call:
		fmt.Printf("%sCall\n", pad)
		dumpExpr(n.Callee, depth+1)
		for _, a := range n.Args {
			dumpExpr(a, depth+1)
		}
	case *ast.Get:
		fmt.Printf("%sGet %s\n", pad, n.Name.Lexeme)
		dumpExpr(n.Object, depth+1)
	case *ast.Set:
		fmt.Printf("%sSet %s\n", pad, n.Name.Lexeme)
		dumpExpr(n.Object, depth+1)
		dumpExpr(n.Value, depth+1)
	case *ast.This:
		fmt.Printf("%sThis%s\n", pad, resolutionSuffix(n.Resolution))
	case *ast.Super:
		fmt.Printf("%sSuper %s%s\n", pad, n.Method.Lexeme, resolutionSuffix(n.Resolution))
	case *ast.Lambda:
		fmt.Printf("%sLambda\n", pad)
		for _, st := range n.Body {
			dumpStmt(st, depth+1)
		}
	default:
		fmt.Printf("%s<unknown expression>\n", pad)
	}
}

func resolutionSuffix(r *ast.Resolution) string {
	if r == nil {
		return " (global)"
	}
	return fmt.Sprintf(" (depth=%d)", r.Depth)
}

// printStmtsJSON renders the top-level statement kinds as a flat JSON
// array, mirroring lex's --json output shape rather than a fully
// structural tree — sufficient for scripted smoke checks on output shape.
func printStmtsJSON(stmts []ast.Stmt) error {
	doc := "[]"
	var err error
	for i, s := range stmts {
		prefix := fmt.Sprintf("%d.", i)
		doc, err = sjson.Set(doc, prefix+"kind", stmtKind(s))
		if err != nil {
			return err
		}
		doc, err = sjson.Set(doc, prefix+"line", s.Line())
		if err != nil {
			return err
		}
	}
	fmt.Println(doc)
	return nil
}

func stmtKind(s ast.Stmt) string {
	switch s.(type) {
	case *ast.Print:
		return "print"
	case *ast.ExprStmt:
		return "expr"
	case *ast.Var:
		return "var"
	case *ast.Block:
		return "block"
	case *ast.If:
		return "if"
	case *ast.While:
		return "while"
	case *ast.Function:
		return "function"
	case *ast.Return:
		return "return"
	case *ast.Class:
		return "class"
	default:
		return "unknown"
	}
}
