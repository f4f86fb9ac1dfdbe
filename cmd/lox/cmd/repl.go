package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/cwbudde/golox/internal/ast"
	"github.com/cwbudde/golox/internal/config"
	"github.com/cwbudde/golox/internal/lexer"
	"github.com/cwbudde/golox/pkg/lox"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive prompt",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runREPL()
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}

const (
	ansiRed   = "\x1b[31m"
	ansiReset = "\x1b[0m"
)

// runREPL implements the interactive prompt: read a line, append it to
// history (adjacent duplicates collapsed), execute it through a shared
// Engine, and loop until EOF or interrupt. An error surfaced during one
// line's execution is reported but does not end the session.
func runREPL() error {
	cfg := config.Load()
	interactive := isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	color := cfg.Color && interactive

	prompt := "> "
	if !interactive {
		prompt = ""
	}

	engine, err := lox.New(lox.WithOutput(os.Stdout))
	if err != nil {
		return err
	}

	history := loadHistory(cfg.HistoryFile)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		if prompt != "" {
			fmt.Fprint(os.Stdout, prompt)
		}

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return err
			}
			fmt.Fprintln(os.Stdout)
			saveHistory(cfg.HistoryFile, history, cfg.MaxHistory)
			return nil
		}

		line := scanner.Text()
		if line == "" {
			continue
		}

		if len(history) == 0 || history[len(history)-1] != line {
			history = append(history, line)
		}

		result, err := evalREPLLine(engine, line)
		if err != nil {
			printREPLError(err.Error(), color)
			continue
		}
		if !result.Success {
			printREPLError(result.Banner, color)
		}
	}
}

// evalREPLLine compiles and runs one line, echoing the value of a lone bare
// expression statement the way the value would print at a conventional Lox
// prompt. A line that parses to anything else (a declaration, a block, more
// than one statement) runs exactly as it would in file mode.
func evalREPLLine(engine *lox.Engine, line string) (*lox.Result, error) {
	stmts, err := engine.Compile(line)
	if err != nil {
		return &lox.Result{Success: false, Banner: err.Error()}, nil
	}

	if len(stmts) == 1 {
		if expr, ok := stmts[0].(*ast.ExprStmt); ok {
			stmts = []ast.Stmt{&ast.Print{
				Token: lexer.Token{Pos: lexer.Position{Line: expr.Line()}},
				Expr:  expr.Expr,
			}}
		}
	}

	return engine.Run(stmts), nil
}

func printREPLError(msg string, color bool) {
	if color {
		fmt.Fprintln(os.Stderr, ansiRed+msg+ansiReset)
		return
	}
	fmt.Fprintln(os.Stderr, msg)
}

func loadHistory(path string) []string {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) == 1 && lines[0] == "" {
		return nil
	}
	return lines
}

func saveHistory(path string, history []string, maxHistory int) {
	if path == "" || len(history) == 0 {
		return
	}
	if maxHistory > 0 && len(history) > maxHistory {
		history = history[len(history)-maxHistory:]
	}
	_ = os.WriteFile(path, []byte(strings.Join(history, "\n")+"\n"), 0o644)
}
