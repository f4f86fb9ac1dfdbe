package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/golox/pkg/lox"
	"github.com/spf13/cobra"
)

var evalExpr string

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a Lox file or expression",
	Long: `Execute a Lox program from a file or inline expression. With no file
and no -e flag, starts the interactive prompt (see the repl command).

Examples:
  # Run a script file
  lox run script.lox

  # Evaluate an inline expression
  lox run -e "print 1 + 2;"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline code instead of reading from file")
}

func runScript(_ *cobra.Command, args []string) error {
	var input string

	switch {
	case evalExpr != "":
		input = evalExpr
	case len(args) == 1:
		content, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		input = string(content)
	default:
		return runREPL()
	}

	engine, err := lox.New(lox.WithOutput(os.Stdout))
	if err != nil {
		return err
	}

	result, err := engine.Eval(input)
	if err != nil {
		return err
	}
	if !result.Success {
		fmt.Fprintln(os.Stderr, result.Banner)
		os.Exit(1)
	}
	return nil
}
