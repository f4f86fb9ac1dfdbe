package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/golox/internal/lexer"
	"github.com/spf13/cobra"
	"github.com/tidwall/sjson"
)

var (
	showPos bool
	jsonLex bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a Lox file or expression",
	Long: `Tokenize (scan) a Lox program and print the resulting tokens.

Examples:
  # Tokenize a script file
  lox lex script.lox

  # Tokenize an inline expression
  lox lex -e "print 1 + 2;"

  # Emit tokens as a JSON array instead of plain text
  lox lex --json script.lox`,
	Args: cobra.MaximumNArgs(1),
	RunE: lexScript,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "tokenize inline code instead of reading from file")
	lexCmd.Flags().BoolVar(&showPos, "show-pos", false, "show token positions (line:column)")
	lexCmd.Flags().BoolVar(&jsonLex, "json", false, "emit tokens as a JSON array")
}

func lexScript(_ *cobra.Command, args []string) error {
	input, _, err := readSource(args)
	if err != nil {
		return err
	}

	tokens, errs := lexer.New(input).ScanTokens()

	if jsonLex {
		return printTokensJSON(tokens)
	}

	for _, tok := range tokens {
		printToken(tok)
	}

	if len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintf(os.Stderr, "[ line %d ] : %s\n", e.Line, e.Message)
		}
		return fmt.Errorf("found %d scanner error(s)", len(errs))
	}

	return nil
}

func printToken(tok lexer.Token) {
	output := fmt.Sprintf("[%-14s] %q", tok.Type, tok.Lexeme)
	if showPos {
		output += fmt.Sprintf(" @%d:%d", tok.Pos.Line, tok.Pos.Column)
	}
	fmt.Println(output)
}

// printTokensJSON builds a JSON array of {type, lexeme, line} objects using
// sjson's path-set API, one token appended at a time, rather than
// marshaling a Go struct slice — this keeps the wire shape independent of
// the internal Token layout.
func printTokensJSON(tokens []lexer.Token) error {
	doc := "[]"
	var err error
	for i, tok := range tokens {
		prefix := fmt.Sprintf("%d.", i)
		doc, err = sjson.Set(doc, prefix+"type", tok.Type.String())
		if err != nil {
			return err
		}
		doc, err = sjson.Set(doc, prefix+"lexeme", tok.Lexeme)
		if err != nil {
			return err
		}
		doc, err = sjson.Set(doc, prefix+"line", tok.Pos.Line)
		if err != nil {
			return err
		}
	}
	fmt.Println(doc)
	return nil
}

// readSource resolves the common "-e EXPR, or a single file argument, or
// neither" input contract shared by lex and parse.
func readSource(args []string) (input, filename string, err error) {
	switch {
	case evalExpr != "":
		return evalExpr, "<eval>", nil
	case len(args) == 1:
		content, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		return string(content), args[0], nil
	default:
		return "", "", fmt.Errorf("either provide a file path or use -e flag for inline code")
	}
}
