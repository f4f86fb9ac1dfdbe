// Package errors renders the four user-visible error banners produced by
// the scanning, parsing, resolving, and evaluating phases into one wire
// format: `[ line N ] : MESSAGE`, grouped under a `Scanner error(s):`,
// `Syntax error(s):`, `Resolver error(s):`, or `Runtime error:` header.
// Flat and line-only — no source-line/caret rendering; the CLI prints this
// same format.
package errors

import (
	"fmt"
	"strings"
)

// Line is any recorded fault that carries a source line and a message. The
// scanner's Error, the parser's SyntaxError, and the resolver's Error all
// satisfy it structurally.
type Line struct {
	Line    int
	Message string
}

func (e Line) String() string {
	return fmt.Sprintf("[ line %d ] : %s", e.Line, e.Message)
}

// Banner renders one or more Lines under the given header, one per line.
// Scanner, Syntax, and Resolver errors are all reported this way: accumulate
// every fault across the source, then print the batch at once.
func Banner(header string, lines []Line) string {
	if len(lines) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(header)
	sb.WriteString("\n")
	for i, l := range lines {
		sb.WriteString(l.String())
		if i < len(lines)-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

const (
	ScannerBanner  = "Scanner error(s):"
	SyntaxBanner   = "Syntax error(s):"
	ResolverBanner = "Resolver error(s):"
	RuntimeBanner  = "Runtime error:"
)

// Runtime renders the single fatal fault reported during evaluation.
// Unlike the other three phases it is never a batch — evaluation stops at
// the first one.
func Runtime(line int, message string) string {
	return fmt.Sprintf("%s %s", RuntimeBanner, Line{Line: line, Message: message}.String())
}
