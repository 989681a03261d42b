// Package report formats render failures for terminal output.
package report

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"

	"astgen/internal/ast"
	"astgen/internal/codegen"
)

// Level is the severity of a reported message.
type Level string

const (
	Error Level = "error"
	Note  Level = "note"
)

// FormatRenderError renders a codegen failure the way a compiler would
// report it: a colored level header, the offending node kind, and a
// location arrow when the node carries one.
func FormatRenderError(treeName string, err error) string {
	var result strings.Builder

	levelColor := color.New(color.FgRed, color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()
	noteColor := color.New(color.FgBlue).SprintFunc()

	var unsupported *codegen.UnsupportedConstructError
	var malformed *codegen.MalformedNodeError

	switch {
	case errors.As(err, &unsupported):
		result.WriteString(fmt.Sprintf("%s: no rule for node kind %s\n",
			levelColor(string(Error)), unsupported.Kind))
		writeLocation(&result, dim, treeName, unsupported.Loc)
		result.WriteString(fmt.Sprintf("  %s the rule catalog is total over supported kinds; register a rule for %s or remove the node\n",
			noteColor("note:"), unsupported.Kind))
	case errors.As(err, &malformed):
		result.WriteString(fmt.Sprintf("%s: malformed %s node: %s\n",
			levelColor(string(Error)), malformed.Kind, malformed.Detail))
		writeLocation(&result, dim, treeName, malformed.Loc)
	default:
		result.WriteString(fmt.Sprintf("%s: %v\n", levelColor(string(Error)), err))
	}

	return result.String()
}

func writeLocation(b *strings.Builder, dim func(...interface{}) string, treeName string, loc ast.SourceLocation) {
	if loc == (ast.SourceLocation{}) {
		return
	}
	b.WriteString(fmt.Sprintf("  %s %s:%d:%d\n", dim("-->"), treeName, loc.Line, loc.Col))
}
