// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/tliron/commonlog"

	"astgen/internal/ast"
	"astgen/internal/codegen"
	"astgen/internal/report"
)

func main() {
	verbosity := 0
	for _, arg := range os.Args[1:] {
		if arg == "-v" || arg == "--verbose" {
			verbosity = 1
		}
	}
	commonlog.Configure(verbosity, nil)
	log := commonlog.GetLogger("astgen.cli")

	startTime := time.Now()

	nodes := sampleProgram()
	log.Infof("built sample tree with %d top-level nodes", len(nodes))

	gen := codegen.NewGenerator()
	rendered := make([]string, 0, len(nodes))
	for _, node := range nodes {
		text, err := gen.Render(node)
		if err != nil {
			fmt.Print(report.FormatRenderError("sample", err))
			color.Red("Rendering failed after %s", formatDuration(time.Since(startTime)))
			os.Exit(1)
		}
		rendered = append(rendered, text)
	}

	fmt.Println(strings.Join(rendered, "\n\n"))
	color.Green("Successfully rendered sample tree in %s", formatDuration(time.Since(startTime)))
}

// sampleProgram builds a small demonstration tree: an import statement
// followed by an integer add function.
func sampleProgram() []ast.Node {
	imports := &ast.ImportStmt{Names: []*ast.AliasExpr{
		{Name: "math"},
		{Name: "matplotlib", AsName: "mtlb"},
	}}

	body := ast.NewBlock()
	body.Append(&ast.VariableAssignment{
		Name: "result",
		Value: &ast.BinaryOp{
			Op:  "+",
			Lhs: &ast.Variable{Name: "x"},
			Rhs: &ast.Variable{Name: "y"},
			Loc: ast.SourceLocation{Line: 2, Col: 8},
		},
		Loc: ast.SourceLocation{Line: 2, Col: 4},
	})
	body.Append(&ast.FunctionReturn{
		Value: &ast.Variable{Name: "result"},
		Loc:   ast.SourceLocation{Line: 3, Col: 4},
	})

	addFunc := &ast.Function{
		Prototype: &ast.FunctionPrototype{
			Name: "add",
			Args: ast.NewArguments(
				&ast.Argument{Name: "x", Type: &ast.Int32Type{}},
				&ast.Argument{Name: "y", Type: &ast.Int32Type{}},
			),
			ReturnType: &ast.Int32Type{},
		},
		Body: body,
		Loc:  ast.SourceLocation{Line: 1, Col: 0},
	}

	return []ast.Node{imports, addFunc}
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
