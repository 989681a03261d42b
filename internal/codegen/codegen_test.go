package codegen

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"astgen/internal/ast"
)

func TestRenderDeterminism(t *testing.T) {
	body := ast.NewBlock()
	body.Append(&ast.FunctionReturn{Value: &ast.LiteralInt32{Value: 42}})
	fn := &ast.Function{
		Prototype: &ast.FunctionPrototype{Name: "answer", ReturnType: &ast.Int32Type{}},
		Body:      body,
	}

	gen := NewGenerator()
	first, err := gen.Render(fn)
	require.NoError(t, err)
	second, err := gen.Render(fn)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRenderEmptyBlockEmitsPass(t *testing.T) {
	out, err := NewGenerator().Render(ast.NewBlock())
	require.NoError(t, err)

	assert.Equal(t, "    pass", out)
}

func TestRenderBlockChildOrder(t *testing.T) {
	block := ast.NewBlock()
	block.Append(&ast.VariableAssignment{Name: "a", Value: &ast.LiteralInt32{Value: 1}})
	block.Append(&ast.VariableAssignment{Name: "b", Value: &ast.LiteralInt32{Value: 2}})
	block.Append(&ast.VariableAssignment{Name: "c", Value: &ast.LiteralInt32{Value: 3}})

	out, err := NewGenerator().Render(block)
	require.NoError(t, err)

	expected := strings.Join([]string{
		"    a = 1",
		"    b = 2",
		"    c = 3",
	}, "\n")
	assert.Equal(t, expected, out)
}

func TestRenderUnsupportedConstruct(t *testing.T) {
	// VarDecl has no catalog entry; the failure carries the exact kind.
	decl := &ast.VarDecl{
		Names:    []ast.NameInit{{Name: "x", Init: &ast.LiteralInt32{Value: 1}}},
		TypeName: "int",
		Loc:      ast.SourceLocation{Line: 4, Col: 2},
	}

	_, err := NewGenerator().Render(decl)
	require.Error(t, err)

	var unsupported *UnsupportedConstructError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, ast.VAR_DECL, unsupported.Kind)
	assert.Equal(t, ast.SourceLocation{Line: 4, Col: 2}, unsupported.Loc)
}

func TestRenderUnsupportedConstructInsideBlock(t *testing.T) {
	block := ast.NewBlock()
	block.Append(&ast.VariableAssignment{Name: "a", Value: &ast.LiteralInt32{Value: 1}})
	block.Append(&ast.VarDecl{TypeName: "int"})

	out, err := NewGenerator().Render(block)
	require.Error(t, err)
	assert.Empty(t, out, "no partial output on failure")

	var unsupported *UnsupportedConstructError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, ast.VAR_DECL, unsupported.Kind)
}

func TestRenderFunctionPrototypeDirectlyUnsupported(t *testing.T) {
	// Prototypes only render through the Function rule.
	_, err := NewGenerator().Render(&ast.FunctionPrototype{Name: "f"})

	var unsupported *UnsupportedConstructError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, ast.FUNCTION_PROTOTYPE, unsupported.Kind)
}

func TestRenderMalformedBinaryOp(t *testing.T) {
	node := &ast.BinaryOp{Op: "+", Lhs: &ast.Variable{Name: "x"}}

	_, err := NewGenerator().Render(node)
	require.Error(t, err)

	var malformed *MalformedNodeError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, ast.BINARY_OP, malformed.Kind)
}

func TestRenderNilNode(t *testing.T) {
	_, err := NewGenerator().Render(nil)

	var malformed *MalformedNodeError
	require.ErrorAs(t, err, &malformed)
}

func TestIndentRestoredAfterChildFailure(t *testing.T) {
	gen := NewGenerator()

	// A nested failure must not leak indentation into later renders on
	// the same generator.
	failing := ast.NewBlock()
	inner := ast.NewBlock()
	inner.Append(&ast.VarDecl{TypeName: "int"})
	failing.Append(inner)

	_, err := gen.Render(failing)
	require.Error(t, err)

	block := ast.NewBlock()
	block.Append(&ast.VariableAssignment{Name: "a", Value: &ast.LiteralInt32{Value: 1}})
	out, err := gen.Render(block)
	require.NoError(t, err)
	assert.Equal(t, "    a = 1", out)
}

func TestRegisterExtendsCatalog(t *testing.T) {
	gen := NewGenerator()
	gen.Register(ast.VAR_DECL, func(r *Renderer, node ast.Node) (string, error) {
		decl := node.(*ast.VarDecl)
		parts := make([]string, len(decl.Names))
		for i, ni := range decl.Names {
			init, err := r.Visit(ni.Init)
			if err != nil {
				return "", err
			}
			parts[i] = fmt.Sprintf("%s: %s = %s", ni.Name, decl.TypeName, init)
		}
		return strings.Join(parts, "\n"+r.Indent()), nil
	})

	decl := &ast.VarDecl{
		Names:    []ast.NameInit{{Name: "x", Init: &ast.LiteralInt32{Value: 1}}},
		TypeName: "int",
	}

	out, err := gen.Render(decl)
	require.NoError(t, err)
	assert.Equal(t, "x: int = 1", out)
}

func TestConcurrentRenders(t *testing.T) {
	gen := NewGenerator()

	makeTree := func(name string, value int32) ast.Node {
		body := ast.NewBlock()
		body.Append(&ast.FunctionReturn{Value: &ast.LiteralInt32{Value: value}})
		return &ast.Function{
			Prototype: &ast.FunctionPrototype{Name: name, ReturnType: &ast.Int32Type{}},
			Body:      body,
		}
	}

	treeA := makeTree("first", 1)
	treeB := makeTree("second", 2)

	wantA, err := gen.Render(treeA)
	require.NoError(t, err)
	wantB, err := gen.Render(treeB)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			out, err := gen.Render(treeA)
			assert.NoError(t, err)
			assert.Equal(t, wantA, out)
		}()
		go func() {
			defer wg.Done()
			out, err := gen.Render(treeB)
			assert.NoError(t, err)
			assert.Equal(t, wantB, out)
		}()
	}
	wg.Wait()
}
