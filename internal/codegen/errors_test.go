package codegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"astgen/internal/ast"
)

func TestUnsupportedConstructErrorMessage(t *testing.T) {
	err := &UnsupportedConstructError{
		Kind: ast.VAR_DECL,
		Loc:  ast.SourceLocation{Line: 3, Col: 9},
	}

	assert.Contains(t, err.Error(), "VAR_DECL")
	assert.Contains(t, err.Error(), "3:9")
}

func TestUnsupportedConstructErrorNoLocation(t *testing.T) {
	err := &UnsupportedConstructError{Kind: ast.VAR_DECL}

	assert.Contains(t, err.Error(), "VAR_DECL")
	assert.NotContains(t, err.Error(), "at ")
}

func TestMalformedNodeErrorMessage(t *testing.T) {
	err := &MalformedNodeError{
		Kind:   ast.BINARY_OP,
		Loc:    ast.SourceLocation{Line: 2, Col: 8},
		Detail: "missing operand",
	}

	assert.Contains(t, err.Error(), "BINARY_OP")
	assert.Contains(t, err.Error(), "2:8")
	assert.Contains(t, err.Error(), "missing operand")
}
