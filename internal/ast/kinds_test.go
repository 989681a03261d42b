package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindStrings(t *testing.T) {
	kinds := []Kind{
		ILLEGAL,
		BLOCK,
		BOOLEAN_TYPE,
		INT32_TYPE,
		FLOAT16_TYPE,
		FLOAT32_TYPE,
		FLOAT64_TYPE,
		COMPLEX32_TYPE,
		COMPLEX64_TYPE,
		UTF8_STRING_TYPE,
		UTF8_CHAR_TYPE,
		LITERAL_BOOLEAN,
		LITERAL_INT32,
		LITERAL_FLOAT16,
		LITERAL_FLOAT32,
		LITERAL_FLOAT64,
		LITERAL_COMPLEX32,
		LITERAL_COMPLEX64,
		LITERAL_UTF8_STRING,
		LITERAL_UTF8_CHAR,
		BINARY_OP,
		UNARY_OP,
		VARIABLE,
		VAR_DECL,
		VARIABLE_ASSIGNMENT,
		ARGUMENT,
		ARGUMENTS,
		FUNCTION_PROTOTYPE,
		FUNCTION,
		FUNCTION_RETURN,
		LAMBDA_EXPR,
		IF_STMT,
		IF_EXPR,
		WHILE_STMT,
		WHILE_EXPR,
		FOR_RANGE_LOOP_EXPR,
		ALIAS_EXPR,
		IMPORT_STMT,
		IMPORT_FROM_STMT,
		IMPORT_EXPR,
		IMPORT_FROM_EXPR,
		TYPE_CAST_EXPR,
	}

	seen := make(map[string]bool)
	for _, kind := range kinds {
		str := kind.String()
		assert.NotEmpty(t, str)
		assert.False(t, seen[str], "duplicate kind name %q", str)
		seen[str] = true
	}
}

func TestKindStringOutOfRange(t *testing.T) {
	assert.Equal(t, "ILLEGAL", Kind(-1).String())
	assert.Equal(t, "ILLEGAL", Kind(10000).String())
}

func TestNodeKindMatchesVariant(t *testing.T) {
	cases := []struct {
		node Node
		kind Kind
	}{
		{NewBlock(), BLOCK},
		{&Int32Type{}, INT32_TYPE},
		{&LiteralInt32{Value: 1}, LITERAL_INT32},
		{&LiteralComplex64{Real: 1, Imag: 2}, LITERAL_COMPLEX64},
		{&BinaryOp{}, BINARY_OP},
		{&VarDecl{}, VAR_DECL},
		{&FunctionPrototype{}, FUNCTION_PROTOTYPE},
		{&LambdaExpr{}, LAMBDA_EXPR},
		{&ImportFromExpr{}, IMPORT_FROM_EXPR},
		{&TypeCastExpr{}, TYPE_CAST_EXPR},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.kind, tc.node.NodeKind())
	}
}

func TestNodeLocDefaultsToUnknown(t *testing.T) {
	node := &Variable{Name: "x"}
	assert.Equal(t, SourceLocation{}, node.NodeLoc())

	located := &Variable{Name: "y", Loc: SourceLocation{Line: 3, Col: 7}}
	assert.Equal(t, SourceLocation{Line: 3, Col: 7}, located.NodeLoc())
}
