package ast

// Kind discriminates the node variants. Every concrete node type maps to
// exactly one Kind, so a renderer can dispatch on the tag alone.
type Kind int

const (
	// Special / error
	ILLEGAL Kind = iota

	// Containers
	BLOCK

	// Type descriptors (annotations, not values)
	BOOLEAN_TYPE
	INT32_TYPE
	FLOAT16_TYPE
	FLOAT32_TYPE
	FLOAT64_TYPE
	COMPLEX32_TYPE
	COMPLEX64_TYPE
	UTF8_STRING_TYPE
	UTF8_CHAR_TYPE

	// Literals
	LITERAL_BOOLEAN
	LITERAL_INT32
	LITERAL_FLOAT16
	LITERAL_FLOAT32
	LITERAL_FLOAT64
	LITERAL_COMPLEX32
	LITERAL_COMPLEX64
	LITERAL_UTF8_STRING
	LITERAL_UTF8_CHAR

	// Operators
	BINARY_OP
	UNARY_OP

	// Variables
	VARIABLE
	VAR_DECL
	VARIABLE_ASSIGNMENT

	// Functions
	ARGUMENT
	ARGUMENTS
	FUNCTION_PROTOTYPE
	FUNCTION
	FUNCTION_RETURN
	LAMBDA_EXPR

	// Control flow
	IF_STMT
	IF_EXPR
	WHILE_STMT
	WHILE_EXPR
	FOR_RANGE_LOOP_EXPR

	// Imports
	ALIAS_EXPR
	IMPORT_STMT
	IMPORT_FROM_STMT
	IMPORT_EXPR
	IMPORT_FROM_EXPR

	// Casts
	TYPE_CAST_EXPR
)

var kindNames = [...]string{
	ILLEGAL:             "ILLEGAL",
	BLOCK:               "BLOCK",
	BOOLEAN_TYPE:        "BOOLEAN_TYPE",
	INT32_TYPE:          "INT32_TYPE",
	FLOAT16_TYPE:        "FLOAT16_TYPE",
	FLOAT32_TYPE:        "FLOAT32_TYPE",
	FLOAT64_TYPE:        "FLOAT64_TYPE",
	COMPLEX32_TYPE:      "COMPLEX32_TYPE",
	COMPLEX64_TYPE:      "COMPLEX64_TYPE",
	UTF8_STRING_TYPE:    "UTF8_STRING_TYPE",
	UTF8_CHAR_TYPE:      "UTF8_CHAR_TYPE",
	LITERAL_BOOLEAN:     "LITERAL_BOOLEAN",
	LITERAL_INT32:       "LITERAL_INT32",
	LITERAL_FLOAT16:     "LITERAL_FLOAT16",
	LITERAL_FLOAT32:     "LITERAL_FLOAT32",
	LITERAL_FLOAT64:     "LITERAL_FLOAT64",
	LITERAL_COMPLEX32:   "LITERAL_COMPLEX32",
	LITERAL_COMPLEX64:   "LITERAL_COMPLEX64",
	LITERAL_UTF8_STRING: "LITERAL_UTF8_STRING",
	LITERAL_UTF8_CHAR:   "LITERAL_UTF8_CHAR",
	BINARY_OP:           "BINARY_OP",
	UNARY_OP:            "UNARY_OP",
	VARIABLE:            "VARIABLE",
	VAR_DECL:            "VAR_DECL",
	VARIABLE_ASSIGNMENT: "VARIABLE_ASSIGNMENT",
	ARGUMENT:            "ARGUMENT",
	ARGUMENTS:           "ARGUMENTS",
	FUNCTION_PROTOTYPE:  "FUNCTION_PROTOTYPE",
	FUNCTION:            "FUNCTION",
	FUNCTION_RETURN:     "FUNCTION_RETURN",
	LAMBDA_EXPR:         "LAMBDA_EXPR",
	IF_STMT:             "IF_STMT",
	IF_EXPR:             "IF_EXPR",
	WHILE_STMT:          "WHILE_STMT",
	WHILE_EXPR:          "WHILE_EXPR",
	FOR_RANGE_LOOP_EXPR: "FOR_RANGE_LOOP_EXPR",
	ALIAS_EXPR:          "ALIAS_EXPR",
	IMPORT_STMT:         "IMPORT_STMT",
	IMPORT_FROM_STMT:    "IMPORT_FROM_STMT",
	IMPORT_EXPR:         "IMPORT_EXPR",
	IMPORT_FROM_EXPR:    "IMPORT_FROM_EXPR",
	TYPE_CAST_EXPR:      "TYPE_CAST_EXPR",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) || kindNames[k] == "" {
		return "ILLEGAL"
	}
	return kindNames[k]
}
