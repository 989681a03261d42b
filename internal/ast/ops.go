package ast

// BinaryOp applies an operator symbol to two operand sub-nodes.
// Example: (x + y)
type BinaryOp struct {
	Loc    SourceLocation
	parent *Block
	Op     string
	Lhs    Expr
	Rhs    Expr
}

// UnaryOp applies an operator symbol to a single operand.
// Example: (-x)
type UnaryOp struct {
	Loc     SourceLocation
	parent  *Block
	Op      string
	Operand Expr
}
