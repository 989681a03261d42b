package ast

// TypeCastExpr converts a source expression to a target type.
// Example: cast(int, x)
type TypeCastExpr struct {
	Loc    SourceLocation
	parent *Block
	Target TypeRef
	Expr   Expr
}
