package ast

// Node is implemented by every variant in the program-representation tree.
type Node interface {
	NodeKind() Kind
	NodeLoc() SourceLocation

	// ParentBlock is the enclosing Block, if any. It is a lookup relation
	// maintained by Block.Append, never an ownership edge.
	ParentBlock() *Block
	SetParentBlock(*Block)
}

// SourceLocation tracks where a node came from, for error reporting.
// The zero value means the location is unknown.
type SourceLocation struct {
	Line int
	Col  int
}

// Expr is implemented by nodes that yield a value.
type Expr interface {
	Node
	isExpr()
}

// Stmt is implemented by nodes that stand alone inside a Block.
type Stmt interface {
	Node
	isStmt()
}

// TypeRef is implemented by bare type descriptors used as annotations
// (a parameter type, a return type, a cast target). A TypeRef carries no
// value and is a different dispatch target than the literal of the same
// underlying kind.
type TypeRef interface {
	Node
	isTypeRef()
}
