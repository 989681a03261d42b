package ast

// Control-flow constructs come in two forms: a statement form whose
// branches are Blocks rendered as indented lines, and an expression form
// whose branches are single expressions rendered inline. They are distinct
// node kinds; a renderer never infers one from the other.

// IfStmt is the statement form of a conditional. Else may be nil.
type IfStmt struct {
	Loc    SourceLocation
	parent *Block
	Cond   Expr
	Then   *Block
	Else   *Block
}

// IfExpr is the inline conditional expression. Else may be nil, in which
// case the else clause is omitted.
type IfExpr struct {
	Loc    SourceLocation
	parent *Block
	Cond   Expr
	Then   Expr
	Else   Expr
}

// WhileStmt is the statement form of a condition-driven loop.
type WhileStmt struct {
	Loc    SourceLocation
	parent *Block
	Cond   Expr
	Body   *Block
}

// WhileExpr is the expression form of a condition-driven loop, rendered as
// a lazy sequence comprehension driven by the condition.
type WhileExpr struct {
	Loc    SourceLocation
	parent *Block
	Cond   Expr
	Body   Expr
}

// ForRangeLoopExpr is an inline comprehension over a start/end/step range.
type ForRangeLoopExpr struct {
	Loc      SourceLocation
	parent   *Block
	Variable *Variable
	Start    Expr
	End      Expr
	Step     Expr
	Body     Expr
}
