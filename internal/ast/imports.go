package ast

// AliasExpr is an imported name with an optional rename.
// Example: matplotlib as mtlb
type AliasExpr struct {
	Loc    SourceLocation
	parent *Block
	Name   string
	AsName string
}

// ImportStmt imports one or more aliases as a statement.
// Example: import math, matplotlib as mtlb
type ImportStmt struct {
	Loc    SourceLocation
	parent *Block
	Names  []*AliasExpr
}

// ImportFromStmt imports aliases from a module as a statement. Level is
// the number of leading path-ascent markers for relative imports; Module
// may be empty for purely relative imports.
// Example: from .utils import helper
type ImportFromStmt struct {
	Loc    SourceLocation
	parent *Block
	Module string
	Names  []*AliasExpr
	Level  int
}

// ImportExpr is the expression form of an import. The target text has no
// import statement usable as an expression, so rendering materializes the
// import as explicit dynamic-import calls assigned to synthesized local
// names, one per alias, tupled when there are several.
type ImportExpr struct {
	Loc    SourceLocation
	parent *Block
	Names  []*AliasExpr
}

// ImportFromExpr is the expression form of a from-import, materialized the
// same way as ImportExpr but resolving each alias out of the module.
type ImportFromExpr struct {
	Loc    SourceLocation
	parent *Block
	Module string
	Names  []*AliasExpr
	Level  int
}
