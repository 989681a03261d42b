package ast

// Variable is a use of a named variable. The declared type and the carried
// value node are lookup data for collaborators; only the name appears in
// rendered output.
type Variable struct {
	Loc    SourceLocation
	parent *Block
	Name   string
	Type   TypeRef
	Value  Node
}

// NameInit pairs a declared name with its initializer expression.
type NameInit struct {
	Name string
	Init Expr
}

// VarDecl declares one or more named variables of a shared type inside a
// scope. Scope references the Block into which the declared names are
// visible; it is a lookup relation, never traversed upward for ownership.
type VarDecl struct {
	Loc      SourceLocation
	parent   *Block
	Names    []NameInit
	TypeName string
	Scope    *Block
}

// VariableAssignment assigns a value expression to a target name.
// Example: result = (x + y)
type VariableAssignment struct {
	Loc    SourceLocation
	parent *Block
	Name   string
	Value  Expr
}
