package codegen

import (
	"fmt"

	"astgen/internal/ast"
)

// UnsupportedConstructError reports a node kind the rule catalog has no
// entry for. It is always surfaced to the caller; silently skipping the
// node would corrupt the output.
type UnsupportedConstructError struct {
	Kind ast.Kind
	Loc  ast.SourceLocation
}

func (e *UnsupportedConstructError) Error() string {
	if e.Loc == (ast.SourceLocation{}) {
		return fmt.Sprintf("unsupported construct: no rule for %s", e.Kind)
	}
	return fmt.Sprintf("unsupported construct: no rule for %s at %d:%d",
		e.Kind, e.Loc.Line, e.Loc.Col)
}

// MalformedNodeError reports a node whose required child reference is
// absent. This is a programmer error in tree construction; rendering fails
// fast rather than producing partial text.
type MalformedNodeError struct {
	Kind   ast.Kind
	Loc    ast.SourceLocation
	Detail string
}

func (e *MalformedNodeError) Error() string {
	if e.Loc == (ast.SourceLocation{}) {
		return fmt.Sprintf("malformed %s node: %s", e.Kind, e.Detail)
	}
	return fmt.Sprintf("malformed %s node at %d:%d: %s",
		e.Kind, e.Loc.Line, e.Loc.Col, e.Detail)
}
