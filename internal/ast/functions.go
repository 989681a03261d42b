package ast

// Argument is a single function parameter: a name plus a type reference.
// Example: x: int
type Argument struct {
	Loc    SourceLocation
	parent *Block
	Name   string
	Type   TypeRef
}

// Arguments is the ordered parameter list of a prototype or lambda.
type Arguments struct {
	Loc    SourceLocation
	parent *Block
	Args   []*Argument
}

// NewArguments builds a parameter list from the given arguments in order.
func NewArguments(args ...*Argument) *Arguments {
	return &Arguments{Args: args}
}

// Append adds a parameter to the end of the list.
func (a *Arguments) Append(arg *Argument) {
	a.Args = append(a.Args, arg)
}

// FunctionPrototype is a function's signature: name, ordered parameters,
// and an optional return type.
type FunctionPrototype struct {
	Loc        SourceLocation
	parent     *Block
	Name       string
	Args       *Arguments
	ReturnType TypeRef
}

// Function binds a prototype to a body Block.
// Example:
//
//	def add(x: int, y: int) -> int:
//	    return (x + y)
type Function struct {
	Loc       SourceLocation
	parent    *Block
	Prototype *FunctionPrototype
	Body      *Block
}

// FunctionReturn returns an optional value from the enclosing function.
type FunctionReturn struct {
	Loc    SourceLocation
	parent *Block
	Value  Expr
}

// LambdaExpr is an anonymous function binding an ordered parameter list to
// a single body expression.
// Example: lambda x: (x + 1)
type LambdaExpr struct {
	Loc    SourceLocation
	parent *Block
	Params *Arguments
	Body   Expr
}
