package ast

// Type descriptors are bare annotations: "the 32-bit integer type", with no
// value attached. They are distinct node kinds from the literals that carry
// values of the same underlying type, so a renderer never has to decide
// whether an Int32 means "the type" or "an instance".

// BooleanType is the boolean type annotation.
type BooleanType struct {
	Loc    SourceLocation
	parent *Block
}

// Int32Type is the 32-bit signed integer type annotation.
type Int32Type struct {
	Loc    SourceLocation
	parent *Block
}

// Float16Type is the 16-bit float type annotation.
type Float16Type struct {
	Loc    SourceLocation
	parent *Block
}

// Float32Type is the 32-bit float type annotation.
type Float32Type struct {
	Loc    SourceLocation
	parent *Block
}

// Float64Type is the 64-bit float type annotation.
type Float64Type struct {
	Loc    SourceLocation
	parent *Block
}

// Complex32Type is the type annotation for a complex number built from two
// 16-bit float components.
type Complex32Type struct {
	Loc    SourceLocation
	parent *Block
}

// Complex64Type is the type annotation for a complex number built from two
// 32-bit float components.
type Complex64Type struct {
	Loc    SourceLocation
	parent *Block
}

// UTF8StringType is the UTF-8 string type annotation.
type UTF8StringType struct {
	Loc    SourceLocation
	parent *Block
}

// UTF8CharType is the single UTF-8 character type annotation.
type UTF8CharType struct {
	Loc    SourceLocation
	parent *Block
}

func (*BooleanType) isTypeRef()    {}
func (*Int32Type) isTypeRef()      {}
func (*Float16Type) isTypeRef()    {}
func (*Float32Type) isTypeRef()    {}
func (*Float64Type) isTypeRef()    {}
func (*Complex32Type) isTypeRef()  {}
func (*Complex64Type) isTypeRef()  {}
func (*UTF8StringType) isTypeRef() {}
func (*UTF8CharType) isTypeRef()   {}
