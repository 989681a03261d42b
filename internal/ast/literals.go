package ast

// Literal nodes wrap a value of a specific semantic type and have no
// children.

// LiteralBoolean wraps a boolean value.
// Example: true
type LiteralBoolean struct {
	Loc    SourceLocation
	parent *Block
	Value  bool
}

// LiteralInt32 wraps a 32-bit signed integer value.
// Example: 42
type LiteralInt32 struct {
	Loc    SourceLocation
	parent *Block
	Value  int32
}

// LiteralFloat16 wraps a 16-bit float value. Go has no native float16, so
// the value is held in the smallest native type that preserves it.
type LiteralFloat16 struct {
	Loc    SourceLocation
	parent *Block
	Value  float32
}

// LiteralFloat32 wraps a 32-bit float value.
type LiteralFloat32 struct {
	Loc    SourceLocation
	parent *Block
	Value  float32
}

// LiteralFloat64 wraps a 64-bit float value.
type LiteralFloat64 struct {
	Loc    SourceLocation
	parent *Block
	Value  float64
}

// LiteralComplex32 wraps a complex value as an explicit real/imaginary
// pair of 16-bit float components.
type LiteralComplex32 struct {
	Loc    SourceLocation
	parent *Block
	Real   float64
	Imag   float64
}

// LiteralComplex64 wraps a complex value as an explicit real/imaginary
// pair of 32-bit float components.
type LiteralComplex64 struct {
	Loc    SourceLocation
	parent *Block
	Real   float64
	Imag   float64
}

// LiteralUTF8String wraps a UTF-8 string value.
// Example: 'hello'
type LiteralUTF8String struct {
	Loc    SourceLocation
	parent *Block
	Value  string
}

// LiteralUTF8Char wraps a single UTF-8 character value.
// Example: 'h'
type LiteralUTF8Char struct {
	Loc    SourceLocation
	parent *Block
	Value  string
}
