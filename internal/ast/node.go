package ast

func (b *Block) NodeKind() Kind           { return BLOCK }
func (b *Block) NodeLoc() SourceLocation  { return b.Loc }
func (b *Block) ParentBlock() *Block      { return b.parent }
func (b *Block) SetParentBlock(p *Block)  { b.parent = p }

func (t *BooleanType) NodeKind() Kind          { return BOOLEAN_TYPE }
func (t *BooleanType) NodeLoc() SourceLocation { return t.Loc }
func (t *BooleanType) ParentBlock() *Block     { return t.parent }
func (t *BooleanType) SetParentBlock(p *Block) { t.parent = p }

func (t *Int32Type) NodeKind() Kind          { return INT32_TYPE }
func (t *Int32Type) NodeLoc() SourceLocation { return t.Loc }
func (t *Int32Type) ParentBlock() *Block     { return t.parent }
func (t *Int32Type) SetParentBlock(p *Block) { t.parent = p }

func (t *Float16Type) NodeKind() Kind          { return FLOAT16_TYPE }
func (t *Float16Type) NodeLoc() SourceLocation { return t.Loc }
func (t *Float16Type) ParentBlock() *Block     { return t.parent }
func (t *Float16Type) SetParentBlock(p *Block) { t.parent = p }

func (t *Float32Type) NodeKind() Kind          { return FLOAT32_TYPE }
func (t *Float32Type) NodeLoc() SourceLocation { return t.Loc }
func (t *Float32Type) ParentBlock() *Block     { return t.parent }
func (t *Float32Type) SetParentBlock(p *Block) { t.parent = p }

func (t *Float64Type) NodeKind() Kind          { return FLOAT64_TYPE }
func (t *Float64Type) NodeLoc() SourceLocation { return t.Loc }
func (t *Float64Type) ParentBlock() *Block     { return t.parent }
func (t *Float64Type) SetParentBlock(p *Block) { t.parent = p }

func (t *Complex32Type) NodeKind() Kind          { return COMPLEX32_TYPE }
func (t *Complex32Type) NodeLoc() SourceLocation { return t.Loc }
func (t *Complex32Type) ParentBlock() *Block     { return t.parent }
func (t *Complex32Type) SetParentBlock(p *Block) { t.parent = p }

func (t *Complex64Type) NodeKind() Kind          { return COMPLEX64_TYPE }
func (t *Complex64Type) NodeLoc() SourceLocation { return t.Loc }
func (t *Complex64Type) ParentBlock() *Block     { return t.parent }
func (t *Complex64Type) SetParentBlock(p *Block) { t.parent = p }

func (t *UTF8StringType) NodeKind() Kind          { return UTF8_STRING_TYPE }
func (t *UTF8StringType) NodeLoc() SourceLocation { return t.Loc }
func (t *UTF8StringType) ParentBlock() *Block     { return t.parent }
func (t *UTF8StringType) SetParentBlock(p *Block) { t.parent = p }

func (t *UTF8CharType) NodeKind() Kind          { return UTF8_CHAR_TYPE }
func (t *UTF8CharType) NodeLoc() SourceLocation { return t.Loc }
func (t *UTF8CharType) ParentBlock() *Block     { return t.parent }
func (t *UTF8CharType) SetParentBlock(p *Block) { t.parent = p }

func (l *LiteralBoolean) NodeKind() Kind          { return LITERAL_BOOLEAN }
func (l *LiteralBoolean) NodeLoc() SourceLocation { return l.Loc }
func (l *LiteralBoolean) ParentBlock() *Block     { return l.parent }
func (l *LiteralBoolean) SetParentBlock(p *Block) { l.parent = p }

func (l *LiteralInt32) NodeKind() Kind          { return LITERAL_INT32 }
func (l *LiteralInt32) NodeLoc() SourceLocation { return l.Loc }
func (l *LiteralInt32) ParentBlock() *Block     { return l.parent }
func (l *LiteralInt32) SetParentBlock(p *Block) { l.parent = p }

func (l *LiteralFloat16) NodeKind() Kind          { return LITERAL_FLOAT16 }
func (l *LiteralFloat16) NodeLoc() SourceLocation { return l.Loc }
func (l *LiteralFloat16) ParentBlock() *Block     { return l.parent }
func (l *LiteralFloat16) SetParentBlock(p *Block) { l.parent = p }

func (l *LiteralFloat32) NodeKind() Kind          { return LITERAL_FLOAT32 }
func (l *LiteralFloat32) NodeLoc() SourceLocation { return l.Loc }
func (l *LiteralFloat32) ParentBlock() *Block     { return l.parent }
func (l *LiteralFloat32) SetParentBlock(p *Block) { l.parent = p }

func (l *LiteralFloat64) NodeKind() Kind          { return LITERAL_FLOAT64 }
func (l *LiteralFloat64) NodeLoc() SourceLocation { return l.Loc }
func (l *LiteralFloat64) ParentBlock() *Block     { return l.parent }
func (l *LiteralFloat64) SetParentBlock(p *Block) { l.parent = p }

func (l *LiteralComplex32) NodeKind() Kind          { return LITERAL_COMPLEX32 }
func (l *LiteralComplex32) NodeLoc() SourceLocation { return l.Loc }
func (l *LiteralComplex32) ParentBlock() *Block     { return l.parent }
func (l *LiteralComplex32) SetParentBlock(p *Block) { l.parent = p }

func (l *LiteralComplex64) NodeKind() Kind          { return LITERAL_COMPLEX64 }
func (l *LiteralComplex64) NodeLoc() SourceLocation { return l.Loc }
func (l *LiteralComplex64) ParentBlock() *Block     { return l.parent }
func (l *LiteralComplex64) SetParentBlock(p *Block) { l.parent = p }

func (l *LiteralUTF8String) NodeKind() Kind          { return LITERAL_UTF8_STRING }
func (l *LiteralUTF8String) NodeLoc() SourceLocation { return l.Loc }
func (l *LiteralUTF8String) ParentBlock() *Block     { return l.parent }
func (l *LiteralUTF8String) SetParentBlock(p *Block) { l.parent = p }

func (l *LiteralUTF8Char) NodeKind() Kind          { return LITERAL_UTF8_CHAR }
func (l *LiteralUTF8Char) NodeLoc() SourceLocation { return l.Loc }
func (l *LiteralUTF8Char) ParentBlock() *Block     { return l.parent }
func (l *LiteralUTF8Char) SetParentBlock(p *Block) { l.parent = p }

func (b *BinaryOp) NodeKind() Kind          { return BINARY_OP }
func (b *BinaryOp) NodeLoc() SourceLocation { return b.Loc }
func (b *BinaryOp) ParentBlock() *Block     { return b.parent }
func (b *BinaryOp) SetParentBlock(p *Block) { b.parent = p }

func (u *UnaryOp) NodeKind() Kind          { return UNARY_OP }
func (u *UnaryOp) NodeLoc() SourceLocation { return u.Loc }
func (u *UnaryOp) ParentBlock() *Block     { return u.parent }
func (u *UnaryOp) SetParentBlock(p *Block) { u.parent = p }

func (v *Variable) NodeKind() Kind          { return VARIABLE }
func (v *Variable) NodeLoc() SourceLocation { return v.Loc }
func (v *Variable) ParentBlock() *Block     { return v.parent }
func (v *Variable) SetParentBlock(p *Block) { v.parent = p }

func (v *VarDecl) NodeKind() Kind          { return VAR_DECL }
func (v *VarDecl) NodeLoc() SourceLocation { return v.Loc }
func (v *VarDecl) ParentBlock() *Block     { return v.parent }
func (v *VarDecl) SetParentBlock(p *Block) { v.parent = p }

func (v *VariableAssignment) NodeKind() Kind          { return VARIABLE_ASSIGNMENT }
func (v *VariableAssignment) NodeLoc() SourceLocation { return v.Loc }
func (v *VariableAssignment) ParentBlock() *Block     { return v.parent }
func (v *VariableAssignment) SetParentBlock(p *Block) { v.parent = p }

func (a *Argument) NodeKind() Kind          { return ARGUMENT }
func (a *Argument) NodeLoc() SourceLocation { return a.Loc }
func (a *Argument) ParentBlock() *Block     { return a.parent }
func (a *Argument) SetParentBlock(p *Block) { a.parent = p }

func (a *Arguments) NodeKind() Kind          { return ARGUMENTS }
func (a *Arguments) NodeLoc() SourceLocation { return a.Loc }
func (a *Arguments) ParentBlock() *Block     { return a.parent }
func (a *Arguments) SetParentBlock(p *Block) { a.parent = p }

func (f *FunctionPrototype) NodeKind() Kind          { return FUNCTION_PROTOTYPE }
func (f *FunctionPrototype) NodeLoc() SourceLocation { return f.Loc }
func (f *FunctionPrototype) ParentBlock() *Block     { return f.parent }
func (f *FunctionPrototype) SetParentBlock(p *Block) { f.parent = p }

func (f *Function) NodeKind() Kind          { return FUNCTION }
func (f *Function) NodeLoc() SourceLocation { return f.Loc }
func (f *Function) ParentBlock() *Block     { return f.parent }
func (f *Function) SetParentBlock(p *Block) { f.parent = p }

func (f *FunctionReturn) NodeKind() Kind          { return FUNCTION_RETURN }
func (f *FunctionReturn) NodeLoc() SourceLocation { return f.Loc }
func (f *FunctionReturn) ParentBlock() *Block     { return f.parent }
func (f *FunctionReturn) SetParentBlock(p *Block) { f.parent = p }

func (l *LambdaExpr) NodeKind() Kind          { return LAMBDA_EXPR }
func (l *LambdaExpr) NodeLoc() SourceLocation { return l.Loc }
func (l *LambdaExpr) ParentBlock() *Block     { return l.parent }
func (l *LambdaExpr) SetParentBlock(p *Block) { l.parent = p }

func (i *IfStmt) NodeKind() Kind          { return IF_STMT }
func (i *IfStmt) NodeLoc() SourceLocation { return i.Loc }
func (i *IfStmt) ParentBlock() *Block     { return i.parent }
func (i *IfStmt) SetParentBlock(p *Block) { i.parent = p }

func (i *IfExpr) NodeKind() Kind          { return IF_EXPR }
func (i *IfExpr) NodeLoc() SourceLocation { return i.Loc }
func (i *IfExpr) ParentBlock() *Block     { return i.parent }
func (i *IfExpr) SetParentBlock(p *Block) { i.parent = p }

func (w *WhileStmt) NodeKind() Kind          { return WHILE_STMT }
func (w *WhileStmt) NodeLoc() SourceLocation { return w.Loc }
func (w *WhileStmt) ParentBlock() *Block     { return w.parent }
func (w *WhileStmt) SetParentBlock(p *Block) { w.parent = p }

func (w *WhileExpr) NodeKind() Kind          { return WHILE_EXPR }
func (w *WhileExpr) NodeLoc() SourceLocation { return w.Loc }
func (w *WhileExpr) ParentBlock() *Block     { return w.parent }
func (w *WhileExpr) SetParentBlock(p *Block) { w.parent = p }

func (f *ForRangeLoopExpr) NodeKind() Kind          { return FOR_RANGE_LOOP_EXPR }
func (f *ForRangeLoopExpr) NodeLoc() SourceLocation { return f.Loc }
func (f *ForRangeLoopExpr) ParentBlock() *Block     { return f.parent }
func (f *ForRangeLoopExpr) SetParentBlock(p *Block) { f.parent = p }

func (a *AliasExpr) NodeKind() Kind          { return ALIAS_EXPR }
func (a *AliasExpr) NodeLoc() SourceLocation { return a.Loc }
func (a *AliasExpr) ParentBlock() *Block     { return a.parent }
func (a *AliasExpr) SetParentBlock(p *Block) { a.parent = p }

func (i *ImportStmt) NodeKind() Kind          { return IMPORT_STMT }
func (i *ImportStmt) NodeLoc() SourceLocation { return i.Loc }
func (i *ImportStmt) ParentBlock() *Block     { return i.parent }
func (i *ImportStmt) SetParentBlock(p *Block) { i.parent = p }

func (i *ImportFromStmt) NodeKind() Kind          { return IMPORT_FROM_STMT }
func (i *ImportFromStmt) NodeLoc() SourceLocation { return i.Loc }
func (i *ImportFromStmt) ParentBlock() *Block     { return i.parent }
func (i *ImportFromStmt) SetParentBlock(p *Block) { i.parent = p }

func (i *ImportExpr) NodeKind() Kind          { return IMPORT_EXPR }
func (i *ImportExpr) NodeLoc() SourceLocation { return i.Loc }
func (i *ImportExpr) ParentBlock() *Block     { return i.parent }
func (i *ImportExpr) SetParentBlock(p *Block) { i.parent = p }

func (i *ImportFromExpr) NodeKind() Kind          { return IMPORT_FROM_EXPR }
func (i *ImportFromExpr) NodeLoc() SourceLocation { return i.Loc }
func (i *ImportFromExpr) ParentBlock() *Block     { return i.parent }
func (i *ImportFromExpr) SetParentBlock(p *Block) { i.parent = p }

func (t *TypeCastExpr) NodeKind() Kind          { return TYPE_CAST_EXPR }
func (t *TypeCastExpr) NodeLoc() SourceLocation { return t.Loc }
func (t *TypeCastExpr) ParentBlock() *Block     { return t.parent }
func (t *TypeCastExpr) SetParentBlock(p *Block) { t.parent = p }
