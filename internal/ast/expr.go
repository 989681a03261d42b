package ast

func (*LiteralBoolean) isExpr() {}

func (*LiteralInt32) isExpr() {}

func (*LiteralFloat16) isExpr() {}

func (*LiteralFloat32) isExpr() {}

func (*LiteralFloat64) isExpr() {}

func (*LiteralComplex32) isExpr() {}

func (*LiteralComplex64) isExpr() {}

func (*LiteralUTF8String) isExpr() {}

func (*LiteralUTF8Char) isExpr() {}

func (*BinaryOp) isExpr() {}

func (*UnaryOp) isExpr() {}

func (*Variable) isExpr() {}

func (*LambdaExpr) isExpr() {}

func (*IfExpr) isExpr() {}

func (*WhileExpr) isExpr() {}

func (*ForRangeLoopExpr) isExpr() {}

func (*AliasExpr) isExpr() {}

func (*ImportExpr) isExpr() {}

func (*ImportFromExpr) isExpr() {}

func (*TypeCastExpr) isExpr() {}
