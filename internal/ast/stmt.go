package ast

func (*VarDecl) isStmt() {}

func (*VariableAssignment) isStmt() {}

func (*Function) isStmt() {}

func (*FunctionReturn) isStmt() {}

func (*IfStmt) isStmt() {}

func (*WhileStmt) isStmt() {}

func (*ImportStmt) isStmt() {}

func (*ImportFromStmt) isStmt() {}
