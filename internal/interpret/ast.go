package interpret

// Expr is a node of the expression tree. Composite nodes own their children.
type Expr interface {
	exprNode()
}

type IdentifierExpr struct {
	Name Token
}

type LiteralExpr struct {
	Value Token
}

type GroupingExpr struct {
	Inner Expr
}

type UnaryExpr struct {
	Operator Token
	Operand  Expr
}

type BinaryExpr struct {
	Left     Expr
	Operator Token
	Right    Expr
}

func (*IdentifierExpr) exprNode() {}
func (*LiteralExpr) exprNode()    {}
func (*GroupingExpr) exprNode()   {}
func (*UnaryExpr) exprNode()      {}
func (*BinaryExpr) exprNode()     {}

// Stmt is a top-level statement.
type Stmt interface {
	stmtNode()
}

type ExpressionStmt struct {
	Expression Expr
}

func (*ExpressionStmt) stmtNode() {}
