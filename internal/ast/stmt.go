package ast

type VariableKind uint8

const (
	VarKindVar VariableKind = iota
	VarKindLet
	VarKindConst
	VarKindUsing
	VarKindAwaitUsing
)

func (k VariableKind) String() string {
	switch k {
	case VarKindLet:
		return "let"
	case VarKindConst:
		return "const"
	case VarKindUsing:
		return "using"
	case VarKindAwaitUsing:
		return "await using"
	}
	return "var"
}

// Lexical reports block scoped declaration kinds.
func (k VariableKind) Lexical() bool { return k != VarKindVar }

type (
	BlockStatement struct {
		Base
		Body []Stmt
	}
	EmptyStatement struct {
		Base
	}
	DebuggerStatement struct {
		Base
	}
	ExpressionStatement struct {
		Base
		Expression Expr
	}
	IfStatement struct {
		Base
		Test       Expr
		Consequent Stmt
		Alternate  Stmt
	}
	ForStatement struct {
		Base
		Init   Node // *VariableDeclaration | Expr | nil
		Test   Expr
		Update Expr
		Body   Stmt
	}
	ForInStatement struct {
		Base
		Left  Node // *VariableDeclaration | Target
		Right Expr
		Body  Stmt
	}
	ForOfStatement struct {
		Base
		Await bool
		Left  Node // *VariableDeclaration | Target
		Right Expr
		Body  Stmt
	}
	WhileStatement struct {
		Base
		Test Expr
		Body Stmt
	}
	DoWhileStatement struct {
		Base
		Body Stmt
		Test Expr
	}
	ReturnStatement struct {
		Base
		Argument Expr
	}
	BreakStatement struct {
		Base
		Label *LabelIdentifier
	}
	ContinueStatement struct {
		Base
		Label *LabelIdentifier
	}
	LabeledStatement struct {
		Base
		Label *LabelIdentifier
		Body  Stmt
	}
	SwitchStatement struct {
		Base
		Discriminant Expr
		Cases        []*SwitchCase
	}
	SwitchCase struct {
		Base
		Test       Expr // nil для default
		Consequent []Stmt
	}
	ThrowStatement struct {
		Base
		Argument Expr
	}
	TryStatement struct {
		Base
		Block     *BlockStatement
		Handler   *CatchClause
		Finalizer *BlockStatement
	}
	CatchClause struct {
		Base
		Param *CatchParameter
		Body  *BlockStatement
	}
	CatchParameter struct {
		Base
		Pattern Pattern
	}
	WithStatement struct {
		Base
		Object Expr
		Body   Stmt
	}
	VariableDeclaration struct {
		Base
		VarKind      VariableKind
		Declarations []*VariableDeclarator
		Declare      bool
	}
	VariableDeclarator struct {
		Base
		VarKind  VariableKind
		ID       Pattern
		Init     Expr
		Definite bool
	}
)
