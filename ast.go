package ccompiler

// AstNode is implemented by every node in the tree the parser builds. Each
// node owns its children outright; there is no parent back-reference (see
// DESIGN.md, "Parent links" — it isn't load-bearing in any pass here).
type AstNode interface {
	Span() Span
	String() string
	PrettyString() string
	Accept(Visitor) error
}

// Decl is an AstNode that can appear at the top level of a Program.
type Decl interface {
	AstNode
	declNode()
}

// Stmt is an AstNode that can appear inside a CompoundStmt or a For header.
type Stmt interface {
	AstNode
	stmtNode()
}

// Expr is an AstNode that evaluates to a value.
type Expr interface {
	AstNode
	exprNode()
}

// Param is a single (type, name) entry of a FunctionDecl's parameter list.
type Param struct {
	Type string
	Name string
}

// ---- Program ----

// ProgramNode is the root of the tree: an ordered sequence of top-level
// declarations.
type ProgramNode struct {
	Decls []Decl
	span  Span
}

func NewProgramNode(decls []Decl, span Span) *ProgramNode {
	return &ProgramNode{Decls: decls, span: span}
}

func (n *ProgramNode) Span() Span            { return n.span }
func (n *ProgramNode) Accept(v Visitor) error { return v.VisitProgramNode(n) }

// ---- FunctionDecl ----

// FunctionDeclNode declares (and optionally defines) a function. Body is nil
// for a forward declaration (spec.md §4.2: "A missing body with a trailing
// semicolon is a forward declaration").
type FunctionDeclNode struct {
	ReturnType string
	Name       string
	Params     []Param
	Body       *CompoundStmtNode
	span       Span
}

func NewFunctionDeclNode(returnType, name string, params []Param, body *CompoundStmtNode, span Span) *FunctionDeclNode {
	return &FunctionDeclNode{ReturnType: returnType, Name: name, Params: params, Body: body, span: span}
}

func (n *FunctionDeclNode) Span() Span            { return n.span }
func (n *FunctionDeclNode) Accept(v Visitor) error { return v.VisitFunctionDeclNode(n) }
func (n *FunctionDeclNode) declNode()              {}

// ---- VariableDecl ----

// VariableDeclNode declares a local or global variable, with an optional
// initializer expression.
type VariableDeclNode struct {
	Type string
	Name string
	Init Expr
	span Span
}

func NewVariableDeclNode(typ, name string, init Expr, span Span) *VariableDeclNode {
	return &VariableDeclNode{Type: typ, Name: name, Init: init, span: span}
}

func (n *VariableDeclNode) Span() Span            { return n.span }
func (n *VariableDeclNode) Accept(v Visitor) error { return v.VisitVariableDeclNode(n) }
func (n *VariableDeclNode) declNode()              {}
func (n *VariableDeclNode) stmtNode()              {}

// ---- CompoundStmt ----

// CompoundStmtNode is a `{ ... }` block: an ordered sequence of statements
// and declarations sharing one lexical scope.
type CompoundStmtNode struct {
	Stmts []Stmt
	span  Span
}

func NewCompoundStmtNode(stmts []Stmt, span Span) *CompoundStmtNode {
	return &CompoundStmtNode{Stmts: stmts, span: span}
}

func (n *CompoundStmtNode) Span() Span            { return n.span }
func (n *CompoundStmtNode) Accept(v Visitor) error { return v.VisitCompoundStmtNode(n) }
func (n *CompoundStmtNode) stmtNode()              {}

// ---- ExpressionStmt ----

// ExpressionStmtNode is a statement that is just an expression followed by
// `;`. Expr is nil for a bare `;`.
type ExpressionStmtNode struct {
	Expr Expr
	span Span
}

func NewExpressionStmtNode(expr Expr, span Span) *ExpressionStmtNode {
	return &ExpressionStmtNode{Expr: expr, span: span}
}

func (n *ExpressionStmtNode) Span() Span            { return n.span }
func (n *ExpressionStmtNode) Accept(v Visitor) error { return v.VisitExpressionStmtNode(n) }
func (n *ExpressionStmtNode) stmtNode()              {}

// ---- If ----

type IfNode struct {
	Cond Expr
	Then Stmt
	Else Stmt // nil if there is no else branch
	span Span
}

func NewIfNode(cond Expr, then, els Stmt, span Span) *IfNode {
	return &IfNode{Cond: cond, Then: then, Else: els, span: span}
}

func (n *IfNode) Span() Span            { return n.span }
func (n *IfNode) Accept(v Visitor) error { return v.VisitIfNode(n) }
func (n *IfNode) stmtNode()              {}

// ---- While ----

type WhileNode struct {
	Cond Expr
	Body Stmt
	span Span
}

func NewWhileNode(cond Expr, body Stmt, span Span) *WhileNode {
	return &WhileNode{Cond: cond, Body: body, span: span}
}

func (n *WhileNode) Span() Span            { return n.span }
func (n *WhileNode) Accept(v Visitor) error { return v.VisitWhileNode(n) }
func (n *WhileNode) stmtNode()              {}

// ---- For ----

// ForNode's Init is either a *VariableDeclNode or an *ExpressionStmtNode, or
// nil; Cond is nil to mean "always true"; Incr is nil for an empty
// increment clause.
type ForNode struct {
	Init Stmt
	Cond Expr
	Incr *ExpressionStmtNode
	Body Stmt
	span Span
}

func NewForNode(init Stmt, cond Expr, incr *ExpressionStmtNode, body Stmt, span Span) *ForNode {
	return &ForNode{Init: init, Cond: cond, Incr: incr, Body: body, span: span}
}

func (n *ForNode) Span() Span            { return n.span }
func (n *ForNode) Accept(v Visitor) error { return v.VisitForNode(n) }
func (n *ForNode) stmtNode()              {}

// ---- Return ----

type ReturnNode struct {
	Value Expr // nil for a bare `return;`
	span  Span
}

func NewReturnNode(value Expr, span Span) *ReturnNode {
	return &ReturnNode{Value: value, span: span}
}

func (n *ReturnNode) Span() Span            { return n.span }
func (n *ReturnNode) Accept(v Visitor) error { return v.VisitReturnNode(n) }
func (n *ReturnNode) stmtNode()              {}

// ---- Binary ----

type BinaryNode struct {
	Op    string
	Left  Expr
	Right Expr
	span  Span
}

func NewBinaryNode(op string, left, right Expr, span Span) *BinaryNode {
	return &BinaryNode{Op: op, Left: left, Right: right, span: span}
}

func (n *BinaryNode) Span() Span            { return n.span }
func (n *BinaryNode) Accept(v Visitor) error { return v.VisitBinaryNode(n) }
func (n *BinaryNode) exprNode()              {}

// ---- Unary ----

type UnaryNode struct {
	Op      string
	Operand Expr
	span    Span
}

func NewUnaryNode(op string, operand Expr, span Span) *UnaryNode {
	return &UnaryNode{Op: op, Operand: operand, span: span}
}

func (n *UnaryNode) Span() Span            { return n.span }
func (n *UnaryNode) Accept(v Visitor) error { return v.VisitUnaryNode(n) }
func (n *UnaryNode) exprNode()              {}

// ---- Call ----

type CallNode struct {
	Callee string
	Args   []Expr
	span   Span
}

func NewCallNode(callee string, args []Expr, span Span) *CallNode {
	return &CallNode{Callee: callee, Args: args, span: span}
}

func (n *CallNode) Span() Span            { return n.span }
func (n *CallNode) Accept(v Visitor) error { return v.VisitCallNode(n) }
func (n *CallNode) exprNode()              {}

// ---- Identifier ----

type IdentifierNode struct {
	Name string
	span Span
}

func NewIdentifierNode(name string, span Span) *IdentifierNode {
	return &IdentifierNode{Name: name, span: span}
}

func (n *IdentifierNode) Span() Span            { return n.span }
func (n *IdentifierNode) Accept(v Visitor) error { return v.VisitIdentifierNode(n) }
func (n *IdentifierNode) exprNode()              {}

// ---- NumberLiteral ----

type NumberLiteralNode struct {
	Text string // decimal text, as scanned
	span Span
}

func NewNumberLiteralNode(text string, span Span) *NumberLiteralNode {
	return &NumberLiteralNode{Text: text, span: span}
}

func (n *NumberLiteralNode) Span() Span            { return n.span }
func (n *NumberLiteralNode) Accept(v Visitor) error { return v.VisitNumberLiteralNode(n) }
func (n *NumberLiteralNode) exprNode()              {}

// ---- StringLiteral ----

type StringLiteralNode struct {
	Text string // includes surrounding quotes
	span Span
}

func NewStringLiteralNode(text string, span Span) *StringLiteralNode {
	return &StringLiteralNode{Text: text, span: span}
}

func (n *StringLiteralNode) Span() Span            { return n.span }
func (n *StringLiteralNode) Accept(v Visitor) error { return v.VisitStringLiteralNode(n) }
func (n *StringLiteralNode) exprNode()              {}

// ---- Assignment ----

// AssignmentNode's Target is always an *IdentifierNode (invariant I1);
// anything else is rejected by the parser before the node is built.
type AssignmentNode struct {
	Target *IdentifierNode
	Value  Expr
	span   Span
}

func NewAssignmentNode(target *IdentifierNode, value Expr, span Span) *AssignmentNode {
	return &AssignmentNode{Target: target, Value: value, span: span}
}

func (n *AssignmentNode) Span() Span            { return n.span }
func (n *AssignmentNode) Accept(v Visitor) error { return v.VisitAssignmentNode(n) }
func (n *AssignmentNode) exprNode()              {}
