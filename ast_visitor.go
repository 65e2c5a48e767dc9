package ccompiler

// Visitor is implemented by every pass that walks the AST exhaustively: the
// semantic analyzer and the code generator both dispatch through it instead
// of a bare type switch, so adding a node variant is a compile error at
// every visitor until it is handled.
type Visitor interface {
	VisitProgramNode(*ProgramNode) error
	VisitFunctionDeclNode(*FunctionDeclNode) error
	VisitVariableDeclNode(*VariableDeclNode) error
	VisitCompoundStmtNode(*CompoundStmtNode) error
	VisitExpressionStmtNode(*ExpressionStmtNode) error
	VisitIfNode(*IfNode) error
	VisitWhileNode(*WhileNode) error
	VisitForNode(*ForNode) error
	VisitReturnNode(*ReturnNode) error
	VisitBinaryNode(*BinaryNode) error
	VisitUnaryNode(*UnaryNode) error
	VisitCallNode(*CallNode) error
	VisitIdentifierNode(*IdentifierNode) error
	VisitNumberLiteralNode(*NumberLiteralNode) error
	VisitStringLiteralNode(*StringLiteralNode) error
	VisitAssignmentNode(*AssignmentNode) error
}

// Inspect traverses an AST in depth-first order, calling f for every node.
// If f returns false, Inspect skips that node's children. It exists
// alongside the Visitor interface for the odd one-off traversal that only
// cares about a couple of node types (e.g. the driver's debug dump), the
// same division of labor as the teacher's Inspect/AstNodeVisitor pair.
func Inspect(node AstNode, f func(AstNode) bool) {
	if node == nil || !f(node) {
		return
	}
	switch n := node.(type) {
	case *ProgramNode:
		for _, d := range n.Decls {
			Inspect(d, f)
		}
	case *FunctionDeclNode:
		if n.Body != nil {
			Inspect(n.Body, f)
		}
	case *VariableDeclNode:
		if n.Init != nil {
			Inspect(n.Init, f)
		}
	case *CompoundStmtNode:
		for _, s := range n.Stmts {
			Inspect(s, f)
		}
	case *ExpressionStmtNode:
		if n.Expr != nil {
			Inspect(n.Expr, f)
		}
	case *IfNode:
		Inspect(n.Cond, f)
		Inspect(n.Then, f)
		if n.Else != nil {
			Inspect(n.Else, f)
		}
	case *WhileNode:
		Inspect(n.Cond, f)
		Inspect(n.Body, f)
	case *ForNode:
		if n.Init != nil {
			Inspect(n.Init, f)
		}
		if n.Cond != nil {
			Inspect(n.Cond, f)
		}
		if n.Incr != nil {
			Inspect(n.Incr, f)
		}
		Inspect(n.Body, f)
	case *ReturnNode:
		if n.Value != nil {
			Inspect(n.Value, f)
		}
	case *BinaryNode:
		Inspect(n.Left, f)
		Inspect(n.Right, f)
	case *UnaryNode:
		Inspect(n.Operand, f)
	case *CallNode:
		for _, a := range n.Args {
			Inspect(a, f)
		}
	case *AssignmentNode:
		Inspect(n.Target, f)
		Inspect(n.Value, f)
	}
}
