package ccompiler

import (
	"fmt"
	"strings"
)

// nodeString renders a node as a compact single-line s-expression; every
// node's String method returns it.
func nodeString(n AstNode) string {
	switch t := n.(type) {
	case *ProgramNode:
		parts := make([]string, len(t.Decls))
		for i, d := range t.Decls {
			parts[i] = d.String()
		}
		return "(Program " + strings.Join(parts, " ") + ")"
	case *FunctionDeclNode:
		params := make([]string, len(t.Params))
		for i, p := range t.Params {
			params[i] = p.Type + " " + p.Name
		}
		body := "<decl>"
		if t.Body != nil {
			body = t.Body.String()
		}
		return fmt.Sprintf("(FunctionDecl %s %s(%s) %s)", t.ReturnType, t.Name, strings.Join(params, ", "), body)
	case *VariableDeclNode:
		if t.Init == nil {
			return fmt.Sprintf("(VariableDecl %s %s)", t.Type, t.Name)
		}
		return fmt.Sprintf("(VariableDecl %s %s %s)", t.Type, t.Name, t.Init.String())
	case *CompoundStmtNode:
		parts := make([]string, len(t.Stmts))
		for i, s := range t.Stmts {
			parts[i] = s.String()
		}
		return "(Compound " + strings.Join(parts, " ") + ")"
	case *ExpressionStmtNode:
		if t.Expr == nil {
			return "(ExpressionStmt)"
		}
		return fmt.Sprintf("(ExpressionStmt %s)", t.Expr.String())
	case *IfNode:
		if t.Else == nil {
			return fmt.Sprintf("(If %s %s)", t.Cond.String(), t.Then.String())
		}
		return fmt.Sprintf("(If %s %s %s)", t.Cond.String(), t.Then.String(), t.Else.String())
	case *WhileNode:
		return fmt.Sprintf("(While %s %s)", t.Cond.String(), t.Body.String())
	case *ForNode:
		init, cond, incr := "<>", "<>", "<>"
		if t.Init != nil {
			init = t.Init.String()
		}
		if t.Cond != nil {
			cond = t.Cond.String()
		}
		if t.Incr != nil {
			incr = t.Incr.String()
		}
		return fmt.Sprintf("(For %s %s %s %s)", init, cond, incr, t.Body.String())
	case *ReturnNode:
		if t.Value == nil {
			return "(Return)"
		}
		return fmt.Sprintf("(Return %s)", t.Value.String())
	case *BinaryNode:
		return fmt.Sprintf("(Binary %s %s %s)", t.Op, t.Left.String(), t.Right.String())
	case *UnaryNode:
		return fmt.Sprintf("(Unary %s %s)", t.Op, t.Operand.String())
	case *CallNode:
		args := make([]string, len(t.Args))
		for i, a := range t.Args {
			args[i] = a.String()
		}
		return fmt.Sprintf("(Call %s %s)", t.Callee, strings.Join(args, " "))
	case *IdentifierNode:
		return fmt.Sprintf("(Identifier %s)", t.Name)
	case *NumberLiteralNode:
		return fmt.Sprintf("(NumberLiteral %s)", t.Text)
	case *StringLiteralNode:
		return fmt.Sprintf("(StringLiteral %s)", t.Text)
	case *AssignmentNode:
		return fmt.Sprintf("(Assignment %s %s)", t.Target.String(), t.Value.String())
	default:
		return "(unknown)"
	}
}

func (n *ProgramNode) String() string        { return nodeString(n) }
func (n *FunctionDeclNode) String() string   { return nodeString(n) }
func (n *VariableDeclNode) String() string   { return nodeString(n) }
func (n *CompoundStmtNode) String() string   { return nodeString(n) }
func (n *ExpressionStmtNode) String() string { return nodeString(n) }
func (n *IfNode) String() string             { return nodeString(n) }
func (n *WhileNode) String() string          { return nodeString(n) }
func (n *ForNode) String() string            { return nodeString(n) }
func (n *ReturnNode) String() string         { return nodeString(n) }
func (n *BinaryNode) String() string         { return nodeString(n) }
func (n *UnaryNode) String() string          { return nodeString(n) }
func (n *CallNode) String() string           { return nodeString(n) }
func (n *IdentifierNode) String() string     { return nodeString(n) }
func (n *NumberLiteralNode) String() string  { return nodeString(n) }
func (n *StringLiteralNode) String() string  { return nodeString(n) }
func (n *AssignmentNode) String() string     { return nodeString(n) }

// nodeLabel is the text shown on a node's own line in PrettyString, the same
// "one line per node, children indented beneath" shape as the teacher's
// grammar printer, minus the ANSI theming this spec has no use for.
func nodeLabel(n AstNode) string {
	switch t := n.(type) {
	case *ProgramNode:
		return "Program"
	case *FunctionDeclNode:
		return fmt.Sprintf("FunctionDecl %s %s", t.ReturnType, t.Name)
	case *VariableDeclNode:
		return fmt.Sprintf("VariableDecl %s %s", t.Type, t.Name)
	case *CompoundStmtNode:
		return "CompoundStmt"
	case *ExpressionStmtNode:
		return "ExpressionStmt"
	case *IfNode:
		return "If"
	case *WhileNode:
		return "While"
	case *ForNode:
		return "For"
	case *ReturnNode:
		return "Return"
	case *BinaryNode:
		return "Binary " + t.Op
	case *UnaryNode:
		return "Unary " + t.Op
	case *CallNode:
		return "Call " + t.Callee
	case *IdentifierNode:
		return "Identifier " + t.Name
	case *NumberLiteralNode:
		return "NumberLiteral " + t.Text
	case *StringLiteralNode:
		return "StringLiteral " + t.Text
	case *AssignmentNode:
		return "Assignment"
	default:
		return "?"
	}
}

// nodeChildren returns a node's children paired with an optional field label
// ("cond", "then", ...), used only by the If/While/For nodes where the
// field name disambiguates otherwise-identical-looking children.
func nodeChildren(n AstNode) (children []AstNode, labels []string) {
	switch t := n.(type) {
	case *ProgramNode:
		for _, d := range t.Decls {
			children = append(children, d)
		}
	case *FunctionDeclNode:
		if t.Body != nil {
			children = append(children, t.Body)
		}
	case *VariableDeclNode:
		if t.Init != nil {
			children = append(children, t.Init)
		}
	case *CompoundStmtNode:
		for _, s := range t.Stmts {
			children = append(children, s)
		}
	case *ExpressionStmtNode:
		if t.Expr != nil {
			children = append(children, t.Expr)
		}
	case *IfNode:
		children = append(children, t.Cond, t.Then)
		labels = append(labels, "cond", "then")
		if t.Else != nil {
			children = append(children, t.Else)
			labels = append(labels, "else")
		}
	case *WhileNode:
		children = append(children, t.Cond, t.Body)
		labels = append(labels, "cond", "body")
	case *ForNode:
		if t.Init != nil {
			children = append(children, t.Init)
			labels = append(labels, "init")
		}
		if t.Cond != nil {
			children = append(children, t.Cond)
			labels = append(labels, "cond")
		}
		if t.Incr != nil {
			children = append(children, t.Incr)
			labels = append(labels, "incr")
		}
		children = append(children, t.Body)
		labels = append(labels, "body")
	case *ReturnNode:
		if t.Value != nil {
			children = append(children, t.Value)
		}
	case *BinaryNode:
		children = append(children, t.Left, t.Right)
	case *UnaryNode:
		children = append(children, t.Operand)
	case *CallNode:
		for _, a := range t.Args {
			children = append(children, a)
		}
	case *AssignmentNode:
		children = append(children, t.Target, t.Value)
	}
	if len(labels) > 0 && len(labels) != len(children) {
		labels = nil // field labels are all-or-nothing per node kind
	}
	return children, labels
}

func ppAstNode(n AstNode) string {
	var b strings.Builder
	ppWrite(&b, n, "", true, true, "")
	return b.String()
}

// ppWrite renders n and its subtree. label, when non-empty, is printed
// ahead of n's own label ("cond: If ...") — the same treatment at every
// depth, so a labeled-children node (If/While/For) keeps its field labels
// however deeply it is nested under another labeled child.
func ppWrite(b *strings.Builder, n AstNode, prefix string, isLast, isRoot bool, label string) {
	if !isRoot {
		if isLast {
			b.WriteString(prefix + "└── ")
			prefix += "    "
		} else {
			b.WriteString(prefix + "├── ")
			prefix += "│   "
		}
	}
	if label != "" {
		b.WriteString(label + ": ")
	}
	children, labels := nodeChildren(n)
	b.WriteString(nodeLabel(n))
	b.WriteString("\n")
	for i, c := range children {
		last := i == len(children)-1
		childLabel := ""
		if labels != nil {
			childLabel = labels[i]
		}
		ppWrite(b, c, prefix, last, false, childLabel)
	}
}

func (n *ProgramNode) PrettyString() string        { return ppAstNode(n) }
func (n *FunctionDeclNode) PrettyString() string   { return ppAstNode(n) }
func (n *VariableDeclNode) PrettyString() string   { return ppAstNode(n) }
func (n *CompoundStmtNode) PrettyString() string   { return ppAstNode(n) }
func (n *ExpressionStmtNode) PrettyString() string { return ppAstNode(n) }
func (n *IfNode) PrettyString() string             { return ppAstNode(n) }
func (n *WhileNode) PrettyString() string          { return ppAstNode(n) }
func (n *ForNode) PrettyString() string            { return ppAstNode(n) }
func (n *ReturnNode) PrettyString() string         { return ppAstNode(n) }
func (n *BinaryNode) PrettyString() string         { return ppAstNode(n) }
func (n *UnaryNode) PrettyString() string          { return ppAstNode(n) }
func (n *CallNode) PrettyString() string           { return ppAstNode(n) }
func (n *IdentifierNode) PrettyString() string     { return ppAstNode(n) }
func (n *NumberLiteralNode) PrettyString() string  { return ppAstNode(n) }
func (n *StringLiteralNode) PrettyString() string  { return ppAstNode(n) }
func (n *AssignmentNode) PrettyString() string     { return ppAstNode(n) }
