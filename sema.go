package ccompiler

// Analyzer decorates the AST with implicit validity and populates a scope
// stack rooted at the global scope. It implements Visitor so every node
// kind is handled exhaustively; each Visit method returns the first error it
// hits, and callers are expected to stop walking on a non-nil error exactly
// as spec.md §4.3/§7 describe ("the first failure short-circuits").
type Analyzer struct {
	global   *Scope
	current  *Scope
	structs  *StructRegistry
	reporter *ErrorReporter
}

// NewAnalyzer creates an Analyzer with a fresh global scope.
func NewAnalyzer() *Analyzer {
	global := NewScope(nil)
	return &Analyzer{global: global, current: global, structs: NewStructRegistry(), reporter: &ErrorReporter{}}
}

// Analyze runs the analyzer over prog, returning the first semantic error
// encountered, or nil if the program is well-formed.
func (a *Analyzer) Analyze(prog *ProgramNode) error {
	return a.VisitProgramNode(prog)
}

// GlobalScope exposes the root scope, used by the driver's -v symbol dump.
func (a *Analyzer) GlobalScope() *Scope { return a.global }

func (a *Analyzer) enterScope() { a.current = NewScope(a.current) }
func (a *Analyzer) exitScope()  { a.current = a.current.parent }

func (a *Analyzer) declare(entry *SymbolEntry, span Span) error {
	if !a.current.Declare(entry) {
		return a.reporter.Report(newSemanticError(span, "Redeclaration of symbol: %s", entry.Name))
	}
	return nil
}

func (a *Analyzer) VisitProgramNode(n *ProgramNode) error {
	for _, d := range n.Decls {
		if err := d.Accept(a); err != nil {
			return err
		}
	}
	return nil
}

func (a *Analyzer) VisitFunctionDeclNode(n *FunctionDeclNode) error {
	retType, err := resolveTypeSpelling(n.ReturnType, a.structs)
	if err != nil {
		return a.reporter.Report(newSemanticError(n.Span(), "Unknown type name: %s", n.ReturnType))
	}

	paramTypes := make([]*TypeInfo, len(n.Params))
	for i, p := range n.Params {
		pt, err := resolveTypeSpelling(p.Type, a.structs)
		if err != nil {
			return a.reporter.Report(newSemanticError(n.Span(), "Unknown type name: %s", p.Type))
		}
		paramTypes[i] = pt
	}

	entry := &SymbolEntry{
		Name: n.Name, Type: retType, Kind: SymbolFunction,
		Initialized: true, ParamCount: len(n.Params), ParamTypes: paramTypes,
	}
	if err := a.declare(entry, n.Span()); err != nil {
		return err
	}

	if n.Body == nil {
		return nil
	}

	a.enterScope()
	for i, p := range n.Params {
		perr := a.declare(&SymbolEntry{
			Name: p.Name, Type: paramTypes[i], Kind: SymbolParameter, Initialized: true,
		}, n.Span())
		if perr != nil {
			a.exitScope()
			return perr
		}
	}
	// The function body's own braces share this scope with its parameters
	// rather than opening a further nested one (spec.md §4.3).
	for _, s := range n.Body.Stmts {
		if err := s.Accept(a); err != nil {
			a.exitScope()
			return err
		}
	}
	a.exitScope()
	return nil
}

func (a *Analyzer) VisitVariableDeclNode(n *VariableDeclNode) error {
	typ, err := resolveTypeSpelling(n.Type, a.structs)
	if err != nil {
		return a.reporter.Report(newSemanticError(n.Span(), "Unknown type name: %s", n.Type))
	}
	if n.Init != nil {
		if err := n.Init.Accept(a); err != nil {
			return err
		}
	}
	// initialized is unconditionally true: the uninitialized-read check is
	// intentionally disabled (spec.md §9, "Uninitialized reads").
	return a.declare(&SymbolEntry{Name: n.Name, Type: typ, Kind: SymbolVariable, Initialized: true}, n.Span())
}

func (a *Analyzer) VisitCompoundStmtNode(n *CompoundStmtNode) error {
	a.enterScope()
	for _, s := range n.Stmts {
		if err := s.Accept(a); err != nil {
			a.exitScope()
			return err
		}
	}
	a.exitScope()
	return nil
}

func (a *Analyzer) VisitExpressionStmtNode(n *ExpressionStmtNode) error {
	if n.Expr == nil {
		return nil
	}
	return n.Expr.Accept(a)
}

func (a *Analyzer) VisitIfNode(n *IfNode) error {
	if err := n.Cond.Accept(a); err != nil {
		return err
	}
	if err := n.Then.Accept(a); err != nil {
		return err
	}
	if n.Else != nil {
		return n.Else.Accept(a)
	}
	return nil
}

func (a *Analyzer) VisitWhileNode(n *WhileNode) error {
	if err := n.Cond.Accept(a); err != nil {
		return err
	}
	return n.Body.Accept(a)
}

func (a *Analyzer) VisitForNode(n *ForNode) error {
	a.enterScope()
	if n.Init != nil {
		if err := n.Init.Accept(a); err != nil {
			a.exitScope()
			return err
		}
	}
	if n.Cond != nil {
		if err := n.Cond.Accept(a); err != nil {
			a.exitScope()
			return err
		}
	}
	if err := n.Body.Accept(a); err != nil {
		a.exitScope()
		return err
	}
	if n.Incr != nil {
		if err := n.Incr.Accept(a); err != nil {
			a.exitScope()
			return err
		}
	}
	a.exitScope()
	return nil
}

func (a *Analyzer) VisitReturnNode(n *ReturnNode) error {
	if n.Value == nil {
		return nil
	}
	return n.Value.Accept(a)
}

func (a *Analyzer) VisitBinaryNode(n *BinaryNode) error {
	if err := n.Left.Accept(a); err != nil {
		return err
	}
	return n.Right.Accept(a)
}

func (a *Analyzer) VisitUnaryNode(n *UnaryNode) error {
	return n.Operand.Accept(a)
}

func (a *Analyzer) VisitCallNode(n *CallNode) error {
	entry, ok := a.current.Lookup(n.Callee)
	if !ok {
		return a.reporter.Report(newSemanticError(n.Span(), "Call to undeclared function: %s", n.Callee))
	}
	if entry.Kind != SymbolFunction {
		return a.reporter.Report(newSemanticError(n.Span(), "Call to non-function symbol: %s", n.Callee))
	}
	if len(n.Args) != entry.ParamCount {
		return a.reporter.Report(newSemanticError(n.Span(),
			"Argument count mismatch calling %s: expected %d, got %d", n.Callee, entry.ParamCount, len(n.Args)))
	}
	for _, arg := range n.Args {
		if err := arg.Accept(a); err != nil {
			return err
		}
	}
	return nil
}

func (a *Analyzer) VisitIdentifierNode(n *IdentifierNode) error {
	if _, ok := a.current.Lookup(n.Name); !ok {
		return a.reporter.Report(newSemanticError(n.Span(), "Undeclared identifier: %s", n.Name))
	}
	return nil
}

func (a *Analyzer) VisitNumberLiteralNode(n *NumberLiteralNode) error { return nil }

func (a *Analyzer) VisitStringLiteralNode(n *StringLiteralNode) error { return nil }

func (a *Analyzer) VisitAssignmentNode(n *AssignmentNode) error {
	entry, ok := a.current.Lookup(n.Target.Name)
	if !ok {
		return a.reporter.Report(newSemanticError(n.Span(), "Undeclared identifier: %s", n.Target.Name))
	}
	if err := n.Value.Accept(a); err != nil {
		return err
	}
	entry.Initialized = true
	return nil
}
