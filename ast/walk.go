package ast

import "iter"

// Visitor defines the interface for AST traversal. If Visit returns nil,
// children of the node are not visited. Otherwise, the returned Visitor
// is used to visit children.
type Visitor interface {
	Visit(node Node) (w Visitor)
}

// Walk traverses an AST in depth-first order. It starts by calling
// v.Visit(node); if the returned visitor w is not nil, Walk is invoked
// recursively with visitor w for each of the children of node, in source
// order.
func Walk(v Visitor, node Node) {
	if v = v.Visit(node); v == nil {
		return
	}
	for _, child := range Children(node) {
		Walk(v, child)
	}
}

// Inspect traverses an AST in depth-first order. It calls f(node) for each
// node; if f returns true, Inspect invokes f recursively for each of the
// children of node.
func Inspect(node Node, f func(Node) bool) {
	Walk(inspector(f), node)
}

type inspector func(Node) bool

func (f inspector) Visit(node Node) Visitor {
	if f(node) {
		return f
	}
	return nil
}

// Preorder returns an iterator over all the nodes of the AST rooted at node
// in depth-first preorder.
func Preorder(root Node) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		var visit func(Node) bool
		visit = func(n Node) bool {
			if !yield(n) {
				return false
			}
			for _, child := range Children(n) {
				if !visit(child) {
					return false
				}
			}
			return true
		}
		visit(root)
	}
}

// Children returns the direct children of node in source order. Optional
// parts that are absent are omitted.
func Children(node Node) []Node {
	var out []Node
	add := func(nodes ...Node) {
		for _, n := range nodes {
			if n != nil {
				out = append(out, n)
			}
		}
	}
	addBlock := func(b Block) {
		for _, s := range b {
			add(s)
		}
	}
	addExprs := func(exprs []Expression) {
		for _, e := range exprs {
			add(e)
		}
	}

	switch n := node.(type) {
	case *Program:
		for _, item := range n.Items {
			add(item)
		}

	// Declarations
	case *VarDeclaration:
		add(n.Type)
		if n.Value != nil {
			add(*n.Value)
		}
	case *Import, *PreprocessorDirective:
	case *FunctionHeader:
		add(n.ReturnType)
		for _, p := range n.Params {
			add(p.Type)
		}
	case *Function:
		add(&n.Header)
		addBlock(n.Body)
	case *Aggregate:
		for _, m := range n.Members {
			add(m)
		}
	case *Field:
		add(n.Type)
	case *NestedAggregate:
		add(n.Aggregate)
	case *Enum:
	case *TypeDef:
		add(n.Target)
	case *Module:
		for _, item := range n.Items {
			add(item)
		}
	case Type:

	// Statements
	case *ExpressionStatement:
		add(n.Expr)
	case *VarDecl:
		add(n.Type)
		if n.Value != nil {
			add(*n.Value)
		}
	case *Assign:
		add(n.Target, n.Value)
	case *CompoundAssign:
		add(n.Target, n.Value)
	case *IncDec:
		add(n.Target)
	case *Return:
		if n.Value != nil {
			add(*n.Value)
		}
	case *If:
		add(n.Base.Condition)
		addBlock(n.Base.Body)
		for _, branch := range n.ElseIfs {
			add(branch.Condition)
			addBlock(branch.Body)
		}
		if n.Else != nil {
			addBlock(*n.Else)
		}
	case *While:
		add(n.Condition)
		addBlock(n.Body)
	case *DoWhile:
		addBlock(n.Body)
		add(n.Condition)
	case *For:
		add(n.Init, n.Condition, n.Increment)
		addBlock(n.Body)
	case *Switch:
		add(n.Value)
		for _, c := range n.Cases {
			add(c.Match)
			addBlock(c.Body)
		}
		if n.Default != nil {
			addBlock(*n.Default)
		}
	case *Continue, *Break:

	// Expressions
	case Expression:
		add(n.Atom)
		for _, step := range n.Tail {
			add(step)
		}
	case *Cast:
		add(n.Type, n.Value)
	case *Unary:
		add(n.Value)
	case *SizeOf:
		add(n.Type)
	case *Paren:
		add(n.Inner)
	case *Call:
		addExprs(n.Args)
	case *Binary:
		add(n.Right)
	case *Index:
		add(n.Index)
	case *Ternary:
		add(n.Then, n.Else)
	}
	return out
}
