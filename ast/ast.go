// Package ast defines the abstract syntax tree representation of MiniC code.
//
// Every category of node (top-level items, statements, expression atoms,
// expression tail steps, aggregate members and typedef targets) is a closed
// set: the interfaces carry an unexported marker method, so only the types in
// this package implement them and consumers can switch over a known set.
package ast

// Node is implemented by every node in the tree.
type Node interface {
	node()
}

// TopLevel is an item that may appear at file scope or inside a module.
type TopLevel interface {
	Node
	topLevelNode()
}

// Statement is a statement inside a function body.
type Statement interface {
	Node
	stmtNode()

	// NeedsTerminator reports whether the statement is closed by a ";".
	// Block-bodied control statements end with their closing brace instead.
	NeedsTerminator() bool
}

// Atom is the non-recursive head of an expression.
type Atom interface {
	Node
	atomNode()
}

// Step is one postfix or infix continuation in an expression tail.
type Step interface {
	Node
	stepNode()
}

// Member is an entry in a struct or union body.
type Member interface {
	Node
	memberNode()
}

// TypeDefTarget is the underlying type named by a typedef.
type TypeDefTarget interface {
	Node
	typeDefTargetNode()
}

// Program is an ordered sequence of top-level items, in source order.
type Program struct {
	Items []TopLevel
}

func (p *Program) node() {}

// First returns the first item in the program, or nil if empty.
func (p *Program) First() TopLevel {
	if len(p.Items) > 0 {
		return p.Items[0]
	}
	return nil
}

// Block is an ordered list of statements.
type Block []Statement

// NewBlock returns a pointer to a block holding the given statements. It is
// a convenience for optional bodies such as If.Else and Switch.Default.
func NewBlock(stmts ...Statement) *Block {
	b := Block(stmts)
	if b == nil {
		b = Block{}
	}
	return &b
}
