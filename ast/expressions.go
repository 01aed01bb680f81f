package ast

// Expression is an atom followed by a tail of continuation steps. The tail
// is right-recursive in the grammar: each step owns the rest of the chain.
// Here it is kept as an ordered list, where an empty list is the terminator.
// Precedence is fixed by how the front-end nests expressions, not by a
// table consulted later.
type Expression struct {
	Atom Atom
	Tail []Step
}

func (e Expression) node() {}

// Expr returns an expression with the given atom and tail steps.
func Expr(atom Atom, tail ...Step) Expression {
	return Expression{Atom: atom, Tail: tail}
}

// ExprPtr is Expr for optional expression slots.
func ExprPtr(atom Atom, tail ...Step) *Expression {
	e := Expr(atom, tail...)
	return &e
}

// Ident references a possibly module-qualified name.
type Ident struct {
	Name Identifier
}

func (a *Ident) node()     {}
func (a *Ident) atomNode() {}

// Cast converts Value to Type, as in "(int)x".
type Cast struct {
	Type  Type
	Value Expression
}

func (a *Cast) node()     {}
func (a *Cast) atomNode() {}

// Unary applies a prefix operator to Value.
type Unary struct {
	Op    UnaryOp
	Value Expression
}

func (a *Unary) node()     {}
func (a *Unary) atomNode() {}

// SizeOf is "sizeof(T)".
type SizeOf struct {
	Type Type
}

func (a *SizeOf) node()     {}
func (a *SizeOf) atomNode() {}

// Paren is a parenthesized sub-expression.
type Paren struct {
	Inner Expression
}

func (a *Paren) node()     {}
func (a *Paren) atomNode() {}

// Call applies the expression so far to Args.
type Call struct {
	Args []Expression
}

func (s *Call) node()     {}
func (s *Call) stepNode() {}

// Binary continues the expression with "<op> Right".
type Binary struct {
	Op    BinaryOp
	Right Expression
}

func (s *Binary) node()     {}
func (s *Binary) stepNode() {}

// MemberAccess is ".name".
type MemberAccess struct {
	Member string
}

func (s *MemberAccess) node()     {}
func (s *MemberAccess) stepNode() {}

// PointerAccess is "->name".
type PointerAccess struct {
	Member string
}

func (s *PointerAccess) node()     {}
func (s *PointerAccess) stepNode() {}

// Index is "[index]".
type Index struct {
	Index Expression
}

func (s *Index) node()     {}
func (s *Index) stepNode() {}

// Ternary is "? then : else".
type Ternary struct {
	Then Expression
	Else Expression
}

func (s *Ternary) node()     {}
func (s *Ternary) stepNode() {}
