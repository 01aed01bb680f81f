package ast

// ExpressionStatement evaluates an expression for its side effects.
type ExpressionStatement struct {
	Expr Expression
}

func (s *ExpressionStatement) node()                 {}
func (s *ExpressionStatement) stmtNode()             {}
func (s *ExpressionStatement) NeedsTerminator() bool { return true }

// VarDecl declares a local variable.
type VarDecl struct {
	Modifiers []Modifier
	Type      Type
	Name      string
	Value     *Expression // optional initializer
}

func (s *VarDecl) node()                 {}
func (s *VarDecl) stmtNode()             {}
func (s *VarDecl) NeedsTerminator() bool { return true }

// Assign is "target = value". Target is an lvalue expression such as "x",
// "*p" or "p->next".
type Assign struct {
	Target Expression
	Value  Expression
}

func (s *Assign) node()                 {}
func (s *Assign) stmtNode()             {}
func (s *Assign) NeedsTerminator() bool { return true }

// CompoundAssign is "target <op>= value".
type CompoundAssign struct {
	Target Expression
	Op     BinaryOp
	Value  Expression
}

func (s *CompoundAssign) node()                 {}
func (s *CompoundAssign) stmtNode()             {}
func (s *CompoundAssign) NeedsTerminator() bool { return true }

// IncDec is "target++" or "target--".
type IncDec struct {
	Target    Expression
	Increment bool
}

func (s *IncDec) node()                 {}
func (s *IncDec) stmtNode()             {}
func (s *IncDec) NeedsTerminator() bool { return true }

// Return leaves the function, with an optional value.
type Return struct {
	Value *Expression
}

func (s *Return) node()                 {}
func (s *Return) stmtNode()             {}
func (s *Return) NeedsTerminator() bool { return true }

// ConditionBody is a condition paired with the statements it guards.
type ConditionBody struct {
	Condition Expression
	Body      Block
}

// If is an if statement with any number of else-if branches and an
// optional final else.
type If struct {
	Base    ConditionBody
	ElseIfs []ConditionBody
	Else    *Block
}

func (s *If) node()                 {}
func (s *If) stmtNode()             {}
func (s *If) NeedsTerminator() bool { return false }

// While is a pre-tested loop.
type While struct {
	ConditionBody
}

func (s *While) node()                 {}
func (s *While) stmtNode()             {}
func (s *While) NeedsTerminator() bool { return false }

// DoWhile is a post-tested loop. Unlike the other loops it ends with ";".
type DoWhile struct {
	Condition Expression
	Body      Block
}

func (s *DoWhile) node()                 {}
func (s *DoWhile) stmtNode()             {}
func (s *DoWhile) NeedsTerminator() bool { return true }

// For is a C for loop. Init and Increment are statements rendered inline in
// the loop header.
type For struct {
	Init      Statement
	Condition Expression
	Increment Statement
	Body      Block
}

func (s *For) node()                 {}
func (s *For) stmtNode()             {}
func (s *For) NeedsTerminator() bool { return false }

// IsForClause reports whether s can fill the init or increment slot of a
// for loop header: a single-line statement that does not transfer control.
func IsForClause(s Statement) bool {
	switch s.(type) {
	case nil, *Return, *Break, *Continue, *DoWhile:
		return false
	}
	return s.NeedsTerminator()
}

// CaseStatement is one case of a switch. There is no implicit break:
// control falls through unless the body ends with one.
type CaseStatement struct {
	Match Atom
	Body  Block
}

// Switch dispatches on an atom. The default body, if any, is kept apart
// from the cases.
type Switch struct {
	Value   Atom
	Cases   []CaseStatement
	Default *Block
}

func (s *Switch) node()                 {}
func (s *Switch) stmtNode()             {}
func (s *Switch) NeedsTerminator() bool { return false }

// Continue skips to the next loop iteration.
type Continue struct{}

func (s *Continue) node()                 {}
func (s *Continue) stmtNode()             {}
func (s *Continue) NeedsTerminator() bool { return true }

// Break exits the innermost loop or switch.
type Break struct{}

func (s *Break) node()                 {}
func (s *Break) stmtNode()             {}
func (s *Break) NeedsTerminator() bool { return true }
