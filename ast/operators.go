package ast

// BinaryOp is an infix operator. Its value is the C spelling.
type BinaryOp string

const (
	Add        BinaryOp = "+"
	Sub        BinaryOp = "-"
	Mul        BinaryOp = "*"
	Div        BinaryOp = "/"
	Mod        BinaryOp = "%"
	LeftShift  BinaryOp = "<<"
	RightShift BinaryOp = ">>"
	BitOr      BinaryOp = "|"
	BitAnd     BinaryOp = "&"
	BitXor     BinaryOp = "^"
	LogicOr    BinaryOp = "||"
	LogicAnd   BinaryOp = "&&"
	Equal      BinaryOp = "=="
	NotEqual   BinaryOp = "!="
	Less       BinaryOp = "<"
	LessEq     BinaryOp = "<="
	Greater    BinaryOp = ">"
	GreaterEq  BinaryOp = ">="
)

var binaryOps = map[string]BinaryOp{}

func init() {
	for _, op := range []BinaryOp{
		Add, Sub, Mul, Div, Mod, LeftShift, RightShift, BitOr, BitAnd, BitXor,
		LogicOr, LogicAnd, Equal, NotEqual, Less, LessEq, Greater, GreaterEq,
	} {
		binaryOps[string(op)] = op
	}
}

// LookupBinaryOp returns the binary operator spelled s.
func LookupBinaryOp(s string) (BinaryOp, bool) {
	op, ok := binaryOps[s]
	return op, ok
}

// IsArithmetic reports whether the operator may form a compound assignment
// such as "+=".
func (op BinaryOp) IsArithmetic() bool {
	switch op {
	case Add, Sub, Mul, Div, Mod, LeftShift, RightShift, BitOr, BitAnd, BitXor:
		return true
	}
	return false
}

// UnaryOp is a prefix operator. Its value is the C spelling.
type UnaryOp string

const (
	Negate    UnaryOp = "-"
	Not       UnaryOp = "!"
	BitNot    UnaryOp = "~"
	Deref     UnaryOp = "*"
	AddressOf UnaryOp = "&"
)

// LookupUnaryOp returns the unary operator spelled s.
func LookupUnaryOp(s string) (UnaryOp, bool) {
	switch op := UnaryOp(s); op {
	case Negate, Not, BitNot, Deref, AddressOf:
		return op, true
	}
	return "", false
}
