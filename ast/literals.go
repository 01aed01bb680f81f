package ast

// CharLiteral is a character constant. Value holds the text between the
// quotes exactly as written, so escapes such as "\n" are kept as-is.
type CharLiteral struct {
	Value string
}

func (a *CharLiteral) node()     {}
func (a *CharLiteral) atomNode() {}

// ShortLiteral is a 16-bit integer. C has no short suffix, so it is emitted
// with a narrowing cast.
type ShortLiteral struct {
	Value int16
}

func (a *ShortLiteral) node()     {}
func (a *ShortLiteral) atomNode() {}

// IntLiteral is a 32-bit integer.
type IntLiteral struct {
	Value int32
}

func (a *IntLiteral) node()     {}
func (a *IntLiteral) atomNode() {}

// LongLiteral is a 64-bit integer written with an "L" suffix.
type LongLiteral struct {
	Value int64
}

func (a *LongLiteral) node()     {}
func (a *LongLiteral) atomNode() {}

// FloatLiteral is a 32-bit float written with an "f" suffix.
type FloatLiteral struct {
	Value float32
}

func (a *FloatLiteral) node()     {}
func (a *FloatLiteral) atomNode() {}

// DoubleLiteral is a 64-bit float.
type DoubleLiteral struct {
	Value float64
}

func (a *DoubleLiteral) node()     {}
func (a *DoubleLiteral) atomNode() {}

// BoolLiteral is true or false, emitted as 1 or 0.
type BoolLiteral struct {
	Value bool
}

func (a *BoolLiteral) node()     {}
func (a *BoolLiteral) atomNode() {}

// StringLiteral is a string constant. Value holds the text between the
// quotes, already escaped.
type StringLiteral struct {
	Value string
}

func (a *StringLiteral) node()     {}
func (a *StringLiteral) atomNode() {}
