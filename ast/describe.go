package ast

import "fmt"

// Describe returns a short human readable name for the kind of node, such
// as "function" or "return statement". It is used in diagnostics.
func Describe(n Node) string {
	switch n := n.(type) {
	case *Program:
		return "program"
	case *VarDeclaration:
		return "variable declaration"
	case *Import:
		return "import"
	case *Function:
		return "function"
	case *FunctionHeader:
		return "function header"
	case *Aggregate:
		if n.IsAnonymous() {
			return "anonymous " + n.Kind.Keyword()
		}
		return n.Kind.Keyword()
	case *Field:
		return "field"
	case *NestedAggregate:
		return "nested " + n.Aggregate.Kind.Keyword()
	case *Enum:
		if n.IsAnonymous() {
			return "anonymous enum"
		}
		return "enum"
	case *TypeDef:
		return "typedef"
	case *Module:
		return "module"
	case *PreprocessorDirective:
		return "preprocessor directive"
	case Type:
		return "type"
	case Expression, *Expression:
		return "expression"
	case *ExpressionStatement:
		return "expression statement"
	case *VarDecl:
		return "variable declaration"
	case *Assign:
		return "assignment"
	case *CompoundAssign:
		return "compound assignment"
	case *IncDec:
		if n.Increment {
			return "increment"
		}
		return "decrement"
	case *Return:
		return "return statement"
	case *If:
		return "if statement"
	case *While:
		return "while loop"
	case *DoWhile:
		return "do-while loop"
	case *For:
		return "for loop"
	case *Switch:
		return "switch statement"
	case *Continue:
		return "continue statement"
	case *Break:
		return "break statement"
	case *CharLiteral:
		return "char literal"
	case *ShortLiteral:
		return "short literal"
	case *IntLiteral:
		return "int literal"
	case *LongLiteral:
		return "long literal"
	case *FloatLiteral:
		return "float literal"
	case *DoubleLiteral:
		return "double literal"
	case *BoolLiteral:
		return "bool literal"
	case *StringLiteral:
		return "string literal"
	case *Ident:
		return "identifier"
	case *Cast:
		return "cast"
	case *Unary:
		return "unary operation"
	case *SizeOf:
		return "sizeof"
	case *Paren:
		return "parenthesized expression"
	case *Call:
		return "call"
	case *Binary:
		return "binary operation"
	case *MemberAccess:
		return "member access"
	case *PointerAccess:
		return "pointer member access"
	case *Index:
		return "index"
	case *Ternary:
		return "ternary conditional"
	default:
		return fmt.Sprintf("%T", n)
	}
}

// DeclaredName returns the name a top-level item declares, or "" for items
// that declare nothing (imports, directives) and anonymous declarations.
func DeclaredName(t TopLevel) string {
	switch t := t.(type) {
	case *VarDeclaration:
		return t.Name
	case *Function:
		return t.Header.Name
	case *FunctionHeader:
		return t.Name
	case *Aggregate:
		return t.Name
	case *Enum:
		return t.Name
	case *TypeDef:
		return t.Name
	case *Module:
		return t.Name
	default:
		return ""
	}
}
