package codegen

import (
	"strconv"
	"strings"

	"github.com/DanielGaull/miniC/ast"
)

// Expression renders the atom followed by each tail step, left to right.
func (g *Generator) Expression(e ast.Expression) string {
	var out strings.Builder
	out.WriteString(g.Atom(e.Atom))
	for _, step := range e.Tail {
		out.WriteString(g.Step(step))
	}
	return out.String()
}

// Atom renders the head of an expression.
func (g *Generator) Atom(a ast.Atom) string {
	switch a := a.(type) {
	case *ast.CharLiteral:
		return "'" + a.Value + "'"
	case *ast.ShortLiteral:
		return "(short)" + strconv.FormatInt(int64(a.Value), 10)
	case *ast.IntLiteral:
		return strconv.FormatInt(int64(a.Value), 10)
	case *ast.LongLiteral:
		return strconv.FormatInt(a.Value, 10) + "L"
	case *ast.FloatLiteral:
		return formatFloat(float64(a.Value), 32) + "f"
	case *ast.DoubleLiteral:
		return formatFloat(a.Value, 64)
	case *ast.BoolLiteral:
		if a.Value {
			return "1"
		}
		return "0"
	case *ast.StringLiteral:
		return "\"" + a.Value + "\""
	case *ast.Ident:
		return g.Identifier(a.Name)
	case *ast.Cast:
		return "(" + g.Type(a.Type) + ")" + g.Expression(a.Value)
	case *ast.Unary:
		return string(a.Op) + g.Expression(a.Value)
	case *ast.SizeOf:
		return "sizeof(" + g.Type(a.Type) + ")"
	case *ast.Paren:
		return "(" + g.Expression(a.Inner) + ")"
	default:
		return unhandled(a)
	}
}

// Step renders one tail step.
func (g *Generator) Step(s ast.Step) string {
	switch s := s.(type) {
	case *ast.Call:
		args := make([]string, 0, len(s.Args))
		for _, arg := range s.Args {
			args = append(args, g.Expression(arg))
		}
		return "(" + strings.Join(args, ", ") + ")"
	case *ast.Binary:
		return " " + string(s.Op) + " " + g.Expression(s.Right)
	case *ast.MemberAccess:
		return "." + s.Member
	case *ast.PointerAccess:
		return "->" + s.Member
	case *ast.Index:
		return "[" + g.Expression(s.Index) + "]"
	case *ast.Ternary:
		return " ? " + g.Expression(s.Then) + " : " + g.Expression(s.Else)
	default:
		return unhandled(s)
	}
}

// formatFloat uses the shortest representation that round-trips, and adds
// ".0" to integral values so the literal keeps its floating type in C.
func formatFloat(v float64, bitSize int) string {
	s := strconv.FormatFloat(v, 'g', -1, bitSize)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}
