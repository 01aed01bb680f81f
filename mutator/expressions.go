package mutator

import "github.com/DanielGaull/miniC/ast"

// Expression applies the expression transformers to e, then rebuilds the
// result from its rewritten atom and tail. Sub-expressions nested in the
// atom or in tail steps are rewritten as expressions in their own right.
func (m *Mutator) Expression(e ast.Expression) (ast.Expression, error) {
	e, err := m.applyExpression(e)
	if err != nil {
		return ast.Expression{}, err
	}
	atom, err := m.Atom(e.Atom)
	if err != nil {
		return ast.Expression{}, err
	}
	var tail []ast.Step
	for _, step := range e.Tail {
		out, err := m.step(step)
		if err != nil {
			return ast.Expression{}, err
		}
		tail = append(tail, out)
	}
	return ast.Expression{Atom: atom, Tail: tail}, nil
}

// Atom returns a rewritten copy of an atom. Atoms have no transformers of
// their own; only the expressions they contain are transformed.
func (m *Mutator) Atom(a ast.Atom) (ast.Atom, error) {
	switch a := a.(type) {
	case *ast.CharLiteral:
		return &ast.CharLiteral{Value: a.Value}, nil
	case *ast.ShortLiteral:
		return &ast.ShortLiteral{Value: a.Value}, nil
	case *ast.IntLiteral:
		return &ast.IntLiteral{Value: a.Value}, nil
	case *ast.LongLiteral:
		return &ast.LongLiteral{Value: a.Value}, nil
	case *ast.FloatLiteral:
		return &ast.FloatLiteral{Value: a.Value}, nil
	case *ast.DoubleLiteral:
		return &ast.DoubleLiteral{Value: a.Value}, nil
	case *ast.BoolLiteral:
		return &ast.BoolLiteral{Value: a.Value}, nil
	case *ast.StringLiteral:
		return &ast.StringLiteral{Value: a.Value}, nil
	case *ast.Ident:
		return &ast.Ident{Name: a.Name}, nil
	case *ast.Cast:
		value, err := m.Expression(a.Value)
		if err != nil {
			return nil, err
		}
		return &ast.Cast{Type: a.Type, Value: value}, nil
	case *ast.Unary:
		value, err := m.Expression(a.Value)
		if err != nil {
			return nil, err
		}
		return &ast.Unary{Op: a.Op, Value: value}, nil
	case *ast.SizeOf:
		return &ast.SizeOf{Type: a.Type}, nil
	case *ast.Paren:
		inner, err := m.Expression(a.Inner)
		if err != nil {
			return nil, err
		}
		return &ast.Paren{Inner: inner}, nil
	default:
		return nil, unhandled("atom", a)
	}
}

func (m *Mutator) step(s ast.Step) (ast.Step, error) {
	switch s := s.(type) {
	case *ast.Call:
		var args []ast.Expression
		for _, arg := range s.Args {
			out, err := m.Expression(arg)
			if err != nil {
				return nil, err
			}
			args = append(args, out)
		}
		return &ast.Call{Args: args}, nil
	case *ast.Binary:
		right, err := m.Expression(s.Right)
		if err != nil {
			return nil, err
		}
		return &ast.Binary{Op: s.Op, Right: right}, nil
	case *ast.MemberAccess:
		return &ast.MemberAccess{Member: s.Member}, nil
	case *ast.PointerAccess:
		return &ast.PointerAccess{Member: s.Member}, nil
	case *ast.Index:
		index, err := m.Expression(s.Index)
		if err != nil {
			return nil, err
		}
		return &ast.Index{Index: index}, nil
	case *ast.Ternary:
		then, err := m.Expression(s.Then)
		if err != nil {
			return nil, err
		}
		els, err := m.Expression(s.Else)
		if err != nil {
			return nil, err
		}
		return &ast.Ternary{Then: then, Else: els}, nil
	default:
		return nil, unhandled("expression step", s)
	}
}
