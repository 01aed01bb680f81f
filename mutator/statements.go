package mutator

import (
	"slices"

	"github.com/DanielGaull/miniC/ast"
)

// Body returns a rewritten copy of a block. A nil block stays nil.
func (m *Mutator) Body(b ast.Block) (ast.Block, error) {
	if b == nil {
		return nil, nil
	}
	out := make(ast.Block, 0, len(b))
	for _, s := range b {
		rewritten, err := m.Statement(s)
		if err != nil {
			return nil, err
		}
		out = append(out, rewritten)
	}
	return out, nil
}

func (m *Mutator) optionalBody(b *ast.Block) (*ast.Block, error) {
	if b == nil {
		return nil, nil
	}
	out, err := m.Body(*b)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (m *Mutator) optionalExpression(e *ast.Expression) (*ast.Expression, error) {
	if e == nil {
		return nil, nil
	}
	out, err := m.Expression(*e)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (m *Mutator) conditionBody(cb ast.ConditionBody) (ast.ConditionBody, error) {
	cond, err := m.Expression(cb.Condition)
	if err != nil {
		return ast.ConditionBody{}, err
	}
	body, err := m.Body(cb.Body)
	if err != nil {
		return ast.ConditionBody{}, err
	}
	return ast.ConditionBody{Condition: cond, Body: body}, nil
}

// Statement applies the statement transformers to s, then rebuilds the
// result from its rewritten children.
func (m *Mutator) Statement(s ast.Statement) (ast.Statement, error) {
	s, err := m.applyStatement(s)
	if err != nil {
		return nil, err
	}
	return m.statementChildren(s)
}

func (m *Mutator) statementChildren(s ast.Statement) (ast.Statement, error) {
	switch s := s.(type) {
	case *ast.ExpressionStatement:
		expr, err := m.Expression(s.Expr)
		if err != nil {
			return nil, err
		}
		return &ast.ExpressionStatement{Expr: expr}, nil
	case *ast.VarDecl:
		value, err := m.optionalExpression(s.Value)
		if err != nil {
			return nil, err
		}
		return &ast.VarDecl{
			Modifiers: slices.Clone(s.Modifiers),
			Type:      s.Type,
			Name:      s.Name,
			Value:     value,
		}, nil
	case *ast.Assign:
		target, err := m.Expression(s.Target)
		if err != nil {
			return nil, err
		}
		value, err := m.Expression(s.Value)
		if err != nil {
			return nil, err
		}
		return &ast.Assign{Target: target, Value: value}, nil
	case *ast.CompoundAssign:
		target, err := m.Expression(s.Target)
		if err != nil {
			return nil, err
		}
		value, err := m.Expression(s.Value)
		if err != nil {
			return nil, err
		}
		return &ast.CompoundAssign{Target: target, Op: s.Op, Value: value}, nil
	case *ast.IncDec:
		target, err := m.Expression(s.Target)
		if err != nil {
			return nil, err
		}
		return &ast.IncDec{Target: target, Increment: s.Increment}, nil
	case *ast.Return:
		value, err := m.optionalExpression(s.Value)
		if err != nil {
			return nil, err
		}
		return &ast.Return{Value: value}, nil
	case *ast.If:
		return m.ifStatement(s)
	case *ast.While:
		cb, err := m.conditionBody(s.ConditionBody)
		if err != nil {
			return nil, err
		}
		return &ast.While{ConditionBody: cb}, nil
	case *ast.DoWhile:
		cond, err := m.Expression(s.Condition)
		if err != nil {
			return nil, err
		}
		body, err := m.Body(s.Body)
		if err != nil {
			return nil, err
		}
		return &ast.DoWhile{Condition: cond, Body: body}, nil
	case *ast.For:
		return m.forStatement(s)
	case *ast.Switch:
		return m.switchStatement(s)
	case *ast.Continue:
		return &ast.Continue{}, nil
	case *ast.Break:
		return &ast.Break{}, nil
	default:
		return nil, unhandled("statement", s)
	}
}

func (m *Mutator) ifStatement(s *ast.If) (ast.Statement, error) {
	base, err := m.conditionBody(s.Base)
	if err != nil {
		return nil, err
	}
	var elseIfs []ast.ConditionBody
	for _, branch := range s.ElseIfs {
		cb, err := m.conditionBody(branch)
		if err != nil {
			return nil, err
		}
		elseIfs = append(elseIfs, cb)
	}
	elseBody, err := m.optionalBody(s.Else)
	if err != nil {
		return nil, err
	}
	return &ast.If{Base: base, ElseIfs: elseIfs, Else: elseBody}, nil
}

// forStatement rewrites the init and increment slots as statements, so the
// statement transformers see them too.
func (m *Mutator) forStatement(s *ast.For) (ast.Statement, error) {
	initStmt, err := m.Statement(s.Init)
	if err != nil {
		return nil, err
	}
	cond, err := m.Expression(s.Condition)
	if err != nil {
		return nil, err
	}
	inc, err := m.Statement(s.Increment)
	if err != nil {
		return nil, err
	}
	body, err := m.Body(s.Body)
	if err != nil {
		return nil, err
	}
	return &ast.For{Init: initStmt, Condition: cond, Increment: inc, Body: body}, nil
}

func (m *Mutator) switchStatement(s *ast.Switch) (ast.Statement, error) {
	value, err := m.Atom(s.Value)
	if err != nil {
		return nil, err
	}
	var cases []ast.CaseStatement
	for _, c := range s.Cases {
		match, err := m.Atom(c.Match)
		if err != nil {
			return nil, err
		}
		body, err := m.Body(c.Body)
		if err != nil {
			return nil, err
		}
		cases = append(cases, ast.CaseStatement{Match: match, Body: body})
	}
	def, err := m.optionalBody(s.Default)
	if err != nil {
		return nil, err
	}
	return &ast.Switch{Value: value, Cases: cases, Default: def}, nil
}
