package frontend

import (
	"strings"

	"github.com/DanielGaull/miniC/ast"
)

func (b *builder) block(ev *Event) (ast.Block, error) {
	if ev.Rule != "block" {
		return nil, b.unexpected(ev, "block")
	}
	children, err := b.children(ev, "block", 0, -1)
	if err != nil {
		return nil, err
	}
	block := make(ast.Block, 0, len(children))
	for _, child := range children {
		s, err := b.statement(child)
		if err != nil {
			return nil, err
		}
		block = append(block, s)
	}
	return block, nil
}

func (b *builder) statement(ev *Event) (ast.Statement, error) {
	switch ev.Rule {
	case "exprStmt":
		children, err := b.children(ev, "expression statement", 1, 1)
		if err != nil {
			return nil, err
		}
		expr, err := b.expression(children[0])
		if err != nil {
			return nil, err
		}
		return &ast.ExpressionStatement{Expr: expr}, nil
	case "varDec":
		mods, typ, name, value, err := b.declaration(ev, "variable declaration")
		if err != nil {
			return nil, err
		}
		return &ast.VarDecl{Modifiers: mods, Type: typ, Name: name, Value: value}, nil
	case "assign":
		children, err := b.children(ev, "assignment", 2, 2)
		if err != nil {
			return nil, err
		}
		target, value, err := b.expressionPair(children[0], children[1])
		if err != nil {
			return nil, err
		}
		return &ast.Assign{Target: target, Value: value}, nil
	case "compoundAssign":
		return b.compoundAssign(ev)
	case "incDec":
		return b.incDec(ev)
	case "return":
		children, err := b.children(ev, "return statement", 0, 1)
		if err != nil {
			return nil, err
		}
		ret := &ast.Return{}
		if len(children) == 1 {
			expr, err := b.expression(children[0])
			if err != nil {
				return nil, err
			}
			ret.Value = &expr
		}
		return ret, nil
	case "if":
		return b.ifStatement(ev)
	case "while":
		children, err := b.children(ev, "while loop", 2, 2)
		if err != nil {
			return nil, err
		}
		cb, err := b.conditionParts(children[0], children[1])
		if err != nil {
			return nil, err
		}
		return &ast.While{ConditionBody: cb}, nil
	case "doWhile":
		children, err := b.children(ev, "do-while loop", 2, 2)
		if err != nil {
			return nil, err
		}
		body, err := b.block(children[0])
		if err != nil {
			return nil, err
		}
		cond, err := b.expression(children[1])
		if err != nil {
			return nil, err
		}
		return &ast.DoWhile{Condition: cond, Body: body}, nil
	case "for":
		return b.forStatement(ev)
	case "switch":
		return b.switchStatement(ev)
	case "continue":
		return &ast.Continue{}, nil
	case "break":
		return &ast.Break{}, nil
	default:
		return nil, b.unexpected(ev, "statement")
	}
}

func (b *builder) expressionPair(left, right *Event) (ast.Expression, ast.Expression, error) {
	l, err := b.expression(left)
	if err != nil {
		return ast.Expression{}, ast.Expression{}, err
	}
	r, err := b.expression(right)
	if err != nil {
		return ast.Expression{}, ast.Expression{}, err
	}
	return l, r, nil
}

// compoundAssign reads expression, op, expression. The operator text may
// be given with or without its trailing "=".
func (b *builder) compoundAssign(ev *Event) (ast.Statement, error) {
	children, err := b.children(ev, "compound assignment", 3, 3)
	if err != nil {
		return nil, err
	}
	opText := strings.TrimSuffix(strings.TrimSpace(children[1].Text), "=")
	op, ok := ast.LookupBinaryOp(opText)
	if !ok || !op.IsArithmetic() {
		return nil, b.fail(children[1], "compound assignment", "invalid operator %q", children[1].Text)
	}
	target, value, err := b.expressionPair(children[0], children[2])
	if err != nil {
		return nil, err
	}
	return &ast.CompoundAssign{Target: target, Op: op, Value: value}, nil
}

func (b *builder) incDec(ev *Event) (ast.Statement, error) {
	children, err := b.children(ev, "increment", 2, 2)
	if err != nil {
		return nil, err
	}
	target, err := b.expression(children[0])
	if err != nil {
		return nil, err
	}
	switch strings.TrimSpace(children[1].Text) {
	case "++":
		return &ast.IncDec{Target: target, Increment: true}, nil
	case "--":
		return &ast.IncDec{Target: target}, nil
	default:
		return nil, b.fail(children[1], "increment", "invalid operator %q", children[1].Text)
	}
}

func (b *builder) conditionParts(cond, body *Event) (ast.ConditionBody, error) {
	c, err := b.expression(cond)
	if err != nil {
		return ast.ConditionBody{}, err
	}
	block, err := b.block(body)
	if err != nil {
		return ast.ConditionBody{}, err
	}
	return ast.ConditionBody{Condition: c, Body: block}, nil
}

func (b *builder) conditionBody(ev *Event) (ast.ConditionBody, error) {
	if ev.Rule != "conditionBody" {
		return ast.ConditionBody{}, b.unexpected(ev, "condition")
	}
	children, err := b.children(ev, "condition", 2, 2)
	if err != nil {
		return ast.ConditionBody{}, err
	}
	return b.conditionParts(children[0], children[1])
}

// ifStatement reads conditionBody, conditionBody* for the else-if
// branches, then an optional "else" wrapping a block.
func (b *builder) ifStatement(ev *Event) (ast.Statement, error) {
	children, err := b.children(ev, "if statement", 1, -1)
	if err != nil {
		return nil, err
	}
	stmt := &ast.If{}
	if stmt.Base, err = b.conditionBody(children[0]); err != nil {
		return nil, err
	}
	rest := children[1:]
	if n := len(rest); n > 0 && rest[n-1].Rule == "else" {
		parts, err := b.children(rest[n-1], "else branch", 1, 1)
		if err != nil {
			return nil, err
		}
		body, err := b.block(parts[0])
		if err != nil {
			return nil, err
		}
		stmt.Else = &body
		rest = rest[:n-1]
	}
	for _, child := range rest {
		cb, err := b.conditionBody(child)
		if err != nil {
			return nil, err
		}
		stmt.ElseIfs = append(stmt.ElseIfs, cb)
	}
	return stmt, nil
}

func (b *builder) forStatement(ev *Event) (ast.Statement, error) {
	children, err := b.children(ev, "for loop", 4, 4)
	if err != nil {
		return nil, err
	}
	initStmt, err := b.statement(children[0])
	if err != nil {
		return nil, err
	}
	cond, err := b.expression(children[1])
	if err != nil {
		return nil, err
	}
	inc, err := b.statement(children[2])
	if err != nil {
		return nil, err
	}
	for i, s := range []ast.Statement{initStmt, inc} {
		if !ast.IsForClause(s) {
			return nil, b.fail(children[i*2], "for loop", "%s cannot appear in the loop header", ast.Describe(s))
		}
	}
	body, err := b.block(children[3])
	if err != nil {
		return nil, err
	}
	return &ast.For{Init: initStmt, Condition: cond, Increment: inc, Body: body}, nil
}

// switchStatement reads the switched atom, then case and default events.
// A default may appear anywhere among the cases but only once.
func (b *builder) switchStatement(ev *Event) (ast.Statement, error) {
	children, err := b.children(ev, "switch statement", 1, -1)
	if err != nil {
		return nil, err
	}
	stmt := &ast.Switch{}
	if stmt.Value, err = b.atom(children[0]); err != nil {
		return nil, err
	}
	for _, child := range children[1:] {
		switch child.Rule {
		case "case":
			parts, err := b.children(child, "case", 2, 2)
			if err != nil {
				return nil, err
			}
			match, err := b.atom(parts[0])
			if err != nil {
				return nil, err
			}
			body, err := b.block(parts[1])
			if err != nil {
				return nil, err
			}
			stmt.Cases = append(stmt.Cases, ast.CaseStatement{Match: match, Body: body})
		case "default":
			if stmt.Default != nil {
				return nil, b.fail(child, "switch statement", "more than one default")
			}
			parts, err := b.children(child, "default", 1, 1)
			if err != nil {
				return nil, err
			}
			body, err := b.block(parts[0])
			if err != nil {
				return nil, err
			}
			stmt.Default = &body
		default:
			return nil, b.unexpected(child, "switch case")
		}
	}
	return stmt, nil
}
