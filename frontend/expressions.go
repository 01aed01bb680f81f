package frontend

import (
	"math"
	"strconv"
	"strings"

	"github.com/DanielGaull/miniC/ast"
)

// expression reads an atom event followed by zero or more step events.
func (b *builder) expression(ev *Event) (ast.Expression, error) {
	if ev.Rule != "expression" {
		return ast.Expression{}, b.unexpected(ev, "expression")
	}
	children, err := b.children(ev, "expression", 1, -1)
	if err != nil {
		return ast.Expression{}, err
	}
	atom, err := b.atom(children[0])
	if err != nil {
		return ast.Expression{}, err
	}
	expr := ast.Expression{Atom: atom}
	for _, child := range children[1:] {
		step, err := b.step(child)
		if err != nil {
			return ast.Expression{}, err
		}
		expr.Tail = append(expr.Tail, step)
	}
	return expr, nil
}

func (b *builder) atom(ev *Event) (ast.Atom, error) {
	text := strings.TrimSpace(ev.Text)
	switch ev.Rule {
	case "char":
		if ev.Text == "" {
			return nil, b.fail(ev, "char literal", "empty character")
		}
		return &ast.CharLiteral{Value: ev.Text}, nil
	case "string":
		return &ast.StringLiteral{Value: ev.Text}, nil
	case "short":
		v, err := strconv.ParseInt(text, 0, 16)
		if err != nil {
			return nil, b.fail(ev, "short literal", "invalid value %q", ev.Text)
		}
		return &ast.ShortLiteral{Value: int16(v)}, nil
	case "int":
		v, err := strconv.ParseInt(text, 0, 32)
		if err != nil {
			return nil, b.fail(ev, "int literal", "invalid value %q", ev.Text)
		}
		return &ast.IntLiteral{Value: int32(v)}, nil
	case "long":
		v, err := strconv.ParseInt(strings.TrimRight(text, "lL"), 0, 64)
		if err != nil {
			return nil, b.fail(ev, "long literal", "invalid value %q", ev.Text)
		}
		return &ast.LongLiteral{Value: v}, nil
	case "float":
		v, err := strconv.ParseFloat(strings.TrimRight(text, "fF"), 32)
		if err != nil {
			return nil, b.fail(ev, "float literal", "invalid value %q", ev.Text)
		}
		if !isFinite(v) {
			return nil, b.fail(ev, "float literal", "non-finite value %q", ev.Text)
		}
		return &ast.FloatLiteral{Value: float32(v)}, nil
	case "double":
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, b.fail(ev, "double literal", "invalid value %q", ev.Text)
		}
		if !isFinite(v) {
			return nil, b.fail(ev, "double literal", "non-finite value %q", ev.Text)
		}
		return &ast.DoubleLiteral{Value: v}, nil
	case "bool":
		v, err := strconv.ParseBool(text)
		if err != nil {
			return nil, b.fail(ev, "bool literal", "invalid value %q", ev.Text)
		}
		return &ast.BoolLiteral{Value: v}, nil
	case "identifier", "qualifiedIdentifier":
		id, err := b.identifier(ev)
		if err != nil {
			return nil, err
		}
		return &ast.Ident{Name: id}, nil
	case "cast":
		children, err := b.children(ev, "cast", 2, 2)
		if err != nil {
			return nil, err
		}
		typ, err := b.typ(children[0])
		if err != nil {
			return nil, err
		}
		value, err := b.expression(children[1])
		if err != nil {
			return nil, err
		}
		return &ast.Cast{Type: typ, Value: value}, nil
	case "unary":
		children, err := b.children(ev, "unary operation", 2, 2)
		if err != nil {
			return nil, err
		}
		op, ok := ast.LookupUnaryOp(strings.TrimSpace(children[0].Text))
		if !ok {
			return nil, b.fail(children[0], "unary operation", "invalid operator %q", children[0].Text)
		}
		value, err := b.expression(children[1])
		if err != nil {
			return nil, err
		}
		return &ast.Unary{Op: op, Value: value}, nil
	case "sizeof":
		children, err := b.children(ev, "sizeof", 1, 1)
		if err != nil {
			return nil, err
		}
		typ, err := b.typ(children[0])
		if err != nil {
			return nil, err
		}
		return &ast.SizeOf{Type: typ}, nil
	case "paren":
		children, err := b.children(ev, "parenthesized expression", 1, 1)
		if err != nil {
			return nil, err
		}
		inner, err := b.expression(children[0])
		if err != nil {
			return nil, err
		}
		return &ast.Paren{Inner: inner}, nil
	default:
		return nil, b.unexpected(ev, "atom")
	}
}

func (b *builder) step(ev *Event) (ast.Step, error) {
	switch ev.Rule {
	case "call":
		children, err := b.children(ev, "call", 0, -1)
		if err != nil {
			return nil, err
		}
		call := &ast.Call{}
		for _, child := range children {
			arg, err := b.expression(child)
			if err != nil {
				return nil, err
			}
			call.Args = append(call.Args, arg)
		}
		return call, nil
	case "binary":
		children, err := b.children(ev, "binary operation", 2, 2)
		if err != nil {
			return nil, err
		}
		op, ok := ast.LookupBinaryOp(strings.TrimSpace(children[0].Text))
		if !ok {
			return nil, b.fail(children[0], "binary operation", "invalid operator %q", children[0].Text)
		}
		right, err := b.expression(children[1])
		if err != nil {
			return nil, err
		}
		return &ast.Binary{Op: op, Right: right}, nil
	case "member":
		name, err := b.memberName(ev, "member access")
		if err != nil {
			return nil, err
		}
		return &ast.MemberAccess{Member: name}, nil
	case "pointerMember":
		name, err := b.memberName(ev, "pointer member access")
		if err != nil {
			return nil, err
		}
		return &ast.PointerAccess{Member: name}, nil
	case "index":
		children, err := b.children(ev, "index", 1, 1)
		if err != nil {
			return nil, err
		}
		index, err := b.expression(children[0])
		if err != nil {
			return nil, err
		}
		return &ast.Index{Index: index}, nil
	case "ternary":
		children, err := b.children(ev, "ternary conditional", 2, 2)
		if err != nil {
			return nil, err
		}
		then, els, err := b.expressionPair(children[0], children[1])
		if err != nil {
			return nil, err
		}
		return &ast.Ternary{Then: then, Else: els}, nil
	default:
		return nil, b.unexpected(ev, "expression step")
	}
}

// memberName takes the member from an identifier child, or from the event
// text when there is no child.
func (b *builder) memberName(ev *Event, kind string) (string, error) {
	children, err := b.children(ev, kind, 0, 1)
	if err != nil {
		return "", err
	}
	if len(children) == 1 {
		return b.name(children[0])
	}
	if name := strings.TrimSpace(ev.Text); name != "" {
		return name, nil
	}
	return "", b.fail(ev, kind, "missing member name")
}

// isFinite reports whether v has a C literal spelling.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
