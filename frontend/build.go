package frontend

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/DanielGaull/miniC/ast"
	"github.com/DanielGaull/miniC/errz"
)

// Option configures Build.
type Option func(*builder)

// WithFilename sets the file name reported in error locations.
func WithFilename(name string) Option {
	return func(b *builder) {
		b.filename = name
	}
}

type builder struct {
	filename string
}

// Build maps a "program" event onto an AST.
func Build(root *Event, opts ...Option) (*ast.Program, error) {
	b := &builder{}
	for _, opt := range opts {
		opt(b)
	}
	if root == nil {
		return nil, errz.New(errz.ErrSyntax, "could not parse program", errz.SourceLocation{}).
			WithCause(errors.New("empty event stream"))
	}
	return b.program(root)
}

func (b *builder) location(ev *Event) errz.SourceLocation {
	return errz.SourceLocation{Filename: b.filename, Line: ev.Line, Column: ev.Column}
}

// fail reports that ev could not be mapped onto a node of the given kind.
func (b *builder) fail(ev *Event, kind string, format string, args ...any) error {
	return errz.Newf(errz.ErrSyntax, b.location(ev), "could not parse %s", kind).
		WithCause(fmt.Errorf(format, args...))
}

func (b *builder) unexpected(ev *Event, kind string) error {
	return b.fail(ev, kind, "unexpected rule %q", ev.Rule)
}

// children checks that ev has between lo and hi children. A negative hi
// means no upper bound.
func (b *builder) children(ev *Event, kind string, lo, hi int) ([]*Event, error) {
	n := len(ev.Children)
	if n < lo || (hi >= 0 && n > hi) {
		return nil, b.fail(ev, kind, "rule %q has %d children", ev.Rule, n)
	}
	for i, child := range ev.Children {
		if child == nil {
			return nil, b.fail(ev, kind, "child %d is empty", i)
		}
	}
	return ev.Children, nil
}

func (b *builder) program(ev *Event) (*ast.Program, error) {
	if ev.Rule != "program" {
		return nil, b.unexpected(ev, "program")
	}
	children, err := b.children(ev, "program", 0, -1)
	if err != nil {
		return nil, err
	}
	program := &ast.Program{}
	for _, child := range children {
		if child.Rule == "EOI" {
			continue
		}
		item, err := b.topLevel(child)
		if err != nil {
			return nil, err
		}
		program.Items = append(program.Items, item)
	}
	return program, nil
}

func (b *builder) topLevel(ev *Event) (ast.TopLevel, error) {
	switch ev.Rule {
	case "varDec":
		mods, typ, name, value, err := b.declaration(ev, "variable declaration")
		if err != nil {
			return nil, err
		}
		return &ast.VarDeclaration{Modifiers: mods, Type: typ, Name: name, Value: value}, nil
	case "import":
		return b.importDirective(ev)
	case "function":
		return b.function(ev)
	case "functionHeader":
		return b.functionHeader(ev)
	case "struct", "union":
		return b.aggregate(ev)
	case "enum":
		return b.enum(ev)
	case "typedef":
		return b.typeDef(ev)
	case "module":
		return b.module(ev)
	case "preprocessor":
		if strings.TrimSpace(ev.Text) == "" {
			return nil, b.fail(ev, "preprocessor directive", "directive text is empty")
		}
		return &ast.PreprocessorDirective{Text: ev.Text}, nil
	default:
		return nil, b.unexpected(ev, "top-level item")
	}
}

// declaration handles the shape shared by global and local variables:
// modifier*, type, identifier, expression?
func (b *builder) declaration(ev *Event, kind string) ([]ast.Modifier, ast.Type, string, *ast.Expression, error) {
	children, err := b.children(ev, kind, 2, -1)
	if err != nil {
		return nil, ast.Type{}, "", nil, err
	}
	var mods []ast.Modifier
	i := 0
	for ; i < len(children) && children[i].Rule == "modifier"; i++ {
		mod, ok := ast.LookupModifier(children[i].Text)
		if !ok {
			return nil, ast.Type{}, "", nil, b.fail(children[i], "modifier", "unknown modifier %q", children[i].Text)
		}
		mods = append(mods, mod)
	}
	rest := children[i:]
	if len(rest) < 2 || len(rest) > 3 {
		return nil, ast.Type{}, "", nil, b.fail(ev, kind, "expected type, name and optional value")
	}
	typ, err := b.typ(rest[0])
	if err != nil {
		return nil, ast.Type{}, "", nil, err
	}
	name, err := b.name(rest[1])
	if err != nil {
		return nil, ast.Type{}, "", nil, err
	}
	var value *ast.Expression
	if len(rest) == 3 {
		expr, err := b.expression(rest[2])
		if err != nil {
			return nil, ast.Type{}, "", nil, err
		}
		value = &expr
	}
	return mods, typ, name, value, nil
}

func (b *builder) importDirective(ev *Event) (*ast.Import, error) {
	text := strings.TrimSpace(ev.Text)
	if len(text) >= 2 {
		first, last := text[0], text[len(text)-1]
		path := text[1 : len(text)-1]
		switch {
		case first == '<' && last == '>' && path != "":
			return &ast.Import{Path: path, IsLibrary: true}, nil
		case first == '"' && last == '"' && path != "":
			return &ast.Import{Path: path}, nil
		}
	}
	return nil, b.fail(ev, "import", "expected <path> or \"path\", got %q", ev.Text)
}

func (b *builder) function(ev *Event) (*ast.Function, error) {
	children, err := b.children(ev, "function", 2, 2)
	if err != nil {
		return nil, err
	}
	header, err := b.functionHeader(children[0])
	if err != nil {
		return nil, err
	}
	body, err := b.block(children[1])
	if err != nil {
		return nil, err
	}
	return &ast.Function{Header: *header, Body: body}, nil
}

func (b *builder) functionHeader(ev *Event) (*ast.FunctionHeader, error) {
	if ev.Rule != "functionHeader" {
		return nil, b.unexpected(ev, "function header")
	}
	children, err := b.children(ev, "function header", 2, -1)
	if err != nil {
		return nil, err
	}
	header := &ast.FunctionHeader{}
	if children[0].Rule == "extern" {
		header.IsExtern = true
		children = children[1:]
		if len(children) < 2 {
			return nil, b.fail(ev, "function header", "missing return type or name")
		}
	}
	if header.ReturnType, err = b.typ(children[0]); err != nil {
		return nil, err
	}
	if header.Name, err = b.name(children[1]); err != nil {
		return nil, err
	}
	for _, child := range children[2:] {
		param, err := b.parameter(child)
		if err != nil {
			return nil, err
		}
		header.Params = append(header.Params, param)
	}
	return header, nil
}

func (b *builder) parameter(ev *Event) (ast.Parameter, error) {
	if ev.Rule != "parameter" {
		return ast.Parameter{}, b.unexpected(ev, "parameter")
	}
	children, err := b.children(ev, "parameter", 2, 2)
	if err != nil {
		return ast.Parameter{}, err
	}
	typ, err := b.typ(children[0])
	if err != nil {
		return ast.Parameter{}, err
	}
	name, err := b.name(children[1])
	if err != nil {
		return ast.Parameter{}, err
	}
	return ast.Parameter{Type: typ, Name: name}, nil
}

// aggregate handles "struct" and "union": identifier? then members.
func (b *builder) aggregate(ev *Event) (*ast.Aggregate, error) {
	kind := ast.StructKind
	if ev.Rule == "union" {
		kind = ast.UnionKind
	}
	children, err := b.children(ev, kind.Keyword(), 0, -1)
	if err != nil {
		return nil, err
	}
	agg := &ast.Aggregate{Kind: kind}
	if len(children) > 0 && children[0].Rule == "identifier" {
		agg.Name = children[0].Text
		children = children[1:]
	}
	for _, child := range children {
		switch child.Rule {
		case "field":
			fields, err := b.children(child, "field", 2, 2)
			if err != nil {
				return nil, err
			}
			typ, err := b.typ(fields[0])
			if err != nil {
				return nil, err
			}
			name, err := b.name(fields[1])
			if err != nil {
				return nil, err
			}
			agg.Members = append(agg.Members, &ast.Field{Type: typ, Name: name})
		case "struct", "union":
			nested, err := b.aggregate(child)
			if err != nil {
				return nil, err
			}
			agg.Members = append(agg.Members, &ast.NestedAggregate{Aggregate: nested})
		default:
			return nil, b.unexpected(child, kind.Keyword()+" member")
		}
	}
	return agg, nil
}

func (b *builder) enum(ev *Event) (*ast.Enum, error) {
	children, err := b.children(ev, "enum", 0, -1)
	if err != nil {
		return nil, err
	}
	e := &ast.Enum{}
	if len(children) > 0 && children[0].Rule == "identifier" {
		e.Name = children[0].Text
		children = children[1:]
	}
	for _, child := range children {
		if child.Rule != "enumEntry" {
			return nil, b.unexpected(child, "enum entry")
		}
		parts, err := b.children(child, "enum entry", 1, 2)
		if err != nil {
			return nil, err
		}
		name, err := b.name(parts[0])
		if err != nil {
			return nil, err
		}
		entry := ast.EnumEntry{Name: name}
		if len(parts) == 2 {
			v, err := strconv.ParseInt(strings.TrimSpace(parts[1].Text), 0, 64)
			if err != nil {
				return nil, b.fail(parts[1], "enum entry", "invalid value %q", parts[1].Text)
			}
			entry.Value = &v
		}
		e.Entries = append(e.Entries, entry)
	}
	return e, nil
}

func (b *builder) typeDef(ev *Event) (*ast.TypeDef, error) {
	children, err := b.children(ev, "typedef", 2, 2)
	if err != nil {
		return nil, err
	}
	var target ast.TypeDefTarget
	switch children[0].Rule {
	case "type":
		target, err = b.typ(children[0])
	case "struct", "union":
		target, err = b.aggregate(children[0])
	case "enum":
		target, err = b.enum(children[0])
	default:
		return nil, b.unexpected(children[0], "typedef target")
	}
	if err != nil {
		return nil, err
	}
	name, err := b.name(children[1])
	if err != nil {
		return nil, err
	}
	return &ast.TypeDef{Name: name, Target: target}, nil
}

func (b *builder) module(ev *Event) (*ast.Module, error) {
	children, err := b.children(ev, "module", 1, -1)
	if err != nil {
		return nil, err
	}
	name, err := b.name(children[0])
	if err != nil {
		return nil, err
	}
	m := &ast.Module{Name: name}
	for _, child := range children[1:] {
		item, err := b.topLevel(child)
		if err != nil {
			return nil, err
		}
		m.Items = append(m.Items, item)
	}
	return m, nil
}

// name reads a plain identifier event.
func (b *builder) name(ev *Event) (string, error) {
	if ev.Rule != "identifier" {
		return "", b.unexpected(ev, "identifier")
	}
	return ev.Text, nil
}

// identifier reads a plain or module-qualified identifier. A qualified
// identifier has two identifier children or text of the form "m::name".
func (b *builder) identifier(ev *Event) (ast.Identifier, error) {
	switch ev.Rule {
	case "identifier":
		return ast.Plain(ev.Text), nil
	case "qualifiedIdentifier":
		if len(ev.Children) == 0 {
			module, member, ok := strings.Cut(ev.Text, "::")
			if !ok {
				return ast.Identifier{}, b.fail(ev, "qualified identifier", "expected module::name, got %q", ev.Text)
			}
			return ast.Qualified(module, member), nil
		}
		parts, err := b.children(ev, "qualified identifier", 2, 2)
		if err != nil {
			return ast.Identifier{}, err
		}
		module, err := b.name(parts[0])
		if err != nil {
			return ast.Identifier{}, err
		}
		member, err := b.name(parts[1])
		if err != nil {
			return ast.Identifier{}, err
		}
		return ast.Qualified(module, member), nil
	default:
		return ast.Identifier{}, b.unexpected(ev, "identifier")
	}
}

// typ reads a "type" event. The text carries the category keyword and the
// pointer stars, e.g. "struct node**"; the name comes from the identifier
// child, or from the text when there is none.
func (b *builder) typ(ev *Event) (ast.Type, error) {
	if ev.Rule != "type" {
		return ast.Type{}, b.unexpected(ev, "type")
	}
	children, err := b.children(ev, "type", 0, 1)
	if err != nil {
		return ast.Type{}, err
	}
	text := strings.TrimSpace(ev.Text)
	t := ast.Type{PointerDepth: uint(strings.Count(text, "*"))}
	base := strings.TrimSpace(strings.ReplaceAll(text, "*", ""))
	if keyword, rest, ok := strings.Cut(base, " "); ok {
		switch keyword {
		case "struct":
			t.Category, base = ast.StructRef, strings.TrimSpace(rest)
		case "enum":
			t.Category, base = ast.EnumRef, strings.TrimSpace(rest)
		case "union":
			t.Category, base = ast.UnionRef, strings.TrimSpace(rest)
		}
	}
	if len(children) == 1 {
		if t.Name, err = b.identifier(children[0]); err != nil {
			return ast.Type{}, err
		}
		return t, nil
	}
	if base == "" {
		return ast.Type{}, b.fail(ev, "type", "missing type name in %q", ev.Text)
	}
	if module, member, ok := strings.Cut(base, "::"); ok {
		t.Name = ast.Qualified(module, member)
	} else {
		t.Name = ast.Plain(base)
	}
	return t, nil
}
