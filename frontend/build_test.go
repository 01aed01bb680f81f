package frontend

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DanielGaull/miniC/ast"
	"github.com/DanielGaull/miniC/errz"
)

func decodeJSON(t *testing.T, src string) *Event {
	t.Helper()
	ev, err := Decode(strings.NewReader(src), JSON)
	require.NoError(t, err)
	return ev
}

func build(t *testing.T, src string) (*ast.Program, error) {
	t.Helper()
	return Build(decodeJSON(t, src))
}

const addProgram = `{
  "rule": "program",
  "children": [
    {"rule": "import", "text": "<stdio.h>", "line": 1, "column": 1},
    {"rule": "function", "line": 2, "column": 1, "children": [
      {"rule": "functionHeader", "children": [
        {"rule": "type", "text": "int", "children": [{"rule": "identifier", "text": "int"}]},
        {"rule": "identifier", "text": "add"},
        {"rule": "parameter", "children": [
          {"rule": "type", "text": "int"},
          {"rule": "identifier", "text": "a"}
        ]},
        {"rule": "parameter", "children": [
          {"rule": "type", "text": "int"},
          {"rule": "identifier", "text": "b"}
        ]}
      ]},
      {"rule": "block", "children": [
        {"rule": "return", "children": [
          {"rule": "expression", "children": [
            {"rule": "identifier", "text": "a"},
            {"rule": "binary", "children": [
              {"rule": "op", "text": "+"},
              {"rule": "expression", "children": [{"rule": "identifier", "text": "b"}]}
            ]}
          ]}
        ]}
      ]}
    ]},
    {"rule": "EOI"}
  ]
}`

func TestBuildProgram(t *testing.T) {
	program, err := build(t, addProgram)
	require.NoError(t, err)
	expected := &ast.Program{Items: []ast.TopLevel{
		&ast.Import{Path: "stdio.h", IsLibrary: true},
		&ast.Function{
			Header: ast.FunctionHeader{
				ReturnType: ast.Named("int"),
				Name:       "add",
				Params: []ast.Parameter{
					{Type: ast.Named("int"), Name: "a"},
					{Type: ast.Named("int"), Name: "b"},
				},
			},
			Body: ast.Block{&ast.Return{Value: ast.ExprPtr(
				&ast.Ident{Name: ast.Plain("a")},
				&ast.Binary{Op: ast.Add, Right: ast.Expr(&ast.Ident{Name: ast.Plain("b")})},
			)}},
		},
	}}
	require.Equal(t, expected, program)
}

func TestDecodeYAMLMatchesJSON(t *testing.T) {
	src := `
rule: program
children:
  - rule: import
    text: '"util.h"'
  - rule: varDec
    children:
      - {rule: modifier, text: static}
      - {rule: type, text: "char*"}
      - {rule: identifier, text: name}
      - rule: expression
        children:
          - {rule: string, text: "hi"}
`
	fromYAML, err := Decode(strings.NewReader(src), YAML)
	require.NoError(t, err)
	fromJSON := decodeJSON(t, `{"rule":"program","children":[
		{"rule":"import","text":"\"util.h\""},
		{"rule":"varDec","children":[
			{"rule":"modifier","text":"static"},
			{"rule":"type","text":"char*"},
			{"rule":"identifier","text":"name"},
			{"rule":"expression","children":[{"rule":"string","text":"hi"}]}
		]}
	]}`)
	require.Equal(t, fromJSON, fromYAML)

	program, err := Build(fromYAML)
	require.NoError(t, err)
	require.Equal(t, &ast.Program{Items: []ast.TopLevel{
		&ast.Import{Path: "util.h"},
		&ast.VarDeclaration{
			Modifiers: []ast.Modifier{ast.Static},
			Type:      ast.Named("char").Pointer(),
			Name:      "name",
			Value:     ast.ExprPtr(&ast.StringLiteral{Value: "hi"}),
		},
	}}, program)
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"rule":`), JSON)
	require.Error(t, err)
	require.Contains(t, err.Error(), "syntax error: could not decode event stream")

	_, err = Decode(strings.NewReader(`{}`), Format("toml"))
	require.EqualError(t, err, `syntax error: unknown event format "toml"`)
}

func TestFormats(t *testing.T) {
	require.Equal(t, YAML, FormatFromPath("prog.yaml"))
	require.Equal(t, YAML, FormatFromPath("prog.YML"))
	require.Equal(t, JSON, FormatFromPath("prog.json"))
	require.Equal(t, JSON, FormatFromPath("prog"))

	f, ok := LookupFormat("YAML")
	require.True(t, ok)
	require.Equal(t, YAML, f)
	_, ok = LookupFormat("xml")
	require.False(t, ok)
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		expected string
	}{
		{
			"not a program",
			`{"rule":"block"}`,
			`syntax error: could not parse program: unexpected rule "block"`,
		},
		{
			"unknown top-level rule",
			`{"rule":"program","children":[{"rule":"bogus","line":3,"column":1}]}`,
			`syntax error: could not parse top-level item: unexpected rule "bogus" (3:1)`,
		},
		{
			"bad import",
			`{"rule":"program","children":[{"rule":"import","text":"stdio.h","line":1,"column":1}]}`,
			`syntax error: could not parse import: expected <path> or "path", got "stdio.h" (1:1)`,
		},
		{
			"function without body",
			`{"rule":"program","children":[{"rule":"function","line":2,"column":1,"children":[{"rule":"functionHeader"}]}]}`,
			`syntax error: could not parse function: rule "function" has 1 children (2:1)`,
		},
		{
			"int out of range",
			`{"rule":"program","children":[{"rule":"varDec","children":[
				{"rule":"type","text":"int"},
				{"rule":"identifier","text":"x"},
				{"rule":"expression","children":[{"rule":"int","text":"99999999999","line":4,"column":9}]}
			]}]}`,
			`syntax error: could not parse int literal: invalid value "99999999999" (4:9)`,
		},
		{
			"nan float",
			`{"rule":"program","children":[{"rule":"varDec","children":[
				{"rule":"type","text":"float"},
				{"rule":"identifier","text":"x"},
				{"rule":"expression","children":[{"rule":"float","text":"nanf","line":4,"column":11}]}
			]}]}`,
			`syntax error: could not parse float literal: non-finite value "nanf" (4:11)`,
		},
		{
			"infinite double",
			`{"rule":"program","children":[{"rule":"varDec","children":[
				{"rule":"type","text":"double"},
				{"rule":"identifier","text":"x"},
				{"rule":"expression","children":[{"rule":"double","text":"Infinity","line":4,"column":12}]}
			]}]}`,
			`syntax error: could not parse double literal: non-finite value "Infinity" (4:12)`,
		},
		{
			"float out of range",
			`{"rule":"program","children":[{"rule":"varDec","children":[
				{"rule":"type","text":"float"},
				{"rule":"identifier","text":"x"},
				{"rule":"expression","children":[{"rule":"float","text":"1e39f","line":4,"column":11}]}
			]}]}`,
			`syntax error: could not parse float literal: invalid value "1e39f" (4:11)`,
		},
		{
			"unknown modifier",
			`{"rule":"program","children":[{"rule":"varDec","children":[
				{"rule":"modifier","text":"mutable","line":1,"column":1},
				{"rule":"type","text":"int"},
				{"rule":"identifier","text":"x"}
			]}]}`,
			`syntax error: could not parse modifier: unknown modifier "mutable" (1:1)`,
		},
		{
			"unknown statement",
			`{"rule":"program","children":[{"rule":"function","children":[
				{"rule":"functionHeader","children":[{"rule":"type","text":"void"},{"rule":"identifier","text":"f"}]},
				{"rule":"block","children":[{"rule":"goto","line":5,"column":5}]}
			]}]}`,
			`syntax error: could not parse statement: unexpected rule "goto" (5:5)`,
		},
		{
			"bad compound operator",
			`{"rule":"program","children":[{"rule":"function","children":[
				{"rule":"functionHeader","children":[{"rule":"type","text":"void"},{"rule":"identifier","text":"f"}]},
				{"rule":"block","children":[{"rule":"compoundAssign","children":[
					{"rule":"expression","children":[{"rule":"identifier","text":"x"}]},
					{"rule":"op","text":"==","line":2,"column":7},
					{"rule":"expression","children":[{"rule":"int","text":"1"}]}
				]}]}
			]}]}`,
			`syntax error: could not parse compound assignment: invalid operator "==" (2:7)`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			program, err := build(t, tt.src)
			require.Nil(t, program)
			require.EqualError(t, err, tt.expected)

			var se *errz.StructuredError
			require.ErrorAs(t, err, &se)
			require.Equal(t, errz.ErrSyntax, se.Kind)
		})
	}
}

func TestBuildNil(t *testing.T) {
	program, err := Build(nil)
	require.Nil(t, program)
	require.EqualError(t, err, "syntax error: could not parse program: empty event stream")
}

func TestErrorFilename(t *testing.T) {
	ev := decodeJSON(t, `{"rule":"program","children":[{"rule":"bogus","line":3,"column":1}]}`)
	_, err := Build(ev, WithFilename("main.json"))
	require.EqualError(t, err, `syntax error: could not parse top-level item: unexpected rule "bogus" (main.json:3:1)`)
}

func TestTypes(t *testing.T) {
	b := &builder{}
	tests := []struct {
		name     string
		ev       *Event
		expected ast.Type
	}{
		{"plain", &Event{Rule: "type", Text: "int"}, ast.Named("int")},
		{"multi word", &Event{Rule: "type", Text: "unsigned int"}, ast.Named("unsigned int")},
		{
			"struct pointer",
			&Event{Rule: "type", Text: "struct node**", Children: []*Event{{Rule: "identifier", Text: "node"}}},
			ast.Type{Category: ast.StructRef, Name: ast.Plain("node"), PointerDepth: 2},
		},
		{"enum", &Event{Rule: "type", Text: "enum Color"}, ast.Type{Category: ast.EnumRef, Name: ast.Plain("Color")}},
		{"union", &Event{Rule: "type", Text: "union Value *"}, ast.Type{Category: ast.UnionRef, Name: ast.Plain("Value"), PointerDepth: 1}},
		{"qualified text", &Event{Rule: "type", Text: "geo::Point*"}, ast.Type{Name: ast.Qualified("geo", "Point"), PointerDepth: 1}},
		{
			"qualified child",
			&Event{Rule: "type", Text: "geo::Point", Children: []*Event{{
				Rule:     "qualifiedIdentifier",
				Children: []*Event{{Rule: "identifier", Text: "geo"}, {Rule: "identifier", Text: "Point"}},
			}}},
			ast.Type{Name: ast.Qualified("geo", "Point")},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			typ, err := b.typ(tt.ev)
			require.NoError(t, err)
			require.Equal(t, tt.expected, typ)
		})
	}

	_, err := b.typ(&Event{Rule: "type", Text: "**"})
	require.EqualError(t, err, `syntax error: could not parse type: missing type name in "**"`)
}

func TestLiteralAtoms(t *testing.T) {
	b := &builder{}
	tests := []struct {
		rule     string
		text     string
		expected ast.Atom
	}{
		{"char", "a", &ast.CharLiteral{Value: "a"}},
		{"string", `hi\n`, &ast.StringLiteral{Value: `hi\n`}},
		{"short", "3", &ast.ShortLiteral{Value: 3}},
		{"int", "-42", &ast.IntLiteral{Value: -42}},
		{"int", "0x10", &ast.IntLiteral{Value: 16}},
		{"long", "5L", &ast.LongLiteral{Value: 5}},
		{"long", "7", &ast.LongLiteral{Value: 7}},
		{"float", "2.5f", &ast.FloatLiteral{Value: 2.5}},
		{"double", "3.25", &ast.DoubleLiteral{Value: 3.25}},
		{"bool", "true", &ast.BoolLiteral{Value: true}},
		{"bool", "false", &ast.BoolLiteral{Value: false}},
		{"identifier", "x", &ast.Ident{Name: ast.Plain("x")}},
		{"qualifiedIdentifier", "math::pi", &ast.Ident{Name: ast.Qualified("math", "pi")}},
	}
	for _, tt := range tests {
		t.Run(tt.rule+" "+tt.text, func(t *testing.T) {
			atom, err := b.atom(&Event{Rule: tt.rule, Text: tt.text})
			require.NoError(t, err)
			require.Equal(t, tt.expected, atom)
		})
	}
}

func TestCompositeAtomsAndSteps(t *testing.T) {
	b := &builder{}
	x := &Event{Rule: "expression", Children: []*Event{{Rule: "identifier", Text: "x"}}}

	atom, err := b.atom(&Event{Rule: "cast", Children: []*Event{{Rule: "type", Text: "float"}, x}})
	require.NoError(t, err)
	require.Equal(t, &ast.Cast{Type: ast.Named("float"), Value: ast.Expr(&ast.Ident{Name: ast.Plain("x")})}, atom)

	atom, err = b.atom(&Event{Rule: "unary", Children: []*Event{{Rule: "op", Text: "&"}, x}})
	require.NoError(t, err)
	require.Equal(t, &ast.Unary{Op: ast.AddressOf, Value: ast.Expr(&ast.Ident{Name: ast.Plain("x")})}, atom)

	atom, err = b.atom(&Event{Rule: "sizeof", Children: []*Event{{Rule: "type", Text: "struct node"}}})
	require.NoError(t, err)
	require.Equal(t, &ast.SizeOf{Type: ast.Type{Category: ast.StructRef, Name: ast.Plain("node")}}, atom)

	expr, err := b.expression(&Event{Rule: "expression", Children: []*Event{
		{Rule: "identifier", Text: "p"},
		{Rule: "pointerMember", Text: "next"},
		{Rule: "member", Children: []*Event{{Rule: "identifier", Text: "items"}}},
		{Rule: "index", Children: []*Event{x}},
		{Rule: "call"},
		{Rule: "ternary", Children: []*Event{x, x}},
	}})
	require.NoError(t, err)
	xExpr := ast.Expr(&ast.Ident{Name: ast.Plain("x")})
	require.Equal(t, ast.Expr(&ast.Ident{Name: ast.Plain("p")},
		&ast.PointerAccess{Member: "next"},
		&ast.MemberAccess{Member: "items"},
		&ast.Index{Index: xExpr},
		&ast.Call{},
		&ast.Ternary{Then: xExpr, Else: xExpr},
	), expr)

	_, err = b.step(&Event{Rule: "member"})
	require.EqualError(t, err, "syntax error: could not parse member access: missing member name")
}
