package codegen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DanielGaull/miniC/ast"
)

func call(name string, args ...ast.Expression) ast.Expression {
	return ast.Expr(ident(name), &ast.Call{Args: args})
}

func binary(left ast.Atom, op ast.BinaryOp, right ast.Atom) ast.Expression {
	return ast.Expr(left, &ast.Binary{Op: op, Right: ast.Expr(right)})
}

func intLit(v int32) *ast.IntLiteral {
	return &ast.IntLiteral{Value: v}
}

func TestSimpleStatements(t *testing.T) {
	g := New()
	x := ast.Expr(ident("x"))
	tests := []struct {
		name     string
		stmt     ast.Statement
		expected string
	}{
		{"expression", &ast.ExpressionStatement{Expr: call("tick")}, "tick();\n"},
		{"declaration", &ast.VarDecl{Type: ast.Named("int"), Name: "x"}, "int x;\n"},
		{
			"declaration with modifiers",
			&ast.VarDecl{
				Modifiers: []ast.Modifier{ast.Static, ast.Const},
				Type:      ast.Named("int"),
				Name:      "limit",
				Value:     ast.ExprPtr(intLit(10)),
			},
			"static const int limit = 10;\n",
		},
		{"assign", &ast.Assign{Target: x, Value: ast.Expr(intLit(1))}, "x = 1;\n"},
		{
			"assign through pointer",
			&ast.Assign{
				Target: ast.Expr(ident("p"), &ast.PointerAccess{Member: "next"}),
				Value:  ast.Expr(ident("q")),
			},
			"p->next = q;\n",
		},
		{"compound assign", &ast.CompoundAssign{Target: x, Op: ast.LeftShift, Value: ast.Expr(intLit(2))}, "x <<= 2;\n"},
		{"increment", &ast.IncDec{Target: x, Increment: true}, "x++;\n"},
		{"decrement", &ast.IncDec{Target: x}, "x--;\n"},
		{"return", &ast.Return{Value: ast.ExprPtr(ident("x"))}, "return x;\n"},
		{"bare return", &ast.Return{}, "return;\n"},
		{"continue", &ast.Continue{}, "continue;\n"},
		{"break", &ast.Break{}, "break;\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, g.Statement(tt.stmt, 0))
			require.Equal(t, "        "+tt.expected, g.Statement(tt.stmt, 2))
		})
	}
}

func TestIfChain(t *testing.T) {
	stmt := &ast.If{
		Base: ast.ConditionBody{
			Condition: binary(ident("x"), ast.Equal, intLit(0)),
			Body:      ast.Block{&ast.Assign{Target: ast.Expr(ident("x")), Value: ast.Expr(intLit(1))}},
		},
		ElseIfs: []ast.ConditionBody{{
			Condition: binary(ident("x"), ast.Equal, intLit(1)),
			Body:      ast.Block{&ast.CompoundAssign{Target: ast.Expr(ident("x")), Op: ast.Add, Value: ast.Expr(intLit(2))}},
		}},
		Else: ast.NewBlock(&ast.IncDec{Target: ast.Expr(ident("x"))}),
	}
	expected := "    if (x == 0) {\n" +
		"        x = 1;\n" +
		"    } else if (x == 1) {\n" +
		"        x += 2;\n" +
		"    } else {\n" +
		"        x--;\n" +
		"    }\n"
	require.Equal(t, expected, New().Statement(stmt, 1))
}

func TestLoops(t *testing.T) {
	g := New()
	x := ast.Expr(ident("x"))

	while := &ast.While{ConditionBody: ast.ConditionBody{
		Condition: binary(ident("x"), ast.Less, intLit(10)),
		Body:      ast.Block{&ast.IncDec{Target: x, Increment: true}},
	}}
	require.Equal(t, "while (x < 10) {\n    x++;\n}\n", g.Statement(while, 0))

	doWhile := &ast.DoWhile{
		Condition: binary(ident("x"), ast.Greater, intLit(0)),
		Body:      ast.Block{&ast.IncDec{Target: x}},
	}
	require.Equal(t, "do {\n    x--;\n} while (x > 0);\n", g.Statement(doWhile, 0))

	loop := &ast.For{
		Init:      &ast.VarDecl{Type: ast.Named("int"), Name: "i", Value: ast.ExprPtr(intLit(0))},
		Condition: binary(ident("i"), ast.Less, intLit(3)),
		Increment: &ast.IncDec{Target: ast.Expr(ident("i")), Increment: true},
		Body:      ast.Block{&ast.Continue{}},
	}
	expected := "    for (int i = 0; i < 3; i++) {\n" +
		"        continue;\n" +
		"    }\n"
	require.Equal(t, expected, g.Statement(loop, 1))
}

func TestHeadlessForSlots(t *testing.T) {
	g := New()
	initStmt := &ast.Assign{Target: ast.Expr(ident("i")), Value: ast.Expr(intLit(0))}
	inc := &ast.CompoundAssign{Target: ast.Expr(ident("i")), Op: ast.Add, Value: ast.Expr(intLit(2))}

	require.Equal(t, "i = 0", g.HeadlessStatement(initStmt, 3))
	require.Equal(t, "i += 2", g.HeadlessStatement(inc, 3))
	require.Equal(t, "            i = 0;\n", g.Statement(initStmt, 3))

	loop := &ast.For{Init: initStmt, Condition: binary(ident("i"), ast.Less, intLit(8)), Increment: inc}
	text := g.Statement(loop, 0)
	header := text[:strings.Index(text, "{")]
	require.Equal(t, "for (i = 0; i < 8; i += 2) ", header)
	require.NotContains(t, header, "\n")
	require.Equal(t, "for (i = 0; i < 8; i += 2) {\n}\n", text)
}

func TestSwitch(t *testing.T) {
	g := New()
	sw := &ast.Switch{
		Value: ident("x"),
		Cases: []ast.CaseStatement{
			{Match: intLit(1), Body: ast.Block{&ast.ExpressionStatement{Expr: call("a")}}},
			{Match: intLit(2), Body: ast.Block{&ast.Break{}}},
		},
	}
	text := g.Statement(sw, 0)
	require.Equal(t, 2, strings.Count(text, "case "))
	require.Equal(t, 0, strings.Count(text, "default:"))
	require.Equal(t, "switch (x) {\n"+
		"    case 1:\n"+
		"        a();\n"+
		"    case 2:\n"+
		"        break;\n"+
		"}\n", text)

	sw.Default = ast.NewBlock(&ast.ExpressionStatement{Expr: call("b")})
	text = g.Statement(sw, 1)
	require.Equal(t, "    switch (x) {\n"+
		"        case 1:\n"+
		"            a();\n"+
		"        case 2:\n"+
		"            break;\n"+
		"        default:\n"+
		"            b();\n"+
		"    }\n", text)
	require.Greater(t, strings.Index(text, "default:"), strings.LastIndex(text, "case "))
}

func TestSwitchCharCases(t *testing.T) {
	sw := &ast.Switch{
		Value: ident("c"),
		Cases: []ast.CaseStatement{
			{Match: &ast.CharLiteral{Value: "a"}},
			{Match: &ast.CharLiteral{Value: "b"}, Body: ast.Block{&ast.Return{Value: ast.ExprPtr(intLit(1))}}},
		},
		Default: ast.NewBlock(),
	}
	expected := "switch (c) {\n" +
		"    case 'a':\n" +
		"    case 'b':\n" +
		"        return 1;\n" +
		"    default:\n" +
		"}\n"
	require.Equal(t, expected, New().Statement(sw, 0))
}

func TestNestedIndentation(t *testing.T) {
	stmt := &ast.While{ConditionBody: ast.ConditionBody{
		Condition: ast.Expr(&ast.BoolLiteral{Value: true}),
		Body: ast.Block{
			&ast.If{Base: ast.ConditionBody{
				Condition: ast.Expr(ident("done")),
				Body:      ast.Block{&ast.Break{}},
			}},
		},
	}}
	expected := "while (1) {\n" +
		"    if (done) {\n" +
		"        break;\n" +
		"    }\n" +
		"}\n"
	require.Equal(t, expected, New().Statement(stmt, 0))

	tabbed := New(WithIndent("\t"))
	require.Equal(t, "\twhile (1) {\n\t\tif (done) {\n\t\t\tbreak;\n\t\t}\n\t}\n", tabbed.Statement(stmt, 1))
}
