package ast

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNeedsTerminator(t *testing.T) {
	tests := []struct {
		stmt     Statement
		expected bool
	}{
		{&ExpressionStatement{}, true},
		{&VarDecl{}, true},
		{&Assign{}, true},
		{&CompoundAssign{}, true},
		{&IncDec{}, true},
		{&Return{}, true},
		{&DoWhile{}, true},
		{&Continue{}, true},
		{&Break{}, true},
		{&If{}, false},
		{&While{}, false},
		{&For{}, false},
		{&Switch{}, false},
	}
	for _, tt := range tests {
		t.Run(Describe(tt.stmt), func(t *testing.T) {
			require.Equal(t, tt.expected, tt.stmt.NeedsTerminator())
		})
	}
}

func TestIsForClause(t *testing.T) {
	for _, stmt := range []Statement{&ExpressionStatement{}, &VarDecl{}, &Assign{}, &CompoundAssign{}, &IncDec{}} {
		require.True(t, IsForClause(stmt), Describe(stmt))
	}
	for _, stmt := range []Statement{nil, &Return{}, &Break{}, &Continue{}, &DoWhile{}, &If{}, &While{}, &For{}, &Switch{}} {
		require.False(t, IsForClause(stmt), "%T", stmt)
	}
}

func TestAnonymity(t *testing.T) {
	require.True(t, (&Aggregate{}).IsAnonymous())
	require.False(t, (&Aggregate{Name: "Point"}).IsAnonymous())
	require.True(t, (&Aggregate{Kind: UnionKind}).IsUnion())
	require.True(t, (&Enum{}).IsAnonymous())
	require.False(t, (&Enum{Name: "Color"}).IsAnonymous())
}

func TestIdentifier(t *testing.T) {
	require.Equal(t, "x", Plain("x").String())
	require.False(t, Plain("x").IsQualified())
	q := Qualified("math", "add")
	require.True(t, q.IsQualified())
	require.Equal(t, "math::add", q.String())
}

func TestTypePointer(t *testing.T) {
	typ := Named("char").Pointer().Pointer()
	require.Equal(t, uint(2), typ.PointerDepth)
	require.Equal(t, "char", typ.Name.Name)
	require.Equal(t, "", PlainType.Keyword())
	require.Equal(t, "struct", StructRef.Keyword())
	require.Equal(t, "union", UnionRef.String())
	require.Equal(t, "plain", PlainType.String())
}

func TestLookupOperators(t *testing.T) {
	op, ok := LookupBinaryOp("<<")
	require.True(t, ok)
	require.Equal(t, LeftShift, op)
	_, ok = LookupBinaryOp("**")
	require.False(t, ok)
	require.True(t, Add.IsArithmetic())
	require.False(t, LogicAnd.IsArithmetic())

	uop, ok := LookupUnaryOp("&")
	require.True(t, ok)
	require.Equal(t, AddressOf, uop)
	_, ok = LookupUnaryOp("+")
	require.False(t, ok)

	m, ok := LookupModifier("static")
	require.True(t, ok)
	require.Equal(t, Static, m)
	_, ok = LookupModifier("auto")
	require.False(t, ok)
}

func TestCopyAggregate(t *testing.T) {
	orig := &Aggregate{
		Name: "Shape",
		Members: []Member{
			&Field{Type: Named("int"), Name: "kind"},
			&NestedAggregate{Aggregate: &Aggregate{
				Kind:    UnionKind,
				Members: []Member{&Field{Type: Named("float"), Name: "radius"}},
			}},
		},
	}
	cp := orig.Copy()
	require.Equal(t, orig, cp)

	cp.Members[0].(*Field).Name = "tag"
	cp.Members[1].(*NestedAggregate).Aggregate.Members[0].(*Field).Name = "side"
	require.Equal(t, "kind", orig.Members[0].(*Field).Name)
	require.Equal(t, "radius", orig.Members[1].(*NestedAggregate).Aggregate.Members[0].(*Field).Name)
}

func TestCopyEnumAndTypeDef(t *testing.T) {
	v := int64(4)
	orig := &TypeDef{Name: "Color", Target: &Enum{Entries: []EnumEntry{{Name: "RED"}, {Name: "BLUE", Value: &v}}}}
	cp := orig.Copy()
	require.Equal(t, orig, cp)

	*cp.Target.(*Enum).Entries[1].Value = 9
	require.Equal(t, int64(4), v)

	alias := &TypeDef{Name: "byte", Target: Named("char")}
	require.Equal(t, alias, alias.Copy())
}

func TestCopyFunctionHeader(t *testing.T) {
	orig := &FunctionHeader{
		ReturnType: Named("int"),
		Name:       "add",
		Params:     []Parameter{{Type: Named("int"), Name: "a"}},
	}
	cp := orig.Copy()
	require.Equal(t, orig, cp)
	cp.Params[0].Name = "b"
	require.Equal(t, "a", orig.Params[0].Name)
}

func TestDeclaredName(t *testing.T) {
	require.Equal(t, "main", DeclaredName(&Function{Header: FunctionHeader{Name: "main"}}))
	require.Equal(t, "math", DeclaredName(&Module{Name: "math"}))
	require.Equal(t, "", DeclaredName(&Import{Path: "stdio.h"}))
	require.Equal(t, "", DeclaredName(&Aggregate{}))
}

func TestNewBlock(t *testing.T) {
	require.Equal(t, Block{}, *NewBlock())
	require.Len(t, *NewBlock(&Break{}, &Continue{}), 2)
}
