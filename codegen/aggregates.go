package codegen

import (
	"fmt"
	"strings"

	"github.com/DanielGaull/miniC/ast"
)

// Aggregate renders a struct or union in member mode:
//
//	typedef struct <prefix><name>__struct {
//	    ...
//	} <prefix><name>;
//
// Anonymous aggregates are always rendered in pure mode at level 0.
func (g *Generator) Aggregate(a *ast.Aggregate, prefix string) string {
	if a.IsAnonymous() {
		return g.PureAggregate(a, 0)
	}
	g = g.within(prefix)
	kw := a.Kind.Keyword()
	var out strings.Builder
	out.WriteString("typedef " + kw + " " + tagName(prefix+a.Name, kw) + " {\n")
	g.members(&out, a.Members, 1)
	out.WriteString("} " + prefix + a.Name + ";")
	return out.String()
}

// PureAggregate renders a struct or union body without a typedef or module
// prefix. The first line is not indented; members are indented at level+1
// and the closing brace at level.
func (g *Generator) PureAggregate(a *ast.Aggregate, level int) string {
	kw := a.Kind.Keyword()
	var out strings.Builder
	out.WriteString(kw + " ")
	if !a.IsAnonymous() {
		out.WriteString(tagName(a.Name, kw) + " ")
	}
	out.WriteString("{\n")
	g.members(&out, a.Members, level+1)
	out.WriteString(g.indent(level) + "}")
	return out.String()
}

func (g *Generator) members(out *strings.Builder, members []ast.Member, level int) {
	for _, m := range members {
		out.WriteString(g.indent(level))
		switch m := m.(type) {
		case *ast.Field:
			out.WriteString(g.Type(m.Type) + " " + m.Name)
		case *ast.NestedAggregate:
			out.WriteString(g.PureAggregate(m.Aggregate, level))
		default:
			unhandled(m)
		}
		out.WriteString(";\n")
	}
}

// Enum renders an enum in member mode:
//
//	typedef enum <prefix><name>__enum {
//	    ...
//	} <prefix><name>;
//
// Anonymous enums are always rendered in pure mode at level 0.
func (g *Generator) Enum(e *ast.Enum, prefix string) string {
	if e.IsAnonymous() {
		return g.PureEnum(e, 0)
	}
	var out strings.Builder
	out.WriteString("typedef enum " + tagName(prefix+e.Name, "enum") + " {\n")
	g.entries(&out, e.Entries, 1)
	out.WriteString("} " + prefix + e.Name + ";")
	return out.String()
}

// PureEnum renders an enum body without a typedef or module prefix, with
// the same indentation rules as PureAggregate.
func (g *Generator) PureEnum(e *ast.Enum, level int) string {
	var out strings.Builder
	out.WriteString("enum ")
	if !e.IsAnonymous() {
		out.WriteString(tagName(e.Name, "enum") + " ")
	}
	out.WriteString("{\n")
	g.entries(&out, e.Entries, level+1)
	out.WriteString(g.indent(level) + "}")
	return out.String()
}

func (g *Generator) entries(out *strings.Builder, entries []ast.EnumEntry, level int) {
	for i, e := range entries {
		out.WriteString(g.indent(level))
		out.WriteString(e.Name)
		if e.Value != nil {
			out.WriteString(fmt.Sprintf(" = %d", *e.Value))
		}
		if i+1 < len(entries) {
			out.WriteString(",")
		}
		out.WriteString("\n")
	}
}
