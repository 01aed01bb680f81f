package codegen

import (
	"strings"

	"github.com/DanielGaull/miniC/ast"
)

// TopLevel renders one top-level item. prefix is the accumulated module
// prefix ("" at file scope) prepended to every name the item declares.
func (g *Generator) TopLevel(t ast.TopLevel, prefix string) string {
	g = g.within(prefix)
	switch t := t.(type) {
	case *ast.VarDeclaration:
		return g.varDeclaration(t, prefix)
	case *ast.Import:
		return g.Import(t)
	case *ast.Function:
		return g.Function(t, prefix)
	case *ast.FunctionHeader:
		return g.FunctionHeader(t, prefix)
	case *ast.Aggregate:
		return g.Aggregate(t, prefix)
	case *ast.Enum:
		return g.Enum(t, prefix)
	case *ast.TypeDef:
		return g.TypeDef(t, prefix)
	case *ast.Module:
		return g.Module(t, prefix)
	case *ast.PreprocessorDirective:
		return t.Text
	default:
		return unhandled(t)
	}
}

func (g *Generator) varDeclaration(d *ast.VarDeclaration, prefix string) string {
	var out strings.Builder
	out.WriteString(modifierList(d.Modifiers))
	out.WriteString(g.Type(d.Type))
	out.WriteString(" ")
	out.WriteString(prefix + d.Name)
	if d.Value != nil {
		out.WriteString(" = ")
		out.WriteString(g.Expression(*d.Value))
	}
	out.WriteString(";")
	return out.String()
}

// Import renders an include directive.
func (g *Generator) Import(d *ast.Import) string {
	if d.IsLibrary {
		return "#include <" + d.Path + ">"
	}
	return "#include \"" + d.Path + "\""
}

func (g *Generator) signature(h *ast.FunctionHeader, prefix string) string {
	params := make([]string, 0, len(h.Params))
	for _, p := range h.Params {
		params = append(params, g.Type(p.Type)+" "+p.Name)
	}
	return g.Type(h.ReturnType) + " " + prefix + h.Name + "(" + strings.Join(params, ", ") + ")"
}

// FunctionHeader renders a forward declaration.
func (g *Generator) FunctionHeader(h *ast.FunctionHeader, prefix string) string {
	g = g.within(prefix)
	sig := g.signature(h, prefix) + ";"
	if h.IsExtern {
		return "extern " + sig
	}
	return sig
}

// Function renders a function definition. The body is indented one level.
func (g *Generator) Function(f *ast.Function, prefix string) string {
	g = g.within(prefix)
	var out strings.Builder
	out.WriteString(g.signature(&f.Header, prefix))
	out.WriteString(" {\n")
	out.WriteString(g.Block(f.Body, 1))
	out.WriteString("}")
	return out.String()
}

// Module renders the module's items, one per line, with the module's name
// appended to prefix. The module itself emits nothing.
func (g *Generator) Module(m *ast.Module, prefix string) string {
	inner := ModulePrefix(prefix, m.Name)
	parts := make([]string, 0, len(m.Items))
	for _, item := range m.Items {
		parts = append(parts, g.TopLevel(item, inner))
	}
	return strings.Join(parts, "\n")
}

// TypeDef renders "typedef <target> <prefix><name>;". Inline aggregate and
// enum targets are rendered in pure mode.
func (g *Generator) TypeDef(d *ast.TypeDef, prefix string) string {
	g = g.within(prefix)
	var target string
	switch t := d.Target.(type) {
	case ast.Type:
		target = g.Type(t)
	case *ast.Aggregate:
		target = g.PureAggregate(t, 0)
	case *ast.Enum:
		target = g.PureEnum(t, 0)
	default:
		target = unhandled(t)
	}
	return "typedef " + target + " " + prefix + d.Name + ";"
}
