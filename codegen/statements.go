package codegen

import (
	"strings"

	"github.com/DanielGaull/miniC/ast"
)

// Block renders each statement at level.
func (g *Generator) Block(b ast.Block, level int) string {
	var out strings.Builder
	for _, s := range b {
		out.WriteString(g.Statement(s, level))
	}
	return out.String()
}

// Statement renders a statement on its own line(s): indented to level,
// closed with ";" when the statement kind needs a terminator, and ending in
// a newline.
func (g *Generator) Statement(s ast.Statement, level int) string {
	text := g.indent(level) + g.HeadlessStatement(s, level)
	if s.NeedsTerminator() {
		text += ";"
	}
	return text + "\n"
}

// HeadlessStatement renders a statement without leading indentation,
// terminator or trailing newline, so it can be embedded inline, as in a for
// loop header. Nested bodies are still indented relative to level.
func (g *Generator) HeadlessStatement(s ast.Statement, level int) string {
	switch s := s.(type) {
	case *ast.ExpressionStatement:
		return g.Expression(s.Expr)
	case *ast.VarDecl:
		text := modifierList(s.Modifiers) + g.Type(s.Type) + " " + s.Name
		if s.Value != nil {
			text += " = " + g.Expression(*s.Value)
		}
		return text
	case *ast.Assign:
		return g.Expression(s.Target) + " = " + g.Expression(s.Value)
	case *ast.CompoundAssign:
		return g.Expression(s.Target) + " " + string(s.Op) + "= " + g.Expression(s.Value)
	case *ast.IncDec:
		if s.Increment {
			return g.Expression(s.Target) + "++"
		}
		return g.Expression(s.Target) + "--"
	case *ast.Return:
		if s.Value == nil {
			return "return"
		}
		return "return " + g.Expression(*s.Value)
	case *ast.If:
		return g.ifStatement(s, level)
	case *ast.While:
		return "while (" + g.Expression(s.Condition) + ") " + g.body(s.Body, level)
	case *ast.DoWhile:
		return "do " + g.body(s.Body, level) + " while (" + g.Expression(s.Condition) + ")"
	case *ast.For:
		return "for (" +
			g.HeadlessStatement(s.Init, level) + "; " +
			g.Expression(s.Condition) + "; " +
			g.HeadlessStatement(s.Increment, level) + ") " +
			g.body(s.Body, level)
	case *ast.Switch:
		return g.switchStatement(s, level)
	case *ast.Continue:
		return "continue"
	case *ast.Break:
		return "break"
	default:
		return unhandled(s)
	}
}

// body renders a braced block whose statements sit one level deeper than
// the braces.
func (g *Generator) body(b ast.Block, level int) string {
	return "{\n" + g.Block(b, level+1) + g.indent(level) + "}"
}

func (g *Generator) ifStatement(s *ast.If, level int) string {
	var out strings.Builder
	out.WriteString("if (" + g.Expression(s.Base.Condition) + ") ")
	out.WriteString(g.body(s.Base.Body, level))
	for _, branch := range s.ElseIfs {
		out.WriteString(" else if (" + g.Expression(branch.Condition) + ") ")
		out.WriteString(g.body(branch.Body, level))
	}
	if s.Else != nil {
		out.WriteString(" else ")
		out.WriteString(g.body(*s.Else, level))
	}
	return out.String()
}

// switchStatement places case labels one level below the switch and case
// bodies one further. No break is added after a case body, and the default
// label, if present, always comes last.
func (g *Generator) switchStatement(s *ast.Switch, level int) string {
	var out strings.Builder
	out.WriteString("switch (" + g.Atom(s.Value) + ") {\n")
	for _, c := range s.Cases {
		out.WriteString(g.indent(level+1) + "case " + g.Atom(c.Match) + ":\n")
		out.WriteString(g.Block(c.Body, level+2))
	}
	if s.Default != nil {
		out.WriteString(g.indent(level+1) + "default:\n")
		out.WriteString(g.Block(*s.Default, level+2))
	}
	out.WriteString(g.indent(level) + "}")
	return out.String()
}
