// Package codegen regenerates C source text from a MiniC AST.
//
// Generation is total: every node in a well-formed tree produces text and
// there is no error path. Indentation is never kept as generator state; the
// current level is passed explicitly to every statement and pure-mode
// declaration.
package codegen

import (
	"fmt"
	"slices"
	"strings"

	"github.com/DanielGaull/miniC/ast"
)

// DefaultIndent is the text emitted per indentation level.
const DefaultIndent = "    "

// Option configures a Generator.
type Option func(*Generator)

// WithIndent sets the text emitted per indentation level.
func WithIndent(unit string) Option {
	return func(g *Generator) {
		g.indentUnit = unit
	}
}

// Generator renders AST nodes as C text. A Generator has no mutable state
// and may be shared; scoped variants are copies.
type Generator struct {
	indentUnit string
	tags       tagSet
	scopes     []string // enclosing module prefixes, outermost first
}

// New returns a Generator configured with the given options.
func New(opts ...Option) *Generator {
	g := &Generator{indentUnit: DefaultIndent}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Generate renders program with a default Generator.
func Generate(program *ast.Program) string {
	return New().Program(program)
}

// ForProgram returns a copy of g that resolves tagged type references
// against the aggregates and enums program declares. Program uses it;
// callers rendering parts of a program directly can too.
func (g *Generator) ForProgram(program *ast.Program) *Generator {
	out := *g
	out.tags = declaredTags(program)
	return &out
}

// within returns a copy of g scoped to the module with the given prefix.
func (g *Generator) within(prefix string) *Generator {
	current := ""
	if n := len(g.scopes); n > 0 {
		current = g.scopes[n-1]
	}
	if prefix == current {
		return g
	}
	out := *g
	out.scopes = append(slices.Clone(g.scopes), prefix)
	return &out
}

// Program renders every top-level item in order, each followed by a
// newline.
func (g *Generator) Program(program *ast.Program) string {
	pg := g.ForProgram(program)
	var out strings.Builder
	for _, item := range program.Items {
		out.WriteString(pg.TopLevel(item, ""))
		out.WriteString("\n")
	}
	return out.String()
}

func (g *Generator) indent(level int) string {
	return strings.Repeat(g.indentUnit, level)
}

func unhandled(n ast.Node) string {
	panic(fmt.Sprintf("codegen: unhandled node type %T", n))
}
