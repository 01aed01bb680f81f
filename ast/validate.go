package ast

import (
	"fmt"
	"math"

	"github.com/hashicorp/go-multierror"

	"github.com/DanielGaull/miniC/errz"
)

// Validate checks the construction-time invariants the type system cannot
// express: required names are non-empty, and names within one aggregate,
// enum or parameter list are unique. Every violation is reported; the
// returned error is a *multierror.Error whose entries are
// *errz.StructuredError values of kind errz.ErrInvariant.
func Validate(program *Program) error {
	var result *multierror.Error
	fail := func(format string, args ...any) {
		result = multierror.Append(result, errz.Newf(errz.ErrInvariant, errz.SourceLocation{}, format, args...))
	}

	Inspect(program, func(n Node) bool {
		switch n := n.(type) {
		case *VarDeclaration:
			if n.Name == "" {
				fail("variable declaration has an empty name")
			}
		case *Import:
			if n.Path == "" {
				fail("import has an empty path")
			}
		case *FunctionHeader:
			if n.Name == "" {
				fail("function has an empty name")
			}
			seen := map[string]bool{}
			for i, p := range n.Params {
				switch {
				case p.Name == "":
					fail("function %q: parameter %d has an empty name", n.Name, i+1)
				case seen[p.Name]:
					fail("function %q: duplicate parameter %q", n.Name, p.Name)
				}
				seen[p.Name] = true
			}
		case *Aggregate:
			seen := map[string]bool{}
			for _, m := range n.Members {
				f, ok := m.(*Field)
				if !ok {
					continue
				}
				switch {
				case f.Name == "":
					fail("%s: field has an empty name", describeNamed(n, n.Name))
				case seen[f.Name]:
					fail("%s: duplicate field %q", describeNamed(n, n.Name), f.Name)
				}
				seen[f.Name] = true
			}
		case *NestedAggregate:
			if n.Aggregate == nil {
				fail("nested aggregate is missing its body")
				return false
			}
			if !n.Aggregate.IsAnonymous() {
				fail("nested %s %q must be anonymous", n.Aggregate.Kind.Keyword(), n.Aggregate.Name)
			}
		case *Enum:
			seen := map[string]bool{}
			for _, e := range n.Entries {
				switch {
				case e.Name == "":
					fail("%s: entry has an empty name", describeNamed(n, n.Name))
				case seen[e.Name]:
					fail("%s: duplicate entry %q", describeNamed(n, n.Name), e.Name)
				}
				seen[e.Name] = true
			}
		case *TypeDef:
			if n.Name == "" {
				fail("typedef has an empty name")
			}
			if n.Target == nil {
				fail("typedef %q has no target", n.Name)
			}
		case *Module:
			if n.Name == "" {
				fail("module has an empty name")
			}
		case *PreprocessorDirective:
			if n.Text == "" {
				fail("preprocessor directive is empty")
			}
		case Type:
			if n.Name.Name == "" {
				fail("type has an empty name")
			}
		case *VarDecl:
			if n.Name == "" {
				fail("local variable declaration has an empty name")
			}
		case *For:
			if n.Init == nil || n.Increment == nil {
				fail("for loop is missing its init or increment statement")
			}
			if n.Init != nil && !IsForClause(n.Init) {
				fail("for loop init must be a simple statement, got %s", Describe(n.Init))
			}
			if n.Increment != nil && !IsForClause(n.Increment) {
				fail("for loop increment must be a simple statement, got %s", Describe(n.Increment))
			}
		case *FloatLiteral:
			if f := float64(n.Value); math.IsNaN(f) || math.IsInf(f, 0) {
				fail("float literal is not finite")
			}
		case *DoubleLiteral:
			if math.IsNaN(n.Value) || math.IsInf(n.Value, 0) {
				fail("double literal is not finite")
			}
		case *Ident:
			if n.Name.Name == "" {
				fail("identifier is empty")
			}
		case Expression:
			if n.Atom == nil {
				fail("expression has no atom")
			}
		}
		return true
	})
	return result.ErrorOrNil()
}

func describeNamed(n Node, name string) string {
	if name == "" {
		return Describe(n)
	}
	return fmt.Sprintf("%s %q", Describe(n), name)
}
