// Package transforms provides ready-made transformers for the rewrite
// engine.
package transforms

import (
	"fmt"

	"github.com/DanielGaull/miniC/ast"
	"github.com/DanielGaull/miniC/mutator"
)

// RenameIdentifiers returns an expression transformer that replaces plain
// identifiers found in names with their mapped value. Module-qualified
// identifiers are left alone. A mapping to an empty name is an error.
func RenameIdentifiers(names map[string]string) mutator.ExpressionTransformer {
	renames := make(map[string]string, len(names))
	for from, to := range names {
		renames[from] = to
	}
	return func(e ast.Expression) (ast.Expression, error) {
		id, ok := e.Atom.(*ast.Ident)
		if !ok || id.Name.IsQualified() {
			return e, nil
		}
		to, ok := renames[id.Name.Name]
		if !ok {
			return e, nil
		}
		if to == "" {
			return e, fmt.Errorf("cannot rename %q to an empty name", id.Name.Name)
		}
		return ast.Expression{Atom: &ast.Ident{Name: ast.Plain(to)}, Tail: e.Tail}, nil
	}
}

// ExpandCompoundAssign returns a statement transformer that rewrites
// "x op= y" as "x = x op (y)". The value is parenthesized when it has a
// tail so that "x *= a + b" keeps its meaning.
func ExpandCompoundAssign() mutator.StatementTransformer {
	return func(s ast.Statement) (ast.Statement, error) {
		ca, ok := s.(*ast.CompoundAssign)
		if !ok {
			return s, nil
		}
		value := ca.Value
		if len(value.Tail) > 0 {
			value = ast.Expr(&ast.Paren{Inner: value})
		}
		tail := append([]ast.Step{}, ca.Target.Tail...)
		tail = append(tail, &ast.Binary{Op: ca.Op, Right: value})
		return &ast.Assign{
			Target: ca.Target,
			Value:  ast.Expression{Atom: ca.Target.Atom, Tail: tail},
		}, nil
	}
}
