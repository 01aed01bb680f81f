// Package mutator rebuilds a MiniC AST while applying caller-registered
// expression and statement transformers.
//
// Rewriting is pre-order and shallow: the transformers registered for a
// node's category run first, in registration order, on the node itself.
// The children of whatever node they return are then rewritten and the
// node is rebuilt from the results. A transformer therefore sees a node it
// may already have replaced, but children that have not been rewritten yet.
//
// The output tree never shares nodes with the input tree, and the input is
// never modified. Transformers must not modify their argument either; they
// return a replacement instead.
//
// Declaration shapes (aggregates, enums, typedefs, headers, imports and
// directives) are copied through unchanged. Only function bodies, module
// items and variable initializers are rewritten.
package mutator

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/DanielGaull/miniC/ast"
	"github.com/DanielGaull/miniC/errz"
)

// ExpressionTransformer returns a replacement for an expression, or an
// error that aborts the whole rewrite.
type ExpressionTransformer func(ast.Expression) (ast.Expression, error)

// StatementTransformer returns a replacement for a statement, or an error
// that aborts the whole rewrite.
type StatementTransformer func(ast.Statement) (ast.Statement, error)

// Option configures a Mutator.
type Option func(*Mutator)

// WithLogger sets the logger used for debug events.
func WithLogger(logger zerolog.Logger) Option {
	return func(m *Mutator) {
		m.logger = logger
	}
}

// WithExpressionTransformers registers expression transformers, in order.
func WithExpressionTransformers(fns ...ExpressionTransformer) Option {
	return func(m *Mutator) {
		for _, fn := range fns {
			m.AddExpressionTransformer(fn)
		}
	}
}

// WithStatementTransformers registers statement transformers, in order.
func WithStatementTransformers(fns ...StatementTransformer) Option {
	return func(m *Mutator) {
		for _, fn := range fns {
			m.AddStatementTransformer(fn)
		}
	}
}

// Mutator holds ordered lists of transformers. A Mutator with no
// transformers produces a structural copy of its input.
type Mutator struct {
	expressions []ExpressionTransformer
	statements  []StatementTransformer
	logger      zerolog.Logger
}

// New returns a Mutator configured with the given options.
func New(opts ...Option) *Mutator {
	m := &Mutator{logger: zerolog.Nop()}
	for _, opt := range opts {
		if opt != nil {
			opt(m)
		}
	}
	return m
}

// AddExpressionTransformer appends fn to the expression transformers.
func (m *Mutator) AddExpressionTransformer(fn ExpressionTransformer) {
	if fn != nil {
		m.expressions = append(m.expressions, fn)
	}
}

// AddStatementTransformer appends fn to the statement transformers.
func (m *Mutator) AddStatementTransformer(fn StatementTransformer) {
	if fn != nil {
		m.statements = append(m.statements, fn)
	}
}

// Program returns a rewritten copy of program. If any transformer fails,
// the error is returned and no program is produced.
func (m *Mutator) Program(program *ast.Program) (*ast.Program, error) {
	var items []ast.TopLevel
	for _, item := range program.Items {
		out, err := m.TopLevel(item)
		if err != nil {
			m.logFailure(err)
			return nil, err
		}
		m.logger.Debug().
			Str("kind", ast.Describe(item)).
			Str("name", ast.DeclaredName(item)).
			Msg("rewrote top-level item")
		items = append(items, out)
	}
	return &ast.Program{Items: items}, nil
}

func (m *Mutator) logFailure(err error) {
	event := m.logger.Debug().Err(err)
	var se *errz.StructuredError
	if errors.As(err, &se) && len(se.Path) > 0 {
		path := make([]string, 0, len(se.Path))
		for _, frame := range se.Path {
			path = append(path, frame.String())
		}
		event = event.Strs("path", path)
	}
	event.Msg("rewrite failed")
}

func (m *Mutator) applyExpression(e ast.Expression) (ast.Expression, error) {
	for i, fn := range m.expressions {
		out, err := fn(e)
		if err != nil {
			return ast.Expression{}, errz.Newf(errz.ErrTransform, errz.SourceLocation{},
				"expression transformer %d failed on %s", i, ast.Describe(e.Atom)).WithCause(err)
		}
		if out.Atom == nil {
			return ast.Expression{}, errz.Newf(errz.ErrTransform, errz.SourceLocation{},
				"expression transformer %d returned an expression without an atom", i)
		}
		e = out
	}
	return e, nil
}

func (m *Mutator) applyStatement(s ast.Statement) (ast.Statement, error) {
	for i, fn := range m.statements {
		out, err := fn(s)
		if err != nil {
			return nil, errz.Newf(errz.ErrTransform, errz.SourceLocation{},
				"statement transformer %d failed on %s", i, ast.Describe(s)).WithCause(err)
		}
		if out == nil {
			return nil, errz.Newf(errz.ErrTransform, errz.SourceLocation{},
				"statement transformer %d returned no statement for %s", i, ast.Describe(s))
		}
		s = out
	}
	return s, nil
}

func unhandled(category string, n ast.Node) error {
	return errz.Newf(errz.ErrInvariant, errz.SourceLocation{}, "mutator: unhandled %s %T", category, n)
}
