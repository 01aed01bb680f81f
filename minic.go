// Package minic composes the MiniC pipeline: parse events are built into an
// AST, checked, rewritten by the registered transformers and generated as
// C source text.
package minic

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/DanielGaull/miniC/ast"
	"github.com/DanielGaull/miniC/codegen"
	"github.com/DanielGaull/miniC/frontend"
	"github.com/DanielGaull/miniC/mutator"
)

// Option configures a pipeline run.
type Option func(*options)

type options struct {
	expressions []mutator.ExpressionTransformer
	statements  []mutator.StatementTransformer
	logger      zerolog.Logger
	filename    string
	indent      string
	validate    bool
}

func collectOptions(opts ...Option) *options {
	o := &options{logger: zerolog.Nop(), validate: true}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}

func (o *options) mutatorOpts() []mutator.Option {
	return []mutator.Option{
		mutator.WithLogger(o.logger),
		mutator.WithExpressionTransformers(o.expressions...),
		mutator.WithStatementTransformers(o.statements...),
	}
}

func (o *options) generatorOpts() []codegen.Option {
	var opts []codegen.Option
	if o.indent != "" {
		opts = append(opts, codegen.WithIndent(o.indent))
	}
	return opts
}

// WithExpressionTransformer registers an expression transformer. This
// option is additive; transformers run in the order they are given.
func WithExpressionTransformer(fn mutator.ExpressionTransformer) Option {
	return func(o *options) {
		o.expressions = append(o.expressions, fn)
	}
}

// WithStatementTransformer registers a statement transformer. This option
// is additive; transformers run in the order they are given.
func WithStatementTransformer(fn mutator.StatementTransformer) Option {
	return func(o *options) {
		o.statements = append(o.statements, fn)
	}
}

// WithLogger sets the logger used by the rewrite engine.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithFilename sets the file name reported in syntax errors.
func WithFilename(filename string) Option {
	return func(o *options) {
		o.filename = filename
	}
}

// WithIndent sets the text emitted per indentation level in the output.
func WithIndent(unit string) Option {
	return func(o *options) {
		o.indent = unit
	}
}

// WithoutValidation skips the invariant check that otherwise runs before
// rewriting.
func WithoutValidation() Option {
	return func(o *options) {
		o.validate = false
	}
}

// Rewrite validates program and returns the rewritten copy. The input is
// not modified.
func Rewrite(program *ast.Program, opts ...Option) (*ast.Program, error) {
	return rewrite(program, collectOptions(opts...))
}

func rewrite(program *ast.Program, o *options) (*ast.Program, error) {
	if o.validate {
		if err := ast.Validate(program); err != nil {
			return nil, err
		}
	}
	return mutator.New(o.mutatorOpts()...).Program(program)
}

// Transpile rewrites program and generates its C text. On any failure no
// text is returned.
func Transpile(program *ast.Program, opts ...Option) (string, error) {
	o := collectOptions(opts...)
	rewritten, err := rewrite(program, o)
	if err != nil {
		return "", err
	}
	return codegen.New(o.generatorOpts()...).Program(rewritten), nil
}

// TranspileEvents builds the AST described by a parse-event tree and
// transpiles it.
func TranspileEvents(root *frontend.Event, opts ...Option) (string, error) {
	o := collectOptions(opts...)
	program, err := frontend.Build(root, frontend.WithFilename(o.filename))
	if err != nil {
		return "", err
	}
	return Transpile(program, opts...)
}

// TranspileReader decodes an event stream from r and transpiles it.
func TranspileReader(r io.Reader, format frontend.Format, opts ...Option) (string, error) {
	root, err := frontend.Decode(r, format)
	if err != nil {
		return "", err
	}
	return TranspileEvents(root, opts...)
}
