// Package errz defines the structured error type shared by the AST builder,
// the validator and the rewrite engine.
package errz

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
)

// ErrorKind represents the category of an error.
type ErrorKind int

const (
	// ErrSyntax indicates a parse event that could not be mapped onto an
	// AST node.
	ErrSyntax ErrorKind = iota
	// ErrTransform indicates that a registered transformer failed.
	ErrTransform
	// ErrInvariant indicates a tree that violates an AST invariant.
	ErrInvariant
)

// String returns the string representation of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case ErrSyntax:
		return "syntax error"
	case ErrTransform:
		return "transform error"
	case ErrInvariant:
		return "invariant error"
	default:
		return "error"
	}
}

// SourceLocation is the position of the parse event an error refers to.
type SourceLocation struct {
	Filename string
	Line     int // 1-based line number
	Column   int // 1-based column number
}

// String returns a formatted string representation of the source location.
func (s SourceLocation) String() string {
	if s.Filename != "" {
		return fmt.Sprintf("%s:%d:%d", s.Filename, s.Line, s.Column)
	}
	return fmt.Sprintf("%d:%d", s.Line, s.Column)
}

// IsZero returns true if the location has not been set.
func (s SourceLocation) IsZero() bool {
	return s.Line == 0 && s.Column == 0
}

// Frame names one enclosing node on the path from the program root to the
// node an error was raised for, e.g. {Kind: "function", Name: "main"}.
type Frame struct {
	Kind string
	Name string
}

// String returns a formatted string representation of the frame.
func (f Frame) String() string {
	if f.Name == "" {
		return "in " + f.Kind
	}
	return fmt.Sprintf("in %s %s", f.Kind, f.Name)
}

// FormatPath formats frames, innermost first, as a human-readable trace.
func FormatPath(frames []Frame) string {
	if len(frames) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("Path:\n")
	for _, frame := range frames {
		b.WriteString("  ")
		b.WriteString(frame.String())
		b.WriteString("\n")
	}
	return b.String()
}

// StructuredError is an error with a kind, an optional source location and
// the path of AST declarations enclosing the offending node.
type StructuredError struct {
	Message  string
	Kind     ErrorKind
	Location SourceLocation
	Path     []Frame // innermost first
	Cause    error
}

// Error implements the error interface.
func (e *StructuredError) Error() string {
	msg := e.Message
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %s", msg, e.Cause.Error())
	}
	if e.Location.IsZero() {
		return fmt.Sprintf("%s: %s", e.Kind.String(), msg)
	}
	return fmt.Sprintf("%s: %s (%s)", e.Kind.String(), msg, e.Location.String())
}

// Unwrap returns the underlying cause of the error.
func (e *StructuredError) Unwrap() error {
	return e.Cause
}

// FriendlyErrorMessage returns the error message followed by the path of
// enclosing declarations.
func (e *StructuredError) FriendlyErrorMessage() string {
	var msg bytes.Buffer
	msg.WriteString(e.Error())
	msg.WriteString("\n")
	if len(e.Path) > 0 {
		msg.WriteString(FormatPath(e.Path))
	}
	return msg.String()
}

// New creates a new StructuredError.
func New(kind ErrorKind, message string, loc SourceLocation) *StructuredError {
	return &StructuredError{
		Message:  message,
		Kind:     kind,
		Location: loc,
	}
}

// Newf creates a new StructuredError with a formatted message.
func Newf(kind ErrorKind, loc SourceLocation, format string, args ...any) *StructuredError {
	return &StructuredError{
		Message:  fmt.Sprintf(format, args...),
		Kind:     kind,
		Location: loc,
	}
}

// WithCause wraps the error with a cause.
func (e *StructuredError) WithCause(cause error) *StructuredError {
	e.Cause = cause
	return e
}

// WithFrame appends an enclosing frame to the error path.
func (e *StructuredError) WithFrame(kind, name string) *StructuredError {
	e.Path = append(e.Path, Frame{Kind: kind, Name: name})
	return e
}

// AddFrame appends a frame to err if it is a StructuredError and returns
// err unchanged otherwise.
func AddFrame(err error, kind, name string) error {
	var se *StructuredError
	if errors.As(err, &se) {
		se.WithFrame(kind, name)
	}
	return err
}
