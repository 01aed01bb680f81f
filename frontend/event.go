// Package frontend turns a parse-event stream into a MiniC AST.
//
// The grammar and parser live outside this module. They hand over one
// Event per grammar production, nested the same way the productions are.
// Build maps that tree onto AST nodes top-down and fails on the first
// production it cannot map, without returning a partial program.
package frontend

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/DanielGaull/miniC/errz"
)

// Event is a single grammar production recognized by the parser. Text is
// the matched source text, or the part of it the rule cares about.
type Event struct {
	Rule     string   `json:"rule" yaml:"rule"`
	Text     string   `json:"text,omitempty" yaml:"text,omitempty"`
	Line     int      `json:"line,omitempty" yaml:"line,omitempty"`
	Column   int      `json:"column,omitempty" yaml:"column,omitempty"`
	Children []*Event `json:"children,omitempty" yaml:"children,omitempty"`
}

// String returns the rule name and position of the event.
func (e *Event) String() string {
	if e.Line == 0 {
		return e.Rule
	}
	return fmt.Sprintf("%s@%d:%d", e.Rule, e.Line, e.Column)
}

// Format is the serialization of an event stream.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
)

// FormatFromPath picks a format from a file extension, defaulting to JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	default:
		return JSON
	}
}

// LookupFormat returns the format with the given name.
func LookupFormat(name string) (Format, bool) {
	switch Format(strings.ToLower(name)) {
	case JSON:
		return JSON, true
	case YAML:
		return YAML, true
	default:
		return "", false
	}
}

// Decode reads one root event from r.
func Decode(r io.Reader, format Format) (*Event, error) {
	var root Event
	var err error
	switch format {
	case JSON:
		err = json.NewDecoder(r).Decode(&root)
	case YAML:
		err = yaml.NewDecoder(r).Decode(&root)
	default:
		return nil, errz.Newf(errz.ErrSyntax, errz.SourceLocation{}, "unknown event format %q", format)
	}
	if err != nil {
		return nil, errz.New(errz.ErrSyntax, "could not decode event stream", errz.SourceLocation{}).WithCause(err)
	}
	return &root, nil
}
