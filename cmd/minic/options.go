package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	minic "github.com/DanielGaull/miniC"
	"github.com/DanielGaull/miniC/frontend"
	"github.com/DanielGaull/miniC/transforms"
)

// input is an event stream read from a file or stdin.
type input struct {
	name   string
	format frontend.Format
	data   []byte
}

func (a *app) readInput(cmd *cobra.Command, args []string) (*input, error) {
	// The event stream comes from one of:
	// 1. --stdin
	// 2. path as args[0]
	stdinFlagSet := a.v.GetBool("stdin")
	pathSupplied := len(args) > 0
	if pathSupplied && stdinFlagSet {
		return nil, errors.New("multiple input sources specified")
	}
	if !pathSupplied && !stdinFlagSet {
		return nil, errors.New("no input specified (pass a file or --stdin)")
	}

	in := &input{format: frontend.JSON}
	var err error
	if stdinFlagSet {
		in.name = "<stdin>"
		in.data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		in.name = args[0]
		in.format = frontend.FormatFromPath(args[0])
		in.data, err = os.ReadFile(args[0])
	}
	if err != nil {
		return nil, err
	}

	if name := a.v.GetString("format"); name != "" {
		format, ok := frontend.LookupFormat(name)
		if !ok {
			return nil, fmt.Errorf("unknown event format %q", name)
		}
		in.format = format
	}
	return in, nil
}

// renames parses the "old=new" entries of the rename setting.
func (a *app) renames() (map[string]string, error) {
	out := map[string]string{}
	for _, entry := range a.v.GetStringSlice("rename") {
		from, to, ok := strings.Cut(entry, "=")
		from, to = strings.TrimSpace(from), strings.TrimSpace(to)
		if !ok || from == "" {
			return nil, fmt.Errorf("invalid rename %q (expected old=new)", entry)
		}
		out[from] = to
	}
	return out, nil
}

// pipelineOptions returns the pipeline configuration for a run.
func (a *app) pipelineOptions(in *input) ([]minic.Option, error) {
	opts := []minic.Option{
		minic.WithLogger(a.logger),
		minic.WithFilename(in.name),
	}
	renames, err := a.renames()
	if err != nil {
		return nil, err
	}
	if len(renames) > 0 {
		opts = append(opts, minic.WithExpressionTransformer(transforms.RenameIdentifiers(renames)))
	}
	if a.v.GetBool("expand-compound-assign") {
		opts = append(opts, minic.WithStatementTransformer(transforms.ExpandCompoundAssign()))
	}
	if !a.v.GetBool("validate") {
		opts = append(opts, minic.WithoutValidation())
	}
	return opts, nil
}
