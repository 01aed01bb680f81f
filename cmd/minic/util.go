package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hokaccha/go-prettyjson"
	"github.com/mattn/go-isatty"

	"github.com/DanielGaull/miniC/errz"
)

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", red("%s", errorMessage(err)))
	os.Exit(1)
}

// errorMessage renders structured errors with their AST path.
func errorMessage(err error) string {
	var se *errz.StructuredError
	if errors.As(err, &se) {
		return strings.TrimRight(se.FriendlyErrorMessage(), "\n")
	}
	return err.Error()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func marshalJSON(v any, noColor bool) ([]byte, error) {
	if noColor {
		return json.MarshalIndent(v, "", "  ")
	}
	return prettyjson.Marshal(v)
}
