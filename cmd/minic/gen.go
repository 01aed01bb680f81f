package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	minic "github.com/DanielGaull/miniC"
)

func (a *app) genCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen [file]",
		Short: "Generate C source from an event stream",
		Args:  cobra.MaximumNArgs(1),
		RunE:  a.gen,
	}
	cmd.Flags().StringP("output", "o", "", "write the generated source to this file")
	cmd.Flags().String("indent", "", "indentation unit (default four spaces)")
	return cmd
}

func (a *app) gen(cmd *cobra.Command, args []string) error {
	in, err := a.readInput(cmd, args)
	if err != nil {
		return err
	}
	opts, err := a.pipelineOptions(in)
	if err != nil {
		return err
	}
	if indent, _ := cmd.Flags().GetString("indent"); indent != "" {
		opts = append(opts, minic.WithIndent(indent))
	}

	source, err := minic.TranspileReader(bytes.NewReader(in.data), in.format, opts...)
	if err != nil {
		return err
	}
	a.logger.Info().Str("input", in.name).Int("bytes", len(source)).Msg("generated source")

	if path, _ := cmd.Flags().GetString("output"); path != "" {
		return os.WriteFile(path, []byte(source), 0o644)
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), source)
	return err
}
