// Command minic reads a MiniC parse-event stream and writes C source.
package main

import (
	"errors"
	"strings"

	"github.com/fatih/color"
	"github.com/mitchellh/go-homedir"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var red = color.New(color.FgRed).SprintfFunc()

// app holds the state shared by the subcommands of one invocation.
type app struct {
	v       *viper.Viper
	logger  zerolog.Logger
	noColor bool
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fatal(err)
	}
}

func newRootCommand() *cobra.Command {
	a := &app{v: viper.New(), logger: zerolog.Nop()}
	cmd := &cobra.Command{
		Use:           "minic",
		Short:         "Generate C source from MiniC parse events",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.String("config", "", "config file (default is $HOME/.minic.yaml)")
	flags.Bool("no-color", false, "disable colored output")
	flags.String("log-level", "warn", "log level (debug, info, warn, error)")
	flags.String("format", "", "event format, json or yaml (default from the file extension)")
	flags.Bool("stdin", false, "read the event stream from stdin")
	flags.Bool("validate", true, "check AST invariants before rewriting")
	flags.Bool("expand-compound-assign", false, "rewrite x op= y as x = x op y")
	flags.StringSlice("rename", nil, "rename an identifier, old=new (repeatable)")
	_ = a.v.BindPFlags(flags)

	cmd.AddCommand(a.genCommand(), a.astCommand())
	return cmd
}

// setup loads the config file and environment, then configures color and
// logging for the run.
func (a *app) setup(cmd *cobra.Command) error {
	if err := a.loadConfig(); err != nil {
		return err
	}

	a.noColor = a.v.GetBool("no-color") || !isTerminal(cmd.OutOrStdout())
	if a.noColor {
		color.NoColor = true
	}

	level, err := zerolog.ParseLevel(a.v.GetString("log-level"))
	if err != nil {
		return err
	}
	a.logger = zerolog.New(zerolog.ConsoleWriter{
		Out:     cmd.ErrOrStderr(),
		NoColor: a.noColor,
	}).Level(level).With().Timestamp().Logger()
	return nil
}

func (a *app) loadConfig() error {
	a.v.SetEnvPrefix("minic")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if path := a.v.GetString("config"); path != "" {
		a.v.SetConfigFile(path)
		return a.v.ReadInConfig()
	}

	home, err := homedir.Dir()
	if err != nil {
		return nil
	}
	a.v.AddConfigPath(home)
	a.v.SetConfigName(".minic")
	a.v.SetConfigType("yaml")
	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return err
	}
	return nil
}
