// FILE: lixenwraith/ini/cmd/inicheck/root.go
package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/lixenwraith/ini"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// options holds the persistent flags shared by all subcommands.
type options struct {
	verbosity int
	maxSize   int64
	app       string
	logger    zerolog.Logger
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	opts := &options{logger: zerolog.Nop()}

	rootCmd := &cobra.Command{
		Use:   "inicheck",
		Short: MsgRootShort,
		Long:  MsgRootLong,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			opts.logger = newLogger(cmd.ErrOrStderr(), opts.verbosity)
			opts.logger.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().Int64Var(&opts.maxSize, "max-size", ini.DefaultMaxFileSize, MsgFlagMaxSize)
	rootCmd.PersistentFlags().StringVar(&opts.app, "app", "", MsgFlagApp)

	rootCmd.AddCommand(newValidateCmd(opts))
	rootCmd.AddCommand(newListCmd(opts))
	rootCmd.AddCommand(newGetCmd(opts))

	return rootCmd
}

// newLogger builds a console logger on w at the level chosen by -v
func newLogger(w io.Writer, verbosity int) zerolog.Logger {
	level := zerolog.WarnLevel
	switch {
	case verbosity == 1:
		level = zerolog.InfoLevel
	case verbosity >= 2:
		level = zerolog.DebugLevel
	}

	consoleWriter := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.Kitchen,
		NoColor:    true,
	}
	return zerolog.New(consoleWriter).Level(level).With().Timestamp().Logger()
}

func (o *options) parser() *ini.Parser {
	return ini.NewParser().
		WithLogger(o.logger).
		WithMaxFileSize(o.maxSize)
}

// load parses path with the configured limits
func (o *options) load(path string) (*ini.File, error) {
	f := ini.NewFile()
	if err := o.parser().ParseFile(path, f); err != nil {
		return nil, err
	}
	return f, nil
}

// discover locates the config file named by --app
func (o *options) discover() (string, error) {
	if o.app == "" {
		return "", errors.New(MsgErrNoFile)
	}
	path, err := ini.FindFile(ini.DefaultDiscoveryOptions(o.app))
	if err != nil {
		return "", fmt.Errorf(MsgErrDiscover, o.app, err)
	}
	o.logger.Info().Str("app", o.app).Str("path", path).Msg("Config file discovered")
	return path, nil
}
