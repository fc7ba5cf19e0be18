package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/slider/internal/logger"
)

type rootFlags struct {
	verbose  bool
	logLevel string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "slider",
		Short:         "Slider plays and renders carousel decks",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	cmd.AddCommand(newPlayCmd(flags))
	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newValidateCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// level resolves the effective log level: --verbose wins, then --log-level,
// then fallback.
func (f *rootFlags) level(fallback string) string {
	if f.verbose {
		return "debug"
	}
	if f.logLevel != "" {
		return f.logLevel
	}
	return fallback
}

func (f *rootFlags) newLogger(w io.Writer, component, fallback string) (*logger.Logger, error) {
	return logger.New(logger.Options{
		Level:         f.level(fallback),
		HumanReadable: true,
		Writer:        w,
		Component:     component,
	})
}
