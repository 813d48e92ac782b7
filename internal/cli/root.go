// Package cli provides the command-line interface for base9.
package cli

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/base9/internal/version"
)

// app holds the state shared by every command of one root command.
type app struct {
	opts   globalOptions
	logger hclog.Logger
}

// NewRootCmd builds the base9 command tree. Each call returns an independent
// tree, so tests can execute commands without sharing flag state.
func NewRootCmd() *cobra.Command {
	a := &app{logger: hclog.NewNullLogger()}

	rootCmd := &cobra.Command{
		Use:   "base9",
		Short: "Build complete colour themes from a nine colour palette",
		Long: `base9 turns a palette code of nine colours (background, foreground and seven
accent hues) into a complete theme. Colours left out of the code are
generated, shades are mixed against the background, and the accents are
matched to the canonical terminal colours red, yellow, green, cyan, blue and
magenta. Templates are then rendered against the resulting colour tree.

A palette code is nine hex colours joined by '-'. Use '_' for a colour that
should be generated and '?' to generate every remaining colour:

  282828-ebdbb2-cc241d-d79921-98971a-689d6a-458588-b16286-d65d0e
  1d2021-d5c4a1-_-_-_-_-_-_-_
  1d2021-?`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	a.opts.register(rootCmd.PersistentFlags())
	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(
		newVersionCmd(),
		a.newRenderCmd(),
		a.newPreviewCmd(),
		a.newListVariablesCmd(),
		a.newGenerateCmd(),
		a.newMatchCmd(),
		a.newTemplatesCmd(),
		a.newConfigCmd(),
	)
	return rootCmd
}

// setup validates the global flags and configures logging and colour output.
func (a *app) setup(cmd *cobra.Command) error {
	if err := a.opts.validate(cmd.Flags()); err != nil {
		return err
	}
	a.logger = newLogger(a.opts.verbose, cmd.ErrOrStderr())
	enableColour(a.opts.colourMode, cmd.OutOrStdout())
	a.logger.Debug("options", "config", a.opts.configPath, "seed_mode", a.opts.seedMode, "chroma", a.opts.chroma)
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
