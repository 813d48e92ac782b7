package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/base9/internal/colour"
)

type generateOptions struct {
	preview  bool
	showSeed bool
	count    int
}

func (a *app) newGenerateCmd() *cobra.Command {
	var opts generateOptions

	cmd := &cobra.Command{
		Use:   "generate <PALETTE>",
		Short: "Print the complete palette code for a partial palette",
		Long: `Generate fills in every unset colour of a palette code and prints the
complete code. A complete code is printed unchanged.

Examples:
  # Generate a dark theme around a fixed background and foreground
  base9 generate 1d2021-d5c4a1-_-_-_-_-_-_-_

  # Reproducible output
  base9 generate '?' --seed 42
  base9 generate 1d2021-? --seed-mode content

  # Print five variations with swatches
  base9 generate 1d2021-? --count 5 --preview`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGenerate(cmd, args[0], opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.preview, "preview", "p", false, "show colour swatches after each code")
	cmd.Flags().BoolVar(&opts.showSeed, "show-seed", false, "print the seed used for each palette to stderr")
	cmd.Flags().IntVarP(&opts.count, "count", "n", 1, "number of palettes to generate")
	return cmd
}

func (a *app) runGenerate(cmd *cobra.Command, arg string, opts generateOptions) error {
	if opts.count < 1 {
		return fmt.Errorf("--count must be at least 1, got %d", opts.count)
	}

	out := cmd.OutOrStdout()
	base := a.opts.seedConfig
	defer func() { a.opts.seedConfig = base }()
	for i := 0; i < opts.count; i++ {
		// Successive manual seeds keep a run of variations reproducible.
		if base.Value != nil && i > 0 {
			v := *base.Value + int64(i)
			a.opts.seedConfig.Value = &v
		}

		r, err := a.resolve(arg)
		if err != nil {
			return err
		}

		fmt.Fprintln(out, r.palette.String())
		if opts.preview {
			fmt.Fprintln(out, swatches(r.palette[:]))
		}
		if opts.showSeed {
			fmt.Fprintf(cmd.ErrOrStderr(), "seed: %d\n", r.seed)
		}
	}
	return nil
}

// swatches renders one swatch per colour.
func swatches(colours []colour.Color) string {
	parts := make([]string, len(colours))
	for i, c := range colours {
		parts[i] = colour.Swatch(c, 8)
	}
	return strings.Join(parts, "")
}
