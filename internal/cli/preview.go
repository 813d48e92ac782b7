package cli

import (
	"github.com/spf13/cobra"

	"github.com/jmylchreest/base9/internal/render"
)

func (a *app) newPreviewCmd() *cobra.Command {
	var templateDir string

	cmd := &cobra.Command{
		Use:   "preview <PALETTE>",
		Short: "Print every generated colour as a swatch table",
		Long: `Print one row per colour group with a swatch for every shade.

The preview template can be customised with 'base9 templates dump preview'.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, _, err := a.variables(args[0])
			if err != nil {
				return err
			}
			text, _, err := a.loader(templateDir).Load(render.PreviewTemplate)
			if err != nil {
				return err
			}
			return render.Render(cmd.OutOrStdout(), render.PreviewTemplate, string(text), data)
		},
	}

	cmd.Flags().StringVar(&templateDir, "template-dir", "", "directory of built-in template overrides (default: ~/.config/base9/templates)")
	return cmd
}
