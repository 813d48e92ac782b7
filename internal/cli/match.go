package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/base9/internal/colour"
	"github.com/jmylchreest/base9/internal/colourmap"
)

// unmatched labels accents that no canonical colour was assigned to.
const unmatched = "-"

func (a *app) newMatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "match <PALETTE>",
		Short: "Show which accent each canonical colour resolves to",
		Long: `Resolve a palette and print the accent chosen for each canonical colour
(red, yellow, green, cyan, blue and magenta). Accents left over after
matching are listed last.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.resolve(args[0])
			if err != nil {
				return err
			}

			accents := r.palette.Accents()
			matches, err := colour.MatchCanonical(accents)
			if err != nil {
				return fmt.Errorf("failed to match canonical colours: %w", err)
			}

			table := NewTable([]string{"NAME", "SLOT", "COLOUR", "SWATCH"})
			used := make([]bool, len(accents))
			for _, m := range matches {
				used[m.Index] = true
				table.AddRow(matchRow(m.Name, m.Index, m.Color))
			}
			for i, c := range accents {
				if !used[i] {
					table.AddRow(matchRow(unmatched, i, c))
				}
			}

			fmt.Fprint(cmd.OutOrStdout(), table.Render())
			return nil
		},
	}
}

func matchRow(name string, index int, c colour.Color) []string {
	return []string{name, colourmap.AccentKey(index), c.HexNoHash(), colour.Swatch(c, 8)}
}
