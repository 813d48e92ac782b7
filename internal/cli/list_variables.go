package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Output formats for list-variables.
const (
	formatYAML = "yaml"
	formatJSON = "json"
)

func (a *app) newListVariablesCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "list-variables <PALETTE>",
		Short: "Print every variable available to templates",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != formatYAML && format != formatJSON {
				return fmt.Errorf("invalid format: %s (valid: yaml, json)", format)
			}

			data, _, err := a.variables(args[0])
			if err != nil {
				return err
			}

			var out []byte
			if format == formatJSON {
				out, err = json.MarshalIndent(data, "", "  ")
				out = append(out, '\n')
			} else {
				out, err = yaml.Marshal(data)
			}
			if err != nil {
				return fmt.Errorf("failed to encode variables: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatYAML, "output format (yaml, json)")
	return cmd
}
