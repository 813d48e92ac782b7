package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

func (a *app) newTemplatesCmd() *cobra.Command {
	var location string

	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List and customise the built-in templates",
		Long: `List and customise the built-in templates.

A built-in template can be overridden by a file of the same name in
~/.config/base9/templates/. Use 'dump' to copy the built-in version there
as a starting point.

Examples:
  base9 templates list
  base9 templates dump kitty
  base9 templates dump --force
  base9 templates dump -l ./templates preview`,
	}
	cmd.PersistentFlags().StringVarP(&location, "location", "l", "", "template override directory (default: ~/.config/base9/templates)")

	cmd.AddCommand(a.newTemplatesListCmd(&location), a.newTemplatesDumpCmd(&location))
	return cmd
}

func (a *app) newTemplatesListCmd(location *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the built-in templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := expandHome(*location)
			if err != nil {
				return err
			}
			l := a.loader(base)
			names, err := l.List()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			hasCustom := false
			for _, name := range names {
				if l.HasCustom(name) {
					fmt.Fprintf(out, "%s*\n", name)
					hasCustom = true
				} else {
					fmt.Fprintln(out, name)
				}
			}
			if hasCustom {
				fmt.Fprintf(cmd.ErrOrStderr(), "\nTemplates with an override in %s are shown with an asterisk (*).\n", l.CustomDir())
			}
			return nil
		},
	}
}

func (a *app) newTemplatesDumpCmd(location *string) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "dump [NAME...]",
		Short: "Copy built-in templates to the override directory",
		Long: `Copy built-in templates to the override directory so they can be edited.
Without NAME every built-in template is copied. Existing overrides are
skipped unless --force is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := expandHome(*location)
			if err != nil {
				return err
			}
			l := a.loader(base)

			names := args
			if len(names) == 0 {
				if names, err = l.List(); err != nil {
					return err
				}
			}
			for _, name := range names {
				if !l.Has(name) {
					return fmt.Errorf("template %q not found", name)
				}
			}

			out := cmd.OutOrStdout()
			for _, name := range names {
				if !force && l.HasCustom(name) {
					fmt.Fprintf(out, "skipped %s (already exists)\n", l.CustomPath(name))
					continue
				}
				path, err := l.Dump(name, force)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "wrote %s\n", path)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite existing overrides")
	return cmd
}

// expandHome replaces a leading "~/" with the user's home directory.
func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, path[2:]), nil
}
