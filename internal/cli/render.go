package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/base9/internal/render"
)

const stdinArg = "-"

func (a *app) newRenderCmd() *cobra.Command {
	var templateDir string

	cmd := &cobra.Command{
		Use:   "render <PALETTE> <TEMPLATE> [DEST]",
		Short: "Render a theme template",
		Long: `Render a Go text/template against the colour variables of a palette.

PALETTE is a palette code, or '-' for the palette in the config.
TEMPLATE is a template file, '-' to read the template from stdin, or the
name of a built-in template (see 'base9 templates list').
DEST is the file to write; missing parent directories are created. Without
DEST the result is written to stdout.

Variables are nested by dotted path, for example:
  {{.background.hex}}  {{.red.p50.hex}}  {{.c3.p100.int_r}}  {{.ansi.bright_blue.hex}}

Run 'base9 list-variables <PALETTE>' to see every variable.

Examples:
  base9 render 1d2021-d5c4a1-? kitty ~/.config/kitty/theme.conf
  base9 render - theme.conf.tmpl
  echo '{{.red.p100.hex}}' | base9 render '?' -`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			dest := ""
			if len(args) == 3 {
				dest = args[2]
			}
			return a.runRender(cmd, args[0], args[1], dest, templateDir)
		},
	}

	cmd.Flags().StringVar(&templateDir, "template-dir", "", "directory of built-in template overrides (default: ~/.config/base9/templates)")
	return cmd
}

func (a *app) loader(customDir string) *render.Loader {
	l := render.NewLoader().WithLogger(a.logger)
	if customDir != "" {
		l = l.WithCustomBase(customDir)
	}
	return l
}

// readTemplate returns the template text and a name for error messages.
func (a *app) readTemplate(cmd *cobra.Command, arg, customDir string) (name string, text []byte, err error) {
	if arg == stdinArg {
		text, err = readAllLimited(cmd.InOrStdin(), maxTemplateSize)
		if err != nil {
			return "", nil, fmt.Errorf("failed to read template from stdin: %w", err)
		}
		return "stdin", text, nil
	}

	text, err = readFileLimited(arg, maxTemplateSize)
	if err == nil {
		a.logger.Debug("using template file", "path", arg)
		return arg, text, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return "", nil, fmt.Errorf("failed to read template: %w", err)
	}

	l := a.loader(customDir)
	if !l.Has(arg) {
		return "", nil, fmt.Errorf("template %q: no such file or built-in template", arg)
	}
	text, _, err = l.Load(arg)
	if err != nil {
		return "", nil, err
	}
	return arg, text, nil
}

func (a *app) runRender(cmd *cobra.Command, paletteArg, templateArg, dest, customDir string) error {
	name, text, err := a.readTemplate(cmd, templateArg, customDir)
	if err != nil {
		return err
	}

	data, _, err := a.variables(paletteArg)
	if err != nil {
		return err
	}

	if dest == "" {
		return render.Render(cmd.OutOrStdout(), name, string(text), data)
	}

	var buf bytes.Buffer
	if err := render.Render(&buf, name, string(text), data); err != nil {
		return err
	}
	if err := writeFile(dest, buf.Bytes()); err != nil {
		return err
	}
	a.logger.Debug("wrote rendered template", "path", dest, "bytes", buf.Len())
	return nil
}
