// Package render executes text templates against base9 colour data.
package render

import (
	"bytes"
	"fmt"
	"io"
	"text/template"
)

// Parse compiles a template with the helper functions installed.
func Parse(name, text string) (*template.Template, error) {
	tmpl, err := template.New(name).Funcs(Funcs()).Parse(text)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
	}
	return tmpl, nil
}

// Render compiles text and executes it against data, writing to w. Nothing is
// written when execution fails.
func Render(w io.Writer, name, text string, data any) error {
	tmpl, err := Parse(name, text)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("failed to render template %s: %w", name, err)
	}

	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write rendered template %s: %w", name, err)
	}
	return nil
}
