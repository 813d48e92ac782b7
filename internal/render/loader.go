package render

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hashicorp/go-hclog"
)

//go:embed templates/*.tmpl
var builtinFS embed.FS

const (
	builtinDir = "templates"
	// Extension of built-in templates.
	Extension = ".tmpl"
	// PreviewTemplate is the built-in template used by the preview command.
	PreviewTemplate = "preview"
)

// Loader loads built-in templates, preferring a user override when one exists.
// Overrides live in the custom directory under the template's file name, for
// example ~/.config/base9/templates/preview.tmpl.
type Loader struct {
	embedFS    fs.FS
	customBase string
	logger     hclog.Logger
}

// NewLoader returns a loader over the built-in templates with the custom
// directory set to ~/.config/base9/templates.
func NewLoader() *Loader {
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}
	return &Loader{
		embedFS:    builtinFS,
		customBase: filepath.Join(home, ".config", "base9", "templates"),
		logger:     hclog.NewNullLogger(),
	}
}

// WithCustomBase sets the directory searched for overrides.
func (l *Loader) WithCustomBase(dir string) *Loader {
	l.customBase = dir
	return l
}

// WithLogger sets the logger used to report where templates come from.
func (l *Loader) WithLogger(logger hclog.Logger) *Loader {
	if logger != nil {
		l.logger = logger
	}
	return l
}

// CustomDir returns the directory searched for overrides.
func (l *Loader) CustomDir() string { return l.customBase }

// CustomPath returns where an override for name would live.
func (l *Loader) CustomPath(name string) string {
	return filepath.Join(l.customBase, fileName(name))
}

func fileName(name string) string {
	if strings.HasSuffix(name, Extension) {
		return name
	}
	return name + Extension
}

// Has reports whether name is a built-in template.
func (l *Loader) Has(name string) bool {
	_, err := fs.Stat(l.embedFS, path.Join(builtinDir, fileName(name)))
	return err == nil
}

// HasCustom reports whether an override exists for name.
func (l *Loader) HasCustom(name string) bool {
	_, err := os.Stat(l.CustomPath(name))
	return err == nil
}

// Load returns the text of the built-in template name, or of its override.
// fromCustom reports whether the override was used.
func (l *Loader) Load(name string) (content []byte, fromCustom bool, err error) {
	customPath := l.CustomPath(name)
	if content, err := os.ReadFile(customPath); err == nil { // #nosec G304 - user template directory
		l.logger.Debug("using custom template", "path", customPath)
		return content, true, nil
	}

	l.logger.Debug("using built-in template", "name", name)
	content, err = fs.ReadFile(l.embedFS, path.Join(builtinDir, fileName(name)))
	if err != nil {
		return nil, false, fmt.Errorf("failed to load template %q: %w", name, err)
	}
	return content, false, nil
}

// List returns the names of the built-in templates, without extension.
func (l *Loader) List() ([]string, error) {
	entries, err := fs.ReadDir(l.embedFS, builtinDir)
	if err != nil {
		return nil, fmt.Errorf("failed to list built-in templates: %w", err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), Extension) {
			names = append(names, strings.TrimSuffix(e.Name(), Extension))
		}
	}
	sort.Strings(names)
	return names, nil
}

// Dump writes the built-in template name to the custom directory so it can be
// edited. Existing files are only replaced when force is set.
func (l *Loader) Dump(name string, force bool) (string, error) {
	content, err := fs.ReadFile(l.embedFS, path.Join(builtinDir, fileName(name)))
	if err != nil {
		return "", fmt.Errorf("failed to read built-in template %q: %w", name, err)
	}

	out := l.CustomPath(name)
	if !force {
		if _, err := os.Stat(out); err == nil {
			return "", fmt.Errorf("custom template already exists: %s (use --force to overwrite)", out)
		}
	}

	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil { // #nosec G301 - user config directory
		return "", fmt.Errorf("failed to create directory %q: %w", filepath.Dir(out), err)
	}
	if err := os.WriteFile(out, content, 0o644); err != nil { // #nosec G306 - templates are not secret
		return "", fmt.Errorf("failed to write template to %q: %w", out, err)
	}
	return out, nil
}
