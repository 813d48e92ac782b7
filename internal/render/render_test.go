package render

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/jmylchreest/base9/internal/colour"
	"github.com/jmylchreest/base9/internal/colourmap"
	"github.com/jmylchreest/base9/internal/config"
	"github.com/jmylchreest/base9/internal/palette"
)

const gruvbox = "282828-ebdbb2-cc241d-d79921-98971a-689d6a-458588-b16286-d65d0e"

func testData(t *testing.T) map[string]any {
	t.Helper()
	p, err := palette.Parse(gruvbox)
	if err != nil {
		t.Fatalf("palette.Parse() unexpected error: %v", err)
	}
	data, err := colourmap.Variables(p, config.Default())
	if err != nil {
		t.Fatalf("colourmap.Variables() unexpected error: %v", err)
	}
	return data
}

func plainOutput(t *testing.T) {
	t.Helper()
	prev := colour.DisableColourOutput
	colour.DisableColourOutput = true
	t.Cleanup(func() { colour.DisableColourOutput = prev })
}

func renderString(t *testing.T, text string, data any) string {
	t.Helper()
	var buf bytes.Buffer
	if err := Render(&buf, "test", text, data); err != nil {
		t.Fatalf("Render(%q) unexpected error: %v", text, err)
	}
	return buf.String()
}

func TestRenderVariables(t *testing.T) {
	data := testData(t)

	tests := []struct {
		name string
		tmpl string
		want string
	}{
		{name: "nested field", tmpl: "{{.red.p100.hex}}", want: "cc241d"},
		{name: "channels", tmpl: "{{.c1.p100.int_r}},{{.c1.p100.hex_g}}", want: "204,24"},
		{name: "palette code", tmpl: "{{.PALETTE}}", want: gruvbox},
		{name: "dark flag", tmpl: "{{if .DARK}}dark{{else}}light{{end}}", want: "dark"},
		{name: "alias", tmpl: "{{.ansi.black.hex}}", want: "282828"},
		{name: "get", tmpl: `{{(get . "ansi.red").hex}}`, want: "cc241d"},
		{name: "hex", tmpl: "{{hex .background}}", want: "#282828"},
		{name: "hex of string", tmpl: `{{hex "ABCDEF"}}`, want: "#abcdef"},
		{name: "rgb", tmpl: "{{rgb .red.p100}}", want: "rgb(204,36,29)"},
		{name: "pipes", tmpl: `{{hex .red.p100 | trimPrefix "#" | toUpper}}`, want: "CC241D"},
		{name: "replace", tmpl: `{{replace "_" "-" "bright_red"}}`, want: "bright-red"},
		{name: "trim suffix", tmpl: `{{trimSuffix ".p100" "red.p100"}}`, want: "red"},
		{
			name: "programmable",
			tmpl: `{{range .PROGRAMMABLE}}{{if eq .path.dotted "ansi.red"}}{{.path.indent}}{{.path.last}}={{.color.hex}}{{end}}{{end}}`,
			want: "  red=cc241d",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := renderString(t, tt.tmpl, data); got != tt.want {
				t.Errorf("Render(%q) = %q, want %q", tt.tmpl, got, tt.want)
			}
		})
	}
}

func TestRenderErrors(t *testing.T) {
	data := testData(t)

	tests := []struct {
		name string
		tmpl string
		want string
	}{
		{name: "parse error", tmpl: "{{.red", want: "failed to parse template"},
		{name: "unknown function", tmpl: "{{nope .red}}", want: "failed to parse template"},
		{name: "group as colour", tmpl: "{{hex .red}}", want: "group of colours"},
		{name: "missing path", tmpl: `{{get . "red.p33"}}`, want: `no key "p33"`},
		{name: "path below colour", tmpl: `{{get . "background.hex.x"}}`, want: "not below a group"},
		{name: "bad hex", tmpl: `{{swatch "xyz"}}`, want: "invalid hex colour"},
		{name: "wrong type", tmpl: `{{swatch 12}}`, want: "cannot use int"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := Render(&buf, "test", "before "+tt.tmpl, data)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("Render() error = %v, want it to contain %q", err, tt.want)
			}
			if buf.Len() != 0 {
				t.Errorf("Render() wrote %q on failure", buf.String())
			}
		})
	}
}

func TestSwatchAndLabel(t *testing.T) {
	got := renderString(t, `{{swatch "ff0000"}}`, nil)
	if want := "\033[48;2;255;0;0m        \033[0m"; got != want {
		t.Errorf("swatch = %q, want %q", got, want)
	}

	got = renderString(t, `{{"ffffff" | label "hi"}}`, nil)
	if want := "\033[48;2;255;255;255m\033[38;2;0;0;0m   hi   \033[0m"; got != want {
		t.Errorf("label = %q, want %q", got, want)
	}

	plainOutput(t)
	if got := renderString(t, `{{swatch "ff0000"}}|{{"ff0000" | label "hi"}}|{{"ff0000" | text "x"}}`, nil); got != "#ff0000 |   hi   |x" {
		t.Errorf("plain helpers = %q", got)
	}
}

func TestBuiltinTemplates(t *testing.T) {
	data := testData(t)
	loader := NewLoader().WithCustomBase(t.TempDir())

	names, err := loader.List()
	if err != nil {
		t.Fatalf("List() unexpected error: %v", err)
	}
	if got := strings.Join(names, ","); got != "absolute,alacritty,kitty,preview" {
		t.Errorf("List() = %v", names)
	}

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			text, fromCustom, err := loader.Load(name)
			if err != nil || fromCustom {
				t.Fatalf("Load(%q) = %v, %v", name, fromCustom, err)
			}
			out := renderString(t, string(text), data)
			if strings.Contains(out, "<no value>") {
				t.Errorf("%s rendered a missing value:\n%s", name, out)
			}
		})
	}

	text, _, _ := loader.Load("absolute")
	if got := renderString(t, string(text), data); got != "cc241d-d79921-98971a-689d6a-458588-b16286\n" {
		t.Errorf("absolute = %q", got)
	}

	text, _, _ = loader.Load("kitty")
	kitty := renderString(t, string(text), data)
	for _, want := range []string{"background           #282828\n", "color1  #cc241d\n", "color0  #282828\n"} {
		if !strings.Contains(kitty, want) {
			t.Errorf("kitty output missing %q:\n%s", want, kitty)
		}
	}
}

func TestPreviewTemplate(t *testing.T) {
	plainOutput(t)
	data := testData(t)

	text, _, err := NewLoader().WithCustomBase(t.TempDir()).Load(PreviewTemplate)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	out := renderString(t, string(text), data)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")

	if lines[0] != "palette "+gruvbox+" (dark)" {
		t.Errorf("header = %q", lines[0])
	}

	wantLines := []string{
		"background       282828 ",
		"red               p10     p100    p125    p25     p50     p75   ",
		"ansi            " + " black  ",
	}
	for _, want := range wantLines {
		found := false
		for _, line := range lines {
			if strings.HasPrefix(line, want) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("preview has no line starting with %q:\n%s", want, out)
		}
	}
}

func TestLoaderOverrides(t *testing.T) {
	dir := t.TempDir()
	loader := NewLoader().WithCustomBase(dir)

	if !loader.Has("preview") || loader.Has("nope") {
		t.Error("Has() reports the wrong built-in templates")
	}
	if _, _, err := loader.Load("nope"); err == nil {
		t.Error("Load() of an unknown template expected error")
	}

	path, err := loader.Dump("absolute", false)
	if err != nil {
		t.Fatalf("Dump() unexpected error: %v", err)
	}
	if path != loader.CustomPath("absolute") || !loader.HasCustom("absolute") {
		t.Errorf("Dump() wrote %s, want %s", path, loader.CustomPath("absolute"))
	}
	if _, err := loader.Dump("absolute", false); err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Errorf("second Dump() error = %v, want already exists", err)
	}
	if _, err := loader.Dump("absolute", true); err != nil {
		t.Errorf("forced Dump() unexpected error: %v", err)
	}

	if err := os.WriteFile(path, []byte("{{.background.hex}}"), 0o600); err != nil {
		t.Fatal(err)
	}
	content, fromCustom, err := loader.Load("absolute.tmpl")
	if err != nil || !fromCustom || string(content) != "{{.background.hex}}" {
		t.Errorf("Load() = %q, %v, %v; want the override", content, fromCustom, err)
	}
}
