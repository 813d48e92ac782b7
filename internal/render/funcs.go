package render

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/jmylchreest/base9/internal/colour"
)

// swatchWidth is the number of cells used by the swatch and label helpers.
const swatchWidth = 8

// Funcs returns the helper functions available to every template.
func Funcs() template.FuncMap {
	return template.FuncMap{
		// Data access.
		"get": getFunc,

		// Terminal previews.
		"swatch": swatchFunc,
		"label":  labelFunc,
		"text":   textFunc,

		// Format conversion.
		"hex": hexFunc,
		"rgb": rgbFunc,

		// String manipulation (pipe-friendly argument order).
		"trimPrefix": trimPrefixFunc,
		"trimSuffix": trimSuffixFunc,
		"replace":    replaceFunc,
		"toLower":    strings.ToLower,
		"toUpper":    strings.ToUpper,
	}
}

// toColour accepts a hex string or the format map of a single colour.
func toColour(v any) (colour.Color, error) {
	switch x := v.(type) {
	case colour.Color:
		return x, nil
	case string:
		return colour.ParseHex(x)
	case map[string]any:
		if hex, ok := x["hex"].(string); ok {
			return colour.ParseHex(hex)
		}
		return colour.Color{}, fmt.Errorf("value is a group of colours, not a colour")
	default:
		return colour.Color{}, fmt.Errorf("cannot use %T as a colour", v)
	}
}

// getFunc looks up a dotted path such as "red.p100" in nested template data.
//
//	{{ (get . "ansi.red").hex }}
func getFunc(data any, path string) (any, error) {
	cur := data
	for _, key := range strings.Split(path, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("get %q: %q is not below a group", path, key)
		}
		if cur, ok = m[key]; !ok {
			return nil, fmt.Errorf("get %q: no key %q", path, key)
		}
	}
	return cur, nil
}

// swatchFunc renders a solid block in the colour.
func swatchFunc(v any) (string, error) {
	c, err := toColour(v)
	if err != nil {
		return "", err
	}
	return colour.Swatch(c, swatchWidth), nil
}

// labelFunc renders text on a block of the colour.
//
//	{{ .red.p100 | label "red" }}
func labelFunc(text string, v any) (string, error) {
	c, err := toColour(v)
	if err != nil {
		return "", err
	}
	return colour.Label(c, text, swatchWidth), nil
}

// textFunc writes text in the colour.
func textFunc(text string, v any) (string, error) {
	c, err := toColour(v)
	if err != nil {
		return "", err
	}
	return colour.Text(c, text), nil
}

// hexFunc returns the colour as #rrggbb.
func hexFunc(v any) (string, error) {
	c, err := toColour(v)
	if err != nil {
		return "", err
	}
	return c.Hex(), nil
}

// rgbFunc returns the colour in CSS rgb(r,g,b) format.
func rgbFunc(v any) (string, error) {
	c, err := toColour(v)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B), nil
}

func trimPrefixFunc(prefix, s string) string {
	return strings.TrimPrefix(s, prefix)
}

func trimSuffixFunc(suffix, s string) string {
	return strings.TrimSuffix(s, suffix)
}

func replaceFunc(old, new, s string) string {
	return strings.ReplaceAll(s, old, new)
}
