package colourmap

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jmylchreest/base9/internal/colour"
	"github.com/jmylchreest/base9/internal/config"
	"github.com/jmylchreest/base9/internal/palette"
)

// Reserved keys added next to the colour tree by Format.
const (
	KeyPalette      = "PALETTE"
	KeyProgrammable = "PROGRAMMABLE"
	KeyDark         = "DARK"
)

// ColourFormats returns the template fields of a single colour. Every value
// is a string; hex values are lower case without a leading '#'.
func ColourFormats(c colour.Color) map[string]any {
	dec := func(v uint8) string {
		return strconv.FormatFloat(float64(v)/255, 'f', -1, 64)
	}
	return map[string]any{
		"hex":   c.HexNoHash(),
		"hex_r": fmt.Sprintf("%02x", c.R),
		"hex_g": fmt.Sprintf("%02x", c.G),
		"hex_b": fmt.Sprintf("%02x", c.B),
		"int_r": strconv.Itoa(int(c.R)),
		"int_g": strconv.Itoa(int(c.G)),
		"int_b": strconv.Itoa(int(c.B)),
		"dec_r": dec(c.R),
		"dec_g": dec(c.G),
		"dec_b": dec(c.B),
	}
}

// Format converts the tree into nested template data. Groups become maps and
// colours become ColourFormats. The reserved keys are added at the top level:
//
//	PALETTE       the palette code of p
//	DARK          whether p has a dark background
//	PROGRAMMABLE  the tree flattened in walk order, without the root group
//
// A PROGRAMMABLE entry has a "path" map with "dotted", "indent" and "last",
// plus either "color" or one of "begin" and "end" set to true.
func Format(m *Map, p palette.Palette) map[string]any {
	data, _ := m.format(Root).(map[string]any)

	var list []any
	// Walk only fails when the callback does.
	_ = m.Walk(func(e Event) error {
		if len(e.Path) == 0 {
			return nil
		}
		entry := map[string]any{
			"path": map[string]any{
				"dotted": e.Dotted(),
				"indent": strings.Repeat(" ", len(e.Path)),
				"last":   e.Last(),
			},
		}
		switch e.Kind {
		case EventColour:
			entry["color"] = ColourFormats(e.Colour)
		case EventBegin:
			entry["begin"] = true
		case EventEnd:
			entry["end"] = true
		}
		list = append(list, entry)
		return nil
	})

	data[KeyProgrammable] = list
	data[KeyPalette] = p.String()
	data[KeyDark] = p.IsDark()
	return data
}

func (m *Map) format(id NodeID) any {
	if c, ok := m.Colour(id); ok {
		return ColourFormats(c)
	}
	out := make(map[string]any, len(m.nodes[id].children))
	for key, child := range m.nodes[id].children {
		out[key] = m.format(child)
	}
	return out
}

// Variables builds the tree for p with the shades and aliases of cfg and
// returns its template data.
func Variables(p palette.Palette, cfg config.Config) (map[string]any, error) {
	m, err := Build(p, cfg.Shades, cfg.Colors)
	if err != nil {
		return nil, err
	}
	return Format(m, p), nil
}
