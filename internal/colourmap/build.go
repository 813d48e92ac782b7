package colourmap

import (
	"fmt"

	"github.com/jmylchreest/base9/internal/colour"
	"github.com/jmylchreest/base9/internal/config"
	"github.com/jmylchreest/base9/internal/palette"
)

// Built-in top-level keys.
const (
	KeyBackground = "background"
	KeyForeground = "foreground"
)

// AccentKey returns the key of accent i (0-based): c1 to c7.
func AccentKey(i int) string {
	return fmt.Sprintf("c%d", i+1)
}

// Build creates the colour tree for p:
//
//	background            the background colour
//	foreground.<shade>    foreground mixed against the background
//	c1..c7.<shade>        accents in palette order
//	red..magenta.<shade>  accents matched to the canonical hues
//
// followed by the aliases in cfg.Colors. Aliases are applied in sorted key
// order and may refer to any node that exists when they are applied.
func Build(p palette.Palette, shades colour.Shades, aliases config.Aliases) (*Map, error) {
	m := New()
	bg := p.Background()

	if _, err := m.AddColour(Root, KeyBackground, bg); err != nil {
		return nil, err
	}
	if err := m.addShades(KeyForeground, p.Foreground(), bg, shades); err != nil {
		return nil, err
	}

	accents := p.Accents()
	for i, c := range accents {
		if err := m.addShades(AccentKey(i), c, bg, shades); err != nil {
			return nil, err
		}
	}

	matches, err := colour.MatchCanonical(accents)
	if err != nil {
		return nil, fmt.Errorf("failed to match canonical colours: %w", err)
	}
	for _, match := range matches {
		if err := m.addShades(match.Name, match.Color, bg, shades); err != nil {
			return nil, err
		}
	}

	if err := m.applyAliases(Root, aliases, ""); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Map) addShades(key string, c, bg colour.Color, shades colour.Shades) error {
	group, err := m.AddGroup(Root, key)
	if err != nil {
		return err
	}
	set := colour.ShadeSet(c, bg, shades)
	for _, name := range shades.Names() {
		if _, err := m.AddColour(group, name, set[name]); err != nil {
			return err
		}
	}
	return nil
}

func (m *Map) applyAliases(parent NodeID, aliases config.Aliases, prefix string) error {
	for _, name := range aliases.Names() {
		alias := aliases[name]
		where := name
		if prefix != "" {
			where = prefix + "." + name
		}

		switch alias.Kind {
		case config.AliasBuiltIn:
		case config.AliasReference:
			target, err := m.Resolve(alias.Reference)
			if err != nil {
				return fmt.Errorf("colors.%s: %w", where, err)
			}
			if err := m.Link(parent, name, target); err != nil {
				return fmt.Errorf("colors.%s: %w", where, err)
			}
		case config.AliasGroup:
			// The group is attached only once its entries are resolved, so
			// entries cannot refer to the group being built.
			group := m.newGroup()
			if err := m.applyAliases(group, alias.Group, where); err != nil {
				return err
			}
			if err := m.Link(parent, name, group); err != nil {
				return fmt.Errorf("colors.%s: %w", where, err)
			}
		default:
			return fmt.Errorf("colors.%s: unknown alias kind %v", where, alias.Kind)
		}
	}
	return nil
}
