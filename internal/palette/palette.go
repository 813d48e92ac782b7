// Package palette provides base9 palettes: nine colours made of a background,
// a foreground and seven accent hues, and the generator that fills in the
// colours a user leaves unspecified.
package palette

import (
	"strings"

	"github.com/jmylchreest/base9/internal/colour"
)

// Size is the number of colours in a palette.
const Size = 9

// Slot indices.
const (
	Background  = 0
	Foreground  = 1
	FirstAccent = 2
)

// AccentCount is the number of accent hues in a palette.
const AccentCount = Size - FirstAccent

// Palette is a fully populated palette.
type Palette [Size]colour.Color

// Background returns slot 0.
func (p Palette) Background() colour.Color { return p[Background] }

// Foreground returns slot 1.
func (p Palette) Foreground() colour.Color { return p[Foreground] }

// Accents returns a copy of the seven accent hues.
func (p Palette) Accents() []colour.Color {
	accents := make([]colour.Color, AccentCount)
	copy(accents, p[FirstAccent:])
	return accents
}

// IsDark reports whether the background is darker than the foreground.
func (p Palette) IsDark() bool {
	return p.Background().Lab().L < p.Foreground().Lab().L
}

// String returns the palette code: every colour as rrggbb joined by '-'.
func (p Palette) String() string {
	parts := make([]string, Size)
	for i, c := range p {
		parts[i] = c.HexNoHash()
	}
	return strings.Join(parts, separator)
}

// Partial converts p into a PartialPalette with every slot set.
func (p Palette) Partial() PartialPalette {
	var pp PartialPalette
	for i, c := range p {
		pp = pp.With(i, c)
	}
	return pp
}

// PartialPalette is a palette whose slots may be unset. Unset slots are filled
// by Generate. The zero value has every slot unset.
type PartialPalette struct {
	colours [Size]colour.Color
	set     [Size]bool
}

// Get returns the colour in slot i and whether it is set.
func (p PartialPalette) Get(i int) (colour.Color, bool) {
	return p.colours[i], p.set[i]
}

// With returns a copy of p with slot i set to c.
func (p PartialPalette) With(i int, c colour.Color) PartialPalette {
	p.colours[i] = c
	p.set[i] = true
	return p
}

// IsSet reports whether slot i is set.
func (p PartialPalette) IsSet(i int) bool {
	return p.set[i]
}

// IsComplete reports whether every slot is set.
func (p PartialPalette) IsComplete() bool {
	for _, ok := range p.set {
		if !ok {
			return false
		}
	}
	return true
}

// Palette returns the palette and true when every slot is set.
func (p PartialPalette) Palette() (Palette, bool) {
	if !p.IsComplete() {
		return Palette{}, false
	}
	return Palette(p.colours), true
}

// setAccents returns the accent colours that are set, in slot order.
func (p PartialPalette) setAccents() []colour.Color {
	var accents []colour.Color
	for i := FirstAccent; i < Size; i++ {
		if p.set[i] {
			accents = append(accents, p.colours[i])
		}
	}
	return accents
}

// String returns the palette code with unset slots written as '_'.
func (p PartialPalette) String() string {
	parts := make([]string, Size)
	for i := range p.colours {
		if p.set[i] {
			parts[i] = p.colours[i].HexNoHash()
		} else {
			parts[i] = tokenUnset
		}
	}
	return strings.Join(parts, separator)
}
