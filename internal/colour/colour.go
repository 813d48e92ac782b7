// Package colour provides the colour-space conversions, perceptual mixing and
// canonical colour matching used to build base9 palettes.
package colour

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidHex is returned when a string is not a six digit hex colour.
var ErrInvalidHex = errors.New("invalid hex colour")

// Color is an 8-bit sRGB colour. Equality is defined on the channel values.
type Color struct {
	R uint8 `json:"r" yaml:"r"`
	G uint8 `json:"g" yaml:"g"`
	B uint8 `json:"b" yaml:"b"`
}

// RGB builds a Color from its three channels.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// FromUint32 builds a Color from a 0xRRGGBB value. Bits above 24 are ignored.
func FromUint32(v uint32) Color {
	return Color{
		R: uint8(v >> 16), // #nosec G115 -- channel extraction
		G: uint8(v >> 8),  // #nosec G115 -- channel extraction
		B: uint8(v),       // #nosec G115 -- channel extraction
	}
}

// ParseHex parses a colour written as six hex digits, with or without a
// leading '#'.
func ParseHex(s string) (Color, error) {
	digits := strings.TrimPrefix(s, "#")
	if len(digits) != 6 {
		return Color{}, fmt.Errorf("%w: %q (want 6 hex digits)", ErrInvalidHex, s)
	}
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	return FromUint32(uint32(v)), nil
}

// MustParseHex is like ParseHex but panics on malformed input.
// It is intended for package-level tables of known colours.
func MustParseHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex returns the colour as "#rrggbb".
func (c Color) Hex() string {
	return "#" + c.HexNoHash()
}

// HexNoHash returns the colour as "rrggbb", the form used in palette codes.
func (c Color) HexNoHash() string {
	return fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
}

// String returns the colour in the rrggbb form.
func (c Color) String() string {
	return c.HexNoHash()
}

// Uint32 returns the colour packed as 0xRRGGBB.
func (c Color) Uint32() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// RGBA implements image/color.Color. Colours are always opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	a = 0xffff
	return
}

// IsDark reports whether the colour's lightness sits in the lower half of
// the L* axis.
func (c Color) IsDark() bool {
	return c.Lab().L < 50
}
