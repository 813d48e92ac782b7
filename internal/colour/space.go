package colour

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// labScale converts go-colorful's 0..1 Lab scale to CIE units (L* in 0..100).
const labScale = 100.0

// XYZ is a linear-light CIE XYZ triple relative to the D65 white point, with
// Y in the range 0..1 for in-gamut colours.
type XYZ struct {
	X, Y, Z float64
}

// Lab is a CIE L*a*b* colour in CIE units: L in 0..100, a and b roughly
// -128..128. Lab values carry rounding error; compare them with a tolerance.
type Lab struct {
	L, A, B float64
}

// LCh is the polar form of Lab. H is the hue angle in radians.
type LCh struct {
	L, C, H float64
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// XYZ decodes the sRGB gamma and applies the sRGB to XYZ matrix.
func (c Color) XYZ() XYZ {
	x, y, z := c.colorful().Xyz()
	return XYZ{X: x, Y: y, Z: z}
}

// Lab returns the colour in CIE L*a*b* (D65).
func (c Color) Lab() Lab {
	return c.XYZ().Lab()
}

// LCh returns the colour in polar L*C*h form.
func (c Color) LCh() LCh {
	return c.Lab().LCh()
}

// Lab converts XYZ to CIE L*a*b* with the D65 reference white.
func (x XYZ) Lab() Lab {
	l, a, b := colorful.XyzToLab(x.X, x.Y, x.Z)
	return Lab{L: l * labScale, A: a * labScale, B: b * labScale}
}

// Color converts XYZ to 8-bit sRGB, clamping each channel.
func (x XYZ) Color() Color {
	return fromColorful(colorful.Xyz(x.X, x.Y, x.Z))
}

// XYZ converts Lab back to linear XYZ.
func (l Lab) XYZ() XYZ {
	x, y, z := colorful.LabToXyz(l.L/labScale, l.A/labScale, l.B/labScale)
	return XYZ{X: x, Y: y, Z: z}
}

// Color converts Lab to 8-bit sRGB. Out-of-gamut values are clamped per
// channel; hue is not preserved.
func (l Lab) Color() Color {
	return l.XYZ().Color()
}

// LCh returns the polar form of l.
func (l Lab) LCh() LCh {
	return LCh{L: l.L, C: math.Hypot(l.A, l.B), H: math.Atan2(l.B, l.A)}
}

// Lab returns the rectangular form of l.
func (l LCh) Lab() Lab {
	return Lab{L: l.L, A: l.C * math.Cos(l.H), B: l.C * math.Sin(l.H)}
}

// Color converts l to clamped 8-bit sRGB.
func (l LCh) Color() Color {
	return l.Lab().Color()
}

// fromColorful clamps a go-colorful value into 8-bit sRGB. NaN channels
// collapse to zero.
func fromColorful(c colorful.Color) Color {
	c = colorful.Color{R: notNaN(c.R), G: notNaN(c.G), B: notNaN(c.B)}.Clamped()
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b}
}

func notNaN(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return v
}
