package colour

import (
	"math"
	"sort"
)

// contrastOffset keeps ln(Y + offset) finite as Y approaches zero. It is the
// same flare term used by the WCAG contrast ratio.
const contrastOffset = 0.05

// lerp returns a*(1-w) + b*w.
func lerp(a, b, w float64) float64 {
	return a*(1-w) + b*w
}

// contrast maps a luminance onto a scale on which equal steps look like equal
// brightness steps.
func contrast(y float64) float64 {
	return math.Log(y + contrastOffset)
}

// Mix returns the colour w of the way from a to b. Luminance contrast varies
// linearly with w while a* and b* are interpolated directly. w outside [0,1]
// extrapolates; the result is clamped to sRGB.
func Mix(a, b Color, w float64) Color {
	ax, bx := a.XYZ(), b.XYZ()
	al, bl := ax.Lab(), bx.Lab()

	y := math.Exp(lerp(contrast(ax.Y), contrast(bx.Y), w)) - contrastOffset
	// L* only depends on Y, so X and Z are left at zero.
	l := XYZ{Y: y}.Lab().L

	return Lab{
		L: l,
		A: lerp(al.A, bl.A, w),
		B: lerp(al.B, bl.B, w),
	}.Color()
}

// Shades maps a shade name (for example "p50") to a mix ratio. Ratios are not
// bounded to [0,1].
type Shades map[string]float64

// Names returns the shade names in sorted order.
func (s Shades) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ShadeSet mixes c against the background bg at every ratio in shades. A ratio
// of 0 yields bg and 1 yields c.
func ShadeSet(c, bg Color, shades Shades) map[string]Color {
	set := make(map[string]Color, len(shades))
	for name, ratio := range shades {
		set[name] = Mix(bg, c, ratio)
	}
	return set
}
