package palette

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/jmylchreest/base9/internal/colour"
)

// ChromaMode selects how generated accents pick their distance from the
// background/foreground axis.
type ChromaMode int

const (
	// ChromaAverage gives every generated accent the mean distance of the
	// existing accents.
	ChromaAverage ChromaMode = iota
	// ChromaRange samples each generated accent's distance between the smallest
	// and largest distance of the existing accents.
	ChromaRange
)

// String returns the flag spelling of the mode.
func (m ChromaMode) String() string {
	switch m {
	case ChromaAverage:
		return "average"
	case ChromaRange:
		return "range"
	default:
		return fmt.Sprintf("ChromaMode(%d)", int(m))
	}
}

// ParseChromaMode converts a flag value into a ChromaMode.
func ParseChromaMode(s string) (ChromaMode, error) {
	switch s {
	case "average":
		return ChromaAverage, nil
	case "range":
		return ChromaRange, nil
	default:
		return 0, fmt.Errorf("invalid chroma mode: %s (valid: average, range)", s)
	}
}

// Fallbacks used when no accent is set.
const (
	// fallbackLightness blends the foreground's L* toward black (dark palettes)
	// or white (light palettes) by this factor.
	fallbackLightness = 0.8

	darkMinChroma  = 10.0
	darkMaxChroma  = 50.0
	lightMinChroma = 20.0
	lightMaxChroma = 50.0
)

// Option configures Generate.
type Option func(*generator)

// WithChromaMode selects the accent distance variant. The default is
// ChromaAverage.
func WithChromaMode(m ChromaMode) Option {
	return func(g *generator) {
		g.chroma = m
	}
}

type generator struct {
	rng    *rand.Rand
	chroma ChromaMode
}

// Generate fills every unset slot of p and returns the complete palette. Set
// slots are returned unchanged. All randomness comes from rng, so a given seed
// and input always produce the same palette.
func Generate(p PartialPalette, rng *rand.Rand, opts ...Option) Palette {
	if full, ok := p.Palette(); ok {
		return full
	}

	g := &generator{rng: rng, chroma: ChromaAverage}
	for _, opt := range opts {
		opt(g)
	}

	dark := g.isDark(p)
	if !p.IsSet(Background) {
		p = p.With(Background, corners(dark).sample(g.rng))
	}
	if !p.IsSet(Foreground) {
		p = p.With(Foreground, corners(!dark).sample(g.rng))
	}
	p = g.fillAccents(p, dark)

	full, _ := p.Palette()
	return full
}

// isDark decides whether the palette has a dark background, from the first of
// background, foreground or the accents' Lab centroid that is set.
func (g *generator) isDark(p PartialPalette) bool {
	if bg, ok := p.Get(Background); ok {
		return bg.IsDark()
	}
	if fg, ok := p.Get(Foreground); ok {
		return !fg.IsDark()
	}
	if accents := p.setAccents(); len(accents) > 0 {
		return labCentroid(accents).L >= 50
	}
	return g.rng.Intn(2) == 0
}

func labCentroid(colours []colour.Color) colour.Lab {
	var sum colour.Lab
	for _, c := range colours {
		lab := c.Lab()
		sum.L += lab.L
		sum.A += lab.A
		sum.B += lab.B
	}
	n := float64(len(colours))
	return colour.Lab{L: sum.L / n, A: sum.A / n, B: sum.B / n}
}

// interpolate returns the point on the background/foreground axis at lightness
// l. Outside the span between the two lightnesses the axis is neutral grey.
func interpolate(bg, fg colour.Lab, l float64) colour.Lab {
	centre := colour.Lab{L: l}
	if (bg.L < l) != (fg.L < l) {
		centre.A = bg.A*(l-bg.L)/(fg.L-bg.L) + fg.A*(l-fg.L)/(bg.L-fg.L)
		centre.B = bg.B*(l-bg.L)/(fg.L-bg.L) + fg.B*(l-fg.L)/(bg.L-fg.L)
	}
	return centre
}

// polar is an accent's offset from the axis.
type polar struct {
	distance float64
	angle    float64
}

func decompose(lab, centre colour.Lab) polar {
	da := lab.A - centre.A
	db := lab.B - centre.B
	return polar{distance: math.Hypot(da, db), angle: math.Atan2(da, db)}
}

// accentRange summarises the lightness and distance of a set of accents.
type accentRange struct {
	minL, maxL float64
	minD, maxD float64
	meanD      float64
	angles     []float64
}

// measure collects the polar offsets of the set accents. ok is false when no
// accent is set.
func measure(p PartialPalette, bg, fg colour.Lab) (r accentRange, ok bool) {
	accents := p.setAccents()
	if len(accents) == 0 {
		return accentRange{}, false
	}

	r = accentRange{
		minL: math.Inf(1), maxL: math.Inf(-1),
		minD: math.Inf(1), maxD: math.Inf(-1),
	}
	var sumD float64
	for _, c := range accents {
		lab := c.Lab()
		off := decompose(lab, interpolate(bg, fg, lab.L))
		r.angles = append(r.angles, off.angle)
		sumD += off.distance
		r.minL = math.Min(r.minL, lab.L)
		r.maxL = math.Max(r.maxL, lab.L)
		r.minD = math.Min(r.minD, off.distance)
		r.maxD = math.Max(r.maxD, off.distance)
	}
	r.meanD = sumD / float64(len(accents))
	return r, true
}

// fallbackRange is used when there is no accent to learn from.
func fallbackRange(fg colour.Lab, dark bool) accentRange {
	l := fg.L * fallbackLightness
	if !dark {
		l = 100*(1-fallbackLightness) + fg.L*fallbackLightness
	}
	r := accentRange{minL: l, maxL: l, minD: lightMinChroma, maxD: lightMaxChroma}
	if dark {
		r.minD, r.maxD = darkMinChroma, darkMaxChroma
	}
	return r
}

func (g *generator) uniform(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}

func (g *generator) fillAccents(p PartialPalette, dark bool) PartialPalette {
	missing := 0
	for i := FirstAccent; i < Size; i++ {
		if !p.IsSet(i) {
			missing++
		}
	}
	if missing == 0 {
		return p
	}

	bgColour, _ := p.Get(Background)
	fgColour, _ := p.Get(Foreground)
	bg, fg := bgColour.Lab(), fgColour.Lab()

	r, ok := measure(p, bg, fg)
	if !ok {
		r = fallbackRange(fg, dark)
		// With nothing to average, one distance is drawn for the whole run.
		r.meanD = g.uniform(r.minD, r.maxD)
	}

	angles := packAngles(g.rng, r.angles, missing)
	for i := FirstAccent; i < Size; i++ {
		if p.IsSet(i) {
			continue
		}
		angle := angles[len(angles)-1]
		angles = angles[:len(angles)-1]

		l := g.uniform(r.minL, r.maxL)
		d := r.meanD
		if g.chroma == ChromaRange {
			d = g.uniform(r.minD, r.maxD)
		}

		lab := interpolate(bg, fg, l)
		lab.A += d * math.Cos(angle)
		lab.B += d * math.Sin(angle)
		p = p.With(i, lab.Color())
	}
	return p
}
