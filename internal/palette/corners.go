package palette

import (
	"math/rand"

	"github.com/jmylchreest/base9/internal/colour"
)

// cornerSet spans a region of Lab space used to synthesise backgrounds and
// foregrounds. A sample blends the base colour with three corner colours.
type cornerSet struct {
	base    colour.Lab
	corners [3]colour.Lab
}

var (
	// darkCorners: black plus a deep blue, a dark green and a dark red.
	darkCorners = cornerSet{
		base: colour.FromUint32(0x000000).Lab(),
		corners: [3]colour.Lab{
			colour.FromUint32(0x10009c).Lab(),
			colour.FromUint32(0x003000).Lab(),
			colour.FromUint32(0x5a0000).Lab(),
		},
	}
	// lightCorners: white plus a cyan, a green and a pink.
	lightCorners = cornerSet{
		base: colour.FromUint32(0xffffff).Lab(),
		corners: [3]colour.Lab{
			colour.FromUint32(0x00e2ff).Lab(),
			colour.FromUint32(0x00ef00).Lab(),
			colour.FromUint32(0xffadff).Lab(),
		},
	}
)

func corners(dark bool) cornerSet {
	if dark {
		return darkCorners
	}
	return lightCorners
}

// sample draws a random convex combination of the set. The first draw moves
// the result between the base colour and the corner triangle; the other two
// pick a point inside the triangle.
func (s cornerSet) sample(rng *rand.Rand) colour.Color {
	spread := rng.Float64()
	x := rng.Float64()
	y := rng.Float64()
	// Reflect points from the far half of the unit square back into the triangle.
	if x+y > 1 {
		x, y = 1-x, 1-y
	}

	weights := [3]float64{(1 - x - y) * spread, x * spread, y * spread}
	baseWeight := 1 - spread

	lab := colour.Lab{
		L: s.base.L * baseWeight,
		A: s.base.A * baseWeight,
		B: s.base.B * baseWeight,
	}
	for i, c := range s.corners {
		lab.L += c.L * weights[i]
		lab.A += c.A * weights[i]
		lab.B += c.B * weights[i]
	}
	return lab.Color()
}
