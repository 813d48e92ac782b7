package colour

import (
	"errors"
	"fmt"
	"math"
)

// ErrInsufficientCandidates is returned when fewer candidates than canonical
// colours are supplied to MatchCanonical.
var ErrInsufficientCandidates = errors.New("not enough candidate colours")

// CanonicalColour is one of the six named terminal colours that accent hues
// are matched against.
type CanonicalColour struct {
	Name      string
	Reference Color
	// Weight scales this colour's share of the matching cost. Viewers judge
	// primaries more strictly, so they weigh more.
	Weight float64
}

// CanonicalColours is the fixed table of canonical colours in output order.
var CanonicalColours = [...]CanonicalColour{
	{Name: "red", Reference: FromUint32(0xff0000), Weight: 2},
	{Name: "yellow", Reference: FromUint32(0xffff00), Weight: 2},
	{Name: "green", Reference: FromUint32(0x00ff00), Weight: 2},
	{Name: "cyan", Reference: FromUint32(0x00ffff), Weight: 1},
	{Name: "blue", Reference: FromUint32(0x0000ff), Weight: 1},
	{Name: "magenta", Reference: FromUint32(0xff00ff), Weight: 1},
}

// CanonicalNames returns the canonical colour names in output order.
func CanonicalNames() []string {
	names := make([]string, len(CanonicalColours))
	for i, cc := range CanonicalColours {
		names[i] = cc.Name
	}
	return names
}

// CanonicalMatch pairs a canonical colour name with the candidate chosen for it.
type CanonicalMatch struct {
	Name  string
	Color Color
	// Index is the position of Color in the candidate slice.
	Index int
}

// rgbVec is a colour in plain sRGB channel space.
type rgbVec [3]float64

func vec(c Color) rgbVec {
	return rgbVec{float64(c.R), float64(c.G), float64(c.B)}
}

func centroid(colours []Color) rgbVec {
	var sum rgbVec
	for _, c := range colours {
		v := vec(c)
		sum[0] += v[0]
		sum[1] += v[1]
		sum[2] += v[2]
	}
	n := float64(len(colours))
	return rgbVec{sum[0] / n, sum[1] / n, sum[2] / n}
}

func offset(v, origin rgbVec) rgbVec {
	return rgbVec{v[0] - origin[0], v[1] - origin[1], v[2] - origin[2]}
}

// MatchCanonical assigns six distinct candidates to the canonical colours so
// that the weighted sum of squared distances between centred offsets is
// minimal. Both sets are centred on their own centroid first, which removes any
// tint the candidates share.
//
// Every ordered selection of six candidates is tried in lexicographic index
// order and the first minimum found wins, so ties resolve the same way on every
// run. Results are returned in CanonicalColours order.
func MatchCanonical(candidates []Color) ([]CanonicalMatch, error) {
	n := len(CanonicalColours)
	if len(candidates) < n {
		return nil, fmt.Errorf("%w: have %d, need %d", ErrInsufficientCandidates, len(candidates), n)
	}

	refs := make([]Color, n)
	for i, cc := range CanonicalColours {
		refs[i] = cc.Reference
	}
	refCentre := centroid(refs)
	candCentre := centroid(candidates)

	refOffsets := make([]rgbVec, n)
	for i, r := range refs {
		refOffsets[i] = offset(vec(r), refCentre)
	}
	candOffsets := make([]rgbVec, len(candidates))
	for i, c := range candidates {
		candOffsets[i] = offset(vec(c), candCentre)
	}

	// cost[i][j] is the weighted cost of giving candidate j to reference i.
	cost := make([][]float64, n)
	for i := range cost {
		cost[i] = make([]float64, len(candidates))
		for j := range candidates {
			d := offset(refOffsets[i], candOffsets[j])
			cost[i][j] = CanonicalColours[i].Weight * (d[0]*d[0] + d[1]*d[1] + d[2]*d[2])
		}
	}

	s := &permSearch{
		cost: cost,
		used: make([]bool, len(candidates)),
		cur:  make([]int, n),
		best: make([]int, n),
		min:  math.Inf(1),
	}
	s.search(0, 0)

	matches := make([]CanonicalMatch, n)
	for i, j := range s.best {
		matches[i] = CanonicalMatch{
			Name:  CanonicalColours[i].Name,
			Color: candidates[j],
			Index: j,
		}
	}
	return matches, nil
}

// permSearch enumerates ordered selections depth first, choosing candidate
// indices in increasing order at every depth.
type permSearch struct {
	cost [][]float64
	used []bool
	cur  []int
	best []int
	min  float64
}

func (s *permSearch) search(depth int, total float64) {
	if depth == len(s.cur) {
		// Strict comparison keeps the first ordering among equal costs.
		if total < s.min {
			s.min = total
			copy(s.best, s.cur)
		}
		return
	}
	for j := range s.used {
		if s.used[j] {
			continue
		}
		s.used[j] = true
		s.cur[depth] = j
		s.search(depth+1, total+s.cost[depth][j])
		s.used[j] = false
	}
}
