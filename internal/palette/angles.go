package palette

import (
	"math"
	"math/rand"
	"sort"
)

const fullTurn = 2 * math.Pi

// normaliseAngle maps a into [0, 2π).
func normaliseAngle(a float64) float64 {
	a = math.Mod(a, fullTurn)
	if a < 0 {
		a += fullTurn
	}
	return a
}

// packAngles chooses k new hue angles that sit well apart from each other and
// from the existing ones.
//
// With no existing angles the k angles are spread evenly from a random start.
// Otherwise every circular gap between sorted existing angles receives new
// angles one at a time, always going to the gap with the largest
// gap/(assigned+1), and the angles a gap receives are spaced evenly inside it.
// The result is shuffled so slot order carries no information about position.
func packAngles(rng *rand.Rand, existing []float64, k int) []float64 {
	if k <= 0 {
		return nil
	}

	fixed := make([]float64, 0, len(existing))
	for _, a := range existing {
		if math.IsNaN(a) || math.IsInf(a, 0) {
			continue
		}
		fixed = append(fixed, normaliseAngle(a))
	}
	sort.Float64s(fixed)

	angles := make([]float64, 0, k)
	if len(fixed) == 0 {
		start := rng.Float64() * fullTurn
		for i := 0; i < k; i++ {
			angles = append(angles, normaliseAngle(start+float64(i)*fullTurn/float64(k)))
		}
	} else {
		gaps := circularGaps(fixed)
		counts := distribute(gaps, k)
		for i, a := range fixed {
			step := gaps[i] / float64(counts[i]+1)
			for j := 1; j <= counts[i]; j++ {
				angles = append(angles, normaliseAngle(a+float64(j)*step))
			}
		}
	}

	rng.Shuffle(len(angles), func(i, j int) {
		angles[i], angles[j] = angles[j], angles[i]
	})
	return angles
}

// circularGaps returns, for each sorted angle, the distance to the next one
// going round the circle. A lone angle owns the whole circle.
func circularGaps(sorted []float64) []float64 {
	n := len(sorted)
	gaps := make([]float64, n)
	for i := 0; i < n-1; i++ {
		gaps[i] = sorted[i+1] - sorted[i]
	}
	gaps[n-1] = sorted[0] + fullTurn - sorted[n-1]
	return gaps
}

// distribute hands k items to gaps greedily by gap/(count+1). Ties go to the
// earliest gap.
func distribute(gaps []float64, k int) []int {
	counts := make([]int, len(gaps))
	for ; k > 0; k-- {
		best := 0
		for i := 1; i < len(gaps); i++ {
			if gaps[i]/float64(counts[i]+1) > gaps[best]/float64(counts[best]+1) {
				best = i
			}
		}
		counts[best]++
	}
	return counts
}
