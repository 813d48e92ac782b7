package palette

import (
	"math"
	"math/rand"
	"sort"
	"testing"
)

const angleTolerance = 1e-9

func circularDiffs(angles []float64) []float64 {
	sorted := append([]float64(nil), angles...)
	sort.Float64s(sorted)
	diffs := make([]float64, len(sorted))
	for i := range sorted {
		if i == len(sorted)-1 {
			diffs[i] = sorted[0] + fullTurn - sorted[i]
		} else {
			diffs[i] = sorted[i+1] - sorted[i]
		}
	}
	return diffs
}

func TestPackAnglesEvenWithoutExisting(t *testing.T) {
	for k := 1; k <= AccentCount; k++ {
		rng := rand.New(rand.NewSource(int64(k)))
		angles := packAngles(rng, nil, k)
		if len(angles) != k {
			t.Fatalf("k=%d: got %d angles", k, len(angles))
		}
		want := fullTurn / float64(k)
		for i, d := range circularDiffs(angles) {
			if math.Abs(d-want) > angleTolerance {
				t.Errorf("k=%d: gap %d = %v, want %v", k, i, d, want)
			}
		}
		for _, a := range angles {
			if a < 0 || a >= fullTurn {
				t.Errorf("k=%d: angle %v outside [0, 2π)", k, a)
			}
		}
	}
}

func TestPackAnglesZero(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	if got := packAngles(rng, []float64{1, 2}, 0); len(got) != 0 {
		t.Errorf("packAngles(k=0) = %v, want none", got)
	}
}

func TestPackAnglesFillsGaps(t *testing.T) {
	tests := []struct {
		name     string
		existing []float64
		k        int
		want     []float64
	}{
		{
			name:     "single existing angle owns the circle",
			existing: []float64{0},
			k:        3,
			want:     []float64{math.Pi / 2, math.Pi, 3 * math.Pi / 2},
		},
		{
			name:     "negative angles are normalised",
			existing: []float64{-math.Pi / 2},
			k:        1,
			want:     []float64{math.Pi / 2},
		},
		{
			name:     "small gap is skipped",
			existing: []float64{0, math.Pi / 3},
			k:        3,
			want:     []float64{3 * math.Pi / 4, 7 * math.Pi / 6, 19 * math.Pi / 12},
		},
		{
			name:     "two opposite angles split evenly",
			existing: []float64{0, math.Pi},
			k:        2,
			want:     []float64{math.Pi / 2, 3 * math.Pi / 2},
		},
		{
			name:     "non-finite angles are ignored",
			existing: []float64{math.NaN(), 0, math.Inf(1)},
			k:        1,
			want:     []float64{math.Pi},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(3))
			got := packAngles(rng, tt.existing, tt.k)
			sort.Float64s(got)
			if len(got) != len(tt.want) {
				t.Fatalf("packAngles() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if math.Abs(got[i]-tt.want[i]) > angleTolerance {
					t.Errorf("packAngles() = %v, want %v", got, tt.want)
					break
				}
			}
		})
	}
}

func TestDistributeFairness(t *testing.T) {
	tests := []struct {
		name string
		gaps []float64
		k    int
		want []int
	}{
		{name: "largest gap first", gaps: []float64{1, 3}, k: 1, want: []int{0, 1}},
		// After three items the gaps tie at 1.0 and the earlier gap wins.
		{name: "tie goes to earliest gap", gaps: []float64{1, 3}, k: 4, want: []int{1, 3}},
		{name: "equal gaps round robin", gaps: []float64{2, 2, 2}, k: 4, want: []int{2, 1, 1}},
		{name: "zero gap never chosen", gaps: []float64{0, 5}, k: 3, want: []int{0, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := distribute(tt.gaps, tt.k)
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Fatalf("distribute(%v, %d) = %v, want %v", tt.gaps, tt.k, got, tt.want)
				}
			}
		})
	}
}

func TestCircularGaps(t *testing.T) {
	gaps := circularGaps([]float64{1, 1, 4})
	want := []float64{0, 3, fullTurn - 3}
	for i := range want {
		if math.Abs(gaps[i]-want[i]) > angleTolerance {
			t.Fatalf("circularGaps() = %v, want %v", gaps, want)
		}
	}
}
