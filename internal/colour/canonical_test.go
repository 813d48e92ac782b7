package colour

import (
	"errors"
	"testing"
)

func referenceColours() []Color {
	refs := make([]Color, len(CanonicalColours))
	for i, cc := range CanonicalColours {
		refs[i] = cc.Reference
	}
	return refs
}

func TestMatchCanonicalIdentity(t *testing.T) {
	matches, err := MatchCanonical(referenceColours())
	if err != nil {
		t.Fatalf("MatchCanonical() unexpected error: %v", err)
	}

	for i, m := range matches {
		cc := CanonicalColours[i]
		if m.Name != cc.Name {
			t.Errorf("match %d name = %q, want %q", i, m.Name, cc.Name)
		}
		if m.Color != cc.Reference || m.Index != i {
			t.Errorf("%s = %s (index %d), want %s (index %d)", cc.Name, m.Color, m.Index, cc.Reference, i)
		}
	}
}

func TestMatchCanonicalPerturbedAndShuffled(t *testing.T) {
	// Near-pure hues in scrambled order plus a grey decoy.
	candidates := []Color{
		RGB(250, 10, 240), // magenta
		RGB(8, 250, 3),    // green
		RGB(128, 128, 128),
		RGB(245, 6, 4),    // red
		RGB(5, 12, 248),   // blue
		RGB(252, 247, 9),  // yellow
		RGB(3, 240, 251),  // cyan
	}
	want := map[string]int{
		"red":     3,
		"yellow":  5,
		"green":   1,
		"cyan":    6,
		"blue":    4,
		"magenta": 0,
	}

	matches, err := MatchCanonical(candidates)
	if err != nil {
		t.Fatalf("MatchCanonical() unexpected error: %v", err)
	}
	if len(matches) != len(CanonicalColours) {
		t.Fatalf("MatchCanonical() returned %d matches, want %d", len(matches), len(CanonicalColours))
	}
	for i, m := range matches {
		if m.Name != CanonicalNames()[i] {
			t.Errorf("match %d name = %q, want %q", i, m.Name, CanonicalNames()[i])
		}
		if m.Index != want[m.Name] {
			t.Errorf("%s matched candidate %d (%s), want %d (%s)",
				m.Name, m.Index, m.Color, want[m.Name], candidates[want[m.Name]])
		}
		if m.Color != candidates[m.Index] {
			t.Errorf("%s colour %s does not match candidate %d", m.Name, m.Color, m.Index)
		}
	}
}

func TestMatchCanonicalIgnoresSharedTint(t *testing.T) {
	// Every hue pulled toward the same warm tint keeps its identity.
	tinted := make([]Color, 0, len(CanonicalColours))
	for _, c := range referenceColours() {
		tinted = append(tinted, Mix(c, RGB(200, 150, 60), 0.4))
	}

	matches, err := MatchCanonical(tinted)
	if err != nil {
		t.Fatalf("MatchCanonical() unexpected error: %v", err)
	}
	for i, m := range matches {
		if m.Index != i {
			t.Errorf("%s matched candidate %d, want %d", m.Name, m.Index, i)
		}
	}
}

func TestMatchCanonicalTieIsStable(t *testing.T) {
	// Index 0 and 6 are identical, so both cost the same for red.
	candidates := append(referenceColours(), FromUint32(0xff0000))

	first, err := MatchCanonical(candidates)
	if err != nil {
		t.Fatalf("MatchCanonical() unexpected error: %v", err)
	}
	if first[0].Index != 0 {
		t.Errorf("red tie resolved to candidate %d, want first-enumerated candidate 0", first[0].Index)
	}

	for run := 0; run < 20; run++ {
		again, err := MatchCanonical(candidates)
		if err != nil {
			t.Fatalf("MatchCanonical() unexpected error: %v", err)
		}
		for i := range first {
			if again[i] != first[i] {
				t.Fatalf("run %d: match %d = %+v, want %+v", run, i, again[i], first[i])
			}
		}
	}
}

func TestMatchCanonicalInsufficientCandidates(t *testing.T) {
	tests := []struct {
		name       string
		candidates []Color
	}{
		{name: "none", candidates: nil},
		{name: "five", candidates: referenceColours()[:5]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matches, err := MatchCanonical(tt.candidates)
			if !errors.Is(err, ErrInsufficientCandidates) {
				t.Fatalf("MatchCanonical() error = %v, want ErrInsufficientCandidates", err)
			}
			if matches != nil {
				t.Errorf("MatchCanonical() returned partial result %v", matches)
			}
		})
	}
}

func TestCanonicalWeights(t *testing.T) {
	for _, cc := range CanonicalColours[:3] {
		for _, secondary := range CanonicalColours[3:] {
			if cc.Weight <= secondary.Weight {
				t.Errorf("primary %s weight %v should exceed secondary %s weight %v",
					cc.Name, cc.Weight, secondary.Name, secondary.Weight)
			}
		}
	}
}
