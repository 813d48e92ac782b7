package palette

import (
	"errors"
	"strings"
	"testing"

	"github.com/jmylchreest/base9/internal/colour"
)

func TestParsePartialFullPalette(t *testing.T) {
	code := "000000-ffffff-222222-333333-444444-555555-666666-777777-888888"

	pp, err := ParsePartial(code)
	if err != nil {
		t.Fatalf("ParsePartial() unexpected error: %v", err)
	}
	if !pp.IsComplete() {
		t.Fatal("ParsePartial() of nine colours should be complete")
	}
	if got := pp.String(); got != code {
		t.Errorf("String() = %q, want %q", got, code)
	}

	p, err := Parse(code)
	if err != nil {
		t.Fatalf("Parse() unexpected error: %v", err)
	}
	if got := p.String(); got != code {
		t.Errorf("Palette.String() = %q, want %q", got, code)
	}
}

func TestParsePartialPlaceholders(t *testing.T) {
	tests := []struct {
		name string
		code string
		// want lists the expected token per slot, "_" meaning unset.
		want []string
	}{
		{
			name: "underscores",
			code: "_-ffffff-_-333333-444444-555555-666666-777777-888888",
			want: []string{"_", "ffffff", "_", "333333", "444444", "555555", "666666", "777777", "888888"},
		},
		{
			name: "question mark stops parsing",
			code: "_-ffffff-_-333333-444444-555555-?",
			want: []string{"_", "ffffff", "_", "333333", "444444", "555555", "_", "_", "_"},
		},
		{
			name: "tokens after question mark are ignored",
			code: "1d2021-?-not-a-colour",
			want: []string{"1d2021", "_", "_", "_", "_", "_", "_", "_", "_"},
		},
		{
			name: "lone question mark",
			code: "?",
			want: []string{"_", "_", "_", "_", "_", "_", "_", "_", "_"},
		},
		{
			name: "uppercase hex",
			code: "1D2021-D5C4A1-_-_-_-_-_-_-_",
			want: []string{"1d2021", "d5c4a1", "_", "_", "_", "_", "_", "_", "_"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pp, err := ParsePartial(tt.code)
			if err != nil {
				t.Fatalf("ParsePartial(%q) unexpected error: %v", tt.code, err)
			}
			if got := pp.String(); got != strings.Join(tt.want, "-") {
				t.Errorf("ParsePartial(%q) = %q, want %q", tt.code, got, strings.Join(tt.want, "-"))
			}
		})
	}
}

func TestParsePartialErrors(t *testing.T) {
	tests := []struct {
		name      string
		code      string
		wantErr   error
		wantIndex int
	}{
		{name: "too few", code: "000000-ffffff", wantErr: ErrTokenCount, wantIndex: -1},
		{name: "too many", code: "_-_-_-_-_-_-_-_-_-_", wantErr: ErrTokenCount, wantIndex: -1},
		{name: "too many before stop", code: "_-_-?-_-_-_-_-_-_-_", wantErr: ErrTokenCount, wantIndex: -1},
		{name: "empty", code: "", wantErr: ErrInvalidColour, wantIndex: 0},
		{name: "bad digits", code: "000000-ffffff-zz2222-_-_-_-_-_-_", wantErr: ErrInvalidColour, wantIndex: 2},
		{name: "short token", code: "000000-fff-_-_-_-_-_-_-_", wantErr: ErrInvalidColour, wantIndex: 1},
		{name: "hash prefix", code: "#00000-_-_-_-_-_-_-_-_", wantErr: ErrInvalidColour, wantIndex: 0},
		{name: "invalid before stop", code: "_-_-_-xyz-?", wantErr: ErrInvalidColour, wantIndex: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePartial(tt.code)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ParsePartial(%q) error = %v, want %v", tt.code, err, tt.wantErr)
			}
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("ParsePartial(%q) error %T is not *ParseError", tt.code, err)
			}
			if perr.Index != tt.wantIndex {
				t.Errorf("ParseError.Index = %d, want %d", perr.Index, tt.wantIndex)
			}
		})
	}
}

func TestParseRejectsUnset(t *testing.T) {
	if _, err := Parse("_-ffffff-222222-333333-444444-555555-666666-777777-888888"); err == nil {
		t.Error("Parse() of a palette with unset colours expected error")
	}
}

func TestPartialPaletteWith(t *testing.T) {
	var pp PartialPalette
	red := colour.FromUint32(0xff0000)

	next := pp.With(4, red)
	if pp.IsSet(4) {
		t.Error("With() modified the receiver")
	}
	got, ok := next.Get(4)
	if !ok || got != red {
		t.Errorf("Get(4) = %s, %v; want %s, true", got, ok, red)
	}
	if _, ok := next.Palette(); ok {
		t.Error("Palette() of a partial palette should report false")
	}
}

func TestPaletteAccessors(t *testing.T) {
	p, err := Parse("282828-ebdbb2-cc241d-d79921-98971a-689d6a-458588-b16286-d65d0e")
	if err != nil {
		t.Fatalf("Parse() unexpected error: %v", err)
	}
	if p.Background() != colour.FromUint32(0x282828) {
		t.Errorf("Background() = %s", p.Background())
	}
	if p.Foreground() != colour.FromUint32(0xebdbb2) {
		t.Errorf("Foreground() = %s", p.Foreground())
	}
	accents := p.Accents()
	if len(accents) != AccentCount || accents[0] != colour.FromUint32(0xcc241d) || accents[6] != colour.FromUint32(0xd65d0e) {
		t.Errorf("Accents() = %v", accents)
	}
	if !p.IsDark() {
		t.Error("IsDark() = false, want true")
	}
	if back, ok := p.Partial().Palette(); !ok || back != p {
		t.Errorf("Partial().Palette() = %v, %v; want %v", back, ok, p)
	}
}
