package palette

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jmylchreest/base9/internal/colour"
)

// Palette code tokens.
const (
	separator = "-"
	// tokenUnset leaves a single slot for the generator.
	tokenUnset = "_"
	// tokenStop leaves this slot and every following one for the generator.
	tokenStop = "?"
)

var (
	// ErrTokenCount is returned when a palette code does not have nine tokens.
	ErrTokenCount = errors.New("wrong number of colours")
	// ErrInvalidColour is returned when a token is not six hex digits or a
	// placeholder.
	ErrInvalidColour = errors.New("invalid colour")
)

// ParseError describes a malformed palette code.
type ParseError struct {
	// Index is the offending token's position, or -1 when the token count is wrong.
	Index int
	Token string
	Count int
	Err   error
}

func (e *ParseError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%v: %d (want %d)", e.Err, e.Count, Size)
	}
	return fmt.Sprintf("colour %d in palette: %v: %q", e.Index, e.Err, e.Token)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ParsePartial parses a palette code of nine '-' separated tokens. Each token
// is six hex digits, "_" for a colour to generate, or "?" to generate this and
// all remaining colours; nothing after a "?" is parsed.
func ParsePartial(code string) (PartialPalette, error) {
	var p PartialPalette

	tokens := strings.Split(code, separator)
	if len(tokens) > Size {
		return PartialPalette{}, &ParseError{Index: -1, Count: len(tokens), Err: ErrTokenCount}
	}

	for i, tok := range tokens {
		switch {
		case tok == tokenUnset:
		case tok == tokenStop:
			return p, nil
		case isHexColour(tok):
			c, err := colour.ParseHex(tok)
			if err != nil {
				return PartialPalette{}, &ParseError{Index: i, Token: tok, Err: ErrInvalidColour}
			}
			p = p.With(i, c)
		default:
			return PartialPalette{}, &ParseError{Index: i, Token: tok, Err: ErrInvalidColour}
		}
	}

	if len(tokens) != Size {
		return PartialPalette{}, &ParseError{Index: -1, Count: len(tokens), Err: ErrTokenCount}
	}
	return p, nil
}

// Parse parses a palette code in which every slot is a colour.
func Parse(code string) (Palette, error) {
	pp, err := ParsePartial(code)
	if err != nil {
		return Palette{}, err
	}
	p, ok := pp.Palette()
	if !ok {
		return Palette{}, fmt.Errorf("palette %q has unset colours", code)
	}
	return p, nil
}

func isHexColour(tok string) bool {
	if len(tok) != 6 {
		return false
	}
	for _, r := range tok {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
