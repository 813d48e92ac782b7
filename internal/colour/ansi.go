package colour

import (
	"fmt"
	"strings"
)

// ANSI escape codes for 24-bit terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8
)

// DisableColourOutput turns every preview helper into plain text.
var DisableColourOutput = false

func bgEscape(c Color) string {
	return fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
}

func fgEscape(c Color) string {
	return fmt.Sprintf("%s%d;%d;%d%s", ansiFgPrefix, c.R, c.G, c.B, ansiSuffix)
}

// Swatch returns a solid block of width cells in colour c.
// With colour output disabled the block is the colour's hex code padded to width.
func Swatch(c Color, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	if DisableColourOutput {
		return pad(c.Hex(), width)
	}
	return bgEscape(c) + strings.Repeat(" ", width) + ansiReset
}

// Label renders text centred on a block of colour c. The text is black or
// white, whichever contrasts more with c.
func Label(c Color, text string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	text = pad(text, width)
	if DisableColourOutput {
		return text
	}

	ink := FromUint32(0xffffff)
	if ContrastRatio(c, FromUint32(0x000000)) > ContrastRatio(c, ink) {
		ink = FromUint32(0x000000)
	}
	return bgEscape(c) + fgEscape(ink) + text + ansiReset
}

// Text colours text with c as the foreground.
func Text(c Color, text string) string {
	if DisableColourOutput {
		return text
	}
	return fgEscape(c) + text + ansiReset
}

// ContrastRatio is the WCAG 2.0 contrast ratio between two colours, 1..21.
func ContrastRatio(a, b Color) float64 {
	ya, yb := a.XYZ().Y, b.XYZ().Y
	if ya < yb {
		ya, yb = yb, ya
	}
	return (ya + contrastOffset) / (yb + contrastOffset)
}

// pad centres text in width cells, truncating when it does not fit.
func pad(text string, width int) string {
	if len(text) >= width {
		return text[:width]
	}
	left := (width - len(text)) / 2
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", width-len(text)-left)
}
