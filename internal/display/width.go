// ABOUTME: Display-cell width helpers for right-aligned and truncated text
// ABOUTME: Grapheme-aware measurement via uniseg; truncation via go-runewidth

package display

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Width returns the number of terminal cells s occupies.
func Width(s string) int {
	return uniseg.StringWidth(s)
}

// Truncate shortens s to at most width cells, marking the cut with "…".
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if Width(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}

// AlignRight left-pads s to width cells, truncating when it is wider.
func AlignRight(s string, width int) string {
	s = Truncate(s, width)
	if pad := width - Width(s); pad > 0 {
		return strings.Repeat(" ", pad) + s
	}
	return s
}

// PadRight right-pads s to width cells, truncating when it is wider.
func PadRight(s string, width int) string {
	s = Truncate(s, width)
	if pad := width - Width(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}
