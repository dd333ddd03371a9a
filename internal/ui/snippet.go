package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const ellipsis = "..."

// Snippet flattens s onto one line and truncates it to width terminal
// cells. Line breaks show as ↵ and tabs as a space. A non-positive width
// returns the flattened text untouched.
func Snippet(s string, width int) string {
	flat := strings.NewReplacer("\r\n", "↵", "\n", "↵", "\t", " ").Replace(s)
	if width <= 0 {
		return flat
	}

	return runewidth.Truncate(flat, width, ellipsis)
}

// Width reports how many terminal cells s occupies.
func Width(s string) int {
	return runewidth.StringWidth(s)
}
