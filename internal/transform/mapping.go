package transform

import (
	"strings"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// eachGrapheme calls fn for every user-perceived character of s, in order.
func eachGrapheme(s string, fn func(g string)) {
	state := -1

	var cluster string
	for len(s) > 0 {
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		fn(cluster)
	}
}

// graphemes splits s into grapheme clusters.
func graphemes(s string) []string {
	out := make([]string, 0, len(s))
	eachGrapheme(s, func(g string) { out = append(out, g) })

	return out
}

// mapGraphemes rebuilds s from fn applied to each grapheme.
func mapGraphemes(s string, fn func(i int, g string) string) string {
	var b strings.Builder
	b.Grow(len(s))

	i := 0
	eachGrapheme(s, func(g string) {
		b.WriteString(fn(i, g))
		i++
	})

	return b.String()
}

// singleRune reports the rune of a one-rune cluster.
func singleRune(g string) (rune, bool) {
	r, size := utf8.DecodeRuneInString(g)
	if size != len(g) || r == utf8.RuneError {
		return 0, false
	}

	return r, true
}

// CharMap is a character-mapping transform: one-rune clusters with an entry
// are replaced, everything else passes through unchanged.
type CharMap map[rune]string

// Apply maps s cluster by cluster.
func (m CharMap) Apply(s string) string {
	return mapGraphemes(s, func(_ int, g string) string {
		if r, ok := singleRune(g); ok {
			if rep, found := m[r]; found {
				return rep
			}
		}

		return g
	})
}

// Func adapts the map to the registry signature.
func (m CharMap) Func() Func {
	return func(in string, _ Params) string { return m.Apply(in) }
}

// withRange maps the contiguous run from..to onto code points starting at base.
func (m CharMap) withRange(from, to, base rune) CharMap {
	for r := from; r <= to; r++ {
		m[r] = string(base + (r - from))
	}

	return m
}

// with adds explicit pairs, overriding earlier entries.
func (m CharMap) with(pairs map[rune]string) CharMap {
	for k, v := range pairs {
		m[k] = v
	}

	return m
}

// pairs builds a map from two equal-length rune strings.
func pairs(from, to string) map[rune]string {
	src := []rune(from)
	dst := []rune(to)

	out := make(map[rune]string, len(src))
	for i, r := range src {
		out[r] = string(dst[i])
	}

	return out
}

// markEach appends mark after every grapheme.
func markEach(s, mark string) string {
	return mapGraphemes(s, func(_ int, g string) string { return g + mark })
}
