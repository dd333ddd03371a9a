package transform

import (
	"slices"
	"strings"
	"unicode"
)

const zeroWidthSpace = "\u200B"

// reverseGraphemes reverses s by user-perceived character so that combining
// sequences, flags and emoji modifiers survive.
func reverseGraphemes(s string) string {
	gs := graphemes(s)
	slices.Reverse(gs)

	return strings.Join(gs, "")
}

func reverseText(in string, _ Params) string { return reverseGraphemes(in) }

// Combining marks stacked by zalgoText, grouped by where they render.
var (
	zalgoAbove = []string{
		"\u030D", "\u030E", "\u0304", "\u0305", "\u033F",
		"\u0311", "\u0306", "\u0310", "\u0352", "\u0357",
	}
	zalgoMiddle = []string{
		"\u0315", "\u031B", "\u0340", "\u0341", "\u0358",
		"\u0321", "\u0322", "\u0327", "\u0328", "\u0334",
	}
	zalgoBelow = []string{
		"\u0316", "\u0317", "\u0318", "\u0319", "\u031C",
		"\u031D", "\u031E", "\u031F", "\u0320", "\u0324",
	}
)

// cursedGlitches replace characters in cursedText.
var cursedGlitches = []string{"\u0489", "\u0334", "\u0337", "\u0338"}

// zalgoText is intentionally random. After every character it appends
// 0..intensity/3 marks from above, 0..intensity/4 from the middle and
// 0..intensity/3 from below. A non-positive intensity leaves the text as is.
func zalgoText(in string, p Params) string {
	if p.Intensity <= 0 {
		return in
	}

	r := randOrGlobal(p.Rand)

	return mapGraphemes(in, func(_ int, g string) string {
		var b strings.Builder
		b.WriteString(g)

		for range upTo(r, p.Intensity/3) {
			b.WriteString(pick(r, zalgoAbove))
		}

		for range upTo(r, p.Intensity/4) {
			b.WriteString(pick(r, zalgoMiddle))
		}

		for range upTo(r, p.Intensity/3) {
			b.WriteString(pick(r, zalgoBelow))
		}

		return b.String()
	})
}

// cursedText is intentionally random: each character independently stays or
// becomes one of the glitch marks, all five outcomes equally likely.
func cursedText(in string, p Params) string {
	r := randOrGlobal(p.Rand)

	return mapGraphemes(in, func(_ int, g string) string {
		i := r.IntN(len(cursedGlitches) + 1)
		if i == 0 {
			return g
		}

		return cursedGlitches[i-1]
	})
}

func randOrGlobal(r Rand) Rand {
	if r == nil {
		return globalRand{}
	}

	return r
}

func invisibleText(in string, _ Params) string {
	return mapGraphemes(in, func(_ int, _ string) string { return zeroWidthSpace })
}

func slashText(in string, _ Params) string { return strings.Join(graphemes(in), "/") }

func stackedText(in string, _ Params) string {
	return mapGraphemes(in, func(_ int, g string) string { return g + "\n" })
}

// whitespaceText spaces characters apart and trims horizontal whitespace
// from both ends. Newlines at the ends are kept.
func whitespaceText(in string, _ Params) string {
	spaced := mapGraphemes(in, func(_ int, g string) string { return g + " " })

	return strings.TrimFunc(spaced, isHorizontalSpace)
}

func isHorizontalSpace(r rune) bool {
	return r == '\t' || unicode.Is(unicode.Zs, r)
}
