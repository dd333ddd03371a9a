package transform

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Casers are not safe for concurrent use, so each call builds its own.

func lowercase(in string, _ Params) string { return cases.Lower(language.Und).String(in) }

func uppercase(in string, _ Params) string { return cases.Upper(language.Und).String(in) }

// capitalize upper-cases the first letter of every word and lower-cases the
// rest. capitalized, titleCase and sentenceCase all resolve here.
func capitalize(in string, _ Params) string { return cases.Title(language.Und).String(in) }

// alternatingCase counts every character, letters or not: even positions
// are lowered and odd positions raised.
func alternatingCase(in string, _ Params) string {
	lower := cases.Lower(language.Und)
	upper := cases.Upper(language.Und)

	return mapGraphemes(in, func(i int, g string) string {
		if i%2 == 0 {
			return lower.String(g)
		}

		return upper.String(g)
	})
}

func inverseCase(in string, _ Params) string {
	lower := cases.Lower(language.Und)
	upper := cases.Upper(language.Und)

	return mapGraphemes(in, func(_ int, g string) string {
		up := upper.String(g)
		if up == g {
			return lower.String(g)
		}

		return up
	})
}

var titleSmallWords = map[string]bool{
	"a": true, "an": true, "the": true, "and": true, "but": true, "or": true,
	"for": true, "nor": true, "on": true, "at": true, "to": true, "from": true,
	"by": true, "in": true, "of": true, "with": true, "as": true,
}

// smartTitleCase capitalizes words except articles, conjunctions and short
// prepositions; the first word is always capitalized. Whitespace is kept.
func smartTitleCase(in string, _ Params) string {
	lower := cases.Lower(language.Und)
	title := cases.Title(language.Und)

	n := 0

	return mapWords(in, func(w string) string {
		defer func() { n++ }()

		l := lower.String(w)
		if n > 0 && titleSmallWords[l] {
			return l
		}

		return title.String(w)
	})
}

// smartSentenceCase lowers everything and raises the first letter of each
// sentence. A sentence starts the text and follows '.', '!', '?' or a newline.
func smartSentenceCase(in string, _ Params) string {
	lower := cases.Lower(language.Und)
	upper := cases.Upper(language.Und)
	capNext := true

	return mapGraphemes(in, func(_ int, g string) string {
		r, _ := firstRune(g)
		if unicode.IsLetter(r) {
			if capNext {
				capNext = false

				return upper.String(g)
			}

			return lower.String(g)
		}

		if strings.ContainsRune(".!?\n", r) {
			capNext = true
		}

		return g
	})
}

// mapWords applies fn to every whitespace-delimited word of s and keeps the
// whitespace between words as is.
func mapWords(s string, fn func(w string) string) string {
	var b strings.Builder
	b.Grow(len(s))

	start := -1
	for i, r := range s {
		if unicode.IsSpace(r) {
			if start >= 0 {
				b.WriteString(fn(s[start:i]))
				start = -1
			}

			b.WriteRune(r)

			continue
		}

		if start < 0 {
			start = i
		}
	}

	if start >= 0 {
		b.WriteString(fn(s[start:]))
	}

	return b.String()
}

func firstRune(g string) (rune, bool) {
	for _, r := range g {
		return r, true
	}

	return 0, false
}
