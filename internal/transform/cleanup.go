package transform

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	xtransform "golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// splitLines splits on "\n" after folding "\r\n" line endings. An empty input
// is one empty line.
func splitLines(s string) []string {
	return strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
}

func removeSpaces(in string, _ Params) string { return strings.ReplaceAll(in, " ", "") }

func removeLineBreaks(in string, _ Params) string {
	return strings.Join(splitLines(in), " ")
}

func removeUnderscores(in string, _ Params) string { return strings.ReplaceAll(in, "_", "") }

// Markdown-style emphasis, stripped in this order so "**" is consumed before
// the single "*" pattern sees it.
var formattingPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\*\*(.*?)\*\*`),
	regexp.MustCompile(`\*(.*?)\*`),
	regexp.MustCompile(`_(.*?)_`),
	regexp.MustCompile(`~~(.*?)~~`),
}

func removeFormatting(in string, _ Params) string {
	out := in
	for _, re := range formattingPatterns {
		out = re.ReplaceAllString(out, "$1")
	}

	return out
}

// removeLetters keeps numbers, symbols, punctuation and whitespace.
func removeLetters(in string, _ Params) string {
	return mapGraphemes(in, func(_ int, g string) string {
		if r, ok := firstRune(g); ok && unicode.IsLetter(r) {
			return ""
		}

		return g
	})
}

// duplicateLineRemover keeps the first occurrence of every line, in order.
func duplicateLineRemover(in string, _ Params) string {
	lines := splitLines(in)
	seen := make(map[string]struct{}, len(lines))

	out := make([]string, 0, len(lines))
	for _, l := range lines {
		if _, dup := seen[l]; dup {
			continue
		}

		seen[l] = struct{}{}
		out = append(out, l)
	}

	return strings.Join(out, "\n")
}

// duplicateWordFinder reports every whitespace-delimited word seen more than
// once as "word: N times", one per line, in order of first appearance.
// Matching is case-sensitive.
func duplicateWordFinder(in string, _ Params) string {
	counts := make(map[string]int)

	var order []string
	for _, w := range strings.Fields(in) {
		if counts[w] == 0 {
			order = append(order, w)
		}

		counts[w]++
	}

	var b strings.Builder
	for _, w := range order {
		if counts[w] < 2 {
			continue
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}

		fmt.Fprintf(&b, "%s: %d times", w, counts[w])
	}

	return b.String()
}

const maxAdjacentDuplicates = 6

// adjacentDuplicateWords reports immediately repeated words ("the the"),
// ignoring case, as a one-line summary. The text itself is not modified.
// Punctuation between the two words breaks the pair.
func adjacentDuplicateWords(in string, _ Params) string {
	fields := strings.Fields(in)

	var found []string
	for i := 1; i < len(fields) && len(found) < maxAdjacentDuplicates; i++ {
		prev := strings.TrimLeftFunc(fields[i-1], isNotWordRune)
		cur := strings.TrimRightFunc(fields[i], isNotWordRune)

		if prev == "" || strings.IndexFunc(prev, isNotWordRune) >= 0 || strings.IndexFunc(cur, isNotWordRune) >= 0 {
			continue
		}

		if strings.EqualFold(prev, cur) {
			found = append(found, cur)
		}
	}

	if len(found) == 0 {
		return "No adjacent duplicate words found"
	}

	return "Adjacent duplicates: " + strings.Join(found, ", ")
}

func isNotWordRune(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_'
}

func plainText(in string, _ Params) string { return strings.Join(strings.Fields(in), " ") }

var (
	horizontalRun = regexp.MustCompile(`[\t\f\v\r\p{Zs}]+`)
	blankLineRun  = regexp.MustCompile(`\n{3,}`)
	spaceAroundNL = regexp.MustCompile(` ?\n ?`)
)

// compressText folds every whitespace run, newlines included, into one space
// and trims both ends. The result is always a single line.
func compressText(in string, _ Params) string {
	return strings.Join(strings.FieldsFunc(in, unicode.IsSpace), " ")
}

// removeExtraSpaces collapses horizontal whitespace like compressText but
// keeps line structure, with at most one blank line between paragraphs.
func removeExtraSpaces(in string, _ Params) string {
	out := strings.ReplaceAll(in, "\r\n", "\n")
	out = horizontalRun.ReplaceAllString(out, " ")
	out = spaceAroundNL.ReplaceAllString(out, "\n")
	out = blankLineRun.ReplaceAllString(out, "\n\n")

	return strings.TrimSpace(out)
}

func addLineNumbers(in string, _ Params) string {
	if in == "" {
		return ""
	}

	lines := splitLines(in)
	for i, l := range lines {
		lines[i] = strconv.Itoa(i+1) + ". " + l
	}

	return strings.Join(lines, "\n")
}

// sortLines orders lines by byte value, which for UTF-8 is code point order.
func sortLines(in string, _ Params) string {
	lines := splitLines(in)
	slices.Sort(lines)

	return strings.Join(lines, "\n")
}

// stripMarks decomposes, drops nonspacing marks and recomposes. The chain is
// stateful, so one is built per call.
func stripMarks(s string) string {
	t := xtransform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

	out, _, err := xtransform.String(t, s)
	if err != nil {
		return s
	}

	return out
}

func stripDiacritics(in string, _ Params) string { return stripMarks(in) }

// asciiOnly strips diacritics and then drops every remaining non-ASCII rune.
func asciiOnly(in string, _ Params) string {
	return strings.Map(func(r rune) rune {
		if r >= utf8.RuneSelf {
			return -1
		}

		return r
	}, stripMarks(in))
}

// removeNonAlphanumeric keeps letter and digit runs, single-space separated.
func removeNonAlphanumeric(in string, _ Params) string {
	return strings.Join(strings.FieldsFunc(in, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}), " ")
}
