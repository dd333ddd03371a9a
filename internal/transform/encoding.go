package transform

import (
	"encoding/base64"
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

func base64Encode(in string, _ Params) string {
	return base64.StdEncoding.EncodeToString([]byte(in))
}

// base64Decode returns the input unchanged when it is not valid standard
// Base64 or does not decode to valid UTF-8.
func base64Decode(in string, _ Params) string {
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(in))
	if err != nil || !utf8.Valid(raw) {
		return in
	}

	return string(raw)
}

var emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,64}`)

// extractEmails lists every address found, one per line, in order of
// appearance.
func extractEmails(in string, _ Params) string {
	return strings.Join(emailPattern.FindAllString(in, -1), "\n")
}

// pigLatin rewrites each whitespace-delimited token and keeps the whitespace
// between tokens. Trailing punctuation is reattached after the suffix.
// Consonant handling moves the whole leading cluster: "string" becomes
// "ingstray". Tokens that do not start with a letter, such as "(string)" or
// "'tis", pass through unchanged.
func pigLatin(in string, _ Params) string {
	return mapWords(in, pigLatinWord)
}

func pigLatinWord(tok string) string {
	core := strings.TrimRightFunc(tok, func(r rune) bool { return !unicode.IsLetter(r) })
	tail := tok[len(core):]

	if first, ok := firstRune(core); !ok || !unicode.IsLetter(first) {
		return tok
	}

	v := strings.IndexFunc(core, isVowel)
	if v <= 0 {
		return core + "ay" + tail
	}

	return core[v:] + core[:v] + "ay" + tail
}

func isVowel(r rune) bool {
	return strings.ContainsRune("aeiouAEIOU", r)
}

var natoAlphabet = [26]string{
	"Alpha", "Bravo", "Charlie", "Delta", "Echo", "Foxtrot", "Golf", "Hotel",
	"India", "Juliet", "Kilo", "Lima", "Mike", "November", "Oscar", "Papa",
	"Quebec", "Romeo", "Sierra", "Tango", "Uniform", "Victor", "Whiskey",
	"X-ray", "Yankee", "Zulu",
}

// phoneticSpelling spells ASCII letters with the NATO alphabet: "Alpha" for
// a, "ALPHA" for A. Every character becomes one space-separated token; other
// characters pass through as their own token.
func phoneticSpelling(in string, _ Params) string {
	gs := graphemes(in)

	out := make([]string, len(gs))
	for i, g := range gs {
		out[i] = g

		r, ok := singleRune(g)
		if !ok || r >= utf8.RuneSelf || !unicode.IsLetter(r) {
			continue
		}

		word := natoAlphabet[unicode.ToLower(r)-'a']
		if unicode.IsUpper(r) {
			word = strings.ToUpper(word)
		}

		out[i] = word
	}

	return strings.Join(out, " ")
}

// unicodeText lists the code point of every rune in upper-case hex without
// padding ("U+61"). Invalid bytes show as U+FFFD.
func unicodeText(in string, _ Params) string {
	out := make([]string, 0, utf8.RuneCountInString(in))
	for _, r := range in {
		out = append(out, fmt.Sprintf("U+%X", r))
	}

	return strings.Join(out, " ")
}

// apaFormat bolds the first line as a heading and bullets the rest.
func apaFormat(in string, _ Params) string {
	if in == "" {
		return ""
	}

	lines := splitLines(in)

	var b strings.Builder
	b.WriteString("**" + lines[0] + "**")

	for _, l := range lines[1:] {
		b.WriteString("\n• " + l)
	}

	return b.String()
}
