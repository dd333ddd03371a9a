// Package analysis computes read-only statistics over text.
package analysis

import (
	"regexp"
	"strings"

	"github.com/rivo/uniseg"
)

// ContentType is the coarse classification returned by DetectContentType.
type ContentType string

// Content types, in detection priority order.
const (
	ContentEmail   ContentType = "Email/Contact"
	ContentDate    ContentType = "Date Content"
	ContentPhone   ContentType = "Phone Numbers"
	ContentShort   ContentType = "Short Text"
	ContentLong    ContentType = "Long Document"
	ContentGeneral ContentType = "General Text"
)

const (
	shortTextLimit = 50
	longTextLimit  = 500
	wordsPerMinute = 200
)

var (
	datePattern  = regexp.MustCompile(`\d{1,2}/\d{1,2}/\d{4}`)
	phonePattern = regexp.MustCompile(`\b\d{3}[-.]?\d{3}[-.]?\d{4}\b`)
)

// DetectContentType classifies s with fixed heuristics. Checks run in
// priority order and the first match wins. Lengths count user-perceived
// characters.
func DetectContentType(s string) ContentType {
	switch n := uniseg.GraphemeClusterCount(s); {
	case strings.Contains(s, "@") && strings.Contains(s, ".com"):
		return ContentEmail
	case datePattern.MatchString(s):
		return ContentDate
	case phonePattern.MatchString(s):
		return ContentPhone
	case n < shortTextLimit:
		return ContentShort
	case n > longTextLimit:
		return ContentLong
	default:
		return ContentGeneral
	}
}

// Stats summarizes a text.
type Stats struct {
	Words              int         `json:"words"`
	Characters         int         `json:"characters"`
	CharactersNoSpaces int         `json:"characters_no_spaces"`
	Lines              int         `json:"lines"`
	Paragraphs         int         `json:"paragraphs"`
	Sentences          int         `json:"sentences"`
	UniqueWords        int         `json:"unique_words"`
	AverageWordLength  float64     `json:"average_word_length"`
	ReadingMinutes     int         `json:"reading_minutes"`
	ContentType        ContentType `json:"content_type"`
}

// Analyze computes Stats for s. Words are whitespace-delimited; unique words
// ignore case. Sentences are counted by their terminators (. ! ?). Reading
// time assumes 200 words per minute and is never below one minute.
func Analyze(s string) Stats {
	words := strings.Fields(s)

	unique := make(map[string]struct{}, len(words))
	for _, w := range words {
		unique[strings.ToLower(w)] = struct{}{}
	}

	st := Stats{
		Words:              len(words),
		Characters:         uniseg.GraphemeClusterCount(s),
		CharactersNoSpaces: uniseg.GraphemeClusterCount(strings.ReplaceAll(s, " ", "")),
		Lines:              strings.Count(s, "\n") + 1,
		Paragraphs:         strings.Count(s, "\n\n") + 1,
		Sentences:          strings.Count(s, ".") + strings.Count(s, "!") + strings.Count(s, "?"),
		UniqueWords:        len(unique),
		ReadingMinutes:     max(1, len(words)/wordsPerMinute),
		ContentType:        DetectContentType(s),
	}

	if st.Words > 0 {
		st.AverageWordLength = float64(st.CharactersNoSpaces) / float64(st.Words)
	}

	return st
}
