package transform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodingTransforms(t *testing.T) {
	tests := []struct {
		name string
		id   string
		in   string
		want string
	}{
		{"base64 encode", "base64Encode", "hello", "aGVsbG8="},
		{"base64 encode utf-8", "base64Encode", "é", "w6k="},
		{"base64 encode empty", "base64Encode", "", ""},
		{"base64 decode", "base64Decode", "aGVsbG8=", "hello"},
		{"base64 decode trims", "base64Decode", " aGVsbG8=\n", "hello"},
		{"base64 decode invalid", "base64Decode", "not base64!", "not base64!"},
		{"base64 decode invalid utf-8", "base64Decode", "//4=", "//4="},

		{"extract emails", "extractEmails", "contact a@b.com or c@d.org", "a@b.com\nc@d.org"},
		{"extract emails none", "extractEmails", "no addresses here", ""},
		{"extract emails plus tags", "extractEmails", "<first.last+tag@mail.example.co.uk>", "first.last+tag@mail.example.co.uk"},

		{"pig latin", "pigLatin", "hello world", "ellohay orldway"},
		{"pig latin cluster", "pigLatin", "string", "ingstray"},
		{"pig latin vowel", "pigLatin", "apple", "appleay"},
		{"pig latin punctuation", "pigLatin", "hello, world!", "ellohay, orldway!"},
		{"pig latin no vowel", "pigLatin", "rhythm", "rhythmay"},
		{"pig latin non-letters", "pigLatin", "123 ...", "123 ..."},
		{"pig latin keeps spacing", "pigLatin", "  a  b", "  aay  bay"},
		{"pig latin capital", "pigLatin", "Pig Latin", "igPay atinLay"},
		{"pig latin leading bracket", "pigLatin", "(string)", "(string)"},
		{"pig latin quoted", "pigLatin", "say \"hello\"", "aysay \"hello\""},
		{"pig latin leading apostrophe", "pigLatin", "'tis", "'tis"},

		{"phonetic", "phoneticSpelling", "Ab1", "ALPHA Bravo 1"},
		{"phonetic spaces are tokens", "phoneticSpelling", "a b", "Alpha   Bravo"},
		{"phonetic x-ray", "phoneticSpelling", "x", "X-ray"},
		{"phonetic empty", "phoneticSpelling", "", ""},

		{"unicode", "unicodeText", "aé", "U+61 U+E9"},
		{"unicode astral", "unicodeText", "😀", "U+1F600"},
		{"unicode empty", "unicodeText", "", ""},

		{"apa", "apaFormat", "Title\nline one\nline two", "**Title**\n• line one\n• line two"},
		{"apa single line", "apaFormat", "Only", "**Only**"},
		{"apa empty", "apaFormat", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, apply(t, tt.id, tt.in))
		})
	}
}

func TestBase64RoundTrip(t *testing.T) {
	for _, s := range []string{"", "a", "hello world", "Crème brûlée", "👍🏽🇫🇷", "line\nbreaks\ttabs", "==", "YQ=="} {
		assert.Equal(t, s, apply(t, "base64Decode", apply(t, "base64Encode", s)), s)
	}
}
