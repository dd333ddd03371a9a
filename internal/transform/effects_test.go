package transform_test

import (
	"strings"
	"testing"
	"unicode"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dedene/casekit/internal/transform"
)

func TestEffectTransforms(t *testing.T) {
	tests := []struct {
		name string
		id   string
		in   string
		want string
	}{
		{"reverse", "reverseText", "Hello", "olleH"},
		{"reverse combining", "reverseText", "he\u0301llo", "olle\u0301h"},
		{"reverse flags", "reverseText", "🇫🇷🇩🇪", "🇩🇪🇫🇷"},
		{"reverse skin tone", "reverseText", "a👍🏽b", "b👍🏽a"},
		{"mirror", "mirrorText", "abc", "cba"},
		{"invisible", "invisibleText", "ab", "\u200B\u200B"},
		{"invisible counts clusters", "invisibleText", "e\u0301!", "\u200B\u200B"},
		{"slash", "slashText", "abc", "a/b/c"},
		{"slash single", "slashText", "a", "a"},
		{"slash empty", "slashText", "", ""},
		{"stacked", "stackedText", "ab", "a\nb\n"},
		{"stacked empty", "stackedText", "", ""},
		{"whitespace", "whitespaceText", "abc", "a b c"},
		{"whitespace trims edges", "whitespaceText", " ab ", "a b"},
		{"whitespace empty", "whitespaceText", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, apply(t, tt.id, tt.in))
		})
	}
}

func TestReverseIsInvolution(t *testing.T) {
	for _, s := range []string{"", "a", "hello world", "e\u0301a", "👨\u200d👩\u200d👧 family", "🇫🇷🇩🇪 flags", "日本語"} {
		assert.Equal(t, s, apply(t, "reverseText", apply(t, "reverseText", s)), s)
	}
}

func TestInvisibleKeepsLength(t *testing.T) {
	out := apply(t, "invisibleText", "ab")
	assert.Equal(t, 2, utf8.RuneCountInString(out))
	assert.NotContains(t, out, "a")
	assert.NotContains(t, out, "b")
}

// stripMarks drops combining marks so the original characters can be
// compared after a corruption effect.
func stripMarks(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Me, r) {
			return -1
		}

		return r
	}, s)
}

func TestZalgoProperties(t *testing.T) {
	e := transform.NewEngine()
	in := "hello world"

	changed := false
	for range 50 {
		out := e.Apply("zalgoText", in, transform.Params{Intensity: 15})

		assert.GreaterOrEqual(t, len(out), len(in))
		assert.Equal(t, in, stripMarks(out), "every original character still present in order")

		if out != in {
			changed = true
		}
	}

	assert.True(t, changed, "zalgo should corrupt the text at least once")
}

func TestZalgoMaximumMarks(t *testing.T) {
	e := transform.NewEngine(transform.WithRand(maxRand{}))

	// Intensity 12 gives up to 4 marks above, 3 in the middle and 4 below.
	out := e.Apply("zalgoText", "a", transform.Params{Intensity: 12})
	assert.Equal(t, "a"+strings.Repeat("\u0357", 4)+strings.Repeat("\u0334", 3)+strings.Repeat("\u0324", 4), out)
}

func TestZalgoDisabled(t *testing.T) {
	e := transform.NewEngine(transform.WithRand(maxRand{}))

	assert.Equal(t, "abc", e.Apply("zalgoText", "abc", transform.Params{Intensity: -1}))
	assert.Equal(t, "abc", transform.NewEngine(transform.WithIntensity(-5)).Apply("zalgoText", "abc", transform.Params{}))
	assert.Equal(t, "", e.Apply("zalgoText", "", transform.Params{}))
}

func TestCursedProperties(t *testing.T) {
	e := transform.NewEngine()
	in := strings.Repeat("abcdef", 10)

	out := e.Apply("cursedText", in, transform.Params{})
	assert.Equal(t, utf8.RuneCountInString(in), utf8.RuneCountInString(out), "one output character per input character")

	for _, r := range out {
		assert.True(t, strings.ContainsRune(in, r) || unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Me, r), "unexpected %U", r)
	}
}

func TestCursedWithFixedRand(t *testing.T) {
	keep := transform.NewEngine(transform.WithRand(zeroRand{}))
	assert.Equal(t, "hello", keep.Apply("cursedText", "hello", transform.Params{}))

	glitch := transform.NewEngine(transform.WithRand(maxRand{}))
	assert.Equal(t, strings.Repeat("\u0338", 3), glitch.Apply("cursedText", "abc", transform.Params{}))
}

func TestSeededRandIsReproducible(t *testing.T) {
	run := func(id string) string {
		e := transform.NewEngine(transform.WithRand(transform.NewSeededRand(42)))

		return e.Apply(id, "reproducible output", transform.Params{Intensity: 20})
	}

	for _, id := range []string{"zalgoText", "cursedText"} {
		t.Run(id, func(t *testing.T) {
			assert.Equal(t, run(id), run(id))
		})
	}

	// A per-call source overrides the engine's.
	e := transform.NewEngine(transform.WithRand(maxRand{}))
	got := e.Apply("cursedText", "abc", transform.Params{Rand: zeroRand{}})
	require.Equal(t, "abc", got)
}
