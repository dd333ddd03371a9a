// Package templates provides the built-in catalog of ready-to-use text
// templates. The catalog is embedded TOML parsed once on first use.
package templates

import (
	_ "embed"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
)

//go:embed templates.toml
var catalogTOML []byte

// Template is a reusable block of text with [bracketed] placeholders.
type Template struct {
	ID          string `toml:"id"          json:"id"`
	Title       string `toml:"title"       json:"title"`
	Description string `toml:"description" json:"description"`
	Category    string `toml:"category"    json:"category"`
	Content     string `toml:"content"     json:"content"`
}

type catalog struct {
	Templates []Template `toml:"template"`
}

// Parse decodes a TOML catalog. Every template needs a unique id and
// non-empty content.
func Parse(data []byte) ([]Template, error) {
	var c catalog
	if _, err := toml.Decode(string(data), &c); err != nil {
		return nil, fmt.Errorf("decoding templates: %w", err)
	}

	seen := make(map[string]bool, len(c.Templates))
	for _, t := range c.Templates {
		if t.ID == "" {
			return nil, fmt.Errorf("template %q: missing id", t.Title)
		}

		if seen[t.ID] {
			return nil, fmt.Errorf("template %s: duplicate id", t.ID)
		}

		if t.Content == "" {
			return nil, fmt.Errorf("template %s: empty content", t.ID)
		}

		seen[t.ID] = true
	}

	return c.Templates, nil
}

var builtin = sync.OnceValue(func() []Template {
	ts, err := Parse(catalogTOML)
	if err != nil {
		panic(err)
	}

	return ts
})

// All returns the built-in templates in catalog order.
func All() []Template {
	return slices.Clone(builtin())
}

// Find returns the template with the given id, ignoring case.
func Find(id string) (Template, bool) {
	for _, t := range builtin() {
		if strings.EqualFold(t.ID, id) {
			return t, true
		}
	}

	return Template{}, false
}

// Categories returns the distinct categories in first-appearance order.
func Categories() []string {
	var out []string
	for _, t := range builtin() {
		if !slices.Contains(out, t.Category) {
			out = append(out, t.Category)
		}
	}

	return out
}

// ByCategory returns the templates whose category matches, ignoring case.
// An empty category returns all templates.
func ByCategory(category string) []Template {
	if category == "" {
		return All()
	}

	return slices.DeleteFunc(All(), func(t Template) bool {
		return !strings.EqualFold(t.Category, category)
	})
}

// IDs returns every template id in catalog order.
func IDs() []string {
	ts := builtin()

	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = t.ID
	}

	return out
}
