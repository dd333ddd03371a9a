// Package transform implements the text transformation engine: a static
// registry of named string transforms and the dispatcher that applies them
// by identifier.
//
// Every transform is total. It accepts any string, including the empty
// string and invalid UTF-8, and never panics or returns an error. Only the
// zalgoText and cursedText effects are non-deterministic; they draw from the
// Rand carried in Params.
package transform

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/sahilm/fuzzy"
)

// Category groups transforms for listing and filtering.
type Category string

// The fixed set of categories, in display order.
const (
	CategoryCase     Category = "Case & Formatting"
	CategorySocial   Category = "Social Media"
	CategoryEffects  Category = "Text Effects"
	CategoryCleanup  Category = "Cleanup & Analysis"
	CategoryEncoding Category = "Encoding & Technical"
)

var categoryAliases = map[string]Category{
	"case":     CategoryCase,
	"social":   CategorySocial,
	"effects":  CategoryEffects,
	"cleanup":  CategoryCleanup,
	"encoding": CategoryEncoding,
}

// Categories returns all categories in display order.
func Categories() []Category {
	return []Category{CategoryCase, CategorySocial, CategoryEffects, CategoryCleanup, CategoryEncoding}
}

// ParseCategory resolves a category from its display name or short alias
// (case, social, effects, cleanup, encoding). Matching is case-insensitive.
func ParseCategory(s string) (Category, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := categoryAliases[s]; ok {
		return c, true
	}

	for _, c := range Categories() {
		if strings.ToLower(string(c)) == s {
			return c, true
		}
	}

	return "", false
}

// Descriptor is the display metadata of a transform.
type Descriptor struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
}

// Func is a transform implementation.
type Func func(in string, p Params) string

// Transform pairs a descriptor with its implementation.
type Transform struct {
	Descriptor
	Func Func
}

// Registry is an ordered, read-only catalog of transforms. It is safe for
// concurrent use once constructed.
type Registry struct {
	transforms []Transform
	index      map[string]int
	aliases    map[string]string
}

// NewRegistry builds a registry preserving the given order. IDs must be
// non-empty and unique and every transform needs a Func.
func NewRegistry(ts []Transform) (*Registry, error) {
	r := &Registry{
		transforms: make([]Transform, 0, len(ts)),
		index:      make(map[string]int, len(ts)),
		aliases:    make(map[string]string),
	}

	for _, t := range ts {
		if t.ID == "" {
			return nil, fmt.Errorf("transform %q: empty id", t.Name)
		}

		if t.Func == nil {
			return nil, fmt.Errorf("transform %s: nil func", t.ID)
		}

		if _, dup := r.index[t.ID]; dup {
			return nil, fmt.Errorf("transform %s: duplicate id", t.ID)
		}

		r.index[t.ID] = len(r.transforms)
		r.transforms = append(r.transforms, t)
	}

	return r, nil
}

// Alias makes name resolve to the registered id. It must be called before
// the registry is shared.
func (r *Registry) Alias(name, id string) error {
	if _, taken := r.index[name]; taken {
		return fmt.Errorf("alias %s: shadows a registered id", name)
	}

	if _, ok := r.index[id]; !ok {
		return fmt.Errorf("alias %s: %w: %s", name, ErrUnknownTransform, id)
	}

	r.aliases[name] = id

	return nil
}

var defaultRegistry = sync.OnceValue(func() *Registry {
	r, err := NewRegistry(builtins())
	if err != nil {
		panic(err)
	}

	for name, id := range builtinAliases {
		if err := r.Alias(name, id); err != nil {
			panic(err)
		}
	}

	return r
})

// Default returns the built-in registry.
func Default() *Registry { return defaultRegistry() }

// Len returns the number of registered transforms.
func (r *Registry) Len() int { return len(r.transforms) }

// List returns all descriptors in registry order.
func (r *Registry) List() []Descriptor {
	out := make([]Descriptor, len(r.transforms))
	for i, t := range r.transforms {
		out[i] = t.Descriptor
	}

	return out
}

// IDs returns all transform IDs in registry order.
func (r *Registry) IDs() []string {
	out := make([]string, len(r.transforms))
	for i, t := range r.transforms {
		out[i] = t.ID
	}

	return out
}

// Find returns the descriptor registered under id or one of its aliases.
func (r *Registry) Find(id string) (Descriptor, bool) {
	t, ok := r.lookup(id)

	return t.Descriptor, ok
}

func (r *Registry) lookup(id string) (Transform, bool) {
	i, ok := r.index[id]
	if !ok {
		canonical, aliased := r.aliases[id]
		if !aliased {
			return Transform{}, false
		}

		i = r.index[canonical]
	}

	return r.transforms[i], true
}

// maxSuggestions caps Suggest results.
const maxSuggestions = 3

// Suggest returns up to three registered IDs that fuzzily match id, best
// match first. Matching ignores case.
func (r *Registry) Suggest(id string) []string {
	id = strings.ToLower(strings.TrimSpace(id))
	if id == "" {
		return nil
	}

	lowered := make([]string, len(r.transforms))
	for i, t := range r.transforms {
		lowered[i] = strings.ToLower(t.ID)
	}

	matches := fuzzy.Find(id, lowered)

	out := make([]string, 0, maxSuggestions)
	for _, m := range matches {
		if len(out) == maxSuggestions {
			break
		}

		out = append(out, r.transforms[m.Index].ID)
	}

	return out
}

// Filter returns the descriptors whose name or description contains query
// (case-insensitive) and whose category matches. An empty query or category
// matches everything. Order is preserved.
func Filter(ds []Descriptor, query string, category Category) []Descriptor {
	q := strings.ToLower(strings.TrimSpace(query))

	return slices.DeleteFunc(slices.Clone(ds), func(d Descriptor) bool {
		if category != "" && d.Category != category {
			return true
		}

		if q == "" {
			return false
		}

		return !strings.Contains(strings.ToLower(d.Name), q) &&
			!strings.Contains(strings.ToLower(d.Description), q)
	})
}
