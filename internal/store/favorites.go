package store

import (
	"maps"
	"slices"
)

// Favorites is an unordered set of transform IDs.
type Favorites struct {
	path string
	ids  map[string]struct{}
}

// LoadFavorites reads the favorites file at path.
func LoadFavorites(path string) (*Favorites, error) {
	ids, err := readIDs(path)
	if err != nil {
		return nil, err
	}

	f := &Favorites{path: path, ids: make(map[string]struct{}, len(ids))}
	for _, id := range ids {
		if id != "" {
			f.ids[id] = struct{}{}
		}
	}

	return f, nil
}

// Has reports whether id is a favorite.
func (f *Favorites) Has(id string) bool {
	_, ok := f.ids[id]

	return ok
}

// Add marks id as a favorite. It reports whether the set changed.
func (f *Favorites) Add(id string) bool {
	if f.Has(id) {
		return false
	}

	f.ids[id] = struct{}{}

	return true
}

// Remove unmarks id. It reports whether the set changed.
func (f *Favorites) Remove(id string) bool {
	if !f.Has(id) {
		return false
	}

	delete(f.ids, id)

	return true
}

// Toggle flips membership of id and returns the new state.
func (f *Favorites) Toggle(id string) bool {
	if f.Remove(id) {
		return false
	}

	f.ids[id] = struct{}{}

	return true
}

// Len returns the number of favorites.
func (f *Favorites) Len() int { return len(f.ids) }

// IDs returns the favorites in sorted order. It is never nil.
func (f *Favorites) IDs() []string {
	ids := slices.AppendSeq(make([]string, 0, len(f.ids)), maps.Keys(f.ids))
	slices.Sort(ids)

	return ids
}

// Save writes the set back to its file, sorted for stable diffs.
func (f *Favorites) Save() error {
	return writeIDs(f.path, f.IDs())
}
