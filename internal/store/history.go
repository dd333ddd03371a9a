package store

// HistoryLimit bounds the number of remembered entries.
const HistoryLimit = 10

// History is the most-recent-first list of applied transform IDs. The same
// ID may appear more than once.
type History struct {
	path string
	ids  []string
}

// LoadHistory reads the history file at path. Entries past HistoryLimit are
// dropped.
func LoadHistory(path string) (*History, error) {
	ids, err := readIDs(path)
	if err != nil {
		return nil, err
	}

	if len(ids) > HistoryLimit {
		ids = ids[:HistoryLimit]
	}

	return &History{path: path, ids: ids}, nil
}

// Record puts id at the front, evicting the oldest entry beyond the limit.
func (h *History) Record(id string) {
	h.ids = append([]string{id}, h.ids...)
	if len(h.ids) > HistoryLimit {
		h.ids = h.ids[:HistoryLimit]
	}
}

// IDs returns a copy of the entries, most recent first. It is never nil.
func (h *History) IDs() []string {
	return append(make([]string, 0, len(h.ids)), h.ids...)
}

// Len returns the number of entries.
func (h *History) Len() int { return len(h.ids) }

// Clear drops every entry.
func (h *History) Clear() { h.ids = nil }

// Save writes the history back to its file.
func (h *History) Save() error {
	return writeIDs(h.path, h.ids)
}
