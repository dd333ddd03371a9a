// Package store persists the favorites set and the recent-transform history
// as small JSON files.
//
// Both files are advisory: a missing or corrupt file loads as an empty
// collection and only unexpected read failures are reported.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dedene/casekit/internal/config"
)

// readIDs decodes a JSON array of IDs from path. Missing or corrupt files
// yield (nil, nil).
func readIDs(path string) ([]string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is internal state, not untrusted input
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}

		return nil, fmt.Errorf("reading %s: %w", filepath.Base(path), err)
	}

	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		slog.Debug("ignoring corrupt state file", "path", path, "err", err)

		return nil, nil //nolint:nilerr
	}

	return ids, nil
}

// writeIDs writes ids as an indented JSON array.
func writeIDs(path string, ids []string) error {
	if ids == nil {
		ids = []string{}
	}

	data, err := json.MarshalIndent(ids, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", filepath.Base(path), err)
	}

	data = append(data, '\n')

	return config.WriteFileAtomic(path, data)
}
