package store

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFavoritesMissing(t *testing.T) {
	f, err := LoadFavorites(filepath.Join(t.TempDir(), "nonexistent.json"))
	require.NoError(t, err)
	assert.Zero(t, f.Len())
	assert.Empty(t, f.IDs())
}

func TestLoadFavoritesCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "favorites.json")
	require.NoError(t, os.WriteFile(path, []byte("{{{not json"), 0o644))

	f, err := LoadFavorites(path)
	require.NoError(t, err)
	assert.Zero(t, f.Len())
}

func TestLoadFavoritesWrongShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "favorites.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"boldText": true}`), 0o644))

	f, err := LoadFavorites(path)
	require.NoError(t, err)
	assert.Zero(t, f.Len())
}

func TestFavoritesOperations(t *testing.T) {
	f, err := LoadFavorites(filepath.Join(t.TempDir(), "favorites.json"))
	require.NoError(t, err)

	assert.True(t, f.Add("boldText"))
	assert.False(t, f.Add("boldText"), "second add is a no-op")
	assert.True(t, f.Has("boldText"))

	assert.True(t, f.Toggle("uppercase"))
	assert.False(t, f.Toggle("uppercase"))
	assert.False(t, f.Has("uppercase"))

	assert.True(t, f.Remove("boldText"))
	assert.False(t, f.Remove("boldText"))
	assert.Zero(t, f.Len())
}

func TestFavoritesRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "favorites.json")

	f, err := LoadFavorites(path)
	require.NoError(t, err)

	f.Add("zalgoText")
	f.Add("boldText")
	f.Add("pigLatin")
	require.NoError(t, f.Save())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `["boldText","pigLatin","zalgoText"]`, string(data))

	loaded, err := LoadFavorites(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"boldText", "pigLatin", "zalgoText"}, loaded.IDs())
}

func TestSaveEmptyFavoritesWritesArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "favorites.json")

	f, err := LoadFavorites(path)
	require.NoError(t, err)
	require.NoError(t, f.Save())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))
}

func TestHistoryRecord(t *testing.T) {
	h, err := LoadHistory(filepath.Join(t.TempDir(), "history.json"))
	require.NoError(t, err)

	h.Record("a")
	h.Record("b")
	h.Record("a")

	assert.Equal(t, []string{"a", "b", "a"}, h.IDs(), "most recent first, repeats kept")
}

func TestHistoryEvictsOldest(t *testing.T) {
	h, err := LoadHistory(filepath.Join(t.TempDir(), "history.json"))
	require.NoError(t, err)

	for i := range HistoryLimit + 3 {
		h.Record(fmt.Sprintf("t%d", i))
	}

	ids := h.IDs()
	require.Len(t, ids, HistoryLimit)
	assert.Equal(t, "t12", ids[0])
	assert.Equal(t, "t3", ids[HistoryLimit-1])
}

func TestHistoryRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")

	h, err := LoadHistory(path)
	require.NoError(t, err)

	h.Record("uppercase")
	h.Record("boldText")
	require.NoError(t, h.Save())

	loaded, err := LoadHistory(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"boldText", "uppercase"}, loaded.IDs())

	loaded.Clear()
	require.NoError(t, loaded.Save())

	cleared, err := LoadHistory(path)
	require.NoError(t, err)
	assert.Zero(t, cleared.Len())
}

func TestLoadHistoryTruncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	require.NoError(t, os.WriteFile(path, []byte(`["1","2","3","4","5","6","7","8","9","10","11","12"]`), 0o644))

	h, err := LoadHistory(path)
	require.NoError(t, err)
	assert.Equal(t, HistoryLimit, h.Len())
	assert.Equal(t, "1", h.IDs()[0])
}

func TestLoadHistoryCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	h, err := LoadHistory(path)
	require.NoError(t, err)
	assert.Zero(t, h.Len())
}

func TestHistoryIDsIsCopy(t *testing.T) {
	h, err := LoadHistory(filepath.Join(t.TempDir(), "history.json"))
	require.NoError(t, err)

	h.Record("a")
	ids := h.IDs()
	ids[0] = "mutated"

	assert.Equal(t, []string{"a"}, h.IDs())
}

func TestLoadUnreadable(t *testing.T) {
	// A directory in place of the file is an unexpected read failure.
	dir := t.TempDir()

	_, err := LoadFavorites(dir)
	assert.Error(t, err)
}
