package actions

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		dir    string
		output string
		want   string
	}{
		{"explicit output", "/exports", "out.txt", "out.txt"},
		{"default name in dir", "/exports", "", filepath.Join("/exports", DefaultExportName)},
		{"default name in cwd", "", "", DefaultExportName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ExportPath(tt.dir, tt.output))
		})
	}
}

func TestExportText(t *testing.T) {
	t.Parallel()

	dest := filepath.Join(t.TempDir(), "nested", "out.txt")
	require.NoError(t, ExportText(dest, "𝗵𝗲𝗹𝗹𝗼\nworld"))

	got, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "𝗵𝗲𝗹𝗹𝗼\nworld", string(got))
}

func TestExportTextOverwrites(t *testing.T) {
	t.Parallel()

	dest := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, ExportText(dest, "first version"))
	require.NoError(t, ExportText(dest, "second"))

	got, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "second", string(got))
}

func TestExportTextError(t *testing.T) {
	t.Parallel()

	// The destination is an existing directory.
	err := ExportText(t.TempDir(), "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating")
}

func TestCopyToClipboard(t *testing.T) {
	origWrite := ClipboardWrite
	origUnsupported := ClipboardUnsupported
	defer func() {
		ClipboardWrite = origWrite
		ClipboardUnsupported = origUnsupported
	}()

	ClipboardUnsupported = false

	var captured string
	ClipboardWrite = func(text string) error {
		captured = text
		return nil
	}

	err := CopyToClipboard("ʇxǝʇ")
	require.NoError(t, err)
	assert.Equal(t, "ʇxǝʇ", captured)
}

func TestCopyToClipboard_Unsupported(t *testing.T) {
	origUnsupported := ClipboardUnsupported
	defer func() { ClipboardUnsupported = origUnsupported }()

	ClipboardUnsupported = true

	err := CopyToClipboard("text")
	assert.ErrorIs(t, err, ErrClipboardUnsupported)
}

func TestPasteFromClipboard(t *testing.T) {
	origRead := ClipboardRead
	origUnsupported := ClipboardUnsupported
	defer func() {
		ClipboardRead = origRead
		ClipboardUnsupported = origUnsupported
	}()

	ClipboardUnsupported = false
	ClipboardRead = func() (string, error) { return "pasted", nil }

	got, err := PasteFromClipboard()
	require.NoError(t, err)
	assert.Equal(t, "pasted", got)

	ClipboardRead = func() (string, error) { return "", errors.New("no display") }

	_, err = PasteFromClipboard()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading clipboard")

	ClipboardUnsupported = true

	_, err = PasteFromClipboard()
	assert.ErrorIs(t, err, ErrClipboardUnsupported)
}

func TestOpenFile(t *testing.T) {
	original := FileOpen
	defer func() { FileOpen = original }()

	var captured string
	FileOpen = func(path string) error {
		captured = path
		return nil
	}

	err := OpenFile("/tmp/transformed_text.txt")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/transformed_text.txt", captured)
}

type failingCloser struct{ err error }

func (c failingCloser) Close() error { return c.err }

func TestCloseFileReportsError(t *testing.T) {
	t.Parallel()

	diskFull := errors.New("no space left on device")

	err := closeFile(failingCloser{err: diskFull}, "out.txt")
	require.ErrorIs(t, err, diskFull)
	assert.Contains(t, err.Error(), "closing out.txt")

	assert.NoError(t, closeFile(failingCloser{}, "out.txt"))
}
