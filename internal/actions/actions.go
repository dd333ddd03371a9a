// Package actions provides post-transform output actions: clipboard copy and
// paste, export to a file, and opening the exported file.
package actions

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"
	"github.com/pkg/browser"
)

// DefaultExportName is the file name used when exporting without an
// explicit output path.
const DefaultExportName = "transformed_text.txt"

// ErrClipboardUnsupported indicates the platform has no clipboard support.
var ErrClipboardUnsupported = errors.New("clipboard not supported on this platform")

// ClipboardWrite is a function variable for clipboard writes (swappable in tests).
var ClipboardWrite = clipboard.WriteAll

// ClipboardRead is a function variable for clipboard reads (swappable in tests).
var ClipboardRead = clipboard.ReadAll

// ClipboardUnsupported mirrors clipboard.Unsupported (swappable in tests).
var ClipboardUnsupported = clipboard.Unsupported

// FileOpen is a function variable for opening files with the system handler
// (swappable in tests).
var FileOpen = browser.OpenFile

// CopyToClipboard copies text to the system clipboard.
// Returns a descriptive error if clipboard is unsupported on the platform.
func CopyToClipboard(text string) error {
	if ClipboardUnsupported {
		return ErrClipboardUnsupported
	}

	return ClipboardWrite(text)
}

// PasteFromClipboard returns the current clipboard text.
func PasteFromClipboard() (string, error) {
	if ClipboardUnsupported {
		return "", ErrClipboardUnsupported
	}

	text, err := ClipboardRead()
	if err != nil {
		return "", fmt.Errorf("reading clipboard: %w", err)
	}

	return text, nil
}

// OpenFile opens path with the default application for its type.
func OpenFile(path string) error {
	return FileOpen(path)
}

// ExportPath resolves where an export goes. An explicit output wins;
// otherwise DefaultExportName inside dir (or the working directory).
func ExportPath(dir, output string) string {
	if output != "" {
		return output
	}

	return filepath.Join(dir, DefaultExportName)
}

// ExportText writes text to destPath as UTF-8, creating parent directories.
func ExportText(destPath, text string) error {
	if dir := filepath.Dir(destPath); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}

	f, err := os.Create(destPath) //nolint:gosec // destPath is user-provided output flag
	if err != nil {
		return fmt.Errorf("creating %s: %w", destPath, err)
	}

	if _, err := f.WriteString(text); err != nil {
		_ = f.Close()

		return fmt.Errorf("writing %s: %w", destPath, err)
	}

	if err := f.Sync(); err != nil {
		_ = f.Close()

		return fmt.Errorf("syncing %s: %w", destPath, err)
	}

	return closeFile(f, destPath)
}

// closeFile closes f and reports a failure, since on some filesystems the
// write is only committed at close.
func closeFile(f io.Closer, path string) error {
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}

	return nil
}
