package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/dedene/casekit/internal/actions"
)

// ErrNoInput is returned when no text was given and stdin is a terminal.
var ErrNoInput = errors.New("no input text: pass TEXT, pipe it on stdin, or use --paste")

// stdinIsTerminal reports whether stdin is interactive (swappable in tests).
var stdinIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) //nolint:gosec // fd fits in int
}

// stderrIsTerminal reports whether stderr can host the picker (swappable in
// tests).
var stderrIsTerminal = func() bool {
	fd := os.Stderr.Fd()

	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// readInput resolves the text to transform. Positional words win and are
// joined with single spaces; then the clipboard when paste is set; then
// stdin, minus one trailing newline. An interactive stdin is ErrNoInput.
func readInput(args []string, paste bool) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	if paste {
		text, err := actions.PasteFromClipboard()
		if err != nil {
			return "", fmt.Errorf("paste: %w", err)
		}

		return text, nil
	}

	if stdinIsTerminal() {
		return "", ErrNoInput
	}

	return readStdin()
}

func readStdin() (string, error) {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}

	text := strings.TrimSuffix(string(data), "\n")
	text = strings.TrimSuffix(text, "\r")

	return text, nil
}
