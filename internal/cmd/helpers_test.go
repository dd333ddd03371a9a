package cmd

import (
	"context"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dedene/casekit/internal/actions"
	"github.com/dedene/casekit/internal/config"
	"github.com/dedene/casekit/internal/outfmt"
	"github.com/dedene/casekit/internal/store"
)

// testCtx points config and data dirs at temp dirs and returns a context
// carrying the output mode and cfg.
func testCtx(t *testing.T, jsonMode bool, cfg *config.Config) context.Context {
	t.Helper()

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	if cfg == nil {
		cfg = &config.Config{}
	}

	ctx := context.Background()
	ctx = outfmt.WithMode(ctx, outfmt.Mode{JSON: jsonMode})
	ctx = config.WithConfig(ctx, cfg)

	return ctx
}

// captureStdout runs fn while capturing os.Stdout and returns the output.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	r, w, err := os.Pipe()
	require.NoError(t, err)

	origStdout := os.Stdout
	os.Stdout = w

	fn()

	_ = w.Close()
	os.Stdout = origStdout

	buf, _ := io.ReadAll(r)
	_ = r.Close()

	return string(buf)
}

// withStdin feeds s to os.Stdin as a pipe for the rest of the test.
func withStdin(t *testing.T, s string) {
	t.Helper()

	r, w, err := os.Pipe()
	require.NoError(t, err)

	_, err = io.WriteString(w, s)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	origStdin := os.Stdin
	origIsTerminal := stdinIsTerminal
	os.Stdin = r
	stdinIsTerminal = func() bool { return false }

	t.Cleanup(func() {
		os.Stdin = origStdin
		stdinIsTerminal = origIsTerminal
		_ = r.Close()
	})
}

// interactiveStdin makes stdin look like a terminal.
func interactiveStdin(t *testing.T) {
	t.Helper()

	orig := stdinIsTerminal
	stdinIsTerminal = func() bool { return true }

	t.Cleanup(func() { stdinIsTerminal = orig })
}

// fakeClipboard replaces the system clipboard with an in-memory one.
func fakeClipboard(t *testing.T, content string) *string {
	t.Helper()

	origWrite := actions.ClipboardWrite
	origRead := actions.ClipboardRead
	origUnsupported := actions.ClipboardUnsupported

	clip := content
	actions.ClipboardWrite = func(s string) error {
		clip = s

		return nil
	}
	actions.ClipboardRead = func() (string, error) { return clip, nil }
	actions.ClipboardUnsupported = false

	t.Cleanup(func() {
		actions.ClipboardWrite = origWrite
		actions.ClipboardRead = origRead
		actions.ClipboardUnsupported = origUnsupported
	})

	return &clip
}

func readHistory(t *testing.T) []string {
	t.Helper()

	h, err := loadHistory()
	require.NoError(t, err)

	return h.IDs()
}

func readFavorites(t *testing.T) *store.Favorites {
	t.Helper()

	f, err := loadFavorites()
	require.NoError(t, err)

	return f
}

func ptr[T any](v T) *T { return &v }
