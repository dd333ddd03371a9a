package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/dedene/casekit/internal/config"
	"github.com/dedene/casekit/internal/store"
	"github.com/dedene/casekit/internal/transform"
	"github.com/dedene/casekit/internal/ui"
)

func loadFavorites() (*store.Favorites, error) {
	path, err := config.FavoritesPath()
	if err != nil {
		return nil, err
	}

	return store.LoadFavorites(path)
}

func loadHistory() (*store.History, error) {
	path, err := config.HistoryPath()
	if err != nil {
		return nil, err
	}

	return store.LoadHistory(path)
}

// recordHistory remembers ids as used, newest last in ids. Failures are
// logged and never reach the user.
func recordHistory(ctx context.Context, ids ...string) {
	if !config.FromContext(ctx).HistoryEnabled() {
		return
	}

	h, err := loadHistory()
	if err != nil {
		slog.Warn("loading history", "error", err)

		return
	}

	for _, id := range ids {
		h.Record(id)
	}

	if err := h.Save(); err != nil {
		slog.Warn("saving history", "error", err)
	}
}

// resolveID maps an ID or alias to its registered descriptor.
func resolveID(reg *transform.Registry, id string) (transform.Descriptor, error) {
	d, ok := reg.Find(id)
	if !ok {
		return transform.Descriptor{}, unknownTransformError(reg, id)
	}

	return d, nil
}

// unknownTransformError is a usage error with fuzzy suggestions.
func unknownTransformError(reg *transform.Registry, id string) error {
	err := fmt.Errorf("%w: %s", transform.ErrUnknownTransform, id)
	if s := reg.Suggest(id); len(s) > 0 {
		err = fmt.Errorf("%w (did you mean %s?)", err, strings.Join(s, ", "))
	}

	return usageError(err)
}

// warnf reports a non-fatal problem on stderr.
func warnf(ctx context.Context, format string, args ...any) {
	if u := ui.FromContext(ctx); u != nil {
		u.Err().Warnf(format, args...)

		return
	}

	fmt.Fprintf(os.Stderr, "warning: "+format+"\n", args...)
}

// notef reports a completed side effect on stderr.
func notef(ctx context.Context, format string, args ...any) {
	if u := ui.FromContext(ctx); u != nil {
		u.Err().Successf(format, args...)

		return
	}

	fmt.Fprintf(os.Stderr, format+"\n", args...)
}

// hintf prints a faint hint on stderr, such as what to do about an empty
// listing.
func hintf(ctx context.Context, format string, args ...any) {
	if u := ui.FromContext(ctx); u != nil {
		u.Err().Dimf(format, args...)

		return
	}

	fmt.Fprintf(os.Stderr, format+"\n", args...)
}

// headingf prints a section heading on stdout.
func headingf(ctx context.Context, format string, args ...any) {
	if u := ui.FromContext(ctx); u != nil {
		u.Out().Headingf(format, args...)

		return
	}

	fmt.Fprintf(os.Stdout, format+"\n", args...)
}

func colorEnabled(ctx context.Context) bool {
	if u := ui.FromContext(ctx); u != nil {
		return u.Out().ColorEnabled()
	}

	return false
}
