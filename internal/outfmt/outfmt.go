// Package outfmt provides context-based output mode selection (JSON vs human).
package outfmt

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Mode controls output formatting.
type Mode struct {
	JSON bool
}

type ctxKey struct{}

// WithMode stores the output mode in the context.
func WithMode(ctx context.Context, mode Mode) context.Context {
	return context.WithValue(ctx, ctxKey{}, mode)
}

// IsJSON returns true if the context has JSON output mode enabled.
func IsJSON(ctx context.Context) bool {
	if v := ctx.Value(ctxKey{}); v != nil {
		if m, ok := v.(Mode); ok {
			return m.JSON
		}
	}

	return false
}

// WriteJSON writes v as pretty-printed JSON to w.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}

	return nil
}

// WriteText writes transformed text to w followed by exactly one newline.
// Text that already ends in a newline is written as is, so stacked output
// keeps its shape.
func WriteText(w io.Writer, text string) error {
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}

	if _, err := io.WriteString(w, text); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	return nil
}

// Emit writes v as JSON when the context asks for it and otherwise calls
// human to render the same data for people.
func Emit(ctx context.Context, w io.Writer, v any, human func() error) error {
	if IsJSON(ctx) {
		return WriteJSON(w, v)
	}

	return human()
}
