package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/dedene/casekit/internal/outfmt"
)

// HistoryCmd groups history subcommands.
type HistoryCmd struct {
	List  HistoryListCmd  `cmd:"" default:"1" help:"List recently used transforms"`
	Clear HistoryClearCmd `cmd:"" help:"Forget recently used transforms"`
}

// HistoryListCmd lists history, most recent first.
type HistoryListCmd struct{}

// Run executes history list.
func (c *HistoryListCmd) Run(ctx context.Context) error {
	h, err := loadHistory()
	if err != nil {
		return err
	}

	ids := h.IDs()
	reg := engineFromContext(ctx).Registry()

	return outfmt.Emit(ctx, os.Stdout, ids, func() error {
		if len(ids) == 0 {
			hintf(ctx, "No history yet.")

			return nil
		}

		for i, id := range ids {
			name := "(removed)"
			if d, ok := reg.Find(id); ok {
				name = d.Name
			}

			fmt.Fprintf(os.Stdout, "%2d. %-24s %s\n", i+1, id, name)
		}

		return nil
	})
}

// HistoryClearCmd empties the history.
type HistoryClearCmd struct{}

// Run executes history clear.
func (c *HistoryClearCmd) Run(ctx context.Context) error {
	h, err := loadHistory()
	if err != nil {
		return err
	}

	n := h.Len()
	h.Clear()

	if err := h.Save(); err != nil {
		return fmt.Errorf("saving history: %w", err)
	}

	return outfmt.Emit(ctx, os.Stdout, map[string]int{"cleared": n}, func() error {
		notef(ctx, "Cleared %d entries", n)

		return nil
	})
}
