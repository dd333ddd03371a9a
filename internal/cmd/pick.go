package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dedene/casekit/internal/actions"
	"github.com/dedene/casekit/internal/config"
	"github.com/dedene/casekit/internal/outfmt"
	"github.com/dedene/casekit/internal/store"
	"github.com/dedene/casekit/internal/transform"
	"github.com/dedene/casekit/internal/tui"
)

// ErrNotInteractive is returned when pick cannot open the picker.
var ErrNotInteractive = errors.New("pick needs an interactive terminal; use 'casekit apply' instead")

// runPicker runs the bubbletea program (swappable in tests).
var runPicker = func(m tui.Model) (tui.Model, error) {
	p := tea.NewProgram(m, tea.WithOutput(os.Stderr), tea.WithInputTTY())

	result, err := p.Run()
	if err != nil {
		return tui.Model{}, fmt.Errorf("interactive picker: %w", err)
	}

	picked, ok := result.(tui.Model)
	if !ok {
		return tui.Model{}, errors.New("unexpected picker result type")
	}

	return picked, nil
}

// PickCmd chooses a transform from a list with a live preview and prints
// the result.
type PickCmd struct {
	Text     []string `arg:"" optional:"" help:"Text to transform (default: stdin, or asked for)"`
	Category string   `help:"Only this category" name:"category" short:"C"`
	Copy     bool     `help:"Copy the result to the clipboard" name:"copy" short:"c"`
}

// Run executes the pick command.
func (c *PickCmd) Run(ctx context.Context, root *RootFlags) error {
	if root.NoInput || outfmt.IsJSON(ctx) || !stderrIsTerminal() {
		return usageError(ErrNotInteractive)
	}

	category, err := parseCategoryFlag(c.Category)
	if err != nil {
		return err
	}

	text, err := c.input()
	if err != nil {
		return err
	}

	favs, err := loadFavorites()
	if err != nil {
		return err
	}

	eng := engineFromContext(ctx)
	descs := transform.Filter(eng.Registry().List(), "", category)

	preview := func(id, s string) string { return sampleOutput(eng, id, s) }

	picked, err := runPicker(tui.NewPicker(pickerItems(descs, favs), text, preview))
	if err != nil {
		return err
	}

	if picked.Cancelled() || picked.Selected() == nil {
		return nil
	}

	id := picked.Selected().Descriptor().ID
	out := eng.Apply(id, picked.Text(), transform.Params{})

	recordHistory(ctx, id)

	if err := outfmt.WriteText(os.Stdout, out); err != nil {
		return err
	}

	if c.Copy || config.FromContext(ctx).CopyByDefault() {
		if err := actions.CopyToClipboard(out); err != nil {
			warnf(ctx, "clipboard: %v", err)
		}
	}

	return nil
}

// input returns args or piped stdin. An interactive stdin leaves the text
// empty so the picker asks for it.
func (c *PickCmd) input() (string, error) {
	text, err := readInput(c.Text, false)
	if errors.Is(err, ErrNoInput) {
		return "", nil
	}

	return text, err
}

// pickerItems lists favorites first, each group in registry order.
func pickerItems(descs []transform.Descriptor, favs *store.Favorites) []list.Item {
	items := make([]list.Item, 0, len(descs))

	for _, d := range descs {
		if favs.Has(d.ID) {
			items = append(items, tui.NewTransformItem(d, true))
		}
	}

	for _, d := range descs {
		if !favs.Has(d.ID) {
			items = append(items, tui.NewTransformItem(d, false))
		}
	}

	return items
}
