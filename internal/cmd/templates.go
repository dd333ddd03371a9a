package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/dedene/casekit/internal/actions"
	"github.com/dedene/casekit/internal/outfmt"
	"github.com/dedene/casekit/internal/templates"
	"github.com/dedene/casekit/internal/transform"
	"github.com/dedene/casekit/internal/ui"
)

// TemplatesCmd lists the built-in text templates or prints one.
type TemplatesCmd struct {
	ID        string `arg:"" optional:"" help:"Template ID to print"`
	Category  string `help:"Only templates in this category" name:"category" short:"C"`
	Transform string `help:"Transform to apply to the printed template" name:"transform" short:"t"`
	Copy      bool   `help:"Copy the printed template to the clipboard" name:"copy" short:"c"`
}

// Run executes the templates command, dispatching to detail or list view.
func (c *TemplatesCmd) Run(ctx context.Context) error {
	if c.ID != "" {
		return c.runDetail(ctx)
	}

	return c.runList(ctx)
}

// runDetail prints one template's content, optionally transformed.
func (c *TemplatesCmd) runDetail(ctx context.Context) error {
	tmpl, ok := templates.Find(c.ID)
	if !ok {
		return usageError(fmt.Errorf("unknown template %q (available: %s)", c.ID, strings.Join(templates.IDs(), ", ")))
	}

	content := tmpl.Content

	if c.Transform != "" {
		eng := engineFromContext(ctx)

		d, err := resolveID(eng.Registry(), c.Transform)
		if err != nil {
			return err
		}

		content = eng.Apply(d.ID, content, transform.Params{})
		recordHistory(ctx, d.ID)
	}

	if c.Copy {
		if err := actions.CopyToClipboard(content); err != nil {
			warnf(ctx, "clipboard: %v", err)
		} else {
			notef(ctx, "Copied to clipboard")
		}
	}

	if outfmt.IsJSON(ctx) {
		tmpl.Content = content

		return outfmt.WriteJSON(os.Stdout, tmpl)
	}

	return outfmt.WriteText(os.Stdout, content)
}

// runList prints the templates as a table.
func (c *TemplatesCmd) runList(ctx context.Context) error {
	list := templates.ByCategory(c.Category)
	if len(list) == 0 && c.Category != "" {
		return usageError(fmt.Errorf("unknown template category %q (available: %s)", c.Category, strings.Join(templates.Categories(), ", ")))
	}

	if outfmt.IsJSON(ctx) {
		return outfmt.WriteJSON(os.Stdout, list)
	}

	rows := make([][]string, 0, len(list))
	for _, t := range list {
		rows = append(rows, []string{t.ID, t.Title, t.Category, t.Description})
	}

	fmt.Fprint(os.Stdout, ui.RenderTable(
		[]string{"ID", "Title", "Category", "Description"},
		rows,
		colorEnabled(ctx),
	))
	fmt.Fprintf(os.Stdout, "\n%d templates\n", len(list))

	return nil
}
