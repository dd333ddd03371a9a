package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dedene/casekit/internal/actions"
	"github.com/dedene/casekit/internal/config"
	"github.com/dedene/casekit/internal/outfmt"
	"github.com/dedene/casekit/internal/transform"
)

// ApplyCmd runs one transform, or a chain of them, over the input text. It
// is the default command when invoked with positional args.
type ApplyCmd struct {
	ID   string   `arg:"" help:"Transform ID (see 'casekit list')"`
	Text []string `arg:"" optional:"" help:"Text to transform (default: stdin)"`

	Chain     []string `help:"Further transforms applied in order (repeatable)" name:"chain" sep:","`
	Intensity *int     `help:"Zalgo intensity (0-50)" name:"intensity" short:"i"`
	Seed      *uint64  `help:"Seed for random effects, for repeatable output" name:"seed"`
	Paste     bool     `help:"Read the text from the clipboard" name:"paste"`

	// Output action flags.
	Copy   bool   `help:"Copy the result to the clipboard" name:"copy" short:"c"`
	Output string `help:"Export the result to a file" name:"output" short:"o" type:"path"`
	Export bool   `help:"Export to transformed_text.txt in export_dir" name:"export" short:"e"`
	Open   bool   `help:"Open the exported file" name:"open"`
}

// applyResult is the JSON shape of an apply.
type applyResult struct {
	Transforms []string `json:"transforms"`
	Input      string   `json:"input"`
	Output     string   `json:"output"`
	Exported   string   `json:"exported,omitempty"`
}

// Run executes the apply command.
func (c *ApplyCmd) Run(ctx context.Context) error {
	params, err := c.params()
	if err != nil {
		return err
	}

	eng := engineFromContext(ctx)

	ids, err := c.resolve(eng.Registry())
	if err != nil {
		return err
	}

	text, err := readInput(c.Text, c.Paste)
	if err != nil {
		return err
	}

	out, err := eng.Chain(ids, text, params)
	if err != nil {
		// Every id was resolved above; this would be a registry bug.
		return fmt.Errorf("applying transforms: %w", err)
	}

	recordHistory(ctx, ids...)

	cfg := config.FromContext(ctx)
	res := applyResult{Transforms: ids, Input: text, Output: out}

	res.Exported = c.runActions(ctx, out, cfg)

	return outfmt.Emit(ctx, os.Stdout, res, func() error {
		return outfmt.WriteText(os.Stdout, out)
	})
}

// params validates the effect flags.
func (c *ApplyCmd) params() (transform.Params, error) {
	var p transform.Params

	if c.Intensity != nil {
		n := *c.Intensity
		if n < config.MinIntensity || n > config.MaxIntensity {
			return p, usageError(fmt.Errorf("--intensity must be between %d and %d", config.MinIntensity, config.MaxIntensity))
		}

		// Zero in Params means "engine default"; an explicit 0 disables.
		if n == 0 {
			n = -1
		}

		p.Intensity = n
	}

	if c.Seed != nil {
		p.Rand = transform.NewSeededRand(*c.Seed)
	}

	return p, nil
}

// resolve maps the main ID and every --chain ID to registered IDs.
func (c *ApplyCmd) resolve(reg *transform.Registry) ([]string, error) {
	ids := make([]string, 0, 1+len(c.Chain))

	for _, id := range append([]string{c.ID}, c.Chain...) {
		if id == "" {
			continue
		}

		d, err := resolveID(reg, id)
		if err != nil {
			return nil, err
		}

		ids = append(ids, d.ID)
	}

	if len(ids) == 0 {
		return nil, usageError(errors.New("no transform given; run 'casekit list' to see them"))
	}

	return ids, nil
}

// runActions fires post-transform actions (clipboard, export, open) and
// returns the export path, if any. Errors are non-fatal warnings.
func (c *ApplyCmd) runActions(ctx context.Context, out string, cfg *config.Config) string {
	if c.Copy || cfg.CopyByDefault() {
		if err := actions.CopyToClipboard(out); err != nil {
			warnf(ctx, "clipboard: %v", err)
		} else {
			notef(ctx, "Copied to clipboard")
		}
	}

	if c.Output == "" && !c.Export {
		return ""
	}

	exportDir := ""
	if cfg != nil {
		exportDir = cfg.ExportDir
	}

	dest := actions.ExportPath(exportDir, c.Output)
	if err := actions.ExportText(dest, out); err != nil {
		warnf(ctx, "export: %v", err)

		return ""
	}

	notef(ctx, "Exported to %s", dest)

	if c.Open || cfg.OpenAfterExport() {
		if err := actions.OpenFile(dest); err != nil {
			warnf(ctx, "open: %v", err)
		}
	}

	return dest
}
