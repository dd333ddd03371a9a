package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/dedene/casekit/internal/config"
	"github.com/dedene/casekit/internal/outfmt"
	"github.com/dedene/casekit/internal/transform"
	"github.com/dedene/casekit/internal/ui"
)

// sampleWidth bounds the sample column in terminal cells.
const sampleWidth = 32

// sampleSeed keeps list and show samples of random effects stable.
const sampleSeed = 1

// ListCmd lists transforms, optionally filtered.
type ListCmd struct {
	Category  string `help:"Only this category (case, social, effects, cleanup, encoding)" name:"category" short:"C"`
	Filter    string `help:"Only transforms whose name or description contains this" name:"filter" short:"f"`
	Favorites bool   `help:"Only favorite transforms" name:"favorites"`
	Sample    string `help:"Text for the sample column (default: sample_text)" name:"sample"`
}

// listEntry is the JSON shape of a listed transform.
type listEntry struct {
	transform.Descriptor
	Favorite bool   `json:"favorite"`
	Sample   string `json:"sample"`
}

// Run executes the list command.
func (c *ListCmd) Run(ctx context.Context) error {
	category, err := parseCategoryFlag(c.Category)
	if err != nil {
		return err
	}

	eng := engineFromContext(ctx)
	descs := transform.Filter(eng.Registry().List(), c.Filter, category)

	favs, err := loadFavorites()
	if err != nil {
		return err
	}

	sample := c.Sample
	if sample == "" {
		sample = config.FromContext(ctx).Sample()
	}

	entries := make([]listEntry, 0, len(descs))
	for _, d := range descs {
		if c.Favorites && !favs.Has(d.ID) {
			continue
		}

		entries = append(entries, listEntry{
			Descriptor: d,
			Favorite:   favs.Has(d.ID),
			Sample:     sampleOutput(eng, d.ID, sample),
		})
	}

	return outfmt.Emit(ctx, os.Stdout, entries, func() error {
		return printList(ctx, entries)
	})
}

// printList renders one table per category, in category order.
func printList(ctx context.Context, entries []listEntry) error {
	if len(entries) == 0 {
		hintf(ctx, "No transforms match.")

		return nil
	}

	for _, category := range transform.Categories() {
		rows := make([][]string, 0, len(entries))
		for _, e := range entries {
			if e.Category != category {
				continue
			}

			name := e.Name
			if e.Favorite {
				name += " ★"
			}

			rows = append(rows, []string{e.ID, name, ui.Snippet(e.Sample, sampleWidth)})
		}

		if len(rows) == 0 {
			continue
		}

		headingf(ctx, "%s", category)
		fmt.Fprint(os.Stdout, ui.RenderTable(
			[]string{"ID", "Name", "Sample"},
			rows,
			colorEnabled(ctx),
		))
		fmt.Fprintln(os.Stdout)
	}

	fmt.Fprintf(os.Stdout, "%d transforms\n", len(entries))

	return nil
}

// sampleOutput renders id over text with a fixed seed.
func sampleOutput(eng *transform.Engine, id, text string) string {
	return eng.Apply(id, text, transform.Params{Rand: transform.NewSeededRand(sampleSeed)})
}

func parseCategoryFlag(s string) (transform.Category, error) {
	if s == "" {
		return "", nil
	}

	category, ok := transform.ParseCategory(s)
	if !ok {
		return "", usageError(fmt.Errorf("unknown category %q (use case, social, effects, cleanup or encoding)", s))
	}

	return category, nil
}

// ShowCmd prints one transform's details and a sample.
type ShowCmd struct {
	ID     string `arg:"" help:"Transform ID"`
	Sample string `help:"Sample input (default: sample_text)" name:"sample"`
}

// showResult is the JSON shape of show.
type showResult struct {
	transform.Descriptor
	Favorite     bool   `json:"favorite"`
	SampleInput  string `json:"sample_input"`
	SampleOutput string `json:"sample_output"`
}

// Run executes the show command.
func (c *ShowCmd) Run(ctx context.Context) error {
	eng := engineFromContext(ctx)

	d, err := resolveID(eng.Registry(), c.ID)
	if err != nil {
		return err
	}

	favs, err := loadFavorites()
	if err != nil {
		return err
	}

	sample := c.Sample
	if sample == "" {
		sample = config.FromContext(ctx).Sample()
	}

	res := showResult{
		Descriptor:   d,
		Favorite:     favs.Has(d.ID),
		SampleInput:  sample,
		SampleOutput: sampleOutput(eng, d.ID, sample),
	}

	return outfmt.Emit(ctx, os.Stdout, res, func() error {
		printShow(res)

		return nil
	})
}

func printShow(res showResult) {
	fmt.Fprintf(os.Stdout, "ID:          %s\n", res.ID)
	fmt.Fprintf(os.Stdout, "Name:        %s\n", res.Name)
	fmt.Fprintf(os.Stdout, "Category:    %s\n", res.Category)
	fmt.Fprintf(os.Stdout, "Description: %s\n", res.Description)
	fmt.Fprintf(os.Stdout, "Favorite:    %t\n", res.Favorite)
	fmt.Fprintf(os.Stdout, "Input:       %s\n", res.SampleInput)
	fmt.Fprintf(os.Stdout, "Output:      %s\n", res.SampleOutput)
}
