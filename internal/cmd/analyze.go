package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/dedene/casekit/internal/analysis"
	"github.com/dedene/casekit/internal/outfmt"
)

// AnalyzeCmd prints statistics about the input text.
type AnalyzeCmd struct {
	Text  []string `arg:"" optional:"" help:"Text to analyze (default: stdin)"`
	Paste bool     `help:"Read the text from the clipboard" name:"paste"`
}

// Run executes the analyze command.
func (c *AnalyzeCmd) Run(ctx context.Context) error {
	text, err := readInput(c.Text, c.Paste)
	if err != nil {
		return err
	}

	st := analysis.Analyze(text)

	return outfmt.Emit(ctx, os.Stdout, st, func() error {
		fmt.Fprintf(os.Stdout, "Content type:        %s\n", st.ContentType)
		fmt.Fprintf(os.Stdout, "Words:               %d\n", st.Words)
		fmt.Fprintf(os.Stdout, "Characters:          %d\n", st.Characters)
		fmt.Fprintf(os.Stdout, "Characters (no sp.): %d\n", st.CharactersNoSpaces)
		fmt.Fprintf(os.Stdout, "Lines:               %d\n", st.Lines)
		fmt.Fprintf(os.Stdout, "Paragraphs:          %d\n", st.Paragraphs)
		fmt.Fprintf(os.Stdout, "Sentences:           %d\n", st.Sentences)
		fmt.Fprintf(os.Stdout, "Unique words:        %d\n", st.UniqueWords)
		fmt.Fprintf(os.Stdout, "Avg. word length:    %.1f\n", st.AverageWordLength)
		fmt.Fprintf(os.Stdout, "Reading time:        %d min\n", st.ReadingMinutes)

		return nil
	})
}
