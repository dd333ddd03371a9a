package cmd

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/dedene/casekit/internal/outfmt"
	"github.com/dedene/casekit/internal/transform"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

// VersionString returns a human-readable version string.
func VersionString() string {
	v := strings.TrimSpace(version)
	if v == "" {
		v = "dev"
	}

	c := strings.TrimSpace(commit)
	d := strings.TrimSpace(date)

	switch {
	case c == "" && d == "":
		return v
	case c == "":
		return fmt.Sprintf("%s (%s)", v, d)
	case d == "":
		return fmt.Sprintf("%s (%s)", v, c)
	default:
		return fmt.Sprintf("%s (%s %s)", v, c, d)
	}
}

// VersionCmd prints version information.
type VersionCmd struct{}

// Run executes the version command.
func (c *VersionCmd) Run(ctx context.Context) error {
	transforms := transform.Default().Len()

	if outfmt.IsJSON(ctx) {
		return outfmt.WriteJSON(os.Stdout, map[string]any{
			"version":    strings.TrimSpace(version),
			"commit":     strings.TrimSpace(commit),
			"date":       strings.TrimSpace(date),
			"go":         runtime.Version(),
			"transforms": transforms,
		})
	}

	fmt.Fprintf(os.Stdout, "casekit %s\n", VersionString())
	if c := strings.TrimSpace(commit); c != "" {
		fmt.Fprintf(os.Stdout, "  commit:     %s\n", c)
	}
	if d := strings.TrimSpace(date); d != "" {
		fmt.Fprintf(os.Stdout, "  date:       %s\n", d)
	}
	fmt.Fprintf(os.Stdout, "  go:         %s\n", runtime.Version())
	fmt.Fprintf(os.Stdout, "  transforms: %d\n", transforms)

	return nil
}
