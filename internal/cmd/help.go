package cmd

import (
	"fmt"

	"github.com/alecthomas/kong"
)

const helpExamples = `
Examples:
  casekit uppercase "hello world"
  echo "hello" | casekit zalgoText --intensity 20
  casekit reverseText "abc" --chain uppercase --copy
  casekit list --category social --sample "Hi there"
  casekit pick
`

func helpOptions() kong.HelpOptions {
	return kong.HelpOptions{
		Compact:        true,
		WrapUpperBound: 100,
	}
}

// helpPrinter prints the default help and, for the top level and the
// default apply command, a few examples.
func helpPrinter(options kong.HelpOptions, ctx *kong.Context) error {
	if err := kong.DefaultHelpPrinter(options, ctx); err != nil {
		return err
	}

	if cmd := ctx.Selected(); cmd == nil || cmd.Name == "apply" {
		_, _ = fmt.Fprint(ctx.Stdout, helpExamples)
	}

	return nil
}
