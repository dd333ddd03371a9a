package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	charmlog "github.com/charmbracelet/log"

	"github.com/dedene/casekit/internal/config"
	"github.com/dedene/casekit/internal/outfmt"
	"github.com/dedene/casekit/internal/transform"
	"github.com/dedene/casekit/internal/ui"
)

// RootFlags are global flags available to all commands.
type RootFlags struct {
	Color   string `help:"Color output: auto|always|never" default:"auto" enum:"auto,always,never"`
	JSON    bool   `help:"JSON output" default:"false"`
	Verbose bool   `help:"Verbose logging" default:"false"`
	NoInput bool   `help:"Never prompt; fail instead" name:"no-input" default:"false"`
}

// CLI is the top-level Kong command struct.
type CLI struct {
	RootFlags `embed:""`

	Version    kong.VersionFlag `help:"Print version and exit"`
	VersionCmd VersionCmd       `cmd:"" name:"version" help:"Print version info"`
	Apply      ApplyCmd         `cmd:"" name:"apply" aliases:"a" default:"withargs" help:"Apply a transform to text"`
	List       ListCmd          `cmd:"" name:"list" aliases:"ls" help:"List transforms"`
	Show       ShowCmd          `cmd:"" name:"show" help:"Show one transform with a sample"`
	Pick       PickCmd          `cmd:"" name:"pick" aliases:"p" help:"Pick a transform interactively"`
	Fav        FavCmd           `cmd:"" name:"fav" help:"Manage favorite transforms"`
	History    HistoryCmd       `cmd:"" name:"history" help:"Show or clear recently used transforms"`
	Analyze    AnalyzeCmd       `cmd:"" name:"analyze" help:"Show text statistics"`
	Templates  TemplatesCmd     `cmd:"" name:"templates" aliases:"tpl" help:"List or print text templates"`
	Config     ConfigCmd        `cmd:"" name:"config" help:"Manage configuration"`
}

// Execute parses CLI args, sets up context, and runs the matched command.
func Execute(args []string) (err error) {
	cli := &CLI{}
	parser, err := kong.New(
		cli,
		kong.Name("casekit"),
		kong.Description("Transform text from the terminal: cases, unicode fonts, effects and cleanup"),
		kong.ConfigureHelp(helpOptions()),
		kong.Help(helpPrinter),
		kong.Vars{"version": VersionString()},
		kong.Writers(os.Stdout, os.Stderr),
		kong.Exit(func(code int) { panic(exitPanic{code: code}) }),
	)
	if err != nil {
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			if ep, ok := r.(exitPanic); ok {
				if ep.code == 0 {
					err = nil
					return
				}
				err = &ExitError{Code: ep.code, Err: errors.New("exited")}
				return
			}
			panic(r)
		}
	}()

	kctx, err := parser.Parse(args)
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		return usageError(err)
	}

	slog.SetDefault(slog.New(newLogHandler(os.Stderr, cli.Verbose)))

	// Output mode
	mode := outfmt.Mode{JSON: cli.JSON}
	ctx := context.Background()
	ctx = outfmt.WithMode(ctx, mode)

	// UI printer -- force no color in JSON mode
	uiColor := cli.Color
	if outfmt.IsJSON(ctx) {
		uiColor = "never"
	}
	u, uiErr := ui.New(ui.Options{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Color:  uiColor,
	})
	if uiErr != nil {
		return uiErr
	}
	ctx = ui.WithUI(ctx, u)

	// Config
	cfgPath, _ := config.ConfigPath()
	cfg, cfgErr := config.Load(cfgPath)
	if cfgErr != nil {
		slog.Warn("loading config", "error", cfgErr)
		cfg = &config.Config{}
	}
	ctx = config.WithConfig(ctx, cfg)

	// Engine
	ctx = withEngine(ctx, newEngine(cfg))

	// Bind context + root flags to Kong
	kctx.BindTo(ctx, (*context.Context)(nil))
	kctx.Bind(&cli.RootFlags)

	return kctx.Run()
}

// newLogHandler returns the slog handler for the process: a charm logger on
// w at warn level, or debug with timestamps when verbose.
func newLogHandler(w io.Writer, verbose bool) slog.Handler {
	level := charmlog.WarnLevel
	if verbose {
		level = charmlog.DebugLevel
	}

	return charmlog.NewWithOptions(w, charmlog.Options{
		ReportTimestamp: verbose,
		TimeFormat:      "15:04:05.00",
		Level:           level,
		Prefix:          "casekit",
	})
}

// newEngine builds the transform engine with the configured zalgo intensity.
// An intensity of zero in the config disables the effect.
func newEngine(cfg *config.Config) *transform.Engine {
	n := cfg.Intensity()
	if n == 0 {
		n = -1
	}

	return transform.NewEngine(transform.WithIntensity(n))
}

type engineCtxKey struct{}

func withEngine(ctx context.Context, e *transform.Engine) context.Context {
	return context.WithValue(ctx, engineCtxKey{}, e)
}

// engineFromContext returns the engine stored by Execute, or a default one.
func engineFromContext(ctx context.Context) *transform.Engine {
	if e, ok := ctx.Value(engineCtxKey{}).(*transform.Engine); ok && e != nil {
		return e
	}

	return newEngine(config.FromContext(ctx))
}
