// Package ui provides terminal output writers with color profile support.
package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"
)

// ErrInvalidColor is returned when an unsupported --color value is given.
var ErrInvalidColor = errors.New("invalid --color value")

// ColorMode is the user's --color preference.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode normalizes a --color value. Empty means auto.
func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return ColorAuto, nil
	case ColorAuto, ColorAlways, ColorNever:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q (expected auto|always|never)", ErrInvalidColor, s)
	}
}

// Options configures the UI.
type Options struct {
	Stdout io.Writer
	Stderr io.Writer
	Color  string
}

// UI holds one printer per output stream.
type UI struct {
	out *Printer
	err *Printer
}

// New creates a UI, resolving the color profile of each stream separately.
func New(opts Options) (*UI, error) {
	mode, err := ParseColorMode(opts.Color)
	if err != nil {
		return nil, err
	}

	stdout, stderr := opts.Stdout, opts.Stderr
	if stdout == nil {
		stdout = os.Stdout
	}

	if stderr == nil {
		stderr = os.Stderr
	}

	return &UI{
		out: newPrinter(stdout, mode),
		err: newPrinter(stderr, mode),
	}, nil
}

// resolveProfile applies NO_COLOR and the user's mode on top of what the
// terminal reports.
func resolveProfile(detected termenv.Profile, mode ColorMode) termenv.Profile {
	switch {
	case termenv.EnvNoColor(), mode == ColorNever:
		return termenv.Ascii
	case mode == ColorAlways:
		return termenv.TrueColor
	default:
		return detected
	}
}

// Out returns the stdout printer.
func (u *UI) Out() *Printer { return u.out }

// Err returns the stderr printer.
func (u *UI) Err() *Printer { return u.err }

// Palette used by the printers.
const (
	colorAccent  = "#7c3aed"
	colorSuccess = "#22c55e"
	colorWarning = "#f59e0b"
)

// Printer writes lines to one stream, styling them when color is enabled.
type Printer struct {
	o       *termenv.Output
	profile termenv.Profile
}

func newPrinter(w io.Writer, mode ColorMode) *Printer {
	o := termenv.NewOutput(w, termenv.WithProfile(termenv.EnvColorProfile()))

	return &Printer{o: o, profile: resolveProfile(o.Profile, mode)}
}

// ColorEnabled reports whether styled output is active.
func (p *Printer) ColorEnabled() bool { return p.profile != termenv.Ascii }

// styled formats a line and lets style decorate it when color is on.
func (p *Printer) styled(style func(termenv.Style) termenv.Style, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if style != nil && p.ColorEnabled() {
		msg = style(termenv.String(msg)).String()
	}

	_, _ = io.WriteString(p.o, msg+"\n")
}

func (p *Printer) fg(hex string) func(termenv.Style) termenv.Style {
	return func(s termenv.Style) termenv.Style { return s.Foreground(p.profile.Color(hex)) }
}

// Println writes a line to the output.
func (p *Printer) Println(msg string) { p.styled(nil, "%s", msg) }

// Printf writes a formatted line to the output.
func (p *Printer) Printf(format string, args ...any) { p.styled(nil, format, args...) }

// Successf writes a green line, used for confirmations like "Copied".
func (p *Printer) Successf(format string, args ...any) {
	p.styled(p.fg(colorSuccess), format, args...)
}

// Warnf writes a line prefixed with "Warning: ".
func (p *Printer) Warnf(format string, args ...any) {
	p.styled(p.fg(colorWarning), "Warning: "+format, args...)
}

// Headingf writes a bold section heading, used between transform groups.
func (p *Printer) Headingf(format string, args ...any) {
	accent := p.fg(colorAccent)
	p.styled(func(s termenv.Style) termenv.Style { return accent(s).Bold() }, format, args...)
}

// Dimf writes a faint line for secondary details such as hints.
func (p *Printer) Dimf(format string, args ...any) {
	p.styled(termenv.Style.Faint, format, args...)
}

type uiCtxKey struct{}

// WithUI stores the UI in the context.
func WithUI(ctx context.Context, u *UI) context.Context {
	return context.WithValue(ctx, uiCtxKey{}, u)
}

// FromContext returns the UI stored by WithUI, or nil.
func FromContext(ctx context.Context) *UI {
	u, _ := ctx.Value(uiCtxKey{}).(*UI)

	return u
}
