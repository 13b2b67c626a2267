// Package tomato formats terminal text with ANSI SGR escape sequences:
// styles, foreground and background colors, and width-aware alignment.
package tomato

import (
	"github.com/LuizRaizen/tomato/internal/ansi"
	"github.com/LuizRaizen/tomato/internal/style"
	"github.com/LuizRaizen/tomato/internal/terminal"
)

// Options selects the visual attributes applied to a string. Every field
// is independent and optional; the zero value requests nothing.
type Options struct {
	// Style names a text style from the registry (bold, underline,
	// negative, plus any plugin-contributed names).
	Style string
	// Color names a foreground color from the ANSI table.
	Color string
	// Markup names a background color from the ANSI table.
	Markup string
	// Align positions the text within the current terminal width.
	Align Alignment
}

// FormatterOptions configures a Formatter at creation time.
type FormatterOptions struct {
	// Styles is the style registry consulted for Options.Style lookups.
	// Nil means a fresh registry holding only the base styles.
	Styles *style.Registry
	// Width queries the terminal width for alignment. Nil means the
	// size of the terminal attached to stdout.
	Width func() (int, error)
}

// Formatter wraps text in escape sequences and aligns it. It is a pure
// function of its inputs and the current terminal width; the registry it
// holds must be fully loaded before concurrent use.
type Formatter struct {
	styles *style.Registry
	width  func() (int, error)
}

// New creates a Formatter from the supplied options.
func New(opts FormatterOptions) *Formatter {
	styles := opts.Styles
	if styles == nil {
		styles = style.NewRegistry()
	}

	width := opts.Width
	if width == nil {
		width = terminal.Width
	}

	return &Formatter{styles: styles, width: width}
}

// Format returns text wrapped in the escape prefix selected by opts and
// aligned to the terminal width when requested.
//
// The prefix joins the style, color and markup codes with ';' in that
// order, and the trailing reset is always appended, even when no
// attribute was requested, so padding added afterwards is never
// colorized. Unknown attribute names return an AttributeError, unknown
// alignment modes an AlignmentError, and requesting alignment without an
// attached terminal surfaces the width query's TerminalError.
func (f *Formatter) Format(text string, opts Options) (string, error) {
	styleCode, err := f.styles.Lookup(opts.Style)
	if err != nil {
		return "", err
	}

	colorCode, err := style.Color(opts.Color)
	if err != nil {
		return "", err
	}

	markupCode, err := style.Markup(opts.Markup)
	if err != nil {
		return "", err
	}

	var codes []string
	for _, code := range []string{styleCode, colorCode, markupCode} {
		if code != "" {
			codes = append(codes, code)
		}
	}

	return f.align(ansi.Wrap(codes, text), opts.Align)
}

// Styles exposes the registry backing this formatter, so plugins can be
// loaded into it before use.
func (f *Formatter) Styles() *style.Registry {
	return f.styles
}

// Format styles text using a formatter with only the base styles. Callers
// that load plugins should build their own Formatter via New.
func Format(text string, opts Options) (string, error) {
	return defaultFormatter.Format(text, opts)
}

// Strip removes every ANSI escape sequence from s.
func Strip(s string) string {
	return ansi.Strip(s)
}

var defaultFormatter = New(FormatterOptions{})
