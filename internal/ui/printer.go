// Package ui prints framed, coloured output for the non-interactive
// commands.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/idilsaglam/taskboard/internal/theme"
)

// Printer writes themed lines to a pair of streams.
type Printer struct {
	Out, Err io.Writer
	Theme    theme.Theme

	// Color forces colour on or off; nil means "only when Out is a TTY".
	Color *bool
}

func NewPrinter(out, errw io.Writer, t theme.Theme) *Printer {
	return &Printer{Out: out, Err: errw, Theme: t}
}

func isTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (p *Printer) colorOn() bool {
	if p.Color != nil {
		return *p.Color
	}
	return isTTY(p.Out)
}

// C colours s with one of the theme's sequences.
func (p *Printer) C(color, s string) string {
	if !p.colorOn() {
		return s
	}
	return p.Theme.C(color, s)
}

func (p *Printer) OK(msg string) {
	fmt.Fprintln(p.Out, p.C(p.Theme.Success, p.Theme.SymDone+" "+msg))
}

func (p *Printer) Fail(msg string) {
	fmt.Fprintln(p.Err, p.C(p.Theme.Error, "✖ "+msg))
}
