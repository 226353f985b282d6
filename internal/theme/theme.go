// Package theme defines the colour palettes and the Store that hands the
// active theme to whoever renders. There is no package-level current theme;
// a Store is created once and passed down.
package theme

import (
	"fmt"
	"strings"
)

const (
	reset = "\033[0m"
	bold  = "\033[1m"

	fgGray   = "\033[90m"
	fgGreen  = "\033[32m"
	fgYellow = "\033[33m"
	fgBlue   = "\033[34m"
	fgRed    = "\033[31m"
	fgBlack  = "\033[30m"
	fgWhite  = "\033[97m"
)

// Theme bundles palette + symbols + box borders.
type Theme struct {
	Name string
	Dark bool

	Title, Muted, Accent, Success, Error, Pending string
	BoxUnchecked, BoxChecked                      string
	CornerTL, CornerTR, CornerBL, CornerBR        string
	H, V                                          string
	SymDone, SymPending                           string

	// Plain disables colour output entirely (the mono palette).
	Plain bool
}

// Names lists the palettes New understands.
var Names = []string{"classic", "neon", "mono"}

// New builds the named palette for a dark or light background.
func New(name string, dark bool) (Theme, error) {
	var t Theme
	switch strings.ToLower(name) {
	case "neon":
		t = Theme{
			Title: "\033[95m", // bright magenta
			Muted: fgGray, Accent: "\033[96m",
			Success: fgGreen, Error: fgRed, Pending: "\033[93m",
			BoxUnchecked: "◻", BoxChecked: "◼",
			CornerTL: "╭", CornerTR: "╮", CornerBL: "╰", CornerBR: "╯",
			H: "─", V: "│",
			SymDone: "✔", SymPending: "•",
		}
	case "mono":
		t = Theme{
			BoxUnchecked: "[ ]", BoxChecked: "[x]",
			CornerTL: "+", CornerTR: "+", CornerBL: "+", CornerBR: "+",
			H: "-", V: "|",
			SymDone: "x", SymPending: "-",
			Plain: true,
		}
	case "classic", "":
		t = Theme{
			Title: bold, Muted: fgGray, Accent: fgBlue,
			Success: fgGreen, Error: fgRed, Pending: fgYellow,
			BoxUnchecked: "☐", BoxChecked: "☑",
			CornerTL: "┌", CornerTR: "┐", CornerBL: "└", CornerBR: "┘",
			H: "─", V: "│",
			SymDone: "✔", SymPending: "•",
		}
		name = "classic"
	default:
		return Theme{}, fmt.Errorf("unknown theme %q (want one of %s)", name, strings.Join(Names, ", "))
	}
	t.Name = strings.ToLower(name)
	t.Dark = dark
	if !t.Plain {
		// bold-only titles vanish on some light schemes
		if dark {
			t.Title += fgWhite
		} else {
			t.Title += fgBlack
			t.Muted = "\033[2m"
		}
	}
	return t, nil
}

// WithDark returns the same palette rebuilt for the other background.
func (t Theme) WithDark(dark bool) Theme {
	nt, err := New(t.Name, dark)
	if err != nil {
		return t
	}
	return nt
}

// C wraps s in the colour sequence unless the theme is plain.
func (t Theme) C(color, s string) string {
	if t.Plain || color == "" {
		return s
	}
	return color + s + reset
}
