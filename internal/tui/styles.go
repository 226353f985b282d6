package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/taskboard/internal/theme"
)

// palette picks lipgloss colours for a theme and background.
type palette struct {
	title, success, pending, accent, err, border, navbar lipgloss.TerminalColor
}

func paletteFor(t theme.Theme) palette {
	if t.Plain {
		none := lipgloss.NoColor{}
		return palette{none, none, none, none, none, none, none}
	}
	p := palette{
		title:   lipgloss.Color("0"),
		success: lipgloss.Color("28"),
		pending: lipgloss.Color("166"),
		accent:  lipgloss.Color("4"),
		err:     lipgloss.Color("160"),
		border:  lipgloss.Color("248"),
		navbar:  lipgloss.Color("27"),
	}
	if t.Dark {
		p.title = lipgloss.Color("15")
		p.success = lipgloss.Color("42")
		p.pending = lipgloss.Color("214")
		p.accent = lipgloss.Color("12")
		p.err = lipgloss.Color("9")
		p.border = lipgloss.Color("8")
		p.navbar = lipgloss.Color("39")
	}
	if t.Name == "neon" {
		p.title = lipgloss.Color("201")
		p.accent = lipgloss.Color("51")
		p.navbar = lipgloss.Color("201")
	}
	return p
}

// styles are rebuilt whenever the theme store announces a change.
type styles struct {
	dark  bool
	theme theme.Theme

	title    lipgloss.Style
	navbar   lipgloss.Style
	success  lipgloss.Style
	pending  lipgloss.Style
	accent   lipgloss.Style
	muted    lipgloss.Style
	errorMsg lipgloss.Style
	done     lipgloss.Style
	button   lipgloss.Style
	disabled lipgloss.Style
	count    lipgloss.Style
	card     lipgloss.Style
	panel    lipgloss.Style
}

func newStyles(t theme.Theme) styles {
	p := paletteFor(t)
	border := lipgloss.RoundedBorder()
	if t.Plain {
		border = lipgloss.NormalBorder()
	}
	return styles{
		dark:  t.Dark,
		theme: t,

		title:    lipgloss.NewStyle().Bold(true).Foreground(p.title),
		navbar:   lipgloss.NewStyle().Bold(true).Foreground(p.navbar),
		success:  lipgloss.NewStyle().Foreground(p.success),
		pending:  lipgloss.NewStyle().Foreground(p.pending),
		accent:   lipgloss.NewStyle().Foreground(p.accent),
		muted:    lipgloss.NewStyle().Faint(true),
		errorMsg: lipgloss.NewStyle().Foreground(p.err).Bold(true),
		done:     lipgloss.NewStyle().Faint(true).Strikethrough(true),
		button:   lipgloss.NewStyle().Bold(true).Foreground(p.accent),
		disabled: lipgloss.NewStyle().Faint(true),
		count:    lipgloss.NewStyle().Bold(true).Padding(0, 1),
		card: lipgloss.NewStyle().
			Border(border).
			BorderForeground(p.border).
			Padding(0, 1),
		panel: lipgloss.NewStyle().
			Border(border).
			BorderForeground(p.border).
			Padding(0, 1),
	}
}
