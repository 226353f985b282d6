package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Search    key.Binding
	Blur      key.Binding
	Prev      key.Binding
	Next      key.Binding
	Inc       key.Binding
	Dec       key.Binding
	Theme     key.Binding
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Search:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Blur:      key.NewBinding(key.WithKeys("esc", "enter"), key.WithHelp("esc", "done searching")),
		Prev:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev page")),
		Next:      key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next page")),
		Inc:       key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "increase")),
		Dec:       key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "decrease")),
		Theme:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "toggle theme")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// ShortHelp and FullHelp implement help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Prev, k.Next, k.Theme, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Search, k.Blur},
		{k.Prev, k.Next},
		{k.Inc, k.Dec},
		{k.Theme, k.Help, k.Quit},
	}
}
