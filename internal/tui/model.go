// Package tui is the interactive task board: a counter, a searchable and
// paginated view of the fetched todos, and a theme toggle.
package tui

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/mattn/go-runewidth"

	"github.com/idilsaglam/taskboard/internal/model"
	"github.com/idilsaglam/taskboard/internal/theme"
	"github.com/idilsaglam/taskboard/internal/view"
)

const maxTitleWidth = 80

// Fetcher loads the todo collection once.
type Fetcher interface {
	Fetch(ctx context.Context) ([]model.Task, error)
}

// fetchedMsg carries the one fetch result into Update.
type fetchedMsg struct {
	tasks []model.Task
	err   error
}

// themeMsg is delivered by the theme store subscription.
type themeMsg struct {
	theme theme.Theme
	ok    bool
}

// Model implements tea.Model for the board.
type Model struct {
	ctx         context.Context
	fetcher     Fetcher
	themes      *theme.Store
	themeCh     <-chan theme.Theme
	unsubscribe func()
	logger      *log.Logger
	now         func() time.Time

	state view.State
	page  view.Page

	count   int
	search  textinput.Model
	spinner spinner.Model
	pager   paginator.Model
	help    help.Model
	keys    keyMap
	styles  styles
}

// Option tweaks a Model before the program starts.
type Option func(*Model)

// WithLogger routes UI events to l.
func WithLogger(l *log.Logger) Option {
	return func(m *Model) { m.logger = l }
}

// WithClock fixes the clock used for the footer year.
func WithClock(now func() time.Time) Option {
	return func(m *Model) { m.now = now }
}

// New builds the board. It subscribes to themes; call Close once the
// program has exited.
func New(ctx context.Context, f Fetcher, themes *theme.Store, opts ...Option) Model {
	ch, cancel := themes.Subscribe()
	m := Model{
		ctx:         ctx,
		fetcher:     f,
		themes:      themes,
		themeCh:     ch,
		unsubscribe: cancel,
		logger:      log.New(io.Discard),
		now:         time.Now,
		state:       view.NewState(),
		keys:        defaultKeys(),
		styles:      newStyles(themes.Current()),
		help:        help.New(),
		spinner:     spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
	for _, opt := range opts {
		opt(&m)
	}

	m.search = textinput.New()
	m.search.Prompt = "/ "
	m.search.Placeholder = "Search todos..."
	m.search.CharLimit = 200

	m.pager = paginator.New()
	m.pager.Type = paginator.Dots
	m.applyStyles()
	m.recompute()
	return m
}

// Close drops the theme subscription.
func (m Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
}

func (m Model) fetchCmd() tea.Cmd {
	f, ctx := m.fetcher, m.ctx
	return func() tea.Msg {
		tasks, err := f.Fetch(ctx)
		return fetchedMsg{tasks: tasks, err: err}
	}
}

func waitTheme(ch <-chan theme.Theme) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		t, ok := <-ch
		return themeMsg{theme: t, ok: ok}
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.fetchCmd(), m.spinner.Tick, waitTheme(m.themeCh))
}

// recompute refreshes the visible page after an input event.
func (m *Model) recompute() {
	m.page = m.state.Current()
	m.pager.TotalPages = max(m.page.Total, 1)
	m.pager.Page = max(m.page.Number-1, 0)
}

func (m *Model) applyStyles() {
	s := m.styles
	m.spinner.Style = s.accent
	m.pager.ActiveDot = s.accent.Render("•")
	m.pager.InactiveDot = s.muted.Render("•")
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case fetchedMsg:
		if m.state.Resolve(msg.tasks, msg.err) {
			m.logger.Debug("todos resolved", "phase", m.state.Phase(), "count", len(m.state.Tasks()))
		}
		m.recompute()
		return m, nil

	case themeMsg:
		if !msg.ok {
			return m, nil
		}
		m.styles = newStyles(msg.theme)
		m.applyStyles()
		return m, waitTheme(m.themeCh)

	case spinner.TickMsg:
		if m.state.Phase() != view.PhaseLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		m.search.Width = max(10, msg.Width-12)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		if m.search.Focused() {
			return m.updateSearch(msg)
		}
		return m.updateBoard(msg)
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Blur) {
		m.search.Blur()
		return m, nil
	}
	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if v := m.search.Value(); v != before {
		m.state.SetSearch(v)
		m.recompute()
	}
	return m, cmd
}

func (m Model) updateBoard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Search):
		cmd := m.search.Focus()
		return m, cmd
	case key.Matches(msg, m.keys.Prev):
		m.state.PrevPage()
		m.recompute()
	case key.Matches(msg, m.keys.Next):
		m.state.NextPage()
		m.recompute()
	case key.Matches(msg, m.keys.Inc):
		m.count++
	case key.Matches(msg, m.keys.Dec):
		m.count--
	case key.Matches(msg, m.keys.Theme):
		t := m.themes.Toggle()
		m.logger.Debug("theme toggled", "name", t.Name, "dark", t.Dark)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m Model) View() string {
	s := m.styles
	sections := []string{
		s.navbar.Render("Task Manager App"),
		m.counterView(),
		s.card.Render(m.apiView()),
		s.muted.Render(fmt.Sprintf("© %d Task Manager. All rights reserved.", m.now().Year())),
		m.help.View(m.keys),
	}
	return s.panel.Render(strings.Join(sections, "\n\n"))
}

func (m Model) counterView() string {
	s := m.styles
	return lipgloss.JoinHorizontal(lipgloss.Center,
		s.errorMsg.Render("[–]"),
		s.count.Render(fmt.Sprint(m.count)),
		s.success.Render("[+]"),
	)
}

func (m Model) apiView() string {
	s := m.styles
	lines := []string{
		s.title.Render("API Data"),
		s.muted.Render("Fetch and display data from an API here."),
		"",
		m.search.View(),
		"",
	}
	switch m.state.Phase() {
	case view.PhaseLoading:
		lines = append(lines, m.spinner.View()+" Loading API data...")
	case view.PhaseError:
		lines = append(lines, s.errorMsg.Render("Failed to fetch API data."))
	default:
		lines = append(lines, m.itemLines()...)
		if m.page.ShowControls() {
			lines = append(lines, "", m.controlsView(), m.pager.View())
		}
	}
	return strings.Join(lines, "\n")
}

func (m Model) itemLines() []string {
	s := m.styles
	if len(m.page.Items) == 0 {
		return []string{s.muted.Render("No API todos found")}
	}
	out := make([]string, 0, len(m.page.Items))
	for _, it := range m.page.Items {
		title := runewidth.Truncate(it.Title, maxTitleWidth, "...")
		box := s.muted.Render(s.theme.BoxUnchecked)
		if it.Completed {
			box = s.success.Render(s.theme.BoxChecked)
			title = s.done.Render(title) + " (done)"
		}
		out = append(out, box+" "+title)
	}
	return out
}

func (m Model) controlsView() string {
	s := m.styles
	prev, next := s.button.Render("‹ Prev"), s.button.Render("Next ›")
	if !m.page.HasPrev() {
		prev = s.disabled.Render("‹ Prev")
	}
	if !m.page.HasNext() {
		next = s.disabled.Render("Next ›")
	}
	return fmt.Sprintf("%s  Page %d of %d  %s", prev, m.page.Number, m.page.Total, next)
}

// Run starts the board on the alternate screen and blocks until quit.
func Run(ctx context.Context, f Fetcher, themes *theme.Store, opts []Option, progOpts ...tea.ProgramOption) error {
	m := New(ctx, f, themes, opts...)
	defer m.Close()

	progOpts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, progOpts...)
	p := tea.NewProgram(m, progOpts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
