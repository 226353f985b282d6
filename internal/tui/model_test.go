package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/taskboard/internal/model"
	"github.com/idilsaglam/taskboard/internal/testutil"
	"github.com/idilsaglam/taskboard/internal/theme"
	"github.com/idilsaglam/taskboard/internal/view"
)

func newTestModel(t *testing.T, f Fetcher) (Model, *theme.Store) {
	t.Helper()
	th, err := theme.New("mono", false)
	if err != nil {
		t.Fatal(err)
	}
	store := theme.NewStore(th)
	clock := func() time.Time { return time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC) }
	m := New(context.Background(), f, store, WithClock(clock))
	t.Cleanup(m.Close)
	return m, store
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

// loaded runs the fetch command and feeds its result back in.
func loaded(t *testing.T, f Fetcher) Model {
	t.Helper()
	m, _ := newTestModel(t, f)
	msg := m.fetchCmd()()
	m, _ = update(t, m, msg)
	return m
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "left":
			msg = tea.KeyMsg{Type: tea.KeyLeft}
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "backspace":
			msg = tea.KeyMsg{Type: tea.KeyBackspace}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		m, _ = update(t, m, msg)
	}
	return m
}

func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		m = press(t, m, string(r))
	}
	return m
}

func assertContains(t *testing.T, out string, want ...string) {
	t.Helper()
	for _, w := range want {
		if !strings.Contains(out, w) {
			t.Errorf("view missing %q:\n%s", w, out)
		}
	}
}

func assertMissing(t *testing.T, out string, unwanted ...string) {
	t.Helper()
	for _, w := range unwanted {
		if strings.Contains(out, w) {
			t.Errorf("view should not contain %q:\n%s", w, out)
		}
	}
}

var milkAndHouse = []model.Task{
	{ID: "1", Title: "Buy milk"},
	{ID: "2", Title: "Clean house", Completed: true},
}

func TestLoadingView(t *testing.T) {
	m, _ := newTestModel(t, testutil.NewFakeFetcher())
	assertContains(t, m.View(), "Loading API data...", "Task Manager App", "© 2026 Task Manager")
}

func TestFetchRunsOnce(t *testing.T) {
	f := testutil.NewFakeFetcher(milkAndHouse...)
	m := loaded(t, f)
	if f.Calls() != 1 {
		t.Errorf("fetch calls: got %d, want 1", f.Calls())
	}
	// A stray second result must not reset the view.
	m, _ = update(t, m, fetchedMsg{err: errors.New("late")})
	if m.state.Phase() != view.PhaseReady {
		t.Errorf("phase after second result: got %v", m.state.Phase())
	}
}

func TestSearchScenario(t *testing.T) {
	m := loaded(t, testutil.NewFakeFetcher(milkAndHouse...))

	out := m.View()
	assertContains(t, out, "Buy milk", "Clean house", "(done)")
	assertMissing(t, out, "Page 1 of 1", "Loading")

	m = press(t, m, "/")
	m = typeText(t, m, "milk")
	out = m.View()
	assertContains(t, out, "Buy milk")
	assertMissing(t, out, "Clean house")

	m = press(t, m, "backspace", "backspace", "backspace", "backspace")
	m = typeText(t, m, "zzz")
	assertContains(t, m.View(), "No API todos found")
}

func TestPagingScenario(t *testing.T) {
	m := loaded(t, testutil.NewFakeFetcher(testutil.Numbered(12)...))

	out := m.View()
	assertContains(t, out, "Page 1 of 3", "Task 1", "Task 5")
	assertMissing(t, out, "Task 6")

	m = press(t, m, "right", "l")
	out = m.View()
	assertContains(t, out, "Page 3 of 3", "Task 11", "Task 12")
	assertMissing(t, out, "Task 10")

	m = press(t, m, "right")
	if m.page.Number != 3 {
		t.Errorf("next from last page: got page %d", m.page.Number)
	}
	if m.page.HasNext() {
		t.Error("next should be disabled on the last page")
	}

	m = press(t, m, "left", "h", "left")
	if m.page.Number != 1 {
		t.Errorf("prev clamp: got page %d", m.page.Number)
	}
}

func TestErrorScenario(t *testing.T) {
	f := testutil.NewFakeFetcher(testutil.Numbered(12)...)
	f.Err = errors.New("connection refused")
	m := loaded(t, f)

	if m.state.Phase() != view.PhaseError {
		t.Fatalf("phase: got %v, want error", m.state.Phase())
	}
	out := m.View()
	assertContains(t, out, "Failed to fetch API data.")
	assertMissing(t, out, "Page ", "Task 1", "No API todos found")

	m = press(t, m, "right")
	if m.page.Number != 1 || m.page.Total != 0 {
		t.Errorf("navigation in error: page %d of %d", m.page.Number, m.page.Total)
	}
}

func TestSearchResetsToFirstPage(t *testing.T) {
	m := loaded(t, testutil.NewFakeFetcher(testutil.Numbered(30)...))
	m = press(t, m, "right", "right", "right")
	if m.page.Number != 4 {
		t.Fatalf("setup: on page %d", m.page.Number)
	}
	m = press(t, m, "/")
	m = typeText(t, m, "T")
	if m.page.Number != 1 {
		t.Errorf("page after search: got %d, want 1", m.page.Number)
	}
}

func TestSearchFocusSwallowsShortcuts(t *testing.T) {
	m := loaded(t, testutil.NewFakeFetcher(milkAndHouse...))
	m = press(t, m, "/")
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd != nil {
		if _, quit := cmd().(tea.QuitMsg); quit {
			t.Fatal("q quit while typing a search")
		}
	}
	if m.search.Value() != "q" {
		t.Errorf("search value: got %q, want q", m.search.Value())
	}
	m = press(t, m, "+")
	if m.count != 0 {
		t.Errorf("counter moved while typing: %d", m.count)
	}

	m = press(t, m, "esc")
	if m.search.Focused() {
		t.Fatal("esc did not leave the search field")
	}
	if m.search.Value() != "q+" {
		t.Errorf("search value after esc: got %q", m.search.Value())
	}
}

func TestCounter(t *testing.T) {
	m := loaded(t, testutil.NewFakeFetcher())
	m = press(t, m, "+", "+", "+", "-")
	if m.count != 2 {
		t.Errorf("count: got %d, want 2", m.count)
	}
	m = press(t, m, "-", "-", "-")
	if m.count != -1 {
		t.Errorf("count can go negative: got %d, want -1", m.count)
	}
}

func TestQuit(t *testing.T) {
	m := loaded(t, testutil.NewFakeFetcher())
	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("q")},
		{Type: tea.KeyCtrlC},
	} {
		_, cmd := update(t, m, msg)
		if cmd == nil {
			t.Fatalf("%s: no command", msg)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s: expected quit", msg)
		}
	}
}

func TestThemeToggleFlowsThroughSubscription(t *testing.T) {
	m, store := newTestModel(t, testutil.NewFakeFetcher())
	if m.styles.dark {
		t.Fatal("setup: expected light styles")
	}
	m = press(t, m, "t")
	if !store.Current().Dark {
		t.Fatal("store not toggled")
	}
	if m.styles.dark {
		t.Fatal("styles changed before the notification arrived")
	}

	msg := waitTheme(m.themeCh)()
	m, cmd := update(t, m, msg)
	if !m.styles.dark {
		t.Error("styles not rebuilt from the notification")
	}
	if cmd == nil {
		t.Error("subscription was not re-armed")
	}
}

func TestThemeChannelClosedOnClose(t *testing.T) {
	m, _ := newTestModel(t, testutil.NewFakeFetcher())
	m.Close()
	msg := waitTheme(m.themeCh)()
	tm, ok := msg.(themeMsg)
	if !ok || tm.ok {
		t.Fatalf("got %#v, want closed notification", msg)
	}
	_, cmd := update(t, m, msg)
	if cmd != nil {
		t.Error("closed subscription should not be re-armed")
	}
}

func TestLongTitlesAreTruncated(t *testing.T) {
	long := strings.Repeat("x", 120)
	m := loaded(t, testutil.NewFakeFetcher(model.Task{ID: "1", Title: long}))
	out := m.View()
	assertMissing(t, out, long)
	assertContains(t, out, strings.Repeat("x", 10)+"...")
}
