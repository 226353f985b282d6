package theme

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// hasDarkBackground queries the terminal; swapped out in tests.
var hasDarkBackground = lipgloss.HasDarkBackground

// ResolveDark turns the configured dark mode (auto, on, off) into a flag.
// auto follows the terminal background.
func ResolveDark(mode string) (bool, error) {
	switch strings.ToLower(mode) {
	case "on", "true", "dark":
		return true, nil
	case "off", "false", "light":
		return false, nil
	case "auto", "":
		return hasDarkBackground(), nil
	}
	return false, fmt.Errorf("unknown dark mode %q (want auto, on or off)", mode)
}

// Store holds the active theme and notifies subscribers when it changes.
// Each subscriber has a one-slot mailbox that always holds the newest
// theme, so Set never blocks on a slow reader.
type Store struct {
	mu      sync.Mutex
	current Theme
	subs    map[int]chan Theme
	nextID  int
}

func NewStore(initial Theme) *Store {
	return &Store{current: initial, subs: make(map[int]chan Theme)}
}

func (s *Store) Current() Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Set replaces the theme and notifies every subscriber.
func (s *Store) Set(t Theme) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = t
	for _, ch := range s.subs {
		select {
		case <-ch:
		default:
		}
		ch <- t
	}
}

// SetDark rebuilds the current palette for a dark or light background.
func (s *Store) SetDark(dark bool) {
	s.Set(s.Current().WithDark(dark))
}

// Toggle flips between dark and light and returns the new theme.
func (s *Store) Toggle() Theme {
	cur := s.Current()
	t := cur.WithDark(!cur.Dark)
	s.Set(t)
	return t
}

// Subscribe returns a channel that receives the theme after every change.
// Call cancel to stop receiving; the channel is closed afterwards.
func (s *Store) Subscribe() (<-chan Theme, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	ch := make(chan Theme, 1)
	s.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.subs, id)
			close(ch)
		})
	}
	return ch, cancel
}
