package view

import "github.com/idilsaglam/taskboard/internal/model"

// Phase is where the view is in its one-shot load.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseReady
	PhaseError
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseReady:
		return "ready"
	case PhaseError:
		return "error"
	}
	return "unknown"
}

// State owns the fetched collection plus the search term and page index
// that select what is rendered. The zero value is not usable; call NewState.
//
// Recomputation is explicit: every mutator leaves the memo stale and
// Current rebuilds it only when (version, search, page) moved.
type State struct {
	phase   Phase
	tasks   []model.Task
	err     error
	version uint64
	search  string
	page    int

	memo     memo
	computes int
}

type memo struct {
	valid   bool
	version uint64
	search  string
	page    int
	result  Page
}

func NewState() State {
	return State{phase: PhaseLoading, page: 1, tasks: []model.Task{}}
}

func (s *State) Phase() Phase { return s.phase }
func (s *State) Err() error { return s.err }
func (s *State) Search() string { return s.search }
func (s *State) PageIndex() int { return s.page }
func (s *State) Tasks() []model.Task { return s.tasks }

// Resolve records the outcome of the fetch. Only the first call counts;
// there is no transition back to loading. A non-nil err moves to
// PhaseError and empties the collection regardless of tasks.
func (s *State) Resolve(tasks []model.Task, err error) bool {
	if s.phase != PhaseLoading {
		return false
	}
	if err != nil {
		s.phase, s.err, s.tasks = PhaseError, err, []model.Task{}
	} else {
		if tasks == nil {
			tasks = []model.Task{}
		}
		s.phase, s.tasks = PhaseReady, tasks
	}
	s.version++
	return true
}

// SetSearch replaces the search term and always resets to page 1.
func (s *State) SetSearch(q string) {
	s.search = q
	s.page = 1
}

func (s *State) PrevPage() {
	s.page = Prev(s.page)
}

func (s *State) NextPage() {
	s.page = Next(s.page, s.Current().Total)
}

// SetPage jumps to page n, clamped into the valid range.
func (s *State) SetPage(n int) {
	s.page = Clamp(n, s.Current().Total)
}

// Current returns the page selected by the current inputs.
func (s *State) Current() Page {
	m := &s.memo
	if m.valid && m.version == s.version && m.search == s.search && m.page == s.page {
		return m.result
	}
	s.computes++
	filtered := Filter(s.tasks, s.search)
	*m = memo{
		valid:   true,
		version: s.version,
		search:  s.search,
		page:    s.page,
		result:  Paginate(filtered, s.page, PageSize),
	}
	return m.result
}
