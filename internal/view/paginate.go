package view

import "github.com/idilsaglam/taskboard/internal/model"

// PageSize is the number of tasks shown per page.
const PageSize = 5

// Page is one contiguous slice of the filtered collection.
type Page struct {
	Items   []model.Task
	Number  int // 1-based
	Total   int // total pages; 0 when nothing matched
	Matches int // length of the filtered collection
}

func (p Page) HasPrev() bool { return p.Number > 1 }
func (p Page) HasNext() bool { return p.Number < p.Total }

// ShowControls reports whether prev/next controls are worth rendering.
func (p Page) ShowControls() bool { return p.Total > 1 }

// TotalPages is ceil(n/size).
func TotalPages(n, size int) int {
	if n <= 0 || size <= 0 {
		return 0
	}
	return (n + size - 1) / size
}

// Paginate returns the 1-based page of tasks. Pages outside [1, total]
// come back empty.
func Paginate(tasks []model.Task, page, size int) Page {
	p := Page{
		Number:  page,
		Total:   TotalPages(len(tasks), size),
		Matches: len(tasks),
	}
	if page < 1 || page > p.Total {
		p.Items = []model.Task{}
		return p
	}
	start := (page - 1) * size
	end := min(start+size, len(tasks))
	p.Items = tasks[start:end:end]
	return p
}

// Prev moves one page back, never below 1.
func Prev(page int) int {
	return max(1, page-1)
}

// Next moves one page forward, never past total. With no pages there is
// nowhere to go and the index stays at 1.
func Next(page, total int) int {
	if total < 1 {
		return 1
	}
	return min(total, page+1)
}

// Clamp pulls page into [1, max(total, 1)].
func Clamp(page, total int) int {
	return min(max(page, 1), max(total, 1))
}
