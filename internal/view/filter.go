// Package view holds the data-view pipeline behind every rendering of the
// task list: filter, paginate, and the view state that drives both.
package view

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/idilsaglam/taskboard/internal/model"
)

// Filter returns the tasks whose title contains search, compared with
// Unicode case folding. Order is preserved. An empty search returns tasks
// unchanged.
func Filter(tasks []model.Task, search string) []model.Task {
	if search == "" {
		return tasks
	}
	fold := cases.Fold()
	needle := fold.String(search)
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if strings.Contains(fold.String(t.Title), needle) {
			out = append(out, t)
		}
	}
	return out
}
