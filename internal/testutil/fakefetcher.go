// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"fmt"
	"sync"

	"github.com/idilsaglam/taskboard/internal/fetch"
	"github.com/idilsaglam/taskboard/internal/model"
)

// FakeFetcher serves a fixed collection, or fails with ErrUnavailable when
// Err is set, and counts calls.
type FakeFetcher struct {
	mu    sync.Mutex
	Tasks []model.Task
	Err   error
	calls int
}

func NewFakeFetcher(tasks ...model.Task) *FakeFetcher {
	return &FakeFetcher{Tasks: tasks}
}

func (f *FakeFetcher) Fetch(ctx context.Context) ([]model.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.Err != nil {
		return []model.Task{}, fmt.Errorf("%w: %w", fetch.ErrUnavailable, f.Err)
	}
	out := make([]model.Task, len(f.Tasks))
	copy(out, f.Tasks)
	return out, nil
}

// Calls reports how many times Fetch ran.
func (f *FakeFetcher) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// Numbered builds n tasks titled "Task 1".."Task n" with ids "1".."n".
func Numbered(n int) []model.Task {
	out := make([]model.Task, n)
	for i := range out {
		out[i] = model.Task{
			ID:    model.TaskID(fmt.Sprint(i + 1)),
			Title: fmt.Sprintf("Task %d", i+1),
		}
	}
	return out
}
