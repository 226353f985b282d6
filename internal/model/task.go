package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// TaskID is the server-assigned identifier of a task. It is opaque: the
// endpoint may send it as a JSON number or a JSON string.
type TaskID string

func (id *TaskID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return fmt.Errorf("task id: %w", err)
		}
		*id = TaskID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("task id: %w", err)
	}
	*id = TaskID(n.String())
	return nil
}

// Task is one todo entry as served by the remote endpoint.
// Tasks are read-only once fetched.
type Task struct {
	ID        TaskID `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// Stats counts completed and pending tasks.
func Stats(tasks []Task) (done, pending int) {
	for _, t := range tasks {
		if t.Completed {
			done++
		} else {
			pending++
		}
	}
	return
}
