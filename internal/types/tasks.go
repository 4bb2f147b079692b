package types

import "sort"

// Task status values. Anything else is coerced to open at render time.
const (
	StatusOpen = "open"
	StatusDone = "done"
)

// TaskMeta holds the task file format version.
type TaskMeta struct {
	Version int `json:"version"`
}

// Task is a single captured task.
type Task struct {
	Text      string `json:"text"`
	Status    string `json:"status,omitempty"`
	Note      string `json:"note,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
	DueAt     string `json:"dueAt,omitempty"`
	Owner     string `json:"owner,omitempty"`
}

// NormalizedStatus returns the task status coerced into the known set.
func (t Task) NormalizedStatus() string {
	switch t.Status {
	case StatusOpen, StatusDone:
		return t.Status
	default:
		return StatusOpen
	}
}

// TaskList is the task capture file.
type TaskList struct {
	Meta  TaskMeta `json:"meta"`
	Tasks []Task   `json:"tasks"`
}

// SortedByCreated returns a copy of the tasks sorted by CreatedAt
// descending. ISO-8601 timestamps sort correctly as strings. The source
// order is left untouched; the persisted JSON keeps it.
func (l *TaskList) SortedByCreated() []Task {
	out := make([]Task, len(l.Tasks))
	copy(out, l.Tasks)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt > out[j].CreatedAt
	})
	return out
}
