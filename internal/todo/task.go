// Package todo defines the task entity and the reducer that computes the
// next task list from the current one and a command.
package todo

import "time"

// DefaultTitle is the title given to tasks created by Add.
const DefaultTitle = "New task"

// Task is a single to-do entry.
type Task struct {
	ID          string
	Title       string
	Description string // empty means absent
	Completed   bool
	CreatedAt   time.Time
	CompletedAt *time.Time // nil unless the task was completed

	// IsNew marks a task that was just created by Add so a view can open
	// its editor once. No command ever sets it back.
	IsNew bool
}

// TaskList is an ordered list of tasks with unique IDs.
type TaskList []Task

// Clone returns a copy of the list that shares no backing array with l.
func (l TaskList) Clone() TaskList {
	if l == nil {
		return nil
	}
	out := make(TaskList, len(l))
	copy(out, l)
	return out
}

// Index returns the position of the task with the given ID, or -1.
func (l TaskList) Index(id string) int {
	for i, t := range l {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// Find returns the task with the given ID.
func (l TaskList) Find(id string) (Task, bool) {
	i := l.Index(id)
	if i < 0 {
		return Task{}, false
	}
	return l[i], true
}

// IDs returns the task IDs in list order.
func (l TaskList) IDs() []string {
	ids := make([]string, len(l))
	for i, t := range l {
		ids[i] = t.ID
	}
	return ids
}

// Counts returns the number of open and completed tasks.
func (l TaskList) Counts() (open, done int) {
	for _, t := range l {
		if t.Completed {
			done++
		} else {
			open++
		}
	}
	return open, done
}
