package todo

import (
	"time"

	"github.com/google/uuid"
)

// Reducer computes the next task list from the current one and a command.
// Now and NewID are the only sources of time and identity.
type Reducer struct {
	Now   func() time.Time
	NewID func() string
}

// DefaultReducer returns a Reducer backed by the wall clock and random UUIDs.
func DefaultReducer() Reducer {
	return Reducer{
		Now:   time.Now,
		NewID: uuid.NewString,
	}
}

// Apply returns the list that results from applying cmd to state.
// It never modifies state. Commands naming an ID that is not in state
// return an equal list; commands Apply does not recognise return state.
func (r Reducer) Apply(state TaskList, cmd Command) TaskList {
	switch c := cmd.(type) {
	case Add:
		return r.add(state)
	case Remove:
		return remove(state, c.ID)
	case Edit:
		return update(state, c.ID, func(t *Task) {
			t.Title = c.Title
		})
	case Toggle:
		return update(state, c.ID, func(t *Task) {
			t.Completed = c.Completed
			if c.Completed {
				now := r.now()
				t.CompletedAt = &now
			} else {
				t.CompletedAt = nil
			}
		})
	default:
		return state
	}
}

func (r Reducer) add(state TaskList) TaskList {
	next := make(TaskList, len(state), len(state)+1)
	copy(next, state)
	return append(next, Task{
		ID:        r.freshID(state),
		Title:     DefaultTitle,
		Completed: false,
		CreatedAt: r.now(),
		IsNew:     true,
	})
}

func remove(state TaskList, id string) TaskList {
	i := state.Index(id)
	if i < 0 {
		return state.Clone()
	}
	next := make(TaskList, 0, len(state)-1)
	next = append(next, state[:i]...)
	return append(next, state[i+1:]...)
}

// update copies state and applies fn to the copy of the task matching id.
func update(state TaskList, id string, fn func(*Task)) TaskList {
	next := state.Clone()
	if i := next.Index(id); i >= 0 {
		fn(&next[i])
	}
	return next
}

// freshID draws IDs until one is not already used in state.
func (r Reducer) freshID(state TaskList) string {
	newID := r.NewID
	if newID == nil {
		newID = uuid.NewString
	}
	for {
		id := newID()
		if id != "" && state.Index(id) < 0 {
			return id
		}
	}
}

func (r Reducer) now() time.Time {
	if r.Now == nil {
		return time.Now()
	}
	return r.Now()
}
