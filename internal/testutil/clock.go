package testutil

import (
	"fmt"
	"time"

	"todo/internal/todo"
)

// Epoch is the first instant returned by StepReducer's clock.
var Epoch = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

// StepReducer returns a reducer whose clock advances one minute per call,
// starting after Epoch, and whose IDs are task-1, task-2, ...
func StepReducer() todo.Reducer {
	ticks, ids := 0, 0
	return todo.Reducer{
		Now: func() time.Time {
			ticks++
			return Epoch.Add(time.Duration(ticks) * time.Minute)
		},
		NewID: func() string {
			ids++
			return fmt.Sprintf("task-%d", ids)
		},
	}
}
