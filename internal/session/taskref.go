package session

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"todo/internal/todo"
)

// MinIDPrefix is the shortest ID prefix accepted as a task reference.
const MinIDPrefix = 4

// ErrTaskRefRequired indicates no task reference was provided.
var ErrTaskRefRequired = errors.New("task reference required")

// TaskRef is a parsed task reference: either a 1-based position in the
// displayed list or a task ID (or ID prefix).
type TaskRef struct {
	Num int
	ID  string

	// digits is the text of a position reference. IDs can start with
	// digits, so an out-of-range position is retried as an ID prefix.
	digits string
}

// ParseTaskRef parses the task reference in the first argument.
//
// Parsing rules:
// 1. No argument → ErrTaskRefRequired
// 2. All digits → position reference
// 3. Anything else → ID reference
func ParseTaskRef(args []string) (TaskRef, error) {
	if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
		return TaskRef{}, ErrTaskRefRequired
	}

	first := args[0]
	if isAllDigits(first) {
		num, err := strconv.Atoi(first)
		if err != nil {
			return TaskRef{}, fmt.Errorf("invalid task reference: %s", first)
		}
		return TaskRef{Num: num, digits: first}, nil
	}
	return TaskRef{ID: first}, nil
}

// Resolve finds the referenced task in view, the list as displayed.
func (r TaskRef) Resolve(view todo.TaskList) (todo.Task, error) {
	if r.ID == "" {
		if r.Num >= 1 && r.Num <= len(view) {
			return view[r.Num-1], nil
		}
		outOfRange := fmt.Errorf("task number out of range: %d", r.Num)
		if len(r.digits) < MinIDPrefix {
			return todo.Task{}, outOfRange
		}
		t, err := TaskRef{ID: r.digits}.Resolve(view)
		if err != nil {
			return todo.Task{}, outOfRange
		}
		return t, nil
	}

	if t, ok := view.Find(r.ID); ok {
		return t, nil
	}
	if len(r.ID) < MinIDPrefix {
		return todo.Task{}, fmt.Errorf("task not found: %s", r.ID)
	}

	var matches todo.TaskList
	for _, t := range view {
		if strings.HasPrefix(t.ID, r.ID) {
			matches = append(matches, t)
		}
	}
	switch len(matches) {
	case 0:
		return todo.Task{}, fmt.Errorf("task not found: %s", r.ID)
	case 1:
		return matches[0], nil
	default:
		return todo.Task{}, fmt.Errorf("ambiguous task id: %s", r.ID)
	}
}

// isAllDigits returns true if s consists only of digits and is non-empty.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
