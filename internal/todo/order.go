package todo

import (
	"sort"
	"time"
)

// Ordered returns the list in display order: open tasks first, newest
// CreatedAt first; then completed tasks, newest CompletedAt first.
// A completed task without CompletedAt compares as the zero time and so
// sorts after every completed task that has one. Ties keep list order.
func Ordered(l TaskList) TaskList {
	open := make(TaskList, 0, len(l))
	done := make(TaskList, 0, len(l))
	for _, t := range l {
		if t.Completed {
			done = append(done, t)
		} else {
			open = append(open, t)
		}
	}

	sort.SliceStable(open, func(i, j int) bool {
		return open[i].CreatedAt.After(open[j].CreatedAt)
	})
	sort.SliceStable(done, func(i, j int) bool {
		return completedKey(done[i]).After(completedKey(done[j]))
	})

	return append(open, done...)
}

func completedKey(t Task) time.Time {
	if t.CompletedAt == nil {
		return time.Time{}
	}
	return *t.CompletedAt
}
