package seed

import (
	"context"
	"time"
)

type builtinItem struct {
	title        string
	completed    bool
	hasCompleted bool
}

// The stock list. Entries 2 and 4 are completed without a completion time
// and entry 6 is open with one; both are kept as they are.
var builtinItems = []builtinItem{
	{"1. Learn Qwik", true, true},
	{"2. Learn Next.js", true, false},
	{"3. Finish ToDo App with Qwik", true, true},
	{"4. Finish ToDo App with Next.js", true, false},
	{"5. Compare ToDo App with Qwik and Next.js", false, false},
	{"6. Write a blog post about it", false, true},
	{"7. Get A+ on the 資工導論🥲", false, false},
}

// Builtin returns the stock seed list. Completion times are read from now
// when Records is called; a nil now uses time.Now.
func Builtin(now func() time.Time) Source {
	if now == nil {
		now = time.Now
	}
	return SourceFunc(func(ctx context.Context) ([]Record, error) {
		at := now()
		records := make([]Record, len(builtinItems))
		for i, item := range builtinItems {
			records[i] = Record{Title: item.title, Completed: item.completed}
			if item.hasCompleted {
				t := at
				records[i].CompletedAt = &t
			}
		}
		return records, nil
	})
}
