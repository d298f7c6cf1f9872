// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"
	"time"

	"todo/internal/todo"
)

const (
	// ListSeparator is the separator line between open and completed tasks.
	ListSeparator = "------------"

	// EmptyMessage is printed for an empty list.
	EmptyMessage = "no tasks"
)

// FormatTask formats one task line.
// Format: "{N:>4}  [ ] {TITLE}\n", with [x] for completed tasks.
func FormatTask(w io.Writer, num int, task todo.Task) {
	fmt.Fprintf(w, "%4d  %s %s\n", num, Checkbox(task.Completed), DisplayTitle(task.Title))
}

// FormatList writes tasks numbered from 1, in the order given, with a
// separator before the first completed task. Empty lists print
// EmptyMessage unless quiet.
func FormatList(w io.Writer, tasks todo.TaskList, quiet bool) {
	if len(tasks) == 0 {
		if !quiet {
			fmt.Fprintln(w, EmptyMessage)
		}
		return
	}

	separated := false
	for i, task := range tasks {
		if task.Completed && !separated {
			if i > 0 {
				fmt.Fprintln(w, ListSeparator)
			}
			separated = true
		}
		FormatTask(w, i+1, task)
	}
}

// FormatSummary writes the open and completed counts.
func FormatSummary(w io.Writer, tasks todo.TaskList) {
	open, done := tasks.Counts()
	fmt.Fprintf(w, "%d open, %d done\n", open, done)
}

// FormatDetail writes every field of a task, one per line.
func FormatDetail(w io.Writer, task todo.Task) {
	fmt.Fprintf(w, "id:           %s\n", task.ID)
	fmt.Fprintf(w, "title:        %s\n", task.Title)
	if task.Description != "" {
		fmt.Fprintf(w, "description:  %s\n", task.Description)
	}
	fmt.Fprintf(w, "completed:    %t\n", task.Completed)
	fmt.Fprintf(w, "created:      %s\n", task.CreatedAt.Format(time.RFC3339))
	if task.CompletedAt != nil {
		fmt.Fprintf(w, "completed at: %s\n", task.CompletedAt.Format(time.RFC3339))
	}
}

// Checkbox renders a completion box.
func Checkbox(completed bool) string {
	if completed {
		return "[x]"
	}
	return "[ ]"
}

// DisplayTitle normalizes a task title for display.
// - Empty or whitespace-only titles become "(untitled)"
// - Newlines are replaced with spaces
func DisplayTitle(title string) string {
	title = strings.ReplaceAll(title, "\r", " ")
	title = strings.ReplaceAll(title, "\n", " ")

	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}
