package commands

import (
	"fmt"
	"io"

	"todo/internal/exitcode"
	"todo/internal/session"
	"todo/internal/store"
	"todo/internal/todo"
)

// resolveTask finds the task referenced by args in the ordered view of st.
func resolveTask(st *store.Store, args []string) (todo.Task, error) {
	ref, err := session.ParseTaskRef(args)
	if err != nil {
		return todo.Task{}, err
	}
	return ref.Resolve(st.Ordered())
}

// applyToRef resolves the reference in args, dispatches the command built
// for that task and returns an exit code. Reference errors are user errors.
func applyToRef(st *store.Store, args []string, errOut io.Writer, build func(todo.Task) todo.Command) int {
	task, err := resolveTask(st, args)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}
	st.Dispatch(build(task))
	return exitcode.Success
}
