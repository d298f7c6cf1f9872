// Package session runs a line-oriented shell over a task store.
package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"todo/internal/output"
	"todo/internal/store"
	"todo/internal/todo"
)

// ErrQuit is returned by Exec for quit and exit.
var ErrQuit = errors.New("quit")

// ErrUnknownCommand is returned by Exec for an unrecognised command word.
var ErrUnknownCommand = errors.New("unknown command")

// Session reads shell lines and applies them to a store.
type Session struct {
	store  *store.Store
	out    io.Writer
	errOut io.Writer
	quiet  bool
}

// New creates a session over st. Results go to out and per-line errors to
// errOut; quiet suppresses "ok" acknowledgements.
func New(st *store.Store, out, errOut io.Writer, quiet bool) *Session {
	return &Session{store: st, out: out, errOut: errOut, quiet: quiet}
}

// Run executes lines from in until EOF, quit or ctx is done. A failing
// line is reported as "error: ..." and the session continues. It returns
// the number of failed lines and any read or context error.
func (s *Session) Run(ctx context.Context, in io.Reader) (int, error) {
	failed := 0
	// bufio.Reader rather than Scanner: a line has no length limit.
	r := bufio.NewReader(in)
	for {
		line, readErr := r.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return failed, readErr
		}
		if line == "" && readErr != nil {
			return failed, nil
		}
		if err := ctx.Err(); err != nil {
			return failed, err
		}

		err := s.Exec(line)
		if errors.Is(err, ErrQuit) {
			return failed, nil
		}
		if err != nil {
			fmt.Fprintf(s.errOut, "error: %v\n", err)
			failed++
		}
		if readErr != nil {
			return failed, nil
		}
	}
}

// Exec executes one shell line. Blank lines and lines starting with #
// are ignored.
func (s *Session) Exec(line string) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}

	fields := strings.Fields(line)
	name, args := strings.ToLower(fields[0]), fields[1:]

	switch name {
	case "add", "new":
		s.store.Dispatch(todo.Add{})
		s.ok()
		return nil
	case "rm", "remove", "delete":
		return s.withTask(args, func(t todo.Task) todo.Command {
			return todo.Remove{ID: t.ID}
		})
	case "edit", "rename":
		// The title is the rest of the line after the reference, so inner
		// spacing is kept.
		title := restAfter(line, 2)
		return s.withTask(args, func(t todo.Task) todo.Command {
			return todo.Edit{ID: t.ID, Title: title}
		})
	case "done", "check":
		return s.withTask(args, func(t todo.Task) todo.Command {
			return todo.Toggle{ID: t.ID, Completed: true}
		})
	case "reopen", "uncheck":
		return s.withTask(args, func(t todo.Task) todo.Command {
			return todo.Toggle{ID: t.ID, Completed: false}
		})
	case "list", "ls":
		output.FormatList(s.out, s.store.Ordered(), s.quiet)
		return nil
	case "show":
		return s.show(args)
	case "help", "?":
		fmt.Fprint(s.out, HelpText)
		return nil
	case "quit", "exit", "q":
		return ErrQuit
	default:
		return fmt.Errorf("%w: %s", ErrUnknownCommand, fields[0])
	}
}

// withTask resolves the reference in args against the displayed list and
// dispatches the command built for that task.
func (s *Session) withTask(args []string, build func(todo.Task) todo.Command) error {
	ref, err := ParseTaskRef(args)
	if err != nil {
		return err
	}
	task, err := ref.Resolve(s.store.Ordered())
	if err != nil {
		return err
	}
	s.store.Dispatch(build(task))
	s.ok()
	return nil
}

// show prints every field of one task.
func (s *Session) show(args []string) error {
	ref, err := ParseTaskRef(args)
	if err != nil {
		return err
	}
	task, err := ref.Resolve(s.store.Ordered())
	if err != nil {
		return err
	}
	output.FormatDetail(s.out, task)
	return nil
}

func (s *Session) ok() {
	if !s.quiet {
		fmt.Fprintln(s.out, "ok")
	}
}

// restAfter returns line with its first n whitespace-separated fields
// removed.
func restAfter(line string, n int) string {
	rest := strings.TrimSpace(line)
	for i := 0; i < n; i++ {
		idx := strings.IndexFunc(rest, isSpace)
		if idx < 0 {
			return ""
		}
		rest = strings.TrimLeftFunc(rest[idx:], isSpace)
	}
	return rest
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t'
}

// HelpText lists the shell commands.
const HelpText = `Commands:
  add                    Add a task titled "New task"
  edit <ref> <title...>  Rename a task
  done <ref>             Mark a task completed
  reopen <ref>           Mark a task open
  rm <ref>               Delete a task
  show <ref>             Print a task's details
  list                   List tasks
  help                   Print this help
  quit                   End the session

<ref> is a number from the list or a task id (or a prefix of at least 4 characters).
`
