package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/output"
	"todo/internal/store"
	"todo/internal/todo"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command.
// Handles both `todo` (no args) and `todo list`.
type ListCmd struct {
	openOnly bool
}

// SetOpenOnly sets the --open flag (for testing).
func (c *ListCmd) SetOpenOnly(open bool) {
	c.openOnly = open
}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"ls"} }
func (c *ListCmd) Synopsis() string  { return "List tasks" }
func (c *ListCmd) Usage() string     { return "todo list [--open]" }
func (c *ListCmd) NeedsStore() bool  { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.openOnly, "open", false, "")
}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, st *store.Store, args []string, in io.Reader, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	view := st.Ordered()
	if c.openOnly {
		open := make(todo.TaskList, 0, len(view))
		for _, t := range view {
			if !t.Completed {
				open = append(open, t)
			}
		}
		view = open
	}

	printList(cfg, view, out)
	return exitcode.Success
}

// printList writes the list and, unless quiet, its summary line.
func printList(cfg *config.Config, view todo.TaskList, out io.Writer) {
	output.FormatList(out, view, cfg.Quiet)
	if len(view) > 0 && !cfg.Quiet {
		output.FormatSummary(out, view)
	}
}
