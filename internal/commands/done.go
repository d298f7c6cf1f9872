package commands

import (
	"context"
	"flag"
	"io"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/store"
	"todo/internal/todo"
)

func init() {
	Register(&DoneCmd{})
	Register(&ReopenCmd{})
}

// DoneCmd implements the done command.
type DoneCmd struct{}

func (c *DoneCmd) Name() string      { return "done" }
func (c *DoneCmd) Aliases() []string { return []string{"check"} }
func (c *DoneCmd) Synopsis() string  { return "Mark a task completed and print the list" }
func (c *DoneCmd) Usage() string     { return "todo done <ref>" }
func (c *DoneCmd) NeedsStore() bool  { return true }

func (c *DoneCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DoneCmd) Run(ctx context.Context, cfg *config.Config, st *store.Store, args []string, in io.Reader, out, errOut io.Writer) int {
	return runToggle(cfg, st, args, true, out, errOut)
}

// ReopenCmd marks a task open again.
type ReopenCmd struct{}

func (c *ReopenCmd) Name() string      { return "reopen" }
func (c *ReopenCmd) Aliases() []string { return []string{"uncheck"} }
func (c *ReopenCmd) Synopsis() string  { return "Mark a task open and print the list" }
func (c *ReopenCmd) Usage() string     { return "todo reopen <ref>" }
func (c *ReopenCmd) NeedsStore() bool  { return true }

func (c *ReopenCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ReopenCmd) Run(ctx context.Context, cfg *config.Config, st *store.Store, args []string, in io.Reader, out, errOut io.Writer) int {
	return runToggle(cfg, st, args, false, out, errOut)
}

// runToggle is the shared implementation for done and reopen.
func runToggle(cfg *config.Config, st *store.Store, args []string, completed bool, out, errOut io.Writer) int {
	code := applyToRef(st, args, errOut, func(t todo.Task) todo.Command {
		return todo.Toggle{ID: t.ID, Completed: completed}
	})
	if code != exitcode.Success {
		return code
	}
	printList(cfg, st.Ordered(), out)
	return exitcode.Success
}
