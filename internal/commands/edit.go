package commands

import (
	"context"
	"flag"
	"io"
	"strings"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/store"
	"todo/internal/todo"
)

func init() {
	Register(&EditCmd{})
}

// EditCmd implements the edit command.
type EditCmd struct{}

func (c *EditCmd) Name() string      { return "edit" }
func (c *EditCmd) Aliases() []string { return []string{"rename"} }
func (c *EditCmd) Synopsis() string  { return "Rename a task and print the list" }
func (c *EditCmd) Usage() string     { return "todo edit <ref> [title...]" }
func (c *EditCmd) NeedsStore() bool  { return true }

func (c *EditCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *EditCmd) Run(ctx context.Context, cfg *config.Config, st *store.Store, args []string, in io.Reader, out, errOut io.Writer) int {
	var title string
	if len(args) > 1 {
		title = strings.Join(args[1:], " ")
	}

	code := applyToRef(st, args, errOut, func(t todo.Task) todo.Command {
		return todo.Edit{ID: t.ID, Title: title}
	})
	if code != exitcode.Success {
		return code
	}
	printList(cfg, st.Ordered(), out)
	return exitcode.Success
}
