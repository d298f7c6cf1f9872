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
	Register(&AddCmd{})
}

// AddCmd implements the add command. Nothing is persisted: the command
// adds to the seeded list and prints the result.
type AddCmd struct{}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return []string{"create"} }
func (c *AddCmd) Synopsis() string  { return "Add a task and print the list" }
func (c *AddCmd) Usage() string     { return "todo add [title...]" }
func (c *AddCmd) NeedsStore() bool  { return true }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, st *store.Store, args []string, in io.Reader, out, errOut io.Writer) int {
	list := st.Dispatch(todo.Add{})

	// Without a title the task keeps the default one.
	if len(args) > 0 {
		added := list[len(list)-1]
		st.Dispatch(todo.Edit{ID: added.ID, Title: strings.Join(args, " ")})
	}

	printList(cfg, st.Ordered(), out)
	return exitcode.Success
}
