package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/store"
	"todo/internal/tui"
)

func init() {
	Register(&TUICmd{})
}

// TUICmd runs the interactive terminal view.
type TUICmd struct {
	inline bool
}

func (c *TUICmd) Name() string      { return "tui" }
func (c *TUICmd) Aliases() []string { return []string{"ui"} }
func (c *TUICmd) Synopsis() string  { return "Edit tasks in an interactive terminal view" }
func (c *TUICmd) Usage() string     { return "todo tui [--inline]" }
func (c *TUICmd) NeedsStore() bool  { return true }

func (c *TUICmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.inline, "inline", false, "")
}

func (c *TUICmd) Run(ctx context.Context, cfg *config.Config, st *store.Store, args []string, in io.Reader, out, errOut io.Writer) int {
	opts := []tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	}
	if !c.inline {
		opts = append(opts, tea.WithAltScreen())
	}

	if _, err := tea.NewProgram(tui.New(st), opts...).Run(); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	// The alternate screen is gone after exit; leave the final list behind.
	printList(cfg, st.Ordered(), out)
	return exitcode.Success
}
