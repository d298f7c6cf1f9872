package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"todo/internal/backend/googletasks"
	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/store"
)

func init() {
	Register(&ListsCmd{})
}

// ListTitler lists the titles of the remote task lists.
type ListTitler interface {
	ListTitles(ctx context.Context) ([]string, error)
}

// ListsCmd prints the Google Tasks lists that seed.google_list can name.
type ListsCmd struct {
	newClient func(ctx context.Context, cfg *config.Config) (ListTitler, error)
}

// SetClientFactory replaces the Google Tasks client (for testing).
func (c *ListsCmd) SetClientFactory(f func(ctx context.Context, cfg *config.Config) (ListTitler, error)) {
	c.newClient = f
}

func (c *ListsCmd) Name() string      { return "lists" }
func (c *ListsCmd) Aliases() []string { return nil }
func (c *ListsCmd) Synopsis() string  { return "Print the Google Tasks lists" }
func (c *ListsCmd) Usage() string     { return "todo lists" }
func (c *ListsCmd) NeedsStore() bool  { return false }

func (c *ListsCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ListsCmd) Run(ctx context.Context, cfg *config.Config, st *store.Store, args []string, in io.Reader, out, errOut io.Writer) int {
	newClient := c.newClient
	if newClient == nil {
		if !cfg.HasOAuthClient() {
			fmt.Fprintf(errOut, "error: oauth_client.json not found in %s\n", cfg.Dir)
			return exitcode.AuthError
		}
		if !cfg.HasToken() {
			fmt.Fprintln(errOut, "error: not logged in (run: todo login)")
			return exitcode.AuthError
		}
		newClient = func(ctx context.Context, cfg *config.Config) (ListTitler, error) {
			return googletasks.New(ctx, cfg, "")
		}
	}

	client, err := newClient(ctx, cfg)
	if err != nil {
		fmt.Fprintf(errOut, "error: auth error: %v\n", err)
		return exitcode.AuthError
	}

	titles, err := client.ListTitles(ctx)
	if err != nil {
		if errors.Is(err, googletasks.ErrTokenExpired) {
			fmt.Fprintf(errOut, "error: auth error: %v\n", err)
			return exitcode.AuthError
		}
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.SeedError
	}

	for _, title := range titles {
		fmt.Fprintln(out, title)
	}
	return exitcode.Success
}
