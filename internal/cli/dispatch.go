// Package cli parses the command line and runs the selected command.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"todo/internal/backend/googletasks"
	"todo/internal/commands"
	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/logging"
	"todo/internal/seed"
	"todo/internal/store"
	"todo/internal/todo"
)

// SourceFactory creates the seed source for cfg.
// Used to inject the initial task list during dispatch.
type SourceFactory func(ctx context.Context, cfg *config.Config) (seed.Source, error)

// Dispatcher handles command-line parsing and dispatch.
type Dispatcher struct {
	registry *commands.Registry
	factory  SourceFactory
	reducer  todo.Reducer
}

// NewDispatcher creates a new dispatcher with the given registry and source
// factory. A nil factory uses DefaultSourceFactory.
func NewDispatcher(registry *commands.Registry, factory SourceFactory) *Dispatcher {
	if factory == nil {
		factory = DefaultSourceFactory
	}
	return &Dispatcher{
		registry: registry,
		factory:  factory,
		reducer:  todo.DefaultReducer(),
	}
}

// SetReducer sets the reducer used for seeding and by the store (for testing).
func (d *Dispatcher) SetReducer(r todo.Reducer) {
	d.reducer = r
}

// Run parses arguments and dispatches to the appropriate command.
// Returns the exit code.
func (d *Dispatcher) Run(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) int {
	// No args -> dispatch to "list" command with no args
	if len(args) == 0 {
		return d.dispatch(ctx, "list", nil, in, out, errOut)
	}

	cmdName := args[0]

	// Flags require a command
	if strings.HasPrefix(cmdName, "-") {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}

	return d.dispatch(ctx, cmdName, args[1:], in, out, errOut)
}

func (d *Dispatcher) dispatch(ctx context.Context, cmdName string, args []string, in io.Reader, out, errOut io.Writer) int {
	cmd, ok := d.registry.Find(cmdName)
	if !ok {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}
	return d.dispatchCommand(ctx, cmd, args, in, out, errOut)
}

func (d *Dispatcher) dispatchCommand(ctx context.Context, cmd commands.Command, args []string, in io.Reader, out, errOut io.Writer) int {
	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard) // We handle errors ourselves

	// Common flags
	var (
		configDir  string
		quiet      bool
		debug      bool
		seedSource string
		seedFile   string
	)

	fs.StringVar(&configDir, "config", "", "")
	fs.BoolVar(&quiet, "quiet", false, "")
	fs.BoolVar(&debug, "debug", false, "")
	fs.StringVar(&seedSource, "seed", "", "")
	fs.StringVar(&seedFile, "seed-file", "", "")

	cmd.RegisterFlags(fs)

	if err := fs.Parse(args); err != nil {
		return reportFlagError(err, errOut)
	}

	// A positional arg starting with - should have been parsed as a flag
	positionalArgs := fs.Args()
	if len(positionalArgs) > 0 && strings.HasPrefix(positionalArgs[0], "-") {
		fmt.Fprintf(errOut, "error: unknown flag: %s\n", positionalArgs[0])
		return exitcode.UserError
	}

	cfg, err := config.Load(configDir)
	if err != nil {
		fmt.Fprintf(errOut, "error: config error: %s\n", err)
		return exitcode.AuthError
	}
	cfg.Quiet = quiet
	cfg.Debug = debug
	if seedFile != "" {
		// A path given on the command line is relative to the working
		// directory, not the config directory.
		abs, err := filepath.Abs(seedFile)
		if err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.UserError
		}
		cfg.SeedFile = abs
		cfg.SeedSource = seed.KindFile
	}
	if seedSource != "" {
		cfg.SeedSource = seedSource
	}

	level := logging.ParseLevel(cfg.LogLevel)
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := logging.New(errOut, level, cfg.LogFormat)

	var st *store.Store
	if cmd.NeedsStore() {
		var code int
		st, code = d.openStore(ctx, cfg, logger, errOut)
		if st == nil {
			return code
		}
	}

	return cmd.Run(ctx, cfg, st, positionalArgs, in, out, errOut)
}

// openStore seeds a store from the configured source. On failure it
// reports the error and returns a nil store with the exit code.
func (d *Dispatcher) openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger, errOut io.Writer) (*store.Store, int) {
	if err := seed.ValidateKind(cfg.SeedSource); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return nil, exitcode.UserError
	}

	src, err := d.factory(ctx, cfg)
	if err != nil {
		return nil, reportSeedError(err, errOut)
	}

	items, err := seed.Load(ctx, src, d.reducer)
	if err != nil {
		return nil, reportSeedError(err, errOut)
	}
	logger.Info("seeded task list", "source", seed.NormalizeKind(cfg.SeedSource), "tasks", len(items))

	return store.New(items, store.WithReducer(d.reducer), store.WithLogger(logger)), exitcode.Success
}

// reportSeedError prints a seeding error and maps it to an exit code.
func reportSeedError(err error, errOut io.Writer) int {
	switch {
	case errors.Is(err, seed.ErrUnknownSource), errors.Is(err, ErrSeedFileRequired):
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	case errors.Is(err, ErrNoOAuthClient), errors.Is(err, ErrNotLoggedIn), errors.Is(err, googletasks.ErrTokenExpired):
		fmt.Fprintf(errOut, "error: auth error: %v\n", err)
		return exitcode.AuthError
	default:
		fmt.Fprintf(errOut, "error: seed error: %v\n", err)
		return exitcode.SeedError
	}
}

// reportFlagError prints a flag parsing error and returns the exit code.
func reportFlagError(err error, errOut io.Writer) int {
	errStr := err.Error()

	// Missing flag value
	if strings.Contains(errStr, "needs a value") || strings.Contains(errStr, "flag needs an argument") {
		parts := strings.Split(errStr, ":")
		flagPart := strings.TrimSpace(parts[len(parts)-1])
		fmt.Fprintf(errOut, "error: flag needs an argument: %s\n", flagPart)
		return exitcode.UserError
	}

	if strings.HasPrefix(errStr, "flag provided but not defined:") {
		flagName := strings.TrimPrefix(errStr, "flag provided but not defined: ")
		fmt.Fprintf(errOut, "error: unknown flag: %s\n", flagName)
		return exitcode.UserError
	}

	fmt.Fprintf(errOut, "error: %s\n", errStr)
	return exitcode.UserError
}
