package cli_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"todo/internal/cli"
	"todo/internal/commands"
	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/seed"
	"todo/internal/testutil"
)

// testFactory creates a source factory that returns the given FakeSource.
func testFactory(src *testutil.FakeSource) cli.SourceFactory {
	return func(ctx context.Context, cfg *config.Config) (seed.Source, error) {
		return src, nil
	}
}

// run dispatches args with an isolated config directory.
func run(t *testing.T, d *cli.Dispatcher, stdin string, args ...string) (stdout, stderr string, code int) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var outBuf, errBuf bytes.Buffer
	code = d.Run(context.Background(), args, strings.NewReader(stdin), &outBuf, &errBuf)
	return outBuf.String(), errBuf.String(), code
}

func newDispatcher(factory cli.SourceFactory) *cli.Dispatcher {
	d := cli.NewDispatcher(commands.DefaultRegistry, factory)
	d.SetReducer(testutil.StepReducer())
	return d
}

func sampleSource() *testutil.FakeSource {
	src := testutil.NewFakeSource()
	src.AddTask("Buy milk")
	src.AddCompleted("Pay rent", testutil.Epoch)
	return src
}

func TestDispatcher_UnknownCommand(t *testing.T) {
	_, stderr, code := run(t, newDispatcher(testFactory(sampleSource())), "", "unknowncmd")

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown command: unknowncmd\n"
	if stderr != expected {
		t.Errorf("expected %q, got %q", expected, stderr)
	}
}

func TestDispatcher_FlagBeforeCommand(t *testing.T) {
	_, stderr, code := run(t, newDispatcher(testFactory(sampleSource())), "", "--quiet")

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown command: --quiet\n"
	if stderr != expected {
		t.Errorf("expected %q, got %q", expected, stderr)
	}
}

func TestDispatcher_HelpAndVersion(t *testing.T) {
	src := sampleSource()
	d := newDispatcher(testFactory(src))

	stdout, stderr, code := run(t, d, "", "help")
	if code != exitcode.Success || stderr != "" || !strings.Contains(stdout, "Usage:") {
		t.Errorf("unexpected help result: code=%d stdout=%q stderr=%q", code, stdout, stderr)
	}

	stdout, _, code = run(t, d, "", "version")
	if code != exitcode.Success || stdout != "todo 0.1.0\n" {
		t.Errorf("unexpected version result: code=%d stdout=%q", code, stdout)
	}

	if src.Calls() != 0 {
		t.Errorf("expected no seeding for help and version, got %d calls", src.Calls())
	}
}

func TestDispatcher_FlagErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown flag", []string{"help", "--unknown"}, "error: unknown flag: -unknown\n"},
		{"missing value", []string{"list", "--seed"}, "error: flag needs an argument: -seed\n"},
		{"flag after args", []string{"done", "1", "--quiet"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, stderr, code := run(t, newDispatcher(testFactory(sampleSource())), "", tt.args...)
			if tt.want == "" {
				// Flags after positional args are left as arguments.
				if code != exitcode.Success {
					t.Errorf("expected exit code %d, got %d (%q)", exitcode.Success, code, stderr)
				}
				return
			}
			if code != exitcode.UserError {
				t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
			}
			if stderr != tt.want {
				t.Errorf("expected %q, got %q", tt.want, stderr)
			}
		})
	}
}

func TestDispatcher_NoArgsListsSeededTasks(t *testing.T) {
	src := sampleSource()
	stdout, stderr, code := run(t, newDispatcher(testFactory(src)), "")

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	expected := "   1  [ ] Buy milk\n------------\n   2  [x] Pay rent\n1 open, 1 done\n"
	if stdout != expected {
		t.Errorf("expected %q, got %q", expected, stdout)
	}
	if src.Calls() != 1 {
		t.Errorf("expected one seed call, got %d", src.Calls())
	}
}

func TestDispatcher_Shell(t *testing.T) {
	stdout, stderr, code := run(t, newDispatcher(testFactory(sampleSource())), "add\nedit 1 Call mum\nlist\n", "shell", "--quiet")

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d (%q)", exitcode.Success, code, stderr)
	}
	expected := "   1  [ ] Call mum\n   2  [ ] Buy milk\n------------\n   3  [x] Pay rent\n"
	if stdout != expected {
		t.Errorf("expected %q, got %q", expected, stdout)
	}
}

func TestDispatcher_SeedErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
		want string
	}{
		{"backend", errors.New("boom"), exitcode.SeedError, "error: seed error: boom\n"},
		{"not logged in", cli.ErrNotLoggedIn, exitcode.AuthError, "error: auth error: not logged in (run: todo login)\n"},
		{"no seed file", cli.ErrSeedFileRequired, exitcode.UserError, "error: seed file required (set seed.file or --seed-file)\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			factory := func(ctx context.Context, cfg *config.Config) (seed.Source, error) {
				return nil, tt.err
			}
			stdout, stderr, code := run(t, newDispatcher(factory), "", "list")
			if code != tt.code {
				t.Errorf("expected exit code %d, got %d", tt.code, code)
			}
			if stdout != "" {
				t.Errorf("expected no stdout, got %q", stdout)
			}
			if stderr != tt.want {
				t.Errorf("expected %q, got %q", tt.want, stderr)
			}
		})
	}
}

func TestDispatcher_RecordsError(t *testing.T) {
	src := sampleSource()
	src.RecordsErr = errors.New("connection refused")

	_, stderr, code := run(t, newDispatcher(testFactory(src)), "", "list")
	if code != exitcode.SeedError {
		t.Errorf("expected exit code %d, got %d", exitcode.SeedError, code)
	}
	if stderr != "error: seed error: connection refused\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

func TestDispatcher_UnknownSeedSource(t *testing.T) {
	called := false
	factory := func(ctx context.Context, cfg *config.Config) (seed.Source, error) {
		called = true
		return seed.Empty(), nil
	}

	_, stderr, code := run(t, newDispatcher(factory), "", "list", "--seed", "bogus")
	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: unknown seed source: bogus\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
	if called {
		t.Error("expected factory not to be called")
	}
}

func TestDispatcher_DebugLogging(t *testing.T) {
	_, stderr, code := run(t, newDispatcher(testFactory(sampleSource())), "add\n", "shell", "--debug", "--quiet")

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	for _, want := range []string{"seeded task list", "tasks=2", "applied command", "command=add"} {
		if !strings.Contains(stderr, want) {
			t.Errorf("expected stderr to contain %q, got %q", want, stderr)
		}
	}
}

func TestDispatcher_SeedFileFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.yaml")
	if err := os.WriteFile(path, []byte("- title: From file\n- title: Done already\n  completed: true\n"), 0600); err != nil {
		t.Fatalf("failed to write seed file: %v", err)
	}

	stdout, stderr, code := run(t, newDispatcher(nil), "", "list", "--seed-file", path)
	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d (%q)", exitcode.Success, code, stderr)
	}
	expected := "   1  [ ] From file\n------------\n   2  [x] Done already\n1 open, 1 done\n"
	if stdout != expected {
		t.Errorf("expected %q, got %q", expected, stdout)
	}
}

func TestDispatcher_RelativeSeedFileFlag(t *testing.T) {
	work := t.TempDir()
	if err := os.WriteFile(filepath.Join(work, "tasks.yaml"), []byte("- title: Next to me\n"), 0600); err != nil {
		t.Fatalf("failed to write seed file: %v", err)
	}
	// A file of the same name in the config dir must not be picked up.
	cfgDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(cfgDir, "tasks.yaml"), []byte("- title: From config dir\n"), 0600); err != nil {
		t.Fatalf("failed to write seed file: %v", err)
	}
	t.Chdir(work)

	stdout, stderr, code := run(t, newDispatcher(nil), "", "list", "--config", cfgDir, "--seed-file", "tasks.yaml")
	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d (%q)", exitcode.Success, code, stderr)
	}
	expected := "   1  [ ] Next to me\n1 open, 0 done\n"
	if stdout != expected {
		t.Errorf("expected %q, got %q", expected, stdout)
	}
}

func TestDispatcher_RelativeSeedFileFromConfig(t *testing.T) {
	cfgDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(cfgDir, "config.yaml"), []byte("seed:\n  source: file\n  file: tasks.yaml\n"), 0600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	if err := os.WriteFile(filepath.Join(cfgDir, "tasks.yaml"), []byte("- title: From config dir\n"), 0600); err != nil {
		t.Fatalf("failed to write seed file: %v", err)
	}
	t.Chdir(t.TempDir())

	stdout, stderr, code := run(t, newDispatcher(nil), "", "list", "--config", cfgDir)
	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d (%q)", exitcode.Success, code, stderr)
	}
	if !strings.Contains(stdout, "From config dir") {
		t.Errorf("expected seed file resolved against config dir, got %q", stdout)
	}
}

func TestDispatcher_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("seed:\n  source: empty\n"), 0600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	stdout, _, code := run(t, newDispatcher(nil), "", "list", "--config", dir)
	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "no tasks\n" {
		t.Errorf("expected empty list, got %q", stdout)
	}
}

func TestDispatcher_InvalidConfigFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("seed: [unclosed\n"), 0600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	_, stderr, code := run(t, newDispatcher(nil), "", "list", "--config", dir)
	if code != exitcode.AuthError {
		t.Errorf("expected exit code %d, got %d", exitcode.AuthError, code)
	}
	if !strings.HasPrefix(stderr, "error: config error:") {
		t.Errorf("unexpected stderr %q", stderr)
	}
}
