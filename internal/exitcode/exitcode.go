// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, unknown command, bad task reference).
	UserError = 1

	// AuthError indicates an auth/config error.
	AuthError = 2

	// SeedError indicates the initial task list could not be loaded
	// (unreadable seed file, Google Tasks API or network error).
	SeedError = 3
)
