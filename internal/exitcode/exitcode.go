// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, unknown command, empty update).
	UserError = 1

	// ConfigError indicates a missing or unusable credential.
	ConfigError = 2

	// BackendError indicates a remote API or network error.
	BackendError = 3
)
