// Package exitcode defines the process exit codes.
package exitcode

const (
	// Success indicates successful completion, including a declined confirmation.
	Success = 0

	// UserError indicates bad arguments, an unknown command, or a list that
	// cannot be resolved.
	UserError = 1

	// AuthError indicates missing or unusable credentials or settings.
	AuthError = 2

	// BackendError indicates a Google Tasks API or network failure.
	BackendError = 3

	// Interrupted indicates the run was stopped by SIGINT or SIGTERM.
	Interrupted = 130
)
