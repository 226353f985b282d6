// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// Error indicates a local failure (config, terminal, log file).
	Error = 1

	// Usage indicates bad arguments or an unknown subcommand.
	Usage = 2

	// Unavailable indicates the todo endpoint could not be read.
	Unavailable = 3
)
