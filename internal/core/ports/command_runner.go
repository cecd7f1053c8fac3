package ports

import "context"

// CommandRunner defines an interface for running a command line through a shell
// with the caller's standard streams attached.
type CommandRunner interface {
	// Run executes commandLine with args available as positional parameters
	// and returns the exit code of the shell.
	Run(ctx context.Context, shellPath, commandLine, name string, args []string) (int, error)
}
