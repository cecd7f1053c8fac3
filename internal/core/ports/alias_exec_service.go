package ports

import "context"

// AliasExecService defines the contract for running an alias without a shell integration.
type AliasExecService interface {
	// Exec runs the effective alias called name, as seen from startDir, with args
	// appended and returns its exit code. Unknown names fail with ErrAliasNotFound.
	Exec(ctx context.Context, startDir, name string, args []string) (int, error)
}
