package testutil

import (
	"context"
	"errors"
)

// MockCommandRunner is a mock implementation of ports.CommandRunner.
type MockCommandRunner struct {
	RunFunc func(ctx context.Context, shellPath, commandLine, name string, args []string) (int, error)
}

// Run calls the mock RunFunc.
func (m *MockCommandRunner) Run(ctx context.Context, shellPath, commandLine, name string, args []string) (int, error) {
	if m.RunFunc != nil {
		return m.RunFunc(ctx, shellPath, commandLine, name, args)
	}
	return 1, errors.New("MockCommandRunner.RunFunc not implemented")
}
