package oscommand

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/AntonioJCosta/aliases/internal/core/ports"
	"go.uber.org/zap"
)

// DefaultShell is used when no shell path is given.
const DefaultShell = "/bin/sh"

// OSCommandRunner implements the ports.CommandRunner interface using the operating system's shell.
type OSCommandRunner struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	logger *zap.Logger
}

// NewOSCommandRunner creates a new OSCommandRunner attached to the given streams.
// Nil streams default to the process's standard streams.
func NewOSCommandRunner(stdin io.Reader, stdout, stderr io.Writer, logger *zap.Logger) ports.CommandRunner {
	if stdin == nil {
		stdin = os.Stdin
	}
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OSCommandRunner{stdin: stdin, stdout: stdout, stderr: stderr, logger: logger}
}

// Run executes `shellPath -c commandLine name args...`, so that name becomes $0
// and args the positional parameters. A non-zero exit status is returned as the
// exit code, not as an error.
func (r *OSCommandRunner) Run(ctx context.Context, shellPath, commandLine, name string, args []string) (int, error) {
	if shellPath == "" {
		shellPath = DefaultShell
	}

	cmdArgs := append([]string{"-c", commandLine, name}, args...)
	cmd := exec.CommandContext(ctx, shellPath, cmdArgs...)
	cmd.Stdin = r.stdin
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr

	r.logger.Debug("running alias", zap.String("shell", shellPath), zap.String("name", name), zap.String("command", commandLine))

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return 1, fmt.Errorf("running alias '%s' interrupted: %w", name, ctxErr)
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() >= 0 {
		return exitErr.ExitCode(), nil
	}
	return 1, fmt.Errorf("running alias '%s' with shell '%s': %w", name, shellPath, err)
}
