package cli

import (
	"errors"

	"github.com/AntonioJCosta/aliases/internal/core/ports"
	"github.com/spf13/cobra"
)

// NewExecCommand creates the 'exec' subcommand.
func NewExecCommand(services Services) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exec NAME [ARGS...]",
		Short: "Run an alias without the shell integration.",
		Long: `Runs the alias NAME as seen from the current directory with ARGS appended,
and exits with its exit status. Useful in scripts and editors where the
shell functions are not defined.`,
		// Everything after NAME belongs to the alias.
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExecCmd(cmd, args, services)
		},
	}
	return cmd
}

func runExecCmd(cmd *cobra.Command, args []string, services Services) error {
	if len(args) == 0 {
		return errors.New("exec requires an alias name")
	}
	if args[0] == "-h" || args[0] == "--help" {
		return cmd.Help()
	}

	code, err := services.Executor.Exec(cmd.Context(), services.Config.WorkDir, args[0], args[1:])
	if err != nil {
		if errors.Is(err, ports.ErrAliasNotFound) {
			cmd.SilenceUsage = true
		}
		return err
	}
	if code != 0 {
		cmd.SilenceErrors = true
		cmd.SilenceUsage = true
		return &ExitError{Code: code}
	}
	return nil
}
