package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRehashCommand creates the 'rehash' subcommand.
func NewRehashCommand(services Services) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rehash",
		Short: "Print shell code that defines the visible aliases as functions.",
		Long: `Prints shell code defining one function per alias visible from the current
directory and removing the functions of aliases that are gone since the last
rehash. Evaluate it in your shell, for example:

  eval "$(aliases rehash)"

The 'hook' command sets this up to run on every directory change.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRehashCmd(cmd, services)
		},
	}
	cmd.Flags().StringP("shell", "s", "", "Shell to generate code for: bash, zsh, sh or fish (default: detected from $SHELL).")
	return cmd
}

func runRehashCmd(cmd *cobra.Command, services Services) error {
	shell := shellFlag(cmd, services)
	cfg := services.Config

	plan, err := services.Rehasher.Plan(cfg.WorkDir, cfg.PreviousFunctions)
	if err != nil {
		return fmt.Errorf("could not rehash aliases: %w", err)
	}
	script, issues, err := services.Renderer.Render(shell, plan)
	if err != nil {
		return fmt.Errorf("could not rehash aliases: %w", err)
	}

	printWarnings(cmd.ErrOrStderr(), plan.Issues)
	printWarnings(cmd.ErrOrStderr(), issues)
	fmt.Fprint(cmd.OutOrStdout(), script)
	return nil
}

// shellFlag returns the --shell value or the configured shell.
func shellFlag(cmd *cobra.Command, services Services) string {
	if shell, _ := cmd.Flags().GetString("shell"); shell != "" {
		return shell
	}
	return services.Config.ShellName()
}
