package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewHookCommand creates the 'hook' subcommand.
func NewHookCommand(services Services) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hook",
		Short: "Print the shell integration that rehashes on directory change.",
		Long: `Prints a snippet that runs 'aliases rehash' whenever the working directory
changes. Add it to your shell startup file, for example in ~/.zshrc:

  eval "$(aliases hook --shell zsh)"

or in ~/.config/fish/config.fish:

  aliases hook --shell fish | source`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snippet, err := services.Renderer.Hook(shellFlag(cmd, services), services.Executable)
			if err != nil {
				return fmt.Errorf("could not generate shell hook: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), snippet)
			return nil
		},
	}
	cmd.Flags().StringP("shell", "s", "", "Shell to generate the hook for: bash, zsh, sh or fish (default: detected from $SHELL).")
	return cmd
}
