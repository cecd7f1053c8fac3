package cli

import (
	"errors"
	"fmt"

	"github.com/AntonioJCosta/aliases/internal/core/ports"
	"github.com/AntonioJCosta/aliases/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// AlreadyInitializedMessage is printed when the target already has an alias file.
const AlreadyInitializedMessage = "Directory already initialized.\n"

// NewInitCommand creates the 'init' subcommand.
func NewInitCommand(services Services) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a .aliases file from the template.",
		Long: `Creates a .aliases file in the current directory, or in your home directory
with --global, from the bundled template. An existing file is never modified.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInitCmd(cmd, services)
		},
	}
	cmd.Flags().BoolP("global", "g", false, "Initialize the global alias file in your home directory.")
	return cmd
}

func runInitCmd(cmd *cobra.Command, services Services) error {
	global, _ := cmd.Flags().GetBool("global")
	cfg := services.Config

	target := cfg.WorkDir
	if global {
		if cfg.HomeDir == "" {
			return errors.New("cannot initialize the global alias file: home directory is unknown")
		}
		target = cfg.HomeDir
	}

	result, err := services.Initializer.Init(target)
	if err != nil {
		if errors.Is(err, ports.ErrTemplateUnavailable) {
			return fmt.Errorf("%w (check the 'template' setting or reinstall aliases)", err)
		}
		return err
	}

	out := cmd.OutOrStdout()
	switch result.Status {
	case ports.InitStatusAlreadyInitialized:
		fmt.Fprint(out, AlreadyInitializedMessage)
	case ports.InitStatusCreated:
		fmt.Fprintln(out, ui.SuccessColor(fmt.Sprintf("Created %s", ui.UserFriendlyPath(result.Path, cfg.HomeDir))))
	}
	printWarnings(cmd.ErrOrStderr(), result.Warnings)
	return nil
}
