package cli

import (
	"fmt"

	"github.com/AntonioJCosta/aliases/internal/handlers/ui"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewDirsCommand creates the 'dirs' subcommand.
func NewDirsCommand(services Services) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dirs",
		Short: "List the directories initialized with 'aliases init'.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			prune, _ := cmd.Flags().GetBool("prune")
			if prune {
				return runDirsPrune(cmd, services)
			}
			return runDirsList(cmd, services)
		},
	}
	cmd.Flags().Bool("prune", false, "Forget directories whose .aliases file no longer exists.")
	return cmd
}

func runDirsList(cmd *cobra.Command, services Services) error {
	statuses, err := services.Directories.List()
	if err != nil {
		return fmt.Errorf("could not list directories: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(statuses) == 0 {
		fmt.Fprintln(out, ui.InfoColor("No initialized directories recorded."))
		return nil
	}

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Directory", "Status"})
	table.SetAutoWrapText(false)
	table.SetBorder(true)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, status := range statuses {
		state := ui.SuccessColor("initialized")
		if !status.Initialized {
			state = ui.WarningColor("missing .aliases")
		}
		table.Append([]string{ui.UserFriendlyPath(status.Dir, services.Config.HomeDir), state})
	}
	table.Render()
	return nil
}

func runDirsPrune(cmd *cobra.Command, services Services) error {
	removed, err := services.Directories.Prune()
	if err != nil {
		return fmt.Errorf("could not prune directories: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(removed) == 0 {
		fmt.Fprintln(out, ui.InfoColor("Nothing to prune."))
		return nil
	}
	for _, dir := range removed {
		fmt.Fprintln(out, ui.SuccessColor(fmt.Sprintf("Removed %s", ui.UserFriendlyPath(dir, services.Config.HomeDir))))
	}
	return nil
}
