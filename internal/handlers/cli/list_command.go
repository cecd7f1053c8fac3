package cli

import (
	"fmt"

	"github.com/AntonioJCosta/aliases/internal/core/domain/alias"
	"github.com/AntonioJCosta/aliases/internal/handlers/ui"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewListCommand creates the 'list' subcommand.
func NewListCommand(services Services) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the aliases visible from the current directory.",
		Long: `Displays the aliases defined in the current directory (Local), in each parent
directory (Parent, nearest first) and in your home directory (Global).
A name defined at several levels is listed once per level; the first one wins.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runListCmd(cmd, services)
		},
	}
	cmd.Flags().BoolP("all", "a", false, "Include disabled aliases.")
	return cmd
}

// runListCmd contains the core logic for the 'list' command.
func runListCmd(cmd *cobra.Command, services Services) error {
	showAll, _ := cmd.Flags().GetBool("all")
	cfg := services.Config

	listing, err := services.Resolver.Resolve(cfg.WorkDir)
	if err != nil {
		return fmt.Errorf("could not list aliases: %w", err)
	}
	printWarnings(cmd.ErrOrStderr(), listing.Issues)

	entries := visibleEntries(listing.Entries, showAll)
	out := cmd.OutOrStdout()
	if len(entries) == 0 {
		fmt.Fprintln(out, ui.InfoColor("No aliases found. Run 'aliases init' to create a .aliases file here."))
		return nil
	}

	fmt.Fprintln(out, ui.HeaderColor(fmt.Sprintf("Aliases visible from %s:", ui.UserFriendlyPath(cfg.WorkDir, cfg.HomeDir))))

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Scope", "Alias", "Command", "Source"})
	table.SetBorder(true)
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, entry := range entries {
		command := ui.AliasCmdColor(entry.Command)
		if entry.Disabled {
			command = ui.AliasDisabledColor(entry.Command + " (disabled)")
		}
		table.Append([]string{
			ui.ScopeLabel(entry.Scope),
			ui.AliasNameColor(entry.Name),
			command,
			ui.DetailColor(ui.UserFriendlyPath(entry.Source, cfg.HomeDir)),
		})
	}
	table.Render()
	return nil
}

// visibleEntries drops disabled entries unless showAll is set.
func visibleEntries(entries []alias.ScopedAlias, showAll bool) []alias.ScopedAlias {
	if showAll {
		return entries
	}
	visible := make([]alias.ScopedAlias, 0, len(entries))
	for _, entry := range entries {
		if !entry.Disabled {
			visible = append(visible, entry)
		}
	}
	return visible
}
