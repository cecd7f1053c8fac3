package cli

import (
	"fmt"
	"io"

	"github.com/AntonioJCosta/aliases/internal/config"
	"github.com/AntonioJCosta/aliases/internal/core/ports"
	"github.com/AntonioJCosta/aliases/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// Services groups what the commands need. Every field is required.
type Services struct {
	Config      config.Config
	Resolver    ports.AliasResolutionService
	Initializer ports.AliasInitService
	Rehasher    ports.RehashService
	Renderer    ports.ScriptRenderer
	Executor    ports.AliasExecService
	Directories ports.DirectoryService
	// Executable is the path the shell hook calls back into.
	Executable string
}

// ExitError carries the exit code of an alias run through 'exec'.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

func NewRootCommand(version string, services Services) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "aliases",
		Short: "aliases manages per-directory shell aliases.",
		Long: `aliases keeps shell aliases in .aliases files next to the projects they belong to.
Aliases defined in a directory apply to it and to all of its subdirectories, and
the .aliases file in your home directory applies everywhere.`,
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return checkServices(cmd, services)
		},
	}

	rootCmd.AddCommand(NewInitCommand(services))
	rootCmd.AddCommand(NewListCommand(services))
	rootCmd.AddCommand(NewRehashCommand(services))
	rootCmd.AddCommand(NewHookCommand(services))
	rootCmd.AddCommand(NewExecCommand(services))
	rootCmd.AddCommand(NewDirsCommand(services))

	return rootCmd
}

func checkServices(cmd *cobra.Command, s Services) error {
	missing := ""
	switch cmd.Name() {
	case "init":
		if s.Initializer == nil {
			missing = "alias init service"
		}
	case "list":
		if s.Resolver == nil {
			missing = "alias resolution service"
		}
	case "rehash", "hook":
		if s.Rehasher == nil || s.Renderer == nil {
			missing = "rehash service"
		}
	case "exec":
		if s.Executor == nil {
			missing = "alias exec service"
		}
	case "dirs":
		if s.Directories == nil {
			missing = "directory service"
		}
	}
	if missing != "" {
		return fmt.Errorf("%s not initialized for command %s", missing, cmd.Name())
	}
	return nil
}

// printWarnings writes one "Warning:" line per problem to w.
func printWarnings(w io.Writer, problems []error) {
	for _, problem := range problems {
		fmt.Fprintln(w, ui.WarningColor(fmt.Sprintf("Warning: %v", problem)))
	}
}
