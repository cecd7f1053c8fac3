package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/AntonioJCosta/aliases/internal/adapters/aliastemplate"
	"github.com/AntonioJCosta/aliases/internal/adapters/commandanalysis"
	"github.com/AntonioJCosta/aliases/internal/adapters/oscommand"
	"github.com/AntonioJCosta/aliases/internal/adapters/shellscript"
	"github.com/AntonioJCosta/aliases/internal/config"
	"github.com/AntonioJCosta/aliases/internal/core/ports"
	"github.com/AntonioJCosta/aliases/internal/core/services/aliasexec"
	"github.com/AntonioJCosta/aliases/internal/core/services/aliasinit"
	"github.com/AntonioJCosta/aliases/internal/core/services/aliasresolution"
	"github.com/AntonioJCosta/aliases/internal/core/services/directories"
	"github.com/AntonioJCosta/aliases/internal/core/services/rehash"
	"github.com/AntonioJCosta/aliases/internal/handlers/cli"
	"github.com/AntonioJCosta/aliases/internal/handlers/ui"
	"github.com/AntonioJCosta/aliases/internal/logging"
	"github.com/AntonioJCosta/aliases/internal/repositories/aliasfile"
	"github.com/AntonioJCosta/aliases/internal/repositories/dirregistry"
	"go.uber.org/zap"
)

// Version is set at build time
var Version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	env, err := config.EnvironmentFromOS()
	if err != nil {
		fmt.Fprintln(os.Stderr, ui.ErrorColor(fmt.Sprintf("Error reading environment: %v", err)))
		return 1
	}
	cfg, err := config.Load(env)
	if err != nil {
		fmt.Fprintln(os.Stderr, ui.ErrorColor(fmt.Sprintf("Error loading configuration: %v", err)))
		return 1
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, ui.ErrorColor(fmt.Sprintf("Error initializing logger: %v", err)))
		return 1
	}
	defer logger.Sync()

	files := aliasfile.NewAliasFileRepository(logger)
	resolver := aliasresolution.NewService(files, cfg.HomeDir, logger)
	analyzer := commandanalysis.NewShellAnalyzer()
	runner := oscommand.NewOSCommandRunner(os.Stdin, os.Stdout, os.Stderr, logger)

	// Without a home directory there is no global scope and nowhere to keep the registry.
	var registry ports.DirectoryRegistry
	var directoryService ports.DirectoryService
	if cfg.HomeDir != "" {
		registry = dirregistry.NewYAMLDirectoryRegistry(dirregistry.DefaultPath(cfg.HomeDir), logger)
		directoryService = directories.NewService(registry, files, logger)
	} else {
		logger.Warn("home directory unknown, global aliases are disabled")
	}

	executable, err := os.Executable()
	if err != nil {
		logger.Debug("could not determine executable path", zap.Error(err))
		executable = "aliases"
	}

	services := cli.Services{
		Config:      cfg,
		Resolver:    resolver,
		Initializer: aliasinit.NewService(files, aliastemplate.NewProvider(cfg.TemplatePath, logger), registry, logger),
		Rehasher:    rehash.NewService(resolver, logger),
		Renderer:    shellscript.NewRenderer(analyzer, logger),
		Executor:    aliasexec.NewService(resolver, analyzer, runner, cfg.ShellPath, logger),
		Directories: directoryService,
		Executable:  executable,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := cli.NewRootCommand(Version, services)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.Code
		}
		return 1
	}
	return 0
}
