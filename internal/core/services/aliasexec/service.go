package aliasexec

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/AntonioJCosta/aliases/internal/core/ports"
	"go.uber.org/zap"
)

type service struct {
	resolver  ports.AliasResolutionService
	analyzer  ports.CommandAnalyzer
	runner    ports.CommandRunner
	shellPath string
	logger    *zap.Logger
}

// NewService creates a new alias exec service.
// shellPath is the shell aliases run in; fish and an empty path fall back to
// the runner's default POSIX shell, since alias commands use sh syntax.
// It panics if resolver, analyzer or runner is nil.
func NewService(
	resolver ports.AliasResolutionService,
	analyzer ports.CommandAnalyzer,
	runner ports.CommandRunner,
	shellPath string,
	logger *zap.Logger,
) ports.AliasExecService {
	if resolver == nil {
		panic("resolver cannot be nil")
	}
	if analyzer == nil {
		panic("analyzer cannot be nil")
	}
	if runner == nil {
		panic("runner cannot be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if filepath.Base(shellPath) == "fish" {
		shellPath = ""
	}
	return &service{
		resolver:  resolver,
		analyzer:  analyzer,
		runner:    runner,
		shellPath: shellPath,
		logger:    logger,
	}
}

// Exec implements the ports.AliasExecService interface.
func (s *service) Exec(ctx context.Context, startDir, name string, args []string) (int, error) {
	listing, err := s.resolver.Resolve(startDir)
	if err != nil {
		return 1, fmt.Errorf("failed to resolve aliases: %w", err)
	}
	for _, issue := range listing.Issues {
		s.logger.Warn("alias definition skipped", zap.Error(issue))
	}

	entry, ok := listing.Lookup(name)
	if !ok {
		return 1, fmt.Errorf("%w: '%s'", ports.ErrAliasNotFound, name)
	}

	analyzed, err := s.analyzer.Analyze(entry.Command)
	if err != nil {
		return 1, fmt.Errorf("%s: alias '%s' cannot be run: %w", entry.Source, name, err)
	}
	commandLine := entry.Command
	if !analyzed.IsComplex {
		commandLine = analyzed.Invocation + ` "$@"`
	}

	s.logger.Debug("executing alias",
		zap.String("name", name),
		zap.String("scope", entry.Scope.String()),
		zap.String("source", entry.Source))
	return s.runner.Run(ctx, s.shellPath, commandLine, name, args)
}
