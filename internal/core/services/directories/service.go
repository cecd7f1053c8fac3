package directories

import (
	"fmt"
	"path/filepath"

	"github.com/AntonioJCosta/aliases/internal/core/domain/alias"
	"github.com/AntonioJCosta/aliases/internal/core/ports"
	"go.uber.org/zap"
)

type service struct {
	registry   ports.DirectoryRegistry
	aliasFiles ports.AliasFileRepository
	logger     *zap.Logger
}

// NewService creates a new directory service.
// It panics if registry or aliasFiles is nil.
func NewService(registry ports.DirectoryRegistry, aliasFiles ports.AliasFileRepository, logger *zap.Logger) ports.DirectoryService {
	if registry == nil {
		panic("registry cannot be nil")
	}
	if aliasFiles == nil {
		panic("aliasFiles cannot be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{registry: registry, aliasFiles: aliasFiles, logger: logger}
}

// List implements the ports.DirectoryService interface.
func (s *service) List() ([]ports.DirectoryStatus, error) {
	dirs, err := s.registry.Directories()
	if err != nil {
		return nil, fmt.Errorf("failed to load registered directories: %w", err)
	}

	statuses := make([]ports.DirectoryStatus, 0, len(dirs))
	for _, dir := range dirs {
		exists, err := s.aliasFiles.AliasFileExists(filepath.Join(dir, alias.FileName))
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, ports.DirectoryStatus{Dir: dir, Initialized: exists})
	}
	return statuses, nil
}

// Prune implements the ports.DirectoryService interface.
func (s *service) Prune() ([]string, error) {
	statuses, err := s.List()
	if err != nil {
		return nil, err
	}

	var stale []string
	for _, status := range statuses {
		if !status.Initialized {
			stale = append(stale, status.Dir)
		}
	}
	if len(stale) == 0 {
		return nil, nil
	}
	if err := s.registry.Remove(stale...); err != nil {
		return nil, fmt.Errorf("failed to prune registered directories: %w", err)
	}

	s.logger.Debug("pruned directory registry", zap.Strings("removed", stale))
	return stale, nil
}
