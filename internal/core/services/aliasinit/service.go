package aliasinit

import (
	"fmt"
	"path/filepath"

	"github.com/AntonioJCosta/aliases/internal/core/domain/alias"
	"github.com/AntonioJCosta/aliases/internal/core/ports"
	"go.uber.org/zap"
)

type service struct {
	aliasFiles ports.AliasFileRepository
	templates  ports.TemplateProvider
	registry   ports.DirectoryRegistry // Can be nil if directories are not tracked.
	logger     *zap.Logger
}

// NewService creates a new alias init service.
// It panics if aliasFiles or templates are nil. registry can be nil.
func NewService(
	af ports.AliasFileRepository,
	tp ports.TemplateProvider,
	registry ports.DirectoryRegistry,
	logger *zap.Logger,
) ports.AliasInitService {
	if af == nil {
		panic("aliasFiles cannot be nil")
	}
	if tp == nil {
		panic("templates cannot be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{
		aliasFiles: af,
		templates:  tp,
		registry:   registry,
		logger:     logger,
	}
}

// Init creates targetDir/.aliases from the template.
// The template is loaded first: a broken installation fails even in an
// initialized directory.
func (s *service) Init(targetDir string) (ports.InitResult, error) {
	dir, err := filepath.Abs(targetDir)
	if err != nil {
		return ports.InitResult{}, fmt.Errorf("failed to resolve directory %s: %w", targetDir, err)
	}
	result := ports.InitResult{Path: filepath.Join(dir, alias.FileName)}

	content, err := s.templates.Template()
	if err != nil {
		return ports.InitResult{}, fmt.Errorf("failed to load alias template: %w", err)
	}

	created, err := s.aliasFiles.CreateAliasFile(result.Path, content)
	if err != nil {
		return ports.InitResult{}, fmt.Errorf("failed to initialize %s: %w", dir, err)
	}
	if !created {
		result.Status = ports.InitStatusAlreadyInitialized
		return result, nil
	}
	result.Status = ports.InitStatusCreated

	if s.registry != nil {
		if err := s.registry.Register(dir); err != nil {
			// The alias file exists at this point; a stale registry is only reported.
			s.logger.Warn("could not register initialized directory", zap.String("dir", dir), zap.Error(err))
			result.Warnings = append(result.Warnings, fmt.Errorf("could not record %s in the directory registry: %w", dir, err))
		}
	}
	return result, nil
}
