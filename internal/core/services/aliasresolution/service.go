package aliasresolution

import (
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"path/filepath"

	"github.com/AntonioJCosta/aliases/internal/core/domain/alias"
	"github.com/AntonioJCosta/aliases/internal/core/ports"
	"go.uber.org/zap"
)

type service struct {
	aliasFiles ports.AliasFileRepository
	homeDir    string // Empty disables the global scope.
	logger     *zap.Logger
}

// NewService creates a new alias resolution service.
// homeDir is the directory holding the global alias file.
// It panics if aliasFiles is nil.
func NewService(aliasFiles ports.AliasFileRepository, homeDir string, logger *zap.Logger) ports.AliasResolutionService {
	if aliasFiles == nil {
		panic("aliasFiles cannot be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if homeDir != "" {
		homeDir = filepath.Clean(homeDir)
	}
	return &service{
		aliasFiles: aliasFiles,
		homeDir:    homeDir,
		logger:     logger,
	}
}

// Walk implements the ports.AliasResolutionService interface.
func (s *service) Walk(startDir string) iter.Seq2[alias.ScopedAlias, error] {
	return func(yield func(alias.ScopedAlias, error) bool) {
		start, err := filepath.Abs(startDir)
		if err != nil {
			yield(alias.ScopedAlias{}, fmt.Errorf("failed to resolve directory %s: %w", startDir, err))
			return
		}
		s.walkFrom(start, yield)
	}
}

// Resolve implements the ports.AliasResolutionService interface.
func (s *service) Resolve(startDir string) (alias.Listing, error) {
	start, err := filepath.Abs(startDir)
	if err != nil {
		return alias.Listing{}, fmt.Errorf("failed to resolve directory %s: %w", startDir, err)
	}

	var listing alias.Listing
	s.walkFrom(start, func(entry alias.ScopedAlias, err error) bool {
		if err != nil {
			listing.Issues = append(listing.Issues, err)
			return true
		}
		listing.Entries = append(listing.Entries, entry)
		return true
	})

	s.logger.Debug("resolved aliases",
		zap.String("start", start),
		zap.Int("entries", len(listing.Entries)),
		zap.Int("issues", len(listing.Issues)))
	return listing, nil
}

// walkFrom visits start, then every ancestor up to the root, then the home
// directory unless the walk already went through it.
func (s *service) walkFrom(start string, yield func(alias.ScopedAlias, error) bool) {
	homeVisited := false
	depth := 0
	for dir := start; ; depth++ {
		if dir == s.homeDir {
			homeVisited = true
		}

		scope := alias.ScopeParent
		if depth == 0 {
			scope = alias.ScopeLocal
		}
		if !s.emitFile(dir, scope, depth, yield) {
			return
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	if s.homeDir == "" || homeVisited {
		return
	}
	s.emitFile(s.homeDir, alias.ScopeGlobal, alias.GlobalDepth, yield)
}

// emitFile yields the issues and entries of dir's alias file. A missing file yields nothing.
// It returns false once the consumer has asked to stop.
func (s *service) emitFile(dir string, scope alias.Scope, depth int, yield func(alias.ScopedAlias, error) bool) bool {
	path := filepath.Join(dir, alias.FileName)
	file, err := s.aliasFiles.ReadAliasFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return true
		}
		s.logger.Debug("skipping unreadable alias file", zap.String("path", path), zap.Error(err))
		return yield(alias.ScopedAlias{}, err)
	}

	for _, issue := range file.Issues {
		if !yield(alias.ScopedAlias{}, issue) {
			return false
		}
	}
	for _, entry := range file.Entries {
		scoped := alias.ScopedAlias{
			Alias:  entry,
			Scope:  scope,
			Source: path,
			Depth:  depth,
		}
		if !yield(scoped, nil) {
			return false
		}
	}
	return true
}
