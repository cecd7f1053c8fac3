package aliasfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/AntonioJCosta/aliases/internal/core/domain/alias"
	"github.com/AntonioJCosta/aliases/internal/core/ports"
	"go.uber.org/zap"
)

const aliasFilePerm = 0644

// AliasFileRepository reads and creates .aliases files on the local file system.
type AliasFileRepository struct {
	logger *zap.Logger
}

// NewAliasFileRepository creates a new AliasFileRepository.
func NewAliasFileRepository(logger *zap.Logger) ports.AliasFileRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AliasFileRepository{logger: logger}
}

// ReadAliasFile implements the ports.AliasFileRepository interface.
func (r *AliasFileRepository) ReadAliasFile(path string) (alias.File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return alias.File{Path: path}, fmt.Errorf("alias file %s: %w", path, err)
		}
		return alias.File{Path: path}, fmt.Errorf("failed to read alias file %s: %w", path, err)
	}

	file := parseAliasFile(path, data)
	r.logger.Debug("read alias file",
		zap.String("path", path),
		zap.Int("entries", len(file.Entries)),
		zap.Int("issues", len(file.Issues)))
	return file, nil
}

// CreateAliasFile implements the ports.AliasFileRepository interface.
// The existence check and the creation are a single O_EXCL open, so a file
// created concurrently is never overwritten.
func (r *AliasFileRepository) CreateAliasFile(path string, content []byte) (bool, error) {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, aliasFilePerm)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			r.logger.Debug("alias file already exists", zap.String("path", path))
			return false, nil
		}
		return false, fmt.Errorf("failed to create alias file %s: %w", path, err)
	}

	if _, err := file.Write(content); err != nil {
		file.Close()
		os.Remove(path)
		return false, fmt.Errorf("failed to write alias file %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		os.Remove(path)
		return false, fmt.Errorf("failed to close alias file %s: %w", path, err)
	}

	r.logger.Debug("created alias file", zap.String("path", path), zap.Int("bytes", len(content)))
	return true, nil
}

// AliasFileExists implements the ports.AliasFileRepository interface.
func (r *AliasFileRepository) AliasFileExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check alias file %s: %w", path, err)
	}
	return info.Mode().IsRegular(), nil
}
