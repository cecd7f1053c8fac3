package testutil

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/AntonioJCosta/aliases/internal/core/domain/alias"
	"github.com/AntonioJCosta/aliases/internal/core/ports"
)

// MockAliasFileRepository is a mock implementation of ports.AliasFileRepository for testing.
type MockAliasFileRepository struct {
	ReadAliasFileFunc   func(path string) (alias.File, error)
	CreateAliasFileFunc func(path string, content []byte) (bool, error)
	AliasFileExistsFunc func(path string) (bool, error)
	// ReadCalls keeps track of the paths passed to ReadAliasFile.
	ReadCalls []string
}

func (m *MockAliasFileRepository) ReadAliasFile(path string) (alias.File, error) {
	m.ReadCalls = append(m.ReadCalls, path)
	if m.ReadAliasFileFunc != nil {
		return m.ReadAliasFileFunc(path)
	}
	return alias.File{Path: path}, fmt.Errorf("alias file %s: %w", path, fs.ErrNotExist)
}

func (m *MockAliasFileRepository) CreateAliasFile(path string, content []byte) (bool, error) {
	if m.CreateAliasFileFunc != nil {
		return m.CreateAliasFileFunc(path, content)
	}
	return false, errors.New("MockAliasFileRepository: CreateAliasFileFunc not implemented")
}

// AliasFileExists reports false unless AliasFileExistsFunc is set.
func (m *MockAliasFileRepository) AliasFileExists(path string) (bool, error) {
	if m.AliasFileExistsFunc != nil {
		return m.AliasFileExistsFunc(path)
	}
	return false, nil
}

// NewAliasFilesFromMap returns a mock whose ReadAliasFile serves entries from files,
// keyed by alias file path. Paths absent from the map are reported as missing.
func NewAliasFilesFromMap(files map[string][]alias.Alias) *MockAliasFileRepository {
	return &MockAliasFileRepository{
		ReadAliasFileFunc: func(path string) (alias.File, error) {
			entries, ok := files[path]
			if !ok {
				return alias.File{Path: path}, fmt.Errorf("alias file %s: %w", path, fs.ErrNotExist)
			}
			return alias.File{Path: path, Entries: entries}, nil
		},
	}
}

var _ ports.AliasFileRepository = (*MockAliasFileRepository)(nil)
