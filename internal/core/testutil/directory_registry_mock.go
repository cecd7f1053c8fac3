package testutil

import (
	"slices"

	"github.com/AntonioJCosta/aliases/internal/core/ports"
)

// MockDirectoryRegistry is an in-memory implementation of ports.DirectoryRegistry.
type MockDirectoryRegistry struct {
	RegisterFunc func(dir string) error
	Dirs         []string
}

// Register records dir unless RegisterFunc is set, in which case it delegates.
func (m *MockDirectoryRegistry) Register(dir string) error {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(dir)
	}
	if !slices.Contains(m.Dirs, dir) {
		m.Dirs = append(m.Dirs, dir)
		slices.Sort(m.Dirs)
	}
	return nil
}

func (m *MockDirectoryRegistry) Directories() ([]string, error) {
	return slices.Clone(m.Dirs), nil
}

func (m *MockDirectoryRegistry) Remove(dirs ...string) error {
	m.Dirs = slices.DeleteFunc(m.Dirs, func(d string) bool {
		return slices.Contains(dirs, d)
	})
	return nil
}

var _ ports.DirectoryRegistry = (*MockDirectoryRegistry)(nil)
