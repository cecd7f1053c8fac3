package dirregistry

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/AntonioJCosta/aliases/internal/core/ports"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// registryFile is the on-disk layout of the registry.
type registryFile struct {
	Directories []string `yaml:"directories"`
}

// YAMLDirectoryRegistry implements the ports.DirectoryRegistry interface with a YAML file.
type YAMLDirectoryRegistry struct {
	path   string
	logger *zap.Logger
}

// NewYAMLDirectoryRegistry creates a registry stored at path. The file and its
// parent directories are created on the first write.
func NewYAMLDirectoryRegistry(path string, logger *zap.Logger) ports.DirectoryRegistry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &YAMLDirectoryRegistry{path: path, logger: logger}
}

// DefaultPath returns the registry location inside homeDir.
func DefaultPath(homeDir string) string {
	return filepath.Join(homeDir, ".config", "aliases", "directories.yaml")
}

// Register implements the ports.DirectoryRegistry interface.
func (r *YAMLDirectoryRegistry) Register(dir string) error {
	dir = filepath.Clean(dir)
	dirs, err := r.load()
	if err != nil {
		return err
	}
	if slices.Contains(dirs, dir) {
		return nil
	}
	dirs = append(dirs, dir)
	slices.Sort(dirs)
	return r.save(dirs)
}

// Directories implements the ports.DirectoryRegistry interface.
func (r *YAMLDirectoryRegistry) Directories() ([]string, error) {
	return r.load()
}

// Remove implements the ports.DirectoryRegistry interface.
func (r *YAMLDirectoryRegistry) Remove(dirs ...string) error {
	current, err := r.load()
	if err != nil {
		return err
	}
	kept := slices.DeleteFunc(slices.Clone(current), func(d string) bool {
		return slices.Contains(dirs, d)
	})
	if len(kept) == len(current) {
		return nil
	}
	return r.save(kept)
}

// load returns the registered directories, sorted and without duplicates.
// A missing or empty file is an empty registry.
func (r *YAMLDirectoryRegistry) load() ([]string, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read directory registry %s: %w", r.path, err)
	}

	var file registryFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to parse directory registry %s: %w", r.path, err)
	}

	slices.Sort(file.Directories)
	return slices.Compact(file.Directories), nil
}

// save replaces the registry file through a temporary file and a rename.
func (r *YAMLDirectoryRegistry) save(dirs []string) error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0755); err != nil {
		return fmt.Errorf("failed to create registry directory: %w", err)
	}
	data, err := yaml.Marshal(registryFile{Directories: dirs})
	if err != nil {
		return fmt.Errorf("failed to encode directory registry: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(r.path), ".directories-*.yaml")
	if err != nil {
		return fmt.Errorf("failed to create temporary registry file: %w", err)
	}
	defer os.Remove(tmp.Name()) // No-op after a successful rename.

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write directory registry: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write directory registry: %w", err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return fmt.Errorf("failed to replace directory registry %s: %w", r.path, err)
	}

	r.logger.Debug("saved directory registry", zap.String("path", r.path), zap.Int("directories", len(dirs)))
	return nil
}
