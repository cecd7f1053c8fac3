package ui

import (
	"path/filepath"
	"strings"
)

// UserFriendlyPath shortens absPath to a ~-relative path when it lies inside homeDir.
func UserFriendlyPath(absPath, homeDir string) string {
	if homeDir == "" {
		return absPath
	}
	homeDir = filepath.Clean(homeDir)
	if absPath == homeDir {
		return "~"
	}
	if !strings.HasPrefix(absPath, homeDir+string(filepath.Separator)) {
		return absPath // Path is not under home directory
	}

	relPath, err := filepath.Rel(homeDir, absPath)
	if err != nil {
		return absPath
	}
	return filepath.Join("~", relPath)
}
