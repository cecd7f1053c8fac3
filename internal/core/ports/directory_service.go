package ports

// DirectoryStatus describes one registered directory.
type DirectoryStatus struct {
	Dir string
	// Initialized is false once the directory's alias file has gone away.
	Initialized bool
}

// DirectoryService defines the contract for inspecting and cleaning the directory registry.
type DirectoryService interface {
	// List returns every registered directory with its current status.
	List() ([]DirectoryStatus, error)
	// Prune forgets the directories that no longer hold an alias file and returns them.
	Prune() ([]string, error)
}
