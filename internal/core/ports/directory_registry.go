package ports

// DirectoryRegistry keeps track of every directory that has been initialized.
type DirectoryRegistry interface {
	// Register records dir. Registering a known directory is a no-op.
	Register(dir string) error
	// Directories returns the registered directories in sorted order.
	Directories() ([]string, error)
	// Remove forgets the given directories.
	Remove(dirs ...string) error
}
