package ports

// InitStatus is the outcome of an init request.
type InitStatus int

const (
	InitStatusCreated InitStatus = iota
	InitStatusAlreadyInitialized
)

// InitResult reports what Init did and where.
type InitResult struct {
	Status InitStatus
	Path   string
	// Warnings holds non-fatal problems, such as a failed registry update.
	Warnings []error
}

// AliasInitService defines the contract for initializing a directory with an alias file.
type AliasInitService interface {
	// Init creates the alias file in targetDir from the template unless one already exists.
	// An existing file is not an error; it is reported through InitResult.Status.
	Init(targetDir string) (InitResult, error)
}
