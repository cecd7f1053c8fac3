package ports

import "errors"

var (
	// ErrTemplateUnavailable is returned when the alias template cannot be loaded.
	// It indicates a broken installation or configuration.
	ErrTemplateUnavailable = errors.New("alias template unavailable")

	// ErrAliasNotFound is returned when no effective alias has the requested name.
	ErrAliasNotFound = errors.New("alias not found")

	// ErrUnsupportedShell is returned for shells that have no script dialect.
	ErrUnsupportedShell = errors.New("unsupported shell")
)
