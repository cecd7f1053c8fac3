package ports

import "github.com/AntonioJCosta/aliases/internal/core/domain/alias"

// RehashPlan lists the shell functions to define and the ones to drop.
type RehashPlan struct {
	Define []alias.ScopedAlias
	Remove []string
	Issues []error
}

// RehashService defines the contract for turning resolved aliases into shell functions.
type RehashService interface {
	// Plan computes the functions visible from startDir. previous holds the function
	// names emitted by the last rehash in the same shell session.
	Plan(startDir string, previous []string) (RehashPlan, error)
}
