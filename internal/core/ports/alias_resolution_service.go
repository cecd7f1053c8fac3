package ports

import (
	"iter"

	"github.com/AntonioJCosta/aliases/internal/core/domain/alias"
)

// AliasResolutionService defines the contract for finding every alias visible from a directory.
type AliasResolutionService interface {
	// Walk lazily yields the aliases visible from startDir, local first, then each
	// ancestor nearest first, then the global file. Non-nil errors describe skipped
	// files or entries; iteration continues after them.
	Walk(startDir string) iter.Seq2[alias.ScopedAlias, error]

	// Resolve collects Walk into a Listing.
	Resolve(startDir string) (alias.Listing, error)
}
