package testutil

import (
	"iter"

	"github.com/AntonioJCosta/aliases/internal/core/domain/alias"
	"github.com/AntonioJCosta/aliases/internal/core/ports"
)

// MockAliasResolutionService is a mock implementation of ports.AliasResolutionService.
type MockAliasResolutionService struct {
	ResolveFunc func(startDir string) (alias.Listing, error)
}

// Walk replays the listing returned by ResolveFunc, issues first.
func (m *MockAliasResolutionService) Walk(startDir string) iter.Seq2[alias.ScopedAlias, error] {
	return func(yield func(alias.ScopedAlias, error) bool) {
		listing, err := m.Resolve(startDir)
		if err != nil {
			yield(alias.ScopedAlias{}, err)
			return
		}
		for _, issue := range listing.Issues {
			if !yield(alias.ScopedAlias{}, issue) {
				return
			}
		}
		for _, entry := range listing.Entries {
			if !yield(entry, nil) {
				return
			}
		}
	}
}

func (m *MockAliasResolutionService) Resolve(startDir string) (alias.Listing, error) {
	if m.ResolveFunc != nil {
		return m.ResolveFunc(startDir)
	}
	return alias.Listing{}, nil
}

var _ ports.AliasResolutionService = (*MockAliasResolutionService)(nil)
