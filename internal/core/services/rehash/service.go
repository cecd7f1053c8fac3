package rehash

import (
	"fmt"
	"slices"

	"github.com/AntonioJCosta/aliases/internal/core/domain/alias"
	"github.com/AntonioJCosta/aliases/internal/core/ports"
	"go.uber.org/zap"
)

type service struct {
	resolver ports.AliasResolutionService
	logger   *zap.Logger
}

// NewService creates a new rehash service.
// It panics if resolver is nil.
func NewService(resolver ports.AliasResolutionService, logger *zap.Logger) ports.RehashService {
	if resolver == nil {
		panic("resolver cannot be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{resolver: resolver, logger: logger}
}

// Plan implements the ports.RehashService interface.
// Define holds the effective aliases in precedence order; Remove holds the
// previously emitted names that are no longer defined, sorted.
func (s *service) Plan(startDir string, previous []string) (ports.RehashPlan, error) {
	listing, err := s.resolver.Resolve(startDir)
	if err != nil {
		return ports.RehashPlan{}, fmt.Errorf("failed to resolve aliases for rehash: %w", err)
	}

	plan := ports.RehashPlan{
		Define: listing.Effective(),
		Issues: listing.Issues,
	}

	defined := make(map[string]bool, len(plan.Define))
	for _, entry := range plan.Define {
		defined[entry.Name] = true
	}
	for _, name := range previous {
		if defined[name] || !alias.IsValidName(name) || slices.Contains(plan.Remove, name) {
			continue
		}
		plan.Remove = append(plan.Remove, name)
	}
	slices.Sort(plan.Remove)

	s.logger.Debug("rehash plan",
		zap.String("start", startDir),
		zap.Int("define", len(plan.Define)),
		zap.Strings("remove", plan.Remove))
	return plan, nil
}
