package aliastemplate

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/AntonioJCosta/aliases/internal/core/ports"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

//go:embed templates/aliases
var embeddedTemplate []byte

// Provider implements the ports.TemplateProvider interface.
// It serves the bundled template unless an override file is configured.
type Provider struct {
	overridePath string
	logger       *zap.Logger
}

// NewProvider creates a new Provider. An empty overridePath selects the bundled template.
func NewProvider(overridePath string, logger *zap.Logger) ports.TemplateProvider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Provider{overridePath: overridePath, logger: logger}
}

// Template returns the raw template bytes. Any failure wraps ports.ErrTemplateUnavailable.
func (p *Provider) Template() ([]byte, error) {
	content := embeddedTemplate
	source := "bundled template"

	if p.overridePath != "" {
		data, err := os.ReadFile(p.overridePath)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to read %s: %w", ports.ErrTemplateUnavailable, p.overridePath, err)
		}
		content = data
		source = p.overridePath
	}

	if len(content) == 0 {
		return nil, fmt.Errorf("%w: %s is empty", ports.ErrTemplateUnavailable, source)
	}
	if err := validate(content); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ports.ErrTemplateUnavailable, source, err)
	}

	p.logger.Debug("loaded alias template", zap.String("source", source), zap.Int("bytes", len(content)))
	return content, nil
}

// validate checks that content is a YAML document whose top level, if any, is a mapping.
func validate(content []byte) error {
	var doc yaml.Node
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return fmt.Errorf("invalid YAML: %w", err)
	}
	if len(doc.Content) == 0 {
		// Comments only.
		return nil
	}
	root := doc.Content[0]
	empty := root.Kind == yaml.ScalarNode && (root.Tag == "!!null" || root.Value == "")
	if root.Kind != yaml.MappingNode && !empty {
		return fmt.Errorf("top-level value must be a mapping of alias names to commands")
	}
	return nil
}
