package aliasfile

import (
	"strings"

	"github.com/AntonioJCosta/aliases/internal/core/domain/alias"
	"gopkg.in/yaml.v3"
)

// allowedDefinitionKeys are the keys accepted in the mapping form of a definition.
var allowedDefinitionKeys = map[string]bool{
	"command":     true,
	"description": true,
	"disabled":    true,
}

// parseAliasFile decodes the YAML content of an alias file.
// Every problem is recorded as an issue; valid entries are always kept.
func parseAliasFile(path string, data []byte) alias.File {
	file := alias.File{Path: path}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		file.Issues = append(file.Issues, &alias.ParseIssue{
			Path:   path,
			Reason: "invalid YAML: " + err.Error(),
		})
		return file
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return file // Empty or comment-only file
	}

	root := doc.Content[0]
	if root.Kind == yaml.ScalarNode && (root.Tag == "!!null" || root.Value == "") {
		return file
	}
	if root.Kind != yaml.MappingNode {
		file.Issues = append(file.Issues, &alias.ParseIssue{
			Path:   path,
			Line:   root.Line,
			Reason: "top-level value must be a mapping of alias names to commands",
		})
		return file
	}

	seen := make(map[string]bool)
	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode, valueNode := root.Content[i], root.Content[i+1]

		entry, issue := parseDefinition(keyNode, valueNode)
		if issue != nil {
			issue.Path = path
			file.Issues = append(file.Issues, issue)
			continue
		}
		if seen[entry.Name] {
			file.Issues = append(file.Issues, &alias.ParseIssue{
				Path:   path,
				Line:   keyNode.Line,
				Name:   entry.Name,
				Reason: "duplicate definition, the first one is used",
			})
			continue
		}
		seen[entry.Name] = true
		file.Entries = append(file.Entries, entry)
	}
	return file
}

// parseDefinition accepts either `name: command` or `name: {command: ..., description: ..., disabled: ...}`.
func parseDefinition(keyNode, valueNode *yaml.Node) (alias.Alias, *alias.ParseIssue) {
	if keyNode.Kind != yaml.ScalarNode {
		return alias.Alias{}, &alias.ParseIssue{Line: keyNode.Line, Reason: "alias name must be a plain string"}
	}
	name := keyNode.Value
	if !alias.IsValidName(name) {
		return alias.Alias{}, &alias.ParseIssue{Line: keyNode.Line, Name: name, Reason: "invalid alias name"}
	}

	var entry alias.Alias
	switch valueNode.Kind {
	case yaml.ScalarNode:
		if valueNode.Tag != "!!null" {
			entry.Command = valueNode.Value
		}
	case yaml.MappingNode:
		for i := 0; i+1 < len(valueNode.Content); i += 2 {
			key := valueNode.Content[i].Value
			if !allowedDefinitionKeys[key] {
				return alias.Alias{}, &alias.ParseIssue{
					Line:   valueNode.Content[i].Line,
					Name:   name,
					Reason: "unknown field '" + key + "'",
				}
			}
		}
		if err := valueNode.Decode(&entry); err != nil {
			return alias.Alias{}, &alias.ParseIssue{Line: valueNode.Line, Name: name, Reason: err.Error()}
		}
	default:
		return alias.Alias{}, &alias.ParseIssue{
			Line:   valueNode.Line,
			Name:   name,
			Reason: "definition must be a command string or a mapping",
		}
	}

	entry.Name = name
	entry.Command = strings.TrimSpace(entry.Command)
	entry.Description = strings.TrimSpace(entry.Description)
	if entry.Command == "" {
		return alias.Alias{}, &alias.ParseIssue{Line: keyNode.Line, Name: name, Reason: "empty command"}
	}
	return entry, nil
}
