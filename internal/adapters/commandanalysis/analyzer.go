package commandanalysis

import (
	"fmt"
	"strings"

	"github.com/AntonioJCosta/aliases/internal/core/domain/command"
	"github.com/AntonioJCosta/aliases/internal/core/ports"
	"mvdan.cc/sh/v3/syntax"
)

// ShellAnalyzer analyzes commands with a bash parser.
type ShellAnalyzer struct {
	parser  *syntax.Parser
	printer *syntax.Printer
}

// NewShellAnalyzer creates a new ShellAnalyzer.
func NewShellAnalyzer() ports.CommandAnalyzer {
	return &ShellAnalyzer{
		parser:  syntax.NewParser(syntax.Variant(syntax.LangBash)),
		printer: syntax.NewPrinter(),
	}
}

// Analyze parses commandStr and breaks it down into its components.
func (a *ShellAnalyzer) Analyze(commandStr string) (command.AnalyzedCommand, error) {
	result := command.AnalyzedCommand{Original: commandStr}

	trimmed := strings.TrimSpace(commandStr)
	if trimmed == "" {
		return result, fmt.Errorf("empty command")
	}

	file, err := a.parser.Parse(strings.NewReader(trimmed), "")
	if err != nil {
		return result, fmt.Errorf("invalid shell syntax: %w", err)
	}
	if len(file.Stmts) == 0 {
		// Only comments.
		return result, fmt.Errorf("command has no statements")
	}

	call, isSimple := simpleCall(file)
	result.IsComplex = !isSimple
	if call == nil {
		return result, nil
	}
	result.CommandName = commandName(call)

	if isSimple {
		// Printed from the tree, so no terminator or comment swallows appended arguments.
		var b strings.Builder
		if err := a.printer.Print(&b, call); err != nil {
			return result, fmt.Errorf("failed to print command: %w", err)
		}
		result.Invocation = strings.TrimSpace(b.String())
	}
	return result, nil
}
