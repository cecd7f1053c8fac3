package ports

import "github.com/AntonioJCosta/aliases/internal/core/domain/command"

/*
CommandAnalyzer defines the contract for a service that analyzes a command string.
This is a driven port, representing a domain capability.
*/
type CommandAnalyzer interface {
	// Analyze returns an error when commandStr is not valid shell syntax.
	Analyze(commandStr string) (command.AnalyzedCommand, error)
}
