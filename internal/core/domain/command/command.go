package command

// AnalyzedCommand holds the results of analyzing an alias command string.
type AnalyzedCommand struct {
	Original    string
	CommandName string // The first word, when it is a plain literal
	// IsComplex is true for anything other than a single simple command:
	// pipelines, lists, redirections, subshells, background jobs.
	IsComplex bool
	// Invocation is the simple command printed back from its syntax tree,
	// without statement terminators or comments. Empty for complex commands.
	Invocation string
}
