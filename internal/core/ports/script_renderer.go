package ports

// ScriptRenderer turns rehash plans into shell code that a shell session can eval.
type ScriptRenderer interface {
	// Render returns the script for plan and the issues for aliases that could not be rendered.
	Render(shell string, plan RehashPlan) (script string, issues []error, err error)
	// Hook returns the shell integration snippet that rehashes on directory change.
	Hook(shell, executable string) (string, error)
}
