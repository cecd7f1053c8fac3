package shellscript

import (
	"fmt"
	"strings"

	"github.com/AntonioJCosta/aliases/internal/core/ports"
	"go.uber.org/zap"
)

// FunctionsVar is the shell variable that remembers the functions defined by the last rehash.
const FunctionsVar = "ALIASES_FUNCTIONS"

// Supported shells.
const (
	Bash = "bash"
	Zsh  = "zsh"
	Sh   = "sh"
	Fish = "fish"
)

// Renderer implements ports.ScriptRenderer for bash, zsh, sh and fish.
type Renderer struct {
	analyzer ports.CommandAnalyzer
	logger   *zap.Logger
}

// NewRenderer creates a new Renderer. It panics if analyzer is nil.
func NewRenderer(analyzer ports.CommandAnalyzer, logger *zap.Logger) ports.ScriptRenderer {
	if analyzer == nil {
		panic("analyzer cannot be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Renderer{analyzer: analyzer, logger: logger}
}

// Render implements the ports.ScriptRenderer interface.
// Removed functions are dropped first, then every alias is defined in plan order,
// and the last line records the defined names in FunctionsVar.
func (r *Renderer) Render(shell string, plan ports.RehashPlan) (string, []error, error) {
	d, err := dialectFor(shell)
	if err != nil {
		return "", nil, err
	}

	var (
		b       strings.Builder
		issues  []error
		defined []string
		defs    strings.Builder
		dropped = append([]string(nil), plan.Remove...)
	)

	for _, entry := range plan.Define {
		if !d.validName(entry.Name) {
			issues = append(issues, fmt.Errorf("%s: alias '%s' not rehashed: not a valid %s function name", entry.Source, entry.Name, d.name))
			continue
		}
		body, err := r.functionBody(entry.Name, entry.Command, d)
		if err != nil {
			// A stale definition from an earlier rehash must not survive.
			issues = append(issues, fmt.Errorf("%s: alias '%s' not rehashed: %w", entry.Source, entry.Name, err))
			dropped = append(dropped, entry.Name)
			continue
		}
		defs.WriteString(d.define(entry.Name, body))
		defined = append(defined, entry.Name)
	}

	for _, name := range dropped {
		b.WriteString(d.remove(name))
	}
	b.WriteString(defs.String())

	exported, err := d.export(FunctionsVar, strings.Join(defined, " "))
	if err != nil {
		return "", issues, fmt.Errorf("failed to quote function names: %w", err)
	}
	b.WriteString(exported)

	r.logger.Debug("rendered rehash script",
		zap.String("shell", d.name),
		zap.Int("defined", len(defined)),
		zap.Int("removed", len(dropped)),
		zap.Int("issues", len(issues)))
	return b.String(), issues, nil
}

// functionBody analyzes command and returns the shell code run by the function named name.
func (r *Renderer) functionBody(name, commandStr string, d dialect) (string, error) {
	analyzed, err := r.analyzer.Analyze(commandStr)
	if err != nil {
		return "", err
	}
	if analyzed.IsComplex {
		return d.complexBody(name, strings.TrimSpace(analyzed.Original)), nil
	}
	body := analyzed.Invocation
	if analyzed.CommandName == name {
		// Calling the function from itself would recurse forever.
		body = "command " + body
	}
	return body + " " + d.forwardArgs, nil
}

// Hook implements the ports.ScriptRenderer interface.
func (r *Renderer) Hook(shell, executable string) (string, error) {
	d, err := dialectFor(shell)
	if err != nil {
		return "", err
	}
	if executable == "" {
		executable = "aliases"
	}
	quoted, err := d.quote(executable)
	if err != nil {
		return "", fmt.Errorf("failed to quote executable path %s: %w", executable, err)
	}
	return d.hook(quoted), nil
}
