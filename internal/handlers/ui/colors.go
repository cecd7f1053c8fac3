package ui

import (
	"github.com/AntonioJCosta/aliases/internal/core/domain/alias"
	"github.com/fatih/color"
)

// General Purpose Colors
var (
	InfoColor    = color.New(color.FgCyan).SprintFunc()
	SuccessColor = color.New(color.FgGreen).SprintFunc()
	WarningColor = color.New(color.FgYellow).SprintFunc()
	ErrorColor   = color.New(color.FgRed).SprintFunc()
	DetailColor  = color.New(color.FgHiBlack).SprintFunc() // For less prominent details like source
)

// Alias Specific Colors
var (
	AliasNameColor     = color.New(color.FgYellow).SprintFunc()
	AliasCmdColor      = color.New(color.FgWhite).SprintFunc()
	AliasDisabledColor = color.New(color.FgHiBlack, color.CrossedOut).SprintFunc()
)

// Header Colors
var (
	HeaderColor = color.New(color.FgGreen, color.Bold).SprintFunc()
)

// Scope Colors
var (
	localScopeColor  = color.New(color.FgBlue, color.Bold).SprintFunc()
	parentScopeColor = color.New(color.FgMagenta).SprintFunc()
	globalScopeColor = color.New(color.FgCyan).SprintFunc()
)

// ScopeLabel returns the colored, capitalized name of scope.
func ScopeLabel(scope alias.Scope) string {
	switch scope {
	case alias.ScopeLocal:
		return localScopeColor("Local")
	case alias.ScopeParent:
		return parentScopeColor("Parent")
	case alias.ScopeGlobal:
		return globalScopeColor("Global")
	default:
		return scope.String()
	}
}
