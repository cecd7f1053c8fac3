package alias

// Scope records which level of the directory hierarchy an alias comes from.
type Scope int

const (
	ScopeLocal Scope = iota
	ScopeParent
	ScopeGlobal
)

func (s Scope) String() string {
	switch s {
	case ScopeLocal:
		return "local"
	case ScopeParent:
		return "parent"
	case ScopeGlobal:
		return "global"
	default:
		return "unknown"
	}
}

// GlobalDepth is the Depth of aliases read from the home directory file.
const GlobalDepth = -1

/*
ScopedAlias is an Alias tagged with its provenance.
Depth is 0 for the starting directory, n for its n-th ancestor and
GlobalDepth for the global file.
*/
type ScopedAlias struct {
	Alias
	Scope  Scope
	Source string
	Depth  int
}

// Listing is the merged, precedence-ordered view of every alias visible from a directory.
type Listing struct {
	Entries []ScopedAlias
	Issues  []error
}

// Effective returns the definition that wins for each name: the nearest one.
// A disabled definition shadows farther ones without being effective itself.
func (l Listing) Effective() []ScopedAlias {
	seen := make(map[string]bool, len(l.Entries))
	effective := make([]ScopedAlias, 0, len(l.Entries))
	for _, entry := range l.Entries {
		if seen[entry.Name] {
			continue
		}
		seen[entry.Name] = true
		if entry.Disabled {
			continue
		}
		effective = append(effective, entry)
	}
	return effective
}

// Lookup returns the effective definition of name, if any.
func (l Listing) Lookup(name string) (ScopedAlias, bool) {
	for _, entry := range l.Entries {
		if entry.Name != name {
			continue
		}
		if entry.Disabled {
			return ScopedAlias{}, false
		}
		return entry, true
	}
	return ScopedAlias{}, false
}
