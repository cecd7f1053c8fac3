/*
Package alias defines the core domain entities for aliases and the
directory scopes they are defined in.
*/
package alias

import "regexp"

// FileName is the name of the alias file looked up in every directory.
const FileName = ".aliases"

/*
Alias is a named shorthand for a shell command, as read from a single
.aliases file. This is a core domain entity.
*/
type Alias struct {
	Name        string `yaml:"-"`
	Command     string `yaml:"command"`
	Description string `yaml:"description,omitempty"`
	Disabled    bool   `yaml:"disabled,omitempty"`
}

// File is the ordered content of one .aliases file.
type File struct {
	Path    string
	Entries []Alias
	// Issues holds the entries that were skipped while parsing.
	Issues []*ParseIssue
}

var validNameRegex = regexp.MustCompile(`^[A-Za-z0-9_][A-Za-z0-9_.:+@-]*$`)

// IsValidName reports whether name can be used as an alias and as a shell function name.
func IsValidName(name string) bool {
	return validNameRegex.MatchString(name)
}
