package alias

import "fmt"

// ParseIssue describes an alias definition, or a whole file, that was skipped.
type ParseIssue struct {
	Path   string
	Line   int
	Name   string // empty when the issue concerns the whole file
	Reason string
}

func (i *ParseIssue) Error() string {
	location := i.Path
	if i.Line > 0 {
		location = fmt.Sprintf("%s:%d", i.Path, i.Line)
	}
	if i.Name == "" {
		return fmt.Sprintf("%s: %s", location, i.Reason)
	}
	return fmt.Sprintf("%s: alias '%s' skipped: %s", location, i.Name, i.Reason)
}
