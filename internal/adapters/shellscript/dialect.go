package shellscript

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/AntonioJCosta/aliases/internal/core/ports"
	"mvdan.cc/sh/v3/syntax"
)

var posixNameRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// dialect holds what differs between the shells a script can be rendered for.
type dialect struct {
	name        string
	forwardArgs string
	lang        syntax.LangVariant
	fish        bool
	strictNames bool
}

func dialectFor(shell string) (dialect, error) {
	switch strings.ToLower(shell) {
	case Bash:
		return dialect{name: Bash, forwardArgs: `"$@"`, lang: syntax.LangBash}, nil
	case Zsh:
		return dialect{name: Zsh, forwardArgs: `"$@"`, lang: syntax.LangBash}, nil
	case Sh:
		return dialect{name: Sh, forwardArgs: `"$@"`, lang: syntax.LangPOSIX, strictNames: true}, nil
	case Fish:
		return dialect{name: Fish, forwardArgs: "$argv", fish: true}, nil
	default:
		return dialect{}, fmt.Errorf("%w: %q (supported: bash, zsh, sh, fish)", ports.ErrUnsupportedShell, shell)
	}
}

// validName reports whether name can be used as a function name in this shell.
func (d dialect) validName(name string) bool {
	if d.strictNames {
		return posixNameRegex.MatchString(name)
	}
	return name != "" && !strings.HasPrefix(name, "-")
}

func (d dialect) define(name, body string) string {
	if !strings.Contains(body, "\n") {
		body = "  " + body
	}
	switch {
	case d.fish:
		return fmt.Sprintf("function %s\n%s\nend\n", name, body)
	case d.name == Sh:
		return fmt.Sprintf("%s() {\n%s\n}\n", name, body)
	default:
		// The function keyword keeps zsh and bash from expanding an alias of the same name.
		return fmt.Sprintf("function %s {\n%s\n}\n", name, body)
	}
}

// complexBody returns the function body for a command that is not a single simple command.
// fish cannot run POSIX lists, loops or tests, so it hands them to sh with the function's arguments.
func (d dialect) complexBody(name, commandStr string) string {
	if d.fish {
		return fmt.Sprintf("sh -c %s %s $argv", fishQuote(commandStr), name)
	}
	return commandStr
}

func (d dialect) remove(name string) string {
	if d.fish {
		return fmt.Sprintf("functions -e %s\n", name)
	}
	return fmt.Sprintf("unset -f %s 2>/dev/null\n", name)
}

func (d dialect) quote(s string) (string, error) {
	if d.fish {
		return fishQuote(s), nil
	}
	return syntax.Quote(s, d.lang)
}

func (d dialect) export(variable, value string) (string, error) {
	quoted, err := d.quote(value)
	if err != nil {
		return "", err
	}
	if d.fish {
		return fmt.Sprintf("set -gx %s %s\n", variable, quoted), nil
	}
	return fmt.Sprintf("export %s=%s\n", variable, quoted), nil
}

func (d dialect) hook(executable string) string {
	switch d.name {
	case Zsh:
		return fmt.Sprintf(`# aliases shell integration (zsh)
_aliases_rehash() {
  eval "$(%s rehash --shell zsh 2>/dev/null)"
}
if (( ! ${chpwd_functions[(I)_aliases_rehash]} )); then
  chpwd_functions+=(_aliases_rehash)
fi
_aliases_rehash
`, executable)
	case Bash:
		return fmt.Sprintf(`# aliases shell integration (bash)
_aliases_rehash() {
  if [[ "$PWD" != "${_ALIASES_LAST_PWD-}" ]]; then
    _ALIASES_LAST_PWD="$PWD"
    eval "$(%s rehash --shell bash 2>/dev/null)"
  fi
}
if [[ ";${PROMPT_COMMAND:-};" != *";_aliases_rehash;"* ]]; then
  PROMPT_COMMAND="_aliases_rehash${PROMPT_COMMAND:+;$PROMPT_COMMAND}"
fi
`, executable)
	case Fish:
		return fmt.Sprintf(`# aliases shell integration (fish)
function _aliases_rehash --on-variable PWD
  %s rehash --shell fish 2>/dev/null | source
end
_aliases_rehash
`, executable)
	default:
		return fmt.Sprintf(`# aliases shell integration (sh)
# sh has no directory change hook: run "aliases rehash" again after cd.
eval "$(%s rehash --shell sh 2>/dev/null)"
`, executable)
	}
}

// fishQuote single-quotes s for fish, where only \ and ' are special inside single quotes.
func fishQuote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `'`, `\'`)
	return "'" + s + "'"
}
