package alias

import (
	"reflect"
	"testing"
)

func TestScope_String(t *testing.T) {
	tests := []struct {
		scope Scope
		want  string
	}{
		{ScopeLocal, "local"},
		{ScopeParent, "parent"},
		{ScopeGlobal, "global"},
		{Scope(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.scope.String(); got != tt.want {
			t.Errorf("Scope(%d).String() = %q, want %q", tt.scope, got, tt.want)
		}
	}
}

func TestListing_Effective(t *testing.T) {
	local := ScopedAlias{Alias: Alias{Name: "s", Command: "rails s"}, Scope: ScopeLocal}
	parentDup := ScopedAlias{Alias: Alias{Name: "s", Command: "npm start"}, Scope: ScopeParent, Depth: 1}
	parentOther := ScopedAlias{Alias: Alias{Name: "t", Command: "rake test"}, Scope: ScopeParent, Depth: 1}
	disabled := ScopedAlias{Alias: Alias{Name: "gs", Command: "git status -sb", Disabled: true}, Scope: ScopeLocal}
	globalGs := ScopedAlias{Alias: Alias{Name: "gs", Command: "git status"}, Scope: ScopeGlobal, Depth: GlobalDepth}
	globalOnly := ScopedAlias{Alias: Alias{Name: "g", Command: "git"}, Scope: ScopeGlobal, Depth: GlobalDepth}

	listing := Listing{Entries: []ScopedAlias{local, disabled, parentDup, parentOther, globalGs, globalOnly}}

	want := []ScopedAlias{local, parentOther, globalOnly}
	if got := listing.Effective(); !reflect.DeepEqual(got, want) {
		t.Errorf("Effective() = %#v, want %#v", got, want)
	}
}

func TestListing_Lookup(t *testing.T) {
	listing := Listing{Entries: []ScopedAlias{
		{Alias: Alias{Name: "s", Command: "rails s"}, Scope: ScopeLocal},
		{Alias: Alias{Name: "s", Command: "npm start"}, Scope: ScopeParent, Depth: 1},
		{Alias: Alias{Name: "off", Command: "true", Disabled: true}, Scope: ScopeLocal},
		{Alias: Alias{Name: "off", Command: "false"}, Scope: ScopeGlobal, Depth: GlobalDepth},
	}}

	got, ok := listing.Lookup("s")
	if !ok || got.Command != "rails s" {
		t.Errorf("Lookup(s) = %#v, %v; want the local definition", got, ok)
	}
	if _, ok := listing.Lookup("off"); ok {
		t.Error("Lookup(off) found a definition shadowed by a disabled one")
	}
	if _, ok := listing.Lookup("missing"); ok {
		t.Error("Lookup(missing) = true, want false")
	}
}

func TestIsValidName(t *testing.T) {
	valid := []string{"s", "server", "db:migrate", "run-tests", "g++", "_private", "v1.2", "x@y"}
	invalid := []string{"", "-flag", "with space", "a=b", "a/b", "a;b", "$x", "`x`", "a'b"}

	for _, name := range valid {
		if !IsValidName(name) {
			t.Errorf("IsValidName(%q) = false, want true", name)
		}
	}
	for _, name := range invalid {
		if IsValidName(name) {
			t.Errorf("IsValidName(%q) = true, want false", name)
		}
	}
}
