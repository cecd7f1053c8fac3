package commandanalysis

import "mvdan.cc/sh/v3/syntax"

/*
simpleCall returns the call expression of the first statement and whether the
whole command is a single simple command.

A command is complex if it:
 1. Has more than one statement (`a; b`).
 2. Is anything other than a plain call, e.g. `a && b`, `a | b`, `(a)`, loops.
 3. Has redirections or runs in the background, negated or as a coprocess.
 4. Consists only of variable assignments.

For complex commands the first call found, if any, is still returned so the
command name can be reported.
*/
func simpleCall(file *syntax.File) (*syntax.CallExpr, bool) {
	stmt := file.Stmts[0]
	call, isCall := stmt.Cmd.(*syntax.CallExpr)

	if !isCall {
		return firstCall(stmt), false
	}
	isSimple := len(file.Stmts) == 1 &&
		len(stmt.Redirs) == 0 &&
		!stmt.Background &&
		!stmt.Negated &&
		!stmt.Coprocess &&
		len(call.Assigns) == 0 &&
		len(call.Args) > 0
	return call, isSimple
}

// firstCall returns the leftmost call expression under node.
func firstCall(node syntax.Node) *syntax.CallExpr {
	var found *syntax.CallExpr
	syntax.Walk(node, func(n syntax.Node) bool {
		if found != nil {
			return false
		}
		if call, ok := n.(*syntax.CallExpr); ok && len(call.Args) > 0 {
			found = call
			return false
		}
		return true
	})
	return found
}

// commandName returns the first word of call when it is a plain literal.
func commandName(call *syntax.CallExpr) string {
	if len(call.Args) == 0 {
		return ""
	}
	return call.Args[0].Lit()
}
