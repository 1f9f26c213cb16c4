package shortcut

import "strings"

// Label splits the resolved spelling of spec into display tokens, keeping
// the author's casing: "Command L" becomes ["Command", "L"].
func Label(spec Spec, alternate bool) []string {
	return strings.Fields(spec.For(alternate))
}
