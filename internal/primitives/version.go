package primitives

import (
	"crypto/sha256"
	"fmt"
	"strings"
)

// ComputeVersion derives a deterministic version for a Definition from its
// namespaced flag and the names and kinds of its handlers. Handler bodies are
// not comparable, so swapping one function for another under the same name
// keeps the version.
func ComputeVersion(d Definition) string {
	var b strings.Builder
	fmt.Fprintf(&b, "namespaced=%t;", d.namespaced)
	b.WriteString("getters=")
	b.WriteString(strings.Join(d.GetterNames(), ","))
	b.WriteString(";mutations=")
	b.WriteString(strings.Join(d.MutationNames(), ","))
	b.WriteString(";actions=")
	for _, name := range d.ActionNames() {
		a := d.actions[name]
		fmt.Fprintf(&b, "%s:%s:%t,", name, a.Kind, a.Options.Root)
	}

	hash := sha256.Sum256([]byte(b.String()))
	return fmt.Sprintf("%x", hash[:8])
}
