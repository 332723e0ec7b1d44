package primitives

import "strings"

// Path addresses a module by the ordered keys leading to it from the root.
// The empty Path denotes the root module.
type Path []string

// ParsePath splits a slash or dot separated path. Empty segments are dropped,
// so "", "/" and "." all yield the root path. Keys containing '/' or '.'
// cannot be addressed this way; build the Path literal instead.
func ParsePath(s string) Path {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == '/' || r == '.'
	})
	p := make(Path, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			p = append(p, f)
		}
	}
	return p
}

// IsRoot reports whether p addresses the root module.
func (p Path) IsRoot() bool {
	return len(p) == 0
}

// Parent returns p without its last segment. The root's parent is the root.
func (p Path) Parent() Path {
	if len(p) == 0 {
		return Path{}
	}
	// Capped so appending to the parent never writes into p.
	return p[: len(p)-1 : len(p)-1]
}

// Key returns the last segment of p, or "" for the root.
func (p Path) Key() string {
	if len(p) == 0 {
		return ""
	}
	return p[len(p)-1]
}

// Child returns a fresh path extending p by key.
func (p Path) Child(key string) Path {
	out := make(Path, len(p)+1)
	copy(out, p)
	out[len(p)] = key
	return out
}

// String joins the segments with ".", the form used in diagnostics.
func (p Path) String() string {
	return strings.Join(p, ".")
}
