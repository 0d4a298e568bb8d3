package gridtree

import "fmt"

// assertInvariant panics with a formatted message when cond is false. It guards the
// structural invariants described in spec §7: an empty traversal cursor
// dereferenced, a remove() routed through the wrong traversal mode, or a
// non-root node missing its parent link. None of these are recoverable; a
// caller hitting one has a bug, not bad data.
func assertInvariant(cond bool, format string, args ...any) {
	if !cond {
		panic("gridtree: " + fmt.Sprintf(format, args...))
	}
}
