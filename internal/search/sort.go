package search

import (
	"cmp"
	"slices"
)

// Compare orders matches by name, version, bin path and description, in that
// order. An absent bin or description compares as the empty string.
func Compare(a, b Match) int {
	return cmp.Or(
		cmp.Compare(a.Name, b.Name),
		cmp.Compare(a.Version, b.Version),
		cmp.Compare(deref(a.Bin), deref(b.Bin)),
		cmp.Compare(deref(a.Description), deref(b.Description)),
	)
}

// Less reports whether a sorts before b.
func Less(a, b Match) bool { return Compare(a, b) < 0 }

// Sort sorts matches in place by Compare.
func Sort(matches []Match) {
	slices.SortFunc(matches, Compare)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
