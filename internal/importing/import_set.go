package importing

import "slices"

// ImportSet accumulates import directives for one output module.
// Directives are deduplicated by exact string equality.
// An ImportSet is not safe for concurrent use; each module owns its own.
type ImportSet map[string]struct{}

// NewImportSet returns an empty set.
func NewImportSet() ImportSet {
	return make(ImportSet)
}

// Add inserts a directive and reports whether it was not present before.
// Empty directives are ignored.
func (s ImportSet) Add(directive string) bool {
	if directive == "" {
		return false
	}

	if _, ok := s[directive]; ok {
		return false
	}

	s[directive] = struct{}{}

	return true
}

// Has reports whether the directive is in the set.
func (s ImportSet) Has(directive string) bool {
	_, ok := s[directive]

	return ok
}

// Len returns the number of directives.
func (s ImportSet) Len() int {
	return len(s)
}

// Sorted returns the directives in lexical order.
func (s ImportSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for d := range s {
		out = append(out, d)
	}

	slices.Sort(out)

	return out
}
