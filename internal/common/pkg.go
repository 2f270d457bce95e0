package common

import "strings"

// SplitDotted splits a dotted schema name into its segments.
// A single leading "." (the fully-qualified marker) is dropped.
// Returns nil for an empty name, which denotes the root package.
func SplitDotted(name string) []string {
	name = strings.TrimPrefix(name, ".")
	if name == "" {
		return nil
	}

	return strings.Split(name, ".")
}

// TrimDotted returns name without its fully-qualified leading dot.
func TrimDotted(name string) string {
	return strings.TrimPrefix(name, ".")
}

// HasEmptySegment reports whether any segment of a split dotted name is empty,
// as produced by "a..b" or a trailing ".".
func HasEmptySegment(segments []string) bool {
	for _, s := range segments {
		if s == "" {
			return true
		}
	}

	return false
}

// HasSegmentPrefix reports whether prefix is a leading run of path segments.
// Comparison is done per segment, so "package" is not a prefix of "package2".
func HasSegmentPrefix(path, prefix []string) bool {
	if len(prefix) > len(path) {
		return false
	}

	for i := range prefix {
		if path[i] != prefix[i] {
			return false
		}
	}

	return true
}
