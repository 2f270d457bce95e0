package importing

import "protoref/internal/common"

//go:generate go tool stringer -type=Relation -output=relation_string.go

// Relation is the position of a referenced type's package relative to the
// package of the referencing code.
type Relation int

const (
	// RelationUnrelated means neither package contains the other.
	RelationUnrelated Relation = iota
	// RelationSame means both packages are equal.
	RelationSame
	// RelationDescendant means the referenced package is nested in the current one.
	RelationDescendant
	// RelationAncestor means the current package is nested in the referenced one.
	RelationAncestor
)

// Classify compares two package paths segment by segment.
func Classify(current, owner []string) Relation {
	switch {
	case len(current) == len(owner) && common.HasSegmentPrefix(owner, current):
		return RelationSame
	case len(owner) > len(current) && common.HasSegmentPrefix(owner, current):
		return RelationDescendant
	case len(current) > len(owner) && common.HasSegmentPrefix(current, owner):
		return RelationAncestor
	default:
		return RelationUnrelated
	}
}
