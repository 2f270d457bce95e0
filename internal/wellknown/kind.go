package wellknown

//go:generate go tool stringer -type=Kind -output=kind_string.go

// Kind tells how a well-known entry resolves.
type Kind int

const (
	_ Kind = iota // zero value is an invalid Kind

	// KindScalar is a wrapper type with a native optional-scalar equivalent.
	KindScalar
	// KindExternalSymbol is a structural type only reachable through the external module.
	KindExternalSymbol
)
