package importing

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyTypeName is returned when the referenced type name has no segments.
	ErrEmptyTypeName = errors.New("empty type name")
	// ErrMalformedName is returned when the type name or package has an empty segment.
	ErrMalformedName = errors.New("empty segment in dotted name")
	// ErrUnrelatedPackages is returned when the referenced type's package is
	// neither the current package, one of its descendants nor one of its ancestors.
	ErrUnrelatedPackages = errors.New("packages are not related by ancestry")
)

// ContractError reports a reference the resolver is not defined for.
// It always indicates a bug in the caller, never an environment fault.
type ContractError struct {
	// Package is the package of the referencing code.
	Package string
	// TypeName is the referenced fully qualified type name.
	TypeName string
	// Err is one of the sentinel errors of this package.
	Err error
}

// Error implements the error interface.
func (e *ContractError) Error() string {
	return fmt.Sprintf("resolving %q from package %q: %v", e.TypeName, e.Package, e.Err)
}

// Unwrap returns the underlying sentinel error.
func (e *ContractError) Unwrap() error {
	return e.Err
}
