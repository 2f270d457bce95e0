package importing

import (
	"strings"

	"protoref/internal/casing"
	"protoref/internal/common"
	"protoref/internal/wellknown"
)

// Ref is the outcome of resolving one type reference.
type Ref struct {
	// Symbol is the expression generated code uses at the reference site.
	Symbol string
	// Import is the directive that brings Symbol into scope, or empty if none is needed.
	Import string
}

// Resolver resolves type references relative to a current package.
// It holds no per-call state and may be shared.
type Resolver struct {
	table *wellknown.Table
}

// NewResolver creates a Resolver backed by the given well-known table.
// A nil table selects a table for wellknown.DefaultModule.
func NewResolver(table *wellknown.Table) *Resolver {
	if table == nil {
		table = wellknown.NewTable("")
	}

	return &Resolver{table: table}
}

// Table returns the well-known table the resolver consults.
func (r *Resolver) Table() *wellknown.Table {
	return r.table
}

// Resolve computes the symbol and import directive for typeName referenced
// from code in pkg. It has no side effects.
func (r *Resolver) Resolve(pkg, typeName string, unwrap bool) (Ref, error) {
	segments := common.SplitDotted(typeName)
	if common.IsEmpty(segments) {
		return Ref{}, &ContractError{Package: pkg, TypeName: typeName, Err: ErrEmptyTypeName}
	}

	current := common.SplitDotted(pkg)
	if common.HasEmptySegment(segments) || common.HasEmptySegment(current) {
		return Ref{}, &ContractError{Package: pkg, TypeName: typeName, Err: ErrMalformedName}
	}

	if e, ok := r.table.Lookup(typeName); ok {
		symbol, directive := r.table.Resolve(e, unwrap)

		return Ref{Symbol: symbol, Import: directive}, nil
	}

	owner := common.Init(segments)
	name, _ := common.Last(segments)
	symbol := casing.PascalCase(name)

	switch Classify(current, owner) {
	case RelationSame:
		return Ref{Symbol: symbol}, nil
	case RelationDescendant:
		return referenceDescendant(owner[len(current):], symbol), nil
	case RelationAncestor:
		return referenceAncestor(len(current)-len(owner), symbol), nil
	default:
		return Ref{}, &ContractError{Package: pkg, TypeName: typeName, Err: ErrUnrelatedPackages}
	}
}

// Reference resolves typeName from pkg and records the needed directive in imports.
func (r *Resolver) Reference(pkg, typeName string, imports ImportSet, unwrap bool) (string, error) {
	ref, err := r.Resolve(pkg, typeName, unwrap)
	if err != nil {
		return "", err
	}

	imports.Add(ref.Import)

	return ref.Symbol, nil
}

// MustReference is like Reference but panics on a contract violation.
func (r *Resolver) MustReference(pkg, typeName string, imports ImportSet, unwrap bool) string {
	symbol, err := r.Reference(pkg, typeName, imports, unwrap)
	if err != nil {
		panic(err)
	}

	return symbol
}

// referenceDescendant imports a package nested below the current one.
// relative holds the package segments below the current package.
func referenceDescendant(relative []string, symbol string) Ref {
	if common.IsSingle(relative) {
		return Ref{
			Symbol: relative[0] + "." + symbol,
			Import: "from . import " + relative[0],
		}
	}

	from := strings.Join(common.Init(relative), ".")
	last, _ := common.Last(relative)
	alias := strings.Join(relative, "_")

	return Ref{
		Symbol: alias + "." + symbol,
		Import: "from ." + from + " import " + last + " as " + alias,
	}
}

// referenceAncestor imports symbol from a package levels above the current one.
// A parent (levels == 1) is reached with "..".
func referenceAncestor(levels int, symbol string) Ref {
	return Ref{
		Symbol: symbol,
		Import: "from " + strings.Repeat(".", levels+1) + " import " + symbol,
	}
}
