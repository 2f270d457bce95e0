package wellknown

import (
	"slices"
	"strings"

	"protoref/internal/common"
)

// DefaultModule is the module that ships precompiled well-known types.
const DefaultModule = "betterproto.lib.google.protobuf"

// Package is the schema package all well-known types live in.
const Package = "google.protobuf"

// Native optional-scalar types wrapper entries unwrap to.
const (
	NativeFloat = "Optional[float]"
	NativeInt   = "Optional[int]"
	NativeBool  = "Optional[bool]"
	NativeStr   = "Optional[str]"
	NativeBytes = "Optional[bytes]"
)

// Entry describes one well-known type.
type Entry struct {
	// Name is the fully qualified identifier, without a leading dot.
	Name string
	// Symbol is the type's name inside the external module.
	Symbol string
	// Kind tells whether the entry can be unwrapped.
	Kind Kind
	// Native is the optional-scalar equivalent. Set only for KindScalar.
	Native string
}

// IsWrapper reports whether the entry unwraps to a native type.
func (e Entry) IsWrapper() bool {
	return e.Kind == KindScalar
}

// Table is an immutable lookup of well-known types bound to one external module.
// A Table is safe for concurrent use.
type Table struct {
	module    string
	alias     string
	directive string
	entries   map[string]Entry
}

// NewTable builds the table for the given external module path.
// An empty module selects DefaultModule.
func NewTable(module string) *Table {
	if module == "" {
		module = DefaultModule
	}

	alias := strings.ReplaceAll(module, ".", "_")

	t := &Table{
		module:    module,
		alias:     alias,
		directive: "import " + module + " as " + alias,
		entries:   make(map[string]Entry),
	}

	for _, e := range builtinEntries() {
		t.entries[e.Name] = e
	}

	return t
}

func builtinEntries() []Entry {
	wrappers := []struct{ symbol, native string }{
		{"DoubleValue", NativeFloat},
		{"FloatValue", NativeFloat},
		{"Int32Value", NativeInt},
		{"Int64Value", NativeInt},
		{"UInt32Value", NativeInt},
		{"UInt64Value", NativeInt},
		{"BoolValue", NativeBool},
		{"StringValue", NativeStr},
		{"BytesValue", NativeBytes},
	}

	structural := []string{
		"Empty",
		"Struct",
		"ListValue",
		"Value",
		"NullValue",
		"Any",
		"Timestamp",
		"Duration",
		"FieldMask",
	}

	entries := make([]Entry, 0, len(wrappers)+len(structural))

	for _, w := range wrappers {
		entries = append(entries, Entry{
			Name:   Package + "." + w.symbol,
			Symbol: w.symbol,
			Kind:   KindScalar,
			Native: w.native,
		})
	}

	for _, s := range structural {
		entries = append(entries, Entry{
			Name:   Package + "." + s,
			Symbol: s,
			Kind:   KindExternalSymbol,
		})
	}

	return entries
}

// Module returns the external module path.
func (t *Table) Module() string { return t.module }

// Alias returns the local alias the external module is imported under.
func (t *Table) Alias() string { return t.alias }

// Import returns the single import directive shared by all external hits.
func (t *Table) Import() string { return t.directive }

// Lookup finds the entry for a fully qualified type name.
// Matching is exact; only the leading "." marker is ignored.
func (t *Table) Lookup(typeName string) (Entry, bool) {
	e, ok := t.entries[common.TrimDotted(typeName)]

	return e, ok
}

// Resolve returns the symbol for entry and the import directive it needs.
// The directive is empty when the entry unwraps to a native type.
func (t *Table) Resolve(e Entry, unwrap bool) (symbol, directive string) {
	if unwrap && e.IsWrapper() {
		return e.Native, ""
	}

	return t.alias + "." + e.Symbol, t.directive
}

// Entries returns all entries ordered by name.
func (t *Table) Entries() []Entry {
	out := make([]Entry, 0, len(t.entries))
	for _, e := range t.entries {
		out = append(out, e)
	}

	slices.SortFunc(out, func(a, b Entry) int {
		return strings.Compare(a.Name, b.Name)
	})

	return out
}
