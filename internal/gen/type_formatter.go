package gen

import (
	"bytes"
	"fmt"
	"slices"
	"strings"
	"text/template"

	"protoref/internal/importing"
)

// Reference is one resolved type reference of a module.
type Reference struct {
	// TypeName is the fully qualified dotted name as referenced.
	TypeName string
	// Symbol is the expression generated code uses for it.
	Symbol string
}

// Module accumulates the references and imports of one output module.
// A Module is not safe for concurrent use.
type Module struct {
	pkg      string
	resolver *importing.Resolver
	unwrap   bool
	imports  importing.ImportSet
	refs     []Reference
	symbols  map[string]string
}

// NewModule creates a Module generated into the dotted package pkg.
func NewModule(pkg string, resolver *importing.Resolver, unwrap bool) *Module {
	return &Module{
		pkg:      pkg,
		resolver: resolver,
		unwrap:   unwrap,
		imports:  importing.NewImportSet(),
		symbols:  make(map[string]string),
	}
}

// Package returns the dotted package the module is generated into.
func (m *Module) Package() string {
	return m.pkg
}

// TypeRef returns the symbol to use for typeName inside this module and
// records the import it needs.
func (m *Module) TypeRef(typeName string) (string, error) {
	if symbol, ok := m.symbols[typeName]; ok {
		return symbol, nil
	}

	symbol, err := m.resolver.Reference(m.pkg, typeName, m.imports, m.unwrap)
	if err != nil {
		return "", fmt.Errorf("module %q: %w", m.pkg, err)
	}

	m.symbols[typeName] = symbol
	m.refs = append(m.refs, Reference{TypeName: typeName, Symbol: symbol})

	return symbol, nil
}

// References returns the resolved references in first-use order.
func (m *Module) References() []Reference {
	return slices.Clone(m.refs)
}

// Imports returns the accumulated directives: plain imports first, then
// relative "from" imports, each group in lexical order.
func (m *Module) Imports() []string {
	external, relative := splitImports(m.imports.Sorted())

	return append(external, relative...)
}

// ImportBlock renders the import section of the module.
// Returns an empty string when the module needs no imports.
func (m *Module) ImportBlock() (string, error) {
	external, relative := splitImports(m.imports.Sorted())

	data := importBlockData{External: external, Relative: relative}

	var buf bytes.Buffer
	if err := importBlockTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing template: %w", err)
	}

	return buf.String(), nil
}

// splitImports separates plain imports from relative ones, keeping order.
func splitImports(sorted []string) (external, relative []string) {
	for _, d := range sorted {
		if strings.HasPrefix(d, "from ") {
			relative = append(relative, d)
		} else {
			external = append(external, d)
		}
	}

	return external, relative
}

type importBlockData struct {
	External []string
	Relative []string
}

var importBlockTemplate = template.Must(template.New("imports").Parse(
	`{{range .External}}{{.}}
{{end}}{{if and .External .Relative}}
{{end}}{{range .Relative}}{{.}}
{{end}}`))
