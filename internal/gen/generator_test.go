package gen

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"protoref/internal/diagnostic"
	"protoref/internal/manifest"
)

func TestGenerator_Run(t *testing.T) {
	yamlContent := `
version: "1"
modules:
  - package: package.deeply.nested.child
    references:
      - package.deeply.nested.Message
      - Message
  - package: ""
    references:
      - child_package.example_message
      - .google.protobuf.BoolValue
`
	f, err := manifest.Parse([]byte(yamlContent))
	require.NoError(t, err)

	results, diags := NewGenerator(DefaultConfig(), nil).Run(f)
	require.True(t, diags.IsValid(), spew.Sdump(diags))
	require.Len(t, results, 2)

	first := results[0]
	assert.Equal(t, "package.deeply.nested.child", first.Package)
	assert.Equal(t, []string{"from .. import Message", "from ..... import Message"}, first.Imports)
	assert.Equal(t, []Reference{
		{TypeName: "package.deeply.nested.Message", Symbol: "Message"},
		{TypeName: "Message", Symbol: "Message"},
	}, first.References)

	second := results[1]
	assert.Equal(t, []string{"from . import child_package"}, second.Imports)
	assert.Equal(t, "from . import child_package\n", second.ImportBlock)
	assert.Equal(t, "child_package.ExampleMessage", second.References[0].Symbol)
	assert.Equal(t, "Optional[bool]", second.References[1].Symbol)
}

func TestGenerator_RunManifestOverrides(t *testing.T) {
	yamlContent := `
unwrap_well_known: false
well_known_module: vendor.wkt
modules:
  - package: app
    references: [.google.protobuf.BoolValue, .google.protobuf.Empty]
`
	f, err := manifest.Parse([]byte(yamlContent))
	require.NoError(t, err)

	g := NewGenerator(DefaultConfig(), nil)

	results, diags := g.Run(f)
	require.True(t, diags.IsValid())
	require.Len(t, results, 1)

	assert.Equal(t, []string{"import vendor.wkt as vendor_wkt"}, results[0].Imports)
	assert.Equal(t, "vendor_wkt.BoolValue", results[0].References[0].Symbol)
	assert.Equal(t, "vendor_wkt.Empty", results[0].References[1].Symbol)

	// overrides apply to the run only
	assert.Equal(t, DefaultConfig(), g.Config())
}

func TestGenerator_RunReportsContractViolations(t *testing.T) {
	f := &manifest.File{Modules: []manifest.Module{{
		Package:    "a.c",
		References: []string{"a.b.Message", "", "a.Message", "a.Message"},
	}}}

	results, diags := NewGenerator(DefaultConfig(), nil).Run(f)

	require.Len(t, diags.Errors, 2, spew.Sdump(diags))
	assert.Equal(t, diagnostic.CodeUnrelatedPackages, diags.Errors[0].Code)
	assert.Equal(t, "a.b.Message", diags.Errors[0].Reference)
	assert.Equal(t, diagnostic.CodeEmptyTypeName, diags.Errors[1].Code)

	assert.Empty(t, diags.Warnings)

	require.Len(t, results, 1)
	assert.Equal(t, []string{"from .. import Message"}, results[0].Imports)
	assert.Len(t, results[0].References, 1)
}

func TestGenerator_RunWarnsOnRepeatedPackage(t *testing.T) {
	f := &manifest.File{Modules: []manifest.Module{
		{Package: "a", References: []string{"a.b.Message"}},
		{Package: "x", References: []string{"Message"}},
		{Package: "a", References: []string{"Message"}},
	}}

	results, diags := NewGenerator(DefaultConfig(), nil).Run(f)

	require.True(t, diags.IsValid(), spew.Sdump(diags))
	require.Len(t, diags.Warnings, 1)
	assert.Equal(t, diagnostic.CodeDuplicatePackage, diags.Warnings[0].Code)
	assert.Equal(t, "a", diags.Warnings[0].Package)

	require.Len(t, results, 3)
	assert.Equal(t, "a", results[2].Package)
	assert.Equal(t, []string{"from .. import Message"}, results[2].Imports)
}
