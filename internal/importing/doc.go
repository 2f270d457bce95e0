// Package importing resolves cross-package type references for generated code.
//
// Given the dotted package the generated code lives in and the fully
// qualified dotted name of a referenced type, a Resolver returns the local
// symbol expression to splice into the output and the relative import
// directive that brings it into scope:
//
//   - same package: bare symbol, no import
//   - descendant package: "from . import child" or
//     "from .a.b import c as a_b_c" for deeper descendants
//   - ancestor package: "from .. import Symbol", one more dot per level
//
// Well-known types are answered from a wellknown.Table before any path
// navigation. Packages that are neither same, descendant nor ancestor are
// rejected with ErrUnrelatedPackages; callers normalize such references
// through a shared root first.
package importing
