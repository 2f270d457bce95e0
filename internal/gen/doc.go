// Package gen drives reference resolution for generated output modules.
//
// A Module stands for one output module being emitted. It owns a private
// import set, resolves every type reference the module makes and renders
// the accumulated import block once emission is done. A Generator builds
// the well-known table once per run and executes manifests module by module.
package gen
