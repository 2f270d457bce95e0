// Package wellknown holds the fixed table of schema standard-library types
// that are resolved without package-path navigation.
//
// Wrapper types either unwrap to a native optional scalar or, when
// unwrapping is disabled, resolve to a symbol of the external well-known
// module. Structural types always resolve to the external module. Every
// external hit funnels through one import directive, so a module that
// references several well-known types emits a single import line.
package wellknown
