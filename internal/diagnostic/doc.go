// Package diagnostic provides structured warnings and errors collected while
// resolving a batch of type references.
//
// Key capabilities:
//   - Contract violations reported per module and reference, with a stable code
//   - Warnings for manifests that generate into one package twice
//   - A combined error for callers that only need pass/fail
package diagnostic
