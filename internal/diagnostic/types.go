package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"protoref/internal/common"
	"protoref/internal/importing"
)

// Diagnostic codes.
const (
	CodeEmptyTypeName      = "empty_type_name"
	CodeMalformedName      = "malformed_name"
	CodeUnrelatedPackages  = "unrelated_packages"
	CodeDuplicatePackage   = "duplicate_package"
	CodeResolveFailed      = "resolve_failed"
)

// Diagnostics holds all diagnostic information from a batch run.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Package is the package of the module being generated (if any).
	Package string
	// Reference is the referenced type name this relates to (if any).
	Reference string
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticWarning DiagnosticSeverity = iota + 1
	DiagnosticError
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, pkg, reference string) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity:  DiagnosticError,
		Code:      code,
		Message:   message,
		Package:   pkg,
		Reference: reference,
	})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, pkg, reference string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity:  DiagnosticWarning,
		Code:      code,
		Message:   message,
		Package:   pkg,
		Reference: reference,
	})
}

// AddResolveError records a failed resolution, choosing the code from the
// contract error it wraps.
func (d *Diagnostics) AddResolveError(pkg, reference string, err error) {
	code := CodeResolveFailed

	switch {
	case errors.Is(err, importing.ErrEmptyTypeName):
		code = CodeEmptyTypeName
	case errors.Is(err, importing.ErrMalformedName):
		code = CodeMalformedName
	case errors.Is(err, importing.ErrUnrelatedPackages):
		code = CodeUnrelatedPackages
	}

	d.AddError(code, err.Error(), pkg, reference)
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Package != "" {
		prefix = append(prefix, "["+d.Package+"]")
	}

	if d.Reference != "" {
		prefix = append(prefix, d.Reference)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
