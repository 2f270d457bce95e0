// Package casing converts schema identifiers into the class-name form used
// by generated code.
//
// Only the leaf symbol of a reference is ever converted; package segments
// are used verbatim.
package casing
