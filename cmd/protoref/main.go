// Package main provides the CLI entrypoint for protoref.
//
// protoref resolves fully qualified schema type references into the local
// symbols and relative import directives generated code needs:
//   - resolve: resolve references made from one package
//   - run: resolve a YAML manifest of output modules
//   - wellknown: list the well-known type table
package main

import (
	"fmt"
	"os"
)

var version = "dev"

func main() {
	if err := newRootCmd(version, os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
