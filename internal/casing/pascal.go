package casing

import "github.com/iancoleman/strcase"

// PascalCase converts a lower/underscore identifier into PascalCase.
// Examples:
//   - "example_message" -> "ExampleMessage"
//   - "Message" -> "Message"
//   - "http_request2" -> "HttpRequest2"
//   - "innerMessage" -> "InnerMessage"
//
// Separators ("_", "-", " ", ".") are dropped and the letter after them is
// upper-cased, so already PascalCase input is returned unchanged.
func PascalCase(s string) string {
	return strcase.ToCamel(s)
}
