package casing

import (
	"testing"
)

func TestPascalCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		// Basic cases
		{"example_message", "ExampleMessage"},
		{"message", "Message"},
		{"Message", "Message"},
		{"ExampleMessage", "ExampleMessage"},
		{"SearchRequest", "SearchRequest"},

		// Mixed forms
		{"innerMessage", "InnerMessage"},
		{"http_request2", "HttpRequest2"},
		{"order-item", "OrderItem"},
		{"a_b_c", "ABC"},

		// Edge cases
		{"", ""},
		{"__leading", "Leading"},
		{"trailing_", "Trailing"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := PascalCase(tt.input)
			if result != tt.expected {
				t.Errorf("PascalCase(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}
