package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitDotted(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"", nil},
		{".", nil},
		{"Message", []string{"Message"}},
		{"package.child.Message", []string{"package", "child", "Message"}},
		{".google.protobuf.Empty", []string{"google", "protobuf", "Empty"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, SplitDotted(tt.input))
		})
	}
}

func TestHasSegmentPrefix(t *testing.T) {
	tests := []struct {
		name     string
		path     []string
		prefix   []string
		expected bool
	}{
		{"empty prefix", []string{"a", "b"}, nil, true},
		{"both empty", nil, nil, true},
		{"equal", []string{"a", "b"}, []string{"a", "b"}, true},
		{"strict prefix", []string{"a", "b", "c"}, []string{"a", "b"}, true},
		{"longer prefix", []string{"a"}, []string{"a", "b"}, false},
		{"segment mismatch", []string{"package2", "child"}, []string{"package"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HasSegmentPrefix(tt.path, tt.prefix))
		})
	}
}

func TestHasEmptySegment(t *testing.T) {
	assert.False(t, HasEmptySegment(nil))
	assert.False(t, HasEmptySegment(SplitDotted("a.b.Message")))
	assert.True(t, HasEmptySegment(SplitDotted("a..Message")))
	assert.True(t, HasEmptySegment(SplitDotted("..")))
	assert.True(t, HasEmptySegment(SplitDotted("package.")))
}

func TestLastAndInit(t *testing.T) {
	last, ok := Last([]string{"a", "b", "c"})
	assert.True(t, ok)
	assert.Equal(t, "c", last)
	assert.Equal(t, []string{"a", "b"}, Init([]string{"a", "b", "c"}))

	_, ok = Last([]string(nil))
	assert.False(t, ok)
	assert.Nil(t, Init([]string(nil)))
}
