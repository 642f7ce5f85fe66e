package pathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", "."},
		{"/", "."},
		{"/a/b", "a/b"},
		{"a/b/", "a/b"},
		{"/a/./b/../c", "a/c"},
		{`a\b\c`, "a/b/c"},
		{"/../../x", "x"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.in), "Normalize(%q)", tt.in)
	}
}

func TestNormalizePrefix(t *testing.T) {
	assert.Equal(t, "", NormalizePrefix(""))
	assert.Equal(t, "", NormalizePrefix("."))
	assert.Equal(t, "", NormalizePrefix("/"))
	assert.Equal(t, "tenant/a", NormalizePrefix("/tenant/a/"))
}

func TestJoinPath(t *testing.T) {
	tests := []struct {
		prefix, name, want string
	}{
		{"", "/", ""},
		{"", "/a/b.txt", "a/b.txt"},
		{"p", "/", "p"},
		{"p", "/a/b.txt", "p/a/b.txt"},
		{"p", "/a/../b.txt", "p/b.txt"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, JoinPath(tt.prefix, tt.name), "JoinPath(%q, %q)", tt.prefix, tt.name)
	}
}

func TestDirKeyAndIsWithin(t *testing.T) {
	assert.Equal(t, "", DirKey(""))
	assert.Equal(t, "a/b/", DirKey("a/b"))

	assert.True(t, IsWithin("a/b", "a"))
	assert.True(t, IsWithin("a/b/c", "a/b"))
	assert.False(t, IsWithin("a", "a"))
	assert.False(t, IsWithin("ab", "a"))
	assert.True(t, IsWithin("a", ""))
	assert.False(t, IsWithin("", ""))
}
