package router_test

import (
	"testing"

	"github.com/jmgilman/go/vfs/fs/router"
	"github.com/stretchr/testify/assert"
)

func TestSplitPrefix(t *testing.T) {
	tests := []struct {
		input  string
		prefix string
		rest   string
		ok     bool
	}{
		{"system:/foo/bar.txt", "system", "/foo/bar.txt", true},
		{"sd:/", "sd", "/", true},
		{"sd:", "sd", "", true},
		{"relative/path", "", "relative/path", false},
		{"/abs/no/prefix", "", "/abs/no/prefix", false},
		{":/empty", "", ":/empty", false},
		{"dir/with:colon", "", "dir/with:colon", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			prefix, rest, ok := router.SplitPrefix(tt.input)
			assert.Equal(t, tt.prefix, prefix)
			assert.Equal(t, tt.rest, rest)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestIsAbsolute(t *testing.T) {
	assert.True(t, router.IsAbsolute("system:/"))
	assert.True(t, router.IsAbsolute("system:/a/b"))
	assert.False(t, router.IsAbsolute("system:a"))
	assert.False(t, router.IsAbsolute("/a/b"))
	assert.False(t, router.IsAbsolute("a/b"))
	assert.False(t, router.IsAbsolute(""))
}

func TestJoin(t *testing.T) {
	tests := []struct {
		cwd  string
		name string
		want string
	}{
		{"system:/", "foo.txt", "system:/foo.txt"},
		{"system:/home", "foo.txt", "system:/home/foo.txt"},
		{"system:/home/", "a/./b/../c.txt", "system:/home/a/c.txt"},
		{"system:/home", "../../../etc", "system:/etc"},
		{"system:/home", "", "system:/home"},
		{"system:/home", "sd:/other.txt", "sd:/other.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.cwd+"+"+tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, router.Join(tt.cwd, tt.name))
		})
	}
}
