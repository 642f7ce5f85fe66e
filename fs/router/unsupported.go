package router

import (
	"context"

	"github.com/jmgilman/go/vfs/fs/core"
)

// ReadDir is not supported.
func (r *Router) ReadDir(_ context.Context, name string) (core.ReadDir, error) {
	return nil, unsupported("readdir", name)
}

// Stat is not supported.
func (r *Router) Stat(_ context.Context, name string) (core.FileAttr, error) {
	return nil, unsupported("stat", name)
}

// Lstat is not supported.
func (r *Router) Lstat(_ context.Context, name string) (core.FileAttr, error) {
	return nil, unsupported("lstat", name)
}

// Readlink is not supported.
func (r *Router) Readlink(_ context.Context, name string) (string, error) {
	return "", unsupported("readlink", name)
}

// Symlink is not supported.
func (r *Router) Symlink(_ context.Context, _, newname string) error {
	return unsupported("symlink", newname)
}

// Link is not supported.
func (r *Router) Link(_ context.Context, _, newname string) error {
	return unsupported("link", newname)
}

// Canonicalize is not supported.
func (r *Router) Canonicalize(_ context.Context, name string) (string, error) {
	return "", unsupported("canonicalize", name)
}

// RemoveAll is not supported.
func (r *Router) RemoveAll(_ context.Context, name string) error {
	return unsupported("remove_all", name)
}

// Mkdir is not supported.
func (r *Router) Mkdir(_ context.Context, name string) error {
	return unsupported("mkdir", name)
}
