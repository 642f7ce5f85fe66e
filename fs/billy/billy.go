package billy

import (
	"context"
	"errors"
	"os"
	"path"
	"path/filepath"
	"sync"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/jmgilman/go/vfs/fs/core"
	"github.com/jmgilman/go/vfs/fs/wire"
)

// Compile-time interface check.
var _ wire.FileSystem = (*FS)(nil)

// FS serves a billy.Filesystem over the wire contract.
//
// billy filesystems such as memfs are not safe for concurrent use. FS guards
// the storage with one RWMutex that it shares with every file it opens, so
// handles on the same backend never touch the storage at the same time as a
// mutation.
type FS struct {
	mu   *sync.RWMutex
	bfs  billy.Filesystem
	kind core.FSType
}

// Option configures a local backend.
type Option func(*config)

type config struct {
	bound bool
}

// WithBoundOS confines the local backend to its root, including symlinks
// that point outside it.
func WithBoundOS() Option {
	return func(c *config) {
		c.bound = true
	}
}

// NewLocal creates a backend rooted at the directory root on disk.
func NewLocal(root string, opts ...Option) *FS {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	var osOpts []osfs.Option
	if cfg.bound {
		osOpts = append(osOpts, osfs.WithBoundOS())
	}
	return New(osfs.New(root, osOpts...), core.FSTypeLocal)
}

// NewMemory creates an empty in-memory backend.
func NewMemory() *FS {
	return New(memfs.New(), core.FSTypeMemory)
}

// New wraps an existing billy.Filesystem.
func New(bfs billy.Filesystem, kind core.FSType) *FS {
	return &FS{mu: &sync.RWMutex{}, bfs: bfs, kind: kind}
}

// Unwrap returns the underlying billy.Filesystem. Calls made on it directly
// bypass the backend's locking.
func (f *FS) Unwrap() billy.Filesystem {
	return f.bfs
}

// Type returns the kind of storage behind the backend.
func (f *FS) Type() core.FSType {
	return f.kind
}

// MkdirAll creates a directory and any missing parents. Directory creation is
// not part of the wire contract; this is for provisioning a backend.
func (f *FS) MkdirAll(name string) error {
	name = normalize(name)

	f.mu.Lock()
	defer f.mu.Unlock()
	return mapError("mkdir", name, f.bfs.MkdirAll(name, 0o755), wire.ErrorCodeDirectoryNotFound)
}

// normalize converts a wire path to a clean billy path.
func normalize(p string) string {
	return filepath.ToSlash(filepath.Clean("/" + p))
}

// CreateFile creates a zero-filled file of the given size.
func (f *FS) CreateFile(ctx context.Context, size uint64, p wire.Path) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	name := normalize(p.String())

	f.mu.Lock()
	defer f.mu.Unlock()

	if _, err := f.bfs.Stat(name); err == nil {
		return wire.NewError(wire.ErrorCodePathExists, "create", name)
	} else if !os.IsNotExist(err) {
		return mapError("create", name, err, wire.ErrorCodePathNotFound)
	}

	file, err := f.bfs.OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return mapError("create", name, err, wire.ErrorCodeDirectoryNotFound)
	}
	defer func() { _ = file.Close() }()

	if size > 0 {
		if err := file.Truncate(int64(size)); err != nil {
			return mapError("create", name, err, wire.ErrorCodeFileNotFound)
		}
	}
	return nil
}

// OpenFile opens an existing regular file.
func (f *FS) OpenFile(ctx context.Context, mode wire.OpenMode, p wire.Path) (wire.File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	name := normalize(p.String())

	f.mu.Lock()
	defer f.mu.Unlock()

	info, err := f.bfs.Stat(name)
	if err != nil {
		return nil, mapError("open", name, err, wire.ErrorCodeFileNotFound)
	}
	if info.IsDir() {
		return nil, wire.NewError(wire.ErrorCodeNotAFile, "open", name)
	}

	flag := os.O_RDONLY
	if mode.Has(wire.ModeWrite) {
		flag = os.O_WRONLY
		if mode.Has(wire.ModeRead) {
			flag = os.O_RDWR
		}
	}

	bf, err := f.bfs.OpenFile(name, flag, 0)
	if err != nil {
		return nil, mapError("open", name, err, wire.ErrorCodeFileNotFound)
	}
	return &file{storage: f.mu, file: bf, name: name, mode: mode}, nil
}

// DeleteFile removes a regular file.
func (f *FS) DeleteFile(ctx context.Context, p wire.Path) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	name := normalize(p.String())

	f.mu.Lock()
	defer f.mu.Unlock()

	info, err := f.bfs.Stat(name)
	if err != nil {
		return mapError("delete", name, err, wire.ErrorCodeFileNotFound)
	}
	if info.IsDir() {
		return wire.NewError(wire.ErrorCodeNotAFile, "delete", name)
	}
	return mapError("delete", name, f.bfs.Remove(name), wire.ErrorCodeFileNotFound)
}

// DeleteDirectory removes an empty directory. The root cannot be removed.
func (f *FS) DeleteDirectory(ctx context.Context, p wire.Path) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	name := normalize(p.String())
	if name == "/" {
		return wire.NewError(wire.ErrorCodeAccessDenied, "delete", name)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.requireDir("delete", name); err != nil {
		return err
	}

	entries, err := f.bfs.ReadDir(name)
	if err != nil {
		return mapError("delete", name, err, wire.ErrorCodeDirectoryNotFound)
	}
	if len(entries) > 0 {
		return wire.NewError(wire.ErrorCodeInUse, "delete", name)
	}
	return mapError("delete", name, f.bfs.Remove(name), wire.ErrorCodeDirectoryNotFound)
}

// RenameFile moves a regular file. The destination must not exist; missing
// parent directories are created.
func (f *FS) RenameFile(ctx context.Context, oldPath, newPath wire.Path) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	from, to := normalize(oldPath.String()), normalize(newPath.String())

	f.mu.Lock()
	defer f.mu.Unlock()

	info, err := f.bfs.Stat(from)
	if err != nil {
		return mapError("rename", from, err, wire.ErrorCodeFileNotFound)
	}
	if info.IsDir() {
		return wire.NewError(wire.ErrorCodeNotAFile, "rename", from)
	}
	return f.rename(from, to)
}

// RenameDirectory moves a directory and everything below it.
func (f *FS) RenameDirectory(ctx context.Context, oldPath, newPath wire.Path) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	from, to := normalize(oldPath.String()), normalize(newPath.String())
	if from == "/" {
		return wire.NewError(wire.ErrorCodeAccessDenied, "rename", from)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.requireDir("rename", from); err != nil {
		return err
	}
	if to == from || isWithin(to, from) {
		return wire.NewError(wire.ErrorCodeInvalidInput, "rename", to)
	}
	return f.rename(from, to)
}

// rename must be called with mu held.
func (f *FS) rename(from, to string) error {
	if _, err := f.bfs.Stat(to); err == nil {
		return wire.NewError(wire.ErrorCodePathExists, "rename", to)
	} else if !os.IsNotExist(err) {
		return mapError("rename", to, err, wire.ErrorCodePathNotFound)
	}

	if dir := path.Dir(to); dir != "/" {
		if err := f.bfs.MkdirAll(dir, 0o755); err != nil {
			return mapError("rename", to, err, wire.ErrorCodeDirectoryNotFound)
		}
	}
	return mapError("rename", from, f.bfs.Rename(from, to), wire.ErrorCodePathNotFound)
}

// GetEntryType reports whether the path is a file or directory.
func (f *FS) GetEntryType(ctx context.Context, p wire.Path) (wire.EntryType, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	name := normalize(p.String())

	f.mu.RLock()
	defer f.mu.RUnlock()

	info, err := f.bfs.Stat(name)
	if err != nil {
		return 0, mapError("stat", name, err, wire.ErrorCodePathNotFound)
	}
	if info.IsDir() {
		return wire.EntryTypeDirectory, nil
	}
	return wire.EntryTypeFile, nil
}

// requireDir must be called with mu held.
func (f *FS) requireDir(op, name string) error {
	info, err := f.bfs.Stat(name)
	if err != nil {
		return mapError(op, name, err, wire.ErrorCodeDirectoryNotFound)
	}
	if !info.IsDir() {
		return wire.NewError(wire.ErrorCodeNotADirectory, op, name)
	}
	return nil
}

func isWithin(p, dir string) bool {
	return len(p) > len(dir) && p[:len(dir)] == dir && p[len(dir)] == '/'
}

// mapError converts a billy error into a wire error. notFound is the code
// reported when the error means the path does not exist.
func mapError(op, name string, err error, notFound wire.ErrorCode) error {
	if err == nil {
		return nil
	}

	code := wire.ErrorCodeUnknown
	switch {
	case os.IsNotExist(err):
		code = notFound
	case os.IsExist(err):
		code = wire.ErrorCodePathExists
	case os.IsPermission(err):
		code = wire.ErrorCodeAccessDenied
	case errors.Is(err, billy.ErrNotSupported):
		code = wire.ErrorCodeUnsupportedOperation
	}
	return &wire.Error{Code: code, Op: op, Path: name, Err: err}
}
