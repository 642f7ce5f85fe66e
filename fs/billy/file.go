package billy

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/go-git/go-billy/v5"
	"github.com/jmgilman/go/vfs/fs/wire"
)

// Compile-time interface check.
var _ wire.File = (*file)(nil)

// file serves a billy.File over the wire contract. billy files carry their
// own offset and are not safe for concurrent use, so every call is serialized
// by mu. storage is the owning FS's lock: reads share it, writes hold it
// exclusively. mu is always acquired before storage.
type file struct {
	mu      sync.Mutex
	storage *sync.RWMutex
	file    billy.File
	name    string
	mode    wire.OpenMode
}

func (f *file) Read(ctx context.Context, offset uint64, out []byte) (uint64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if !f.mode.Has(wire.ModeRead) {
		return 0, wire.NewError(wire.ErrorCodeAccessDenied, "read", f.name)
	}
	if len(out) == 0 {
		return 0, nil
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.storage.RLock()
	defer f.storage.RUnlock()

	n, err := f.file.ReadAt(out, int64(offset))
	if err != nil && !errors.Is(err, io.EOF) {
		return uint64(n), &wire.Error{Code: wire.ErrorCodeReadFailed, Op: "read", Path: f.name, Err: err}
	}
	return uint64(n), nil
}

func (f *file) Write(ctx context.Context, offset uint64, in []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !f.mode.Has(wire.ModeWrite) {
		return wire.NewError(wire.ErrorCodeAccessDenied, "write", f.name)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.storage.Lock()
	defer f.storage.Unlock()

	size, err := f.size()
	if err != nil {
		return err
	}
	if offset+uint64(len(in)) > size && !f.mode.Has(wire.ModeAppend) {
		return wire.NewError(wire.ErrorCodeOutOfRange, "write", f.name)
	}

	if _, err := f.file.Seek(int64(offset), io.SeekStart); err != nil {
		return &wire.Error{Code: wire.ErrorCodeWriteFailed, Op: "write", Path: f.name, Err: err}
	}
	if _, err := f.file.Write(in); err != nil {
		return &wire.Error{Code: wire.ErrorCodeWriteFailed, Op: "write", Path: f.name, Err: err}
	}
	return nil
}

func (f *file) GetSize(ctx context.Context) (uint64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.storage.RLock()
	defer f.storage.RUnlock()
	return f.size()
}

func (f *file) SetSize(ctx context.Context, size uint64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !f.mode.Has(wire.ModeWrite) {
		return wire.NewError(wire.ErrorCodeAccessDenied, "truncate", f.name)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.storage.Lock()
	defer f.storage.Unlock()

	if err := f.file.Truncate(int64(size)); err != nil {
		return &wire.Error{Code: wire.ErrorCodeWriteFailed, Op: "truncate", Path: f.name, Err: err}
	}
	return nil
}

// Flush syncs the file when the billy backend supports it. For backends
// without Sync (e.g., memfs), this is a no-op.
func (f *file) Flush(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.storage.RLock()
	defer f.storage.RUnlock()

	if syncer, ok := f.file.(interface{ Sync() error }); ok {
		if err := syncer.Sync(); err != nil {
			return &wire.Error{Code: wire.ErrorCodeWriteFailed, Op: "flush", Path: f.name, Err: err}
		}
	}
	return nil
}

func (f *file) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.storage.Lock()
	defer f.storage.Unlock()
	return mapError("close", f.name, f.file.Close(), wire.ErrorCodeFileNotFound)
}

// size must be called with mu and storage held.
func (f *file) size() (uint64, error) {
	end, err := f.file.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, &wire.Error{Code: wire.ErrorCodeReadFailed, Op: "size", Path: f.name, Err: err}
	}
	return uint64(end), nil
}
