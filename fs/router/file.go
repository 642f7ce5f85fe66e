package router

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"math"
	"sync"

	"github.com/jmgilman/go/vfs/errors"
	"github.com/jmgilman/go/vfs/fs/core"
	"github.com/jmgilman/go/vfs/fs/wire"
)

// Compile-time interface check.
var _ core.File = (*File)(nil)

// File is an open file on a backend.
//
// File owns a backend file proxy and a cursor. Each Read, Write and Seek holds
// the file's lock for the whole backend round trip, so concurrent calls on one
// File observe a consistent cursor.
type File struct {
	name  string
	proxy wire.File

	mu     sync.Mutex
	offset int64
	closed bool
}

func newFile(name string, proxy wire.File) *File {
	return &File{name: name, proxy: proxy}
}

// Name returns the absolute name the file was opened with.
func (f *File) Name() string {
	return f.name
}

// Read reads up to len(p) bytes at the cursor and advances it by the number
// of bytes read. It returns io.EOF when the cursor is at or past the end.
func (f *File) Read(p []byte) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.checkOpen("read"); err != nil {
		return 0, err
	}
	if len(p) == 0 {
		return 0, nil
	}

	n, err := f.proxy.Read(context.Background(), uint64(f.offset), p)
	if err != nil {
		return 0, translate("read", f.name, err)
	}
	if n > uint64(len(p)) {
		panic(fmt.Sprintf("router: backend returned %d bytes for a %d byte buffer", n, len(p)))
	}
	if n == 0 {
		return 0, io.EOF
	}

	f.offset += int64(n)
	return int(n), nil
}

// Write writes all of p at the cursor and advances it by len(p).
func (f *File) Write(p []byte) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.checkOpen("write"); err != nil {
		return 0, err
	}
	if len(p) == 0 {
		return 0, nil
	}
	if int64(len(p)) > math.MaxInt64-f.offset {
		return 0, invalidInput(f.name, "write would overflow the file offset")
	}

	if err := f.proxy.Write(context.Background(), uint64(f.offset), p); err != nil {
		return 0, translate("write", f.name, err)
	}

	f.offset += int64(len(p))
	return len(p), nil
}

// Seek sets the cursor. Seeking relative to the end asks the backend for the
// current size. A result that is negative or overflows is rejected with
// CodeInvalidInput and the cursor is left unchanged.
func (f *File) Seek(offset int64, whence int) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.checkOpen("seek"); err != nil {
		return 0, err
	}

	var base int64
	switch whence {
	case io.SeekStart:
		if offset < 0 {
			return 0, invalidInput(f.name, "invalid seek to a negative position")
		}
		f.offset = offset
		return f.offset, nil
	case io.SeekCurrent:
		base = f.offset
	case io.SeekEnd:
		size, err := f.proxy.GetSize(context.Background())
		if err != nil {
			return 0, translate("seek", f.name, err)
		}
		if size > math.MaxInt64 {
			return 0, invalidInput(f.name, "file size %d overflows the file offset", size)
		}
		base = int64(size)
	default:
		return 0, invalidInput(f.name, "invalid whence %d", whence)
	}

	next, ok := addOffset(base, offset)
	if !ok {
		return 0, invalidInput(f.name, "invalid seek to a negative or overflowing position")
	}
	f.offset = next
	return f.offset, nil
}

func addOffset(base, delta int64) (int64, bool) {
	if delta > 0 && base > math.MaxInt64-delta {
		return 0, false
	}
	next := base + delta
	if next < 0 {
		return 0, false
	}
	return next, true
}

// Flush asks the backend to commit buffered writes.
func (f *File) Flush() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.checkOpen("flush"); err != nil {
		return err
	}
	return translate("flush", f.name, f.proxy.Flush(context.Background()))
}

// Truncate sets the file size. The cursor is not moved.
func (f *File) Truncate(size int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.checkOpen("truncate"); err != nil {
		return err
	}
	if size < 0 {
		return invalidInput(f.name, "invalid negative size %d", size)
	}
	return translate("truncate", f.name, f.proxy.SetSize(context.Background(), uint64(size)))
}

// Sync is not supported.
func (f *File) Sync() error {
	return unsupported("sync", f.name)
}

// Datasync is not supported.
func (f *File) Datasync() error {
	return unsupported("datasync", f.name)
}

// Stat is not supported.
func (f *File) Stat() (core.FileAttr, error) {
	return nil, unsupported("stat", f.name)
}

// SetPermissions is a no-op.
func (f *File) SetPermissions(core.Permissions) error {
	return nil
}

// Duplicate is not supported.
func (f *File) Duplicate() (core.File, error) {
	return nil, unsupported("duplicate", f.name)
}

// Close releases the backend proxy. Closing twice returns an error matching
// fs.ErrClosed.
func (f *File) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.checkOpen("close"); err != nil {
		return err
	}
	f.closed = true
	return translate("close", f.name, f.proxy.Close())
}

func (f *File) checkOpen(op string) error {
	if f.closed {
		return errors.WithContext(errors.Wrapf(fs.ErrClosed, errors.CodeOther, "%s %s", op, f.name), "path", f.name)
	}
	return nil
}
