package minio

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync"

	"github.com/jmgilman/go/vfs/fs/minio/internal/errs"
	"github.com/jmgilman/go/vfs/fs/wire"
	"github.com/minio/minio-go/v7"
)

// Compile-time interface check.
var _ wire.File = (*file)(nil)

// file is a handle on one object.
//
// Reads go straight to the server as range requests until the handle first
// changes the object. From then on the whole object is held in memory and
// uploaded again on Flush or Close.
type file struct {
	fs   *MinioFS
	key  string
	name string
	mode wire.OpenMode

	mu     sync.Mutex
	buf    []byte // nil until loaded
	loaded bool
	dirty  bool
	closed bool
}

func (f *file) Read(ctx context.Context, offset uint64, out []byte) (uint64, error) {
	if !f.mode.Has(wire.ModeRead) {
		return 0, wire.NewError(wire.ErrorCodeAccessDenied, "read", f.name)
	}
	if len(out) == 0 {
		return 0, nil
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.loaded {
		if offset >= uint64(len(f.buf)) {
			return 0, nil
		}
		return uint64(copy(out, f.buf[offset:])), nil
	}
	return f.readRange(ctx, offset, out)
}

// readRange fetches [offset, offset+len(out)) with an HTTP range request.
func (f *file) readRange(ctx context.Context, offset uint64, out []byte) (uint64, error) {
	opts := minio.GetObjectOptions{}
	if err := opts.SetRange(int64(offset), int64(offset)+int64(len(out))-1); err != nil {
		return 0, wire.NewError(wire.ErrorCodeInvalidInput, "read", f.name)
	}

	obj, err := f.fs.client.GetObject(ctx, f.fs.bucket, f.key, opts)
	if err != nil {
		return 0, errs.Translate("read", f.name, err)
	}
	defer func() { _ = obj.Close() }()

	n, err := io.ReadFull(obj, out)
	switch {
	case err == nil, errors.Is(err, io.ErrUnexpectedEOF), errors.Is(err, io.EOF):
		return uint64(n), nil
	case errs.IsInvalidRange(err):
		return 0, nil
	default:
		return uint64(n), errs.Translate("read", f.name, err)
	}
}

func (f *file) Write(ctx context.Context, offset uint64, in []byte) error {
	if !f.mode.Has(wire.ModeWrite) {
		return wire.NewError(wire.ErrorCodeAccessDenied, "write", f.name)
	}

	limit := uint64(f.fs.maxFileSize)
	if offset > limit || uint64(len(in)) > limit-offset {
		return wire.NewError(wire.ErrorCodeNoSpaceLeft, "write", f.name)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.load(ctx); err != nil {
		return err
	}

	end := offset + uint64(len(in))
	if end > uint64(len(f.buf)) {
		if !f.mode.Has(wire.ModeAppend) {
			return wire.NewError(wire.ErrorCodeOutOfRange, "write", f.name)
		}
		f.resize(end)
	}
	copy(f.buf[offset:], in)
	f.dirty = true
	return nil
}

func (f *file) GetSize(ctx context.Context) (uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.loaded {
		return uint64(len(f.buf)), nil
	}

	info, err := f.fs.client.StatObject(ctx, f.fs.bucket, f.key, minio.StatObjectOptions{})
	if err != nil {
		return 0, errs.Translate("size", f.name, err)
	}
	return uint64(info.Size), nil
}

func (f *file) SetSize(ctx context.Context, size uint64) error {
	if !f.mode.Has(wire.ModeWrite) {
		return wire.NewError(wire.ErrorCodeAccessDenied, "truncate", f.name)
	}
	if size > uint64(f.fs.maxFileSize) {
		return wire.NewError(wire.ErrorCodeNoSpaceLeft, "truncate", f.name)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if size == 0 {
		f.buf, f.loaded = []byte{}, true
	} else if err := f.load(ctx); err != nil {
		return err
	}
	f.resize(size)
	f.dirty = true
	return nil
}

// Flush uploads the buffered object if the handle changed it.
func (f *file) Flush(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.flush(ctx)
}

// Close flushes pending changes. The handle cannot be used afterwards.
func (f *file) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return nil
	}
	f.closed = true
	err := f.flush(context.Background())
	f.buf = nil
	return err
}

// flush must be called with mu held.
func (f *file) flush(ctx context.Context) error {
	if !f.dirty {
		return nil
	}
	if err := f.fs.put(ctx, f.key, bytes.NewReader(f.buf), int64(len(f.buf))); err != nil {
		return errs.Translate("flush", f.name, err)
	}
	f.dirty = false
	return nil
}

// load must be called with mu held.
func (f *file) load(ctx context.Context) error {
	if f.loaded {
		return nil
	}

	obj, err := f.fs.client.GetObject(ctx, f.fs.bucket, f.key, minio.GetObjectOptions{})
	if err != nil {
		return errs.Translate("load", f.name, err)
	}
	defer func() { _ = obj.Close() }()

	data, err := io.ReadAll(obj)
	if err != nil {
		return errs.Translate("load", f.name, err)
	}
	f.buf, f.loaded = data, true
	return nil
}

// resize must be called with mu held, the object loaded and size within
// maxFileSize.
func (f *file) resize(size uint64) {
	if size <= uint64(len(f.buf)) {
		f.buf = f.buf[:size]
		return
	}
	grown := make([]byte, size)
	copy(grown, f.buf)
	f.buf = grown
}
