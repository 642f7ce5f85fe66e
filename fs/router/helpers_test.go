package router_test

import (
	"context"
	"sync"

	"github.com/jmgilman/go/vfs/fs/wire"
	"github.com/jmgilman/go/vfs/fs/wire/mocks"
)

// buffer is the backing store for a mocked wire.File.
type buffer struct {
	mu   sync.Mutex
	data []byte
}

func (b *buffer) bytes() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]byte(nil), b.data...)
}

// newBufferFile returns a mocked wire.File that serves b and honours the
// read, write and append bits of mode.
func newBufferFile(b *buffer, mode wire.OpenMode) *mocks.FileMock {
	return &mocks.FileMock{
		ReadFunc: func(_ context.Context, offset uint64, out []byte) (uint64, error) {
			if !mode.Has(wire.ModeRead) {
				return 0, wire.NewError(wire.ErrorCodeAccessDenied, "read", "")
			}
			b.mu.Lock()
			defer b.mu.Unlock()
			if offset >= uint64(len(b.data)) {
				return 0, nil
			}
			return uint64(copy(out, b.data[offset:])), nil
		},
		WriteFunc: func(_ context.Context, offset uint64, in []byte) error {
			if !mode.Has(wire.ModeWrite) {
				return wire.NewError(wire.ErrorCodeAccessDenied, "write", "")
			}
			b.mu.Lock()
			defer b.mu.Unlock()
			end := offset + uint64(len(in))
			if end > uint64(len(b.data)) {
				if !mode.Has(wire.ModeAppend) {
					return wire.NewError(wire.ErrorCodeOutOfRange, "write", "")
				}
				grown := make([]byte, end)
				copy(grown, b.data)
				b.data = grown
			}
			copy(b.data[offset:], in)
			return nil
		},
		GetSizeFunc: func(context.Context) (uint64, error) {
			b.mu.Lock()
			defer b.mu.Unlock()
			return uint64(len(b.data)), nil
		},
		SetSizeFunc: func(_ context.Context, size uint64) error {
			b.mu.Lock()
			defer b.mu.Unlock()
			resized := make([]byte, size)
			copy(resized, b.data)
			b.data = resized
			return nil
		},
		FlushFunc: func(context.Context) error { return nil },
		CloseFunc: func() error { return nil },
	}
}

// newBackend returns a mocked wire.FileSystem holding the given files. Paths
// ending in a slash are directories.
func newBackend(files map[string]*buffer, dirs ...string) *mocks.FileSystemMock {
	var mu sync.Mutex
	isDir := make(map[string]bool, len(dirs))
	for _, d := range dirs {
		isDir[d] = true
	}

	return &mocks.FileSystemMock{
		CreateFileFunc: func(_ context.Context, size uint64, path wire.Path) error {
			mu.Lock()
			defer mu.Unlock()
			p := path.String()
			if _, ok := files[p]; ok || isDir[p] {
				return wire.NewError(wire.ErrorCodePathExists, "create", p)
			}
			files[p] = &buffer{data: make([]byte, size)}
			return nil
		},
		OpenFileFunc: func(_ context.Context, mode wire.OpenMode, path wire.Path) (wire.File, error) {
			mu.Lock()
			defer mu.Unlock()
			b, ok := files[path.String()]
			if !ok {
				return nil, wire.NewError(wire.ErrorCodeFileNotFound, "open", path.String())
			}
			return newBufferFile(b, mode), nil
		},
		DeleteFileFunc: func(_ context.Context, path wire.Path) error {
			mu.Lock()
			defer mu.Unlock()
			if _, ok := files[path.String()]; !ok {
				return wire.NewError(wire.ErrorCodeFileNotFound, "delete", path.String())
			}
			delete(files, path.String())
			return nil
		},
		DeleteDirectoryFunc: func(_ context.Context, path wire.Path) error {
			mu.Lock()
			defer mu.Unlock()
			if !isDir[path.String()] {
				return wire.NewError(wire.ErrorCodeDirectoryNotFound, "delete", path.String())
			}
			delete(isDir, path.String())
			return nil
		},
		RenameFileFunc: func(_ context.Context, oldPath, newPath wire.Path) error {
			mu.Lock()
			defer mu.Unlock()
			b, ok := files[oldPath.String()]
			if !ok {
				return wire.NewError(wire.ErrorCodeFileNotFound, "rename", oldPath.String())
			}
			delete(files, oldPath.String())
			files[newPath.String()] = b
			return nil
		},
		RenameDirectoryFunc: func(_ context.Context, oldPath, newPath wire.Path) error {
			mu.Lock()
			defer mu.Unlock()
			if !isDir[oldPath.String()] {
				return wire.NewError(wire.ErrorCodeDirectoryNotFound, "rename", oldPath.String())
			}
			delete(isDir, oldPath.String())
			isDir[newPath.String()] = true
			return nil
		},
		GetEntryTypeFunc: func(_ context.Context, path wire.Path) (wire.EntryType, error) {
			mu.Lock()
			defer mu.Unlock()
			if isDir[path.String()] {
				return wire.EntryTypeDirectory, nil
			}
			if _, ok := files[path.String()]; ok {
				return wire.EntryTypeFile, nil
			}
			return 0, wire.NewError(wire.ErrorCodePathNotFound, "stat", path.String())
		},
	}
}
