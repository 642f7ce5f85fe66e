package router_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	vfserrors "github.com/jmgilman/go/vfs/errors"
	"github.com/jmgilman/go/vfs/fs/core"
	"github.com/jmgilman/go/vfs/fs/router"
	"github.com/jmgilman/go/vfs/fs/wire"
	"github.com/jmgilman/go/vfs/fs/wire/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(t *testing.T, backends map[string]wire.FileSystem, opts ...router.Option) *router.Router {
	t.Helper()

	reg := router.NewRegistry()
	for prefix, backend := range backends {
		require.NoError(t, reg.Register(prefix, backend))
	}
	return router.New(reg, opts...)
}

func TestInit(t *testing.T) {
	backend := newBackend(map[string]*buffer{})
	svc := &mocks.ServiceMock{
		OpenDiskPartitionFunc: func(context.Context, uint32, uint32) (wire.FileSystem, error) {
			return backend, nil
		},
	}

	r, err := router.Init(context.Background(), svc)
	require.NoError(t, err)

	calls := svc.OpenDiskPartitionCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, uint32(0), calls[0].Disk)
	assert.Equal(t, uint32(0), calls[0].Partition)
	assert.Equal(t, []string{router.SystemPrefix}, r.Registry().Prefixes())

	cwd, err := r.Getwd()
	require.NoError(t, err)
	assert.Equal(t, "system:/", cwd)
}

func TestInit_PartitionMissing(t *testing.T) {
	svc := &mocks.ServiceMock{
		OpenDiskPartitionFunc: func(context.Context, uint32, uint32) (wire.FileSystem, error) {
			return nil, wire.NewError(wire.ErrorCodePartitionNotFound, "open partition", "")
		},
	}

	_, err := router.Init(context.Background(), svc)
	assert.Equal(t, vfserrors.CodeOther, vfserrors.GetCode(err))
}

func TestOpen_ModeBits(t *testing.T) {
	tests := []struct {
		name string
		opts *core.OpenOptions
		want wire.OpenMode
	}{
		{"nil options", nil, wire.ModeRead},
		{"read", core.ReadOnly(), wire.ModeRead},
		{"write", core.NewOpenOptions().Write(true), wire.ModeWrite},
		{"read write append", core.NewOpenOptions().Read(true).Write(true).Append(true), wire.ModeRead | wire.ModeWrite | wire.ModeAppend},
		{"create implies append", core.NewOpenOptions().Write(true).Create(true), wire.ModeWrite | wire.ModeAppend},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := newBackend(map[string]*buffer{"/a.txt": {}})
			r := newRouter(t, map[string]wire.FileSystem{"system": backend})

			f, err := r.Open(context.Background(), "system:/a.txt", tt.opts)
			require.NoError(t, err)
			defer f.Close()

			calls := backend.OpenFileCalls()
			require.Len(t, calls, 1)
			assert.Equal(t, tt.want, calls[0].Mode)
			assert.Equal(t, "/a.txt", calls[0].Path.String())
		})
	}
}

func TestOpen_Create(t *testing.T) {
	ctx := context.Background()
	files := map[string]*buffer{}
	backend := newBackend(files)
	r := newRouter(t, map[string]wire.FileSystem{"system": backend})

	f, err := r.Open(ctx, "system:/new.txt", core.NewOpenOptions().Write(true).Create(true))
	require.NoError(t, err)
	_, err = f.Write([]byte("hello"))
	require.NoError(t, err)
	require.NoError(t, f.Close())

	create := backend.CreateFileCalls()
	require.Len(t, create, 1)
	assert.Equal(t, uint64(0), create[0].Size)
	assert.Equal(t, "/new.txt", create[0].Path.String())
	assert.Equal(t, "hello", string(files["/new.txt"].bytes()))

	// A second plain create ignores the PathExists failure.
	f, err = r.Open(ctx, "system:/new.txt", core.NewOpenOptions().Read(true).Create(true))
	require.NoError(t, err)
	data, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
	require.NoError(t, f.Close())
}

func TestOpen_CreateNewExisting(t *testing.T) {
	backend := newBackend(map[string]*buffer{"/a.txt": {}})
	r := newRouter(t, map[string]wire.FileSystem{"system": backend})

	_, err := r.Open(context.Background(), "system:/a.txt", core.NewOpenOptions().Write(true).CreateNew(true))
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrExist)
	assert.Empty(t, backend.OpenFileCalls(), "open must not be attempted")
}

func TestOpen_Truncate(t *testing.T) {
	files := map[string]*buffer{"/a.txt": {data: []byte("old contents")}}
	r := newRouter(t, map[string]wire.FileSystem{"system": newBackend(files)})

	f, err := r.Open(context.Background(), "system:/a.txt", core.NewOpenOptions().Write(true).Truncate(true))
	require.NoError(t, err)
	require.NoError(t, f.Close())
	assert.Empty(t, files["/a.txt"].bytes())

	// Truncate without write is ignored.
	files["/b.txt"] = &buffer{data: []byte("keep")}
	f, err = r.Open(context.Background(), "system:/b.txt", core.ReadOnly().Truncate(true))
	require.NoError(t, err)
	require.NoError(t, f.Close())
	assert.Equal(t, "keep", string(files["/b.txt"].bytes()))
}

func TestOpen_NotFound(t *testing.T) {
	r := newRouter(t, map[string]wire.FileSystem{"system": newBackend(map[string]*buffer{})})

	_, err := r.Open(context.Background(), "system:/missing", nil)
	assert.Equal(t, vfserrors.CodeNotFound, vfserrors.GetCode(err))
	assert.ErrorIs(t, err, core.ErrNotExist)
}

func TestOpen_UnknownPrefix(t *testing.T) {
	backend := newBackend(map[string]*buffer{})
	r := newRouter(t, map[string]wire.FileSystem{"system": backend})

	_, err := r.Open(context.Background(), "sd:/a.txt", nil)
	assert.ErrorIs(t, err, core.ErrUnsupported)
	assert.Empty(t, backend.OpenFileCalls())
}

func TestOpen_PathTooLong(t *testing.T) {
	backend := newBackend(map[string]*buffer{})
	r := newRouter(t, map[string]wire.FileSystem{"system": backend})

	long := "system:/" + strings.Repeat("a", wire.PathCapacity)
	_, err := r.Open(context.Background(), long, core.NewOpenOptions().Write(true).Create(true))
	require.Error(t, err)
	assert.Equal(t, vfserrors.CodeInvalidData, vfserrors.GetCode(err))
	assert.Empty(t, backend.CreateFileCalls())
	assert.Empty(t, backend.OpenFileCalls())
}

func TestOpen_ZeroBytePath(t *testing.T) {
	backend := newBackend(map[string]*buffer{"/secret": {data: []byte("s")}})
	r := newRouter(t, map[string]wire.FileSystem{"system": backend})

	_, err := r.Open(context.Background(), "system:/secret\x00.txt", core.ReadOnly())
	require.Error(t, err)
	assert.Equal(t, vfserrors.CodeInvalidInput, vfserrors.GetCode(err))
	assert.Empty(t, backend.OpenFileCalls())
}

func TestOpen_RelativeNames(t *testing.T) {
	backend := newBackend(map[string]*buffer{"/home/user/a.txt": {data: []byte("a")}})
	r := newRouter(t, map[string]wire.FileSystem{"system": backend}, router.WithFixedWorkingDir("system:/home"))

	f, err := r.Open(context.Background(), "user/a.txt", nil)
	require.NoError(t, err)
	assert.Equal(t, "system:/home/user/a.txt", f.Name())
	require.NoError(t, f.Close())

	_, err = r.Open(context.Background(), "system:relative", nil)
	assert.Equal(t, vfserrors.CodeInvalidInput, vfserrors.GetCode(err))
}

func TestOpen_BadWorkingDir(t *testing.T) {
	r := newRouter(t, map[string]wire.FileSystem{"system": newBackend(map[string]*buffer{})},
		router.WithFixedWorkingDir("relative"))

	_, err := r.Open(context.Background(), "a.txt", nil)
	assert.Equal(t, vfserrors.CodeInvalidInput, vfserrors.GetCode(err))

	r = newRouter(t, map[string]wire.FileSystem{"system": newBackend(map[string]*buffer{})},
		router.WithWorkingDir(func() (string, error) { return "", errors.New("no cwd") }))
	_, err = r.Open(context.Background(), "a.txt", nil)
	assert.Equal(t, vfserrors.CodeOther, vfserrors.GetCode(err))
}

func TestUnlinkAndRmdir(t *testing.T) {
	ctx := context.Background()
	files := map[string]*buffer{"/a.txt": {}}
	backend := newBackend(files, "/dir")
	r := newRouter(t, map[string]wire.FileSystem{"system": backend})

	require.NoError(t, r.Unlink(ctx, "system:/a.txt"))
	assert.NotContains(t, files, "/a.txt")
	assert.ErrorIs(t, r.Unlink(ctx, "system:/a.txt"), core.ErrNotExist)

	require.NoError(t, r.Rmdir(ctx, "system:/dir"))
	require.Len(t, backend.DeleteDirectoryCalls(), 1)
	assert.Equal(t, "/dir", backend.DeleteDirectoryCalls()[0].Path.String())
}

func TestRename(t *testing.T) {
	ctx := context.Background()
	files := map[string]*buffer{"/a.txt": {data: []byte("a")}}
	backend := newBackend(files, "/dir")
	r := newRouter(t, map[string]wire.FileSystem{"system": backend})

	require.NoError(t, r.Rename(ctx, "system:/a.txt", "system:/b.txt"))
	require.Len(t, backend.RenameFileCalls(), 1)
	assert.Equal(t, "/a.txt", backend.RenameFileCalls()[0].OldPath.String())
	assert.Equal(t, "/b.txt", backend.RenameFileCalls()[0].NewPath.String())
	assert.Contains(t, files, "/b.txt")

	require.NoError(t, r.Rename(ctx, "system:/dir", "system:/moved"))
	require.Len(t, backend.RenameDirectoryCalls(), 1)
	assert.Len(t, backend.RenameFileCalls(), 1)

	err := r.Rename(ctx, "system:/missing", "system:/x")
	assert.ErrorIs(t, err, core.ErrNotExist)
}

func TestRename_CrossBackend(t *testing.T) {
	system := newBackend(map[string]*buffer{"/a.txt": {}})
	sd := newBackend(map[string]*buffer{})
	r := newRouter(t, map[string]wire.FileSystem{"system": system, "sd": sd})

	err := r.Rename(context.Background(), "system:/a.txt", "sd:/a.txt")
	require.Error(t, err)
	assert.Equal(t, vfserrors.CodeInvalidInput, vfserrors.GetCode(err))

	for _, backend := range []*mocks.FileSystemMock{system, sd} {
		assert.Empty(t, backend.GetEntryTypeCalls())
		assert.Empty(t, backend.RenameFileCalls())
		assert.Empty(t, backend.RenameDirectoryCalls())
	}
}

func TestRename_AliasedPrefixes(t *testing.T) {
	files := map[string]*buffer{"/a.txt": {}}
	backend := newBackend(files)
	r := newRouter(t, map[string]wire.FileSystem{"system": backend, "alias": backend})

	require.NoError(t, r.Rename(context.Background(), "system:/a.txt", "alias:/b.txt"))
	assert.Contains(t, files, "/b.txt")
}

// taggedBackend is a value-typed backend. Its tags field holds a slice, so
// comparing two taggedBackend values with == panics.
type taggedBackend struct {
	wire.FileSystem
	tags interface{}
}

func TestRename_ValueTypedBackends(t *testing.T) {
	leftFiles := map[string]*buffer{"/a.txt": {}}
	left := newBackend(leftFiles)
	right := newBackend(map[string]*buffer{})
	r := newRouter(t, map[string]wire.FileSystem{
		"left":  taggedBackend{FileSystem: left, tags: []string{"left"}},
		"right": taggedBackend{FileSystem: right, tags: []string{"right"}},
	})
	ctx := context.Background()

	var err error
	require.NotPanics(t, func() {
		err = r.Rename(ctx, "left:/a.txt", "right:/a.txt")
	})
	assert.Equal(t, vfserrors.CodeInvalidInput, vfserrors.GetCode(err))
	assert.Empty(t, left.RenameFileCalls())

	require.NotPanics(t, func() {
		err = r.Rename(ctx, "left:/a.txt", "left:/b.txt")
	})
	require.NoError(t, err)
	assert.Contains(t, leftFiles, "/b.txt")
}

func TestCopy(t *testing.T) {
	ctx := context.Background()
	systemFiles := map[string]*buffer{"/src.txt": {data: []byte("copy me")}}
	sdFiles := map[string]*buffer{"/dst.txt": {data: []byte("previous longer contents")}}
	r := newRouter(t, map[string]wire.FileSystem{
		"system": newBackend(systemFiles, "/dir"),
		"sd":     newBackend(sdFiles),
	})

	n, err := r.Copy(ctx, "system:/src.txt", "sd:/dst.txt")
	require.NoError(t, err)
	assert.Equal(t, int64(7), n)
	assert.Equal(t, "copy me", string(sdFiles["/dst.txt"].bytes()))

	n, err = r.Copy(ctx, "system:/src.txt", "system:/new.txt")
	require.NoError(t, err)
	assert.Equal(t, int64(7), n)
	assert.Equal(t, "copy me", string(systemFiles["/new.txt"].bytes()))
}

func TestCopy_OntoItself(t *testing.T) {
	files := map[string]*buffer{"/a.txt": {data: []byte("original")}}
	backend := newBackend(files)
	r := newRouter(t, map[string]wire.FileSystem{"system": backend, "alias": backend})
	ctx := context.Background()

	for _, to := range []string{"system:/a.txt", "system:/x/../a.txt", "alias:/a.txt"} {
		n, err := r.Copy(ctx, "system:/a.txt", to)
		assert.Equal(t, vfserrors.CodeInvalidInput, vfserrors.GetCode(err), to)
		assert.Zero(t, n)
	}
	assert.Empty(t, backend.OpenFileCalls())
	assert.Equal(t, "original", string(files["/a.txt"].bytes()))
}

func TestCopy_DirectorySource(t *testing.T) {
	backend := newBackend(map[string]*buffer{}, "/dir")
	r := newRouter(t, map[string]wire.FileSystem{"system": backend})

	_, err := r.Copy(context.Background(), "system:/dir", "system:/out")
	assert.Equal(t, vfserrors.CodeInvalidInput, vfserrors.GetCode(err))
	assert.Empty(t, backend.OpenFileCalls())
}

func TestSetPermissions(t *testing.T) {
	backend := newBackend(map[string]*buffer{"/a.txt": {}})
	r := newRouter(t, map[string]wire.FileSystem{"system": backend})

	require.NoError(t, r.SetPermissions(context.Background(), "system:/a.txt", nil))
	require.Len(t, backend.OpenFileCalls(), 1)
	assert.Equal(t, wire.ModeRead|wire.ModeWrite, backend.OpenFileCalls()[0].Mode)

	err := r.SetPermissions(context.Background(), "system:/missing", nil)
	assert.ErrorIs(t, err, core.ErrNotExist)
}

func TestUnsupportedOperations(t *testing.T) {
	ctx := context.Background()
	backend := newBackend(map[string]*buffer{"/a.txt": {}})
	r := newRouter(t, map[string]wire.FileSystem{"system": backend})

	ops := map[string]func() error{
		"readdir":      func() error { _, err := r.ReadDir(ctx, "system:/"); return err },
		"stat":         func() error { _, err := r.Stat(ctx, "system:/a.txt"); return err },
		"lstat":        func() error { _, err := r.Lstat(ctx, "system:/a.txt"); return err },
		"readlink":     func() error { _, err := r.Readlink(ctx, "system:/a.txt"); return err },
		"symlink":      func() error { return r.Symlink(ctx, "system:/a.txt", "system:/l") },
		"link":         func() error { return r.Link(ctx, "system:/a.txt", "system:/l") },
		"canonicalize": func() error { _, err := r.Canonicalize(ctx, "a.txt"); return err },
		"remove_all":   func() error { return r.RemoveAll(ctx, "system:/") },
		"mkdir":        func() error { return r.Mkdir(ctx, "system:/d") },
	}

	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			err := op()
			assert.Equal(t, vfserrors.CodeUnsupported, vfserrors.GetCode(err))
			assert.ErrorIs(t, err, core.ErrUnsupported)
		})
	}

	assert.Empty(t, backend.OpenFileCalls())
	assert.Empty(t, backend.GetEntryTypeCalls())
}
