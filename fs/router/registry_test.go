package router_test

import (
	"errors"
	"sync"
	"testing"

	vfserrors "github.com/jmgilman/go/vfs/errors"
	"github.com/jmgilman/go/vfs/fs/core"
	"github.com/jmgilman/go/vfs/fs/router"
	"github.com/jmgilman/go/vfs/fs/wire/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Register(t *testing.T) {
	reg := router.NewRegistry()
	backend := &mocks.FileSystemMock{}

	require.NoError(t, reg.Register("system", backend))

	got, ok := reg.Lookup("system")
	require.True(t, ok)
	assert.Same(t, backend, got)

	_, ok = reg.Lookup("sd")
	assert.False(t, ok)
}

func TestRegistry_RegisterDuplicate(t *testing.T) {
	reg := router.NewRegistry()
	first := &mocks.FileSystemMock{}
	require.NoError(t, reg.Register("system", first))

	err := reg.Register("system", &mocks.FileSystemMock{})
	require.Error(t, err)
	assert.Equal(t, vfserrors.CodeAlreadyExists, vfserrors.GetCode(err))
	assert.True(t, errors.Is(err, core.ErrExist))

	got, _ := reg.Lookup("system")
	assert.Same(t, first, got, "original registration must be kept")
}

func TestRegistry_RegisterInvalid(t *testing.T) {
	reg := router.NewRegistry()

	for _, prefix := range []string{"", "sys:", "a/b"} {
		t.Run(prefix, func(t *testing.T) {
			err := reg.Register(prefix, &mocks.FileSystemMock{})
			assert.Equal(t, vfserrors.CodeInvalidInput, vfserrors.GetCode(err))
		})
	}

	err := reg.Register("system", nil)
	assert.Equal(t, vfserrors.CodeInvalidInput, vfserrors.GetCode(err))
	assert.Empty(t, reg.Prefixes())
}

func TestRegistry_Prefixes(t *testing.T) {
	reg := router.NewRegistry()
	for _, p := range []string{"system", "sd", "bis"} {
		require.NoError(t, reg.Register(p, &mocks.FileSystemMock{}))
	}

	assert.Equal(t, []string{"bis", "sd", "system"}, reg.Prefixes())
}

func TestRegistry_Resolve(t *testing.T) {
	reg := router.NewRegistry()
	backend := &mocks.FileSystemMock{}
	require.NoError(t, reg.Register("system", backend))

	res, err := reg.Resolve("system:/foo/bar.txt")
	require.NoError(t, err)
	assert.Same(t, backend, res.Backend)
	assert.Equal(t, "system", res.Prefix)
	assert.Equal(t, "/foo/bar.txt", res.Path)

	res, err = reg.Resolve("system:/")
	require.NoError(t, err)
	assert.Equal(t, "/", res.Path)
}

func TestRegistry_ResolveUnknownPrefix(t *testing.T) {
	reg := router.NewRegistry()
	require.NoError(t, reg.Register("system", &mocks.FileSystemMock{}))

	for _, p := range []string{"sd:/x", "sys:/x", "systemx:/x"} {
		_, err := reg.Resolve(p)
		assert.Equal(t, vfserrors.CodeUnsupported, vfserrors.GetCode(err), p)
		assert.ErrorIs(t, err, core.ErrUnsupported)
	}
}

func TestRegistry_ResolvePanicsOnRelative(t *testing.T) {
	reg := router.NewRegistry()

	assert.Panics(t, func() { _, _ = reg.Resolve("foo/bar") })
	assert.Panics(t, func() { _, _ = reg.Resolve("system:foo") })
}

func TestRegistry_Concurrent(t *testing.T) {
	reg := router.NewRegistry()
	require.NoError(t, reg.Register("system", &mocks.FileSystemMock{}))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := reg.Resolve("system:/a")
			assert.NoError(t, err)
		}()
		go func() {
			defer wg.Done()
			_ = reg.Prefixes()
		}()
	}
	wg.Wait()
}
