package fstest

import (
	"bytes"
	"context"
	"testing"

	"github.com/jmgilman/go/vfs/fs/wire"
)

// TestCreateFS tests CreateFile and OpenFile.
// Uses POSIXTestConfig() by default.
func TestCreateFS(t *testing.T, filesystem wire.FileSystem) {
	TestCreateFSWithConfig(t, filesystem, POSIXTestConfig())
}

// TestCreateFSWithConfig tests file creation with behavior configuration.
func TestCreateFSWithConfig(t *testing.T, filesystem wire.FileSystem, config FSTestConfig) {
	t.Run("CreateEmpty", func(t *testing.T) {
		testCreateEmpty(t, filesystem, config)
	})
	t.Run("CreateWithSize", func(t *testing.T) {
		testCreateWithSize(t, filesystem, config)
	})
	t.Run("CreateExisting", func(t *testing.T) {
		testCreateExisting(t, filesystem, config)
	})
	t.Run("CreateNested", func(t *testing.T) {
		testCreateNested(t, filesystem, config)
	})
	t.Run("OpenNotExist", func(t *testing.T) {
		testOpenNotExist(t, filesystem, config)
	})
	t.Run("OpenDirectory", func(t *testing.T) {
		testOpenDirectory(t, filesystem, config)
	})
}

func testCreateEmpty(t *testing.T, filesystem wire.FileSystem, _ FSTestConfig) {
	ctx := context.Background()
	if err := filesystem.CreateFile(ctx, 0, path(t, "/empty.txt")); err != nil {
		t.Fatalf("CreateFile(/empty.txt): got error %v, want nil", err)
	}

	f, err := filesystem.OpenFile(ctx, wire.ModeRead, path(t, "/empty.txt"))
	if err != nil {
		t.Fatalf("OpenFile(/empty.txt): got error %v, want nil", err)
	}
	defer func() { _ = f.Close() }()

	size, err := f.GetSize(ctx)
	if err != nil {
		t.Fatalf("GetSize(/empty.txt): %v", err)
	}
	if size != 0 {
		t.Errorf("GetSize(/empty.txt): got %d, want 0", size)
	}

	typ, err := entryType(t, filesystem, "/empty.txt")
	if err != nil {
		t.Fatalf("GetEntryType(/empty.txt): %v", err)
	}
	if typ != wire.EntryTypeFile {
		t.Errorf("GetEntryType(/empty.txt): got %v, want file", typ)
	}
}

func testCreateWithSize(t *testing.T, filesystem wire.FileSystem, _ FSTestConfig) {
	ctx := context.Background()
	if err := filesystem.CreateFile(ctx, 16, path(t, "/sized.bin")); err != nil {
		t.Fatalf("CreateFile(/sized.bin, 16): got error %v, want nil", err)
	}

	got := readFile(t, filesystem, "/sized.bin")
	if !bytes.Equal(got, make([]byte, 16)) {
		t.Errorf("contents of /sized.bin: got %v, want 16 zero bytes", got)
	}
}

func testCreateExisting(t *testing.T, filesystem wire.FileSystem, _ FSTestConfig) {
	writeFile(t, filesystem, "/exists.txt", []byte("keep"))

	err := filesystem.CreateFile(context.Background(), 0, path(t, "/exists.txt"))
	expectCode(t, "CreateFile(/exists.txt)", err, wire.ErrorCodePathExists)

	if got := readFile(t, filesystem, "/exists.txt"); string(got) != "keep" {
		t.Errorf("contents after failed create: got %q, want %q", got, "keep")
	}
}

func testCreateNested(t *testing.T, filesystem wire.FileSystem, _ FSTestConfig) {
	writeFile(t, filesystem, "/a/b/c.txt", []byte("nested"))

	if got := readFile(t, filesystem, "/a/b/c.txt"); string(got) != "nested" {
		t.Errorf("contents of /a/b/c.txt: got %q, want %q", got, "nested")
	}

	typ, err := entryType(t, filesystem, "/a/b")
	if err != nil {
		t.Fatalf("GetEntryType(/a/b): %v", err)
	}
	if typ != wire.EntryTypeDirectory {
		t.Errorf("GetEntryType(/a/b): got %v, want directory", typ)
	}
}

func testOpenNotExist(t *testing.T, filesystem wire.FileSystem, _ FSTestConfig) {
	_, err := filesystem.OpenFile(context.Background(), wire.ModeRead, path(t, "/missing.txt"))
	expectNotFound(t, "OpenFile(/missing.txt)", err)

	_, err = entryType(t, filesystem, "/missing.txt")
	expectNotFound(t, "GetEntryType(/missing.txt)", err)
}

func testOpenDirectory(t *testing.T, filesystem wire.FileSystem, _ FSTestConfig) {
	writeFile(t, filesystem, "/dir/file.txt", nil)

	_, err := filesystem.OpenFile(context.Background(), wire.ModeRead, path(t, "/dir"))
	expectCode(t, "OpenFile(/dir)", err, wire.ErrorCodeNotAFile)
}
