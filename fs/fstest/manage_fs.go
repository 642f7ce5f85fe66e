package fstest

import (
	"context"
	"testing"

	"github.com/jmgilman/go/vfs/fs/wire"
)

// TestManageFS tests deletion, renaming and entry type queries.
// Uses POSIXTestConfig() by default.
func TestManageFS(t *testing.T, filesystem wire.FileSystem) {
	TestManageFSWithConfig(t, filesystem, POSIXTestConfig())
}

// TestManageFSWithConfig tests file management with behavior configuration.
func TestManageFSWithConfig(t *testing.T, filesystem wire.FileSystem, config FSTestConfig) {
	t.Run("DeleteFile", func(t *testing.T) {
		testDeleteFile(t, filesystem, config)
	})
	t.Run("DeleteFileErrors", func(t *testing.T) {
		testDeleteFileErrors(t, filesystem, config)
	})
	t.Run("DeleteEmptyDirectory", func(t *testing.T) {
		testDeleteEmptyDir(t, filesystem, config)
	})
	t.Run("DeleteNonEmptyDirectory", func(t *testing.T) {
		testDeleteNonEmptyDir(t, filesystem, config)
	})
	t.Run("DeleteDirectoryErrors", func(t *testing.T) {
		testDeleteDirErrors(t, filesystem, config)
	})
	t.Run("RenameFile", func(t *testing.T) {
		testRenameFile(t, filesystem, config)
	})
	t.Run("RenameFileErrors", func(t *testing.T) {
		testRenameFileErrors(t, filesystem, config)
	})
	t.Run("RenameDirectory", func(t *testing.T) {
		testRenameDir(t, filesystem, config)
	})
}

func testDeleteFile(t *testing.T, filesystem wire.FileSystem, config FSTestConfig) {
	writeFile(t, filesystem, "/parent/victim.txt", []byte("x"))

	if err := filesystem.DeleteFile(context.Background(), path(t, "/parent/victim.txt")); err != nil {
		t.Fatalf("DeleteFile(/parent/victim.txt): got error %v, want nil", err)
	}

	_, err := entryType(t, filesystem, "/parent/victim.txt")
	expectNotFound(t, "GetEntryType after DeleteFile", err)

	// The implied parent only survives on filesystems with real directories.
	_, err = entryType(t, filesystem, "/parent")
	if config.VirtualDirectories {
		expectNotFound(t, "GetEntryType(/parent) with virtual directories", err)
	} else if err != nil {
		t.Errorf("GetEntryType(/parent): got error %v, want nil", err)
	}
}

func testDeleteFileErrors(t *testing.T, filesystem wire.FileSystem, _ FSTestConfig) {
	ctx := context.Background()

	expectNotFound(t, "DeleteFile(/nope.txt)", filesystem.DeleteFile(ctx, path(t, "/nope.txt")))

	writeFile(t, filesystem, "/d/f.txt", nil)
	expectCode(t, "DeleteFile(/d)", filesystem.DeleteFile(ctx, path(t, "/d")), wire.ErrorCodeNotAFile)
}

func testDeleteEmptyDir(t *testing.T, filesystem wire.FileSystem, _ FSTestConfig) {
	maker, ok := filesystem.(DirMaker)
	if !ok {
		t.Skip("backend cannot provision directories")
	}
	if err := maker.MkdirAll("/emptydir"); err != nil {
		t.Fatalf("MkdirAll(/emptydir): setup failed: %v", err)
	}

	typ, err := entryType(t, filesystem, "/emptydir")
	if err != nil || typ != wire.EntryTypeDirectory {
		t.Fatalf("GetEntryType(/emptydir): got (%v, %v), want directory", typ, err)
	}

	if err := filesystem.DeleteDirectory(context.Background(), path(t, "/emptydir")); err != nil {
		t.Fatalf("DeleteDirectory(/emptydir): got error %v, want nil", err)
	}

	_, err = entryType(t, filesystem, "/emptydir")
	expectNotFound(t, "GetEntryType after DeleteDirectory", err)
}

func testDeleteNonEmptyDir(t *testing.T, filesystem wire.FileSystem, _ FSTestConfig) {
	writeFile(t, filesystem, "/full/file.txt", []byte("x"))

	err := filesystem.DeleteDirectory(context.Background(), path(t, "/full"))
	expectCode(t, "DeleteDirectory(/full)", err, wire.ErrorCodeInUse)

	if got := readFile(t, filesystem, "/full/file.txt"); string(got) != "x" {
		t.Errorf("child after failed DeleteDirectory: got %q, want %q", got, "x")
	}
}

func testDeleteDirErrors(t *testing.T, filesystem wire.FileSystem, _ FSTestConfig) {
	ctx := context.Background()

	expectNotFound(t, "DeleteDirectory(/nodir)", filesystem.DeleteDirectory(ctx, path(t, "/nodir")))

	writeFile(t, filesystem, "/plain.txt", nil)
	expectCode(t, "DeleteDirectory(/plain.txt)", filesystem.DeleteDirectory(ctx, path(t, "/plain.txt")), wire.ErrorCodeNotADirectory)
}

func testRenameFile(t *testing.T, filesystem wire.FileSystem, _ FSTestConfig) {
	writeFile(t, filesystem, "/old.txt", []byte("moving"))

	if err := filesystem.RenameFile(context.Background(), path(t, "/old.txt"), path(t, "/sub/new.txt")); err != nil {
		t.Fatalf("RenameFile(/old.txt, /sub/new.txt): got error %v, want nil", err)
	}

	_, err := entryType(t, filesystem, "/old.txt")
	expectNotFound(t, "GetEntryType(/old.txt) after rename", err)

	if got := readFile(t, filesystem, "/sub/new.txt"); string(got) != "moving" {
		t.Errorf("contents of /sub/new.txt: got %q, want %q", got, "moving")
	}
}

func testRenameFileErrors(t *testing.T, filesystem wire.FileSystem, _ FSTestConfig) {
	ctx := context.Background()

	expectNotFound(t, "RenameFile(/ghost.txt)", filesystem.RenameFile(ctx, path(t, "/ghost.txt"), path(t, "/x.txt")))

	writeFile(t, filesystem, "/src.txt", []byte("src"))
	writeFile(t, filesystem, "/dst.txt", []byte("dst"))
	err := filesystem.RenameFile(ctx, path(t, "/src.txt"), path(t, "/dst.txt"))
	expectCode(t, "RenameFile onto existing", err, wire.ErrorCodePathExists)

	if got := readFile(t, filesystem, "/dst.txt"); string(got) != "dst" {
		t.Errorf("destination after failed rename: got %q, want %q", got, "dst")
	}

	writeFile(t, filesystem, "/somedir/f.txt", nil)
	err = filesystem.RenameFile(ctx, path(t, "/somedir"), path(t, "/other"))
	expectCode(t, "RenameFile on directory", err, wire.ErrorCodeNotAFile)
}

func testRenameDir(t *testing.T, filesystem wire.FileSystem, _ FSTestConfig) {
	writeFile(t, filesystem, "/tree/a.txt", []byte("a"))
	writeFile(t, filesystem, "/tree/sub/b.txt", []byte("b"))
	ctx := context.Background()

	if err := filesystem.RenameDirectory(ctx, path(t, "/tree"), path(t, "/moved")); err != nil {
		t.Fatalf("RenameDirectory(/tree, /moved): got error %v, want nil", err)
	}

	_, err := entryType(t, filesystem, "/tree")
	expectNotFound(t, "GetEntryType(/tree) after rename", err)

	if got := readFile(t, filesystem, "/moved/a.txt"); string(got) != "a" {
		t.Errorf("contents of /moved/a.txt: got %q, want %q", got, "a")
	}
	if got := readFile(t, filesystem, "/moved/sub/b.txt"); string(got) != "b" {
		t.Errorf("contents of /moved/sub/b.txt: got %q, want %q", got, "b")
	}

	err = filesystem.RenameDirectory(ctx, path(t, "/moved"), path(t, "/moved/inner"))
	expectCode(t, "RenameDirectory into itself", err, wire.ErrorCodeInvalidInput)

	err = filesystem.RenameDirectory(ctx, path(t, "/moved/a.txt"), path(t, "/x"))
	expectCode(t, "RenameDirectory on file", err, wire.ErrorCodeNotADirectory)
}
