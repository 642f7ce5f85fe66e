package fstest

import (
	"bytes"
	"context"
	"testing"

	"github.com/jmgilman/go/vfs/fs/wire"
)

// TestFileIO tests reads, writes and sizing through wire.File.
// Uses POSIXTestConfig() by default.
func TestFileIO(t *testing.T, filesystem wire.FileSystem) {
	TestFileIOWithConfig(t, filesystem, POSIXTestConfig())
}

// TestFileIOWithConfig tests file I/O with behavior configuration.
func TestFileIOWithConfig(t *testing.T, filesystem wire.FileSystem, config FSTestConfig) {
	t.Run("WriteAndRead", func(t *testing.T) {
		testWriteAndRead(t, filesystem, config)
	})
	t.Run("ReadPastEnd", func(t *testing.T) {
		testReadPastEnd(t, filesystem, config)
	})
	t.Run("ModeGating", func(t *testing.T) {
		testModeGating(t, filesystem, config)
	})
	t.Run("GrowRequiresAppend", func(t *testing.T) {
		testGrowRequiresAppend(t, filesystem, config)
	})
	t.Run("WriteAtGap", func(t *testing.T) {
		testWriteAtGap(t, filesystem, config)
	})
	t.Run("SetSize", func(t *testing.T) {
		testSetSize(t, filesystem, config)
	})
	t.Run("HandlesShareContents", func(t *testing.T) {
		testHandlesShareContents(t, filesystem, config)
	})
}

func testWriteAndRead(t *testing.T, filesystem wire.FileSystem, _ FSTestConfig) {
	data := []byte("The quick brown fox jumps over the lazy dog")
	writeFile(t, filesystem, "/fox.txt", data)

	if got := readFile(t, filesystem, "/fox.txt"); !bytes.Equal(got, data) {
		t.Errorf("contents of /fox.txt: got %q, want %q", got, data)
	}

	ctx := context.Background()
	f, err := filesystem.OpenFile(ctx, wire.ModeRead, path(t, "/fox.txt"))
	if err != nil {
		t.Fatalf("OpenFile(/fox.txt): %v", err)
	}
	defer func() { _ = f.Close() }()

	buf := make([]byte, 5)
	n, err := f.Read(ctx, 16, buf)
	if err != nil {
		t.Fatalf("Read(/fox.txt, 16): %v", err)
	}
	if string(buf[:n]) != "fox j" {
		t.Errorf("Read(/fox.txt, 16): got %q, want %q", buf[:n], "fox j")
	}
}

func testReadPastEnd(t *testing.T, filesystem wire.FileSystem, _ FSTestConfig) {
	writeFile(t, filesystem, "/short.txt", []byte("abc"))

	ctx := context.Background()
	f, err := filesystem.OpenFile(ctx, wire.ModeRead, path(t, "/short.txt"))
	if err != nil {
		t.Fatalf("OpenFile(/short.txt): %v", err)
	}
	defer func() { _ = f.Close() }()

	for _, off := range []uint64{3, 100} {
		n, err := f.Read(ctx, off, make([]byte, 8))
		if err != nil {
			t.Errorf("Read(/short.txt, %d): got error %v, want nil", off, err)
		}
		if n != 0 {
			t.Errorf("Read(/short.txt, %d): got %d bytes, want 0", off, n)
		}
	}

	n, err := f.Read(ctx, 1, make([]byte, 8))
	if err != nil || n != 2 {
		t.Errorf("Read(/short.txt, 1): got (%d, %v), want (2, nil)", n, err)
	}
}

func testModeGating(t *testing.T, filesystem wire.FileSystem, _ FSTestConfig) {
	writeFile(t, filesystem, "/gated.txt", []byte("data"))
	ctx := context.Background()

	ro, err := filesystem.OpenFile(ctx, wire.ModeRead, path(t, "/gated.txt"))
	if err != nil {
		t.Fatalf("OpenFile(/gated.txt, read): %v", err)
	}
	defer func() { _ = ro.Close() }()
	expectCode(t, "Write on read-only handle", ro.Write(ctx, 0, []byte("x")), wire.ErrorCodeAccessDenied)

	wo, err := filesystem.OpenFile(ctx, wire.ModeWrite, path(t, "/gated.txt"))
	if err != nil {
		t.Fatalf("OpenFile(/gated.txt, write): %v", err)
	}
	defer func() { _ = wo.Close() }()
	_, err = wo.Read(ctx, 0, make([]byte, 4))
	expectCode(t, "Read on write-only handle", err, wire.ErrorCodeAccessDenied)
}

func testGrowRequiresAppend(t *testing.T, filesystem wire.FileSystem, _ FSTestConfig) {
	writeFile(t, filesystem, "/fixed.txt", []byte("0123"))
	ctx := context.Background()

	f, err := filesystem.OpenFile(ctx, wire.ModeRead|wire.ModeWrite, path(t, "/fixed.txt"))
	if err != nil {
		t.Fatalf("OpenFile(/fixed.txt): %v", err)
	}

	if err := f.Write(ctx, 1, []byte("ab")); err != nil {
		t.Fatalf("in-place Write: got error %v, want nil", err)
	}
	expectCode(t, "growing Write without append", f.Write(ctx, 3, []byte("xy")), wire.ErrorCodeOutOfRange)
	if err := f.Flush(ctx); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	_ = f.Close()

	if got := readFile(t, filesystem, "/fixed.txt"); string(got) != "0ab3" {
		t.Errorf("contents of /fixed.txt: got %q, want %q", got, "0ab3")
	}
}

func testWriteAtGap(t *testing.T, filesystem wire.FileSystem, _ FSTestConfig) {
	writeFile(t, filesystem, "/gap.bin", []byte("ab"))
	ctx := context.Background()

	f, err := filesystem.OpenFile(ctx, wire.ModeWrite|wire.ModeAppend, path(t, "/gap.bin"))
	if err != nil {
		t.Fatalf("OpenFile(/gap.bin): %v", err)
	}
	if err := f.Write(ctx, 4, []byte("cd")); err != nil {
		t.Fatalf("Write(/gap.bin, 4): %v", err)
	}
	if err := f.Flush(ctx); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	_ = f.Close()

	want := []byte{'a', 'b', 0, 0, 'c', 'd'}
	if got := readFile(t, filesystem, "/gap.bin"); !bytes.Equal(got, want) {
		t.Errorf("contents of /gap.bin: got %v, want %v", got, want)
	}
}

func testSetSize(t *testing.T, filesystem wire.FileSystem, _ FSTestConfig) {
	writeFile(t, filesystem, "/resize.txt", []byte("0123456789"))
	ctx := context.Background()

	f, err := filesystem.OpenFile(ctx, wire.ModeRead|wire.ModeWrite, path(t, "/resize.txt"))
	if err != nil {
		t.Fatalf("OpenFile(/resize.txt): %v", err)
	}
	defer func() { _ = f.Close() }()

	for _, size := range []uint64{4, 0, 6} {
		if err := f.SetSize(ctx, size); err != nil {
			t.Fatalf("SetSize(%d): %v", size, err)
		}
		got, err := f.GetSize(ctx)
		if err != nil {
			t.Fatalf("GetSize: %v", err)
		}
		if got != size {
			t.Errorf("GetSize after SetSize(%d): got %d", size, got)
		}
	}
	if err := f.Flush(ctx); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	if got := readFile(t, filesystem, "/resize.txt"); !bytes.Equal(got, make([]byte, 6)) {
		t.Errorf("contents after regrow: got %v, want 6 zero bytes", got)
	}
}

func testHandlesShareContents(t *testing.T, filesystem wire.FileSystem, _ FSTestConfig) {
	writeFile(t, filesystem, "/shared.txt", []byte("before"))
	ctx := context.Background()

	w, err := filesystem.OpenFile(ctx, wire.ModeWrite, path(t, "/shared.txt"))
	if err != nil {
		t.Fatalf("OpenFile(/shared.txt, write): %v", err)
	}
	if err := w.Write(ctx, 0, []byte("AFTER!")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := w.Flush(ctx); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	_ = w.Close()

	if got := readFile(t, filesystem, "/shared.txt"); string(got) != "AFTER!" {
		t.Errorf("contents seen by new handle: got %q, want %q", got, "AFTER!")
	}
}
