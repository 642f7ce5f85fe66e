package fstest

import (
	"context"
	"errors"
	"testing"

	"github.com/jmgilman/go/vfs/fs/wire"
)

func path(t *testing.T, p string) wire.Path {
	t.Helper()
	wp, err := wire.EncodePath(p)
	if err != nil {
		t.Fatalf("EncodePath(%s): %v", p, err)
	}
	return wp
}

// codeOf extracts the backend error code, or reports a failure if err is not
// a *wire.Error.
func codeOf(t *testing.T, err error) wire.ErrorCode {
	t.Helper()
	var wireErr *wire.Error
	if !errors.As(err, &wireErr) {
		t.Fatalf("got error %v (%T), want *wire.Error", err, err)
	}
	return wireErr.Code
}

func expectCode(t *testing.T, op string, err error, want ...wire.ErrorCode) {
	t.Helper()
	if err == nil {
		t.Fatalf("%s: got nil error, want %v", op, want)
	}
	got := codeOf(t, err)
	for _, w := range want {
		if got == w {
			return
		}
	}
	t.Errorf("%s: got code %v, want one of %v", op, got, want)
}

func expectNotFound(t *testing.T, op string, err error) {
	t.Helper()
	if err == nil {
		t.Fatalf("%s: got nil error, want a not-found code", op)
	}
	if code := codeOf(t, err); !code.IsNotFound() {
		t.Errorf("%s: got code %v, want a not-found code", op, code)
	}
}

// writeFile creates p and writes data to it.
func writeFile(t *testing.T, filesystem wire.FileSystem, p string, data []byte) {
	t.Helper()
	ctx := context.Background()

	if err := filesystem.CreateFile(ctx, 0, path(t, p)); err != nil {
		t.Fatalf("CreateFile(%s): setup failed: %v", p, err)
	}
	f, err := filesystem.OpenFile(ctx, wire.ModeWrite|wire.ModeAppend, path(t, p))
	if err != nil {
		t.Fatalf("OpenFile(%s): setup failed: %v", p, err)
	}
	defer func() { _ = f.Close() }()

	if len(data) > 0 {
		if err := f.Write(ctx, 0, data); err != nil {
			t.Fatalf("Write(%s): setup failed: %v", p, err)
		}
	}
	if err := f.Flush(ctx); err != nil {
		t.Fatalf("Flush(%s): setup failed: %v", p, err)
	}
}

// readFile returns the full contents of p.
func readFile(t *testing.T, filesystem wire.FileSystem, p string) []byte {
	t.Helper()
	ctx := context.Background()

	f, err := filesystem.OpenFile(ctx, wire.ModeRead, path(t, p))
	if err != nil {
		t.Fatalf("OpenFile(%s): %v", p, err)
	}
	defer func() { _ = f.Close() }()

	size, err := f.GetSize(ctx)
	if err != nil {
		t.Fatalf("GetSize(%s): %v", p, err)
	}

	buf := make([]byte, size)
	var off uint64
	for off < size {
		n, err := f.Read(ctx, off, buf[off:])
		if err != nil {
			t.Fatalf("Read(%s, %d): %v", p, off, err)
		}
		if n == 0 {
			t.Fatalf("Read(%s, %d): short read, size %d", p, off, size)
		}
		off += n
	}
	return buf
}

func entryType(t *testing.T, filesystem wire.FileSystem, p string) (wire.EntryType, error) {
	t.Helper()
	return filesystem.GetEntryType(context.Background(), path(t, p))
}
