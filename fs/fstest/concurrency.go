package fstest

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/jmgilman/go/vfs/fs/wire"
)

// TestConcurrency tests that a backend can be used from several goroutines at
// once: files created side by side under one directory, and separate handles
// reading the same file while other files are written.
// Uses POSIXTestConfig() by default.
func TestConcurrency(t *testing.T, filesystem wire.FileSystem) {
	TestConcurrencyWithConfig(t, filesystem, POSIXTestConfig())
}

// TestConcurrencyWithConfig tests concurrent use with behavior configuration.
func TestConcurrencyWithConfig(t *testing.T, filesystem wire.FileSystem, _ FSTestConfig) {
	const workers = 8
	ctx := context.Background()

	shared := bytes.Repeat([]byte("0123456789abcdef"), 64)
	writeFile(t, filesystem, "/shared.txt", shared)

	var wg sync.WaitGroup
	errs := make(chan error, 2*workers)
	for i := 0; i < workers; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			name := fmt.Sprintf("/workers/worker-%d.txt", i)
			if err := writeConcurrent(ctx, filesystem, name, bytes.Repeat([]byte{byte('a' + i)}, 64)); err != nil {
				errs <- err
			}
		}(i)
		go func() {
			defer wg.Done()
			got, err := readConcurrent(ctx, filesystem, "/shared.txt")
			if err != nil {
				errs <- err
				return
			}
			if !bytes.Equal(got, shared) {
				errs <- fmt.Errorf("contents of /shared.txt changed under concurrent reads")
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}

	for i := 0; i < workers; i++ {
		name := fmt.Sprintf("/workers/worker-%d.txt", i)
		want := bytes.Repeat([]byte{byte('a' + i)}, 64)
		if got := readFile(t, filesystem, name); !bytes.Equal(got, want) {
			t.Errorf("contents of %s: got %q, want %q", name, got, want)
		}
	}
}

// writeConcurrent is writeFile for use off the test goroutine.
func writeConcurrent(ctx context.Context, filesystem wire.FileSystem, name string, data []byte) error {
	wp, err := wire.EncodePath(name)
	if err != nil {
		return err
	}
	if err := filesystem.CreateFile(ctx, 0, wp); err != nil {
		return fmt.Errorf("CreateFile(%s): %w", name, err)
	}
	f, err := filesystem.OpenFile(ctx, wire.ModeWrite|wire.ModeAppend, wp)
	if err != nil {
		return fmt.Errorf("OpenFile(%s): %w", name, err)
	}
	defer func() { _ = f.Close() }()

	if err := f.Write(ctx, 0, data); err != nil {
		return fmt.Errorf("Write(%s): %w", name, err)
	}
	if err := f.Flush(ctx); err != nil {
		return fmt.Errorf("Flush(%s): %w", name, err)
	}
	return nil
}

// readConcurrent is readFile for use off the test goroutine.
func readConcurrent(ctx context.Context, filesystem wire.FileSystem, name string) ([]byte, error) {
	wp, err := wire.EncodePath(name)
	if err != nil {
		return nil, err
	}
	f, err := filesystem.OpenFile(ctx, wire.ModeRead, wp)
	if err != nil {
		return nil, fmt.Errorf("OpenFile(%s): %w", name, err)
	}
	defer func() { _ = f.Close() }()

	size, err := f.GetSize(ctx)
	if err != nil {
		return nil, fmt.Errorf("GetSize(%s): %w", name, err)
	}
	buf := make([]byte, size)
	var off uint64
	for off < size {
		n, err := f.Read(ctx, off, buf[off:])
		if err != nil {
			return nil, fmt.Errorf("Read(%s, %d): %w", name, off, err)
		}
		if n == 0 {
			return nil, fmt.Errorf("Read(%s, %d): short read, size %d", name, off, size)
		}
		off += n
	}
	return buf, nil
}
