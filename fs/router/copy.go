package router

import (
	"context"
	"io"
	"path"

	"github.com/jmgilman/go/vfs/fs/core"
	"github.com/jmgilman/go/vfs/fs/wire"
)

// Copy copies the regular file from to the path to and returns the number of
// bytes copied. The destination is created if missing and truncated
// otherwise. The two paths may live on different backends. Copying a file
// onto itself is rejected with CodeInvalidInput.
func (r *Router) Copy(ctx context.Context, from, to string) (int64, error) {
	src, err := r.resolve("copy", from)
	if err != nil {
		return 0, err
	}
	dst, err := r.resolve("copy", to)
	if err != nil {
		return 0, err
	}
	if sameBackend(src.Resolved, dst.Resolved) && path.Clean(src.Path) == path.Clean(dst.Path) {
		return 0, invalidInput(src.name, "cannot copy a file onto itself")
	}

	kind, err := src.Backend.GetEntryType(ctx, src.wire)
	if err != nil {
		return 0, translate("copy", src.name, err)
	}
	if kind != wire.EntryTypeFile {
		return 0, invalidInput(src.name, "the source path is not an existing regular file")
	}

	in, err := r.open(ctx, from, core.ReadOnly())
	if err != nil {
		return 0, err
	}
	defer in.Close()

	out, err := r.open(ctx, to, core.NewOpenOptions().Write(true).Create(true).Truncate(true))
	if err != nil {
		return 0, err
	}

	r.logger.DebugContext(ctx, "copy", "from", src.name, "to", dst.name)

	n, err := io.Copy(out, in)
	if err != nil {
		_ = out.Close()
		return n, err
	}
	if err := out.Flush(); err != nil {
		_ = out.Close()
		return n, err
	}
	// No-op until a backend models permissions.
	if err := out.SetPermissions(nil); err != nil {
		_ = out.Close()
		return n, err
	}
	return n, out.Close()
}
