package router

import (
	"context"
	"io"
	"log/slog"
	"reflect"

	"github.com/jmgilman/go/vfs/errors"
	"github.com/jmgilman/go/vfs/fs/core"
	"github.com/jmgilman/go/vfs/fs/wire"
)

// SystemPrefix is the prefix Init registers the boot partition under.
const SystemPrefix = "system"

// Compile-time interface check.
var _ core.FS = (*Router)(nil)

// Router dispatches generic file operations to registered backends.
type Router struct {
	registry *Registry
	logger   *slog.Logger
	getwd    func() (string, error)
}

// New returns a Router serving the backends in reg.
func New(reg *Registry, opts ...Option) *Router {
	if reg == nil {
		reg = NewRegistry()
	}
	r := &Router{
		registry: reg,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		getwd:    defaultWorkingDir,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Init opens partition 0 of disk 0 through svc, registers it under
// SystemPrefix in a new registry and returns a Router over it.
func Init(ctx context.Context, svc wire.Service, opts ...Option) (*Router, error) {
	backend, err := svc.OpenDiskPartition(ctx, 0, 0)
	if err != nil {
		return nil, translate("init", DefaultWorkingDir, err)
	}

	reg := NewRegistry()
	if err := reg.Register(SystemPrefix, backend); err != nil {
		return nil, err
	}

	r := New(reg, opts...)
	r.logger.DebugContext(ctx, "registered filesystem", "prefix", SystemPrefix, "disk", 0, "partition", 0)
	return r, nil
}

// Registry returns the registry the router resolves against.
func (r *Router) Registry() *Registry {
	return r.registry
}

// Mount registers backend under prefix.
func (r *Router) Mount(ctx context.Context, prefix string, backend wire.FileSystem) error {
	if err := r.registry.Register(prefix, backend); err != nil {
		return err
	}
	r.logger.DebugContext(ctx, "registered filesystem", "prefix", prefix)
	return nil
}

// Getwd returns the current working directory.
func (r *Router) Getwd() (string, error) {
	return r.getwd()
}

// Abs joins name against the working directory.
func (r *Router) Abs(name string) (string, error) {
	if IsAbsolute(name) {
		return name, nil
	}
	if _, _, ok := SplitPrefix(name); ok {
		return "", invalidInput(name, "path %q has a prefix but is not absolute", name)
	}

	cwd, err := r.getwd()
	if err != nil {
		return "", errors.WithContext(errors.Wrap(err, errors.CodeOther, "get working directory"), "path", name)
	}
	if !IsAbsolute(cwd) {
		return "", invalidInput(name, "working directory %q is not absolute", cwd)
	}
	return Join(cwd, name), nil
}

// target is a resolved, encoded path.
type target struct {
	Resolved
	name string
	wire wire.Path
}

func (r *Router) resolve(op, name string) (target, error) {
	abs, err := r.Abs(name)
	if err != nil {
		return target{}, err
	}

	res, err := r.registry.Resolve(abs)
	if err != nil {
		return target{}, err
	}

	wp, err := wire.EncodePath(res.Path)
	if err != nil {
		return target{}, translate(op, abs, err)
	}

	return target{Resolved: res, name: abs, wire: wp}, nil
}

// Open opens the named file. A nil opts opens the file read-only.
//
// When Create or CreateNew is set the file is created first; an existing file
// is only an error for CreateNew. Truncate empties the file when it is also
// opened for writing.
func (r *Router) Open(ctx context.Context, name string, opts *core.OpenOptions) (core.File, error) {
	f, err := r.open(ctx, name, opts)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (r *Router) open(ctx context.Context, name string, opts *core.OpenOptions) (*File, error) {
	if opts == nil {
		opts = core.ReadOnly()
	}

	t, err := r.resolve("open", name)
	if err != nil {
		return nil, err
	}

	mode := modeFor(opts)
	r.logger.DebugContext(ctx, "open", "path", t.name, "prefix", t.Prefix, "mode", mode.String())

	if opts.Creates() || opts.CreatesNew() {
		if err := t.Backend.CreateFile(ctx, 0, t.wire); err != nil {
			if opts.CreatesNew() {
				return nil, translate("create", t.name, err)
			}
			r.logger.DebugContext(ctx, "create ignored", "path", t.name, "error", err)
		}
	}

	proxy, err := t.Backend.OpenFile(ctx, mode, t.wire)
	if err != nil {
		return nil, translate("open", t.name, err)
	}

	if opts.Truncates() && opts.Writable() {
		if err := proxy.SetSize(ctx, 0); err != nil {
			_ = proxy.Close()
			return nil, translate("truncate", t.name, err)
		}
	}

	return newFile(t.name, proxy), nil
}

func modeFor(opts *core.OpenOptions) wire.OpenMode {
	var mode wire.OpenMode
	if opts.Readable() {
		mode |= wire.ModeRead
	}
	if opts.Writable() {
		mode |= wire.ModeWrite
	}
	if opts.Appends() {
		mode |= wire.ModeAppend
	}
	return mode
}

// Unlink removes the named file.
func (r *Router) Unlink(ctx context.Context, name string) error {
	t, err := r.resolve("unlink", name)
	if err != nil {
		return err
	}

	r.logger.DebugContext(ctx, "unlink", "path", t.name)
	return translate("unlink", t.name, t.Backend.DeleteFile(ctx, t.wire))
}

// Rmdir removes the named empty directory.
func (r *Router) Rmdir(ctx context.Context, name string) error {
	t, err := r.resolve("rmdir", name)
	if err != nil {
		return err
	}

	r.logger.DebugContext(ctx, "rmdir", "path", t.name)
	return translate("rmdir", t.name, t.Backend.DeleteDirectory(ctx, t.wire))
}

// Rename moves oldname to newname within one backend.
// Renames across backends are rejected with CodeInvalidInput before any
// backend call is made.
func (r *Router) Rename(ctx context.Context, oldname, newname string) error {
	from, err := r.resolve("rename", oldname)
	if err != nil {
		return err
	}
	to, err := r.resolve("rename", newname)
	if err != nil {
		return err
	}

	if !sameBackend(from.Resolved, to.Resolved) {
		return errors.WithContext(
			invalidInput(from.name, "cannot rename across filesystems (%s: to %s:)", from.Prefix, to.Prefix),
			"new_path", to.name,
		)
	}

	kind, err := from.Backend.GetEntryType(ctx, from.wire)
	if err != nil {
		return translate("rename", from.name, err)
	}

	r.logger.DebugContext(ctx, "rename", "from", from.name, "to", to.name, "type", kind.String())
	if kind == wire.EntryTypeDirectory {
		err = from.Backend.RenameDirectory(ctx, from.wire, to.wire)
	} else {
		err = from.Backend.RenameFile(ctx, from.wire, to.wire)
	}
	return translate("rename", from.name, err)
}

// sameBackend compares backend identity. Pointer backends are compared by
// address; any other dynamic type falls back to comparing prefixes, since ==
// on a struct holding interface fields can panic.
func sameBackend(a, b Resolved) bool {
	ta, tb := reflect.TypeOf(a.Backend), reflect.TypeOf(b.Backend)
	if ta != tb {
		return false
	}
	if ta != nil && ta.Kind() == reflect.Ptr {
		return a.Backend == b.Backend
	}
	return a.Prefix == b.Prefix
}

// SetPermissions checks that name can be opened for reading and writing.
// Backends have no permission model so nothing else happens.
func (r *Router) SetPermissions(ctx context.Context, name string, perm core.Permissions) error {
	f, err := r.open(ctx, name, core.NewOpenOptions().Read(true).Write(true))
	if err != nil {
		return err
	}
	if err := f.SetPermissions(perm); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
