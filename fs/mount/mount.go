package mount

import (
	"context"
	"io"
	"log/slog"

	"github.com/jmgilman/go/vfs/config"
	"github.com/jmgilman/go/vfs/errors"
	"github.com/jmgilman/go/vfs/fs/billy"
	"github.com/jmgilman/go/vfs/fs/minio"
	"github.com/jmgilman/go/vfs/fs/router"
	"github.com/jmgilman/go/vfs/fs/wire"
)

// Factory builds the backend for one mount.
type Factory func(ctx context.Context, m config.Mount) (wire.FileSystem, error)

// Option configures Build and Boot.
type Option func(*options)

type options struct {
	logger    *slog.Logger
	factories map[config.BackendType]Factory
}

// WithLogger sets the logger handed to the router and used to report
// mounts. The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithFactory overrides how backends of type t are built.
func WithFactory(t config.BackendType, f Factory) Option {
	return func(o *options) {
		if f != nil {
			o.factories[t] = f
		}
	}
}

func newOptions(opts []Option) *options {
	o := &options{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		factories: map[config.BackendType]Factory{
			config.TypeMemory: newMemory,
			config.TypeLocal:  newLocal,
			config.TypeMinIO:  newMinIO,
		},
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Build validates cfg and constructs a backend for every mount. The system
// mount always comes first.
func Build(ctx context.Context, cfg *config.Config, opts ...Option) (*Table, error) {
	if cfg == nil {
		return nil, errors.New(errors.CodeInvalidConfig, "config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := newOptions(opts)

	ordered := make([]config.Mount, 0, len(cfg.Mounts))
	system, _ := cfg.Mount(router.SystemPrefix)
	ordered = append(ordered, system)
	for _, m := range cfg.Mounts {
		if m.Prefix != router.SystemPrefix {
			ordered = append(ordered, m)
		}
	}

	partitions := make([]Partition, 0, len(ordered))
	for i, m := range ordered {
		factory, ok := o.factories[m.Type]
		if !ok {
			return nil, errors.WithContext(
				errors.Newf(errors.CodeInvalidConfig, "no backend for mount type %q", m.Type),
				"prefix", m.Prefix,
			)
		}

		backend, err := factory(ctx, m)
		if err != nil {
			return nil, errors.WithContext(
				errors.Wrapf(err, errors.CodeInvalidConfig, "failed to build %s mount", m.Type),
				"prefix", m.Prefix,
			)
		}

		o.logger.DebugContext(ctx, "built backend", "prefix", m.Prefix, "type", string(m.Type), "partition", i)
		partitions = append(partitions, Partition{Prefix: m.Prefix, Type: m.Type, Backend: backend})
	}

	return NewTable(partitions...), nil
}

// Boot builds the mounts of cfg and returns a router serving all of them.
// The router's working directory is cfg.WorkingDir.
func Boot(ctx context.Context, cfg *config.Config, opts ...Option) (*router.Router, *Table, error) {
	table, err := Build(ctx, cfg, opts...)
	if err != nil {
		return nil, nil, err
	}
	o := newOptions(opts)

	r, err := router.Init(ctx, table,
		router.WithLogger(o.logger),
		router.WithFixedWorkingDir(cfg.WorkingDir),
	)
	if err != nil {
		return nil, nil, err
	}

	for i, p := range table.partitions {
		if i == 0 {
			continue
		}
		backend, err := table.OpenDiskPartition(ctx, 0, uint32(i))
		if err != nil {
			return nil, nil, errors.WithContext(errors.Wrap(err, errors.CodeInternal, "open partition"), "prefix", p.Prefix)
		}
		if err := r.Mount(ctx, p.Prefix, backend); err != nil {
			return nil, nil, err
		}
	}

	o.logger.InfoContext(ctx, "router ready", "mounts", len(table.partitions), "cwd", cfg.WorkingDir)
	return r, table, nil
}

func newMemory(context.Context, config.Mount) (wire.FileSystem, error) {
	return billy.NewMemory(), nil
}

func newLocal(_ context.Context, m config.Mount) (wire.FileSystem, error) {
	var opts []billy.Option
	if m.Bound {
		opts = append(opts, billy.WithBoundOS())
	}
	return billy.NewLocal(m.Root, opts...), nil
}

func newMinIO(_ context.Context, m config.Mount) (wire.FileSystem, error) {
	return minio.NewMinIO(minio.Config{
		Endpoint:          m.MinIO.Endpoint,
		Bucket:            m.MinIO.Bucket,
		AccessKey:         m.MinIO.AccessKey,
		SecretKey:         m.MinIO.SecretKey,
		UseSSL:            m.MinIO.UseSSL,
		Prefix:            m.MinIO.Prefix,
		PartSize:          m.MinIO.PartSize,
		RenameConcurrency: m.MinIO.RenameConcurrency,
		MaxFileSize:       m.MinIO.MaxFileSize,
	})
}
