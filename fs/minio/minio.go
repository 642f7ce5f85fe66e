package minio

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/jmgilman/go/vfs/fs/core"
	"github.com/jmgilman/go/vfs/fs/minio/internal/errs"
	"github.com/jmgilman/go/vfs/fs/minio/internal/pathutil"
	"github.com/jmgilman/go/vfs/fs/wire"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"golang.org/x/sync/errgroup"
)

// Compile-time interface check.
var _ wire.FileSystem = (*MinioFS)(nil)

// MinioFS serves a MinIO/S3 bucket over the wire contract.
//
// Objects are files and key prefixes are directories. Directories that hold
// no objects exist only as an empty marker object whose key ends in a slash.
//
//nolint:revive // MinioFS name is intentional to match naming pattern across fs implementations
type MinioFS struct {
	client            *minio.Client
	bucket            string
	prefix            string
	partSize          int64
	renameConcurrency int
	maxFileSize       int64
}

// NewMinIO creates a filesystem over cfg.Bucket. It does not contact the
// server; a missing bucket surfaces on first use as
// wire.ErrorCodePartitionNotFound.
func NewMinIO(cfg Config) (*MinioFS, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	cfg = cfg.withDefaults()

	client := cfg.Client
	if client == nil {
		var err error
		client, err = minio.New(cfg.Endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
			Secure: cfg.UseSSL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create minio client: %w", err)
		}
	}

	return &MinioFS{
		client:            client,
		bucket:            cfg.Bucket,
		prefix:            pathutil.NormalizePrefix(cfg.Prefix),
		partSize:          cfg.PartSize,
		renameConcurrency: cfg.RenameConcurrency,
		maxFileSize:       cfg.MaxFileSize,
	}, nil
}

// Type returns core.FSTypeRemote.
func (m *MinioFS) Type() core.FSType {
	return core.FSTypeRemote
}

// Bucket returns the bucket the filesystem serves.
func (m *MinioFS) Bucket() string {
	return m.bucket
}

// key maps a wire path to an object key.
func (m *MinioFS) key(p wire.Path) string {
	return pathutil.JoinPath(m.prefix, p.String())
}

// entry is the result of probing a key.
type entry struct {
	exists bool
	isDir  bool
	size   int64
}

// stat looks up key as an object first and as a directory prefix second.
func (m *MinioFS) stat(ctx context.Context, key string) (entry, error) {
	if key == m.prefix {
		return entry{exists: true, isDir: true}, nil
	}

	info, err := m.client.StatObject(ctx, m.bucket, key, minio.StatObjectOptions{})
	if err == nil {
		return entry{exists: true, size: info.Size}, nil
	}
	if !errs.IsNotFound(err) {
		return entry{}, err
	}

	found, err := m.hasObjects(ctx, pathutil.DirKey(key), "")
	if err != nil {
		return entry{}, err
	}
	return entry{exists: found, isDir: found}, nil
}

// hasObjects reports whether any object other than skip exists below prefix.
func (m *MinioFS) hasObjects(ctx context.Context, prefix, skip string) (bool, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	for object := range m.client.ListObjects(ctx, m.bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}) {
		if object.Err != nil {
			return false, object.Err
		}
		if object.Key != skip {
			return true, nil
		}
	}
	return false, nil
}

// MkdirAll writes a directory marker. Parents are implied by the key.
func (m *MinioFS) MkdirAll(name string) error {
	ctx := context.Background()
	key := pathutil.JoinPath(m.prefix, name)
	if key == m.prefix {
		return nil
	}

	_, err := m.client.PutObject(ctx, m.bucket, pathutil.DirKey(key), bytes.NewReader(nil), 0, minio.PutObjectOptions{})
	return errs.Translate("mkdir", name, err)
}

// CreateFile uploads a zero-filled object of the given size.
func (m *MinioFS) CreateFile(ctx context.Context, size uint64, p wire.Path) error {
	if size > uint64(m.maxFileSize) {
		return wire.NewError(wire.ErrorCodeNoSpaceLeft, "create", p.String())
	}

	key := m.key(p)
	e, err := m.stat(ctx, key)
	if err != nil {
		return errs.Translate("create", p.String(), err)
	}
	if e.exists {
		return wire.NewError(wire.ErrorCodePathExists, "create", p.String())
	}

	return errs.Translate("create", p.String(), m.put(ctx, key, io.LimitReader(zeros{}, int64(size)), int64(size)))
}

func (m *MinioFS) put(ctx context.Context, key string, r io.Reader, size int64) error {
	_, err := m.client.PutObject(ctx, m.bucket, key, r, size, minio.PutObjectOptions{
		PartSize: uint64(m.partSize),
	})
	return err
}

// OpenFile returns a handle on an existing object.
func (m *MinioFS) OpenFile(ctx context.Context, mode wire.OpenMode, p wire.Path) (wire.File, error) {
	key := m.key(p)
	e, err := m.stat(ctx, key)
	if err != nil {
		return nil, errs.Translate("open", p.String(), err)
	}
	if !e.exists {
		return nil, wire.NewError(wire.ErrorCodeFileNotFound, "open", p.String())
	}
	if e.isDir {
		return nil, wire.NewError(wire.ErrorCodeNotAFile, "open", p.String())
	}

	return &file{fs: m, key: key, name: p.String(), mode: mode}, nil
}

// DeleteFile removes an object.
func (m *MinioFS) DeleteFile(ctx context.Context, p wire.Path) error {
	key := m.key(p)
	e, err := m.stat(ctx, key)
	if err != nil {
		return errs.Translate("delete", p.String(), err)
	}
	if !e.exists {
		return wire.NewError(wire.ErrorCodeFileNotFound, "delete", p.String())
	}
	if e.isDir {
		return wire.NewError(wire.ErrorCodeNotAFile, "delete", p.String())
	}

	return errs.Translate("delete", p.String(), m.client.RemoveObject(ctx, m.bucket, key, minio.RemoveObjectOptions{}))
}

// DeleteDirectory removes an empty directory's marker object.
func (m *MinioFS) DeleteDirectory(ctx context.Context, p wire.Path) error {
	key := m.key(p)
	if key == m.prefix {
		return wire.NewError(wire.ErrorCodeAccessDenied, "delete", p.String())
	}
	if err := m.requireDir(ctx, "delete", key, p); err != nil {
		return err
	}

	marker := pathutil.DirKey(key)
	busy, err := m.hasObjects(ctx, marker, marker)
	if err != nil {
		return errs.Translate("delete", p.String(), err)
	}
	if busy {
		return wire.NewError(wire.ErrorCodeInUse, "delete", p.String())
	}

	return errs.Translate("delete", p.String(), m.client.RemoveObject(ctx, m.bucket, marker, minio.RemoveObjectOptions{}))
}

// RenameFile copies an object to its new key and removes the original.
func (m *MinioFS) RenameFile(ctx context.Context, oldPath, newPath wire.Path) error {
	from, to := m.key(oldPath), m.key(newPath)
	e, err := m.stat(ctx, from)
	if err != nil {
		return errs.Translate("rename", oldPath.String(), err)
	}
	if !e.exists {
		return wire.NewError(wire.ErrorCodeFileNotFound, "rename", oldPath.String())
	}
	if e.isDir {
		return wire.NewError(wire.ErrorCodeNotAFile, "rename", oldPath.String())
	}
	if err := m.requireAbsent(ctx, "rename", to, newPath); err != nil {
		return err
	}

	src := minio.CopySrcOptions{Bucket: m.bucket, Object: from}
	dst := minio.CopyDestOptions{Bucket: m.bucket, Object: to}
	if _, err := m.client.CopyObject(ctx, dst, src); err != nil {
		return errs.Translate("rename", oldPath.String(), err)
	}

	err = m.client.RemoveObject(ctx, m.bucket, from, minio.RemoveObjectOptions{})
	return errs.Translate("rename", oldPath.String(), err)
}

// RenameDirectory moves every object below a directory.
//
// IMPORTANT: This operation is NOT atomic. If an error occurs during
// the copy phase, some objects may have been copied. If an error occurs
// during the delete phase, objects will exist at both old and new paths.
func (m *MinioFS) RenameDirectory(ctx context.Context, oldPath, newPath wire.Path) error {
	from, to := m.key(oldPath), m.key(newPath)
	if from == m.prefix {
		return wire.NewError(wire.ErrorCodeAccessDenied, "rename", oldPath.String())
	}
	if err := m.requireDir(ctx, "rename", from, oldPath); err != nil {
		return err
	}
	if to == from || pathutil.IsWithin(to, from) {
		return wire.NewError(wire.ErrorCodeInvalidInput, "rename", newPath.String())
	}
	if err := m.requireAbsent(ctx, "rename", to, newPath); err != nil {
		return err
	}

	copied, err := m.parallelCopy(ctx, pathutil.DirKey(from), pathutil.DirKey(to))
	if err != nil {
		return errs.Translate("rename", oldPath.String(), err)
	}

	// Batch delete old objects
	toDelete := make(chan minio.ObjectInfo, len(copied))
	for _, key := range copied {
		toDelete <- minio.ObjectInfo{Key: key}
	}
	close(toDelete)

	for rmErr := range m.client.RemoveObjects(ctx, m.bucket, toDelete, minio.RemoveObjectsOptions{}) {
		if rmErr.Err != nil {
			// Copy succeeded but delete failed - partial state
			return errs.Translate("rename", oldPath.String(), rmErr.Err)
		}
	}
	return nil
}

// GetEntryType reports whether the key is an object or a prefix.
func (m *MinioFS) GetEntryType(ctx context.Context, p wire.Path) (wire.EntryType, error) {
	e, err := m.stat(ctx, m.key(p))
	if err != nil {
		return 0, errs.Translate("stat", p.String(), err)
	}
	if !e.exists {
		return 0, wire.NewError(wire.ErrorCodePathNotFound, "stat", p.String())
	}
	if e.isDir {
		return wire.EntryTypeDirectory, nil
	}
	return wire.EntryTypeFile, nil
}

func (m *MinioFS) requireDir(ctx context.Context, op, key string, p wire.Path) error {
	e, err := m.stat(ctx, key)
	if err != nil {
		return errs.Translate(op, p.String(), err)
	}
	if !e.exists {
		return wire.NewError(wire.ErrorCodeDirectoryNotFound, op, p.String())
	}
	if !e.isDir {
		return wire.NewError(wire.ErrorCodeNotADirectory, op, p.String())
	}
	return nil
}

func (m *MinioFS) requireAbsent(ctx context.Context, op, key string, p wire.Path) error {
	e, err := m.stat(ctx, key)
	if err != nil {
		return errs.Translate(op, p.String(), err)
	}
	if e.exists {
		return wire.NewError(wire.ErrorCodePathExists, op, p.String())
	}
	return nil
}

// parallelCopy copies objects from old to new prefix using a worker pool.
// Returns the list of successfully copied object keys for cleanup.
func (m *MinioFS) parallelCopy(ctx context.Context, oldPrefix, newPrefix string) ([]string, error) {
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(m.renameConcurrency)

	var copiedMu sync.Mutex
	var copied []string

	for object := range m.client.ListObjects(egCtx, m.bucket, minio.ListObjectsOptions{
		Prefix:    oldPrefix,
		Recursive: true,
	}) {
		if object.Err != nil {
			_ = eg.Wait()
			return copied, object.Err
		}

		objectKey := object.Key
		eg.Go(func() error {
			newKey := newPrefix + strings.TrimPrefix(objectKey, oldPrefix)

			src := minio.CopySrcOptions{Bucket: m.bucket, Object: objectKey}
			dst := minio.CopyDestOptions{Bucket: m.bucket, Object: newKey}
			if _, err := m.client.CopyObject(egCtx, dst, src); err != nil {
				return fmt.Errorf("copy object %s to %s: %w", objectKey, newKey, err)
			}

			copiedMu.Lock()
			copied = append(copied, objectKey)
			copiedMu.Unlock()
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return copied, fmt.Errorf("parallel copy failed: %w", err)
	}
	return copied, nil
}

// zeros is an endless reader of zero bytes.
type zeros struct{}

func (zeros) Read(p []byte) (int, error) {
	clear(p)
	return len(p), nil
}
