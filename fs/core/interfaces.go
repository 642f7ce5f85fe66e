package core

import (
	"context"
	"io"
)

// FSType represents the kind of storage behind a mounted backend.
type FSType int

const (
	// FSTypeUnknown indicates the filesystem type is unknown or unspecified.
	FSTypeUnknown FSType = iota
	// FSTypeLocal indicates a local filesystem (e.g., disk-backed).
	FSTypeLocal
	// FSTypeMemory indicates an in-memory filesystem.
	FSTypeMemory
	// FSTypeRemote indicates a remote filesystem (e.g., S3, cloud storage).
	FSTypeRemote
)

// String returns a string representation of the FSType.
func (t FSType) String() string {
	switch t {
	case FSTypeLocal:
		return "local"
	case FSTypeMemory:
		return "memory"
	case FSTypeRemote:
		return "remote"
	default:
		return "unknown"
	}
}

// ParseFSType is the inverse of FSType.String. The remote type is also
// accepted under the name "minio".
func ParseFSType(s string) FSType {
	switch s {
	case "local":
		return FSTypeLocal
	case "memory":
		return FSTypeMemory
	case "remote", "minio":
		return FSTypeRemote
	default:
		return FSTypeUnknown
	}
}

// FS is the generic filesystem API.
//
// Every method takes a context that is passed through to the backend round
// trips it performs. Names are resolved against the implementation's working
// directory when they carry no schema prefix.
type FS interface {
	FileFS
	ManageFS
	MetadataFS
	LinkFS
}

// FileFS defines operations that produce or consume file contents.
type FileFS interface {
	// Open opens the named file with the given options.
	// The returned file must be closed when no longer needed.
	Open(ctx context.Context, name string, opts *OpenOptions) (File, error)

	// Copy copies the contents of one regular file to another and returns the
	// number of bytes copied. The destination is created or truncated.
	// Directory sources are rejected with ErrInvalid.
	Copy(ctx context.Context, from, to string) (int64, error)
}

// ManageFS defines operations that change the shape of the tree.
type ManageFS interface {
	// Unlink removes the named file.
	Unlink(ctx context.Context, name string) error

	// Rmdir removes the named empty directory.
	Rmdir(ctx context.Context, name string) error

	// Rename moves oldname to newname. Both must be owned by the same
	// backend, otherwise ErrInvalid is returned and nothing is changed.
	Rename(ctx context.Context, oldname, newname string) error

	// RemoveAll is not supported.
	RemoveAll(ctx context.Context, name string) error

	// Mkdir is not supported.
	Mkdir(ctx context.Context, name string) error
}

// MetadataFS defines attribute and permission operations.
type MetadataFS interface {
	// Stat is not supported.
	Stat(ctx context.Context, name string) (FileAttr, error)

	// Lstat is not supported.
	Lstat(ctx context.Context, name string) (FileAttr, error)

	// SetPermissions succeeds for any file that can be opened for writing.
	// Backends have no permission model, so perm is ignored.
	SetPermissions(ctx context.Context, name string, perm Permissions) error

	// ReadDir is not supported.
	ReadDir(ctx context.Context, name string) (ReadDir, error)
}

// LinkFS defines link and path canonicalization operations.
// No backend supports them.
type LinkFS interface {
	Symlink(ctx context.Context, oldname, newname string) error
	Link(ctx context.Context, oldname, newname string) error
	Readlink(ctx context.Context, name string) (string, error)
	Canonicalize(ctx context.Context, name string) (string, error)
}

// File represents an open file handle.
//
// A File keeps its own cursor. Concurrent calls on one File are serialized;
// separate Files opened on the same path are independent.
type File interface {
	io.Reader
	io.Writer
	io.Seeker
	io.Closer

	// Name returns the name the file was opened with.
	Name() string

	// Flush commits buffered writes to the backend's storage.
	Flush() error

	// Sync is not supported.
	Sync() error

	// Datasync is not supported.
	Datasync() error

	Truncater

	// Stat is not supported.
	Stat() (FileAttr, error)

	// SetPermissions is a no-op.
	SetPermissions(perm Permissions) error

	// Duplicate is not supported.
	Duplicate() (File, error)
}

// Truncater allows truncating a file to a specified size.
type Truncater interface {
	// Truncate changes the size of the file.
	// It does not change the I/O offset.
	// If the file is larger than size, the extra data is discarded.
	// If the file is smaller than size, it is extended with null bytes.
	Truncate(size int64) error
}
