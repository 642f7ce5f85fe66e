package wire

import "context"

//go:generate go run github.com/matryer/moq@latest -out mocks/wire.go -pkg mocks . Service FileSystem File

// Service is the filesystem discovery entry point.
type Service interface {
	// OpenDiskPartition returns the filesystem stored on a partition.
	// Returns ErrorCodeDiskNotFound or ErrorCodePartitionNotFound when the
	// partition does not exist.
	OpenDiskPartition(ctx context.Context, disk, partition uint32) (FileSystem, error)
}

// FileSystem is the per-backend proxy for path-based requests.
// Implementations must be safe for concurrent use.
type FileSystem interface {
	// CreateFile creates a file of the given size filled with zeros.
	// Returns ErrorCodePathExists if anything already exists at path.
	CreateFile(ctx context.Context, size uint64, path Path) error

	// OpenFile opens an existing file with the given capabilities.
	OpenFile(ctx context.Context, mode OpenMode, path Path) (File, error)

	// DeleteFile removes a file. Directories are rejected with ErrorCodeNotAFile.
	DeleteFile(ctx context.Context, path Path) error

	// DeleteDirectory removes an empty directory.
	DeleteDirectory(ctx context.Context, path Path) error

	// RenameFile moves a file within the filesystem.
	RenameFile(ctx context.Context, oldPath, newPath Path) error

	// RenameDirectory moves a directory and its contents within the filesystem.
	RenameDirectory(ctx context.Context, oldPath, newPath Path) error

	// GetEntryType reports whether path is a file or a directory.
	GetEntryType(ctx context.Context, path Path) (EntryType, error)
}

// File is the per-handle proxy returned by FileSystem.OpenFile.
// Offsets are absolute; the proxy keeps no cursor of its own.
type File interface {
	// Read fills out from offset and returns the number of bytes read.
	// Reading at or past the end of the file returns 0 and no error.
	Read(ctx context.Context, offset uint64, out []byte) (uint64, error)

	// Write stores in at offset. Growing the file requires ModeAppend.
	Write(ctx context.Context, offset uint64, in []byte) error

	// GetSize returns the current file size.
	GetSize(ctx context.Context) (uint64, error)

	// SetSize truncates or zero-extends the file.
	SetSize(ctx context.Context, size uint64) error

	// Flush commits buffered data to storage.
	Flush(ctx context.Context) error

	// Close tears the proxy down. It is not an RPC.
	Close() error
}
