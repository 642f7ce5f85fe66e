// Package billy provides a go-billy-backed backend filesystem for the
// router, implementing the wire.FileSystem contract.
//
// This package wraps go-billy's osfs (local) and memfs (in-memory)
// implementations. Paths arriving over the wire are absolute within the
// backend ("/dir/file.txt") and are resolved against the billy root.
//
// Usage:
//
//	// Serve a directory on disk
//	backend := billy.NewLocal("/var/lib/vfs/system")
//
//	// Register it with a router
//	err := reg.Register("system", backend)
//
//	// Unwrap for direct billy access (seeding, go-git, tests)
//	bfs := backend.Unwrap()
//
// # Memory Filesystem
//
// For testing or scratch space, use the in-memory filesystem:
//
//	backend := billy.NewMemory()
//
// # Open Modes
//
// Reads require wire.ModeRead and writes require wire.ModeWrite; both fail
// with ErrorCodeAccessDenied otherwise. A write that would grow the file
// past its current size also requires wire.ModeAppend and fails with
// ErrorCodeOutOfRange without it.
//
// # Thread Safety
//
// FS instances are safe for concurrent use by multiple goroutines. Each open
// file serializes its own operations.
package billy
