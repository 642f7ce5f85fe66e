// Package wire defines the contract between the filesystem router and the
// backend filesystem services it dispatches to.
//
// A backend is only ever reached through the interfaces in this package:
// Service discovers filesystems by disk partition, FileSystem answers
// path-based requests and File answers per-handle requests. Every request is a
// blocking round trip. Implementations live in sibling packages (billy, minio)
// or behind a real RPC transport.
//
// Paths travel as a fixed capacity Path buffer and open modes as a small
// bitmask. Failures are reported as *Error values carrying a backend ErrorCode;
// the router translates those into the generic taxonomy of the errors package.
package wire
