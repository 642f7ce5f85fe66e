package core

import (
	"errors"
	"io/fs"
)

var (
	// ErrNotExist is returned when a file or directory does not exist.
	// Re-exported from io/fs for convenience.
	ErrNotExist = fs.ErrNotExist

	// ErrExist is returned when a file or directory already exists.
	// Re-exported from io/fs for convenience.
	ErrExist = fs.ErrExist

	// ErrPermission is returned when permission is denied.
	// Re-exported from io/fs for convenience.
	ErrPermission = fs.ErrPermission

	// ErrInvalid is returned for invalid arguments such as a cross-backend
	// rename or a seek before the start of a file.
	// Re-exported from io/fs for convenience.
	ErrInvalid = fs.ErrInvalid

	// ErrClosed is returned when an operation is performed on a closed file.
	// Re-exported from io/fs for convenience.
	ErrClosed = fs.ErrClosed

	// ErrUnsupported is returned when an operation is not supported, either by
	// the router itself or by the backend that owns the path.
	ErrUnsupported = errors.ErrUnsupported
)
