// Package errs provides error handling utilities for the minio backend.
package errs

import (
	"context"
	"errors"

	"github.com/jmgilman/go/vfs/fs/wire"
	"github.com/minio/minio-go/v7"
)

// Translate converts MinIO errors to wire errors. Wire errors and context
// errors are returned unchanged.
func Translate(op, path string, err error) error {
	if err == nil {
		return nil
	}

	var wireErr *wire.Error
	if errors.As(err, &wireErr) {
		return err
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	return &wire.Error{Code: Code(err), Op: op, Path: path, Err: err}
}

// Code returns the wire code for a MinIO error response.
func Code(err error) wire.ErrorCode {
	switch minio.ToErrorResponse(err).Code {
	case "NoSuchKey":
		return wire.ErrorCodeFileNotFound
	case "NoSuchBucket":
		return wire.ErrorCodePartitionNotFound
	case "AccessDenied":
		return wire.ErrorCodeAccessDenied
	case "InvalidRange":
		return wire.ErrorCodeOutOfRange
	case "EntityTooLarge", "XMinioStorageFull":
		return wire.ErrorCodeNoSpaceLeft
	case "KeyTooLongError", "XMinioInvalidObjectName":
		return wire.ErrorCodeInvalidInput
	default:
		return wire.ErrorCodeUnknown
	}
}

// IsNotFound reports whether err is a missing key response.
func IsNotFound(err error) bool {
	return minio.ToErrorResponse(err).Code == "NoSuchKey"
}

// IsInvalidRange reports whether err is a range request past the end of an
// object.
func IsInvalidRange(err error) bool {
	return minio.ToErrorResponse(err).Code == "InvalidRange"
}
