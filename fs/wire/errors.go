package wire

import "fmt"

// ErrorCode is a failure reported by a backend filesystem service.
type ErrorCode int

const (
	ErrorCodeUnknown ErrorCode = iota
	ErrorCodePathNotFound
	ErrorCodeFileNotFound
	ErrorCodeDirectoryNotFound
	ErrorCodePathExists
	ErrorCodeInUse
	ErrorCodeNoSpaceLeft
	ErrorCodeInvalidPartition
	ErrorCodeOutOfRange
	ErrorCodeWriteFailed
	ErrorCodeReadFailed
	ErrorCodePartitionNotFound
	ErrorCodeInvalidInput
	ErrorCodePathTooLong
	ErrorCodeAccessDenied
	ErrorCodeUnsupportedOperation
	ErrorCodeNotAFile
	ErrorCodeNotADirectory
	ErrorCodeDiskNotFound
)

var codeNames = map[ErrorCode]string{
	ErrorCodeUnknown:              "Unknown",
	ErrorCodePathNotFound:         "PathNotFound",
	ErrorCodeFileNotFound:         "FileNotFound",
	ErrorCodeDirectoryNotFound:    "DirectoryNotFound",
	ErrorCodePathExists:           "PathExists",
	ErrorCodeInUse:                "InUse",
	ErrorCodeNoSpaceLeft:          "NoSpaceLeft",
	ErrorCodeInvalidPartition:     "InvalidPartition",
	ErrorCodeOutOfRange:           "OutOfRange",
	ErrorCodeWriteFailed:          "WriteFailed",
	ErrorCodeReadFailed:           "ReadFailed",
	ErrorCodePartitionNotFound:    "PartitionNotFound",
	ErrorCodeInvalidInput:         "InvalidInput",
	ErrorCodePathTooLong:          "PathTooLong",
	ErrorCodeAccessDenied:         "AccessDenied",
	ErrorCodeUnsupportedOperation: "UnsupportedOperation",
	ErrorCodeNotAFile:             "NotAFile",
	ErrorCodeNotADirectory:        "NotADirectory",
	ErrorCodeDiskNotFound:         "DiskNotFound",
}

func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("ErrorCode(%d)", int(c))
}

// IsNotFound reports whether c is one of the missing-resource codes.
func (c ErrorCode) IsNotFound() bool {
	return c == ErrorCodePathNotFound || c == ErrorCodeFileNotFound || c == ErrorCodeDirectoryNotFound
}

// Error is the error type returned by backend services.
type Error struct {
	Code ErrorCode
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	msg := e.Code.String()
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Path != "" {
		msg += " (" + e.Path + ")"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError returns an *Error without a cause.
func NewError(code ErrorCode, op, path string) *Error {
	return &Error{Code: code, Op: op, Path: path}
}
